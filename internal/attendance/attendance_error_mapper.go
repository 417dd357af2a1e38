package attendance

import (
	"errors"
	"strings"

	attendanceerrors "go-wfm/internal/attendance/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// mapRepositoryError normalizes persistence failures. A unique violation
// on the (employee_id, attendance_date) index means a concurrent check-in
// won the race, so it surfaces as AlreadyCheckedIn.
func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return attendanceerrors.ErrAttendanceNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && pgErr.ConstraintName == "uq_attendance_employee_day" {
			return attendanceerrors.ErrAlreadyCheckedIn
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_attendance_employee_day") {
		return attendanceerrors.ErrAlreadyCheckedIn
	}

	return err
}
