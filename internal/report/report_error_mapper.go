package report

import (
	"errors"
	"strings"

	reporterrors "go-wfm/internal/report/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// mapRepositoryError normalizes persistence failures. A unique violation on
// the (employee_id, month, year) index means a concurrent generation won the
// race, so it surfaces as ReportAlreadyExists.
func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return reporterrors.ErrReportNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && pgErr.ConstraintName == "uq_report_employee_period" {
			return reporterrors.ErrReportAlreadyExists
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_report_employee_period") {
		return reporterrors.ErrReportAlreadyExists
	}

	return err
}
