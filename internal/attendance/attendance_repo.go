package attendance

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"gorm.io/gorm"
)

//go:generate mockgen -source=attendance_repo.go -destination=mock/attendance_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, a *Attendance) error
	FindByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Attendance, error)
	FindByID(ctx context.Context, id string) (*Attendance, error)
	FindAll(ctx context.Context) ([]Attendance, error)
	FindAllByEmployee(ctx context.Context, employeeID string) ([]Attendance, error)
	ClaimCheckIn(ctx context.Context, a *Attendance) error
	ClaimCheckOut(ctx context.Context, a *Attendance) error
	Update(ctx context.Context, a *Attendance) error
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

// querier returns the transaction when one is bound, otherwise the pool.
// The check-in/check-out statements must go through here so they ride the
// caller's transaction instead of a separate pooled connection.
func (r *repository) querier() gorm.ConnPool {
	if r.tx != nil {
		return r.tx
	}
	return r.db.ConnPool
}

func (r *repository) Create(ctx context.Context, a *Attendance) error {
	_, err := r.querier().ExecContext(ctx, `
INSERT INTO attendances (
	id, employee_id, attendance_date, check_in, status, notes, created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
`,
		a.ID, a.EmployeeID, a.AttendanceDate, a.CheckIn, a.Status, a.Notes,
	)
	return err
}

func (r *repository) FindByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Attendance, error) {
	row := r.querier().QueryRowContext(ctx, `
SELECT id, employee_id, attendance_date, check_in, check_out, status, working_hours, notes
FROM attendances
WHERE employee_id = $1 AND attendance_date = $2 AND deleted_at IS NULL
`,
		employeeID, date.Format("2006-01-02"),
	)
	return scanAttendance(row)
}

func (r *repository) FindByID(ctx context.Context, id string) (*Attendance, error) {
	var a Attendance
	err := r.db.WithContext(ctx).First(&a, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *repository) FindAll(ctx context.Context) ([]Attendance, error) {
	var rows []Attendance
	err := r.db.WithContext(ctx).
		Order("attendance_date DESC, check_in DESC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindAllByEmployee(ctx context.Context, employeeID string) ([]Attendance, error) {
	var rows []Attendance
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("attendance_date DESC, check_in DESC").
		Find(&rows).Error
	return rows, err
}

// ClaimCheckIn attaches a check-in to a record that does not have one yet.
// The check_in IS NULL guard makes the update a claim: zero rows affected
// means a concurrent check-in won, reported as gorm.ErrRecordNotFound.
func (r *repository) ClaimCheckIn(ctx context.Context, a *Attendance) error {
	res, err := r.querier().ExecContext(ctx, `
UPDATE attendances
SET check_in = $2, status = $3, notes = COALESCE($4, notes), updated_at = NOW()
WHERE id = $1 AND check_in IS NULL AND deleted_at IS NULL
`,
		a.ID, a.CheckIn, a.Status, a.Notes,
	)
	return claimResult(res, err)
}

// ClaimCheckOut closes the day. The check_out IS NULL guard guarantees at
// most one check-out even when two callers both read an open record.
func (r *repository) ClaimCheckOut(ctx context.Context, a *Attendance) error {
	res, err := r.querier().ExecContext(ctx, `
UPDATE attendances
SET check_out = $2, working_hours = $3, status = $4, notes = COALESCE($5, notes), updated_at = NOW()
WHERE id = $1 AND check_in IS NOT NULL AND check_out IS NULL AND deleted_at IS NULL
`,
		a.ID, a.CheckOut, a.WorkingHours, a.Status, a.Notes,
	)
	return claimResult(res, err)
}

func (r *repository) Update(ctx context.Context, a *Attendance) error {
	res, err := r.querier().ExecContext(ctx, `
UPDATE attendances
SET check_in = $2, check_out = $3, status = $4, working_hours = $5, notes = $6, updated_at = NOW()
WHERE id = $1 AND deleted_at IS NULL
`,
		a.ID, a.CheckIn, a.CheckOut, a.Status, a.WorkingHours, a.Notes,
	)
	return claimResult(res, err)
}

func claimResult(res sql.Result, err error) error {
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func scanAttendance(row *sql.Row) (*Attendance, error) {
	var (
		a            Attendance
		checkIn      sql.NullTime
		checkOut     sql.NullTime
		workingHours sql.NullFloat64
		notes        sql.NullString
	)
	err := row.Scan(
		&a.ID, &a.EmployeeID, &a.AttendanceDate,
		&checkIn, &checkOut, &a.Status, &workingHours, &notes,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, gorm.ErrRecordNotFound
	}
	if err != nil {
		return nil, err
	}
	if checkIn.Valid {
		a.CheckIn = &checkIn.Time
	}
	if checkOut.Valid {
		a.CheckOut = &checkOut.Time
	}
	if workingHours.Valid {
		a.WorkingHours = &workingHours.Float64
	}
	if notes.Valid {
		a.Notes = &notes.String
	}
	return &a, nil
}
