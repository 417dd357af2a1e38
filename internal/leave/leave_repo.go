package leave

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"gorm.io/gorm"
)

//go:generate mockgen -source=leave_repo.go -destination=mock/leave_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	LockEmployee(ctx context.Context, employeeID string) error
	Create(ctx context.Context, l *Leave) error
	FindAll(ctx context.Context) ([]Leave, error)
	FindAllByEmployee(ctx context.Context, employeeID string) ([]Leave, error)
	FindByID(ctx context.Context, id string) (*Leave, error)
	ApplyDecision(ctx context.Context, l *Leave) error
	HasOverlappingRequest(ctx context.Context, employeeID string, startDate, endDate time.Time) (bool, error)
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
// The write path and the overlap check must go through here so they ride
// the caller's transaction instead of a separate pooled connection.
func (r *repository) querier() gorm.ConnPool {
	if r.tx != nil {
		return r.tx
	}
	return r.db.ConnPool
}

// LockEmployee takes a row lock on the employee, serializing concurrent
// leave creations for the same employee. Only meaningful inside a
// transaction; the lock is released at commit or rollback.
func (r *repository) LockEmployee(ctx context.Context, employeeID string) error {
	var id string
	err := r.querier().QueryRowContext(ctx,
		`SELECT id::text FROM employees WHERE id = $1 AND deleted_at IS NULL FOR UPDATE`,
		employeeID,
	).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return gorm.ErrRecordNotFound
	}
	return err
}

func (r *repository) Create(ctx context.Context, l *Leave) error {
	_, err := r.querier().ExecContext(ctx, `
INSERT INTO leave_requests (
	id, employee_id, leave_type, start_date, end_date, total_days, reason, status, created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
`,
		l.ID, l.EmployeeID, l.LeaveType, l.StartDate, l.EndDate, l.TotalDays, l.Reason, l.Status,
	)
	return err
}

func (r *repository) FindAll(ctx context.Context) ([]Leave, error) {
	var leaves []Leave
	err := r.db.WithContext(ctx).
		Order("start_date DESC").
		Find(&leaves).Error
	return leaves, err
}

func (r *repository) FindAllByEmployee(ctx context.Context, employeeID string) ([]Leave, error) {
	var leaves []Leave
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("start_date DESC").
		Find(&leaves).Error
	return leaves, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Leave, error) {
	var l Leave
	err := r.db.WithContext(ctx).First(&l, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &l, nil
}

// ApplyDecision persists the APPROVED/REJECTED transition. The status
// guard makes the update claim the pending row: zero rows affected means
// another decision already landed, reported as gorm.ErrRecordNotFound.
func (r *repository) ApplyDecision(ctx context.Context, l *Leave) error {
	res, err := r.querier().ExecContext(ctx, `
UPDATE leave_requests
SET status = $2, approved_by = $3, decided_at = $4, decision_notes = $5, updated_at = NOW()
WHERE id = $1 AND status = $6 AND deleted_at IS NULL
`,
		l.ID, l.Status, l.ApprovedBy, l.DecidedAt, l.DecisionNotes, StatusPending,
	)
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

// HasOverlappingRequest checks the closed-interval overlap rule against
// requests that still block the calendar (PENDING or APPROVED). REJECTED
// requests never conflict.
func (r *repository) HasOverlappingRequest(ctx context.Context, employeeID string, startDate, endDate time.Time) (bool, error) {
	var count int64
	err := r.querier().QueryRowContext(ctx, `
SELECT COUNT(1)
FROM leave_requests
WHERE employee_id = $1
	AND deleted_at IS NULL
	AND status IN ($2, $3)
	AND start_date <= $4
	AND end_date >= $5
`,
		employeeID, StatusPending, StatusApproved, endDate, startDate,
	).Scan(&count)
	return count > 0, err
}
