package report

import (
	"context"
	"database/sql"
	"time"

	"gorm.io/gorm"
)

//go:generate mockgen -source=report_repo.go -destination=mock/report_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, r *Report) error
	FindByID(ctx context.Context, id string) (*Report, error)
	FindByEmployeeAndPeriod(ctx context.Context, employeeID string, month, year int) (*Report, error)
	FindAll(ctx context.Context) ([]Report, error)
	FindAllByEmployee(ctx context.Context, employeeID string) ([]Report, error)
	Update(ctx context.Context, r *Report) error
	CountTasksByStatus(ctx context.Context, employeeID string, from, to time.Time) (map[string]int, error)
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

func (r *repository) Create(ctx context.Context, rep *Report) error {
	return r.db.WithContext(ctx).Create(rep).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*Report, error) {
	var rep Report
	err := r.db.WithContext(ctx).First(&rep, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &rep, nil
}

func (r *repository) FindByEmployeeAndPeriod(ctx context.Context, employeeID string, month, year int) (*Report, error) {
	var rep Report
	err := r.db.WithContext(ctx).
		First(&rep, "employee_id = ? AND month = ? AND year = ?", employeeID, month, year).Error
	if err != nil {
		return nil, err
	}
	return &rep, nil
}

func (r *repository) FindAll(ctx context.Context) ([]Report, error) {
	var rows []Report
	err := r.db.WithContext(ctx).
		Order("year DESC, month DESC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindAllByEmployee(ctx context.Context, employeeID string) ([]Report, error) {
	var rows []Report
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("year DESC, month DESC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) Update(ctx context.Context, rep *Report) error {
	return r.db.WithContext(ctx).Save(rep).Error
}

// CountTasksByStatus groups the employee's tasks created in [from, to) by
// status. Missing statuses are simply absent from the map.
func (r *repository) CountTasksByStatus(ctx context.Context, employeeID string, from, to time.Time) (map[string]int, error) {
	type statusCount struct {
		Status string
		Total  int
	}
	var rows []statusCount
	err := r.db.WithContext(ctx).
		Table("tasks").
		Select("status, COUNT(*) AS total").
		Where("assigned_to = ? AND created_at >= ? AND created_at < ?", employeeID, from, to).
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Total
	}
	return counts, nil
}
