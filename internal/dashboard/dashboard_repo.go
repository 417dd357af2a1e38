package dashboard

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

// AttendanceToday is the employee's own record for the current day key.
type AttendanceToday struct {
	ID           string     `json:"id"`
	Status       string     `json:"status"`
	CheckIn      *time.Time `json:"check_in,omitempty"`
	CheckOut     *time.Time `json:"check_out,omitempty"`
	WorkingHours *float64   `json:"working_hours,omitempty"`
}

// ReportSummary is the slice of a monthly report the dashboard shows.
type ReportSummary struct {
	ID               string  `json:"id"`
	TotalTasks       int     `json:"total_tasks"`
	CompletedTasks   int     `json:"completed_tasks"`
	PendingTasks     int     `json:"pending_tasks"`
	PerformanceScore float64 `json:"performance_score"`
}

// Repository exposes fresh count queries only. Nothing here caches;
// every dashboard call hits the database again.
//
//go:generate mockgen -source=dashboard_repo.go -destination=mock/dashboard_repo_mock.go -package=mock
type Repository interface {
	AttendanceToday(ctx context.Context, employeeID string, day time.Time) (*AttendanceToday, error)
	CountPresentSince(ctx context.Context, employeeID string, from time.Time) (int64, error)
	CountOpenTasksAssigned(ctx context.Context, employeeID string) (int64, error)
	CountCompletedTasksAssignedSince(ctx context.Context, employeeID string, from time.Time) (int64, error)
	CountPendingLeaves(ctx context.Context, employeeID string) (int64, error)
	CountMeetingsTodayForParticipant(ctx context.Context, employeeID string, day, next time.Time) (int64, error)
	MonthReport(ctx context.Context, employeeID string, month, year int) (*ReportSummary, error)

	// Manager/executive scope. A nil managerID or creatorID means
	// organization wide.
	CountTeam(ctx context.Context, managerID *string) (int64, error)
	CountManagers(ctx context.Context) (int64, error)
	AttendanceStatusCountsToday(ctx context.Context, managerID *string, day time.Time) (map[string]int64, error)
	CountTeamPendingLeaves(ctx context.Context, managerID *string) (int64, error)
	CountOpenTasksCreatedBy(ctx context.Context, creatorID *string) (int64, error)
	CountMeetingsCreatedToday(ctx context.Context, creatorID *string, day, next time.Time) (int64, error)
	TaskStatusHistogram(ctx context.Context, creatorID *string, from, to time.Time) (map[string]int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) AttendanceToday(ctx context.Context, employeeID string, day time.Time) (*AttendanceToday, error) {
	var row AttendanceToday
	err := r.db.WithContext(ctx).
		Table("attendances").
		Select("id, status, check_in, check_out, working_hours").
		Where("employee_id = ? AND attendance_date = ? AND deleted_at IS NULL", employeeID, day).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *repository) CountPresentSince(ctx context.Context, employeeID string, from time.Time) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Table("attendances").
		Where("employee_id = ? AND attendance_date >= ? AND status = ? AND deleted_at IS NULL", employeeID, from, "PRESENT").
		Count(&n).Error
	return n, err
}

func (r *repository) CountOpenTasksAssigned(ctx context.Context, employeeID string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Table("tasks").
		Where("assigned_to = ? AND status IN ?", employeeID, []string{"PENDING", "IN_PROGRESS"}).
		Count(&n).Error
	return n, err
}

func (r *repository) CountCompletedTasksAssignedSince(ctx context.Context, employeeID string, from time.Time) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Table("tasks").
		Where("assigned_to = ? AND status = ? AND created_at >= ?", employeeID, "COMPLETED", from).
		Count(&n).Error
	return n, err
}

func (r *repository) CountPendingLeaves(ctx context.Context, employeeID string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Table("leave_requests").
		Where("employee_id = ? AND status = ?", employeeID, "PENDING").
		Count(&n).Error
	return n, err
}

func (r *repository) CountMeetingsTodayForParticipant(ctx context.Context, employeeID string, day, next time.Time) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Table("meetings").
		Joins("JOIN meeting_participants mp ON mp.meeting_id = meetings.id").
		Where("mp.employee_id = ? AND meetings.start_time >= ? AND meetings.start_time < ?", employeeID, day, next).
		Count(&n).Error
	return n, err
}

func (r *repository) MonthReport(ctx context.Context, employeeID string, month, year int) (*ReportSummary, error) {
	var row ReportSummary
	err := r.db.WithContext(ctx).
		Table("monthly_reports").
		Select("id, total_tasks, completed_tasks, pending_tasks, performance_score").
		Where("employee_id = ? AND month = ? AND year = ?", employeeID, month, year).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *repository) CountTeam(ctx context.Context, managerID *string) (int64, error) {
	q := r.db.WithContext(ctx).Table("employees").Where("deleted_at IS NULL")
	if managerID != nil {
		q = q.Where("manager_id = ?", *managerID)
	}
	var n int64
	err := q.Count(&n).Error
	return n, err
}

func (r *repository) CountManagers(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Table("employees").
		Where("role = ? AND deleted_at IS NULL", "MANAGER").
		Count(&n).Error
	return n, err
}

func (r *repository) AttendanceStatusCountsToday(ctx context.Context, managerID *string, day time.Time) (map[string]int64, error) {
	type statusCount struct {
		Status string
		Total  int64
	}
	q := r.db.WithContext(ctx).
		Table("attendances").
		Select("attendances.status, COUNT(*) AS total").
		Where("attendances.attendance_date = ? AND attendances.deleted_at IS NULL", day)
	if managerID != nil {
		q = q.Joins("JOIN employees e ON e.id = attendances.employee_id").
			Where("e.manager_id = ?", *managerID)
	}

	var rows []statusCount
	if err := q.Group("attendances.status").Scan(&rows).Error; err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Total
	}
	return counts, nil
}

func (r *repository) CountTeamPendingLeaves(ctx context.Context, managerID *string) (int64, error) {
	q := r.db.WithContext(ctx).
		Table("leave_requests").
		Where("leave_requests.status = ?", "PENDING")
	if managerID != nil {
		q = q.Joins("JOIN employees e ON e.id = leave_requests.employee_id").
			Where("e.manager_id = ?", *managerID)
	}
	var n int64
	err := q.Count(&n).Error
	return n, err
}

func (r *repository) CountOpenTasksCreatedBy(ctx context.Context, creatorID *string) (int64, error) {
	q := r.db.WithContext(ctx).
		Table("tasks").
		Where("status IN ?", []string{"PENDING", "IN_PROGRESS"})
	if creatorID != nil {
		q = q.Where("created_by = ?", *creatorID)
	}
	var n int64
	err := q.Count(&n).Error
	return n, err
}

func (r *repository) CountMeetingsCreatedToday(ctx context.Context, creatorID *string, day, next time.Time) (int64, error) {
	q := r.db.WithContext(ctx).
		Table("meetings").
		Where("start_time >= ? AND start_time < ?", day, next)
	if creatorID != nil {
		q = q.Where("created_by = ?", *creatorID)
	}
	var n int64
	err := q.Count(&n).Error
	return n, err
}

func (r *repository) TaskStatusHistogram(ctx context.Context, creatorID *string, from, to time.Time) (map[string]int64, error) {
	type statusCount struct {
		Status string
		Total  int64
	}
	q := r.db.WithContext(ctx).
		Table("tasks").
		Select("status, COUNT(*) AS total").
		Where("created_at >= ? AND created_at < ?", from, to)
	if creatorID != nil {
		q = q.Where("created_by = ?", *creatorID)
	}

	var rows []statusCount
	if err := q.Group("status").Scan(&rows).Error; err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Total
	}
	return counts, nil
}
