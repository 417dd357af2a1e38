package report

import (
	"time"

	"github.com/google/uuid"
)

type Report struct {
	ID               uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	EmployeeID       uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:uq_report_employee_period" json:"employee_id"`
	Month            int        `gorm:"not null;uniqueIndex:uq_report_employee_period" json:"month"`
	Year             int        `gorm:"not null;uniqueIndex:uq_report_employee_period" json:"year"`
	TotalTasks       int        `gorm:"not null;default:0" json:"total_tasks"`
	CompletedTasks   int        `gorm:"not null;default:0" json:"completed_tasks"`
	PendingTasks     int        `gorm:"not null;default:0" json:"pending_tasks"`
	PerformanceScore float64    `gorm:"not null;default:0" json:"performance_score"`
	Feedback         *string    `gorm:"type:text" json:"feedback,omitempty"`
	GeneratedBy      *uuid.UUID `gorm:"type:uuid" json:"generated_by,omitempty"`
	CreatedAt        time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Report) TableName() string {
	return "monthly_reports"
}
