package leave

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Leave struct {
	ID            uuid.UUID      `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID    uuid.UUID      `gorm:"column:employee_id;type:uuid;not null;index"`
	LeaveType     string         `gorm:"column:leave_type;type:varchar(30);not null"`
	StartDate     time.Time      `gorm:"column:start_date;type:date;not null"`
	EndDate       time.Time      `gorm:"column:end_date;type:date;not null"`
	TotalDays     int            `gorm:"column:total_days;not null"`
	Reason        string         `gorm:"column:reason;type:text"`
	Status        string         `gorm:"column:status;type:varchar(20);not null;default:PENDING"`
	ApprovedBy    *uuid.UUID     `gorm:"column:approved_by;type:uuid"`
	DecidedAt     *time.Time     `gorm:"column:decided_at;type:timestamptz"`
	DecisionNotes *string        `gorm:"column:decision_notes;type:text"`
	CreatedAt     time.Time      `gorm:"column:created_at"`
	UpdatedAt     time.Time      `gorm:"column:updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"column:deleted_at;index"`
	Employee      *EmployeeRef   `gorm:"foreignKey:EmployeeID;references:ID"`
}

func (Leave) TableName() string {
	return "leave_requests"
}

type EmployeeRef struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	FullName string    `gorm:"column:full_name"`
}

func (EmployeeRef) TableName() string {
	return "employees"
}
