package task

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Task struct {
	ID             uuid.UUID      `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	Title          string         `gorm:"column:title;type:varchar(200);not null"`
	Description    string         `gorm:"column:description;type:text"`
	AssignedTo     uuid.UUID      `gorm:"column:assigned_to;type:uuid;not null;index"`
	CreatedBy      uuid.UUID      `gorm:"column:created_by;type:uuid;not null;index"`
	ManagerID      *uuid.UUID     `gorm:"column:manager_id;type:uuid"`
	Priority       string         `gorm:"column:priority;type:varchar(10);not null;default:MEDIUM"`
	Status         string         `gorm:"column:status;type:varchar(20);not null;default:PENDING"`
	ApprovalStatus string         `gorm:"column:approval_status;type:varchar(20);not null;default:PENDING"`
	IsUserAdded    bool           `gorm:"column:is_user_added;not null;default:false"`
	DueDate        *time.Time     `gorm:"column:due_date;type:date"`
	CreatedAt      time.Time      `gorm:"column:created_at;index"`
	UpdatedAt      time.Time      `gorm:"column:updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

func (Task) TableName() string {
	return "tasks"
}
