package employee

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Employee struct {
	ID             uuid.UUID      `gorm:"type:uuid;primaryKey"`
	FullName       string         `gorm:"type:varchar(255);not null"`
	Email          string         `gorm:"type:varchar(255);not null;uniqueIndex:uq_employees_email"`
	EmployeeNumber string         `gorm:"type:varchar(32);not null;uniqueIndex:uq_employees_number"`
	Department     string         `gorm:"type:varchar(100)"`
	Position       string         `gorm:"type:varchar(100)"`
	Role           string         `gorm:"type:varchar(20);not null;default:EMPLOYEE"`
	ManagerID      *uuid.UUID     `gorm:"type:uuid;index"`
	JoinDate       time.Time      `gorm:"type:date;not null"`
	CreatedAt      time.Time      `gorm:"autoCreateTime"`
	UpdatedAt      time.Time      `gorm:"autoUpdateTime"`
	DeletedAt      gorm.DeletedAt `gorm:"index"`
}

func (Employee) TableName() string {
	return "employees"
}
