package meeting

import (
	"time"

	"github.com/google/uuid"
)

type Meeting struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Title       string    `gorm:"type:varchar(255);not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	CreatedBy   uuid.UUID `gorm:"type:uuid;not null;index" json:"created_by"`
	StartTime   time.Time `gorm:"not null;index" json:"start_time"`
	EndTime     time.Time `gorm:"not null" json:"end_time"`
	Location    string    `gorm:"type:varchar(255)" json:"location"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Participants []MeetingParticipant `gorm:"foreignKey:MeetingID;constraint:OnDelete:CASCADE" json:"participants,omitempty"`
}

func (Meeting) TableName() string {
	return "meetings"
}

type MeetingParticipant struct {
	MeetingID  uuid.UUID `gorm:"type:uuid;primaryKey" json:"meeting_id"`
	EmployeeID uuid.UUID `gorm:"type:uuid;primaryKey;index" json:"employee_id"`
}

func (MeetingParticipant) TableName() string {
	return "meeting_participants"
}
