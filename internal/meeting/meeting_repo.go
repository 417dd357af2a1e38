package meeting

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

//go:generate mockgen -source=meeting_repo.go -destination=mock/meeting_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, m *Meeting) error
	FindByID(ctx context.Context, id string) (*Meeting, error)
	FindAllByParticipant(ctx context.Context, employeeID string) ([]Meeting, error)
	FindAllByCreator(ctx context.Context, creatorID string) ([]Meeting, error)
	Update(ctx context.Context, m *Meeting) error
	ReplaceParticipants(ctx context.Context, meetingID string, participants []MeetingParticipant) error
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

func (r *repository) Create(ctx context.Context, m *Meeting) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*Meeting, error) {
	var m Meeting
	err := r.db.WithContext(ctx).
		Preload("Participants").
		First(&m, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *repository) FindAllByParticipant(ctx context.Context, employeeID string) ([]Meeting, error) {
	var rows []Meeting
	err := r.db.WithContext(ctx).
		Preload("Participants").
		Joins("JOIN meeting_participants mp ON mp.meeting_id = meetings.id").
		Where("mp.employee_id = ?", employeeID).
		Order("start_time DESC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindAllByCreator(ctx context.Context, creatorID string) ([]Meeting, error) {
	var rows []Meeting
	err := r.db.WithContext(ctx).
		Preload("Participants").
		Where("created_by = ?", creatorID).
		Order("start_time DESC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) Update(ctx context.Context, m *Meeting) error {
	return r.db.WithContext(ctx).Omit("Participants").Save(m).Error
}

func (r *repository) ReplaceParticipants(ctx context.Context, meetingID string, participants []MeetingParticipant) error {
	if err := r.db.WithContext(ctx).
		Where("meeting_id = ?", meetingID).
		Delete(&MeetingParticipant{}).Error; err != nil {
		return err
	}
	if len(participants) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&participants).Error
}
