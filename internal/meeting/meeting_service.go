package meeting

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"go-wfm/internal/events"
	meetingerrors "go-wfm/internal/meeting/errors"
	"go-wfm/internal/messaging/kafka"
	"go-wfm/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=meeting_service.go -destination=mock/meeting_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, creatorID string, req CreateMeetingRequest) (MeetingResponse, error)
	Update(ctx context.Context, id string, req UpdateMeetingRequest) (MeetingResponse, error)
	GetMine(ctx context.Context, employeeID string) ([]MeetingResponse, error)
	GetCreated(ctx context.Context, creatorID string) ([]MeetingResponse, error)
	GetByID(ctx context.Context, id string) (MeetingResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	outbox kafka.OutboxRepository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	return NewServiceWithOutbox(db, repo, nil, logger...)
}

func NewServiceWithOutbox(db *sql.DB, repo Repository, outboxRepo kafka.OutboxRepository, logger ...*zap.Logger) Service {
	l := zap.L().Named("meeting.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("meeting.service")
	}
	return &service{db: db, repo: repo, outbox: outboxRepo, logger: l}
}

func (s *service) Create(ctx context.Context, creatorID string, req CreateMeetingRequest) (MeetingResponse, error) {
	creatorUUID, err := uuid.Parse(creatorID)
	if err != nil {
		return MeetingResponse{}, meetingerrors.ErrInvalidEmployeeID
	}

	start, end, err := parseTimeRange(req.StartTime, req.EndTime)
	if err != nil {
		return MeetingResponse{}, err
	}

	if len(req.Participants) == 0 {
		return MeetingResponse{}, meetingerrors.ErrNoParticipants
	}
	meetingID := uuid.New()
	participants, err := parseParticipants(meetingID, req.Participants)
	if err != nil {
		return MeetingResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create meeting begin tx failed", zap.Error(err))
		return MeetingResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	row := &Meeting{
		ID:           meetingID,
		Title:        req.Title,
		Description:  req.Description,
		CreatedBy:    creatorUUID,
		StartTime:    start,
		EndTime:      end,
		Location:     req.Location,
		Participants: participants,
	}

	if err := qtx.Create(ctx, row); err != nil {
		s.logger.Error("create meeting persist failed", zap.Error(err))
		return MeetingResponse{}, err
	}

	if err := s.queueEvent(ctx, tx, row, "meeting.created"); err != nil {
		return MeetingResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create meeting commit failed", zap.Error(err))
		return MeetingResponse{}, err
	}

	s.logger.Info("create meeting success",
		zap.String("meeting_id", row.ID.String()),
		zap.Int("participants", len(participants)),
	)
	return mapToResponse(*row), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateMeetingRequest) (MeetingResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return MeetingResponse{}, meetingerrors.ErrInvalidMeetingID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update meeting begin tx failed", zap.Error(err))
		return MeetingResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	row, err := qtx.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return MeetingResponse{}, meetingerrors.ErrMeetingNotFound
		}
		return MeetingResponse{}, err
	}

	if req.Title != nil {
		row.Title = *req.Title
	}
	if req.Description != nil {
		row.Description = *req.Description
	}
	if req.Location != nil {
		row.Location = *req.Location
	}
	if req.StartTime != nil || req.EndTime != nil {
		startStr := row.StartTime.Format(time.RFC3339)
		endStr := row.EndTime.Format(time.RFC3339)
		if req.StartTime != nil {
			startStr = *req.StartTime
		}
		if req.EndTime != nil {
			endStr = *req.EndTime
		}
		start, end, err := parseTimeRange(startStr, endStr)
		if err != nil {
			return MeetingResponse{}, err
		}
		row.StartTime = start
		row.EndTime = end
	}

	if req.Participants != nil {
		if len(req.Participants) == 0 {
			return MeetingResponse{}, meetingerrors.ErrNoParticipants
		}
		participants, err := parseParticipants(row.ID, req.Participants)
		if err != nil {
			return MeetingResponse{}, err
		}
		if err := qtx.ReplaceParticipants(ctx, id, participants); err != nil {
			s.logger.Error("replace participants failed", zap.Error(err))
			return MeetingResponse{}, err
		}
		row.Participants = participants
	}

	if err := qtx.Update(ctx, row); err != nil {
		s.logger.Error("update meeting persist failed", zap.Error(err))
		return MeetingResponse{}, err
	}

	if err := s.queueEvent(ctx, tx, row, "meeting.updated"); err != nil {
		return MeetingResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return MeetingResponse{}, err
	}

	s.logger.Info("update meeting success", zap.String("meeting_id", id))
	return mapToResponse(*row), nil
}

func (s *service) GetMine(ctx context.Context, employeeID string) ([]MeetingResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return nil, meetingerrors.ErrInvalidEmployeeID
	}
	rows, err := s.repo.FindAllByParticipant(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(rows), nil
}

func (s *service) GetCreated(ctx context.Context, creatorID string) ([]MeetingResponse, error) {
	if _, err := uuid.Parse(creatorID); err != nil {
		return nil, meetingerrors.ErrInvalidEmployeeID
	}
	rows, err := s.repo.FindAllByCreator(ctx, creatorID)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(rows), nil
}

func (s *service) GetByID(ctx context.Context, id string) (MeetingResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return MeetingResponse{}, meetingerrors.ErrInvalidMeetingID
	}
	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return MeetingResponse{}, meetingerrors.ErrMeetingNotFound
		}
		return MeetingResponse{}, err
	}
	return mapToResponse(*row), nil
}

func (s *service) queueEvent(ctx context.Context, tx *sql.Tx, m *Meeting, eventType string) error {
	if s.outbox == nil {
		return nil
	}

	participantIDs := make([]string, len(m.Participants))
	for i, p := range m.Participants {
		participantIDs[i] = p.EmployeeID.String()
	}

	payload, err := json.Marshal(events.MeetingChangedEvent{
		EventType:    eventType,
		MeetingID:    m.ID.String(),
		CreatedBy:    m.CreatedBy.String(),
		Participants: participantIDs,
		ScheduledAt:  m.StartTime,
		OccurredAt:   time.Now().UTC(),
	})
	if err != nil {
		s.logger.Error("marshal event failed", zap.Error(err))
		return err
	}

	return s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     contextutil.GetRequestID(ctx),
		AggregateType: "meeting",
		AggregateID:   m.ID.String(),
		EventType:     eventType,
		Topic:         events.MeetingNotificationTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}

func parseTimeRange(startStr, endStr string) (time.Time, time.Time, error) {
	start, err := time.Parse(time.RFC3339, startStr)
	if err != nil {
		return time.Time{}, time.Time{}, meetingerrors.ErrInvalidTimeFormat
	}
	end, err := time.Parse(time.RFC3339, endStr)
	if err != nil {
		return time.Time{}, time.Time{}, meetingerrors.ErrInvalidTimeFormat
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, meetingerrors.ErrInvalidTimeRange
	}
	return start, end, nil
}

func parseParticipants(meetingID uuid.UUID, ids []string) ([]MeetingParticipant, error) {
	participants := make([]MeetingParticipant, 0, len(ids))
	seen := make(map[uuid.UUID]bool, len(ids))
	for _, raw := range ids {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, meetingerrors.ErrInvalidEmployeeID
		}
		if seen[id] {
			continue
		}
		seen[id] = true
		participants = append(participants, MeetingParticipant{MeetingID: meetingID, EmployeeID: id})
	}
	return participants, nil
}

func mapToResponse(m Meeting) MeetingResponse {
	participantIDs := make([]string, len(m.Participants))
	for i, p := range m.Participants {
		participantIDs[i] = p.EmployeeID.String()
	}
	return MeetingResponse{
		ID:           m.ID.String(),
		Title:        m.Title,
		Description:  m.Description,
		CreatedBy:    m.CreatedBy.String(),
		StartTime:    m.StartTime.Format(time.RFC3339),
		EndTime:      m.EndTime.Format(time.RFC3339),
		Location:     m.Location,
		Participants: participantIDs,
		CreatedAt:    m.CreatedAt.Format(time.RFC3339),
	}
}

func mapToListResponse(meetings []Meeting) []MeetingResponse {
	resp := make([]MeetingResponse, len(meetings))
	for i, m := range meetings {
		resp[i] = mapToResponse(m)
	}
	return resp
}
