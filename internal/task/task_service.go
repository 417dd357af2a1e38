package task

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"go-wfm/internal/events"
	"go-wfm/internal/messaging/kafka"
	"go-wfm/internal/shared/contextutil"
	taskerrors "go-wfm/internal/task/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=task_service.go -destination=mock/task_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, creatorID string, req CreateTaskRequest) (TaskResponse, error)
	UpdateStatus(ctx context.Context, id string, req UpdateTaskStatusRequest) (TaskResponse, error)
	Approve(ctx context.Context, approverID, id string) (TaskResponse, error)
	GetAllByAssignee(ctx context.Context, employeeID string) ([]TaskResponse, error)
	GetAllByCreator(ctx context.Context, creatorID string) ([]TaskResponse, error)
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
	l := zap.L().Named("task.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("task.service")
	}
	return &service{db: db, repo: repo, outbox: outboxRepo, logger: l}
}

func (s *service) Create(ctx context.Context, creatorID string, req CreateTaskRequest) (TaskResponse, error) {
	creatorUUID, err := uuid.Parse(creatorID)
	if err != nil {
		return TaskResponse{}, taskerrors.ErrInvalidEmployeeID
	}
	assigneeUUID, err := uuid.Parse(req.AssignedTo)
	if err != nil {
		return TaskResponse{}, taskerrors.ErrInvalidEmployeeID
	}

	priority := req.Priority
	if priority == "" {
		priority = PriorityMedium
	}
	if !ValidPriority(priority) {
		return TaskResponse{}, taskerrors.ErrInvalidPriority
	}

	var dueDate *time.Time
	if req.DueDate != "" {
		d, err := time.Parse("2006-01-02", req.DueDate)
		if err != nil {
			return TaskResponse{}, taskerrors.ErrInvalidDueDate
		}
		dueDate = &d
	}

	var managerUUID *uuid.UUID
	if req.ManagerID != nil && *req.ManagerID != "" {
		m, err := uuid.Parse(*req.ManagerID)
		if err != nil {
			return TaskResponse{}, taskerrors.ErrInvalidEmployeeID
		}
		managerUUID = &m
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create task begin tx failed", zap.Error(err))
		return TaskResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	row := &Task{
		ID:             uuid.New(),
		Title:          req.Title,
		Description:    req.Description,
		AssignedTo:     assigneeUUID,
		CreatedBy:      creatorUUID,
		ManagerID:      managerUUID,
		Priority:       priority,
		Status:         StatusPending,
		ApprovalStatus: ApprovalPending,
		IsUserAdded:    req.AssignedTo == creatorID,
		DueDate:        dueDate,
	}

	if err := qtx.Create(ctx, row); err != nil {
		s.logger.Error("create task persist failed", zap.Error(err))
		return TaskResponse{}, err
	}

	if err := s.queueEvent(ctx, tx, row.ID.String(), "task.assigned", events.TaskAssignedEvent{
		EventType:  "task.assigned",
		TaskID:     row.ID.String(),
		AssignedTo: req.AssignedTo,
		CreatedBy:  creatorID,
		Priority:   priority,
		DueDate:    req.DueDate,
		OccurredAt: time.Now().UTC(),
	}); err != nil {
		return TaskResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create task commit failed", zap.Error(err))
		return TaskResponse{}, err
	}

	s.logger.Info("create task success",
		zap.String("task_id", row.ID.String()),
		zap.String("assigned_to", req.AssignedTo),
	)
	return mapToResponse(*row), nil
}

func (s *service) UpdateStatus(ctx context.Context, id string, req UpdateTaskStatusRequest) (TaskResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return TaskResponse{}, taskerrors.ErrInvalidTaskID
	}
	if !ValidStatus(req.Status) {
		return TaskResponse{}, taskerrors.ErrInvalidTaskStatus
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update task status begin tx failed", zap.Error(err))
		return TaskResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	row, err := qtx.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return TaskResponse{}, taskerrors.ErrTaskNotFound
		}
		return TaskResponse{}, err
	}

	row.Status = req.Status
	if err := qtx.Update(ctx, row); err != nil {
		s.logger.Error("update task status persist failed", zap.Error(err))
		return TaskResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return TaskResponse{}, err
	}

	s.logger.Info("task status updated",
		zap.String("task_id", id),
		zap.String("status", req.Status),
	)
	return mapToResponse(*row), nil
}

func (s *service) Approve(ctx context.Context, approverID, id string) (TaskResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return TaskResponse{}, taskerrors.ErrInvalidTaskID
	}
	if _, err := uuid.Parse(approverID); err != nil {
		return TaskResponse{}, taskerrors.ErrInvalidEmployeeID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("approve task begin tx failed", zap.Error(err))
		return TaskResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	row, err := qtx.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return TaskResponse{}, taskerrors.ErrTaskNotFound
		}
		return TaskResponse{}, err
	}

	row.ApprovalStatus = ApprovalApproved
	if err := qtx.Update(ctx, row); err != nil {
		s.logger.Error("approve task persist failed", zap.Error(err))
		return TaskResponse{}, err
	}

	if err := s.queueEvent(ctx, tx, row.ID.String(), "task.approved", events.TaskApprovedEvent{
		EventType:  "task.approved",
		TaskID:     row.ID.String(),
		AssignedTo: row.AssignedTo.String(),
		ApprovedBy: approverID,
		OccurredAt: time.Now().UTC(),
	}); err != nil {
		return TaskResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return TaskResponse{}, err
	}

	s.logger.Info("task approved",
		zap.String("task_id", id),
		zap.String("approved_by", approverID),
	)
	return mapToResponse(*row), nil
}

func (s *service) GetAllByAssignee(ctx context.Context, employeeID string) ([]TaskResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return nil, taskerrors.ErrInvalidEmployeeID
	}
	rows, err := s.repo.FindAllByAssignee(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(rows), nil
}

func (s *service) GetAllByCreator(ctx context.Context, creatorID string) ([]TaskResponse, error) {
	if _, err := uuid.Parse(creatorID); err != nil {
		return nil, taskerrors.ErrInvalidEmployeeID
	}
	rows, err := s.repo.FindAllByCreator(ctx, creatorID)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(rows), nil
}

func (s *service) queueEvent(ctx context.Context, tx *sql.Tx, taskID, eventType string, event any) error {
	if s.outbox == nil {
		return nil
	}

	payload, err := json.Marshal(event)
	if err != nil {
		s.logger.Error("marshal event failed", zap.Error(err))
		return err
	}

	return s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     contextutil.GetRequestID(ctx),
		AggregateType: "task",
		AggregateID:   taskID,
		EventType:     eventType,
		Topic:         events.TaskNotificationTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}

func mapToResponse(t Task) TaskResponse {
	resp := TaskResponse{
		ID:             t.ID.String(),
		Title:          t.Title,
		Description:    t.Description,
		AssignedTo:     t.AssignedTo.String(),
		CreatedBy:      t.CreatedBy.String(),
		Priority:       t.Priority,
		Status:         t.Status,
		ApprovalStatus: t.ApprovalStatus,
		IsUserAdded:    t.IsUserAdded,
		CreatedAt:      t.CreatedAt.Format(time.RFC3339),
	}
	if t.ManagerID != nil {
		v := t.ManagerID.String()
		resp.ManagerID = &v
	}
	if t.DueDate != nil {
		v := t.DueDate.Format("2006-01-02")
		resp.DueDate = &v
	}
	return resp
}

func mapToListResponse(tasks []Task) []TaskResponse {
	resp := make([]TaskResponse, len(tasks))
	for i, t := range tasks {
		resp[i] = mapToResponse(t)
	}
	return resp
}
