package report

import (
	"context"
	"database/sql"
	"errors"
	"time"

	reporterrors "go-wfm/internal/report/errors"
	"go-wfm/internal/task"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=report_service.go -destination=mock/report_service_mock.go -package=mock
type Service interface {
	Generate(ctx context.Context, actorID string, req GenerateReportRequest) (ReportResponse, error)
	Amend(ctx context.Context, id string, req AmendReportRequest) (ReportResponse, error)
	GetAll(ctx context.Context, actorID string, canReadAll bool) ([]ReportResponse, error)
	GetByID(ctx context.Context, id string) (ReportResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("report.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("report.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

// Generate aggregates the employee's tasks for the requested month into a new
// report. The (employee, month, year) uniqueness check runs inside the same
// transaction as the insert; the unique index backstops concurrent callers.
func (s *service) Generate(ctx context.Context, actorID string, req GenerateReportRequest) (ReportResponse, error) {
	employeeUUID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return ReportResponse{}, reporterrors.ErrInvalidEmployeeID
	}
	if req.Month < 1 || req.Month > 12 || req.Year < 1000 || req.Year > 9999 {
		return ReportResponse{}, reporterrors.ErrInvalidPeriod
	}

	var generatedBy *uuid.UUID
	if actorID != "" {
		a, err := uuid.Parse(actorID)
		if err != nil {
			return ReportResponse{}, reporterrors.ErrInvalidEmployeeID
		}
		generatedBy = &a
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("generate report begin tx failed", zap.Error(err))
		return ReportResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if _, err := qtx.FindByEmployeeAndPeriod(ctx, req.EmployeeID, req.Month, req.Year); err == nil {
		s.logger.Warn("report already exists",
			zap.String("employee_id", req.EmployeeID),
			zap.Int("month", req.Month),
			zap.Int("year", req.Year),
		)
		return ReportResponse{}, reporterrors.ErrReportAlreadyExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return ReportResponse{}, err
	}

	from := time.Date(req.Year, time.Month(req.Month), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)

	counts, err := qtx.CountTasksByStatus(ctx, req.EmployeeID, from, to)
	if err != nil {
		s.logger.Error("count tasks failed", zap.Error(err))
		return ReportResponse{}, err
	}

	total := 0
	for _, n := range counts {
		total += n
	}
	completed := counts[task.StatusCompleted]
	pending := total - completed

	score := 0.0
	if total > 0 {
		score = float64(completed) / float64(total) * 100
	}

	row := &Report{
		ID:               uuid.New(),
		EmployeeID:       employeeUUID,
		Month:            req.Month,
		Year:             req.Year,
		TotalTasks:       total,
		CompletedTasks:   completed,
		PendingTasks:     pending,
		PerformanceScore: score,
		GeneratedBy:      generatedBy,
	}

	if err := qtx.Create(ctx, row); err != nil {
		s.logger.Error("generate report persist failed", zap.Error(err))
		return ReportResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("generate report commit failed", zap.Error(err))
		return ReportResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("generate report success",
		zap.String("report_id", row.ID.String()),
		zap.String("employee_id", req.EmployeeID),
		zap.Int("total_tasks", total),
		zap.Float64("score", score),
	)
	return mapToResponse(*row), nil
}

// Amend sets feedback and/or overwrites the score directly. It never
// recomputes the aggregation.
func (s *service) Amend(ctx context.Context, id string, req AmendReportRequest) (ReportResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return ReportResponse{}, reporterrors.ErrInvalidReportID
	}
	if req.Feedback == nil && req.PerformanceScore == nil {
		return ReportResponse{}, reporterrors.ErrEmptyAmendment
	}
	if req.PerformanceScore != nil && (*req.PerformanceScore < 0 || *req.PerformanceScore > 100) {
		return ReportResponse{}, reporterrors.ErrInvalidScore
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("amend report begin tx failed", zap.Error(err))
		return ReportResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	row, err := qtx.FindByID(ctx, id)
	if err != nil {
		return ReportResponse{}, mapRepositoryError(err)
	}

	if req.Feedback != nil {
		row.Feedback = req.Feedback
	}
	if req.PerformanceScore != nil {
		row.PerformanceScore = *req.PerformanceScore
	}

	if err := qtx.Update(ctx, row); err != nil {
		s.logger.Error("amend report persist failed", zap.Error(err))
		return ReportResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return ReportResponse{}, err
	}

	s.logger.Info("amend report success", zap.String("report_id", id))
	return mapToResponse(*row), nil
}

func (s *service) GetAll(ctx context.Context, actorID string, canReadAll bool) ([]ReportResponse, error) {
	if canReadAll {
		rows, err := s.repo.FindAll(ctx)
		if err != nil {
			return nil, err
		}
		return mapToListResponse(rows), nil
	}

	if _, err := uuid.Parse(actorID); err != nil {
		return nil, reporterrors.ErrInvalidEmployeeID
	}
	rows, err := s.repo.FindAllByEmployee(ctx, actorID)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(rows), nil
}

func (s *service) GetByID(ctx context.Context, id string) (ReportResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return ReportResponse{}, reporterrors.ErrInvalidReportID
	}
	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return ReportResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*row), nil
}

func mapToResponse(r Report) ReportResponse {
	resp := ReportResponse{
		ID:               r.ID.String(),
		EmployeeID:       r.EmployeeID.String(),
		Month:            r.Month,
		Year:             r.Year,
		TotalTasks:       r.TotalTasks,
		CompletedTasks:   r.CompletedTasks,
		PendingTasks:     r.PendingTasks,
		PerformanceScore: r.PerformanceScore,
		Feedback:         r.Feedback,
		CreatedAt:        r.CreatedAt.Format(time.RFC3339),
	}
	if r.GeneratedBy != nil {
		v := r.GeneratedBy.String()
		resp.GeneratedBy = &v
	}
	return resp
}

func mapToListResponse(reports []Report) []ReportResponse {
	resp := make([]ReportResponse, len(reports))
	for i, r := range reports {
		resp[i] = mapToResponse(r)
	}
	return resp
}
