package attendance

import (
	"context"
	"database/sql"
	"errors"
	"time"

	attendanceerrors "go-wfm/internal/attendance/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=attendance_service.go -destination=mock/attendance_service_mock.go -package=mock
type Service interface {
	CheckIn(ctx context.Context, employeeID string, req CheckInRequest) (AttendanceResponse, error)
	CheckOut(ctx context.Context, employeeID string, req CheckOutRequest) (AttendanceResponse, error)
	Override(ctx context.Context, attendanceID string, req OverrideRequest) (AttendanceResponse, error)
	GetAll(ctx context.Context, actorID string, canReadAll bool) ([]AttendanceResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
	now    func() time.Time
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("attendance.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attendance.service")
	}
	return &service{db: db, repo: repo, logger: l, now: time.Now}
}

func (s *service) CheckIn(ctx context.Context, employeeID string, req CheckInRequest) (AttendanceResponse, error) {
	employeeUUID, err := uuid.Parse(employeeID)
	if err != nil {
		return AttendanceResponse{}, attendanceerrors.ErrInvalidEmployeeID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("check-in begin tx failed", zap.Error(err))
		return AttendanceResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	now := s.now().UTC()
	today := dayKey(now)

	existing, err := qtx.FindByEmployeeAndDate(ctx, employeeID, today)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("check-in lookup failed", zap.Error(err))
		return AttendanceResponse{}, err
	}
	if existing != nil && existing.CheckIn != nil {
		s.logger.Warn("check-in rejected, already checked in",
			zap.String("employee_id", employeeID),
			zap.String("date", today.Format("2006-01-02")),
		)
		return AttendanceResponse{}, attendanceerrors.ErrAlreadyCheckedIn
	}

	status := ClassifyStatus(now, nil)

	if existing != nil {
		// Record exists without a check-in (e.g. created by a manager
		// override); attach the check-in to it.
		existing.CheckIn = &now
		existing.Status = status
		if req.Notes != nil {
			existing.Notes = req.Notes
		}
		if err := qtx.ClaimCheckIn(ctx, existing); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				// Claimed by a concurrent check-in between the read and
				// the guarded update.
				return AttendanceResponse{}, attendanceerrors.ErrAlreadyCheckedIn
			}
			return AttendanceResponse{}, mapRepositoryError(err)
		}
		if err := tx.Commit(); err != nil {
			return AttendanceResponse{}, err
		}
		return mapToResponse(*existing), nil
	}

	row := &Attendance{
		ID:             uuid.New(),
		EmployeeID:     employeeUUID,
		AttendanceDate: today,
		CheckIn:        &now,
		Status:         status,
		Notes:          req.Notes,
	}

	if err := qtx.Create(ctx, row); err != nil {
		// The unique index backstops concurrent check-ins: exactly one
		// insert wins, the loser surfaces AlreadyCheckedIn.
		return AttendanceResponse{}, mapRepositoryError(err)
	}
	if err := tx.Commit(); err != nil {
		return AttendanceResponse{}, err
	}

	s.logger.Info("check-in success",
		zap.String("employee_id", employeeID),
		zap.String("status", status),
	)
	return mapToResponse(*row), nil
}

func (s *service) CheckOut(ctx context.Context, employeeID string, req CheckOutRequest) (AttendanceResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return AttendanceResponse{}, attendanceerrors.ErrInvalidEmployeeID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("check-out begin tx failed", zap.Error(err))
		return AttendanceResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	now := s.now().UTC()
	today := dayKey(now)

	row, err := qtx.FindByEmployeeAndDate(ctx, employeeID, today)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AttendanceResponse{}, attendanceerrors.ErrMustCheckInFirst
		}
		s.logger.Error("check-out lookup failed", zap.Error(err))
		return AttendanceResponse{}, err
	}
	if row.CheckIn == nil {
		return AttendanceResponse{}, attendanceerrors.ErrMustCheckInFirst
	}
	if row.CheckOut != nil {
		s.logger.Warn("check-out rejected, already checked out",
			zap.String("employee_id", employeeID),
			zap.String("date", today.Format("2006-01-02")),
		)
		return AttendanceResponse{}, attendanceerrors.ErrAlreadyCheckedOut
	}

	hours := hoursBetween(*row.CheckIn, now)
	row.CheckOut = &now
	row.WorkingHours = &hours
	row.Status = ClassifyStatus(*row.CheckIn, &hours)
	if req.Notes != nil {
		row.Notes = req.Notes
	}

	if err := qtx.ClaimCheckOut(ctx, row); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Both callers read an open record; the guarded update lets
			// exactly one close it.
			s.logger.Warn("check-out rejected, concurrent check-out won",
				zap.String("employee_id", employeeID),
			)
			return AttendanceResponse{}, attendanceerrors.ErrAlreadyCheckedOut
		}
		s.logger.Error("check-out persist failed", zap.Error(err))
		return AttendanceResponse{}, mapRepositoryError(err)
	}
	if err := tx.Commit(); err != nil {
		return AttendanceResponse{}, err
	}

	s.logger.Info("check-out success",
		zap.String("employee_id", employeeID),
		zap.Float64("working_hours", hours),
		zap.String("status", row.Status),
	)
	return mapToResponse(*row), nil
}

// Override lets a manager or executive set status and notes directly on an
// existing record, bypassing the check-in/check-out state machine.
func (s *service) Override(ctx context.Context, attendanceID string, req OverrideRequest) (AttendanceResponse, error) {
	if _, err := uuid.Parse(attendanceID); err != nil {
		return AttendanceResponse{}, attendanceerrors.ErrInvalidAttendanceID
	}
	if !ValidStatus(req.Status) {
		return AttendanceResponse{}, attendanceerrors.ErrInvalidStatus
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("override begin tx failed", zap.Error(err))
		return AttendanceResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	row, err := qtx.FindByID(ctx, attendanceID)
	if err != nil {
		return AttendanceResponse{}, mapRepositoryError(err)
	}

	row.Status = req.Status
	if req.Notes != nil {
		row.Notes = req.Notes
	}

	if err := qtx.Update(ctx, row); err != nil {
		s.logger.Error("override persist failed", zap.Error(err))
		return AttendanceResponse{}, mapRepositoryError(err)
	}
	if err := tx.Commit(); err != nil {
		return AttendanceResponse{}, err
	}

	s.logger.Info("attendance override applied",
		zap.String("attendance_id", attendanceID),
		zap.String("status", req.Status),
	)
	return mapToResponse(*row), nil
}

func (s *service) GetAll(ctx context.Context, actorID string, canReadAll bool) ([]AttendanceResponse, error) {
	var (
		rows []Attendance
		err  error
	)
	if canReadAll {
		rows, err = s.repo.FindAll(ctx)
	} else {
		if _, parseErr := uuid.Parse(actorID); parseErr != nil {
			return nil, attendanceerrors.ErrInvalidEmployeeID
		}
		rows, err = s.repo.FindAllByEmployee(ctx, actorID)
	}
	if err != nil {
		return nil, err
	}
	res := make([]AttendanceResponse, len(rows))
	for i, r := range rows {
		res[i] = mapToResponse(r)
	}
	return res, nil
}

func mapToResponse(a Attendance) AttendanceResponse {
	resp := AttendanceResponse{
		ID:             a.ID.String(),
		EmployeeID:     a.EmployeeID.String(),
		AttendanceDate: a.AttendanceDate.Format("2006-01-02"),
		Status:         a.Status,
		WorkingHours:   a.WorkingHours,
		Notes:          a.Notes,
	}
	if a.Employee != nil {
		resp.EmployeeName = a.Employee.FullName
	}
	if a.CheckIn != nil {
		v := a.CheckIn.Format(time.RFC3339)
		resp.CheckIn = &v
	}
	if a.CheckOut != nil {
		v := a.CheckOut.Format(time.RFC3339)
		resp.CheckOut = &v
	}
	return resp
}
