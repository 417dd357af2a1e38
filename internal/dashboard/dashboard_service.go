package dashboard

import (
	"context"
	"time"

	dashboarderrors "go-wfm/internal/dashboard/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	RoleEmployee  = "EMPLOYEE"
	RoleManager   = "MANAGER"
	RoleExecutive = "EXECUTIVE"
)

//go:generate mockgen -source=dashboard_service.go -destination=mock/dashboard_service_mock.go -package=mock
type Service interface {
	GetStats(ctx context.Context, actorID, actorRole string) (any, error)
}

// service recomputes every stat from the repository on each call. Any
// sub-count failure fails the whole call; there is no partial response.
type service struct {
	repo   Repository
	logger *zap.Logger
	now    func() time.Time
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("dashboard.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("dashboard.service")
	}
	return &service{repo: repo, logger: l, now: time.Now}
}

func (s *service) GetStats(ctx context.Context, actorID, actorRole string) (any, error) {
	if _, err := uuid.Parse(actorID); err != nil {
		return nil, dashboarderrors.ErrInvalidEmployeeID
	}

	switch actorRole {
	case RoleEmployee:
		return s.employeeStats(ctx, actorID)
	case RoleManager:
		return s.managerStats(ctx, actorID)
	case RoleExecutive:
		return s.executiveStats(ctx)
	default:
		return nil, dashboarderrors.ErrUnknownRole
	}
}

func (s *service) employeeStats(ctx context.Context, employeeID string) (*EmployeeStats, error) {
	now := s.now().UTC()
	day := now.Truncate(24 * time.Hour)
	next := day.Add(24 * time.Hour)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	attendanceToday, err := s.repo.AttendanceToday(ctx, employeeID, day)
	if err != nil {
		return nil, s.fail("attendance today", err)
	}
	presentDays, err := s.repo.CountPresentSince(ctx, employeeID, monthStart)
	if err != nil {
		return nil, s.fail("present days", err)
	}
	openTasks, err := s.repo.CountOpenTasksAssigned(ctx, employeeID)
	if err != nil {
		return nil, s.fail("open tasks", err)
	}
	completedTasks, err := s.repo.CountCompletedTasksAssignedSince(ctx, employeeID, monthStart)
	if err != nil {
		return nil, s.fail("completed tasks", err)
	}
	pendingLeaves, err := s.repo.CountPendingLeaves(ctx, employeeID)
	if err != nil {
		return nil, s.fail("pending leaves", err)
	}
	meetingsToday, err := s.repo.CountMeetingsTodayForParticipant(ctx, employeeID, day, next)
	if err != nil {
		return nil, s.fail("meetings today", err)
	}
	report, err := s.repo.MonthReport(ctx, employeeID, int(now.Month()), now.Year())
	if err != nil {
		return nil, s.fail("month report", err)
	}

	return &EmployeeStats{
		Role:                    RoleEmployee,
		AttendanceToday:         attendanceToday,
		PresentDaysThisMonth:    presentDays,
		OpenTasks:               openTasks,
		CompletedTasksThisMonth: completedTasks,
		PendingLeaveRequests:    pendingLeaves,
		MeetingsToday:           meetingsToday,
		CurrentMonthReport:      report,
	}, nil
}

func (s *service) managerStats(ctx context.Context, managerID string) (*ManagerStats, error) {
	now := s.now().UTC()
	day := now.Truncate(24 * time.Hour)
	next := day.Add(24 * time.Hour)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, 0)

	scope := &managerID

	teamSize, err := s.repo.CountTeam(ctx, scope)
	if err != nil {
		return nil, s.fail("team size", err)
	}
	statusCounts, err := s.repo.AttendanceStatusCountsToday(ctx, scope, day)
	if err != nil {
		return nil, s.fail("attendance counts", err)
	}
	pendingLeaves, err := s.repo.CountTeamPendingLeaves(ctx, scope)
	if err != nil {
		return nil, s.fail("pending leaves", err)
	}
	openTasks, err := s.repo.CountOpenTasksCreatedBy(ctx, scope)
	if err != nil {
		return nil, s.fail("open tasks", err)
	}
	meetingsToday, err := s.repo.CountMeetingsCreatedToday(ctx, scope, day, next)
	if err != nil {
		return nil, s.fail("meetings today", err)
	}
	histogram, err := s.repo.TaskStatusHistogram(ctx, scope, monthStart, monthEnd)
	if err != nil {
		return nil, s.fail("task histogram", err)
	}

	present, absent, late := splitAttendance(teamSize, statusCounts)
	return &ManagerStats{
		Role:                 RoleManager,
		TeamSize:             teamSize,
		PresentToday:         present,
		AbsentToday:          absent,
		LateToday:            late,
		PendingLeaveRequests: pendingLeaves,
		OpenTasksCreated:     openTasks,
		MeetingsCreatedToday: meetingsToday,
		TaskStatusThisMonth:  histogram,
	}, nil
}

func (s *service) executiveStats(ctx context.Context) (*ExecutiveStats, error) {
	now := s.now().UTC()
	day := now.Truncate(24 * time.Hour)
	next := day.Add(24 * time.Hour)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, 0)

	totalEmployees, err := s.repo.CountTeam(ctx, nil)
	if err != nil {
		return nil, s.fail("total employees", err)
	}
	totalManagers, err := s.repo.CountManagers(ctx)
	if err != nil {
		return nil, s.fail("total managers", err)
	}
	statusCounts, err := s.repo.AttendanceStatusCountsToday(ctx, nil, day)
	if err != nil {
		return nil, s.fail("attendance counts", err)
	}
	pendingLeaves, err := s.repo.CountTeamPendingLeaves(ctx, nil)
	if err != nil {
		return nil, s.fail("pending leaves", err)
	}
	openTasks, err := s.repo.CountOpenTasksCreatedBy(ctx, nil)
	if err != nil {
		return nil, s.fail("open tasks", err)
	}
	meetingsToday, err := s.repo.CountMeetingsCreatedToday(ctx, nil, day, next)
	if err != nil {
		return nil, s.fail("meetings today", err)
	}
	histogram, err := s.repo.TaskStatusHistogram(ctx, nil, monthStart, monthEnd)
	if err != nil {
		return nil, s.fail("task histogram", err)
	}

	present, absent, late := splitAttendance(totalEmployees, statusCounts)
	return &ExecutiveStats{
		Role:                 RoleExecutive,
		TotalEmployees:       totalEmployees,
		TotalManagers:        totalManagers,
		PresentToday:         present,
		AbsentToday:          absent,
		LateToday:            late,
		PendingLeaveRequests: pendingLeaves,
		OpenTasks:            openTasks,
		MeetingsToday:        meetingsToday,
		TaskStatusThisMonth:  histogram,
	}, nil
}

// splitAttendance derives today's present/absent/late counts. Employees
// without any record count as absent, alongside explicit ABSENT records.
func splitAttendance(headcount int64, counts map[string]int64) (present, absent, late int64) {
	present = counts["PRESENT"] + counts["HALF_DAY"]
	late = counts["LATE"]

	var recorded int64
	for _, n := range counts {
		recorded += n
	}
	absent = counts["ABSENT"] + (headcount - recorded)
	if absent < 0 {
		absent = 0
	}
	return present, absent, late
}

func (s *service) fail(stage string, err error) error {
	s.logger.Error("dashboard aggregation failed",
		zap.String("stage", stage),
		zap.Error(err),
	)
	return err
}
