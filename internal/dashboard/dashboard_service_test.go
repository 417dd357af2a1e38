package dashboard

import (
	"context"
	"errors"
	"testing"
	"time"

	dashboarderrors "go-wfm/internal/dashboard/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeDashboardRepository struct {
	attendanceTodayFn                  func(ctx context.Context, employeeID string, day time.Time) (*AttendanceToday, error)
	countPresentSinceFn                func(ctx context.Context, employeeID string, from time.Time) (int64, error)
	countOpenTasksAssignedFn           func(ctx context.Context, employeeID string) (int64, error)
	countCompletedTasksAssignedSinceFn func(ctx context.Context, employeeID string, from time.Time) (int64, error)
	countPendingLeavesFn               func(ctx context.Context, employeeID string) (int64, error)
	countMeetingsTodayForParticipantFn func(ctx context.Context, employeeID string, day, next time.Time) (int64, error)
	monthReportFn                      func(ctx context.Context, employeeID string, month, year int) (*ReportSummary, error)
	countTeamFn                        func(ctx context.Context, managerID *string) (int64, error)
	countManagersFn                    func(ctx context.Context) (int64, error)
	attendanceStatusCountsTodayFn      func(ctx context.Context, managerID *string, day time.Time) (map[string]int64, error)
	countTeamPendingLeavesFn           func(ctx context.Context, managerID *string) (int64, error)
	countOpenTasksCreatedByFn          func(ctx context.Context, creatorID *string) (int64, error)
	countMeetingsCreatedTodayFn        func(ctx context.Context, creatorID *string, day, next time.Time) (int64, error)
	taskStatusHistogramFn              func(ctx context.Context, creatorID *string, from, to time.Time) (map[string]int64, error)
}

func (f *fakeDashboardRepository) AttendanceToday(ctx context.Context, employeeID string, day time.Time) (*AttendanceToday, error) {
	if f.attendanceTodayFn != nil {
		return f.attendanceTodayFn(ctx, employeeID, day)
	}
	return nil, nil
}

func (f *fakeDashboardRepository) CountPresentSince(ctx context.Context, employeeID string, from time.Time) (int64, error) {
	if f.countPresentSinceFn != nil {
		return f.countPresentSinceFn(ctx, employeeID, from)
	}
	return 0, nil
}

func (f *fakeDashboardRepository) CountOpenTasksAssigned(ctx context.Context, employeeID string) (int64, error) {
	if f.countOpenTasksAssignedFn != nil {
		return f.countOpenTasksAssignedFn(ctx, employeeID)
	}
	return 0, nil
}

func (f *fakeDashboardRepository) CountCompletedTasksAssignedSince(ctx context.Context, employeeID string, from time.Time) (int64, error) {
	if f.countCompletedTasksAssignedSinceFn != nil {
		return f.countCompletedTasksAssignedSinceFn(ctx, employeeID, from)
	}
	return 0, nil
}

func (f *fakeDashboardRepository) CountPendingLeaves(ctx context.Context, employeeID string) (int64, error) {
	if f.countPendingLeavesFn != nil {
		return f.countPendingLeavesFn(ctx, employeeID)
	}
	return 0, nil
}

func (f *fakeDashboardRepository) CountMeetingsTodayForParticipant(ctx context.Context, employeeID string, day, next time.Time) (int64, error) {
	if f.countMeetingsTodayForParticipantFn != nil {
		return f.countMeetingsTodayForParticipantFn(ctx, employeeID, day, next)
	}
	return 0, nil
}

func (f *fakeDashboardRepository) MonthReport(ctx context.Context, employeeID string, month, year int) (*ReportSummary, error) {
	if f.monthReportFn != nil {
		return f.monthReportFn(ctx, employeeID, month, year)
	}
	return nil, nil
}

func (f *fakeDashboardRepository) CountTeam(ctx context.Context, managerID *string) (int64, error) {
	if f.countTeamFn != nil {
		return f.countTeamFn(ctx, managerID)
	}
	return 0, nil
}

func (f *fakeDashboardRepository) CountManagers(ctx context.Context) (int64, error) {
	if f.countManagersFn != nil {
		return f.countManagersFn(ctx)
	}
	return 0, nil
}

func (f *fakeDashboardRepository) AttendanceStatusCountsToday(ctx context.Context, managerID *string, day time.Time) (map[string]int64, error) {
	if f.attendanceStatusCountsTodayFn != nil {
		return f.attendanceStatusCountsTodayFn(ctx, managerID, day)
	}
	return map[string]int64{}, nil
}

func (f *fakeDashboardRepository) CountTeamPendingLeaves(ctx context.Context, managerID *string) (int64, error) {
	if f.countTeamPendingLeavesFn != nil {
		return f.countTeamPendingLeavesFn(ctx, managerID)
	}
	return 0, nil
}

func (f *fakeDashboardRepository) CountOpenTasksCreatedBy(ctx context.Context, creatorID *string) (int64, error) {
	if f.countOpenTasksCreatedByFn != nil {
		return f.countOpenTasksCreatedByFn(ctx, creatorID)
	}
	return 0, nil
}

func (f *fakeDashboardRepository) CountMeetingsCreatedToday(ctx context.Context, creatorID *string, day, next time.Time) (int64, error) {
	if f.countMeetingsCreatedTodayFn != nil {
		return f.countMeetingsCreatedTodayFn(ctx, creatorID, day, next)
	}
	return 0, nil
}

func (f *fakeDashboardRepository) TaskStatusHistogram(ctx context.Context, creatorID *string, from, to time.Time) (map[string]int64, error) {
	if f.taskStatusHistogramFn != nil {
		return f.taskStatusHistogramFn(ctx, creatorID, from, to)
	}
	return map[string]int64{}, nil
}

func TestService_GetStats_EmployeeView(t *testing.T) {
	employeeID := uuid.New().String()
	repo := &fakeDashboardRepository{
		attendanceTodayFn: func(ctx context.Context, id string, day time.Time) (*AttendanceToday, error) {
			return &AttendanceToday{ID: uuid.New().String(), Status: "PRESENT"}, nil
		},
		countPresentSinceFn: func(ctx context.Context, id string, from time.Time) (int64, error) { return 15, nil },
		countOpenTasksAssignedFn: func(ctx context.Context, id string) (int64, error) { return 4, nil },
		monthReportFn: func(ctx context.Context, id string, month, year int) (*ReportSummary, error) {
			return &ReportSummary{TotalTasks: 10, CompletedTasks: 6, PendingTasks: 4, PerformanceScore: 60}, nil
		},
	}
	svc := NewService(repo)

	stats, err := svc.GetStats(context.Background(), employeeID, RoleEmployee)
	assert.NoError(t, err)
	es, ok := stats.(*EmployeeStats)
	assert.True(t, ok)
	assert.Equal(t, RoleEmployee, es.Role)
	assert.Equal(t, int64(15), es.PresentDaysThisMonth)
	assert.Equal(t, int64(4), es.OpenTasks)
	assert.Equal(t, "PRESENT", es.AttendanceToday.Status)
	assert.Equal(t, 60.0, es.CurrentMonthReport.PerformanceScore)
}

func TestService_GetStats_ManagerViewIsScoped(t *testing.T) {
	managerID := uuid.New().String()
	var gotScope *string
	repo := &fakeDashboardRepository{
		countTeamFn: func(ctx context.Context, scope *string) (int64, error) {
			gotScope = scope
			return 8, nil
		},
		attendanceStatusCountsTodayFn: func(ctx context.Context, scope *string, day time.Time) (map[string]int64, error) {
			return map[string]int64{"PRESENT": 5, "LATE": 1, "ABSENT": 1}, nil
		},
	}
	svc := NewService(repo)

	stats, err := svc.GetStats(context.Background(), managerID, RoleManager)
	assert.NoError(t, err)
	ms, ok := stats.(*ManagerStats)
	assert.True(t, ok)
	assert.NotNil(t, gotScope)
	assert.Equal(t, managerID, *gotScope)
	assert.Equal(t, int64(8), ms.TeamSize)
	assert.Equal(t, int64(5), ms.PresentToday)
	assert.Equal(t, int64(1), ms.LateToday)
	assert.Equal(t, int64(2), ms.AbsentToday, "one explicit ABSENT plus one missing record")
}

func TestService_GetStats_ExecutiveViewIsUnscoped(t *testing.T) {
	sentinel := "sentinel"
	gotScope := &sentinel
	repo := &fakeDashboardRepository{
		countTeamFn: func(ctx context.Context, scope *string) (int64, error) {
			gotScope = scope
			return 120, nil
		},
		countManagersFn: func(ctx context.Context) (int64, error) { return 12, nil },
	}
	svc := NewService(repo)

	stats, err := svc.GetStats(context.Background(), uuid.New().String(), RoleExecutive)
	assert.NoError(t, err)
	xs, ok := stats.(*ExecutiveStats)
	assert.True(t, ok)
	assert.Nil(t, gotScope, "executive counts are organization wide")
	assert.Equal(t, int64(120), xs.TotalEmployees)
	assert.Equal(t, int64(12), xs.TotalManagers)
}

func TestService_GetStats_SubCountFailureFailsWholeCall(t *testing.T) {
	boom := errors.New("db down")
	repo := &fakeDashboardRepository{
		countPendingLeavesFn: func(ctx context.Context, id string) (int64, error) { return 0, boom },
	}
	svc := NewService(repo)

	_, err := svc.GetStats(context.Background(), uuid.New().String(), RoleEmployee)
	assert.ErrorIs(t, err, boom)
}

func TestService_GetStats_Idempotent(t *testing.T) {
	repo := &fakeDashboardRepository{
		countPresentSinceFn: func(ctx context.Context, id string, from time.Time) (int64, error) { return 7, nil },
	}
	svc := NewService(repo).(*service)
	fixed := time.Date(2024, 2, 15, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	actorID := uuid.New().String()
	first, err := svc.GetStats(context.Background(), actorID, RoleEmployee)
	assert.NoError(t, err)
	second, err := svc.GetStats(context.Background(), actorID, RoleEmployee)
	assert.NoError(t, err)
	assert.Equal(t, first, second, "repeated reads with unchanged data match")
}

func TestService_GetStats_UnknownRole(t *testing.T) {
	svc := NewService(&fakeDashboardRepository{})

	_, err := svc.GetStats(context.Background(), uuid.New().String(), "INTERN")
	assert.ErrorIs(t, err, dashboarderrors.ErrUnknownRole)
}
