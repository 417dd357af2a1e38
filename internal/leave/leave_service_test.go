package leave

import (
	"context"
	"database/sql"
	"testing"
	"time"

	leaveerrors "go-wfm/internal/leave/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type fakeLeaveRepository struct {
	withTxFn                func(tx *sql.Tx) Repository
	lockEmployeeFn          func(ctx context.Context, employeeID string) error
	createFn                func(ctx context.Context, l *Leave) error
	findAllFn               func(ctx context.Context) ([]Leave, error)
	findAllByEmployeeFn     func(ctx context.Context, employeeID string) ([]Leave, error)
	findByIDFn              func(ctx context.Context, id string) (*Leave, error)
	applyDecisionFn         func(ctx context.Context, l *Leave) error
	hasOverlappingRequestFn func(ctx context.Context, employeeID string, startDate, endDate time.Time) (bool, error)
}

func (f *fakeLeaveRepository) WithTx(tx *sql.Tx) Repository {
	if f.withTxFn != nil {
		return f.withTxFn(tx)
	}
	return f
}

func (f *fakeLeaveRepository) LockEmployee(ctx context.Context, employeeID string) error {
	if f.lockEmployeeFn != nil {
		return f.lockEmployeeFn(ctx, employeeID)
	}
	return nil
}

func (f *fakeLeaveRepository) Create(ctx context.Context, l *Leave) error {
	if f.createFn != nil {
		return f.createFn(ctx, l)
	}
	return nil
}

func (f *fakeLeaveRepository) FindAll(ctx context.Context) ([]Leave, error) {
	if f.findAllFn != nil {
		return f.findAllFn(ctx)
	}
	return nil, nil
}

func (f *fakeLeaveRepository) FindAllByEmployee(ctx context.Context, employeeID string) ([]Leave, error) {
	if f.findAllByEmployeeFn != nil {
		return f.findAllByEmployeeFn(ctx, employeeID)
	}
	return nil, nil
}

func (f *fakeLeaveRepository) FindByID(ctx context.Context, id string) (*Leave, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeLeaveRepository) ApplyDecision(ctx context.Context, l *Leave) error {
	if f.applyDecisionFn != nil {
		return f.applyDecisionFn(ctx, l)
	}
	return nil
}

func (f *fakeLeaveRepository) HasOverlappingRequest(ctx context.Context, employeeID string, startDate, endDate time.Time) (bool, error) {
	if f.hasOverlappingRequestFn != nil {
		return f.hasOverlappingRequestFn(ctx, employeeID, startDate, endDate)
	}
	return false, nil
}

func TestService_Create_Success(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	employeeID := uuid.New().String()
	var saved *Leave
	repo := &fakeLeaveRepository{
		createFn: func(ctx context.Context, l *Leave) error { saved = l; return nil },
	}
	svc := NewService(db, repo)

	mock.ExpectBegin()
	mock.ExpectCommit()
	resp, err := svc.Create(context.Background(), employeeID, CreateLeaveRequest{
		StartDate: "2024-02-10",
		EndDate:   "2024-02-12",
		LeaveType: TypeAnnual,
		Reason:    "family trip",
	})
	assert.NoError(t, err)
	assert.Equal(t, StatusPending, resp.Status)
	assert.Equal(t, 3, resp.TotalDays)
	assert.Equal(t, StatusPending, saved.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_Create_SingleDayRange(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	svc := NewService(db, &fakeLeaveRepository{})

	mock.ExpectBegin()
	mock.ExpectCommit()
	resp, err := svc.Create(context.Background(), uuid.New().String(), CreateLeaveRequest{
		StartDate: "2024-02-11",
		EndDate:   "2024-02-11",
		LeaveType: TypeSick,
	})
	assert.NoError(t, err)
	assert.Equal(t, 1, resp.TotalDays)
}

// Drives Create through the real repository over sqlmock. The ordered
// expectations only pass when the employee lock, the overlap check and
// the insert all execute on the transaction the service opened.
func TestService_Create_StatementsRideTransaction(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{
		DisableAutomaticPing: true,
	})
	assert.NoError(t, err)

	employeeID := uuid.New().String()
	svc := NewService(db, NewRepository(gormDB))

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT id::text FROM employees .* FOR UPDATE`).
		WithArgs(employeeID).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(employeeID))
	mock.ExpectQuery(`SELECT COUNT\(1\)`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectExec(`INSERT INTO leave_requests`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	resp, err := svc.Create(context.Background(), employeeID, CreateLeaveRequest{
		StartDate: "2024-02-10",
		EndDate:   "2024-02-12",
		LeaveType: TypeAnnual,
	})
	assert.NoError(t, err)
	assert.Equal(t, StatusPending, resp.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_Create_OverlapRollsBackTransaction(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{
		DisableAutomaticPing: true,
	})
	assert.NoError(t, err)

	employeeID := uuid.New().String()
	svc := NewService(db, NewRepository(gormDB))

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT id::text FROM employees .* FOR UPDATE`).
		WithArgs(employeeID).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(employeeID))
	mock.ExpectQuery(`SELECT COUNT\(1\)`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectRollback()

	_, err = svc.Create(context.Background(), employeeID, CreateLeaveRequest{
		StartDate: "2024-02-10",
		EndDate:   "2024-02-12",
		LeaveType: TypeAnnual,
	})
	assert.ErrorIs(t, err, leaveerrors.ErrOverlappingLeaveRequest)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_Create_Overlap(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	created := false
	repo := &fakeLeaveRepository{
		createFn: func(ctx context.Context, l *Leave) error { created = true; return nil },
		hasOverlappingRequestFn: func(ctx context.Context, employeeID string, startDate, endDate time.Time) (bool, error) {
			return true, nil
		},
	}
	svc := NewService(db, repo)

	mock.ExpectBegin()
	mock.ExpectRollback()
	_, err := svc.Create(context.Background(), uuid.New().String(), CreateLeaveRequest{
		StartDate: "2024-02-10",
		EndDate:   "2024-02-12",
		LeaveType: TypeAnnual,
	})
	assert.ErrorIs(t, err, leaveerrors.ErrOverlappingLeaveRequest)
	assert.False(t, created, "conflicting request must never be persisted")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_Create_EmployeeMissing(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	overlapChecked := false
	repo := &fakeLeaveRepository{
		lockEmployeeFn: func(ctx context.Context, employeeID string) error {
			return gorm.ErrRecordNotFound
		},
		hasOverlappingRequestFn: func(ctx context.Context, employeeID string, startDate, endDate time.Time) (bool, error) {
			overlapChecked = true
			return false, nil
		},
	}
	svc := NewService(db, repo)

	mock.ExpectBegin()
	mock.ExpectRollback()
	_, err := svc.Create(context.Background(), uuid.New().String(), CreateLeaveRequest{
		StartDate: "2024-02-10",
		EndDate:   "2024-02-12",
		LeaveType: TypeAnnual,
	})
	assert.ErrorIs(t, err, leaveerrors.ErrEmployeeNotFound)
	assert.False(t, overlapChecked)
}

func TestService_Create_InvalidInput(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	overlapChecked := false
	repo := &fakeLeaveRepository{
		hasOverlappingRequestFn: func(ctx context.Context, employeeID string, startDate, endDate time.Time) (bool, error) {
			overlapChecked = true
			return false, nil
		},
	}
	svc := NewService(db, repo)

	cases := []struct {
		name    string
		req     CreateLeaveRequest
		wantErr error
	}{
		{
			name:    "bad date format",
			req:     CreateLeaveRequest{StartDate: "10-02-2024", EndDate: "2024-02-12", LeaveType: TypeAnnual},
			wantErr: leaveerrors.ErrInvalidDateFormat,
		},
		{
			name:    "end before start",
			req:     CreateLeaveRequest{StartDate: "2024-02-12", EndDate: "2024-02-10", LeaveType: TypeAnnual},
			wantErr: leaveerrors.ErrInvalidDateRange,
		},
		{
			name:    "unknown type",
			req:     CreateLeaveRequest{StartDate: "2024-02-10", EndDate: "2024-02-12", LeaveType: "SABBATICAL"},
			wantErr: leaveerrors.ErrInvalidLeaveType,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), uuid.New().String(), tc.req)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
	assert.False(t, overlapChecked, "validation must run before any repository access")
}

func TestService_Decide_Approve(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	leaveID := uuid.New()
	approverID := uuid.New().String()
	var saved *Leave
	repo := &fakeLeaveRepository{
		findByIDFn: func(ctx context.Context, id string) (*Leave, error) {
			return &Leave{ID: leaveID, EmployeeID: uuid.New(), Status: StatusPending}, nil
		},
		applyDecisionFn: func(ctx context.Context, l *Leave) error { saved = l; return nil },
	}
	svc := NewService(db, repo)

	mock.ExpectBegin()
	mock.ExpectCommit()
	resp, err := svc.Decide(context.Background(), approverID, leaveID.String(), DecideLeaveRequest{Decision: StatusApproved})
	assert.NoError(t, err)
	assert.Equal(t, StatusApproved, resp.Status)
	assert.Equal(t, approverID, *resp.ApprovedBy)
	assert.NotNil(t, resp.DecidedAt)
	assert.NotNil(t, saved.DecidedAt)
}

func TestService_Decide_AlreadyDecided(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := &fakeLeaveRepository{
		findByIDFn: func(ctx context.Context, id string) (*Leave, error) {
			return &Leave{ID: uuid.New(), Status: StatusApproved}, nil
		},
	}
	svc := NewService(db, repo)

	mock.ExpectBegin()
	mock.ExpectRollback()
	_, err := svc.Decide(context.Background(), uuid.New().String(), uuid.New().String(), DecideLeaveRequest{Decision: StatusRejected})
	assert.ErrorIs(t, err, leaveerrors.ErrLeaveAlreadyDecided)
}

// Both deciders read the request while it was still PENDING; the guarded
// update claims zero rows for the loser.
func TestService_Decide_ConcurrentDecisionLoses(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := &fakeLeaveRepository{
		findByIDFn: func(ctx context.Context, id string) (*Leave, error) {
			return &Leave{ID: uuid.New(), EmployeeID: uuid.New(), Status: StatusPending}, nil
		},
		applyDecisionFn: func(ctx context.Context, l *Leave) error {
			return gorm.ErrRecordNotFound
		},
	}
	svc := NewService(db, repo)

	mock.ExpectBegin()
	mock.ExpectRollback()
	_, err := svc.Decide(context.Background(), uuid.New().String(), uuid.New().String(), DecideLeaveRequest{Decision: StatusApproved})
	assert.ErrorIs(t, err, leaveerrors.ErrLeaveAlreadyDecided)
}

func TestService_Decide_InvalidDecision(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	svc := NewService(db, &fakeLeaveRepository{})

	_, err := svc.Decide(context.Background(), uuid.New().String(), uuid.New().String(), DecideLeaveRequest{Decision: "CANCELLED"})
	assert.ErrorIs(t, err, leaveerrors.ErrInvalidDecision)
}

func TestService_Decide_NotFound(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	svc := NewService(db, &fakeLeaveRepository{})

	mock.ExpectBegin()
	mock.ExpectRollback()
	_, err := svc.Decide(context.Background(), uuid.New().String(), uuid.New().String(), DecideLeaveRequest{Decision: StatusApproved})
	assert.ErrorIs(t, err, leaveerrors.ErrLeaveNotFound)
}
