package task

import (
	"context"
	"database/sql"
	"testing"

	taskerrors "go-wfm/internal/task/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeTaskRepository struct {
	withTxFn            func(tx *sql.Tx) Repository
	createFn            func(ctx context.Context, t *Task) error
	findByIDFn          func(ctx context.Context, id string) (*Task, error)
	findAllByAssigneeFn func(ctx context.Context, employeeID string) ([]Task, error)
	findAllByCreatorFn  func(ctx context.Context, creatorID string) ([]Task, error)
	updateFn            func(ctx context.Context, t *Task) error
}

func (f *fakeTaskRepository) WithTx(tx *sql.Tx) Repository {
	if f.withTxFn != nil {
		return f.withTxFn(tx)
	}
	return f
}

func (f *fakeTaskRepository) Create(ctx context.Context, t *Task) error {
	if f.createFn != nil {
		return f.createFn(ctx, t)
	}
	return nil
}

func (f *fakeTaskRepository) FindByID(ctx context.Context, id string) (*Task, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeTaskRepository) FindAllByAssignee(ctx context.Context, employeeID string) ([]Task, error) {
	if f.findAllByAssigneeFn != nil {
		return f.findAllByAssigneeFn(ctx, employeeID)
	}
	return nil, nil
}

func (f *fakeTaskRepository) FindAllByCreator(ctx context.Context, creatorID string) ([]Task, error) {
	if f.findAllByCreatorFn != nil {
		return f.findAllByCreatorFn(ctx, creatorID)
	}
	return nil, nil
}

func (f *fakeTaskRepository) Update(ctx context.Context, t *Task) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, t)
	}
	return nil
}

func TestService_Create_Success(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	creatorID := uuid.New().String()
	assigneeID := uuid.New().String()
	var saved *Task
	repo := &fakeTaskRepository{
		createFn: func(ctx context.Context, row *Task) error { saved = row; return nil },
	}
	svc := NewService(db, repo)

	mock.ExpectBegin()
	mock.ExpectCommit()
	resp, err := svc.Create(context.Background(), creatorID, CreateTaskRequest{
		Title:      "prepare quarterly deck",
		AssignedTo: assigneeID,
		Priority:   PriorityHigh,
		DueDate:    "2024-03-15",
	})
	assert.NoError(t, err)
	assert.Equal(t, StatusPending, resp.Status)
	assert.Equal(t, ApprovalPending, resp.ApprovalStatus)
	assert.Equal(t, PriorityHigh, resp.Priority)
	assert.False(t, resp.IsUserAdded)
	assert.Equal(t, "2024-03-15", *resp.DueDate)
	assert.Equal(t, StatusPending, saved.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_Create_SelfAssignedIsUserAdded(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	employeeID := uuid.New().String()
	svc := NewService(db, &fakeTaskRepository{})

	mock.ExpectBegin()
	mock.ExpectCommit()
	resp, err := svc.Create(context.Background(), employeeID, CreateTaskRequest{
		Title:      "clean up inbox",
		AssignedTo: employeeID,
	})
	assert.NoError(t, err)
	assert.True(t, resp.IsUserAdded)
	assert.Equal(t, PriorityMedium, resp.Priority, "priority defaults to MEDIUM when omitted")
}

func TestService_Create_InvalidInput(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	created := false
	repo := &fakeTaskRepository{
		createFn: func(ctx context.Context, row *Task) error { created = true; return nil },
	}
	svc := NewService(db, repo)
	creatorID := uuid.New().String()

	cases := []struct {
		name    string
		req     CreateTaskRequest
		wantErr error
	}{
		{
			name:    "bad assignee id",
			req:     CreateTaskRequest{Title: "x", AssignedTo: "not-a-uuid"},
			wantErr: taskerrors.ErrInvalidEmployeeID,
		},
		{
			name:    "unknown priority",
			req:     CreateTaskRequest{Title: "x", AssignedTo: uuid.New().String(), Priority: "URGENT"},
			wantErr: taskerrors.ErrInvalidPriority,
		},
		{
			name:    "bad due date",
			req:     CreateTaskRequest{Title: "x", AssignedTo: uuid.New().String(), DueDate: "15-03-2024"},
			wantErr: taskerrors.ErrInvalidDueDate,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), creatorID, tc.req)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
	assert.False(t, created, "validation must run before any repository access")
}

func TestService_UpdateStatus_Success(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	taskID := uuid.New()
	var saved *Task
	repo := &fakeTaskRepository{
		findByIDFn: func(ctx context.Context, id string) (*Task, error) {
			return &Task{ID: taskID, AssignedTo: uuid.New(), CreatedBy: uuid.New(), Status: StatusInProgress}, nil
		},
		updateFn: func(ctx context.Context, row *Task) error { saved = row; return nil },
	}
	svc := NewService(db, repo)

	mock.ExpectBegin()
	mock.ExpectCommit()
	resp, err := svc.UpdateStatus(context.Background(), taskID.String(), UpdateTaskStatusRequest{Status: StatusCompleted})
	assert.NoError(t, err)
	assert.Equal(t, StatusCompleted, resp.Status)
	assert.Equal(t, StatusCompleted, saved.Status)
}

func TestService_UpdateStatus_InvalidStatus(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	svc := NewService(db, &fakeTaskRepository{})

	_, err := svc.UpdateStatus(context.Background(), uuid.New().String(), UpdateTaskStatusRequest{Status: "DONE"})
	assert.ErrorIs(t, err, taskerrors.ErrInvalidTaskStatus)
}

func TestService_UpdateStatus_NotFound(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	svc := NewService(db, &fakeTaskRepository{})

	mock.ExpectBegin()
	mock.ExpectRollback()
	_, err := svc.UpdateStatus(context.Background(), uuid.New().String(), UpdateTaskStatusRequest{Status: StatusCompleted})
	assert.ErrorIs(t, err, taskerrors.ErrTaskNotFound)
}

func TestService_Approve_Success(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	taskID := uuid.New()
	repo := &fakeTaskRepository{
		findByIDFn: func(ctx context.Context, id string) (*Task, error) {
			return &Task{ID: taskID, AssignedTo: uuid.New(), CreatedBy: uuid.New(), Status: StatusCompleted, ApprovalStatus: ApprovalPending}, nil
		},
	}
	svc := NewService(db, repo)

	mock.ExpectBegin()
	mock.ExpectCommit()
	resp, err := svc.Approve(context.Background(), uuid.New().String(), taskID.String())
	assert.NoError(t, err)
	assert.Equal(t, ApprovalApproved, resp.ApprovalStatus)
}

func TestService_GetAllByAssignee_InvalidID(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	svc := NewService(db, &fakeTaskRepository{})

	_, err := svc.GetAllByAssignee(context.Background(), "nope")
	assert.ErrorIs(t, err, taskerrors.ErrInvalidEmployeeID)
}
