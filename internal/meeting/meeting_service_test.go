package meeting

import (
	"context"
	"database/sql"
	"testing"

	meetingerrors "go-wfm/internal/meeting/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeMeetingRepository struct {
	withTxFn               func(tx *sql.Tx) Repository
	createFn               func(ctx context.Context, m *Meeting) error
	findByIDFn             func(ctx context.Context, id string) (*Meeting, error)
	findAllByParticipantFn func(ctx context.Context, employeeID string) ([]Meeting, error)
	findAllByCreatorFn     func(ctx context.Context, creatorID string) ([]Meeting, error)
	updateFn               func(ctx context.Context, m *Meeting) error
	replaceParticipantsFn  func(ctx context.Context, meetingID string, participants []MeetingParticipant) error
}

func (f *fakeMeetingRepository) WithTx(tx *sql.Tx) Repository {
	if f.withTxFn != nil {
		return f.withTxFn(tx)
	}
	return f
}

func (f *fakeMeetingRepository) Create(ctx context.Context, m *Meeting) error {
	if f.createFn != nil {
		return f.createFn(ctx, m)
	}
	return nil
}

func (f *fakeMeetingRepository) FindByID(ctx context.Context, id string) (*Meeting, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeMeetingRepository) FindAllByParticipant(ctx context.Context, employeeID string) ([]Meeting, error) {
	if f.findAllByParticipantFn != nil {
		return f.findAllByParticipantFn(ctx, employeeID)
	}
	return nil, nil
}

func (f *fakeMeetingRepository) FindAllByCreator(ctx context.Context, creatorID string) ([]Meeting, error) {
	if f.findAllByCreatorFn != nil {
		return f.findAllByCreatorFn(ctx, creatorID)
	}
	return nil, nil
}

func (f *fakeMeetingRepository) Update(ctx context.Context, m *Meeting) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, m)
	}
	return nil
}

func (f *fakeMeetingRepository) ReplaceParticipants(ctx context.Context, meetingID string, participants []MeetingParticipant) error {
	if f.replaceParticipantsFn != nil {
		return f.replaceParticipantsFn(ctx, meetingID, participants)
	}
	return nil
}

func TestService_Create_Success(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	creatorID := uuid.New().String()
	p1 := uuid.New().String()
	p2 := uuid.New().String()
	var saved *Meeting
	repo := &fakeMeetingRepository{
		createFn: func(ctx context.Context, m *Meeting) error { saved = m; return nil },
	}
	svc := NewService(db, repo)

	mock.ExpectBegin()
	mock.ExpectCommit()
	resp, err := svc.Create(context.Background(), creatorID, CreateMeetingRequest{
		Title:        "sprint planning",
		StartTime:    "2024-02-12T09:00:00Z",
		EndTime:      "2024-02-12T10:00:00Z",
		Participants: []string{p1, p2},
	})
	assert.NoError(t, err)
	assert.Len(t, resp.Participants, 2)
	assert.Len(t, saved.Participants, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_Create_DeduplicatesParticipants(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	p := uuid.New().String()
	svc := NewService(db, &fakeMeetingRepository{})

	mock.ExpectBegin()
	mock.ExpectCommit()
	resp, err := svc.Create(context.Background(), uuid.New().String(), CreateMeetingRequest{
		Title:        "one on one",
		StartTime:    "2024-02-12T09:00:00Z",
		EndTime:      "2024-02-12T09:30:00Z",
		Participants: []string{p, p},
	})
	assert.NoError(t, err)
	assert.Len(t, resp.Participants, 1)
}

func TestService_Create_InvalidInput(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	created := false
	repo := &fakeMeetingRepository{
		createFn: func(ctx context.Context, m *Meeting) error { created = true; return nil },
	}
	svc := NewService(db, repo)
	creatorID := uuid.New().String()
	participant := uuid.New().String()

	cases := []struct {
		name    string
		req     CreateMeetingRequest
		wantErr error
	}{
		{
			name: "bad time format",
			req: CreateMeetingRequest{
				Title: "x", StartTime: "09:00", EndTime: "2024-02-12T10:00:00Z",
				Participants: []string{participant},
			},
			wantErr: meetingerrors.ErrInvalidTimeFormat,
		},
		{
			name: "end before start",
			req: CreateMeetingRequest{
				Title: "x", StartTime: "2024-02-12T10:00:00Z", EndTime: "2024-02-12T09:00:00Z",
				Participants: []string{participant},
			},
			wantErr: meetingerrors.ErrInvalidTimeRange,
		},
		{
			name: "no participants",
			req: CreateMeetingRequest{
				Title: "x", StartTime: "2024-02-12T09:00:00Z", EndTime: "2024-02-12T10:00:00Z",
			},
			wantErr: meetingerrors.ErrNoParticipants,
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

func TestService_Update_NotFound(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	svc := NewService(db, &fakeMeetingRepository{})

	title := "renamed"
	mock.ExpectBegin()
	mock.ExpectRollback()
	_, err := svc.Update(context.Background(), uuid.New().String(), UpdateMeetingRequest{Title: &title})
	assert.ErrorIs(t, err, meetingerrors.ErrMeetingNotFound)
}
