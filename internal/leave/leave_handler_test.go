package leave_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-wfm/internal/leave"
	leaveerrors "go-wfm/internal/leave/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeLeaveService struct {
	createFn  func(ctx context.Context, employeeID string, req leave.CreateLeaveRequest) (leave.LeaveResponse, error)
	decideFn  func(ctx context.Context, approverID, id string, req leave.DecideLeaveRequest) (leave.LeaveResponse, error)
	getAllFn  func(ctx context.Context, actorID string, canReadAll bool) ([]leave.LeaveResponse, error)
	getByIDFn func(ctx context.Context, id string) (leave.LeaveResponse, error)
}

func (f *fakeLeaveService) Create(ctx context.Context, employeeID string, req leave.CreateLeaveRequest) (leave.LeaveResponse, error) {
	return f.createFn(ctx, employeeID, req)
}
func (f *fakeLeaveService) Decide(ctx context.Context, approverID, id string, req leave.DecideLeaveRequest) (leave.LeaveResponse, error) {
	return f.decideFn(ctx, approverID, id, req)
}
func (f *fakeLeaveService) GetAll(ctx context.Context, actorID string, canReadAll bool) ([]leave.LeaveResponse, error) {
	return f.getAllFn(ctx, actorID, canReadAll)
}
func (f *fakeLeaveService) GetByID(ctx context.Context, id string) (leave.LeaveResponse, error) {
	return f.getByIDFn(ctx, id)
}

func TestHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)
	employeeID := uuid.New().String()

	svc := &fakeLeaveService{
		createFn: func(ctx context.Context, eid string, req leave.CreateLeaveRequest) (leave.LeaveResponse, error) {
			assert.Equal(t, employeeID, eid)
			assert.Equal(t, "2024-02-10", req.StartDate)
			return leave.LeaveResponse{ID: uuid.New().String(), Status: leave.StatusPending}, nil
		},
	}
	h := leave.NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("employee_id", employeeID)
	c.Request = httptest.NewRequest(http.MethodPost, "/leaves",
		strings.NewReader(`{"start_date":"2024-02-10","end_date":"2024-02-12","leave_type":"ANNUAL","reason":"trip"}`))
	c.Request.Header.Set("Content-Type", "application/json")
	h.Create(c)
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestHandler_Create_MissingFields(t *testing.T) {
	gin.SetMode(gin.TestMode)

	h := leave.NewHandler(&fakeLeaveService{})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("employee_id", uuid.New().String())
	c.Request = httptest.NewRequest(http.MethodPost, "/leaves", strings.NewReader(`{"reason":"trip"}`))
	c.Request.Header.Set("Content-Type", "application/json")
	h.Create(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_Create_Overlap(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeLeaveService{
		createFn: func(ctx context.Context, eid string, req leave.CreateLeaveRequest) (leave.LeaveResponse, error) {
			return leave.LeaveResponse{}, leaveerrors.ErrOverlappingLeaveRequest
		},
	}
	h := leave.NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("employee_id", uuid.New().String())
	c.Request = httptest.NewRequest(http.MethodPost, "/leaves",
		strings.NewReader(`{"start_date":"2024-02-10","end_date":"2024-02-12","leave_type":"ANNUAL"}`))
	c.Request.Header.Set("Content-Type", "application/json")
	h.Create(c)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_Decide(t *testing.T) {
	gin.SetMode(gin.TestMode)
	approverID := uuid.New().String()
	leaveID := uuid.New().String()

	svc := &fakeLeaveService{
		decideFn: func(ctx context.Context, aid, id string, req leave.DecideLeaveRequest) (leave.LeaveResponse, error) {
			assert.Equal(t, approverID, aid)
			assert.Equal(t, leaveID, id)
			return leave.LeaveResponse{ID: id, Status: req.Decision}, nil
		},
	}
	h := leave.NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("employee_id", approverID)
	c.Params = gin.Params{{Key: "id", Value: leaveID}}
	c.Request = httptest.NewRequest(http.MethodPatch, "/leaves/"+leaveID+"/decision",
		strings.NewReader(`{"decision":"APPROVED"}`))
	c.Request.Header.Set("Content-Type", "application/json")
	h.Decide(c)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "APPROVED")
}
