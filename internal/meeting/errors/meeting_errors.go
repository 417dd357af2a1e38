package meetingerrors

import (
	"net/http"

	"go-wfm/internal/shared/apperror"
)

var (
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid employee id",
		http.StatusBadRequest,
	)
	ErrInvalidMeetingID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid meeting id",
		http.StatusBadRequest,
	)
	ErrInvalidTimeFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid time format, expected RFC3339",
		http.StatusBadRequest,
	)
	ErrInvalidTimeRange = apperror.New(
		apperror.CodeInvalidInput,
		"end_time must not be before start_time",
		http.StatusBadRequest,
	)
	ErrNoParticipants = apperror.New(
		apperror.CodeInvalidInput,
		"at least one participant is required",
		http.StatusBadRequest,
	)
	ErrMeetingNotFound = apperror.New(
		apperror.CodeNotFound,
		"meeting not found",
		http.StatusNotFound,
	)
)
