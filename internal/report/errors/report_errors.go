package reporterrors

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
	ErrInvalidReportID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid report id",
		http.StatusBadRequest,
	)
	ErrInvalidPeriod = apperror.New(
		apperror.CodeInvalidInput,
		"month must be 1-12 and year must be a four digit year",
		http.StatusBadRequest,
	)
	ErrInvalidScore = apperror.New(
		apperror.CodeInvalidInput,
		"performance_score must be between 0 and 100",
		http.StatusBadRequest,
	)
	ErrEmptyAmendment = apperror.New(
		apperror.CodeInvalidInput,
		"at least one of feedback or performance_score is required",
		http.StatusBadRequest,
	)
	ErrReportAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"a report for this employee and period already exists",
		http.StatusConflict,
	)
	ErrReportNotFound = apperror.New(
		apperror.CodeNotFound,
		"report not found",
		http.StatusNotFound,
	)
)
