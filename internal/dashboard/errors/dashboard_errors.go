package dashboarderrors

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
	ErrUnknownRole = apperror.New(
		apperror.CodeInvalidInput,
		"role must be EMPLOYEE, MANAGER or EXECUTIVE",
		http.StatusBadRequest,
	)
)
