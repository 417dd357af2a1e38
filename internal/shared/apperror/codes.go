package apperror

// Error codes surfaced in the response envelope. CONFLICT covers the
// duplicate-submission family (second check-in of the day, overlapping
// leave request, report for an existing period); INVALID_STATE covers
// operations out of order (check-out before check-in, deciding a leave
// request twice).
const (
	CodeInvalidInput = "INVALID_INPUT"
	CodeUnauthorized = "UNAUTHORIZED"
	CodeForbidden    = "FORBIDDEN"
	CodeNotFound     = "NOT_FOUND"
	CodeConflict     = "CONFLICT"
	CodeInvalidState = "INVALID_STATE"

	CodeInternalError = "INTERNAL_ERROR"
)
