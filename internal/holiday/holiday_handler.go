package holiday

import (
	"net/http"
	"strconv"
	"time"

	"go-wfm/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

// GetForMonth lists the derived holidays of a month. Defaults to the
// current UTC month when no query params are given.
func (h *Handler) GetForMonth(c *gin.Context) {
	now := time.Now().UTC()

	year, err := strconv.Atoi(c.DefaultQuery("year", strconv.Itoa(now.Year())))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "year must be a number", nil)
		return
	}
	month, err := strconv.Atoi(c.DefaultQuery("month", strconv.Itoa(int(now.Month()))))
	if err != nil || month < 1 || month > 12 {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "month must be between 1 and 12", nil)
		return
	}

	days := MonthHolidays(year, time.Month(month))
	resp := make([]HolidayResponse, 0, len(days))
	for _, d := range days {
		name, _ := HolidayName(d)
		resp = append(resp, HolidayResponse{
			Date: d.Format("2006-01-02"),
			Name: name,
		})
	}

	response.Success(c, http.StatusOK, resp, nil)
}
