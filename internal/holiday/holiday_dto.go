package holiday

type HolidayResponse struct {
	Date string `json:"date"`
	Name string `json:"name"`
}
