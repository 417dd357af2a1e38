package report

type GenerateReportRequest struct {
	EmployeeID string `json:"employee_id" binding:"required"`
	Month      int    `json:"month" binding:"required"`
	Year       int    `json:"year" binding:"required"`
}

type AmendReportRequest struct {
	Feedback         *string  `json:"feedback"`
	PerformanceScore *float64 `json:"performance_score"`
}

type ReportResponse struct {
	ID               string  `json:"id"`
	EmployeeID       string  `json:"employee_id"`
	Month            int     `json:"month"`
	Year             int     `json:"year"`
	TotalTasks       int     `json:"total_tasks"`
	CompletedTasks   int     `json:"completed_tasks"`
	PendingTasks     int     `json:"pending_tasks"`
	PerformanceScore float64 `json:"performance_score"`
	Feedback         *string `json:"feedback,omitempty"`
	GeneratedBy      *string `json:"generated_by,omitempty"`
	CreatedAt        string  `json:"created_at"`
}
