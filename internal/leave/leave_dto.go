package leave

type CreateLeaveRequest struct {
	StartDate string `json:"start_date" binding:"required"`
	EndDate   string `json:"end_date" binding:"required"`
	LeaveType string `json:"leave_type" binding:"required"`
	Reason    string `json:"reason"`
}

type DecideLeaveRequest struct {
	Decision string  `json:"decision" binding:"required"`
	Notes    *string `json:"notes"`
}

type LeaveResponse struct {
	ID            string  `json:"id"`
	EmployeeID    string  `json:"employee_id"`
	EmployeeName  string  `json:"employee_name,omitempty"`
	LeaveType     string  `json:"leave_type"`
	StartDate     string  `json:"start_date"`
	EndDate       string  `json:"end_date"`
	TotalDays     int     `json:"total_days"`
	Reason        string  `json:"reason,omitempty"`
	Status        string  `json:"status"`
	ApprovedBy    *string `json:"approved_by,omitempty"`
	DecidedAt     *string `json:"decided_at,omitempty"`
	DecisionNotes *string `json:"decision_notes,omitempty"`
}
