package dashboard

// EmployeeStats is the self-scoped view.
type EmployeeStats struct {
	Role                    string           `json:"role"`
	AttendanceToday         *AttendanceToday `json:"attendance_today"`
	PresentDaysThisMonth    int64            `json:"present_days_this_month"`
	OpenTasks               int64            `json:"open_tasks"`
	CompletedTasksThisMonth int64            `json:"completed_tasks_this_month"`
	PendingLeaveRequests    int64            `json:"pending_leave_requests"`
	MeetingsToday           int64            `json:"meetings_today"`
	CurrentMonthReport      *ReportSummary   `json:"current_month_report"`
}

// ManagerStats is scoped to the manager's direct reports and own created
// tasks/meetings.
type ManagerStats struct {
	Role                 string           `json:"role"`
	TeamSize             int64            `json:"team_size"`
	PresentToday         int64            `json:"present_today"`
	AbsentToday          int64            `json:"absent_today"`
	LateToday            int64            `json:"late_today"`
	PendingLeaveRequests int64            `json:"pending_leave_requests"`
	OpenTasksCreated     int64            `json:"open_tasks_created"`
	MeetingsCreatedToday int64            `json:"meetings_created_today"`
	TaskStatusThisMonth  map[string]int64 `json:"task_status_this_month"`
}

// ExecutiveStats mirrors ManagerStats but organization wide.
type ExecutiveStats struct {
	Role                 string           `json:"role"`
	TotalEmployees       int64            `json:"total_employees"`
	TotalManagers        int64            `json:"total_managers"`
	PresentToday         int64            `json:"present_today"`
	AbsentToday          int64            `json:"absent_today"`
	LateToday            int64            `json:"late_today"`
	PendingLeaveRequests int64            `json:"pending_leave_requests"`
	OpenTasks            int64            `json:"open_tasks"`
	MeetingsToday        int64            `json:"meetings_today"`
	TaskStatusThisMonth  map[string]int64 `json:"task_status_this_month"`
}
