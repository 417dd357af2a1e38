package task

type CreateTaskRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description"`
	AssignedTo  string  `json:"assigned_to" binding:"required"`
	ManagerID   *string `json:"manager_id"`
	Priority    string  `json:"priority"`
	DueDate     string  `json:"due_date"`
}

type UpdateTaskStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type TaskResponse struct {
	ID             string  `json:"id"`
	Title          string  `json:"title"`
	Description    string  `json:"description,omitempty"`
	AssignedTo     string  `json:"assigned_to"`
	CreatedBy      string  `json:"created_by"`
	ManagerID      *string `json:"manager_id,omitempty"`
	Priority       string  `json:"priority"`
	Status         string  `json:"status"`
	ApprovalStatus string  `json:"approval_status"`
	IsUserAdded    bool    `json:"is_user_added"`
	DueDate        *string `json:"due_date,omitempty"`
	CreatedAt      string  `json:"created_at"`
}
