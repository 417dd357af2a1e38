package employee

type CreateEmployeeRequest struct {
	FullName       string  `json:"full_name" binding:"required"`
	Email          string  `json:"email" binding:"required,email"`
	EmployeeNumber string  `json:"employee_number"`
	Department     string  `json:"department"`
	Position       string  `json:"position"`
	Role           string  `json:"role"`
	ManagerID      *string `json:"manager_id"`
	JoinDate       string  `json:"join_date" binding:"required"`
}

type UpdateEmployeeRequest struct {
	Department *string `json:"department"`
	Position   *string `json:"position"`
	Role       *string `json:"role"`
	ManagerID  *string `json:"manager_id"`
}

type EmployeeResponse struct {
	ID             string  `json:"id"`
	FullName       string  `json:"full_name"`
	Email          string  `json:"email,omitempty"`
	EmployeeNumber string  `json:"employee_number"`
	Department     string  `json:"department,omitempty"`
	Position       string  `json:"position,omitempty"`
	Role           string  `json:"role,omitempty"`
	ManagerID      *string `json:"manager_id,omitempty"`
	JoinDate       string  `json:"join_date,omitempty"`
}
