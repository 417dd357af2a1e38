package events

import "time"

const LeaveNotificationTopic = "wfm.leave.notification.v1"

type LeaveSubmittedEvent struct {
	EventType  string    `json:"event_type"`
	LeaveID    string    `json:"leave_id"`
	EmployeeID string    `json:"employee_id"`
	StartDate  string    `json:"start_date"`
	EndDate    string    `json:"end_date"`
	LeaveType  string    `json:"leave_type"`
	OccurredAt time.Time `json:"occurred_at"`
}

type LeaveDecidedEvent struct {
	EventType  string    `json:"event_type"`
	LeaveID    string    `json:"leave_id"`
	EmployeeID string    `json:"employee_id"`
	Decision   string    `json:"decision"`
	ApproverID string    `json:"approver_id"`
	OccurredAt time.Time `json:"occurred_at"`
}
