package events

import "time"

const TaskNotificationTopic = "wfm.task.notification.v1"

type TaskAssignedEvent struct {
	EventType  string    `json:"event_type"`
	TaskID     string    `json:"task_id"`
	AssignedTo string    `json:"assigned_to"`
	CreatedBy  string    `json:"created_by"`
	Priority   string    `json:"priority"`
	DueDate    string    `json:"due_date,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

type TaskApprovedEvent struct {
	EventType  string    `json:"event_type"`
	TaskID     string    `json:"task_id"`
	AssignedTo string    `json:"assigned_to"`
	ApprovedBy string    `json:"approved_by"`
	OccurredAt time.Time `json:"occurred_at"`
}
