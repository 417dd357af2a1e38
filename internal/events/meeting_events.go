package events

import "time"

const MeetingNotificationTopic = "wfm.meeting.notification.v1"

type MeetingChangedEvent struct {
	EventType    string    `json:"event_type"`
	MeetingID    string    `json:"meeting_id"`
	CreatedBy    string    `json:"created_by"`
	Participants []string  `json:"participants"`
	ScheduledAt  time.Time `json:"scheduled_at"`
	OccurredAt   time.Time `json:"occurred_at"`
}
