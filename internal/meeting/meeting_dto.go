package meeting

type CreateMeetingRequest struct {
	Title        string   `json:"title" binding:"required"`
	Description  string   `json:"description"`
	StartTime    string   `json:"start_time" binding:"required"`
	EndTime      string   `json:"end_time" binding:"required"`
	Location     string   `json:"location"`
	Participants []string `json:"participants" binding:"required"`
}

type UpdateMeetingRequest struct {
	Title        *string  `json:"title"`
	Description  *string  `json:"description"`
	StartTime    *string  `json:"start_time"`
	EndTime      *string  `json:"end_time"`
	Location     *string  `json:"location"`
	Participants []string `json:"participants"`
}

type MeetingResponse struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description,omitempty"`
	CreatedBy    string   `json:"created_by"`
	StartTime    string   `json:"start_time"`
	EndTime      string   `json:"end_time"`
	Location     string   `json:"location,omitempty"`
	Participants []string `json:"participants"`
	CreatedAt    string   `json:"created_at"`
}
