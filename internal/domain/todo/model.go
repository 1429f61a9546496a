package todo

import "github.com/tractionhq/mobilecore/internal/domain/user"

// Status is the two-state todo status.
type Status string

const (
	StatusOnTrack Status = "ON_TRACK"
	StatusDone    Status = "DONE"
)

// Toggle returns the opposite status (DONE <-> ON_TRACK).
func (s Status) Toggle() Status {
	if s == StatusDone {
		return StatusOnTrack
	}
	return StatusDone
}

// PriorityType marks high-priority todos; the backend sends an empty string
// for normal priority.
type PriorityType string

const (
	PriorityHigh   PriorityType = "HIGH"
	PriorityNormal PriorityType = ""
)

// Todo is an action item as returned by /eos-core/todos.
type Todo struct {
	ID            string       `json:"_id"`
	Title         string       `json:"title"`
	TeamID        string       `json:"teamId"`
	Priority      int          `json:"priority"`
	Status        Status       `json:"status"`
	IsArchived    bool         `json:"isArchived"`
	IsPrivated    bool         `json:"isPrivated"`
	IsFromMeeting bool         `json:"isFromMeeting"`
	MeetingID     *string      `json:"meetingId,omitempty"`
	Description   string       `json:"description"`
	CreatedAt     string       `json:"createdAt"`
	UpdatedAt     string       `json:"updatedAt"`
	IsDeleted     bool         `json:"isDeleted"`
	DueDate       string       `json:"dueDate"`
	OwnerID       string       `json:"ownerId"`
	Owner         user.Owner   `json:"owner"`
	IssueID       *string      `json:"issueId,omitempty"`
	PriorityType  PriorityType `json:"priorityType"`
	DoneAt        *string      `json:"doneAt,omitempty"`
	IsOverdue     int          `json:"isOverduedate"`
	TotalComments int          `json:"totalComments,omitempty"`
	CompanyID     string       `json:"companyId,omitempty"`
}

// ListResponse is the paginated payload of GET /eos-core/todos.
type ListResponse struct {
	Items       []Todo `json:"items"`
	ItemPerPage int    `json:"itemPerPage"`
	Page        int    `json:"page"`
	Total       int    `json:"total"`
}

// ListParams filters the todo list endpoint. Zero values match the backend
// defaults except ItemPerPage and Page, which the client defaults to 50 and 1.
type ListParams struct {
	GetAll      bool
	InMeeting   bool
	IsArchived  bool
	ItemPerPage int
	Page        int
	TeamIDs     string
}

// CreateInput is one element of the POST /eos-core/todos/many body.
type CreateInput struct {
	OwnerID                string       `json:"ownerId"`
	TeamID                 string       `json:"teamId"`
	Title                  string       `json:"title"`
	Description            string       `json:"description,omitempty"`
	DueDate                string       `json:"dueDate"`
	Status                 Status       `json:"status"`
	IsPrivated             bool         `json:"isPrivated,omitempty"`
	PriorityType           PriorityType `json:"priorityType,omitempty"`
	SaveHistoryDescription bool         `json:"saveHistoryDescription,omitempty"`
}

// UpdateInput is a partial todo update; nil fields are left untouched by the
// backend, which lets the status toggle patch a single field.
type UpdateInput struct {
	OwnerID     *string       `json:"ownerId,omitempty"`
	TeamID      *string       `json:"teamId,omitempty"`
	Title       *string       `json:"title,omitempty"`
	Description *string       `json:"description,omitempty"`
	DueDate     *string       `json:"dueDate,omitempty"`
	Status      *Status       `json:"status,omitempty"`
	IsPrivated  *bool         `json:"isPrivated,omitempty"`
	Priority    *PriorityType `json:"priorityType,omitempty"`
}
