package rock

import "github.com/tractionhq/mobilecore/internal/domain/user"

// Status is the rock/milestone tracking status.
type Status string

const (
	StatusOnTrack  Status = "ON_TRACK"
	StatusOffTrack Status = "OFF_TRACK"
	StatusDone     Status = "DONE"
)

// Type distinguishes company-level rocks from individual ones.
type Type string

const (
	TypeCompany    Type = "company"
	TypeIndividual Type = "individual"
)

// MilestoneType describes how a milestone's progress is measured.
type MilestoneType string

const (
	MilestoneMeasurable MilestoneType = "MEASURABLE"
	MilestoneTracked    MilestoneType = "TRACKED"
)

// MilestoneUnit is the unit of a measurable milestone.
type MilestoneUnit string

const (
	UnitAchievable MilestoneUnit = "ACHIEVABLE"
	UnitNumber     MilestoneUnit = "NUMBER"
	UnitPercentage MilestoneUnit = "PERCENTAGE"
	UnitCurrency   MilestoneUnit = "CURRENCY"
)

// MilestoneStep is a scheduled slice of a milestone's plan.
type MilestoneStep struct {
	ID          string  `json:"_id"`
	Title       string  `json:"title"`
	StartDay    string  `json:"startDay"`
	EndDay      string  `json:"endDay"`
	PercentDone float64 `json:"percentDone"`
}

// MilestoneRecord is one check-in entry on a milestone.
type MilestoneRecord struct {
	Percent     float64 `json:"percent"`
	Description string  `json:"description"`
	DateTime    string  `json:"dateTime"`
	UpdatedByID string  `json:"updatedById"`
}

// Milestone is a tracked sub-goal of a rock.
type Milestone struct {
	ID             string            `json:"_id"`
	Title          string            `json:"title"`
	RockID         string            `json:"rockId"`
	Priority       int               `json:"priority"`
	Status         Status            `json:"status"`
	DueDate        string            `json:"dueDate"`
	StartDate      string            `json:"startDate"`
	Description    string            `json:"description"`
	IsDeleted      bool              `json:"isDeleted"`
	AssigneeID     string            `json:"assigneeId"`
	Assignee       user.Owner        `json:"assignee"`
	OwnerID        string            `json:"ownerId"`
	Type           MilestoneType     `json:"type"`
	Unit           MilestoneUnit     `json:"unit,omitempty"`
	FromValue      *float64          `json:"fromValue,omitempty"`
	ToValue        *float64          `json:"toValue,omitempty"`
	CurrentPercent *float64          `json:"currentPercent"`
	Steps          []MilestoneStep   `json:"steps"`
	Records        []MilestoneRecord `json:"records"`
	IsManualStatus bool              `json:"isManualStatus"`
	Currency       string            `json:"currency,omitempty"`
	CreatedAt      string            `json:"createdAt"`
	UpdatedAt      string            `json:"updatedAt"`
}

// Rock is a goal record with milestones and computed progress.
type Rock struct {
	ID              string      `json:"_id"`
	Title           string      `json:"title"`
	TeamID          string      `json:"teamId"`
	TeamIDs         []string    `json:"teamIds"`
	CompanyID       string      `json:"companyId"`
	DueDate         string      `json:"dueDate"`
	StartDate       string      `json:"startDate,omitempty"`
	RockType        Type        `json:"rockType"`
	Status          Status      `json:"status"`
	IsArchived      bool        `json:"isArchived"`
	Description     string      `json:"description"`
	IsDeleted       bool        `json:"isDeleted"`
	IsManualStatus  bool        `json:"isManualStatus"`
	SessionID       string      `json:"sessionId"`
	SessionIDs      []string    `json:"sessionIds"`
	SessionName     string      `json:"sessionName"`
	CreatedAt       string      `json:"createdAt"`
	UpdatedAt       string      `json:"updatedAt"`
	OwnerID         string      `json:"ownerId"`
	Owner           user.Owner  `json:"rockOwner"`
	ParentID        string      `json:"parentId"`
	PercentDone     *float64    `json:"percentDone,omitempty"`
	Milestones      []Milestone `json:"milestones"`
	DoneMilestones  int         `json:"doneMilestones"`
	TotalMilestones int         `json:"totalMilestones"`
	Progress        float64     `json:"progress"`
	Priority        int         `json:"priority"`
	TotalComments   int         `json:"totalComments"`
	Weight          *float64    `json:"weight,omitempty"`
}

// ListParams filters the rock list endpoint. Text filters are sent as empty
// strings when unset; the backend treats them as "no filter".
type ListParams struct {
	Rock       string
	PIC        string
	RangeStart string
	RangeEnd   string
	TeamID     string
	SessionID  string
}

// CreateInput is the body of POST /eos-core/rocks.
type CreateInput struct {
	Title       string `json:"title"`
	TeamID      string `json:"teamId"`
	DueDate     string `json:"dueDate"`
	StartDate   string `json:"startDate,omitempty"`
	RockType    Type   `json:"rockType"`
	Status      Status `json:"status"`
	Description string `json:"description,omitempty"`
	OwnerID     string `json:"ownerId"`
	SessionID   string `json:"sessionId"`
}

// UpdateInput is a partial rock update for PATCH /eos-core/rocks/:id.
type UpdateInput struct {
	Title       *string `json:"title,omitempty"`
	TeamID      *string `json:"teamId,omitempty"`
	DueDate     *string `json:"dueDate,omitempty"`
	StartDate   *string `json:"startDate,omitempty"`
	RockType    *Type   `json:"rockType,omitempty"`
	Status      *Status `json:"status,omitempty"`
	Description *string `json:"description,omitempty"`
	OwnerID     *string `json:"ownerId,omitempty"`
	SessionID   *string `json:"sessionId,omitempty"`
}
