package dashboard

import "github.com/tractionhq/mobilecore/internal/domain/user"

// Widget is a single tile on a dashboard.
type Widget struct {
	ID             string   `json:"_id"`
	Name           string   `json:"name"`
	WidgetType     string   `json:"widgetType"`
	TeamIDs        []string `json:"teamIds"`
	Type           string   `json:"type,omitempty"`
	Position       []int    `json:"position"`
	OwnerIDs       []string `json:"ownerIds"`
	QueryURL       string   `json:"queryUrl"`
	DashboardID    string   `json:"dashboardId"`
	CompanyID      string   `json:"companyId"`
	SyncGlobalTime bool     `json:"syncGlobalTime"`
	GroupBy        string   `json:"groupBy,omitempty"`
	Source         string   `json:"source,omitempty"`
	ChartType      string   `json:"chartType,omitempty"`
	TimeRange      string   `json:"timeRange,omitempty"`
	ReadOnly       bool     `json:"readOnly,omitempty"`
	CreatedAt      string   `json:"createdAt"`
	UpdatedAt      string   `json:"updatedAt"`
}

// Dashboard is a shared board of widgets as returned by /auth/dashboards.
type Dashboard struct {
	ID                   string            `json:"_id"`
	Name                 string            `json:"name"`
	IsFeatured           bool              `json:"isFeatured"`
	OwnerID              string            `json:"ownerId"`
	UserIDs              []string          `json:"userIds"`
	AccessControl        string            `json:"accessControl"`
	SharedIDs            []string          `json:"sharedIds"`
	UsersAccessControl   map[string]string `json:"usersAccessControl"`
	Owner                *user.User        `json:"owner,omitempty"`
	Widgets              []Widget          `json:"widgets"`
	Bookmark             bool              `json:"bookmark"`
	CurrentAccessControl string            `json:"currentAccessControl"`
	CreatedAt            string            `json:"createdAt"`
	UpdatedAt            string            `json:"updatedAt"`
}
