// Package user holds account and workspace models returned by the auth
// endpoints.
package user

// Owner is the denormalized owner/assignee reference embedded in todos,
// rocks, and milestones.
type Owner struct {
	ID       string `json:"_id"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Avatar   string `json:"avatar"`
}

// Subscription describes the workspace subscription attached to a user.
type Subscription struct {
	Status           string `json:"status"`
	ExpiredAt        string `json:"expiredAt"`
	SubscriptionType string `json:"subscriptionType"`
}

// Tenant is the workspace/organization a user belongs to. The tenant key is
// what the backend expects in the tenant-id header.
type Tenant struct {
	ID        string `json:"_id"`
	Name      string `json:"name"`
	Key       string `json:"key"`
	Industry  string `json:"industry"`
	Website   string `json:"website"`
	Logo      string `json:"logo"`
	IsActive  bool   `json:"isActive"`
	TimeZone  int    `json:"timeZone"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// User is the profile returned by GET /auth/users/me.
type User struct {
	ID           string        `json:"_id"`
	Email        string        `json:"email"`
	FullName     string        `json:"fullName"`
	Avatar       string        `json:"avatar"`
	Phone        string        `json:"phone"`
	Birthday     string        `json:"birthday"`
	Address      string        `json:"address"`
	Bio          string        `json:"bio"`
	Language     string        `json:"language"`
	Role         string        `json:"role"`
	EmployeeCode string        `json:"employeeCode"`
	IsActive     bool          `json:"isActive"`
	IsVerify     bool          `json:"isVerify"`
	LastLogin    string        `json:"lastLogin"`
	LastActivity string        `json:"lastActivity"`
	CreatedAt    string        `json:"createdAt"`
	UpdatedAt    string        `json:"updatedAt"`
	Subscription *Subscription `json:"subscription,omitempty"`
	Tenant       *Tenant       `json:"tenant,omitempty"`
}
