package todo

import "context"

// Client provides the todo endpoints the store depends on.
type Client interface {
	ListTodos(ctx context.Context, params ListParams) (*ListResponse, error)
	ToggleStatus(ctx context.Context, id string, current Status) (*Todo, error)
}
