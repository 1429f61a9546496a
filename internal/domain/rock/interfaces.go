package rock

import "context"

// Client provides the rock endpoints the store depends on.
type Client interface {
	ListRocks(ctx context.Context, params ListParams) ([]Rock, error)
}
