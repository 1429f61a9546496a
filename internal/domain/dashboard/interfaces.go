package dashboard

import "context"

// Client provides the dashboard endpoints the store depends on.
type Client interface {
	ListDashboards(ctx context.Context) ([]Dashboard, error)
}
