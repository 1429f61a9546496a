package api

import (
	"context"
	"fmt"

	"github.com/tractionhq/mobilecore/internal/domain/dashboard"
	"github.com/tractionhq/mobilecore/internal/gateway"
)

// DashboardClient talks to the /auth/dashboards endpoint.
type DashboardClient struct {
	gw *gateway.Client
}

// NewDashboardClient creates a dashboard client over the gateway.
func NewDashboardClient(gw *gateway.Client) *DashboardClient {
	return &DashboardClient{gw: gw}
}

// ListDashboards fetches all dashboards visible to the current user. A nil
// payload comes back as an empty slice.
func (c *DashboardClient) ListDashboards(ctx context.Context) ([]dashboard.Dashboard, error) {
	resp, err := c.gw.Get(ctx, "/auth/dashboards", nil)
	if err != nil {
		return nil, ErrNetwork
	}
	if !resp.OK {
		return nil, responseError(resp, "Failed to fetch dashboards")
	}

	var dashboards []dashboard.Dashboard
	if err := resp.Decode(&dashboards); err != nil {
		return nil, fmt.Errorf("decoding dashboards: %w", err)
	}
	if dashboards == nil {
		dashboards = []dashboard.Dashboard{}
	}
	return dashboards, nil
}
