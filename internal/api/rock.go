package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/tractionhq/mobilecore/internal/domain/rock"
	"github.com/tractionhq/mobilecore/internal/gateway"
)

// RockClient talks to the /eos-core/rocks endpoints.
type RockClient struct {
	gw *gateway.Client
}

// NewRockClient creates a rock client over the gateway.
func NewRockClient(gw *gateway.Client) *RockClient {
	return &RockClient{gw: gw}
}

// ListRocks fetches rocks matching the filters. Text filters are sent as
// empty strings when unset; teamId and sessionId are omitted entirely.
func (c *RockClient) ListRocks(ctx context.Context, params rock.ListParams) ([]rock.Rock, error) {
	query := url.Values{}
	query.Set("rock", params.Rock)
	query.Set("pic", params.PIC)
	query.Set("rangeStart", params.RangeStart)
	query.Set("rangeEnd", params.RangeEnd)
	if params.TeamID != "" {
		query.Set("teamId", params.TeamID)
	}
	if params.SessionID != "" {
		query.Set("sessionId", params.SessionID)
	}

	resp, err := c.gw.Get(ctx, "/eos-core/rocks", query)
	if err != nil {
		return nil, ErrNetwork
	}
	if !resp.OK {
		return nil, responseError(resp, "Failed to fetch rocks")
	}

	var rocks []rock.Rock
	if err := resp.Decode(&rocks); err != nil {
		return nil, fmt.Errorf("decoding rocks: %w", err)
	}
	return rocks, nil
}

// GetRock fetches a single rock with its milestones.
func (c *RockClient) GetRock(ctx context.Context, id string) (*rock.Rock, error) {
	resp, err := c.gw.Get(ctx, "/eos-core/rocks/"+id, nil)
	if err != nil {
		return nil, ErrNetwork
	}
	if !resp.OK {
		return nil, responseError(resp, "Failed to fetch rock")
	}

	var r rock.Rock
	if err := resp.Decode(&r); err != nil {
		return nil, fmt.Errorf("decoding rock: %w", err)
	}
	return &r, nil
}

// CreateRock creates a new rock.
func (c *RockClient) CreateRock(ctx context.Context, input rock.CreateInput) (*rock.Rock, error) {
	resp, err := c.gw.Post(ctx, "/eos-core/rocks", input)
	if err != nil {
		return nil, ErrNetwork
	}
	if !resp.OK {
		return nil, responseError(resp, "Failed to create rock")
	}

	var r rock.Rock
	if err := resp.Decode(&r); err != nil {
		return nil, fmt.Errorf("decoding rock: %w", err)
	}
	return &r, nil
}

// UpdateRock applies a partial update to a rock.
func (c *RockClient) UpdateRock(ctx context.Context, id string, input rock.UpdateInput) (*rock.Rock, error) {
	resp, err := c.gw.Patch(ctx, "/eos-core/rocks/"+id, input)
	if err != nil {
		return nil, ErrNetwork
	}
	if !resp.OK {
		return nil, responseError(resp, "Failed to update rock")
	}

	var r rock.Rock
	if err := resp.Decode(&r); err != nil {
		return nil, fmt.Errorf("decoding rock: %w", err)
	}
	return &r, nil
}
