// Package api contains the resource clients: one stateless client per
// backend resource, translating domain operations into gateway calls and
// mapping responses to typed results.
package api

import (
	"errors"

	"github.com/tractionhq/mobilecore/internal/gateway"
)

// ErrNetwork is returned for any transport-level failure (DNS, timeout,
// connection reset). Application errors carry the backend message instead;
// callers cannot tell the two apart without inspecting the text, which is a
// known limitation of the upstream contract.
var ErrNetwork = errors.New("Network error")

// responseError turns a non-OK HTTP response into an error carrying the
// backend's message, or the per-operation fallback.
func responseError(resp *gateway.Response, fallback string) error {
	return errors.New(resp.ErrorMessage(fallback))
}
