package api

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tractionhq/mobilecore/internal/domain/dashboard"
	"github.com/tractionhq/mobilecore/internal/domain/rock"
)

func TestRockClient_ListRocks_QueryShape(t *testing.T) {
	gw := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		// Text filters ride along as empty strings; optional ids are omitted.
		require.True(t, q.Has("rock"))
		require.True(t, q.Has("pic"))
		require.True(t, q.Has("rangeStart"))
		require.True(t, q.Has("rangeEnd"))
		require.False(t, q.Has("teamId"))
		require.Equal(t, "sess-1", q.Get("sessionId"))
		w.Write([]byte(`[{"_id":"r1","status":"ON_TRACK","progress":40}]`))
	})

	rocks, err := NewRockClient(gw).ListRocks(context.Background(), rock.ListParams{SessionID: "sess-1"})
	require.NoError(t, err)
	require.Len(t, rocks, 1)
	require.Equal(t, rock.StatusOnTrack, rocks[0].Status)
}

func TestRockClient_GetRock(t *testing.T) {
	gw := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/eos-core/rocks/r1", r.URL.Path)
		w.Write([]byte(`{"_id":"r1","milestones":[{"_id":"m1","status":"DONE"}]}`))
	})

	r, err := NewRockClient(gw).GetRock(context.Background(), "r1")
	require.NoError(t, err)
	require.Len(t, r.Milestones, 1)
	require.Equal(t, rock.StatusDone, r.Milestones[0].Status)
}

func TestRockClient_UpdateRock_ErrorFallback(t *testing.T) {
	gw := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPatch, r.Method)
		w.WriteHeader(http.StatusBadRequest)
	})

	title := "renamed"
	_, err := NewRockClient(gw).UpdateRock(context.Background(), "r1", rock.UpdateInput{Title: &title})
	require.EqualError(t, err, "Failed to update rock")
}

func TestDashboardClient_ListDashboards_NilBecomesEmpty(t *testing.T) {
	gw := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/dashboards", r.URL.Path)
		w.Write([]byte(`null`))
	})

	dashboards, err := NewDashboardClient(gw).ListDashboards(context.Background())
	require.NoError(t, err)
	require.NotNil(t, dashboards)
	require.Empty(t, dashboards)
}

func TestDashboardClient_ListDashboards(t *testing.T) {
	gw := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"_id":"d1","name":"Company Scorecard","widgets":[{"_id":"w1","name":"Rocks"}]}]`))
	})

	dashboards, err := NewDashboardClient(gw).ListDashboards(context.Background())
	require.NoError(t, err)
	require.Len(t, dashboards, 1)
	require.Equal(t, []dashboard.Widget{{ID: "w1", Name: "Rocks"}}, dashboards[0].Widgets)
}
