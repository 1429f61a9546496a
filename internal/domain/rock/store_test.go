package rock_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/tractionhq/mobilecore/internal/api/mocks"
	"github.com/tractionhq/mobilecore/internal/domain/rock"
)

func TestRockStore_FetchComputesStatistics(t *testing.T) {
	ctx := context.Background()
	client := &mocks.RockClient{}
	client.On("ListRocks", ctx, rock.ListParams{SessionID: "s1"}).Return([]rock.Rock{
		{ID: "r1", Status: rock.StatusOnTrack, Progress: 50},
		{ID: "r2", Status: rock.StatusOnTrack, Progress: 70},
		{ID: "r3", Status: rock.StatusDone, Progress: 100},
		{ID: "r4", Status: rock.StatusOffTrack, Progress: 0},
	}, nil)

	store := rock.NewStore(client, nil)
	store.Fetch(ctx, rock.ListParams{SessionID: "s1"})

	state := store.Snapshot()
	require.False(t, state.IsLoading)
	require.Len(t, state.Rocks, 4)
	require.NotNil(t, state.Statistics)
	require.Equal(t, 4, state.Statistics.TotalRocks)
	require.Equal(t, 2, state.Statistics.OnTrackRocks)
	require.Equal(t, 1, state.Statistics.DoneRocks)
	require.Equal(t, 1, state.Statistics.OffTrackRocks)
	require.Equal(t, 55, state.Statistics.AverageProgress)
}

func TestRockStore_FetchError(t *testing.T) {
	ctx := context.Background()
	client := &mocks.RockClient{}
	client.On("ListRocks", ctx, mock.Anything).Return(nil, errors.New("Network error"))

	store := rock.NewStore(client, nil)
	store.Fetch(ctx, rock.ListParams{})

	state := store.Snapshot()
	require.Equal(t, "Network error", state.Error)
	require.Nil(t, state.Statistics)
	require.Empty(t, state.Rocks)
}

func TestRockStore_FetchReplacesStatistics(t *testing.T) {
	ctx := context.Background()
	client := &mocks.RockClient{}
	client.On("ListRocks", ctx, mock.Anything).Return([]rock.Rock{
		{ID: "r1", Status: rock.StatusDone, Progress: 100},
	}, nil).Once()
	client.On("ListRocks", ctx, mock.Anything).Return([]rock.Rock{}, nil).Once()

	store := rock.NewStore(client, nil)
	store.Fetch(ctx, rock.ListParams{})
	require.Equal(t, 1, store.Snapshot().Statistics.TotalRocks)

	// Statistics follow the collection, never a stale cache.
	store.Fetch(ctx, rock.ListParams{})
	require.Equal(t, 0, store.Snapshot().Statistics.TotalRocks)
}

func TestRockStore_CheckInRejectsInvalidPercent(t *testing.T) {
	client := &mocks.RockClient{}
	store := rock.NewStore(client, nil)

	require.ErrorIs(t, store.CheckIn(context.Background(), "m1", 120), rock.ErrInvalidPercent)
	require.ErrorIs(t, store.CheckIn(context.Background(), "m1", -1), rock.ErrInvalidPercent)
	client.AssertNotCalled(t, "ListRocks", mock.Anything, mock.Anything)
}

func TestRockStore_CheckInTriggersRefetchWithLastParams(t *testing.T) {
	ctx := context.Background()
	params := rock.ListParams{SessionID: "s1", TeamID: "team-1"}
	client := &mocks.RockClient{}
	client.On("ListRocks", ctx, params).Return([]rock.Rock{}, nil).Twice()

	store := rock.NewStore(client, nil)
	store.Fetch(ctx, params)
	require.NoError(t, store.CheckIn(ctx, "m1", 40))

	client.AssertExpectations(t)
}

func TestRockStore_Clear(t *testing.T) {
	ctx := context.Background()
	client := &mocks.RockClient{}
	client.On("ListRocks", ctx, mock.Anything).Return([]rock.Rock{{ID: "r1"}}, nil)

	store := rock.NewStore(client, nil)
	store.Fetch(ctx, rock.ListParams{})
	store.Clear()

	state := store.Snapshot()
	require.Empty(t, state.Rocks)
	require.Nil(t, state.Statistics)
}
