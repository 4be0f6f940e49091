package repository

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	model "sharelocal/internal/models"
	"sharelocal/internal/requesterrors"

	"github.com/stretchr/testify/require"
)

// Helper to create a new Item
func newItem(itemID, ownerID string, createdAt time.Time) model.Item {
	return model.Item{
		ItemID:      itemID,
		OwnerID:     ownerID,
		Title:       fmt.Sprintf("%s title", itemID),
		Description: fmt.Sprintf("%s description", itemID),
		ItemType:    model.ItemTypeShare,
		IsAvailable: true,
		Status:      model.ItemStatusAvailable,
		CreatedAt:   createdAt,
	}
}

// Helper to create a new ItemRequest
func newRequest(requestID, itemID, userID string, status model.RequestStatus, requestedDate time.Time) model.ItemRequest {
	return model.ItemRequest{
		RequestID:     requestID,
		ItemID:        itemID,
		RequestedBy:   userID,
		Status:        status,
		RequestedDate: requestedDate,
	}
}

// Test RecordRequest
func TestMemoryLedger_RecordRequest(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	now := time.Now().UTC()

	// Table-driven test cases; each case gets a fresh ledger
	tests := []struct {
		name          string
		seed          []model.ItemRequest
		req           model.ItemRequest
		expectedError error
		expectedID    string // request returned alongside ErrAlreadyRequested
	}{
		{
			name: "valid_first_request",
			req:  newRequest("req1", "item1", "bob", model.StatusPending, now),
		},
		{
			name:          "item_not_found",
			req:           newRequest("req2", "itemX", "bob", model.StatusPending, now),
			expectedError: requesterrors.ErrItemNotFound,
		},
		{
			name:          "blocked_by_pending_request",
			seed:          []model.ItemRequest{newRequest("req3", "item1", "bob", model.StatusPending, now.Add(-time.Hour))},
			req:           newRequest("req4", "item1", "bob", model.StatusPending, now),
			expectedError: requesterrors.ErrAlreadyRequested,
			expectedID:    "req3",
		},
		{
			name:          "blocked_by_rejected_request",
			seed:          []model.ItemRequest{newRequest("req5", "item1", "bob", model.StatusRejected, now.Add(-time.Hour))},
			req:           newRequest("req6", "item1", "bob", model.StatusPending, now),
			expectedError: requesterrors.ErrAlreadyRequested,
			expectedID:    "req5",
		},
		{
			name: "new_cycle_after_accepted_request",
			seed: []model.ItemRequest{newRequest("req7", "item1", "bob", model.StatusAccepted, now.Add(-time.Hour))},
			req:  newRequest("req8", "item1", "bob", model.StatusPending, now),
		},
		{
			name: "other_requester_not_blocked",
			seed: []model.ItemRequest{newRequest("req9", "item1", "bob", model.StatusPending, now.Add(-time.Hour))},
			req:  newRequest("req10", "item1", "carol", model.StatusPending, now),
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ledger := NewMemoryLedger()
			ledger.items["item1"] = newItem("item1", "alice", now.Add(-24*time.Hour))
			for _, seed := range tc.seed {
				ledger.requests[seed.RequestID] = seed
				ledger.byItem[seed.ItemID] = append(ledger.byItem[seed.ItemID], seed.RequestID)
			}

			got, err := ledger.RecordRequest(ctx, tc.req)
			if tc.expectedError != nil {
				require.ErrorIs(t, err, tc.expectedError)
				if tc.expectedID != "" {
					require.Equal(t, tc.expectedID, got.RequestID, "should surface the blocking request")
				}
				if !errors.Is(err, requesterrors.ErrAlreadyRequested) {
					return
				}
				// AlreadyRequested is a pure read: no new row
				_, lookupErr := ledger.GetRequest(ctx, tc.req.RequestID)
				require.ErrorIs(t, lookupErr, requesterrors.ErrRequestNotFound)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tc.req, got)
			stored, err := ledger.GetRequest(ctx, tc.req.RequestID)
			require.NoError(t, err)
			require.Equal(t, tc.req, stored)
		})
	}
}

// Two concurrent submissions by the same requester for the same item must
// yield exactly one created row; losers surface the winner's request.
func TestMemoryLedger_RecordRequest_Concurrent(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	now := time.Now().UTC()
	ledger := NewMemoryLedger()
	ledger.items["item1"] = newItem("item1", "alice", now)

	const attempts = 32
	results := make([]error, attempts)
	returned := make([]model.ItemRequest, attempts)

	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			req := newRequest(fmt.Sprintf("req-%d", i), "item1", "bob", model.StatusPending, now)
			returned[i], results[i] = ledger.RecordRequest(ctx, req)
		}()
	}
	wg.Wait()

	created := 0
	var winnerID string
	for i := 0; i < attempts; i++ {
		if results[i] == nil {
			created++
			winnerID = returned[i].RequestID
		} else {
			require.ErrorIs(t, results[i], requesterrors.ErrAlreadyRequested)
		}
	}
	require.Equal(t, 1, created, "exactly one submission may create a row")

	for i := 0; i < attempts; i++ {
		require.Equal(t, winnerID, returned[i].RequestID, "every caller sees the same blocking request")
	}

	reqs, err := ledger.GetRequestsByRequester(ctx, "bob", "")
	require.NoError(t, err)
	require.Len(t, reqs, 1)
}

// Test AcceptRequest
func TestMemoryLedger_AcceptRequest(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	now := time.Now().UTC()

	setup := func() *MemoryLedger {
		ledger := NewMemoryLedger()
		require.NoError(t, ledger.AddItem(ctx, newItem("itemX", "alice", now.Add(-24*time.Hour))))
		for _, seed := range []model.ItemRequest{
			newRequest("req-bob", "itemX", "bob", model.StatusPending, now.Add(-2*time.Hour)),
			newRequest("req-carol", "itemX", "carol", model.StatusPending, now.Add(-time.Hour)),
			newRequest("req-dave", "itemX", "dave", model.StatusRejected, now.Add(-3*time.Hour)),
		} {
			ledger.requests[seed.RequestID] = seed
			ledger.byItem[seed.ItemID] = append(ledger.byItem[seed.ItemID], seed.RequestID)
		}
		return ledger
	}

	t.Run("accept_cascades_to_siblings", func(t *testing.T) {
		t.Parallel()
		ledger := setup()

		accepted, err := ledger.AcceptRequest(ctx, "req-bob")
		require.NoError(t, err)
		require.Equal(t, model.StatusAccepted, accepted.Status)

		carol, err := ledger.GetRequest(ctx, "req-carol")
		require.NoError(t, err)
		require.Equal(t, model.StatusRejected, carol.Status, "sibling pending request must be rejected")

		dave, err := ledger.GetRequest(ctx, "req-dave")
		require.NoError(t, err)
		require.Equal(t, model.StatusRejected, dave.Status, "already-settled sibling is untouched")

		item, err := ledger.GetItem(ctx, "itemX")
		require.NoError(t, err)
		require.Equal(t, model.ItemStatusRequested, item.Status, "item must be marked claimed")
	})

	t.Run("accept_twice_fails", func(t *testing.T) {
		t.Parallel()
		ledger := setup()

		_, err := ledger.AcceptRequest(ctx, "req-bob")
		require.NoError(t, err)
		_, err = ledger.AcceptRequest(ctx, "req-bob")
		require.ErrorIs(t, err, requesterrors.ErrInvalidTransition)
	})

	t.Run("accept_cascaded_sibling_fails", func(t *testing.T) {
		t.Parallel()
		ledger := setup()

		_, err := ledger.AcceptRequest(ctx, "req-bob")
		require.NoError(t, err)
		_, err = ledger.AcceptRequest(ctx, "req-carol")
		require.ErrorIs(t, err, requesterrors.ErrInvalidTransition)
	})

	t.Run("accept_unknown_request", func(t *testing.T) {
		t.Parallel()
		ledger := setup()

		_, err := ledger.AcceptRequest(ctx, "req-missing")
		require.ErrorIs(t, err, requesterrors.ErrRequestNotFound)
	})
}

// Concurrent accepts of two pending requests for the same item: exactly one
// may win, the other fails on the cascaded transition.
func TestMemoryLedger_AcceptRequest_Concurrent(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	now := time.Now().UTC()
	ledger := NewMemoryLedger()
	require.NoError(t, ledger.AddItem(ctx, newItem("itemX", "alice", now)))

	ids := []string{"req-a", "req-b"}
	for i, id := range ids {
		seed := newRequest(id, "itemX", fmt.Sprintf("user-%d", i), model.StatusPending, now)
		ledger.requests[id] = seed
		ledger.byItem["itemX"] = append(ledger.byItem["itemX"], id)
	}

	errs := make([]error, len(ids))
	var wg sync.WaitGroup
	for i, id := range ids {
		i, id := i, id
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, errs[i] = ledger.AcceptRequest(ctx, id)
		}()
	}
	wg.Wait()

	accepted := 0
	for _, err := range errs {
		if err == nil {
			accepted++
		} else {
			require.ErrorIs(t, err, requesterrors.ErrInvalidTransition)
		}
	}
	require.Equal(t, 1, accepted, "double-accept must not happen")

	reqs, err := ledger.GetRequestsByOwner(ctx, "alice", model.StatusAccepted)
	require.NoError(t, err)
	require.Len(t, reqs, 1)
}

// Test RejectRequest
func TestMemoryLedger_RejectRequest(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	now := time.Now().UTC()
	ledger := NewMemoryLedger()
	require.NoError(t, ledger.AddItem(ctx, newItem("itemX", "alice", now)))
	for _, seed := range []model.ItemRequest{
		newRequest("req-bob", "itemX", "bob", model.StatusPending, now.Add(-time.Hour)),
		newRequest("req-carol", "itemX", "carol", model.StatusPending, now),
	} {
		ledger.requests[seed.RequestID] = seed
		ledger.byItem[seed.ItemID] = append(ledger.byItem[seed.ItemID], seed.RequestID)
	}

	rejected, err := ledger.RejectRequest(ctx, "req-bob")
	require.NoError(t, err)
	require.Equal(t, model.StatusRejected, rejected.Status)

	// No cascade: the sibling stays pending and the item is untouched
	carol, err := ledger.GetRequest(ctx, "req-carol")
	require.NoError(t, err)
	require.Equal(t, model.StatusPending, carol.Status)

	item, err := ledger.GetItem(ctx, "itemX")
	require.NoError(t, err)
	require.Equal(t, model.ItemStatusAvailable, item.Status)

	// Terminal for the record itself
	_, err = ledger.RejectRequest(ctx, "req-bob")
	require.ErrorIs(t, err, requesterrors.ErrInvalidTransition)

	_, err = ledger.RejectRequest(ctx, "req-missing")
	require.ErrorIs(t, err, requesterrors.ErrRequestNotFound)
}

// Test the read-side views: ordering, filtering, counting
func TestMemoryLedger_Queries(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	now := time.Now().UTC()
	ledger := NewMemoryLedger()
	require.NoError(t, ledger.AddItem(ctx, newItem("item1", "alice", now.Add(-48*time.Hour))))
	require.NoError(t, ledger.AddItem(ctx, newItem("item2", "alice", now.Add(-24*time.Hour))))
	require.NoError(t, ledger.AddItem(ctx, newItem("item3", "bob", now.Add(-12*time.Hour))))

	for _, seed := range []model.ItemRequest{
		newRequest("r1", "item1", "bob", model.StatusPending, now.Add(-3*time.Hour)),
		newRequest("r2", "item2", "bob", model.StatusRejected, now.Add(-2*time.Hour)),
		newRequest("r3", "item1", "carol", model.StatusPending, now.Add(-time.Hour)),
		newRequest("r4", "item3", "carol", model.StatusPending, now),
	} {
		ledger.requests[seed.RequestID] = seed
		ledger.byItem[seed.ItemID] = append(ledger.byItem[seed.ItemID], seed.RequestID)
	}

	t.Run("owner_view_newest_first", func(t *testing.T) {
		t.Parallel()
		reqs, err := ledger.GetRequestsByOwner(ctx, "alice", "")
		require.NoError(t, err)
		require.Equal(t, []string{"r3", "r2", "r1"}, requestIDs(reqs))
	})

	t.Run("owner_view_status_filter", func(t *testing.T) {
		t.Parallel()
		reqs, err := ledger.GetRequestsByOwner(ctx, "alice", model.StatusPending)
		require.NoError(t, err)
		require.Equal(t, []string{"r3", "r1"}, requestIDs(reqs))
	})

	t.Run("requester_view_newest_first", func(t *testing.T) {
		t.Parallel()
		reqs, err := ledger.GetRequestsByRequester(ctx, "carol", "")
		require.NoError(t, err)
		require.Equal(t, []string{"r4", "r3"}, requestIDs(reqs))
	})

	t.Run("requester_view_status_filter", func(t *testing.T) {
		t.Parallel()
		reqs, err := ledger.GetRequestsByRequester(ctx, "bob", model.StatusRejected)
		require.NoError(t, err)
		require.Equal(t, []string{"r2"}, requestIDs(reqs))
	})

	t.Run("unknown_user_empty_view", func(t *testing.T) {
		t.Parallel()
		reqs, err := ledger.GetRequestsByRequester(ctx, "nobody", "")
		require.NoError(t, err)
		require.Empty(t, reqs)
	})

	t.Run("pending_count_for_owner", func(t *testing.T) {
		t.Parallel()
		count, err := ledger.CountPendingForOwner(ctx, "alice")
		require.NoError(t, err)
		require.Equal(t, 2, count)

		count, err = ledger.CountPendingForOwner(ctx, "bob")
		require.NoError(t, err)
		require.Equal(t, 1, count)
	})
}

// Test ListAvailableItems
func TestMemoryLedger_ListAvailableItems(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	now := time.Now().UTC()
	ledger := NewMemoryLedger()

	gone := newItem("item-gone", "alice", now.Add(-time.Hour))
	gone.IsAvailable = false
	require.NoError(t, ledger.AddItem(ctx, newItem("item-old", "alice", now.Add(-48*time.Hour))))
	require.NoError(t, ledger.AddItem(ctx, newItem("item-new", "bob", now)))
	require.NoError(t, ledger.AddItem(ctx, gone))

	items, err := ledger.ListAvailableItems(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	require.Equal(t, "item-new", items[0].ItemID)
	require.Equal(t, "item-old", items[1].ItemID)
}

func requestIDs(reqs []model.ItemRequest) []string {
	ids := make([]string, 0, len(reqs))
	for _, req := range reqs {
		ids = append(ids, req.RequestID)
	}
	return ids
}
