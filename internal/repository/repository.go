package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"

	model "sharelocal/internal/models"
	"sharelocal/internal/requesterrors"
)

//go:generate mockgen -source=repository.go -destination=mock_repository.go -package=repository

// RequestLedger defines storage for the item catalog and the request ledger.
// Write operations that touch more than one record are atomic: a failure
// partway never leaves the ledger in a mixed state.
type RequestLedger interface {
	AddItem(ctx context.Context, item model.Item) error
	GetItem(ctx context.Context, itemID string) (model.Item, error)
	ListAvailableItems(ctx context.Context) ([]model.Item, error)

	// RecordRequest persists a new request unless an active (non-Accepted)
	// request by the same user for the same item exists. In that case the
	// existing blocking request is returned together with ErrAlreadyRequested
	// and nothing is written. The check and the insert run in one critical
	// section so concurrent submissions cannot both create a row.
	RecordRequest(ctx context.Context, req model.ItemRequest) (model.ItemRequest, error)

	GetRequest(ctx context.Context, requestID string) (model.ItemRequest, error)

	// AcceptRequest marks a pending request accepted, flips the item's
	// marketplace status to requested and rejects every sibling pending
	// request for the same item, all as one atomic unit. A request that is
	// no longer pending fails with ErrInvalidTransition.
	AcceptRequest(ctx context.Context, requestID string) (model.ItemRequest, error)

	// RejectRequest marks a pending request rejected. No cascade, the item
	// is untouched.
	RejectRequest(ctx context.Context, requestID string) (model.ItemRequest, error)

	// GetRequestsByOwner returns requests against the owner's items, newest
	// first. A non-empty status filters to an exact match.
	GetRequestsByOwner(ctx context.Context, ownerID string, status model.RequestStatus) ([]model.ItemRequest, error)

	// GetRequestsByRequester returns requests made by the user, newest first.
	GetRequestsByRequester(ctx context.Context, requesterID string, status model.RequestStatus) ([]model.ItemRequest, error)

	CountPendingForOwner(ctx context.Context, ownerID string) (int, error)
}

// MemoryLedger is a concurrency-safe in-memory implementation of RequestLedger.
// A single mutex over the whole ledger makes every operation a critical
// section, which is what carries the atomicity guarantees here.
type MemoryLedger struct {
	mu       sync.RWMutex
	items    map[string]model.Item
	requests map[string]model.ItemRequest
	byItem   map[string][]string // key: itemID -> request IDs in creation order
}

// NewMemoryLedger creates a new in-memory ledger instance
func NewMemoryLedger() *MemoryLedger {
	return &MemoryLedger{
		items:    make(map[string]model.Item),
		requests: make(map[string]model.ItemRequest),
		byItem:   make(map[string][]string),
	}
}

// AddItem stores an item in the catalog
func (l *MemoryLedger) AddItem(_ context.Context, item model.Item) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.items[item.ItemID] = item
	return nil
}

// GetItem returns an item by id
func (l *MemoryLedger) GetItem(_ context.Context, itemID string) (model.Item, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	item, ok := l.items[itemID]
	if !ok {
		return model.Item{}, fmt.Errorf("get item %s: %w", itemID, requesterrors.ErrItemNotFound)
	}
	return item, nil
}

// ListAvailableItems returns all items still marked available, newest first
func (l *MemoryLedger) ListAvailableItems(_ context.Context) ([]model.Item, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	items := make([]model.Item, 0, len(l.items))
	for _, item := range l.items {
		if item.IsAvailable {
			items = append(items, item)
		}
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	return items, nil
}

// RecordRequest inserts a request unless a blocking one already exists
func (l *MemoryLedger) RecordRequest(_ context.Context, req model.ItemRequest) (model.ItemRequest, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.items[req.ItemID]; !ok {
		return model.ItemRequest{}, fmt.Errorf("record request for item %s: %w", req.ItemID, requesterrors.ErrItemNotFound)
	}

	if existing, ok := l.blockingRequestLocked(req.ItemID, req.RequestedBy); ok {
		return existing, fmt.Errorf("record request for item %s by user %s: %w",
			req.ItemID, req.RequestedBy, requesterrors.ErrAlreadyRequested)
	}

	l.requests[req.RequestID] = req
	l.byItem[req.ItemID] = append(l.byItem[req.ItemID], req.RequestID)
	return req, nil
}

// blockingRequestLocked finds the most recent request for (item, requester)
// whose status is not Accepted. Pending and Rejected both block; only an
// Accepted record permits a new request cycle. Caller must hold the lock.
func (l *MemoryLedger) blockingRequestLocked(itemID, requesterID string) (model.ItemRequest, bool) {
	ids := l.byItem[itemID]
	for i := len(ids) - 1; i >= 0; i-- {
		req := l.requests[ids[i]]
		if req.RequestedBy == requesterID && req.Status != model.StatusAccepted {
			return req, true
		}
	}
	return model.ItemRequest{}, false
}

// GetRequest returns a request by id
func (l *MemoryLedger) GetRequest(_ context.Context, requestID string) (model.ItemRequest, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	req, ok := l.requests[requestID]
	if !ok {
		return model.ItemRequest{}, fmt.Errorf("get request %s: %w", requestID, requesterrors.ErrRequestNotFound)
	}
	return req, nil
}

// AcceptRequest settles an acceptance: the target becomes Accepted, the item
// becomes requested, every other pending request for the item becomes Rejected.
func (l *MemoryLedger) AcceptRequest(_ context.Context, requestID string) (model.ItemRequest, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	req, ok := l.requests[requestID]
	if !ok {
		return model.ItemRequest{}, fmt.Errorf("accept request %s: %w", requestID, requesterrors.ErrRequestNotFound)
	}
	if req.Status != model.StatusPending {
		return model.ItemRequest{}, fmt.Errorf("accept request %s in status %s: %w",
			requestID, req.Status, requesterrors.ErrInvalidTransition)
	}

	req.Status = model.StatusAccepted
	l.requests[requestID] = req

	if item, ok := l.items[req.ItemID]; ok {
		item.Status = model.ItemStatusRequested
		l.items[req.ItemID] = item
	}

	for _, id := range l.byItem[req.ItemID] {
		if id == requestID {
			continue
		}
		sibling := l.requests[id]
		if sibling.Status == model.StatusPending {
			sibling.Status = model.StatusRejected
			l.requests[id] = sibling
		}
	}

	return req, nil
}

// RejectRequest marks a pending request rejected
func (l *MemoryLedger) RejectRequest(_ context.Context, requestID string) (model.ItemRequest, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	req, ok := l.requests[requestID]
	if !ok {
		return model.ItemRequest{}, fmt.Errorf("reject request %s: %w", requestID, requesterrors.ErrRequestNotFound)
	}
	if req.Status != model.StatusPending {
		return model.ItemRequest{}, fmt.Errorf("reject request %s in status %s: %w",
			requestID, req.Status, requesterrors.ErrInvalidTransition)
	}

	req.Status = model.StatusRejected
	l.requests[requestID] = req
	return req, nil
}

// GetRequestsByOwner returns requests targeting items owned by ownerID
func (l *MemoryLedger) GetRequestsByOwner(_ context.Context, ownerID string, status model.RequestStatus) ([]model.ItemRequest, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	reqs := make([]model.ItemRequest, 0)
	for _, req := range l.requests {
		item, ok := l.items[req.ItemID]
		if !ok || item.OwnerID != ownerID {
			continue
		}
		if status != "" && req.Status != status {
			continue
		}
		reqs = append(reqs, req)
	}
	sortNewestFirst(reqs)
	return reqs, nil
}

// GetRequestsByRequester returns requests made by requesterID
func (l *MemoryLedger) GetRequestsByRequester(_ context.Context, requesterID string, status model.RequestStatus) ([]model.ItemRequest, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	reqs := make([]model.ItemRequest, 0)
	for _, req := range l.requests {
		if req.RequestedBy != requesterID {
			continue
		}
		if status != "" && req.Status != status {
			continue
		}
		reqs = append(reqs, req)
	}
	sortNewestFirst(reqs)
	return reqs, nil
}

// CountPendingForOwner counts pending requests against the owner's items
func (l *MemoryLedger) CountPendingForOwner(_ context.Context, ownerID string) (int, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	count := 0
	for _, req := range l.requests {
		if req.Status != model.StatusPending {
			continue
		}
		if item, ok := l.items[req.ItemID]; ok && item.OwnerID == ownerID {
			count++
		}
	}
	return count, nil
}

// sortNewestFirst orders by requested date descending, breaking ties by id so
// results are stable across calls.
func sortNewestFirst(reqs []model.ItemRequest) {
	sort.Slice(reqs, func(i, j int) bool {
		if reqs[i].RequestedDate.Equal(reqs[j].RequestedDate) {
			return reqs[i].RequestID > reqs[j].RequestID
		}
		return reqs[i].RequestedDate.After(reqs[j].RequestedDate)
	})
}
