package request

import (
	"context"
	"errors"
	"fmt"
	"time"

	"sharelocal/internal/models"
	"sharelocal/internal/repository"
	"sharelocal/internal/requesterrors"
	"sharelocal/utils"
)

// RequestService implements the request lifecycle: submission with the
// blocking-request policy, owner-gated accept/reject with the acceptance
// cascade, and the read-side views.
type RequestService struct {
	ledger repository.RequestLedger
}

// NewRequestService creates a new RequestService instance
func NewRequestService(ledger repository.RequestLedger) *RequestService {
	return &RequestService{
		ledger: ledger,
	}
}

// History bundles the requests a user has sent with those received against
// the user's items.
type History struct {
	Sent     []models.ItemRequest `json:"sent"`
	Received []models.ItemRequest `json:"received"`
}

// SubmitRequest creates a pending request for an item on behalf of a
// requester. Owners cannot request their own items. If the requester already
// holds a non-Accepted request for the item, no row is created and the
// existing request is returned together with ErrAlreadyRequested. Note that a
// Rejected request keeps blocking; only an Accepted one opens a new cycle.
func (s *RequestService) SubmitRequest(ctx context.Context, itemID, requesterID string) (models.ItemRequest, error) {
	if itemID == "" || requesterID == "" {
		return models.ItemRequest{}, fmt.Errorf("service: %w - missing itemID or requesterID", requesterrors.ErrInvalidRequest)
	}

	item, err := s.ledger.GetItem(ctx, itemID)
	if err != nil {
		return models.ItemRequest{}, fmt.Errorf("service: failed to load item %s: %w", itemID, err)
	}
	if item.OwnerID == requesterID {
		return models.ItemRequest{}, fmt.Errorf("service: user %s owns item %s: %w", requesterID, itemID, requesterrors.ErrSelfRequest)
	}

	req := models.ItemRequest{
		RequestID:     utils.GenerateID(),
		ItemID:        itemID,
		RequestedBy:   requesterID,
		Status:        models.StatusPending,
		RequestedDate: time.Now().UTC(),
	}

	recorded, err := s.ledger.RecordRequest(ctx, req)
	if err != nil {
		if errors.Is(err, requesterrors.ErrAlreadyRequested) {
			// Not a failure: surface the blocking request for display.
			return recorded, err
		}
		return models.ItemRequest{}, fmt.Errorf("service: failed to record request for item %s by user %s: %w", itemID, requesterID, err)
	}

	return recorded, nil
}

// AcceptRequest accepts a pending request on behalf of the item's owner.
// The ledger settles the acceptance atomically: the target request becomes
// Accepted, the item is marked requested and sibling pending requests are
// rejected. A request that is no longer pending (for instance one already
// cascaded to Rejected by a concurrent acceptance) fails with
// ErrInvalidTransition.
func (s *RequestService) AcceptRequest(ctx context.Context, requestID, actingUserID string) (models.ItemRequest, error) {
	req, err := s.authorizeOwnerAction(ctx, requestID, actingUserID)
	if err != nil {
		return models.ItemRequest{}, err
	}

	accepted, err := s.ledger.AcceptRequest(ctx, req.RequestID)
	if err != nil {
		return models.ItemRequest{}, fmt.Errorf("service: failed to accept request %s: %w", requestID, err)
	}
	return accepted, nil
}

// RejectRequest rejects a pending request on behalf of the item's owner.
// No cascade; the item's status is untouched.
func (s *RequestService) RejectRequest(ctx context.Context, requestID, actingUserID string) (models.ItemRequest, error) {
	req, err := s.authorizeOwnerAction(ctx, requestID, actingUserID)
	if err != nil {
		return models.ItemRequest{}, err
	}

	rejected, err := s.ledger.RejectRequest(ctx, req.RequestID)
	if err != nil {
		return models.ItemRequest{}, fmt.Errorf("service: failed to reject request %s: %w", requestID, err)
	}
	return rejected, nil
}

// authorizeOwnerAction loads a request and verifies the acting user owns the
// requested item. Identity is always passed explicitly, never taken from
// ambient state.
func (s *RequestService) authorizeOwnerAction(ctx context.Context, requestID, actingUserID string) (models.ItemRequest, error) {
	if requestID == "" || actingUserID == "" {
		return models.ItemRequest{}, fmt.Errorf("service: %w - missing requestID or actingUserID", requesterrors.ErrInvalidRequest)
	}

	req, err := s.ledger.GetRequest(ctx, requestID)
	if err != nil {
		return models.ItemRequest{}, fmt.Errorf("service: failed to load request %s: %w", requestID, err)
	}
	item, err := s.ledger.GetItem(ctx, req.ItemID)
	if err != nil {
		return models.ItemRequest{}, fmt.Errorf("service: failed to load item %s for request %s: %w", req.ItemID, requestID, err)
	}
	if item.OwnerID != actingUserID {
		return models.ItemRequest{}, fmt.Errorf("service: user %s does not own item %s: %w", actingUserID, item.ItemID, requesterrors.ErrNotOwner)
	}
	return req, nil
}

// ListForOwner returns requests against the user's items, newest first.
// An unrecognized status filter is ignored rather than rejected.
func (s *RequestService) ListForOwner(ctx context.Context, ownerID, statusFilter string) ([]models.ItemRequest, error) {
	if ownerID == "" {
		return nil, fmt.Errorf("service: %w - empty owner ID", requesterrors.ErrInvalidRequest)
	}

	status, _ := models.ParseRequestStatus(statusFilter)
	reqs, err := s.ledger.GetRequestsByOwner(ctx, ownerID, status)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list requests for owner %s: %w", ownerID, err)
	}
	return reqs, nil
}

// ListForRequester returns requests made by the user, newest first.
func (s *RequestService) ListForRequester(ctx context.Context, requesterID, statusFilter string) ([]models.ItemRequest, error) {
	if requesterID == "" {
		return nil, fmt.Errorf("service: %w - empty requester ID", requesterrors.ErrInvalidRequest)
	}

	status, _ := models.ParseRequestStatus(statusFilter)
	reqs, err := s.ledger.GetRequestsByRequester(ctx, requesterID, status)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list requests by user %s: %w", requesterID, err)
	}
	return reqs, nil
}

// GetRequestDetail returns a single request, visible only to the requester
// or the owner of the requested item.
func (s *RequestService) GetRequestDetail(ctx context.Context, requestID, viewerID string) (models.ItemRequest, error) {
	if requestID == "" || viewerID == "" {
		return models.ItemRequest{}, fmt.Errorf("service: %w - missing requestID or viewerID", requesterrors.ErrInvalidRequest)
	}

	req, err := s.ledger.GetRequest(ctx, requestID)
	if err != nil {
		return models.ItemRequest{}, fmt.Errorf("service: failed to load request %s: %w", requestID, err)
	}
	if req.RequestedBy == viewerID {
		return req, nil
	}
	item, err := s.ledger.GetItem(ctx, req.ItemID)
	if err != nil {
		return models.ItemRequest{}, fmt.Errorf("service: failed to load item %s for request %s: %w", req.ItemID, requestID, err)
	}
	if item.OwnerID != viewerID {
		return models.ItemRequest{}, fmt.Errorf("service: user %s is not involved in request %s: %w", viewerID, requestID, requesterrors.ErrNotOwner)
	}
	return req, nil
}

// RequestHistory returns the user's sent and received requests in one view
func (s *RequestService) RequestHistory(ctx context.Context, userID, statusFilter string) (History, error) {
	if userID == "" {
		return History{}, fmt.Errorf("service: %w - empty user ID", requesterrors.ErrInvalidRequest)
	}

	status, _ := models.ParseRequestStatus(statusFilter)
	sent, err := s.ledger.GetRequestsByRequester(ctx, userID, status)
	if err != nil {
		return History{}, fmt.Errorf("service: failed to load sent requests for user %s: %w", userID, err)
	}
	received, err := s.ledger.GetRequestsByOwner(ctx, userID, status)
	if err != nil {
		return History{}, fmt.Errorf("service: failed to load received requests for user %s: %w", userID, err)
	}
	return History{Sent: sent, Received: received}, nil
}

// PendingCount returns the number of pending requests against the user's items
func (s *RequestService) PendingCount(ctx context.Context, ownerID string) (int, error) {
	if ownerID == "" {
		return 0, fmt.Errorf("service: %w - empty owner ID", requesterrors.ErrInvalidRequest)
	}

	count, err := s.ledger.CountPendingForOwner(ctx, ownerID)
	if err != nil {
		return 0, fmt.Errorf("service: failed to count pending requests for owner %s: %w", ownerID, err)
	}
	return count, nil
}
