package helpers

import (
	"time"

	model "sharelocal/internal/models"
)

// Request/Response DTOs
type RequestResponse struct {
	RequestID     string `json:"request_id"`
	ItemID        string `json:"item_id"`
	RequestedBy   string `json:"requested_by"`
	Status        string `json:"status"`
	RequestedDate string `json:"requested_date"`
}

// NewRequestResponse converts a ledger record into its wire shape
func NewRequestResponse(req model.ItemRequest) RequestResponse {
	return RequestResponse{
		RequestID:     req.RequestID,
		ItemID:        req.ItemID,
		RequestedBy:   req.RequestedBy,
		Status:        string(req.Status),
		RequestedDate: req.RequestedDate.UTC().Format(time.RFC3339),
	}
}

// NewRequestResponses converts a slice of ledger records
func NewRequestResponses(reqs []model.ItemRequest) []RequestResponse {
	out := make([]RequestResponse, 0, len(reqs))
	for _, req := range reqs {
		out = append(out, NewRequestResponse(req))
	}
	return out
}

type HistoryResponse struct {
	Sent     []RequestResponse `json:"sent"`
	Received []RequestResponse `json:"received"`
}

type PendingCountResponse struct {
	PendingCount int `json:"pending_count"`
}
