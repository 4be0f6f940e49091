package models

import "time"

// User represents a marketplace participant
type User struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
}

// RequestStatus is the closed set of states an item request moves through
type RequestStatus string

const (
	StatusPending  RequestStatus = "Pending"
	StatusAccepted RequestStatus = "Accepted"
	StatusRejected RequestStatus = "Rejected"
)

// ParseRequestStatus validates a raw status string at the boundary.
// Unrecognized values return ok=false; callers treat them as "no filter".
func ParseRequestStatus(s string) (RequestStatus, bool) {
	switch RequestStatus(s) {
	case StatusPending, StatusAccepted, StatusRejected:
		return RequestStatus(s), true
	default:
		return "", false
	}
}

// Listing types for an item
const (
	ItemTypeShare = "Share"
	ItemTypeSell  = "Sell"
	ItemTypeRent  = "Rent"
)

// Marketplace status values for an item. The request lifecycle only ever
// moves an item from available to requested.
const (
	ItemStatusAvailable = "available"
	ItemStatusRequested = "Requested"
)

// Item represents a listed good available to give away, sell or rent
type Item struct {
	ItemID      string    `json:"item_id"`
	OwnerID     string    `json:"owner_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ItemType    string    `json:"item_type"`
	Price       float64   `json:"price,omitempty"`
	IsAvailable bool      `json:"is_available"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

// ItemRequest represents a requester's intent to acquire a specific item.
// Immutable after creation except for Status.
type ItemRequest struct {
	RequestID     string        `json:"request_id"`
	ItemID        string        `json:"item_id"`
	RequestedBy   string        `json:"requested_by"`
	Status        RequestStatus `json:"status"`
	RequestedDate time.Time     `json:"requested_date"`
}
