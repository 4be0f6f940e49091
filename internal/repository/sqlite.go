package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	model "sharelocal/internal/models"
	"sharelocal/internal/requesterrors"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS items (
	item_id      TEXT PRIMARY KEY,
	owner_id     TEXT NOT NULL,
	title        TEXT NOT NULL,
	description  TEXT NOT NULL DEFAULT '',
	item_type    TEXT NOT NULL,
	price        REAL NOT NULL DEFAULT 0,
	is_available INTEGER NOT NULL DEFAULT 1,
	status       TEXT NOT NULL DEFAULT 'available',
	created_at   TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS item_requests (
	request_id      TEXT PRIMARY KEY,
	item_id         TEXT NOT NULL REFERENCES items(item_id),
	requested_by_id TEXT NOT NULL,
	status          TEXT NOT NULL DEFAULT 'Pending',
	requested_date  TIMESTAMP NOT NULL
);

-- At most one non-Accepted request per (item, requester). Backstops the
-- check-then-insert in RecordRequest under concurrent submissions.
CREATE UNIQUE INDEX IF NOT EXISTS idx_item_requests_active
	ON item_requests (item_id, requested_by_id) WHERE status != 'Accepted';

CREATE INDEX IF NOT EXISTS idx_item_requests_item ON item_requests (item_id);
CREATE INDEX IF NOT EXISTS idx_item_requests_requester ON item_requests (requested_by_id);
`

// OpenSQLite opens a SQLite database and configures pragmas.
func OpenSQLite(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA foreign_keys=ON",
		"PRAGMA synchronous=NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			db.Close()
			return nil, fmt.Errorf("setting pragma %q: %w", p, err)
		}
	}

	// Single connection: SQLite allows one writer at a time anyway, and
	// funneling everything through one connection turns the check-then-insert
	// in RecordRequest into a serialized section instead of a busy-retry loop.
	db.SetMaxOpenConns(1)

	return db, nil
}

// SQLiteLedger is a durable RequestLedger backed by SQLite. Multi-record
// writes run in database transactions.
type SQLiteLedger struct {
	db *sql.DB
}

// NewSQLiteLedger creates the schema if needed and returns a ledger over db
func NewSQLiteLedger(db *sql.DB) (*SQLiteLedger, error) {
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return &SQLiteLedger{db: db}, nil
}

// AddItem stores an item in the catalog
func (l *SQLiteLedger) AddItem(ctx context.Context, item model.Item) error {
	_, err := l.db.ExecContext(ctx,
		`INSERT INTO items (item_id, owner_id, title, description, item_type, price, is_available, status, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		item.ItemID, item.OwnerID, item.Title, item.Description, item.ItemType,
		item.Price, item.IsAvailable, item.Status, item.CreatedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("inserting item %s: %w", item.ItemID, err)
	}
	return nil
}

// GetItem returns an item by id
func (l *SQLiteLedger) GetItem(ctx context.Context, itemID string) (model.Item, error) {
	return scanItem(l.db.QueryRowContext(ctx,
		`SELECT item_id, owner_id, title, description, item_type, price, is_available, status, created_at
		 FROM items WHERE item_id = ?`, itemID), itemID)
}

func scanItem(row *sql.Row, itemID string) (model.Item, error) {
	var item model.Item
	err := row.Scan(&item.ItemID, &item.OwnerID, &item.Title, &item.Description,
		&item.ItemType, &item.Price, &item.IsAvailable, &item.Status, &item.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Item{}, fmt.Errorf("get item %s: %w", itemID, requesterrors.ErrItemNotFound)
	}
	if err != nil {
		return model.Item{}, fmt.Errorf("scanning item %s: %w", itemID, err)
	}
	return item, nil
}

// ListAvailableItems returns all items still marked available, newest first
func (l *SQLiteLedger) ListAvailableItems(ctx context.Context) ([]model.Item, error) {
	rows, err := l.db.QueryContext(ctx,
		`SELECT item_id, owner_id, title, description, item_type, price, is_available, status, created_at
		 FROM items WHERE is_available = 1 ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("listing available items: %w", err)
	}
	defer rows.Close()

	items := make([]model.Item, 0)
	for rows.Next() {
		var item model.Item
		if err := rows.Scan(&item.ItemID, &item.OwnerID, &item.Title, &item.Description,
			&item.ItemType, &item.Price, &item.IsAvailable, &item.Status, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning item row: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// RecordRequest inserts a request unless a blocking one already exists.
// The unique partial index catches the race where two submissions pass the
// read concurrently; the loser is mapped back to ErrAlreadyRequested.
func (l *SQLiteLedger) RecordRequest(ctx context.Context, req model.ItemRequest) (model.ItemRequest, error) {
	tx, err := l.db.BeginTx(ctx, nil)
	if err != nil {
		return model.ItemRequest{}, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	var exists int
	err = tx.QueryRowContext(ctx, `SELECT COUNT(1) FROM items WHERE item_id = ?`, req.ItemID).Scan(&exists)
	if err != nil {
		return model.ItemRequest{}, fmt.Errorf("checking item %s: %w", req.ItemID, err)
	}
	if exists == 0 {
		return model.ItemRequest{}, fmt.Errorf("record request for item %s: %w", req.ItemID, requesterrors.ErrItemNotFound)
	}

	blocking, err := l.blockingRequestTx(ctx, tx, req.ItemID, req.RequestedBy)
	if err != nil {
		return model.ItemRequest{}, err
	}
	if blocking != nil {
		return *blocking, fmt.Errorf("record request for item %s by user %s: %w",
			req.ItemID, req.RequestedBy, requesterrors.ErrAlreadyRequested)
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO item_requests (request_id, item_id, requested_by_id, status, requested_date)
		 VALUES (?, ?, ?, ?, ?)`,
		req.RequestID, req.ItemID, req.RequestedBy, string(req.Status), req.RequestedDate.UTC(),
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			tx.Rollback() // release the connection before re-reading
			return l.lostSubmitRace(ctx, req)
		}
		return model.ItemRequest{}, fmt.Errorf("inserting request %s: %w", req.RequestID, err)
	}

	if err := tx.Commit(); err != nil {
		return model.ItemRequest{}, fmt.Errorf("committing request %s: %w", req.RequestID, err)
	}
	return req, nil
}

// lostSubmitRace re-reads the blocking request that won a concurrent insert
func (l *SQLiteLedger) lostSubmitRace(ctx context.Context, req model.ItemRequest) (model.ItemRequest, error) {
	var blocking model.ItemRequest
	err := l.db.QueryRowContext(ctx,
		`SELECT request_id, item_id, requested_by_id, status, requested_date
		 FROM item_requests
		 WHERE item_id = ? AND requested_by_id = ? AND status != 'Accepted'
		 ORDER BY requested_date DESC LIMIT 1`,
		req.ItemID, req.RequestedBy,
	).Scan(&blocking.RequestID, &blocking.ItemID, &blocking.RequestedBy, &blocking.Status, &blocking.RequestedDate)
	if err != nil {
		return model.ItemRequest{}, fmt.Errorf("re-reading blocking request for item %s: %w", req.ItemID, err)
	}
	return blocking, fmt.Errorf("record request for item %s by user %s: %w",
		req.ItemID, req.RequestedBy, requesterrors.ErrAlreadyRequested)
}

func (l *SQLiteLedger) blockingRequestTx(ctx context.Context, tx *sql.Tx, itemID, requesterID string) (*model.ItemRequest, error) {
	var req model.ItemRequest
	err := tx.QueryRowContext(ctx,
		`SELECT request_id, item_id, requested_by_id, status, requested_date
		 FROM item_requests
		 WHERE item_id = ? AND requested_by_id = ? AND status != 'Accepted'
		 ORDER BY requested_date DESC LIMIT 1`,
		itemID, requesterID,
	).Scan(&req.RequestID, &req.ItemID, &req.RequestedBy, &req.Status, &req.RequestedDate)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("checking blocking request for item %s: %w", itemID, err)
	}
	return &req, nil
}

// GetRequest returns a request by id
func (l *SQLiteLedger) GetRequest(ctx context.Context, requestID string) (model.ItemRequest, error) {
	var req model.ItemRequest
	err := l.db.QueryRowContext(ctx,
		`SELECT request_id, item_id, requested_by_id, status, requested_date
		 FROM item_requests WHERE request_id = ?`, requestID,
	).Scan(&req.RequestID, &req.ItemID, &req.RequestedBy, &req.Status, &req.RequestedDate)
	if errors.Is(err, sql.ErrNoRows) {
		return model.ItemRequest{}, fmt.Errorf("get request %s: %w", requestID, requesterrors.ErrRequestNotFound)
	}
	if err != nil {
		return model.ItemRequest{}, fmt.Errorf("scanning request %s: %w", requestID, err)
	}
	return req, nil
}

// AcceptRequest settles an acceptance in a single transaction: mark the
// target accepted, flip the item to requested, reject sibling pendings.
func (l *SQLiteLedger) AcceptRequest(ctx context.Context, requestID string) (model.ItemRequest, error) {
	tx, err := l.db.BeginTx(ctx, nil)
	if err != nil {
		return model.ItemRequest{}, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	var req model.ItemRequest
	err = tx.QueryRowContext(ctx,
		`SELECT request_id, item_id, requested_by_id, status, requested_date
		 FROM item_requests WHERE request_id = ?`, requestID,
	).Scan(&req.RequestID, &req.ItemID, &req.RequestedBy, &req.Status, &req.RequestedDate)
	if errors.Is(err, sql.ErrNoRows) {
		return model.ItemRequest{}, fmt.Errorf("accept request %s: %w", requestID, requesterrors.ErrRequestNotFound)
	}
	if err != nil {
		return model.ItemRequest{}, fmt.Errorf("scanning request %s: %w", requestID, err)
	}
	if req.Status != model.StatusPending {
		return model.ItemRequest{}, fmt.Errorf("accept request %s in status %s: %w",
			requestID, req.Status, requesterrors.ErrInvalidTransition)
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE item_requests SET status = 'Accepted' WHERE request_id = ?`, requestID); err != nil {
		return model.ItemRequest{}, fmt.Errorf("accepting request %s: %w", requestID, err)
	}
	if _, err := tx.ExecContext(ctx,
		`UPDATE items SET status = ? WHERE item_id = ?`, model.ItemStatusRequested, req.ItemID); err != nil {
		return model.ItemRequest{}, fmt.Errorf("updating item %s status: %w", req.ItemID, err)
	}
	if _, err := tx.ExecContext(ctx,
		`UPDATE item_requests SET status = 'Rejected'
		 WHERE item_id = ? AND status = 'Pending' AND request_id != ?`,
		req.ItemID, requestID); err != nil {
		return model.ItemRequest{}, fmt.Errorf("rejecting sibling requests for item %s: %w", req.ItemID, err)
	}

	if err := tx.Commit(); err != nil {
		return model.ItemRequest{}, fmt.Errorf("committing acceptance of %s: %w", requestID, err)
	}

	req.Status = model.StatusAccepted
	return req, nil
}

// RejectRequest marks a pending request rejected
func (l *SQLiteLedger) RejectRequest(ctx context.Context, requestID string) (model.ItemRequest, error) {
	tx, err := l.db.BeginTx(ctx, nil)
	if err != nil {
		return model.ItemRequest{}, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	var req model.ItemRequest
	err = tx.QueryRowContext(ctx,
		`SELECT request_id, item_id, requested_by_id, status, requested_date
		 FROM item_requests WHERE request_id = ?`, requestID,
	).Scan(&req.RequestID, &req.ItemID, &req.RequestedBy, &req.Status, &req.RequestedDate)
	if errors.Is(err, sql.ErrNoRows) {
		return model.ItemRequest{}, fmt.Errorf("reject request %s: %w", requestID, requesterrors.ErrRequestNotFound)
	}
	if err != nil {
		return model.ItemRequest{}, fmt.Errorf("scanning request %s: %w", requestID, err)
	}
	if req.Status != model.StatusPending {
		return model.ItemRequest{}, fmt.Errorf("reject request %s in status %s: %w",
			requestID, req.Status, requesterrors.ErrInvalidTransition)
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE item_requests SET status = 'Rejected' WHERE request_id = ?`, requestID); err != nil {
		return model.ItemRequest{}, fmt.Errorf("rejecting request %s: %w", requestID, err)
	}
	if err := tx.Commit(); err != nil {
		return model.ItemRequest{}, fmt.Errorf("committing rejection of %s: %w", requestID, err)
	}

	req.Status = model.StatusRejected
	return req, nil
}

// GetRequestsByOwner returns requests targeting items owned by ownerID
func (l *SQLiteLedger) GetRequestsByOwner(ctx context.Context, ownerID string, status model.RequestStatus) ([]model.ItemRequest, error) {
	query := `SELECT r.request_id, r.item_id, r.requested_by_id, r.status, r.requested_date
	          FROM item_requests r
	          JOIN items i ON i.item_id = r.item_id
	          WHERE i.owner_id = ?`
	args := []any{ownerID}
	if status != "" {
		query += ` AND r.status = ?`
		args = append(args, string(status))
	}
	query += ` ORDER BY r.requested_date DESC, r.request_id DESC`
	return l.queryRequests(ctx, query, args...)
}

// GetRequestsByRequester returns requests made by requesterID
func (l *SQLiteLedger) GetRequestsByRequester(ctx context.Context, requesterID string, status model.RequestStatus) ([]model.ItemRequest, error) {
	query := `SELECT request_id, item_id, requested_by_id, status, requested_date
	          FROM item_requests WHERE requested_by_id = ?`
	args := []any{requesterID}
	if status != "" {
		query += ` AND status = ?`
		args = append(args, string(status))
	}
	query += ` ORDER BY requested_date DESC, request_id DESC`
	return l.queryRequests(ctx, query, args...)
}

func (l *SQLiteLedger) queryRequests(ctx context.Context, query string, args ...any) ([]model.ItemRequest, error) {
	rows, err := l.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying requests: %w", err)
	}
	defer rows.Close()

	reqs := make([]model.ItemRequest, 0)
	for rows.Next() {
		var req model.ItemRequest
		if err := rows.Scan(&req.RequestID, &req.ItemID, &req.RequestedBy, &req.Status, &req.RequestedDate); err != nil {
			return nil, fmt.Errorf("scanning request row: %w", err)
		}
		reqs = append(reqs, req)
	}
	return reqs, rows.Err()
}

// CountPendingForOwner counts pending requests against the owner's items
func (l *SQLiteLedger) CountPendingForOwner(ctx context.Context, ownerID string) (int, error) {
	var count int
	err := l.db.QueryRowContext(ctx,
		`SELECT COUNT(1)
		 FROM item_requests r
		 JOIN items i ON i.item_id = r.item_id
		 WHERE i.owner_id = ? AND r.status = 'Pending'`, ownerID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting pending requests for owner %s: %w", ownerID, err)
	}
	return count, nil
}
