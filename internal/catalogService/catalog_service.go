package catalog

import (
	"context"
	"fmt"
	"time"

	"sharelocal/internal/models"
	"sharelocal/internal/repository"
	"sharelocal/internal/requesterrors"
	"sharelocal/utils"
)

// CatalogService holds the item catalog operations the request lifecycle
// collaborates with: listing an item, looking one up, browsing what is
// available.
type CatalogService struct {
	ledger repository.RequestLedger
}

// NewCatalogService creates a new CatalogService instance
func NewCatalogService(ledger repository.RequestLedger) *CatalogService {
	return &CatalogService{
		ledger: ledger,
	}
}

// AddItem validates and stores a new listing owned by ownerID
func (s *CatalogService) AddItem(ctx context.Context, ownerID, title, description, itemType string, price float64) (models.Item, error) {
	if err := validateItem(ownerID, title, itemType, price); err != nil {
		return models.Item{}, err
	}

	item := models.Item{
		ItemID:      utils.GenerateID(),
		OwnerID:     ownerID,
		Title:       title,
		Description: description,
		ItemType:    itemType,
		Price:       price,
		IsAvailable: true,
		Status:      models.ItemStatusAvailable,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.ledger.AddItem(ctx, item); err != nil {
		return models.Item{}, fmt.Errorf("service: failed to add item for owner %s: %w", ownerID, err)
	}
	return item, nil
}

// validateItem checks the price rules for each listing type: give-away items
// carry no price, selling and renting require one.
func validateItem(ownerID, title, itemType string, price float64) error {
	if ownerID == "" || title == "" {
		return fmt.Errorf("service: %w - missing owner or title", requesterrors.ErrInvalidItem)
	}
	switch itemType {
	case models.ItemTypeShare:
		if price != 0 {
			return fmt.Errorf("service: %w - give away items cannot have a price", requesterrors.ErrInvalidItem)
		}
	case models.ItemTypeSell, models.ItemTypeRent:
		if price <= 0 {
			return fmt.Errorf("service: %w - selling or renting items require a price", requesterrors.ErrInvalidItem)
		}
	default:
		return fmt.Errorf("service: %w - unknown item type %q", requesterrors.ErrInvalidItem, itemType)
	}
	return nil
}

// GetItem returns a single item by id
func (s *CatalogService) GetItem(ctx context.Context, itemID string) (models.Item, error) {
	if itemID == "" {
		return models.Item{}, fmt.Errorf("service: %w - empty item ID", requesterrors.ErrInvalidItem)
	}

	item, err := s.ledger.GetItem(ctx, itemID)
	if err != nil {
		return models.Item{}, fmt.Errorf("service: failed to get item %s: %w", itemID, err)
	}
	return item, nil
}

// ListAvailable returns all items currently marked available, newest first
func (s *CatalogService) ListAvailable(ctx context.Context) ([]models.Item, error) {
	items, err := s.ledger.ListAvailableItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list available items: %w", err)
	}
	return items, nil
}
