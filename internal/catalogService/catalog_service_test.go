package catalog

import (
	"context"
	"testing"

	model "sharelocal/internal/models"
	"sharelocal/internal/repository"
	"sharelocal/internal/requesterrors"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

// Tests AddItem
func TestCatalogService_AddItem(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLedger := repository.NewMockRequestLedger(ctrl)
	service := NewCatalogService(mockLedger)

	ctx := context.Background()

	tests := []struct {
		name          string
		ownerID       string
		title         string
		itemType      string
		price         float64
		mockSetup     func()
		expectedError error
	}{
		{
			name:     "valid_give_away_item",
			ownerID:  "alice",
			title:    "Bicycle",
			itemType: model.ItemTypeShare,
			price:    0,
			mockSetup: func() {
				mockLedger.EXPECT().AddItem(ctx, gomock.Any()).Return(nil)
			},
		},
		{
			name:     "valid_sell_item",
			ownerID:  "alice",
			title:    "Bookshelf",
			itemType: model.ItemTypeSell,
			price:    40,
			mockSetup: func() {
				mockLedger.EXPECT().AddItem(ctx, gomock.Any()).Return(nil)
			},
		},
		{
			name:          "give_away_with_price",
			ownerID:       "alice",
			title:         "Bicycle",
			itemType:      model.ItemTypeShare,
			price:         10,
			mockSetup:     func() {},
			expectedError: requesterrors.ErrInvalidItem,
		},
		{
			name:          "sell_without_price",
			ownerID:       "alice",
			title:         "Bookshelf",
			itemType:      model.ItemTypeSell,
			price:         0,
			mockSetup:     func() {},
			expectedError: requesterrors.ErrInvalidItem,
		},
		{
			name:          "rent_without_price",
			ownerID:       "alice",
			title:         "Drill",
			itemType:      model.ItemTypeRent,
			price:         0,
			mockSetup:     func() {},
			expectedError: requesterrors.ErrInvalidItem,
		},
		{
			name:          "unknown_item_type",
			ownerID:       "alice",
			title:         "Bicycle",
			itemType:      "Swap",
			price:         0,
			mockSetup:     func() {},
			expectedError: requesterrors.ErrInvalidItem,
		},
		{
			name:          "missing_title",
			ownerID:       "alice",
			title:         "",
			itemType:      model.ItemTypeShare,
			price:         0,
			mockSetup:     func() {},
			expectedError: requesterrors.ErrInvalidItem,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.mockSetup()

			item, err := service.AddItem(ctx, tc.ownerID, tc.title, "some description", tc.itemType, tc.price)
			if tc.expectedError != nil {
				require.ErrorIs(t, err, tc.expectedError)
				return
			}
			require.NoError(t, err)
			require.NotEmpty(t, item.ItemID)
			require.Equal(t, tc.ownerID, item.OwnerID)
			require.Equal(t, model.ItemStatusAvailable, item.Status)
			require.True(t, item.IsAvailable)
		})
	}
}

// Tests GetItem and ListAvailable
func TestCatalogService_Reads(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLedger := repository.NewMockRequestLedger(ctrl)
	service := NewCatalogService(mockLedger)

	ctx := context.Background()
	item := model.Item{ItemID: "item1", OwnerID: "alice", Title: "Bicycle"}

	t.Run("get_item", func(t *testing.T) {
		mockLedger.EXPECT().GetItem(ctx, "item1").Return(item, nil)

		got, err := service.GetItem(ctx, "item1")
		require.NoError(t, err)
		require.Equal(t, item, got)
	})

	t.Run("get_item_not_found", func(t *testing.T) {
		mockLedger.EXPECT().GetItem(ctx, "itemX").Return(model.Item{}, requesterrors.ErrItemNotFound)

		_, err := service.GetItem(ctx, "itemX")
		require.ErrorIs(t, err, requesterrors.ErrItemNotFound)
	})

	t.Run("get_item_empty_id", func(t *testing.T) {
		_, err := service.GetItem(ctx, "")
		require.ErrorIs(t, err, requesterrors.ErrInvalidItem)
	})

	t.Run("list_available", func(t *testing.T) {
		mockLedger.EXPECT().ListAvailableItems(ctx).Return([]model.Item{item}, nil)

		items, err := service.ListAvailable(ctx)
		require.NoError(t, err)
		require.Len(t, items, 1)
	})
}
