package integrationtests

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	catalog "sharelocal/internal/catalogService"
	model "sharelocal/internal/models"
	"sharelocal/internal/repository"
	request "sharelocal/internal/requestService"
	"sharelocal/internal/server"
	"sharelocal/utils"

	"github.com/gin-gonic/gin"
)

// SetupTestRouter initializes the router over an in-memory ledger seeded with items.
func SetupTestRouter(t *testing.T, items ...model.Item) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)
	ledger := repository.NewMemoryLedger()
	for _, item := range items {
		if err := ledger.AddItem(context.Background(), item); err != nil {
			t.Fatalf("failed to seed item %s: %v", item.ItemID, err)
		}
	}

	requestSvc := request.NewRequestService(ledger)
	catalogSvc := catalog.NewCatalogService(ledger)
	return server.SetupRouter(requestSvc, catalogSvc)
}

// ExecuteAs executes an HTTP request as the given user and parses the JSON envelope.
func ExecuteAs(t *testing.T, router *gin.Engine, userID, method, url string, body any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var reqBody []byte
	var err error
	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	default:
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	if userID != "" {
		req.Header.Set(utils.HeaderUserID, userID)
	}
	router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
	}
	return resp, w
}

// seedItem builds an available item for test setup
func seedItem(itemID, ownerID, title string) model.Item {
	return model.Item{
		ItemID:      itemID,
		OwnerID:     ownerID,
		Title:       title,
		Description: title + " description",
		ItemType:    model.ItemTypeShare,
		IsAvailable: true,
		Status:      model.ItemStatusAvailable,
		CreatedAt:   time.Now().UTC(),
	}
}

// data extracts the envelope payload as an object
func data(t *testing.T, resp map[string]any) map[string]any {
	t.Helper()
	payload, ok := resp["data"].(map[string]any)
	if !ok {
		t.Fatalf("response data is not an object: %v", resp)
	}
	return payload
}
