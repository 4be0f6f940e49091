package main

import (
	"context"
	"fmt"
	"os"
	"time"

	catalog "sharelocal/internal/catalogService"
	model "sharelocal/internal/models"
	"sharelocal/internal/repository"
	request "sharelocal/internal/requestService"
	"sharelocal/internal/server"
	"sharelocal/utils"
)

func main() {

	ledger, err := openLedger()
	if err != nil {
		utils.Fatal("Failed to open request ledger", map[string]any{"error": err.Error()})
	}

	requestSvc := request.NewRequestService(ledger)
	catalogSvc := catalog.NewCatalogService(ledger)

	router := server.SetupRouter(requestSvc, catalogSvc)

	port := getPort()
	fmt.Printf("Starting sharelocal server on %s...\n", port)
	if err := router.Run(port); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start server: %v\n", err)
		os.Exit(1)
	}
}

// openLedger selects the ledger backend: SQLite when SHARELOCAL_DB points at
// a database file, otherwise an in-memory ledger seeded with sample items.
func openLedger() (repository.RequestLedger, error) {
	if path := os.Getenv("SHARELOCAL_DB"); path != "" {
		db, err := repository.OpenSQLite(path)
		if err != nil {
			return nil, err
		}
		return repository.NewSQLiteLedger(db)
	}

	ledger := repository.NewMemoryLedger()
	prepopulateItems(ledger)
	return ledger, nil
}

// prepopulateItems adds sample listings to the in-memory ledger
func prepopulateItems(ledger *repository.MemoryLedger) {
	items := []model.Item{
		{ItemID: "item1", OwnerID: "alice", Title: "Bicycle", Description: "city bike, some rust", ItemType: model.ItemTypeShare, IsAvailable: true, Status: model.ItemStatusAvailable, CreatedAt: time.Now().UTC()},
		{ItemID: "item2", OwnerID: "alice", Title: "Bookshelf", Description: "solid pine", ItemType: model.ItemTypeSell, Price: 40, IsAvailable: true, Status: model.ItemStatusAvailable, CreatedAt: time.Now().UTC()},
		{ItemID: "item3", OwnerID: "bob", Title: "Power drill", Description: "weekend rental", ItemType: model.ItemTypeRent, Price: 10, IsAvailable: true, Status: model.ItemStatusAvailable, CreatedAt: time.Now().UTC()},
	}

	for _, item := range items {
		_ = ledger.AddItem(context.Background(), item)
	}
}

// getPort returns the server port from env or defaults to ":8080"
func getPort() string {
	if p := os.Getenv("PORT"); p != "" {
		return fmt.Sprintf(":%s", p)
	}
	return ":8080"
}
