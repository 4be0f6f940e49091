package server

import (
	catalog "sharelocal/internal/catalogService"
	request "sharelocal/internal/requestService"
	cataloghandler "sharelocal/services/catalog/handler"
	requesthandler "sharelocal/services/request/handler"

	"github.com/gin-gonic/gin"
)

// SetupRouter configures all Gin routes for the application
func SetupRouter(requestService *request.RequestService, catalogService *catalog.CatalogService) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging

	requestHandler := requesthandler.NewRequestHandler(requestService)
	catalogHandler := cataloghandler.NewCatalogHandler(catalogService)

	items := router.Group("/items")
	{
		items.GET("", catalogHandler.ListItemsHandler)
		items.GET("/:item_id", catalogHandler.GetItemHandler)
		items.POST("", CurrentUserMiddleware, catalogHandler.AddItemHandler)
		items.POST("/:item_id/requests", CurrentUserMiddleware, requestHandler.SubmitRequestHandler)
	}

	requests := router.Group("/requests", CurrentUserMiddleware)
	{
		requests.GET("", requestHandler.OwnerRequestsHandler)
		requests.GET("/pending-count", requestHandler.PendingCountHandler)
		requests.GET("/:request_id", requestHandler.RequestDetailHandler)
		requests.POST("/:request_id/accept", requestHandler.AcceptRequestHandler)
		requests.POST("/:request_id/reject", requestHandler.RejectRequestHandler)
	}

	router.GET("/my-requests", CurrentUserMiddleware, requestHandler.MyRequestsHandler)
	router.GET("/request-history", CurrentUserMiddleware, requestHandler.RequestHistoryHandler)

	return router
}
