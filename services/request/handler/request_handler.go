package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	model "sharelocal/internal/models"
	request "sharelocal/internal/requestService"
	"sharelocal/internal/requesterrors"
	"sharelocal/services/request/helpers"
	"sharelocal/utils"

	"github.com/gin-gonic/gin"
)

//go:generate mockgen -source=request_handler.go -destination=mock_service.go -package=handler

type RequestServiceInterface interface {
	SubmitRequest(ctx context.Context, itemID, requesterID string) (model.ItemRequest, error)
	AcceptRequest(ctx context.Context, requestID, actingUserID string) (model.ItemRequest, error)
	RejectRequest(ctx context.Context, requestID, actingUserID string) (model.ItemRequest, error)
	ListForOwner(ctx context.Context, ownerID, statusFilter string) ([]model.ItemRequest, error)
	ListForRequester(ctx context.Context, requesterID, statusFilter string) ([]model.ItemRequest, error)
	GetRequestDetail(ctx context.Context, requestID, viewerID string) (model.ItemRequest, error)
	RequestHistory(ctx context.Context, userID, statusFilter string) (request.History, error)
	PendingCount(ctx context.Context, ownerID string) (int, error)
}

type RequestHandler struct {
	service RequestServiceInterface
}

func NewRequestHandler(service RequestServiceInterface) *RequestHandler {
	return &RequestHandler{service: service}
}

// SubmitRequestHandler handles POST /items/:item_id/requests
func (h *RequestHandler) SubmitRequestHandler(c *gin.Context) {
	itemID := c.Param("item_id")
	userID := utils.CurrentUser(c)

	req, err := h.service.SubmitRequest(c.Request.Context(), itemID, userID)
	if err != nil {
		// An existing blocking request is not a failure: return it for
		// display instead of creating a duplicate row.
		if errors.Is(err, requesterrors.ErrAlreadyRequested) {
			utils.JSONResponse(c, http.StatusOK, helpers.NewRequestResponse(req), "you have already requested this item")
			utils.Info("SubmitRequestHandler: duplicate submission", map[string]any{
				"item_id":    itemID,
				"user_id":    userID,
				"request_id": req.RequestID,
				"status":     string(req.Status),
			})
			return
		}
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("SubmitRequestHandler: failed to submit request", map[string]any{
			"handler": "SubmitRequestHandler",
			"item_id": itemID,
			"user_id": userID,
			"error":   err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.NewRequestResponse(req), "request submitted successfully")
	helpers.LogSuccess("SubmitRequestHandler", "request submitted successfully", map[string]any{
		"request_id": req.RequestID,
		"item_id":    req.ItemID,
		"user_id":    userID,
	})
}

// AcceptRequestHandler handles POST /requests/:request_id/accept
func (h *RequestHandler) AcceptRequestHandler(c *gin.Context) {
	requestID := c.Param("request_id")
	userID := utils.CurrentUser(c)

	req, err := h.service.AcceptRequest(c.Request.Context(), requestID, userID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("AcceptRequestHandler: failed to accept request", map[string]any{
			"request_id": requestID,
			"user_id":    userID,
			"error":      err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewRequestResponse(req), "request accepted successfully")
	helpers.LogSuccess("AcceptRequestHandler", "request accepted successfully", map[string]any{
		"request_id": req.RequestID,
		"item_id":    req.ItemID,
		"user_id":    userID,
	})
}

// RejectRequestHandler handles POST /requests/:request_id/reject
func (h *RequestHandler) RejectRequestHandler(c *gin.Context) {
	requestID := c.Param("request_id")
	userID := utils.CurrentUser(c)

	req, err := h.service.RejectRequest(c.Request.Context(), requestID, userID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("RejectRequestHandler: failed to reject request", map[string]any{
			"request_id": requestID,
			"user_id":    userID,
			"error":      err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewRequestResponse(req), "request rejected successfully")
	helpers.LogSuccess("RejectRequestHandler", "request rejected successfully", map[string]any{
		"request_id": req.RequestID,
		"item_id":    req.ItemID,
		"user_id":    userID,
	})
}

// OwnerRequestsHandler handles GET /requests?status=
func (h *RequestHandler) OwnerRequestsHandler(c *gin.Context) {
	userID := utils.CurrentUser(c)
	statusFilter := c.Query("status")

	reqs, err := h.service.ListForOwner(c.Request.Context(), userID, statusFilter)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("OwnerRequestsHandler: error retrieving requests", map[string]any{"user_id": userID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewRequestResponses(reqs), "requests retrieved successfully")
	helpers.LogSuccess("OwnerRequestsHandler", "requests retrieved successfully", map[string]any{
		"user_id": userID,
		"filter":  statusFilter,
		"count":   len(reqs),
	})
}

// MyRequestsHandler handles GET /my-requests?status=
func (h *RequestHandler) MyRequestsHandler(c *gin.Context) {
	userID := utils.CurrentUser(c)
	statusFilter := c.Query("status")

	reqs, err := h.service.ListForRequester(c.Request.Context(), userID, statusFilter)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("MyRequestsHandler: error retrieving requests", map[string]any{"user_id": userID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewRequestResponses(reqs), "requests retrieved successfully")
	helpers.LogSuccess("MyRequestsHandler", "requests retrieved successfully", map[string]any{
		"user_id": userID,
		"filter":  statusFilter,
		"count":   len(reqs),
	})
}

// RequestDetailHandler handles GET /requests/:request_id
func (h *RequestHandler) RequestDetailHandler(c *gin.Context) {
	requestID := c.Param("request_id")
	userID := utils.CurrentUser(c)

	req, err := h.service.GetRequestDetail(c.Request.Context(), requestID, userID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("RequestDetailHandler: error retrieving request", map[string]any{
			"request_id": requestID,
			"user_id":    userID,
			"error":      err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewRequestResponse(req), "request retrieved successfully")
}

// RequestHistoryHandler handles GET /request-history?status=
func (h *RequestHandler) RequestHistoryHandler(c *gin.Context) {
	userID := utils.CurrentUser(c)
	statusFilter := c.Query("status")

	history, err := h.service.RequestHistory(c.Request.Context(), userID, statusFilter)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("RequestHistoryHandler: error retrieving history", map[string]any{"user_id": userID, "error": err.Error()})
		return
	}

	resp := helpers.HistoryResponse{
		Sent:     helpers.NewRequestResponses(history.Sent),
		Received: helpers.NewRequestResponses(history.Received),
	}
	utils.JSONResponse(c, http.StatusOK, resp, "request history retrieved successfully")
	helpers.LogSuccess("RequestHistoryHandler", "request history retrieved successfully", map[string]any{
		"user_id":        userID,
		"sent_count":     len(history.Sent),
		"received_count": len(history.Received),
	})
}

// PendingCountHandler handles GET /requests/pending-count
func (h *RequestHandler) PendingCountHandler(c *gin.Context) {
	userID := utils.CurrentUser(c)

	count, err := h.service.PendingCount(c.Request.Context(), userID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("PendingCountHandler: error counting pending requests", map[string]any{"user_id": userID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.PendingCountResponse{PendingCount: count}, "pending count retrieved successfully")
}
