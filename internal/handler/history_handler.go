package handler

import (
	"errors"
	"net/http"

	"ParkSpot-App/internal/application"
	domain "ParkSpot-App/internal/domain/model"
	"ParkSpot-App/model"

	"github.com/gin-gonic/gin"
)

// HistoryHandler スポット閲覧履歴に関するHTTPハンドラー
type HistoryHandler struct {
	historyService application.HistoryService
}

// NewHistoryHandler HistoryHandlerの新しいインスタンスを作成
func NewHistoryHandler(historyService application.HistoryService) *HistoryHandler {
	return &HistoryHandler{
		historyService: historyService,
	}
}

// ListHistory GET /api/history/:uid - ユーザーの閲覧履歴を新しい順に取得
func (h *HistoryHandler) ListHistory(c *gin.Context) {
	uid := c.Param("uid")
	if uid == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "missing_parameter",
			"message": "uid is required",
		})
		return
	}

	spots, err := h.historyService.ListSpots(c.Request.Context(), uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "internal_error",
			"message": "Failed to get history: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, model.NewClientSpots(spots))
}

// RecordHistory POST /api/history - スポット閲覧の記録
func (h *HistoryHandler) RecordHistory(c *gin.Context) {
	var req model.AddHistoryRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"message": "Invalid JSON format: " + err.Error(),
		})
		return
	}

	if req.UID == "" || req.ParkingSpotID == nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"message": "uid and parkingSpotId are required",
		})
		return
	}

	if err := h.historyService.Record(c.Request.Context(), req.UID, *req.ParkingSpotID); err != nil {
		if errors.Is(err, domain.ErrSpotNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error":   "not_found",
				"message": "Parking spot not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "internal_error",
			"message": "Failed to record history: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"status": "success"})
}
