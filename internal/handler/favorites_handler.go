package handler

import (
	"net/http"
	"strconv"

	"ParkSpot-App/internal/application"
	"ParkSpot-App/model"

	"github.com/gin-gonic/gin"
)

// FavoritesHandler お気に入りに関するHTTPハンドラー
type FavoritesHandler struct {
	favoritesService application.FavoritesService
}

// NewFavoritesHandler FavoritesHandlerの新しいインスタンスを作成
func NewFavoritesHandler(favoritesService application.FavoritesService) *FavoritesHandler {
	return &FavoritesHandler{
		favoritesService: favoritesService,
	}
}

// ListFavorites GET /api/favorites/:userId - ユーザーのお気に入りスポット一覧を取得
func (h *FavoritesHandler) ListFavorites(c *gin.Context) {
	userID, err := strconv.Atoi(c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_parameter",
			"message": "User ID must be a number",
		})
		return
	}

	spots, err := h.favoritesService.ListSpots(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "internal_error",
			"message": "Failed to get favorites: " + err.Error(),
		})
		return
	}

	clientSpots := model.NewClientSpots(spots)
	for i := range clientSpots {
		clientSpots[i].IsFavorite = true
	}

	c.JSON(http.StatusOK, clientSpots)
}

// AddFavorite POST /api/favorites - お気に入りの追加
// 同じ (userId, parkingSpotId) の組への追加は冪等で、何度呼んでも201を返す
func (h *FavoritesHandler) AddFavorite(c *gin.Context) {
	var req model.AddFavoriteRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"message": "Invalid JSON format: " + err.Error(),
		})
		return
	}

	if req.UserID == nil || req.ParkingSpotID == nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"message": "userId and parkingSpotId are required",
		})
		return
	}

	favorite, err := h.favoritesService.Add(c.Request.Context(), *req.UserID, *req.ParkingSpotID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "internal_error",
			"message": "Failed to add favorite: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, favorite)
}

// RemoveFavorite DELETE /api/favorites/:id - お気に入りの削除
func (h *FavoritesHandler) RemoveFavorite(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_parameter",
			"message": "Favorite ID must be a number",
		})
		return
	}

	if err := h.favoritesService.Remove(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "internal_error",
			"message": "Failed to remove favorite: " + err.Error(),
		})
		return
	}

	c.Status(http.StatusNoContent)
}
