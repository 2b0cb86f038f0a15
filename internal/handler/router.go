package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes すべてのAPIルートをginエンジンに登録する
func RegisterRoutes(
	r *gin.Engine,
	usersHandler *UsersHandler,
	spotsHandler *ParkingSpotsHandler,
	favoritesHandler *FavoritesHandler,
	historyHandler *HistoryHandler,
) {
	r.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "ParkSpot-App",
		})
	})

	api := r.Group("/api")
	{
		api.GET("/users/uid/:uid", usersHandler.GetUserByUID)
		api.POST("/users", usersHandler.CreateUser)

		api.GET("/parking-spots", spotsHandler.GetAllSpots)
		api.GET("/parking-spots/search", spotsHandler.SearchSpots)
		api.GET("/parking-spots/nearby", spotsHandler.GetNearbySpots)
		api.GET("/parking-spots/:id", spotsHandler.GetSpotByID)
		api.POST("/parking-spots", spotsHandler.CreateSpot)
		api.PATCH("/parking-spots/:id/availability", spotsHandler.UpdateAvailability)

		api.GET("/favorites/:userId", favoritesHandler.ListFavorites)
		api.POST("/favorites", favoritesHandler.AddFavorite)
		api.DELETE("/favorites/:id", favoritesHandler.RemoveFavorite)

		api.GET("/history/:uid", historyHandler.ListHistory)
		api.POST("/history", historyHandler.RecordHistory)
	}
}
