package handler

import (
	"errors"
	"math"
	"net/http"
	"strconv"

	"ParkSpot-App/internal/application"
	domain "ParkSpot-App/internal/domain/model"
	"ParkSpot-App/internal/usecase"
	"ParkSpot-App/model"

	"github.com/gin-gonic/gin"
)

// defaultSearchRadiusKm radiusクエリパラメータ省略時の検索半径 (km)
const defaultSearchRadiusKm = 5.0

// ParkingSpotsHandler 駐車場スポットに関するHTTPハンドラー
type ParkingSpotsHandler struct {
	spotsService  application.ParkingSpotsService
	nearbyUseCase usecase.NearbySpotsUseCase
}

// NewParkingSpotsHandler ParkingSpotsHandlerの新しいインスタンスを作成
func NewParkingSpotsHandler(spotsService application.ParkingSpotsService, nearbyUseCase usecase.NearbySpotsUseCase) *ParkingSpotsHandler {
	return &ParkingSpotsHandler{
		spotsService:  spotsService,
		nearbyUseCase: nearbyUseCase,
	}
}

// GetAllSpots GET /api/parking-spots - 全スポットの一覧を取得
func (h *ParkingSpotsHandler) GetAllSpots(c *gin.Context) {
	spots, err := h.spotsService.GetAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "internal_error",
			"message": "Failed to get parking spots: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, model.NewClientSpots(spots))
}

// GetSpotByID GET /api/parking-spots/:id - スポットの詳細を取得
func (h *ParkingSpotsHandler) GetSpotByID(c *gin.Context) {
	// 数値でないIDは500ではなく400で弾く
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_parameter",
			"message": "Spot ID must be a number",
		})
		return
	}

	spot, err := h.spotsService.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrSpotNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error":   "not_found",
				"message": "Parking spot not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "internal_error",
			"message": "Failed to get parking spot: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, model.NewClientSpot(spot))
}

// SearchSpots GET /api/parking-spots/search - 座標と半径でスポットを検索
func (h *ParkingSpotsHandler) SearchSpots(c *gin.Context) {
	origin, ok := h.parseLatLng(c)
	if !ok {
		return
	}

	radiusKm, ok := h.parseRadius(c)
	if !ok {
		return
	}

	spots, err := h.spotsService.Search(c.Request.Context(), *origin, radiusKm)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "internal_error",
			"message": "Failed to search parking spots: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, model.NewClientSpots(spots))
}

// GetNearbySpots GET /api/parking-spots/nearby - 距離・所要時間付きの近隣スポットを取得
// lat/lngの指定がない場合はサーバー側で現在位置を取得する
func (h *ParkingSpotsHandler) GetNearbySpots(c *gin.Context) {
	var origin *domain.LatLng
	if c.Query("lat") != "" || c.Query("lng") != "" {
		parsed, ok := h.parseLatLng(c)
		if !ok {
			return
		}
		origin = parsed
	}

	radiusKm, ok := h.parseRadius(c)
	if !ok {
		return
	}

	enriched, err := h.nearbyUseCase.FindNearbySpots(c.Request.Context(), origin, radiusKm)
	if err != nil {
		if errors.Is(err, domain.ErrAcquisitionInFlight) {
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":   "acquisition_in_flight",
				"message": "Location acquisition is already in progress",
			})
			return
		}
		var locErr *domain.LocationUnavailableError
		if errors.As(err, &locErr) {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"error":   string(locErr.Reason),
				"message": locErr.Message,
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "internal_error",
			"message": "Failed to get nearby parking spots: " + err.Error(),
		})
		return
	}

	clientSpots := make([]model.ClientSpot, len(enriched))
	for i := range enriched {
		clientSpots[i] = model.NewClientSpotFromEnriched(&enriched[i])
	}

	c.JSON(http.StatusOK, clientSpots)
}

// CreateSpot POST /api/parking-spots - スポットの新規作成
func (h *ParkingSpotsHandler) CreateSpot(c *gin.Context) {
	var req model.CreateParkingSpotRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"message": "Invalid JSON format: " + err.Error(),
		})
		return
	}

	if req.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"message": "name is required",
		})
		return
	}
	if req.TotalSpots < 0 || req.AvailableSpots < 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"message": "totalSpots and availableSpots must be non-negative",
		})
		return
	}

	spot, err := h.spotsService.Create(c.Request.Context(), req.ToDomain())
	if err != nil {
		if errors.Is(err, domain.ErrAvailabilityExceedsCapacity) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "invalid_request",
				"message": "availableSpots must not exceed totalSpots",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "internal_error",
			"message": "Failed to create parking spot: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, model.NewClientSpot(spot))
}

// UpdateAvailability PATCH /api/parking-spots/:id/availability - 空き台数の更新
func (h *ParkingSpotsHandler) UpdateAvailability(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_parameter",
			"message": "Spot ID must be a number",
		})
		return
	}

	var req model.UpdateAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"message": "Invalid JSON format: " + err.Error(),
		})
		return
	}

	if req.AvailableSpots == nil || *req.AvailableSpots < 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"message": "availableSpots must be a non-negative number",
		})
		return
	}

	spot, err := h.spotsService.UpdateAvailability(c.Request.Context(), id, *req.AvailableSpots)
	if err != nil {
		if errors.Is(err, domain.ErrSpotNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error":   "not_found",
				"message": "Parking spot not found",
			})
			return
		}
		if errors.Is(err, domain.ErrAvailabilityExceedsCapacity) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "invalid_request",
				"message": "availableSpots must not exceed totalSpots",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "internal_error",
			"message": "Failed to update availability: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, model.NewClientSpot(spot))
}

// parseLatLng lat/lngクエリパラメータを検証付きで解析する
// 欠落・非数値・範囲外はすべて400を返してfalseを返す
func (h *ParkingSpotsHandler) parseLatLng(c *gin.Context) (*domain.LatLng, bool) {
	latStr := c.Query("lat")
	lngStr := c.Query("lng")

	if latStr == "" || lngStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "missing_parameter",
			"message": "lat and lng parameters are required",
		})
		return nil, false
	}

	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil || math.IsNaN(lat) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_parameter",
			"message": "Invalid lat value",
		})
		return nil, false
	}

	lng, err := strconv.ParseFloat(lngStr, 64)
	if err != nil || math.IsNaN(lng) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_parameter",
			"message": "Invalid lng value",
		})
		return nil, false
	}

	origin := domain.LatLng{Lat: lat, Lng: lng}
	if !origin.IsValid() {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_parameter",
			"message": "lat/lng is out of range",
		})
		return nil, false
	}

	return &origin, true
}

// parseRadius radiusクエリパラメータを解析する。省略時はデフォルトの5km
func (h *ParkingSpotsHandler) parseRadius(c *gin.Context) (float64, bool) {
	radiusStr := c.Query("radius")
	if radiusStr == "" {
		return defaultSearchRadiusKm, true
	}

	parsed, err := strconv.ParseFloat(radiusStr, 64)
	if err != nil || math.IsNaN(parsed) || parsed < 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_parameter",
			"message": "radius must be a non-negative number",
		})
		return 0, false
	}

	return parsed, true
}
