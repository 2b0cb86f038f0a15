package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"ParkSpot-App/internal/application"
	domain "ParkSpot-App/internal/domain/model"
	"ParkSpot-App/internal/domain/service"
	"ParkSpot-App/internal/infrastructure/maps"
	repoImpl "ParkSpot-App/internal/repository"
	"ParkSpot-App/internal/usecase"
	"ParkSpot-App/model"
)

// fixedRouteMatrixProvider 常に固定の距離を返すテスト用プロバイダー
type fixedRouteMatrixProvider struct {
	matrix *maps.RouteMatrix
	err    error
}

func (f *fixedRouteMatrixProvider) LookupDistance(ctx context.Context, origin, destination domain.LatLng) (*maps.RouteMatrix, error) {
	return f.matrix, f.err
}

// setupTestRouter インメモリバックエンドで全ルートを登録したルーターを作る
func setupTestRouter(provider maps.RouteMatrixProvider) *gin.Engine {
	gin.SetMode(gin.TestMode)

	spotsRepo := repoImpl.NewMemoryParkingSpotsRepository()
	usersRepo := repoImpl.NewMemoryUsersRepository()
	favoritesRepo := repoImpl.NewMemoryFavoritesRepository()
	historyRepo := repoImpl.NewMemoryHistoryRepository()

	if provider == nil {
		provider = &fixedRouteMatrixProvider{matrix: &maps.RouteMatrix{DistanceKm: 1.2, DurationSec: 300}}
	}
	enrichmentService := service.NewSpotEnrichmentService(provider)

	usersService := application.NewUsersService(usersRepo)
	spotsService := application.NewParkingSpotsService(spotsRepo)
	favoritesService := application.NewFavoritesService(favoritesRepo, spotsRepo)
	historyService := application.NewHistoryService(historyRepo, spotsRepo)
	nearbyUseCase := usecase.NewNearbySpotsUseCase(spotsRepo, enrichmentService, nil)

	r := gin.New()
	RegisterRoutes(r,
		NewUsersHandler(usersService),
		NewParkingSpotsHandler(spotsService, nearbyUseCase),
		NewFavoritesHandler(favoritesService),
		NewHistoryHandler(historyService),
	)
	return r
}

func doRequest(r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHealthEndpoint(t *testing.T) {
	r := setupTestRouter(nil)

	w := doRequest(r, "GET", "/api/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestParkingSpotsAPI(t *testing.T) {
	t.Run("一覧はクライアント形状(ネストしたfeatures)で返る", func(t *testing.T) {
		r := setupTestRouter(nil)

		w := doRequest(r, "GET", "/api/parking-spots", nil)
		assert.Equal(t, http.StatusOK, w.Code)

		var spots []map[string]interface{}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &spots))
		assert.Len(t, spots, 18)

		first := spots[0]
		assert.Contains(t, first, "features")
		assert.Contains(t, first, "availableSpots")
		// ストレージ形状のフラットなフラグは露出しない
		assert.NotContains(t, first, "has_security_guard")

		features := first["features"].(map[string]interface{})
		assert.Contains(t, features, "hasSecurityGuard")
		assert.Contains(t, features, "hasEvCharging")
	})

	t.Run("数値でないIDは500ではなく400", func(t *testing.T) {
		r := setupTestRouter(nil)

		w := doRequest(r, "GET", "/api/parking-spots/abc", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("存在しないIDは404", func(t *testing.T) {
		r := setupTestRouter(nil)

		w := doRequest(r, "GET", "/api/parking-spots/9999", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("詳細取得", func(t *testing.T) {
		r := setupTestRouter(nil)

		w := doRequest(r, "GET", "/api/parking-spots/1", nil)
		assert.Equal(t, http.StatusOK, w.Code)

		var spot model.ClientSpot
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &spot))
		assert.Equal(t, "SM Mall Parking", spot.Name)
		assert.Equal(t, 45, spot.AvailableSpots)
	})

	t.Run("検索はlatとlngが必須", func(t *testing.T) {
		r := setupTestRouter(nil)

		w := doRequest(r, "GET", "/api/parking-spots/search", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)

		w = doRequest(r, "GET", "/api/parking-spots/search?lat=14.55", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)

		w = doRequest(r, "GET", "/api/parking-spots/search?lat=abc&lng=121.02", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)

		w = doRequest(r, "GET", "/api/parking-spots/search?lat=NaN&lng=121.02", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)

		w = doRequest(r, "GET", "/api/parking-spots/search?lat=95.0&lng=121.02", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("検索は半径内のスポットを返す", func(t *testing.T) {
		r := setupTestRouter(nil)

		w := doRequest(r, "GET", "/api/parking-spots/search?lat=14.5547&lng=121.0244&radius=1", nil)
		assert.Equal(t, http.StatusOK, w.Code)

		var spots []model.ClientSpot
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &spots))
		assert.NotEmpty(t, spots)
		assert.Equal(t, 1, spots[0].ID)
	})

	t.Run("不正なradiusは400", func(t *testing.T) {
		r := setupTestRouter(nil)

		w := doRequest(r, "GET", "/api/parking-spots/search?lat=14.55&lng=121.02&radius=-1", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)

		w = doRequest(r, "GET", "/api/parking-spots/search?lat=14.55&lng=121.02&radius=abc", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("スポットの作成は201で採番済みIDを返す", func(t *testing.T) {
		r := setupTestRouter(nil)

		w := doRequest(r, "POST", "/api/parking-spots", map[string]interface{}{
			"name":           "Test Garage",
			"address":        "Test St",
			"latitude":       14.55,
			"longitude":      121.02,
			"totalSpots":     10,
			"availableSpots": 5,
		})
		assert.Equal(t, http.StatusCreated, w.Code)

		var spot model.ClientSpot
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &spot))
		assert.Equal(t, 19, spot.ID)
		assert.Equal(t, domain.DefaultCurrency, spot.Currency)
	})

	t.Run("空き台数が総台数を超える作成は400", func(t *testing.T) {
		r := setupTestRouter(nil)

		w := doRequest(r, "POST", "/api/parking-spots", map[string]interface{}{
			"name":           "Overbooked",
			"totalSpots":     5,
			"availableSpots": 10,
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("空き台数の更新", func(t *testing.T) {
		r := setupTestRouter(nil)

		w := doRequest(r, "PATCH", "/api/parking-spots/1/availability", map[string]interface{}{
			"availableSpots": 7,
		})
		assert.Equal(t, http.StatusOK, w.Code)

		var spot model.ClientSpot
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &spot))
		assert.Equal(t, 7, spot.AvailableSpots)

		// 総台数超過は400
		w = doRequest(r, "PATCH", "/api/parking-spots/1/availability", map[string]interface{}{
			"availableSpots": 100000,
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)

		// 存在しないスポットは404
		w = doRequest(r, "PATCH", "/api/parking-spots/9999/availability", map[string]interface{}{
			"availableSpots": 1,
		})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestNearbySpotsAPI(t *testing.T) {
	t.Run("距離と所要時間が付与されて返る", func(t *testing.T) {
		r := setupTestRouter(&fixedRouteMatrixProvider{
			matrix: &maps.RouteMatrix{DistanceKm: 2.5, DurationSec: 480},
		})

		w := doRequest(r, "GET", "/api/parking-spots/nearby?lat=14.5547&lng=121.0244&radius=3", nil)
		assert.Equal(t, http.StatusOK, w.Code)

		var spots []model.ClientSpot
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &spots))
		assert.NotEmpty(t, spots)
		for _, spot := range spots {
			assert.NotNil(t, spot.Distance)
			assert.Equal(t, 2.5, *spot.Distance)
			assert.NotNil(t, spot.Duration)
		}
	})

	t.Run("ルックアップ全滅でも200で距離不明のまま返る", func(t *testing.T) {
		r := setupTestRouter(&fixedRouteMatrixProvider{
			err: &domain.RouteLookupError{StatusCode: 500, Message: "down"},
		})

		w := doRequest(r, "GET", "/api/parking-spots/nearby?lat=14.5547&lng=121.0244&radius=3", nil)
		assert.Equal(t, http.StatusOK, w.Code)

		var spots []model.ClientSpot
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &spots))
		assert.NotEmpty(t, spots)
		for _, spot := range spots {
			assert.Nil(t, spot.Distance)
		}
	})

	t.Run("座標指定がなく位置取得も無効な場合は503", func(t *testing.T) {
		r := setupTestRouter(nil)

		w := doRequest(r, "GET", "/api/parking-spots/nearby", nil)
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})
}

func TestUsersAPI(t *testing.T) {
	t.Run("uidとemailのないリクエストは400", func(t *testing.T) {
		r := setupTestRouter(nil)

		w := doRequest(r, "POST", "/api/users", map[string]interface{}{"email": "a@example.com"})
		assert.Equal(t, http.StatusBadRequest, w.Code)

		w = doRequest(r, "POST", "/api/users", map[string]interface{}{"uid": "u1"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("作成と取得、同じUIDの再作成は既存を返す", func(t *testing.T) {
		r := setupTestRouter(nil)

		w := doRequest(r, "POST", "/api/users", map[string]interface{}{
			"uid":         "firebase-uid-1",
			"email":       "driver@example.com",
			"displayName": "Driver",
		})
		assert.Equal(t, http.StatusCreated, w.Code)

		var created domain.User
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
		assert.Equal(t, 1, created.ID)

		// 同じUIDで再度POSTしても新規レコードは作られない
		w = doRequest(r, "POST", "/api/users", map[string]interface{}{
			"uid":   "firebase-uid-1",
			"email": "driver@example.com",
		})
		assert.Equal(t, http.StatusCreated, w.Code)

		var again domain.User
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &again))
		assert.Equal(t, created.ID, again.ID)

		w = doRequest(r, "GET", "/api/users/uid/firebase-uid-1", nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("存在しないUIDは404", func(t *testing.T) {
		r := setupTestRouter(nil)

		w := doRequest(r, "GET", "/api/users/uid/missing", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestFavoritesAPI(t *testing.T) {
	t.Run("2回追加しても一覧には1件だけ", func(t *testing.T) {
		r := setupTestRouter(nil)

		body := map[string]interface{}{"userId": 1, "parkingSpotId": 1}

		w := doRequest(r, "POST", "/api/favorites", body)
		assert.Equal(t, http.StatusCreated, w.Code)

		w = doRequest(r, "POST", "/api/favorites", body)
		assert.Equal(t, http.StatusCreated, w.Code)

		w = doRequest(r, "GET", "/api/favorites/1", nil)
		assert.Equal(t, http.StatusOK, w.Code)

		var spots []model.ClientSpot
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &spots))
		assert.Len(t, spots, 1)
		assert.Equal(t, 1, spots[0].ID)
		assert.True(t, spots[0].IsFavorite)
	})

	t.Run("必須フィールドのないボディは400", func(t *testing.T) {
		r := setupTestRouter(nil)

		w := doRequest(r, "POST", "/api/favorites", map[string]interface{}{"userId": 1})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("数値でないuserIdは400", func(t *testing.T) {
		r := setupTestRouter(nil)

		w := doRequest(r, "GET", "/api/favorites/abc", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("削除は204で存在しないIDでも204", func(t *testing.T) {
		r := setupTestRouter(nil)

		w := doRequest(r, "POST", "/api/favorites", map[string]interface{}{"userId": 1, "parkingSpotId": 2})
		assert.Equal(t, http.StatusCreated, w.Code)

		var fav domain.Favorite
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &fav))

		w = doRequest(r, "DELETE", "/api/favorites/1", nil)
		assert.Equal(t, http.StatusNoContent, w.Code)

		w = doRequest(r, "DELETE", "/api/favorites/9999", nil)
		assert.Equal(t, http.StatusNoContent, w.Code)

		w = doRequest(r, "DELETE", "/api/favorites/abc", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHistoryAPI(t *testing.T) {
	t.Run("閲覧の記録と新しい順の取得", func(t *testing.T) {
		r := setupTestRouter(nil)

		w := doRequest(r, "POST", "/api/history", map[string]interface{}{"uid": "u1", "parkingSpotId": 1})
		assert.Equal(t, http.StatusCreated, w.Code)

		w = doRequest(r, "POST", "/api/history", map[string]interface{}{"uid": "u1", "parkingSpotId": 2})
		assert.Equal(t, http.StatusCreated, w.Code)

		// スポット1を再閲覧すると先頭に移動する
		w = doRequest(r, "POST", "/api/history", map[string]interface{}{"uid": "u1", "parkingSpotId": 1})
		assert.Equal(t, http.StatusCreated, w.Code)

		w = doRequest(r, "GET", "/api/history/u1", nil)
		assert.Equal(t, http.StatusOK, w.Code)

		var spots []model.ClientSpot
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &spots))
		assert.Len(t, spots, 2)
		assert.Equal(t, 1, spots[0].ID)
		assert.Equal(t, 2, spots[1].ID)
	})

	t.Run("存在しないスポットの記録は404", func(t *testing.T) {
		r := setupTestRouter(nil)

		w := doRequest(r, "POST", "/api/history", map[string]interface{}{"uid": "u1", "parkingSpotId": 9999})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("必須フィールドのないボディは400", func(t *testing.T) {
		r := setupTestRouter(nil)

		w := doRequest(r, "POST", "/api/history", map[string]interface{}{"uid": "u1"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
