package maps

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"ParkSpot-App/internal/domain/model"
)

func TestMapQuestRouteMatrixProvider_LookupDistance(t *testing.T) {
	origin := model.LatLng{Lat: 14.5547, Lng: 121.0244}
	destination := model.LatLng{Lat: 14.5352, Lng: 120.9822}

	t.Run("正常なレスポンスから2要素目の距離と時間を返す", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "POST", r.Method)
			assert.Equal(t, "test-key", r.URL.Query().Get("key"))

			var req struct {
				Locations []string `json:"locations"`
				Options   struct {
					AllToAll bool   `json:"allToAll"`
					Unit     string `json:"unit"`
				} `json:"options"`
			}
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Len(t, req.Locations, 2)
			assert.False(t, req.Options.AllToAll)
			assert.Equal(t, "k", req.Options.Unit)

			// 1要素目は出発地自身なので常に0
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"distance": [0, 7.215], "time": [0, 1086]}`))
		}))
		defer server.Close()

		provider := NewMapQuestRouteMatrixProviderWithBaseURL("test-key", server.URL)
		matrix, err := provider.LookupDistance(context.Background(), origin, destination)

		assert.NoError(t, err)
		assert.Equal(t, 7.215, matrix.DistanceKm)
		assert.Equal(t, 1086.0, matrix.DurationSec)
	})

	t.Run("非200ステータスはRouteLookupErrorを返す", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		}))
		defer server.Close()

		provider := NewMapQuestRouteMatrixProviderWithBaseURL("bad-key", server.URL)
		_, err := provider.LookupDistance(context.Background(), origin, destination)

		var lookupErr *model.RouteLookupError
		assert.ErrorAs(t, err, &lookupErr)
		assert.Equal(t, http.StatusForbidden, lookupErr.StatusCode)
	})

	t.Run("距離配列が不足したレスポンスはRouteLookupErrorを返す", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"distance": [0], "time": [0]}`))
		}))
		defer server.Close()

		provider := NewMapQuestRouteMatrixProviderWithBaseURL("test-key", server.URL)
		_, err := provider.LookupDistance(context.Background(), origin, destination)

		var lookupErr *model.RouteLookupError
		assert.ErrorAs(t, err, &lookupErr)
	})

	t.Run("JSONでないレスポンスはRouteLookupErrorを返す", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("not json"))
		}))
		defer server.Close()

		provider := NewMapQuestRouteMatrixProviderWithBaseURL("test-key", server.URL)
		_, err := provider.LookupDistance(context.Background(), origin, destination)

		var lookupErr *model.RouteLookupError
		assert.ErrorAs(t, err, &lookupErr)
	})
}
