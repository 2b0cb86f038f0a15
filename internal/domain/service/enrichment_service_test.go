package service

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"ParkSpot-App/internal/domain/model"
	"ParkSpot-App/internal/infrastructure/maps"
)

// stubRouteMatrixProvider 宛先のスポットIDに応じて結果を返すテスト用プロバイダー
type stubRouteMatrixProvider struct {
	mu     sync.Mutex
	calls  int
	lookup func(destination model.LatLng) (*maps.RouteMatrix, error)
}

func (s *stubRouteMatrixProvider) LookupDistance(ctx context.Context, origin, destination model.LatLng) (*maps.RouteMatrix, error) {
	s.mu.Lock()
	s.calls++
	s.mu.Unlock()
	return s.lookup(destination)
}

func testOrigin() model.LatLng {
	return model.LatLng{Lat: 14.5547, Lng: 121.0244}
}

// testSpots 緯度にスポットIDをそのまま入れたテストデータを作る
// プロバイダーのスタブが宛先座標からスポットを判別できるようにするため
func testSpots(n int) []model.ParkingSpot {
	spots := make([]model.ParkingSpot, n)
	for i := range spots {
		spots[i] = model.ParkingSpot{
			ID:        i + 1,
			Latitude:  float64(i + 1),
			Longitude: 121.0,
		}
	}
	return spots
}

func TestSpotEnrichmentService_Enrich(t *testing.T) {
	t.Run("全スポットに距離が付与され距離の昇順で返る", func(t *testing.T) {
		provider := &stubRouteMatrixProvider{
			lookup: func(dest model.LatLng) (*maps.RouteMatrix, error) {
				// 緯度(=スポットID)が大きいほど近い扱いにする
				return &maps.RouteMatrix{DistanceKm: (10.0 - dest.Lat) * 100, DurationSec: 600}, nil
			},
		}
		svc := NewSpotEnrichmentService(provider)

		spots := testSpots(5)
		enriched := svc.Enrich(context.Background(), spots, testOrigin())

		assert.Len(t, enriched, 5)
		for i := 1; i < len(enriched); i++ {
			assert.LessOrEqual(t, *enriched[i-1].DistanceKm, *enriched[i].DistanceKm)
		}
		assert.Equal(t, 5, provider.calls)
	})

	t.Run("一部のルックアップ失敗は距離不明として最後尾に並ぶ", func(t *testing.T) {
		provider := &stubRouteMatrixProvider{
			lookup: func(dest model.LatLng) (*maps.RouteMatrix, error) {
				// 偶数IDの宛先だけ失敗させる（緯度=IDで判別）
				if int(dest.Lat)%2 == 0 {
					return nil, &model.RouteLookupError{StatusCode: 500, Message: "server error"}
				}
				return &maps.RouteMatrix{DistanceKm: dest.Lat, DurationSec: 60}, nil
			},
		}
		svc := NewSpotEnrichmentService(provider)

		spots := testSpots(5)
		enriched := svc.Enrich(context.Background(), spots, testOrigin())

		// 出力の件数は入力と同じ
		assert.Len(t, enriched, 5)

		// 距離既知の3件が前、距離不明の2件(ID 2,4)が後ろ
		assert.NotNil(t, enriched[0].DistanceKm)
		assert.NotNil(t, enriched[1].DistanceKm)
		assert.NotNil(t, enriched[2].DistanceKm)
		assert.Nil(t, enriched[3].DistanceKm)
		assert.Nil(t, enriched[4].DistanceKm)
		assert.Equal(t, 2, enriched[3].ID)
		assert.Equal(t, 4, enriched[4].ID)
	})

	t.Run("全失敗でも件数は保存され元の順序を保つ", func(t *testing.T) {
		provider := &stubRouteMatrixProvider{
			lookup: func(dest model.LatLng) (*maps.RouteMatrix, error) {
				return nil, &model.RouteLookupError{Message: "unreachable"}
			},
		}
		svc := NewSpotEnrichmentService(provider)

		spots := testSpots(3)
		enriched := svc.Enrich(context.Background(), spots, testOrigin())

		assert.Len(t, enriched, 3)
		for i, e := range enriched {
			assert.Nil(t, e.DistanceKm)
			assert.Nil(t, e.DurationSec)
			assert.Equal(t, i+1, e.ID)
		}
	})

	t.Run("空の入力には空のスライスを返す", func(t *testing.T) {
		provider := &stubRouteMatrixProvider{
			lookup: func(dest model.LatLng) (*maps.RouteMatrix, error) {
				t.Fatal("空入力でプロバイダーが呼ばれた")
				return nil, nil
			},
		}
		svc := NewSpotEnrichmentService(provider)

		enriched := svc.Enrich(context.Background(), []model.ParkingSpot{}, testOrigin())

		assert.NotNil(t, enriched)
		assert.Len(t, enriched, 0)
	})

	t.Run("無効な基準座標では距離なしのまま元の順序で返す", func(t *testing.T) {
		provider := &stubRouteMatrixProvider{
			lookup: func(dest model.LatLng) (*maps.RouteMatrix, error) {
				return &maps.RouteMatrix{DistanceKm: 1.0, DurationSec: 60}, nil
			},
		}
		svc := NewSpotEnrichmentService(provider)

		spots := testSpots(3)
		enriched := svc.Enrich(context.Background(), spots, model.LatLng{Lat: 0, Lng: 0})

		assert.Len(t, enriched, 3)
		assert.Equal(t, 0, provider.calls)
		for i, e := range enriched {
			assert.Nil(t, e.DistanceKm)
			assert.Equal(t, i+1, e.ID)
		}
	})
}
