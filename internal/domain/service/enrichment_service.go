package service

import (
	"context"
	"log"
	"sync"

	"ParkSpot-App/internal/domain/helper"
	"ParkSpot-App/internal/domain/model"
	"ParkSpot-App/internal/infrastructure/maps"
)

// SpotEnrichmentService スポット一覧に現在地からの距離・所要時間を付与するサービス
type SpotEnrichmentService interface {
	// Enrich 各スポットに距離・所要時間を付与し、距離の昇順でソートして返す
	// 出力の件数は常に入力と同じ。個別のルックアップ失敗は距離不明として扱う
	Enrich(ctx context.Context, spots []model.ParkingSpot, origin model.LatLng) []model.EnrichedParkingSpot
}

// spotEnrichmentServiceImpl SpotEnrichmentServiceの実装
type spotEnrichmentServiceImpl struct {
	routeMatrixProvider maps.RouteMatrixProvider
}

// NewSpotEnrichmentService SpotEnrichmentServiceの新しいインスタンスを作成
func NewSpotEnrichmentService(provider maps.RouteMatrixProvider) SpotEnrichmentService {
	return &spotEnrichmentServiceImpl{
		routeMatrixProvider: provider,
	}
}

// Enrich 各スポットの距離・所要時間を並行取得してソート済みの一覧を返す
func (s *spotEnrichmentServiceImpl) Enrich(ctx context.Context, spots []model.ParkingSpot, origin model.LatLng) []model.EnrichedParkingSpot {
	if len(spots) == 0 {
		return []model.EnrichedParkingSpot{}
	}

	// 現在地が無効な場合は失敗させず、距離なしのまま元の順序で返す
	enriched := make([]model.EnrichedParkingSpot, len(spots))
	for i := range spots {
		enriched[i] = model.EnrichedParkingSpot{ParkingSpot: spots[i]}
	}
	if !origin.IsValid() {
		return enriched
	}

	type lookupResult struct {
		index  int
		matrix *maps.RouteMatrix
		err    error
	}

	resultChan := make(chan lookupResult, len(spots))
	var wg sync.WaitGroup

	// 各スポットに対して並行で距離・所要時間を取得
	for i := range spots {
		wg.Add(1)
		go func(idx int, spot *model.ParkingSpot) {
			defer wg.Done()
			matrix, err := s.routeMatrixProvider.LookupDistance(ctx, origin, spot.ToLatLng())
			resultChan <- lookupResult{index: idx, matrix: matrix, err: err}
		}(i, &spots[i])
	}

	// 別のgoroutineでwaitしてチャンネルを閉じる
	go func() {
		wg.Wait()
		close(resultChan)
	}()

	// 結果を収集。1スポットの失敗で全体を中断しない
	for result := range resultChan {
		if result.err != nil {
			log.Printf("⚠️ スポット%d の距離取得に失敗、距離不明として継続: %v", enriched[result.index].ID, result.err)
			continue
		}
		distanceKm := result.matrix.DistanceKm
		durationSec := result.matrix.DurationSec
		enriched[result.index].DistanceKm = &distanceKm
		enriched[result.index].DurationSec = &durationSec
	}

	// 距離の昇順でソート（距離不明は番兵値999kmで最後尾へ）
	helper.SortEnrichedByDistance(enriched)

	return enriched
}
