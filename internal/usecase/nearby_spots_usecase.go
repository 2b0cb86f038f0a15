package usecase

import (
	"context"
	"fmt"
	"log"

	"ParkSpot-App/internal/domain/model"
	"ParkSpot-App/internal/domain/repository"
	"ParkSpot-App/internal/domain/service"
	"ParkSpot-App/internal/infrastructure/geolocation"
)

type NearbySpotsUseCase interface {
	// FindNearbySpots は基準座標の周辺スポットを距離・所要時間付きで距離昇順に取得する
	// originがnilの場合は現在位置を段階的フォールバック付きで取得してから検索する
	FindNearbySpots(ctx context.Context, origin *model.LatLng, radiusKm float64) ([]model.EnrichedParkingSpot, error)
}

// nearbySpotsUseCaseImpl はNearbySpotsUseCaseの実装
type nearbySpotsUseCaseImpl struct {
	spotsRepo         repository.ParkingSpotsRepository
	enrichmentService service.SpotEnrichmentService
	locationAcquirer  geolocation.LocationAcquirer
}

// NewNearbySpotsUseCase は新しいNearbySpotsUseCaseインスタンスを作成
func NewNearbySpotsUseCase(
	spotsRepo repository.ParkingSpotsRepository,
	enrichmentService service.SpotEnrichmentService,
	locationAcquirer geolocation.LocationAcquirer,
) NearbySpotsUseCase {
	return &nearbySpotsUseCaseImpl{
		spotsRepo:         spotsRepo,
		enrichmentService: enrichmentService,
		locationAcquirer:  locationAcquirer,
	}
}

// FindNearbySpots は基準座標の周辺スポットを距離・所要時間付きで取得する
func (u *nearbySpotsUseCaseImpl) FindNearbySpots(ctx context.Context, origin *model.LatLng, radiusKm float64) ([]model.EnrichedParkingSpot, error) {
	// Step 1: 基準座標を決定（指定がなければ現在位置を取得）
	resolvedOrigin, err := u.resolveOrigin(ctx, origin)
	if err != nil {
		return nil, err
	}

	// Step 2: 半径内のスポットを取得
	spots, err := u.spotsRepo.GetByRadius(ctx, resolvedOrigin, radiusKm)
	if err != nil {
		return nil, fmt.Errorf("近隣スポットの取得に失敗: %w", err)
	}

	// Step 3: 距離・所要時間を付与して距離昇順に並べる
	enriched := u.enrichmentService.Enrich(ctx, spots, resolvedOrigin)

	log.Printf("✅ 近隣スポット検索完了 (基準: %.4f,%.4f, 半径: %.1fkm, 件数: %d)",
		resolvedOrigin.Lat, resolvedOrigin.Lng, radiusKm, len(enriched))

	return enriched, nil
}

// resolveOrigin 検索の基準座標を決定する
func (u *nearbySpotsUseCaseImpl) resolveOrigin(ctx context.Context, origin *model.LatLng) (model.LatLng, error) {
	if origin != nil && origin.IsValid() {
		return *origin, nil
	}

	if u.locationAcquirer == nil {
		return model.LatLng{}, &model.LocationUnavailableError{
			Reason:  model.LocationReasonPositionUnavailable,
			Message: "位置情報プロバイダーが設定されていません",
		}
	}

	log.Printf("📍 基準座標の指定がないため現在位置を取得します")
	coord, err := u.locationAcquirer.AcquireLocation(ctx)
	if err != nil {
		return model.LatLng{}, err
	}

	return coord.LatLng, nil
}
