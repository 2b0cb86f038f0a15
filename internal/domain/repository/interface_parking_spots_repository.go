package repository

import (
	"context"

	"ParkSpot-App/internal/domain/model"
)

// ParkingSpotsRepository 駐車場スポットの永続化を抽象化するリポジトリ
type ParkingSpotsRepository interface {
	// GetByID IDでスポットを1件取得する。存在しない場合は model.ErrSpotNotFound
	GetByID(ctx context.Context, id int) (*model.ParkingSpot, error)

	// GetAll 全スポットをID昇順で取得する
	GetAll(ctx context.Context) ([]model.ParkingSpot, error)

	// GetByRadius 基準座標からradiusKm以内（Haversine距離）のスポットを取得する
	GetByRadius(ctx context.Context, origin model.LatLng, radiusKm float64) ([]model.ParkingSpot, error)

	// Create スポットを新規作成し、連番IDを採番して返す
	Create(ctx context.Context, spot *model.ParkingSpot) (*model.ParkingSpot, error)

	// UpdateAvailability 空き台数を更新する。存在しないIDの場合は model.ErrSpotNotFound
	UpdateAvailability(ctx context.Context, id int, availableSpots int) (*model.ParkingSpot, error)
}
