package geolocation

import (
	"context"

	"ParkSpot-App/internal/domain/model"
)

// LocationAcquirer 現在位置の取得を抽象化するインターフェース
type LocationAcquirer interface {
	// AcquireLocation 現在位置を取得する
	AcquireLocation(ctx context.Context) (*model.LocatedCoordinate, error)
}
