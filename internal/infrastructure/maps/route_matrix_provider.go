package maps

import (
	"context"

	"ParkSpot-App/internal/domain/model"
)

// RouteMatrix 2地点間の距離と所要時間
type RouteMatrix struct {
	DistanceKm  float64 // 距離 (km)
	DurationSec float64 // 所要時間 (秒)
}

// RouteMatrixProvider 2地点間の距離・所要時間を外部サービスで取得するプロバイダ
type RouteMatrixProvider interface {
	// LookupDistance originからdestinationまでの距離と所要時間を取得する
	// 非成功ステータスやレスポンス不正の場合は model.RouteLookupError を返す。リトライはしない
	LookupDistance(ctx context.Context, origin, destination model.LatLng) (*RouteMatrix, error)
}
