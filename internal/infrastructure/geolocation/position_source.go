package geolocation

import (
	"context"
	"time"

	"ParkSpot-App/internal/domain/model"
)

// PositionOptions 1回の位置情報リクエストのオプション
type PositionOptions struct {
	HighAccuracy bool          // 高精度モード（GPS相当）を要求する
	Timeout      time.Duration // このリクエスト単体のタイムアウト
	MaximumAge   time.Duration // この時間以内のキャッシュ結果を許容する（0はキャッシュ不可）
}

// PositionSource 位置情報を1回取得する下位レイヤー（プラットフォーム側）の抽象
// 失敗時は *model.LocationUnavailableError を返す
type PositionSource interface {
	GetCurrentPosition(ctx context.Context, opts PositionOptions) (*model.LocatedCoordinate, error)
}
