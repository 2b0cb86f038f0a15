package model

// LatLng 緯度経度を表す基本的な型（距離計算や経路検索で使用）
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// IsValid 緯度経度が有効な範囲内かどうかを判定する
// ゼロ値の組み合わせ（0, 0）は未取得扱いとして無効にする
func (l LatLng) IsValid() bool {
	if l.Lat == 0 && l.Lng == 0 {
		return false
	}
	return l.Lat >= -90 && l.Lat <= 90 && l.Lng >= -180 && l.Lng <= 180
}

// LocatedCoordinate 位置情報取得で得られた座標（精度付き）
type LocatedCoordinate struct {
	LatLng
	AccuracyMeters float64 `json:"accuracy"` // 精度（メートル、非負）
}
