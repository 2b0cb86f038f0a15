package model

// ParkingSpot 駐車場スポットを表すドメインモデル
type ParkingSpot struct {
	ID                   int      `json:"id" db:"id"`                                           // リポジトリが採番する連番ID
	Name                 string   `json:"name" db:"name"`                                       // スポット名
	Address              string   `json:"address" db:"address"`                                 // 住所
	Latitude             float64  `json:"latitude" db:"latitude"`                               // 緯度
	Longitude            float64  `json:"longitude" db:"longitude"`                             // 経度
	TotalSpots           int      `json:"total_spots" db:"total_spots"`                         // 総駐車台数
	AvailableSpots       int      `json:"available_spots" db:"available_spots"`                 // 空き台数（total_spots以下）
	PricePerHour         *float64 `json:"price_per_hour" db:"price_per_hour"`                   // 時間単価（NULLABLE）
	Currency             string   `json:"currency" db:"currency"`                               // 通貨記号（デフォルト "₱"）
	IsOpen24Hours        bool     `json:"is_open_24_hours" db:"is_open_24_hours"`               // 24時間営業フラグ
	OpeningTime          *string  `json:"opening_time" db:"opening_time"`                       // 開店時刻（NULLABLE）
	ClosingTime          *string  `json:"closing_time" db:"closing_time"`                       // 閉店時刻（NULLABLE）
	HasSecurityGuard     bool     `json:"has_security_guard" db:"has_security_guard"`           // 警備員
	HasCardPayment       bool     `json:"has_card_payment" db:"has_card_payment"`               // カード決済
	HasAccessibleParking bool     `json:"has_accessible_parking" db:"has_accessible_parking"`   // バリアフリー駐車
	HasEvCharging        bool     `json:"has_ev_charging" db:"has_ev_charging"`                 // EV充電
}

// DefaultCurrency 通貨記号のデフォルト値
const DefaultCurrency = "₱"

// ToLatLng スポットの位置情報をLatLng型に変換
func (p *ParkingSpot) ToLatLng() LatLng {
	return LatLng{Lat: p.Latitude, Lng: p.Longitude}
}

// UnknownDistanceSentinelKm 距離不明スポットのソート用番兵値 (km)
// 距離が取得できなかったスポットを既知距離のスポットの後ろに並べるために使う
const UnknownDistanceSentinelKm = 999.0

// EnrichedParkingSpot 距離・所要時間を付与した駐車場スポット
// DistanceKm / DurationSec がnilの場合は「距離不明」を意味する
type EnrichedParkingSpot struct {
	ParkingSpot
	DistanceKm  *float64 `json:"distance,omitempty"` // 現在地からの距離 (km)
	DurationSec *float64 `json:"duration,omitempty"` // 現在地からの所要時間 (秒)
}

// SortDistanceKm ソートに使う距離を返す（不明の場合は番兵値）
func (e *EnrichedParkingSpot) SortDistanceKm() float64 {
	if e.DistanceKm == nil {
		return UnknownDistanceSentinelKm
	}
	return *e.DistanceKm
}
