package model

import (
	domain "ParkSpot-App/internal/domain/model"
)

// SpotFeatures クライアントに返す設備フラグのネストオブジェクト
type SpotFeatures struct {
	HasSecurityGuard     bool `json:"hasSecurityGuard"`
	HasCardPayment       bool `json:"hasCardPayment"`
	HasAccessibleParking bool `json:"hasAccessibleParking"`
	HasEvCharging        bool `json:"hasEvCharging"`
}

// ClientSpot APIレスポンス用の駐車場スポット表現
// 内部のストレージ形状をそのまま返さず、設備フラグをfeaturesにまとめて返す
type ClientSpot struct {
	ID             int           `json:"id"`
	Name           string        `json:"name"`
	Address        string        `json:"address"`
	Latitude       float64       `json:"latitude"`
	Longitude      float64       `json:"longitude"`
	AvailableSpots int           `json:"availableSpots"`
	TotalSpots     int           `json:"totalSpots"`
	PricePerHour   *float64      `json:"pricePerHour"`
	Currency       string        `json:"currency"`
	IsOpen24Hours  bool          `json:"isOpen24Hours"`
	OpeningTime    *string       `json:"openingTime"`
	ClosingTime    *string       `json:"closingTime"`
	Distance       *float64      `json:"distance,omitempty"` // 現在地からの距離 (km)、エンリッチ後のみ
	Duration       *float64      `json:"duration,omitempty"` // 現在地からの所要時間 (秒)、エンリッチ後のみ
	IsFavorite     bool          `json:"isFavorite"`
	Features       SpotFeatures  `json:"features"`
}

// NewClientSpot ドメインモデルをAPIレスポンス形状に変換する
func NewClientSpot(spot *domain.ParkingSpot) ClientSpot {
	return ClientSpot{
		ID:             spot.ID,
		Name:           spot.Name,
		Address:        spot.Address,
		Latitude:       spot.Latitude,
		Longitude:      spot.Longitude,
		AvailableSpots: spot.AvailableSpots,
		TotalSpots:     spot.TotalSpots,
		PricePerHour:   spot.PricePerHour,
		Currency:       spot.Currency,
		IsOpen24Hours:  spot.IsOpen24Hours,
		OpeningTime:    spot.OpeningTime,
		ClosingTime:    spot.ClosingTime,
		Features: SpotFeatures{
			HasSecurityGuard:     spot.HasSecurityGuard,
			HasCardPayment:       spot.HasCardPayment,
			HasAccessibleParking: spot.HasAccessibleParking,
			HasEvCharging:        spot.HasEvCharging,
		},
	}
}

// NewClientSpotFromEnriched 距離・所要時間付きのスポットをAPIレスポンス形状に変換する
func NewClientSpotFromEnriched(spot *domain.EnrichedParkingSpot) ClientSpot {
	clientSpot := NewClientSpot(&spot.ParkingSpot)
	clientSpot.Distance = spot.DistanceKm
	clientSpot.Duration = spot.DurationSec
	return clientSpot
}

// NewClientSpots スポットのスライスをまとめて変換する
func NewClientSpots(spots []domain.ParkingSpot) []ClientSpot {
	clientSpots := make([]ClientSpot, len(spots))
	for i := range spots {
		clientSpots[i] = NewClientSpot(&spots[i])
	}
	return clientSpots
}

// CreateParkingSpotRequest POST /api/parking-spots のリクエストボディ
type CreateParkingSpotRequest struct {
	Name                 string   `json:"name"`
	Address              string   `json:"address"`
	Latitude             float64  `json:"latitude"`
	Longitude            float64  `json:"longitude"`
	TotalSpots           int      `json:"totalSpots"`
	AvailableSpots       int      `json:"availableSpots"`
	PricePerHour         *float64 `json:"pricePerHour"`
	Currency             *string  `json:"currency"`
	IsOpen24Hours        bool     `json:"isOpen24Hours"`
	OpeningTime          *string  `json:"openingTime"`
	ClosingTime          *string  `json:"closingTime"`
	HasSecurityGuard     bool     `json:"hasSecurityGuard"`
	HasCardPayment       bool     `json:"hasCardPayment"`
	HasAccessibleParking bool     `json:"hasAccessibleParking"`
	HasEvCharging        bool     `json:"hasEvCharging"`
}

// ToDomain リクエストボディをドメインモデルに変換する（IDはリポジトリが採番）
func (r *CreateParkingSpotRequest) ToDomain() *domain.ParkingSpot {
	currency := domain.DefaultCurrency
	if r.Currency != nil && *r.Currency != "" {
		currency = *r.Currency
	}
	return &domain.ParkingSpot{
		Name:                 r.Name,
		Address:              r.Address,
		Latitude:             r.Latitude,
		Longitude:            r.Longitude,
		TotalSpots:           r.TotalSpots,
		AvailableSpots:       r.AvailableSpots,
		PricePerHour:         r.PricePerHour,
		Currency:             currency,
		IsOpen24Hours:        r.IsOpen24Hours,
		OpeningTime:          r.OpeningTime,
		ClosingTime:          r.ClosingTime,
		HasSecurityGuard:     r.HasSecurityGuard,
		HasCardPayment:       r.HasCardPayment,
		HasAccessibleParking: r.HasAccessibleParking,
		HasEvCharging:        r.HasEvCharging,
	}
}

// UpdateAvailabilityRequest PATCH /api/parking-spots/:id/availability のリクエストボディ
type UpdateAvailabilityRequest struct {
	AvailableSpots *int `json:"availableSpots"`
}
