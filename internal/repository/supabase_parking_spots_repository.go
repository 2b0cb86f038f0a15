package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"

	"ParkSpot-App/internal/database"
	"ParkSpot-App/internal/domain/helper"
	"ParkSpot-App/internal/domain/model"
	"ParkSpot-App/internal/domain/repository"
)

// SupabaseParkingSpotsRepository Supabase (PostgREST) 経由の駐車場スポットリポジトリ
type SupabaseParkingSpotsRepository struct {
	client *database.SupabaseClient
}

// NewSupabaseParkingSpotsRepository 新しいSupabase駐車場スポットリポジトリを作成
func NewSupabaseParkingSpotsRepository(client *database.SupabaseClient) repository.ParkingSpotsRepository {
	return &SupabaseParkingSpotsRepository{client: client}
}

// GetByID IDでスポットを1件取得する
func (r *SupabaseParkingSpotsRepository) GetByID(ctx context.Context, id int) (*model.ParkingSpot, error) {
	data, count, err := r.client.GetClient().
		From("parking_spots").
		Select("*", "exact", false).
		Eq("id", strconv.Itoa(id)).
		Execute()

	if err != nil {
		return nil, fmt.Errorf("駐車場スポットの取得に失敗: %w", err)
	}
	_ = count

	var spots []model.ParkingSpot
	if err := json.Unmarshal([]byte(data), &spots); err != nil {
		return nil, fmt.Errorf("駐車場スポットデータの解析に失敗: %w", err)
	}

	if len(spots) == 0 {
		return nil, model.ErrSpotNotFound
	}

	return &spots[0], nil
}

// GetAll 全スポットをID昇順で取得する
func (r *SupabaseParkingSpotsRepository) GetAll(ctx context.Context) ([]model.ParkingSpot, error) {
	data, count, err := r.client.GetClient().
		From("parking_spots").
		Select("*", "exact", false).
		Execute()

	if err != nil {
		return nil, fmt.Errorf("駐車場スポット一覧の取得に失敗: %w", err)
	}
	_ = count

	var spots []model.ParkingSpot
	if err := json.Unmarshal([]byte(data), &spots); err != nil {
		return nil, fmt.Errorf("駐車場スポットデータの解析に失敗: %w", err)
	}

	sort.Slice(spots, func(i, j int) bool {
		return spots[i].ID < spots[j].ID
	})

	return spots, nil
}

// GetByRadius 基準座標からradiusKm以内のスポットを取得する
// PostGISを使わず、全件取得してからHaversine距離でアプリケーション側フィルタリングを行う
func (r *SupabaseParkingSpotsRepository) GetByRadius(ctx context.Context, origin model.LatLng, radiusKm float64) ([]model.ParkingSpot, error) {
	spots, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]model.ParkingSpot, 0)
	for _, spot := range spots {
		if helper.HaversineDistance(origin, spot.ToLatLng()) <= radiusKm {
			result = append(result, spot)
		}
	}

	return result, nil
}

// Create スポットを新規作成する
func (r *SupabaseParkingSpotsRepository) Create(ctx context.Context, spot *model.ParkingSpot) (*model.ParkingSpot, error) {
	if spot.Currency == "" {
		spot.Currency = model.DefaultCurrency
	}

	// IDはDB側のシーケンスで採番するため送信データから除外する
	insertRow := map[string]interface{}{
		"name":                   spot.Name,
		"address":                spot.Address,
		"latitude":               spot.Latitude,
		"longitude":              spot.Longitude,
		"total_spots":            spot.TotalSpots,
		"available_spots":        spot.AvailableSpots,
		"price_per_hour":         spot.PricePerHour,
		"currency":               spot.Currency,
		"is_open_24_hours":       spot.IsOpen24Hours,
		"opening_time":           spot.OpeningTime,
		"closing_time":           spot.ClosingTime,
		"has_security_guard":     spot.HasSecurityGuard,
		"has_card_payment":       spot.HasCardPayment,
		"has_accessible_parking": spot.HasAccessibleParking,
		"has_ev_charging":        spot.HasEvCharging,
	}

	jsonData, err := json.Marshal(insertRow)
	if err != nil {
		return nil, fmt.Errorf("駐車場スポットデータの変換に失敗: %w", err)
	}

	data, count, err := r.client.GetClient().
		From("parking_spots").
		Insert(string(jsonData), false, "", "representation", "").
		Execute()

	if err != nil {
		return nil, fmt.Errorf("駐車場スポットの作成に失敗: %w", err)
	}
	_ = count

	var created []model.ParkingSpot
	if err := json.Unmarshal([]byte(data), &created); err != nil {
		return nil, fmt.Errorf("作成済みスポットデータの解析に失敗: %w", err)
	}

	if len(created) == 0 {
		return nil, fmt.Errorf("作成済みスポットデータが返却されませんでした")
	}

	return &created[0], nil
}

// UpdateAvailability 空き台数を更新する
func (r *SupabaseParkingSpotsRepository) UpdateAvailability(ctx context.Context, id int, availableSpots int) (*model.ParkingSpot, error) {
	updateRow := map[string]interface{}{
		"available_spots": availableSpots,
	}

	jsonData, err := json.Marshal(updateRow)
	if err != nil {
		return nil, fmt.Errorf("更新データの変換に失敗: %w", err)
	}

	data, count, err := r.client.GetClient().
		From("parking_spots").
		Update(string(jsonData), "representation", "").
		Eq("id", strconv.Itoa(id)).
		Execute()

	if err != nil {
		return nil, fmt.Errorf("空き台数の更新に失敗: %w", err)
	}
	_ = count

	var updated []model.ParkingSpot
	if err := json.Unmarshal([]byte(data), &updated); err != nil {
		return nil, fmt.Errorf("更新済みスポットデータの解析に失敗: %w", err)
	}

	if len(updated) == 0 {
		return nil, model.ErrSpotNotFound
	}

	return &updated[0], nil
}
