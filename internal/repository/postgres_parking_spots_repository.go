package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"ParkSpot-App/internal/domain/helper"
	"ParkSpot-App/internal/domain/model"
	"ParkSpot-App/internal/domain/repository"
	"ParkSpot-App/internal/infrastructure/database"
)

// PostgresParkingSpotsRepository PostgreSQL直接接続の駐車場スポットリポジトリ
type PostgresParkingSpotsRepository struct {
	client *database.PostgreSQLClient
}

// NewPostgresParkingSpotsRepository 新しいPostgreSQL駐車場スポットリポジトリを作成
func NewPostgresParkingSpotsRepository(client *database.PostgreSQLClient) repository.ParkingSpotsRepository {
	return &PostgresParkingSpotsRepository{client: client}
}

const parkingSpotColumns = `id, name, address, latitude, longitude, total_spots, available_spots,
	price_per_hour, currency, is_open_24_hours, opening_time, closing_time,
	has_security_guard, has_card_payment, has_accessible_parking, has_ev_charging`

func scanParkingSpot(row interface{ Scan(...interface{}) error }) (*model.ParkingSpot, error) {
	var spot model.ParkingSpot
	err := row.Scan(
		&spot.ID, &spot.Name, &spot.Address, &spot.Latitude, &spot.Longitude,
		&spot.TotalSpots, &spot.AvailableSpots,
		&spot.PricePerHour, &spot.Currency, &spot.IsOpen24Hours,
		&spot.OpeningTime, &spot.ClosingTime,
		&spot.HasSecurityGuard, &spot.HasCardPayment,
		&spot.HasAccessibleParking, &spot.HasEvCharging,
	)
	if err != nil {
		return nil, err
	}
	return &spot, nil
}

// GetByID IDでスポットを1件取得する
func (r *PostgresParkingSpotsRepository) GetByID(ctx context.Context, id int) (*model.ParkingSpot, error) {
	query := fmt.Sprintf("SELECT %s FROM parking_spots WHERE id = $1", parkingSpotColumns)

	spot, err := scanParkingSpot(r.client.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrSpotNotFound
		}
		return nil, fmt.Errorf("駐車場スポットの取得に失敗: %w", err)
	}

	return spot, nil
}

// GetAll 全スポットをID昇順で取得する
func (r *PostgresParkingSpotsRepository) GetAll(ctx context.Context) ([]model.ParkingSpot, error) {
	query := fmt.Sprintf("SELECT %s FROM parking_spots ORDER BY id", parkingSpotColumns)

	rows, err := r.client.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("駐車場スポット一覧の取得に失敗: %w", err)
	}
	defer rows.Close()

	spots := make([]model.ParkingSpot, 0)
	for rows.Next() {
		spot, err := scanParkingSpot(rows)
		if err != nil {
			return nil, fmt.Errorf("駐車場スポットデータの読み取りに失敗: %w", err)
		}
		spots = append(spots, *spot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("駐車場スポット一覧の走査に失敗: %w", err)
	}

	return spots, nil
}

// GetByRadius 基準座標からradiusKm以内のスポットを取得する
// 緯度経度の矩形でSQL側を絞り込み、Haversine距離で正確にフィルタリングする
func (r *PostgresParkingSpotsRepository) GetByRadius(ctx context.Context, origin model.LatLng, radiusKm float64) ([]model.ParkingSpot, error) {
	bound := helper.RadiusBound(origin, radiusKm)

	query := fmt.Sprintf(`SELECT %s FROM parking_spots
		WHERE latitude BETWEEN $1 AND $2 AND longitude BETWEEN $3 AND $4
		ORDER BY id`, parkingSpotColumns)

	rows, err := r.client.DB.QueryContext(ctx, query,
		bound.Min.Lat(), bound.Max.Lat(), bound.Min.Lon(), bound.Max.Lon())
	if err != nil {
		return nil, fmt.Errorf("近隣スポットの取得に失敗: %w", err)
	}
	defer rows.Close()

	spots := make([]model.ParkingSpot, 0)
	for rows.Next() {
		spot, err := scanParkingSpot(rows)
		if err != nil {
			return nil, fmt.Errorf("駐車場スポットデータの読み取りに失敗: %w", err)
		}
		if helper.HaversineDistance(origin, spot.ToLatLng()) <= radiusKm {
			spots = append(spots, *spot)
		}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("近隣スポットの走査に失敗: %w", err)
	}

	return spots, nil
}

// Create スポットを新規作成する
func (r *PostgresParkingSpotsRepository) Create(ctx context.Context, spot *model.ParkingSpot) (*model.ParkingSpot, error) {
	if spot.Currency == "" {
		spot.Currency = model.DefaultCurrency
	}

	query := fmt.Sprintf(`INSERT INTO parking_spots
		(name, address, latitude, longitude, total_spots, available_spots,
		 price_per_hour, currency, is_open_24_hours, opening_time, closing_time,
		 has_security_guard, has_card_payment, has_accessible_parking, has_ev_charging)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING %s`, parkingSpotColumns)

	created, err := scanParkingSpot(r.client.DB.QueryRowContext(ctx, query,
		spot.Name, spot.Address, spot.Latitude, spot.Longitude,
		spot.TotalSpots, spot.AvailableSpots,
		spot.PricePerHour, spot.Currency, spot.IsOpen24Hours,
		spot.OpeningTime, spot.ClosingTime,
		spot.HasSecurityGuard, spot.HasCardPayment,
		spot.HasAccessibleParking, spot.HasEvCharging,
	))
	if err != nil {
		return nil, fmt.Errorf("駐車場スポットの作成に失敗: %w", err)
	}

	return created, nil
}

// UpdateAvailability 空き台数を更新する
func (r *PostgresParkingSpotsRepository) UpdateAvailability(ctx context.Context, id int, availableSpots int) (*model.ParkingSpot, error) {
	query := fmt.Sprintf(`UPDATE parking_spots SET available_spots = $1 WHERE id = $2
		RETURNING %s`, parkingSpotColumns)

	updated, err := scanParkingSpot(r.client.DB.QueryRowContext(ctx, query, availableSpots, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrSpotNotFound
		}
		return nil, fmt.Errorf("空き台数の更新に失敗: %w", err)
	}

	return updated, nil
}
