package application

import (
	"context"
	"fmt"

	"ParkSpot-App/internal/domain/helper"
	"ParkSpot-App/internal/domain/model"
	"ParkSpot-App/internal/domain/repository"
)

// ParkingSpotsService 駐車場スポットに関するビジネスロジックを提供するサービス
type ParkingSpotsService interface {
	// GetAll 全スポットをID昇順で取得
	GetAll(ctx context.Context) ([]model.ParkingSpot, error)

	// GetByID IDでスポットを1件取得
	GetByID(ctx context.Context, id int) (*model.ParkingSpot, error)

	// Search 基準座標からradiusKm以内のスポットを距離昇順で取得
	Search(ctx context.Context, origin model.LatLng, radiusKm float64) ([]model.ParkingSpot, error)

	// Create スポットを新規作成
	Create(ctx context.Context, spot *model.ParkingSpot) (*model.ParkingSpot, error)

	// UpdateAvailability 空き台数を更新
	UpdateAvailability(ctx context.Context, id int, availableSpots int) (*model.ParkingSpot, error)
}

// parkingSpotsServiceImpl ParkingSpotsServiceの実装
type parkingSpotsServiceImpl struct {
	spotsRepo repository.ParkingSpotsRepository
}

// NewParkingSpotsService ParkingSpotsServiceの新しいインスタンスを作成
func NewParkingSpotsService(spotsRepo repository.ParkingSpotsRepository) ParkingSpotsService {
	return &parkingSpotsServiceImpl{
		spotsRepo: spotsRepo,
	}
}

// GetAll 全スポットをID昇順で取得
func (s *parkingSpotsServiceImpl) GetAll(ctx context.Context) ([]model.ParkingSpot, error) {
	spots, err := s.spotsRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("駐車場スポット一覧の取得失敗: %w", err)
	}
	return spots, nil
}

// GetByID IDでスポットを1件取得
func (s *parkingSpotsServiceImpl) GetByID(ctx context.Context, id int) (*model.ParkingSpot, error) {
	return s.spotsRepo.GetByID(ctx, id)
}

// Search 基準座標からradiusKm以内のスポットを距離昇順で取得
func (s *parkingSpotsServiceImpl) Search(ctx context.Context, origin model.LatLng, radiusKm float64) ([]model.ParkingSpot, error) {
	spots, err := s.spotsRepo.GetByRadius(ctx, origin, radiusKm)
	if err != nil {
		return nil, fmt.Errorf("近隣スポットの取得失敗: %w", err)
	}

	helper.SortSpotsByDistanceFromLocation(origin, spots)
	return spots, nil
}

// Create スポットを新規作成
func (s *parkingSpotsServiceImpl) Create(ctx context.Context, spot *model.ParkingSpot) (*model.ParkingSpot, error) {
	// 空き台数は総台数以下でなければならない
	if spot.AvailableSpots > spot.TotalSpots {
		return nil, model.ErrAvailabilityExceedsCapacity
	}

	created, err := s.spotsRepo.Create(ctx, spot)
	if err != nil {
		return nil, fmt.Errorf("駐車場スポットの作成失敗: %w", err)
	}
	return created, nil
}

// UpdateAvailability 空き台数を更新
func (s *parkingSpotsServiceImpl) UpdateAvailability(ctx context.Context, id int, availableSpots int) (*model.ParkingSpot, error) {
	spot, err := s.spotsRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// 空き台数は総台数以下でなければならない
	if availableSpots > spot.TotalSpots {
		return nil, model.ErrAvailabilityExceedsCapacity
	}

	updated, err := s.spotsRepo.UpdateAvailability(ctx, id, availableSpots)
	if err != nil {
		return nil, err
	}
	return updated, nil
}
