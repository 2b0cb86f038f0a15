package repository

import (
	"context"
	"sort"
	"sync"

	"ParkSpot-App/internal/domain/helper"
	"ParkSpot-App/internal/domain/model"
	"ParkSpot-App/internal/domain/repository"
)

// MemoryParkingSpotsRepository インメモリの駐車場スポットリポジトリ
// プロセス起動時にサンプルデータを投入し、ID採番用の単調増加カウンタを持つ
// 読み書きはRWMutexで保護する（ID採番と空き台数更新のread-modify-writeを守るため）
type MemoryParkingSpotsRepository struct {
	mu     sync.RWMutex
	spots  map[int]model.ParkingSpot
	nextID int
}

// NewMemoryParkingSpotsRepository サンプルデータ投入済みのリポジトリを作成
func NewMemoryParkingSpotsRepository() repository.ParkingSpotsRepository {
	r := &MemoryParkingSpotsRepository{
		spots:  make(map[int]model.ParkingSpot),
		nextID: 1,
	}
	for _, spot := range sampleParkingSpots() {
		spot.ID = r.nextID
		r.nextID++
		r.spots[spot.ID] = spot
	}
	return r
}

// NewEmptyMemoryParkingSpotsRepository テスト用にサンプルデータなしのリポジトリを作成
func NewEmptyMemoryParkingSpotsRepository() repository.ParkingSpotsRepository {
	return &MemoryParkingSpotsRepository{
		spots:  make(map[int]model.ParkingSpot),
		nextID: 1,
	}
}

// GetByID IDでスポットを1件取得する
func (r *MemoryParkingSpotsRepository) GetByID(ctx context.Context, id int) (*model.ParkingSpot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	spot, ok := r.spots[id]
	if !ok {
		return nil, model.ErrSpotNotFound
	}
	return &spot, nil
}

// GetAll 全スポットをID昇順で取得する
func (r *MemoryParkingSpotsRepository) GetAll(ctx context.Context) ([]model.ParkingSpot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	spots := make([]model.ParkingSpot, 0, len(r.spots))
	for _, spot := range r.spots {
		spots = append(spots, spot)
	}
	sort.Slice(spots, func(i, j int) bool { return spots[i].ID < spots[j].ID })
	return spots, nil
}

// GetByRadius 基準座標からradiusKm以内のスポットを取得する
// 境界ボックスで粗く絞ってからHaversine距離で判定する（スポット数十件のO(n)走査で十分）
func (r *MemoryParkingSpotsRepository) GetByRadius(ctx context.Context, origin model.LatLng, radiusKm float64) ([]model.ParkingSpot, error) {
	all, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	bound := helper.RadiusBound(origin, radiusKm)
	result := make([]model.ParkingSpot, 0, len(all))
	for _, spot := range all {
		if !helper.WithinBound(bound, &spot) {
			continue
		}
		if helper.HaversineDistanceSpot(origin, &spot) <= radiusKm {
			result = append(result, spot)
		}
	}
	return result, nil
}

// Create スポットを新規作成し、連番IDを採番して返す
func (r *MemoryParkingSpotsRepository) Create(ctx context.Context, spot *model.ParkingSpot) (*model.ParkingSpot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	created := *spot
	created.ID = r.nextID
	r.nextID++
	if created.Currency == "" {
		created.Currency = model.DefaultCurrency
	}
	r.spots[created.ID] = created
	return &created, nil
}

// UpdateAvailability 空き台数を更新する
func (r *MemoryParkingSpotsRepository) UpdateAvailability(ctx context.Context, id int, availableSpots int) (*model.ParkingSpot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	spot, ok := r.spots[id]
	if !ok {
		return nil, model.ErrSpotNotFound
	}
	spot.AvailableSpots = availableSpots
	r.spots[id] = spot
	return &spot, nil
}
