package repository

import (
	"context"
	"sync"
	"time"

	"ParkSpot-App/internal/domain/model"
	"ParkSpot-App/internal/domain/repository"
)

// MemoryFavoritesRepository インメモリのお気に入りリポジトリ
// (userID, parkingSpotID) の一意性チェックと採番をmutexで保護する
type MemoryFavoritesRepository struct {
	mu        sync.RWMutex
	favorites map[int]model.Favorite
	nextID    int
}

// NewMemoryFavoritesRepository 新しいインメモリお気に入りリポジトリを作成
func NewMemoryFavoritesRepository() repository.FavoritesRepository {
	return &MemoryFavoritesRepository{
		favorites: make(map[int]model.Favorite),
		nextID:    1,
	}
}

// ListByUserID ユーザーのお気に入りレコードをID昇順で取得する
func (r *MemoryFavoritesRepository) ListByUserID(ctx context.Context, userID int) ([]model.Favorite, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]model.Favorite, 0)
	for id := 1; id < r.nextID; id++ {
		if fav, ok := r.favorites[id]; ok && fav.UserID == userID {
			result = append(result, fav)
		}
	}
	return result, nil
}

// Add お気に入りを追加する。既に同じ組があれば既存レコードを返す（冪等）
func (r *MemoryFavoritesRepository) Add(ctx context.Context, userID, parkingSpotID int) (*model.Favorite, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	// 一意性チェック：同じ (userID, parkingSpotID) は高々1件
	for _, fav := range r.favorites {
		if fav.UserID == userID && fav.ParkingSpotID == parkingSpotID {
			existing := fav
			return &existing, nil
		}
	}

	favorite := model.Favorite{
		ID:            r.nextID,
		UserID:        userID,
		ParkingSpotID: parkingSpotID,
		CreatedAt:     time.Now(),
	}
	r.nextID++
	r.favorites[favorite.ID] = favorite
	return &favorite, nil
}

// Remove IDでお気に入りを削除する。存在しなくても成功扱い
func (r *MemoryFavoritesRepository) Remove(ctx context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.favorites, id)
	return nil
}
