package application

import (
	"context"
	"errors"
	"fmt"
	"log"

	"ParkSpot-App/internal/domain/model"
	"ParkSpot-App/internal/domain/repository"
)

// FavoritesService お気に入りに関するビジネスロジックを提供するサービス
type FavoritesService interface {
	// ListSpots ユーザーのお気に入りスポット一覧を取得
	ListSpots(ctx context.Context, userID int) ([]model.ParkingSpot, error)

	// Add お気に入りを追加（同じ組み合わせが既にあれば既存レコードを返す）
	Add(ctx context.Context, userID, parkingSpotID int) (*model.Favorite, error)

	// Remove IDでお気に入りを削除
	Remove(ctx context.Context, id int) error
}

// favoritesServiceImpl FavoritesServiceの実装
type favoritesServiceImpl struct {
	favoritesRepo repository.FavoritesRepository
	spotsRepo     repository.ParkingSpotsRepository
}

// NewFavoritesService FavoritesServiceの新しいインスタンスを作成
func NewFavoritesService(favoritesRepo repository.FavoritesRepository, spotsRepo repository.ParkingSpotsRepository) FavoritesService {
	return &favoritesServiceImpl{
		favoritesRepo: favoritesRepo,
		spotsRepo:     spotsRepo,
	}
}

// ListSpots ユーザーのお気に入りスポット一覧を取得
// お気に入りレコードとスポットを結合し、スポットが削除済みのレコードはスキップする
func (s *favoritesServiceImpl) ListSpots(ctx context.Context, userID int) ([]model.ParkingSpot, error) {
	favorites, err := s.favoritesRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("お気に入り一覧の取得失敗: %w", err)
	}

	spots := make([]model.ParkingSpot, 0, len(favorites))
	for _, fav := range favorites {
		spot, err := s.spotsRepo.GetByID(ctx, fav.ParkingSpotID)
		if err != nil {
			if errors.Is(err, model.ErrSpotNotFound) {
				// 参照先スポットが削除済みのお気に入りは一覧から除外
				log.Printf("⚠️ お気に入り%d の参照先スポット%d が存在しないためスキップ", fav.ID, fav.ParkingSpotID)
				continue
			}
			return nil, fmt.Errorf("お気に入りスポットの取得失敗: %w", err)
		}
		spots = append(spots, *spot)
	}

	return spots, nil
}

// Add お気に入りを追加
func (s *favoritesServiceImpl) Add(ctx context.Context, userID, parkingSpotID int) (*model.Favorite, error) {
	favorite, err := s.favoritesRepo.Add(ctx, userID, parkingSpotID)
	if err != nil {
		return nil, fmt.Errorf("お気に入りの追加失敗: %w", err)
	}
	return favorite, nil
}

// Remove IDでお気に入りを削除。存在しないIDでも成功扱い
func (s *favoritesServiceImpl) Remove(ctx context.Context, id int) error {
	if err := s.favoritesRepo.Remove(ctx, id); err != nil {
		return fmt.Errorf("お気に入りの削除失敗: %w", err)
	}
	return nil
}
