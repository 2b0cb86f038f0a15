package repository

import (
	"context"

	"ParkSpot-App/internal/domain/model"
)

// FavoritesRepository ユーザーのお気に入りを抽象化するリポジトリ
type FavoritesRepository interface {
	// ListByUserID ユーザーのお気に入りレコード一覧を取得する
	ListByUserID(ctx context.Context, userID int) ([]model.Favorite, error)

	// Add お気に入りを追加する。同じ (userID, parkingSpotID) が既にあれば既存レコードを返す（冪等）
	Add(ctx context.Context, userID, parkingSpotID int) (*model.Favorite, error)

	// Remove IDでお気に入りを削除する。存在しないIDの場合も成功扱い（no-op）
	Remove(ctx context.Context, id int) error
}
