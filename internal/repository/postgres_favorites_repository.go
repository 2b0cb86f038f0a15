package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"ParkSpot-App/internal/domain/model"
	"ParkSpot-App/internal/domain/repository"
	"ParkSpot-App/internal/infrastructure/database"
)

// PostgresFavoritesRepository PostgreSQL直接接続のお気に入りリポジトリ
type PostgresFavoritesRepository struct {
	client *database.PostgreSQLClient
}

// NewPostgresFavoritesRepository 新しいPostgreSQLお気に入りリポジトリを作成
func NewPostgresFavoritesRepository(client *database.PostgreSQLClient) repository.FavoritesRepository {
	return &PostgresFavoritesRepository{client: client}
}

// ListByUserID ユーザーのお気に入りレコード一覧を取得する
func (r *PostgresFavoritesRepository) ListByUserID(ctx context.Context, userID int) ([]model.Favorite, error) {
	query := `SELECT id, user_id, parking_spot_id, created_at FROM favorites
		WHERE user_id = $1 ORDER BY id`

	rows, err := r.client.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("お気に入り一覧の取得に失敗: %w", err)
	}
	defer rows.Close()

	favorites := make([]model.Favorite, 0)
	for rows.Next() {
		var fav model.Favorite
		if err := rows.Scan(&fav.ID, &fav.UserID, &fav.ParkingSpotID, &fav.CreatedAt); err != nil {
			return nil, fmt.Errorf("お気に入りデータの読み取りに失敗: %w", err)
		}
		favorites = append(favorites, fav)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("お気に入り一覧の走査に失敗: %w", err)
	}

	return favorites, nil
}

// Add お気に入りを追加する。同じ (userID, parkingSpotID) が既にあれば既存レコードを返す
func (r *PostgresFavoritesRepository) Add(ctx context.Context, userID, parkingSpotID int) (*model.Favorite, error) {
	// 一意性チェック：既存レコードがあればそれを返す（冪等）
	var existing model.Favorite
	err := r.client.DB.QueryRowContext(ctx,
		`SELECT id, user_id, parking_spot_id, created_at FROM favorites
			WHERE user_id = $1 AND parking_spot_id = $2`,
		userID, parkingSpotID,
	).Scan(&existing.ID, &existing.UserID, &existing.ParkingSpotID, &existing.CreatedAt)

	if err == nil {
		return &existing, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("お気に入りの重複チェックに失敗: %w", err)
	}

	var created model.Favorite
	err = r.client.DB.QueryRowContext(ctx,
		`INSERT INTO favorites (user_id, parking_spot_id) VALUES ($1, $2)
			RETURNING id, user_id, parking_spot_id, created_at`,
		userID, parkingSpotID,
	).Scan(&created.ID, &created.UserID, &created.ParkingSpotID, &created.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("お気に入りの追加に失敗: %w", err)
	}

	return &created, nil
}

// Remove IDでお気に入りを削除する。存在しないIDの場合も成功扱い
func (r *PostgresFavoritesRepository) Remove(ctx context.Context, id int) error {
	if _, err := r.client.DB.ExecContext(ctx, "DELETE FROM favorites WHERE id = $1", id); err != nil {
		return fmt.Errorf("お気に入りの削除に失敗: %w", err)
	}

	return nil
}
