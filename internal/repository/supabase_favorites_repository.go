package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"ParkSpot-App/internal/database"
	"ParkSpot-App/internal/domain/model"
	"ParkSpot-App/internal/domain/repository"
)

// favoriteRow favoritesテーブルの行（カラム名はsnake_case）
// APIレスポンス用のmodel.FavoriteはcamelCaseのJSONタグを持つため別の構造体で受ける
type favoriteRow struct {
	ID            int       `json:"id"`
	UserID        int       `json:"user_id"`
	ParkingSpotID int       `json:"parking_spot_id"`
	CreatedAt     time.Time `json:"created_at"`
}

func (row *favoriteRow) toModel() model.Favorite {
	return model.Favorite{
		ID:            row.ID,
		UserID:        row.UserID,
		ParkingSpotID: row.ParkingSpotID,
		CreatedAt:     row.CreatedAt,
	}
}

// SupabaseFavoritesRepository Supabase (PostgREST) 経由のお気に入りリポジトリ
type SupabaseFavoritesRepository struct {
	client *database.SupabaseClient
}

// NewSupabaseFavoritesRepository 新しいSupabaseお気に入りリポジトリを作成
func NewSupabaseFavoritesRepository(client *database.SupabaseClient) repository.FavoritesRepository {
	return &SupabaseFavoritesRepository{client: client}
}

// ListByUserID ユーザーのお気に入りレコード一覧を取得する
func (r *SupabaseFavoritesRepository) ListByUserID(ctx context.Context, userID int) ([]model.Favorite, error) {
	data, count, err := r.client.GetClient().
		From("favorites").
		Select("*", "exact", false).
		Eq("user_id", strconv.Itoa(userID)).
		Execute()

	if err != nil {
		return nil, fmt.Errorf("お気に入り一覧の取得に失敗: %w", err)
	}
	_ = count

	var rows []favoriteRow
	if err := json.Unmarshal([]byte(data), &rows); err != nil {
		return nil, fmt.Errorf("お気に入りデータの解析に失敗: %w", err)
	}

	favorites := make([]model.Favorite, 0, len(rows))
	for _, row := range rows {
		favorites = append(favorites, row.toModel())
	}

	return favorites, nil
}

// Add お気に入りを追加する。同じ (userID, parkingSpotID) が既にあれば既存レコードを返す
func (r *SupabaseFavoritesRepository) Add(ctx context.Context, userID, parkingSpotID int) (*model.Favorite, error) {
	// 一意性チェック：既存レコードがあればそれを返す（冪等）
	data, count, err := r.client.GetClient().
		From("favorites").
		Select("*", "exact", false).
		Eq("user_id", strconv.Itoa(userID)).
		Eq("parking_spot_id", strconv.Itoa(parkingSpotID)).
		Execute()

	if err != nil {
		return nil, fmt.Errorf("お気に入りの重複チェックに失敗: %w", err)
	}
	_ = count

	var existing []favoriteRow
	if err := json.Unmarshal([]byte(data), &existing); err != nil {
		return nil, fmt.Errorf("お気に入りデータの解析に失敗: %w", err)
	}

	if len(existing) > 0 {
		favorite := existing[0].toModel()
		return &favorite, nil
	}

	insertRow := map[string]interface{}{
		"user_id":         userID,
		"parking_spot_id": parkingSpotID,
	}

	jsonData, err := json.Marshal(insertRow)
	if err != nil {
		return nil, fmt.Errorf("お気に入りデータの変換に失敗: %w", err)
	}

	createdData, count, err := r.client.GetClient().
		From("favorites").
		Insert(string(jsonData), false, "", "representation", "").
		Execute()

	if err != nil {
		return nil, fmt.Errorf("お気に入りの追加に失敗: %w", err)
	}
	_ = count

	var created []favoriteRow
	if err := json.Unmarshal([]byte(createdData), &created); err != nil {
		return nil, fmt.Errorf("追加済みお気に入りデータの解析に失敗: %w", err)
	}

	if len(created) == 0 {
		return nil, fmt.Errorf("追加済みお気に入りデータが返却されませんでした")
	}

	favorite := created[0].toModel()
	return &favorite, nil
}

// Remove IDでお気に入りを削除する。存在しないIDの場合も成功扱い
func (r *SupabaseFavoritesRepository) Remove(ctx context.Context, id int) error {
	_, count, err := r.client.GetClient().
		From("favorites").
		Delete("", "").
		Eq("id", strconv.Itoa(id)).
		Execute()

	if err != nil {
		return fmt.Errorf("お気に入りの削除に失敗: %w", err)
	}
	_ = count

	return nil
}
