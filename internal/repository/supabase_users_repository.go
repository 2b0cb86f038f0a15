package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"ParkSpot-App/internal/database"
	"ParkSpot-App/internal/domain/model"
	"ParkSpot-App/internal/domain/repository"
)

// SupabaseUsersRepository Supabase (PostgREST) 経由のユーザーリポジトリ
type SupabaseUsersRepository struct {
	client *database.SupabaseClient
}

// NewSupabaseUsersRepository 新しいSupabaseユーザーリポジトリを作成
func NewSupabaseUsersRepository(client *database.SupabaseClient) repository.UsersRepository {
	return &SupabaseUsersRepository{client: client}
}

func (r *SupabaseUsersRepository) getByColumn(column, value string) (*model.User, error) {
	data, count, err := r.client.GetClient().
		From("users").
		Select("*", "exact", false).
		Eq(column, value).
		Execute()

	if err != nil {
		return nil, fmt.Errorf("ユーザーの取得に失敗: %w", err)
	}
	_ = count

	var users []model.User
	if err := json.Unmarshal([]byte(data), &users); err != nil {
		return nil, fmt.Errorf("ユーザーデータの解析に失敗: %w", err)
	}

	if len(users) == 0 {
		return nil, model.ErrUserNotFound
	}

	return &users[0], nil
}

// GetByID IDでユーザーを1件取得する
func (r *SupabaseUsersRepository) GetByID(ctx context.Context, id int) (*model.User, error) {
	return r.getByColumn("id", strconv.Itoa(id))
}

// GetByUID 外部認証のUIDでユーザーを取得する
func (r *SupabaseUsersRepository) GetByUID(ctx context.Context, uid string) (*model.User, error) {
	return r.getByColumn("uid", uid)
}

// GetByEmail メールアドレスでユーザーを取得する
func (r *SupabaseUsersRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	return r.getByColumn("email", email)
}

// GetByUsername ユーザー名でユーザーを取得する
func (r *SupabaseUsersRepository) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	return r.getByColumn("username", username)
}

// Create ユーザーを新規作成する
func (r *SupabaseUsersRepository) Create(ctx context.Context, user *model.User) (*model.User, error) {
	// IDはDB側のシーケンスで採番するため送信データから除外する
	insertRow := map[string]interface{}{
		"username":     user.Username,
		"password":     user.Password,
		"email":        user.Email,
		"display_name": user.DisplayName,
		"photo_url":    user.PhotoURL,
		"uid":          user.UID,
		"provider":     user.Provider,
	}

	jsonData, err := json.Marshal(insertRow)
	if err != nil {
		return nil, fmt.Errorf("ユーザーデータの変換に失敗: %w", err)
	}

	data, count, err := r.client.GetClient().
		From("users").
		Insert(string(jsonData), false, "", "representation", "").
		Execute()

	if err != nil {
		return nil, fmt.Errorf("ユーザーの作成に失敗: %w", err)
	}
	_ = count

	var created []model.User
	if err := json.Unmarshal([]byte(data), &created); err != nil {
		return nil, fmt.Errorf("作成済みユーザーデータの解析に失敗: %w", err)
	}

	if len(created) == 0 {
		return nil, fmt.Errorf("作成済みユーザーデータが返却されませんでした")
	}

	return &created[0], nil
}

// GetAll 全ユーザーを取得する
func (r *SupabaseUsersRepository) GetAll(ctx context.Context) ([]model.User, error) {
	data, count, err := r.client.GetClient().
		From("users").
		Select("*", "exact", false).
		Execute()

	if err != nil {
		return nil, fmt.Errorf("ユーザー一覧の取得に失敗: %w", err)
	}
	_ = count

	var users []model.User
	if err := json.Unmarshal([]byte(data), &users); err != nil {
		return nil, fmt.Errorf("ユーザーデータの解析に失敗: %w", err)
	}

	return users, nil
}
