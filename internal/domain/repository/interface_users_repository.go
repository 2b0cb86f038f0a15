package repository

import (
	"context"

	"ParkSpot-App/internal/domain/model"
)

// UsersRepository ユーザーの永続化を抽象化するリポジトリ
type UsersRepository interface {
	// GetByID IDでユーザーを1件取得する。存在しない場合は model.ErrUserNotFound
	GetByID(ctx context.Context, id int) (*model.User, error)

	// GetByUID 外部認証のUIDでユーザーを取得する。存在しない場合は model.ErrUserNotFound
	GetByUID(ctx context.Context, uid string) (*model.User, error)

	// GetByEmail メールアドレスでユーザーを取得する。存在しない場合は model.ErrUserNotFound
	GetByEmail(ctx context.Context, email string) (*model.User, error)

	// GetByUsername ユーザー名でユーザーを取得する。存在しない場合は model.ErrUserNotFound
	GetByUsername(ctx context.Context, username string) (*model.User, error)

	// Create ユーザーを新規作成し、連番IDを採番して返す
	Create(ctx context.Context, user *model.User) (*model.User, error)

	// GetAll 全ユーザーを取得する
	GetAll(ctx context.Context) ([]model.User, error)
}
