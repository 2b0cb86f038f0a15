package application

import (
	"context"
	"errors"
	"fmt"

	"ParkSpot-App/internal/domain/model"
	"ParkSpot-App/internal/domain/repository"
	dto "ParkSpot-App/model"
)

// UsersService ユーザーに関するビジネスロジックを提供するサービス
type UsersService interface {
	// GetByUID 外部認証のUIDでユーザーを取得
	GetByUID(ctx context.Context, uid string) (*model.User, error)

	// Create ユーザーを作成。同じUIDのユーザーが既に存在する場合はそれを返す
	Create(ctx context.Context, req *dto.CreateUserRequest) (*model.User, error)
}

// usersServiceImpl UsersServiceの実装
type usersServiceImpl struct {
	usersRepo repository.UsersRepository
}

// NewUsersService UsersServiceの新しいインスタンスを作成
func NewUsersService(usersRepo repository.UsersRepository) UsersService {
	return &usersServiceImpl{
		usersRepo: usersRepo,
	}
}

// GetByUID 外部認証のUIDでユーザーを取得
func (s *usersServiceImpl) GetByUID(ctx context.Context, uid string) (*model.User, error) {
	user, err := s.usersRepo.GetByUID(ctx, uid)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			return nil, model.ErrUserNotFound
		}
		return nil, fmt.Errorf("ユーザーの取得失敗: %w", err)
	}
	return user, nil
}

// Create ユーザーを作成
// 外部認証後の初回アクセスで呼ばれるため、同じUIDが既に存在する場合は既存ユーザーを返す（遅延作成の冪等性）
func (s *usersServiceImpl) Create(ctx context.Context, req *dto.CreateUserRequest) (*model.User, error) {
	existing, err := s.usersRepo.GetByUID(ctx, req.UID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, model.ErrUserNotFound) {
		return nil, fmt.Errorf("ユーザーの重複チェック失敗: %w", err)
	}

	uid := req.UID
	user := &model.User{
		Email:       req.Email,
		DisplayName: req.DisplayName,
		PhotoURL:    req.PhotoURL,
		UID:         &uid,
		Provider:    req.Provider,
	}

	created, err := s.usersRepo.Create(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("ユーザーの作成失敗: %w", err)
	}

	return created, nil
}
