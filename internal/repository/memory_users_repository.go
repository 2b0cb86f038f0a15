package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"ParkSpot-App/internal/domain/model"
	"ParkSpot-App/internal/domain/repository"
)

// MemoryUsersRepository インメモリのユーザーリポジトリ
type MemoryUsersRepository struct {
	mu     sync.RWMutex
	users  map[int]model.User
	nextID int
}

// NewMemoryUsersRepository 新しいインメモリユーザーリポジトリを作成
func NewMemoryUsersRepository() repository.UsersRepository {
	return &MemoryUsersRepository{
		users:  make(map[int]model.User),
		nextID: 1,
	}
}

// GetByID IDでユーザーを1件取得する
func (r *MemoryUsersRepository) GetByID(ctx context.Context, id int) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return nil, model.ErrUserNotFound
	}
	return &user, nil
}

// GetByUID 外部認証のUIDでユーザーを取得する
func (r *MemoryUsersRepository) GetByUID(ctx context.Context, uid string) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.users {
		if user.UID != nil && *user.UID == uid {
			u := user
			return &u, nil
		}
	}
	return nil, model.ErrUserNotFound
}

// GetByEmail メールアドレスでユーザーを取得する
func (r *MemoryUsersRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.users {
		if user.Email == email {
			u := user
			return &u, nil
		}
	}
	return nil, model.ErrUserNotFound
}

// GetByUsername ユーザー名でユーザーを取得する
func (r *MemoryUsersRepository) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.users {
		if user.Username == username {
			u := user
			return &u, nil
		}
	}
	return nil, model.ErrUserNotFound
}

// Create ユーザーを新規作成し、連番IDを採番して返す
func (r *MemoryUsersRepository) Create(ctx context.Context, user *model.User) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	created := *user
	created.ID = r.nextID
	r.nextID++
	created.CreatedAt = time.Now()
	r.users[created.ID] = created
	return &created, nil
}

// GetAll 全ユーザーをID昇順で取得する
func (r *MemoryUsersRepository) GetAll(ctx context.Context) ([]model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]model.User, 0, len(r.users))
	for _, user := range r.users {
		users = append(users, user)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}
