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

// PostgresUsersRepository PostgreSQL直接接続のユーザーリポジトリ
type PostgresUsersRepository struct {
	client *database.PostgreSQLClient
}

// NewPostgresUsersRepository 新しいPostgreSQLユーザーリポジトリを作成
func NewPostgresUsersRepository(client *database.PostgreSQLClient) repository.UsersRepository {
	return &PostgresUsersRepository{client: client}
}

const userColumns = `id, username, password, email, display_name, photo_url, uid, provider, created_at`

func scanUser(row interface{ Scan(...interface{}) error }) (*model.User, error) {
	var user model.User
	err := row.Scan(
		&user.ID, &user.Username, &user.Password, &user.Email,
		&user.DisplayName, &user.PhotoURL, &user.UID, &user.Provider,
		&user.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *PostgresUsersRepository) getByColumn(ctx context.Context, column string, value interface{}) (*model.User, error) {
	query := fmt.Sprintf("SELECT %s FROM users WHERE %s = $1", userColumns, column)

	user, err := scanUser(r.client.DB.QueryRowContext(ctx, query, value))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrUserNotFound
		}
		return nil, fmt.Errorf("ユーザーの取得に失敗: %w", err)
	}

	return user, nil
}

// GetByID IDでユーザーを1件取得する
func (r *PostgresUsersRepository) GetByID(ctx context.Context, id int) (*model.User, error) {
	return r.getByColumn(ctx, "id", id)
}

// GetByUID 外部認証のUIDでユーザーを取得する
func (r *PostgresUsersRepository) GetByUID(ctx context.Context, uid string) (*model.User, error) {
	return r.getByColumn(ctx, "uid", uid)
}

// GetByEmail メールアドレスでユーザーを取得する
func (r *PostgresUsersRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	return r.getByColumn(ctx, "email", email)
}

// GetByUsername ユーザー名でユーザーを取得する
func (r *PostgresUsersRepository) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	return r.getByColumn(ctx, "username", username)
}

// Create ユーザーを新規作成する
func (r *PostgresUsersRepository) Create(ctx context.Context, user *model.User) (*model.User, error) {
	query := fmt.Sprintf(`INSERT INTO users (username, password, email, display_name, photo_url, uid, provider)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING %s`, userColumns)

	created, err := scanUser(r.client.DB.QueryRowContext(ctx, query,
		user.Username, user.Password, user.Email,
		user.DisplayName, user.PhotoURL, user.UID, user.Provider,
	))
	if err != nil {
		return nil, fmt.Errorf("ユーザーの作成に失敗: %w", err)
	}

	return created, nil
}

// GetAll 全ユーザーを取得する
func (r *PostgresUsersRepository) GetAll(ctx context.Context) ([]model.User, error) {
	query := fmt.Sprintf("SELECT %s FROM users ORDER BY id", userColumns)

	rows, err := r.client.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("ユーザー一覧の取得に失敗: %w", err)
	}
	defer rows.Close()

	users := make([]model.User, 0)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("ユーザーデータの読み取りに失敗: %w", err)
		}
		users = append(users, *user)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ユーザー一覧の走査に失敗: %w", err)
	}

	return users, nil
}
