package model

import "time"

// User 外部認証後に最初のバックエンドアクセスで遅延作成されるユーザー
type User struct {
	ID          int       `json:"id" db:"id"`                     // リポジトリが採番する連番ID
	Username    string    `json:"username" db:"username"`         // ユーザー名（外部認証の場合は空）
	Password    string    `json:"-" db:"password"`                // パスワードハッシュ（外部認証の場合は空、レスポンスには含めない）
	Email       string    `json:"email" db:"email"`               // メールアドレス（ユニーク）
	DisplayName *string   `json:"display_name" db:"display_name"` // 表示名（NULLABLE）
	PhotoURL    *string   `json:"photo_url" db:"photo_url"`       // プロフィール画像URL（NULLABLE）
	UID         *string   `json:"uid" db:"uid"`                   // 外部認証のUID（ユニーク、NULLABLE）
	Provider    *string   `json:"provider" db:"provider"`         // "google" または "password"
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}
