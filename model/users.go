package model

// CreateUserRequest POST /api/users のリクエストボディ
// 外部認証プロバイダでのサインイン成功後、初回アクセス時に送られてくる
type CreateUserRequest struct {
	UID         string  `json:"uid"`
	Email       string  `json:"email"`
	DisplayName *string `json:"displayName"`
	PhotoURL    *string `json:"photoURL"`
	Provider    *string `json:"provider"`
}

// AddFavoriteRequest POST /api/favorites のリクエストボディ
type AddFavoriteRequest struct {
	UserID        *int `json:"userId"`
	ParkingSpotID *int `json:"parkingSpotId"`
}

// AddHistoryRequest POST /api/history のリクエストボディ
type AddHistoryRequest struct {
	UID           string `json:"uid"`
	ParkingSpotID *int   `json:"parkingSpotId"`
}
