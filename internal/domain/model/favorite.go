package model

import "time"

// Favorite ユーザーとスポットを結ぶお気に入りレコード
// (UserID, ParkingSpotID) の組につき高々1件という一意性制約を持つ
type Favorite struct {
	ID            int       `json:"id" db:"id"`
	UserID        int       `json:"userId" db:"user_id"`
	ParkingSpotID int       `json:"parkingSpotId" db:"parking_spot_id"`
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`
}
