package model

import "time"

// HistoryEntry ユーザーが閲覧したスポットの履歴エントリ
// 最新のものが先頭、スポットIDで重複排除、最大件数を超えた分は末尾から破棄される
type HistoryEntry struct {
	UID           string    `json:"uid" firestore:"uid"`
	ParkingSpotID int       `json:"parkingSpotId" firestore:"parking_spot_id"`
	ViewedAt      time.Time `json:"viewedAt" firestore:"viewed_at"`
}

// HistoryMaxEntries 1ユーザーあたりの履歴の最大保持件数
const HistoryMaxEntries = 20
