package helper

import (
	"ParkSpot-App/internal/domain/model"
)

// RecentList 閲覧履歴などの「最新が先頭・キーで重複排除・上限付き」リスト
// 先頭に挿入し、同じスポットIDの既存エントリは先に取り除き、
// 上限を超えた分は末尾から破棄する
type RecentList struct {
	capacity int
	entries  []model.HistoryEntry
}

// NewRecentList 上限付きリストを作成する。capacityが0以下の場合はデフォルトの20件
func NewRecentList(capacity int) *RecentList {
	if capacity <= 0 {
		capacity = model.HistoryMaxEntries
	}
	return &RecentList{capacity: capacity}
}

// Push エントリを先頭に追加する
// 同じParkingSpotIDのエントリが既にあれば取り除いてから先頭に入れる
func (l *RecentList) Push(entry model.HistoryEntry) {
	l.removeByKey(entry.ParkingSpotID)

	l.entries = append([]model.HistoryEntry{entry}, l.entries...)
	if len(l.entries) > l.capacity {
		l.entries = l.entries[:l.capacity]
	}
}

// Entries 現在のエントリを新しい順で返す（コピー）
func (l *RecentList) Entries() []model.HistoryEntry {
	entries := make([]model.HistoryEntry, len(l.entries))
	copy(entries, l.entries)
	return entries
}

// Len 現在のエントリ数を返す
func (l *RecentList) Len() int {
	return len(l.entries)
}

func (l *RecentList) removeByKey(parkingSpotID int) {
	for i, e := range l.entries {
		if e.ParkingSpotID == parkingSpotID {
			l.entries = append(l.entries[:i], l.entries[i+1:]...)
			return
		}
	}
}
