package repository

import (
	"context"
	"sync"

	"ParkSpot-App/internal/domain/helper"
	"ParkSpot-App/internal/domain/model"
	"ParkSpot-App/internal/domain/repository"
)

// MemoryHistoryRepository インメモリの閲覧履歴リポジトリ
// ユーザーごとに上限付きリスト（最新が先頭・スポットIDで重複排除・最大20件）を持つ
type MemoryHistoryRepository struct {
	mu      sync.Mutex
	byUID   map[string]*helper.RecentList
}

// NewMemoryHistoryRepository 新しいインメモリ履歴リポジトリを作成
func NewMemoryHistoryRepository() repository.HistoryRepository {
	return &MemoryHistoryRepository{
		byUID: make(map[string]*helper.RecentList),
	}
}

// ListByUID ユーザーの閲覧履歴を新しい順で取得する
func (r *MemoryHistoryRepository) ListByUID(ctx context.Context, uid string) ([]model.HistoryEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	list, ok := r.byUID[uid]
	if !ok {
		return []model.HistoryEntry{}, nil
	}
	return list.Entries(), nil
}

// Record 閲覧履歴を記録する
func (r *MemoryHistoryRepository) Record(ctx context.Context, entry model.HistoryEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	list, ok := r.byUID[entry.UID]
	if !ok {
		list = helper.NewRecentList(model.HistoryMaxEntries)
		r.byUID[entry.UID] = list
	}
	list.Push(entry)
	return nil
}
