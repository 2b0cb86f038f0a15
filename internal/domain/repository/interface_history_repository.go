package repository

import (
	"context"

	"ParkSpot-App/internal/domain/model"
)

// HistoryRepository 閲覧履歴の保存先を抽象化するリポジトリ
// 実装は「最新が先頭・スポットIDで重複排除・最大20件」の制約を守る
type HistoryRepository interface {
	// ListByUID ユーザーの閲覧履歴を新しい順で取得する
	ListByUID(ctx context.Context, uid string) ([]model.HistoryEntry, error)

	// Record 閲覧履歴を記録する。同じスポットの既存エントリは先頭に移動する
	Record(ctx context.Context, entry model.HistoryEntry) error
}
