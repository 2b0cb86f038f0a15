package repository

import (
	"context"
	"fmt"
	"log"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"

	"ParkSpot-App/internal/domain/model"
	"ParkSpot-App/internal/domain/repository"
)

const (
	historyCollection = "spotHistories"

	// historyTTLHours Firestore TTLポリシーで期限切れドキュメントを削除するまでの時間
	historyTTLHours = 24 * 30
)

// firestoreHistoryDoc Firestoreに保存する履歴ドキュメント
type firestoreHistoryDoc struct {
	UID           string    `firestore:"uid"`
	ParkingSpotID int       `firestore:"parking_spot_id"`
	ViewedAt      time.Time `firestore:"viewed_at"`
	ExpireAt      time.Time `firestore:"expireAt"`
}

// FirestoreHistoryRepository Firestoreを使用した閲覧履歴リポジトリ
// 1閲覧につき1ドキュメントを保存し、TTLフィールドで自動削除させる
type FirestoreHistoryRepository struct {
	client *firestore.Client
}

// NewFirestoreHistoryRepository 新しいFirestoreHistoryRepositoryインスタンスを作成
func NewFirestoreHistoryRepository(client *firestore.Client) repository.HistoryRepository {
	return &FirestoreHistoryRepository{
		client: client,
	}
}

// ListByUID ユーザーの閲覧履歴を新しい順に最大件数まで取得する
func (r *FirestoreHistoryRepository) ListByUID(ctx context.Context, uid string) ([]model.HistoryEntry, error) {
	iter := r.client.Collection(historyCollection).
		Where("uid", "==", uid).
		OrderBy("viewed_at", firestore.Desc).
		Limit(model.HistoryMaxEntries).
		Documents(ctx)
	defer iter.Stop()

	entries := make([]model.HistoryEntry, 0)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("閲覧履歴の取得に失敗しました: %w", err)
		}

		var data firestoreHistoryDoc
		if err := doc.DataTo(&data); err != nil {
			return nil, fmt.Errorf("閲覧履歴データの変換に失敗しました: %w", err)
		}

		entries = append(entries, model.HistoryEntry{
			UID:           data.UID,
			ParkingSpotID: data.ParkingSpotID,
			ViewedAt:      data.ViewedAt,
		})
	}

	return entries, nil
}

// Record 閲覧履歴を記録する
// 同じスポットの既存履歴を削除してから新規ドキュメントを保存する（スポットIDで重複排除）
func (r *FirestoreHistoryRepository) Record(ctx context.Context, entry model.HistoryEntry) error {
	collection := r.client.Collection(historyCollection)

	// 重複排除：同一ユーザー・同一スポットの既存ドキュメントを削除
	dupIter := collection.
		Where("uid", "==", entry.UID).
		Where("parking_spot_id", "==", entry.ParkingSpotID).
		Documents(ctx)
	defer dupIter.Stop()

	for {
		doc, err := dupIter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return fmt.Errorf("閲覧履歴の重複チェックに失敗しました: %w", err)
		}
		if _, err := doc.Ref.Delete(ctx); err != nil {
			return fmt.Errorf("重複履歴の削除に失敗しました: %w", err)
		}
	}

	// 一時IDを生成
	historyID := fmt.Sprintf("temp_hist_%s", uuid.New().String())

	data := firestoreHistoryDoc{
		UID:           entry.UID,
		ParkingSpotID: entry.ParkingSpotID,
		ViewedAt:      entry.ViewedAt,
		ExpireAt:      entry.ViewedAt.Add(historyTTLHours * time.Hour),
	}

	if _, err := collection.Doc(historyID).Set(ctx, data); err != nil {
		log.Printf("❌ Failed to save history %s: %v", historyID, err)
		return fmt.Errorf("閲覧履歴の保存に失敗しました: %w", err)
	}

	// 上限超過分を末尾から削除
	if err := r.trimToLimit(ctx, entry.UID); err != nil {
		log.Printf("⚠️ Failed to trim history for %s: %v", entry.UID, err)
	}

	return nil
}

// trimToLimit 最大保持件数を超えた古い履歴を削除する
func (r *FirestoreHistoryRepository) trimToLimit(ctx context.Context, uid string) error {
	iter := r.client.Collection(historyCollection).
		Where("uid", "==", uid).
		OrderBy("viewed_at", firestore.Desc).
		Offset(model.HistoryMaxEntries).
		Documents(ctx)
	defer iter.Stop()

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return err
		}
		if _, err := doc.Ref.Delete(ctx); err != nil {
			return err
		}
	}

	return nil
}
