package application

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"ParkSpot-App/internal/domain/model"
	"ParkSpot-App/internal/domain/repository"
)

// HistoryService スポット閲覧履歴に関するビジネスロジックを提供するサービス
type HistoryService interface {
	// ListSpots ユーザーの閲覧履歴を新しい順にスポットとして取得
	ListSpots(ctx context.Context, uid string) ([]model.ParkingSpot, error)

	// Record スポットの閲覧を記録（同じスポットは重複排除され先頭に移動する）
	Record(ctx context.Context, uid string, parkingSpotID int) error
}

// historyServiceImpl HistoryServiceの実装
type historyServiceImpl struct {
	historyRepo repository.HistoryRepository
	spotsRepo   repository.ParkingSpotsRepository
}

// NewHistoryService HistoryServiceの新しいインスタンスを作成
func NewHistoryService(historyRepo repository.HistoryRepository, spotsRepo repository.ParkingSpotsRepository) HistoryService {
	return &historyServiceImpl{
		historyRepo: historyRepo,
		spotsRepo:   spotsRepo,
	}
}

// ListSpots ユーザーの閲覧履歴を新しい順にスポットとして取得
// 履歴エントリとスポットを結合し、スポットが削除済みのエントリはスキップする
func (s *historyServiceImpl) ListSpots(ctx context.Context, uid string) ([]model.ParkingSpot, error) {
	entries, err := s.historyRepo.ListByUID(ctx, uid)
	if err != nil {
		return nil, fmt.Errorf("閲覧履歴の取得失敗: %w", err)
	}

	spots := make([]model.ParkingSpot, 0, len(entries))
	for _, entry := range entries {
		spot, err := s.spotsRepo.GetByID(ctx, entry.ParkingSpotID)
		if err != nil {
			if errors.Is(err, model.ErrSpotNotFound) {
				log.Printf("⚠️ 履歴の参照先スポット%d が存在しないためスキップ", entry.ParkingSpotID)
				continue
			}
			return nil, fmt.Errorf("履歴スポットの取得失敗: %w", err)
		}
		spots = append(spots, *spot)
	}

	return spots, nil
}

// Record スポットの閲覧を記録
func (s *historyServiceImpl) Record(ctx context.Context, uid string, parkingSpotID int) error {
	// 参照先スポットの存在チェック
	if _, err := s.spotsRepo.GetByID(ctx, parkingSpotID); err != nil {
		return err
	}

	entry := model.HistoryEntry{
		UID:           uid,
		ParkingSpotID: parkingSpotID,
		ViewedAt:      time.Now(),
	}

	if err := s.historyRepo.Record(ctx, entry); err != nil {
		return fmt.Errorf("閲覧履歴の記録失敗: %w", err)
	}

	return nil
}
