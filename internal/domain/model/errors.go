package model

import (
	"errors"
	"fmt"
)

// ドメイン層のエラー。ハンドラー層でHTTPステータスに変換される
var (
	ErrSpotNotFound = errors.New("駐車場スポットが見つかりません")
	ErrUserNotFound = errors.New("ユーザーが見つかりません")

	// ErrUserAlreadyExists 同じUIDまたはメールアドレスのユーザーが既に存在する
	ErrUserAlreadyExists = errors.New("ユーザーは既に存在します")

	// ErrAcquisitionInFlight 位置情報取得が既に実行中の場合に即座に返す
	// 多重実行による競合を避けるための再入ガード
	ErrAcquisitionInFlight = errors.New("位置情報の取得が既に実行中です")

	// ErrAvailabilityExceedsCapacity 空き台数が総台数を超える更新を拒否する
	ErrAvailabilityExceedsCapacity = errors.New("空き台数が総駐車台数を超えています")
)

// LocationReason 位置情報取得が失敗した原因コード
type LocationReason string

const (
	LocationReasonPermissionDenied    LocationReason = "permission_denied"
	LocationReasonPositionUnavailable LocationReason = "position_unavailable"
	LocationReasonTimeout             LocationReason = "timeout"
)

// LocationUnavailableError 位置情報が取得できなかったことを表すエラー
// 原因コードと人間可読のメッセージを保持する
type LocationUnavailableError struct {
	Reason  LocationReason
	Message string
}

func (e *LocationUnavailableError) Error() string {
	return fmt.Sprintf("位置情報を取得できません (%s): %s", e.Reason, e.Message)
}

// RouteLookupError 距離・所要時間の外部ルックアップ失敗を表すエラー
// 1スポット分の失敗として呼び出し側で握りつぶし、距離不明として扱う
type RouteLookupError struct {
	StatusCode int    // HTTPステータス（レスポンス不正の場合は0）
	Message    string
}

func (e *RouteLookupError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("距離の取得に失敗しました (status %d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("距離の取得に失敗しました: %s", e.Message)
}
