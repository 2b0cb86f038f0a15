package geolocation

import (
	"context"
	"errors"
	"sync"
	"time"

	"ParkSpot-App/internal/domain/model"
)

// 段階的な位置取得のデフォルトパラメータ
const (
	defaultHighAccuracyTimeout = 15 * time.Second // 高精度リクエストのタイムアウト (T1)
	defaultWatchdogDelay       = 8 * time.Second  // フォールバック開始までの監視時間 (T2 < T1)
	defaultFallbackTimeout     = 10 * time.Second // 低精度リクエストのタイムアウト (T3)
	defaultFallbackMaxAge      = 60 * time.Second // 低精度リクエストが許容するキャッシュの鮮度
)

// TieredLocationAcquirer 精度の段階的フォールバック付きの位置取得
//
//  1. 高精度リクエストをT1のタイムアウトで発行する（キャッシュ不可）
//  2. T2以内に結果が得られなければ、並行して低精度リクエストを発行する
//     （タイムアウトT3、60秒以内のキャッシュ結果を許容）
//  3. 先に成功した方を採用し、残りの結果は到着しても破棄する
//  4. 両方失敗した場合は原因コード付きの LocationUnavailableError を返す
//
// 1インスタンスにつき同時に実行できる取得は1つだけ。実行中に再度呼ばれた場合は
// 競合させずに model.ErrAcquisitionInFlight を即座に返す
type TieredLocationAcquirer struct {
	source PositionSource

	highAccuracyTimeout time.Duration
	watchdogDelay       time.Duration
	fallbackTimeout     time.Duration
	fallbackMaxAge      time.Duration

	mu       sync.Mutex
	inFlight bool
}

// NewTieredLocationAcquirer は新しいアクワイアラを生成する
func NewTieredLocationAcquirer(source PositionSource) *TieredLocationAcquirer {
	return &TieredLocationAcquirer{
		source:              source,
		highAccuracyTimeout: defaultHighAccuracyTimeout,
		watchdogDelay:       defaultWatchdogDelay,
		fallbackTimeout:     defaultFallbackTimeout,
		fallbackMaxAge:      defaultFallbackMaxAge,
	}
}

// NewTieredLocationAcquirerWithTimings はテスト用にタイミングを差し替えたアクワイアラを生成する
func NewTieredLocationAcquirerWithTimings(source PositionSource, highTimeout, watchdog, fallbackTimeout, fallbackMaxAge time.Duration) *TieredLocationAcquirer {
	return &TieredLocationAcquirer{
		source:              source,
		highAccuracyTimeout: highTimeout,
		watchdogDelay:       watchdog,
		fallbackTimeout:     fallbackTimeout,
		fallbackMaxAge:      fallbackMaxAge,
	}
}

// AcquireLocation は現在位置を取得する
func (a *TieredLocationAcquirer) AcquireLocation(ctx context.Context) (*model.LocatedCoordinate, error) {
	// 再入ガード：実行中ならすぐに拒否する
	a.mu.Lock()
	if a.inFlight {
		a.mu.Unlock()
		return nil, model.ErrAcquisitionInFlight
	}
	a.inFlight = true
	a.mu.Unlock()

	defer func() {
		a.mu.Lock()
		a.inFlight = false
		a.mu.Unlock()
	}()

	type attemptResult struct {
		coord *model.LocatedCoordinate
		err   error
	}

	// バッファ2：勝者決定後に敗者の結果が届いてもブロックせず、そのまま破棄される
	results := make(chan attemptResult, 2)

	attempt := func(opts PositionOptions) {
		coord, err := a.source.GetCurrentPosition(ctx, opts)
		results <- attemptResult{coord: coord, err: err}
	}

	// 高精度リクエストを発行
	go attempt(PositionOptions{
		HighAccuracy: true,
		Timeout:      a.highAccuracyTimeout,
		MaximumAge:   0,
	})

	watchdog := time.NewTimer(a.watchdogDelay)
	defer watchdog.Stop()

	startFallback := func() {
		go attempt(PositionOptions{
			HighAccuracy: false,
			Timeout:      a.fallbackTimeout,
			MaximumAge:   a.fallbackMaxAge,
		})
	}

	launched := 1
	fallbackStarted := false
	var lastErr error

	for received := 0; received < launched; {
		select {
		case res := <-results:
			received++
			if res.err == nil {
				// 勝者決定。もう一方の遅延結果は適用せず破棄する
				return res.coord, nil
			}
			lastErr = preferSpecificReason(lastErr, res.err)
			if !fallbackStarted {
				// 高精度が失敗した時点で監視時間を待たずにフォールバックへ
				fallbackStarted = true
				launched++
				startFallback()
			}
		case <-watchdog.C:
			if !fallbackStarted {
				fallbackStarted = true
				launched++
				startFallback()
			}
		case <-ctx.Done():
			return nil, &model.LocationUnavailableError{
				Reason:  model.LocationReasonTimeout,
				Message: "位置情報の取得がキャンセルされました",
			}
		}
	}

	// 両方失敗
	var locErr *model.LocationUnavailableError
	if errors.As(lastErr, &locErr) {
		return nil, locErr
	}
	return nil, &model.LocationUnavailableError{
		Reason:  model.LocationReasonPositionUnavailable,
		Message: lastErr.Error(),
	}
}

// preferSpecificReason タイムアウトよりも具体的な失敗原因を優先して保持する
func preferSpecificReason(current, candidate error) error {
	if current == nil {
		return candidate
	}
	var currentLoc, candidateLoc *model.LocationUnavailableError
	if errors.As(current, &currentLoc) && errors.As(candidate, &candidateLoc) {
		if currentLoc.Reason == model.LocationReasonTimeout && candidateLoc.Reason != model.LocationReasonTimeout {
			return candidate
		}
	}
	return current
}
