package geolocation

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"time"

	"ParkSpot-App/internal/domain/model"
)

const googleGeolocationURL = "https://www.googleapis.com/geolocation/v1/geolocate"

// GoogleGeolocationSource はGoogle Geolocation APIを使用した位置情報取得の実装
// 高精度モードではWi-Fi・基地局情報を併用し、低精度モードではIPベースの推定のみを使う
type GoogleGeolocationSource struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client

	// 直近の取得結果のキャッシュ（MaximumAgeで許容された場合のみ返す）
	mu       sync.Mutex
	cached   *model.LocatedCoordinate
	cachedAt time.Time
}

// NewGoogleGeolocationSource は新しいソースを生成する
func NewGoogleGeolocationSource(apiKey string) *GoogleGeolocationSource {
	return &GoogleGeolocationSource{
		apiKey:     apiKey,
		baseURL:    googleGeolocationURL,
		httpClient: &http.Client{},
	}
}

// NewGoogleGeolocationSourceWithBaseURL はテスト用にベースURLを差し替えたソースを生成する
func NewGoogleGeolocationSourceWithBaseURL(apiKey, baseURL string) *GoogleGeolocationSource {
	s := NewGoogleGeolocationSource(apiKey)
	s.baseURL = baseURL
	return s
}

// GetCurrentPosition はGoogle Geolocation APIを呼び出して現在位置を取得する
func (g *GoogleGeolocationSource) GetCurrentPosition(ctx context.Context, opts PositionOptions) (*model.LocatedCoordinate, error) {
	// キャッシュが許容されていれば鮮度を確認して返す
	if opts.MaximumAge > 0 {
		g.mu.Lock()
		if g.cached != nil && time.Since(g.cachedAt) <= opts.MaximumAge {
			coord := *g.cached
			g.mu.Unlock()
			return &coord, nil
		}
		g.mu.Unlock()
	}

	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	coord, err := g.requestPosition(ctx, opts.HighAccuracy)
	if err != nil {
		return nil, err
	}

	g.mu.Lock()
	g.cached = coord
	g.cachedAt = time.Now()
	g.mu.Unlock()

	coordCopy := *coord
	return &coordCopy, nil
}

func (g *GoogleGeolocationSource) requestPosition(ctx context.Context, highAccuracy bool) (*model.LocatedCoordinate, error) {
	reqBody := geolocateRequest{ConsiderIP: true}
	body, err := json.Marshal(reqBody)
	if err != nil {
		return nil, &model.LocationUnavailableError{
			Reason:  model.LocationReasonPositionUnavailable,
			Message: "リクエストボディの構築に失敗: " + err.Error(),
		}
	}

	params := url.Values{}
	params.Set("key", g.apiKey)
	reqURL := fmt.Sprintf("%s?%s", g.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, "POST", reqURL, bytes.NewReader(body))
	if err != nil {
		return nil, &model.LocationUnavailableError{
			Reason:  model.LocationReasonPositionUnavailable,
			Message: "リクエストの作成に失敗: " + err.Error(),
		}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, &model.LocationUnavailableError{
				Reason:  model.LocationReasonTimeout,
				Message: "位置情報リクエストがタイムアウトしました",
			}
		}
		return nil, &model.LocationUnavailableError{
			Reason:  model.LocationReasonPositionUnavailable,
			Message: err.Error(),
		}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		// fallthrough to parse
	case resp.StatusCode == http.StatusForbidden || resp.StatusCode == http.StatusUnauthorized:
		return nil, &model.LocationUnavailableError{
			Reason:  model.LocationReasonPermissionDenied,
			Message: "位置情報へのアクセスが許可されていません: " + resp.Status,
		}
	case resp.StatusCode == http.StatusNotFound:
		// Geolocation APIは位置を推定できない場合404 notFoundを返す
		return nil, &model.LocationUnavailableError{
			Reason:  model.LocationReasonPositionUnavailable,
			Message: "位置を推定できませんでした",
		}
	default:
		return nil, &model.LocationUnavailableError{
			Reason:  model.LocationReasonPositionUnavailable,
			Message: "APIからエラーステータスが返されました: " + resp.Status,
		}
	}

	var apiResp geolocateResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, &model.LocationUnavailableError{
			Reason:  model.LocationReasonPositionUnavailable,
			Message: "レスポンスのパースに失敗: " + err.Error(),
		}
	}

	accuracy := apiResp.Accuracy
	if !highAccuracy && accuracy < lowAccuracyFloorMeters {
		// IPベース推定は楽観的な精度が返ることがあるため下限を設ける
		accuracy = lowAccuracyFloorMeters
	}

	return &model.LocatedCoordinate{
		LatLng:         model.LatLng{Lat: apiResp.Location.Lat, Lng: apiResp.Location.Lng},
		AccuracyMeters: accuracy,
	}, nil
}

// lowAccuracyFloorMeters 低精度モードで報告する精度の下限 (メートル)
const lowAccuracyFloorMeters = 1000.0

// --- Google Geolocation APIのリクエスト・レスポンス構造体 ---

type geolocateRequest struct {
	ConsiderIP bool `json:"considerIp"`
}

type geolocateResponse struct {
	Location struct {
		Lat float64 `json:"lat"`
		Lng float64 `json:"lng"`
	} `json:"location"`
	Accuracy float64 `json:"accuracy"`
}
