package maps

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"ParkSpot-App/internal/domain/model"
)

const mapquestRouteMatrixURL = "https://www.mapquestapi.com/directions/v2/routematrix"

// MapQuestRouteMatrixProvider はMapQuest Route Matrix APIを使用した距離取得の実装
type MapQuestRouteMatrixProvider struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewMapQuestRouteMatrixProvider は新しいプロバイダを生成する
func NewMapQuestRouteMatrixProvider(apiKey string) *MapQuestRouteMatrixProvider {
	return &MapQuestRouteMatrixProvider{
		apiKey:     apiKey,
		baseURL:    mapquestRouteMatrixURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// NewMapQuestRouteMatrixProviderWithBaseURL はテスト用にベースURLを差し替えたプロバイダを生成する
func NewMapQuestRouteMatrixProviderWithBaseURL(apiKey, baseURL string) *MapQuestRouteMatrixProvider {
	p := NewMapQuestRouteMatrixProvider(apiKey)
	p.baseURL = baseURL
	return p
}

// LookupDistance はMapQuest Route Matrix APIを呼び出して距離と所要時間を取得する
func (m *MapQuestRouteMatrixProvider) LookupDistance(ctx context.Context, origin, destination model.LatLng) (*RouteMatrix, error) {
	// 1. リクエストボディを構築
	reqBody := routeMatrixRequest{
		Locations: []string{
			fmt.Sprintf("%f,%f", origin.Lat, origin.Lng),
			fmt.Sprintf("%f,%f", destination.Lat, destination.Lng),
		},
		Options: routeMatrixOptions{
			AllToAll: false,
			Unit:     "k", // キロメートル
		},
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("リクエストボディの構築に失敗: %w", err)
	}

	// 2. HTTPリクエストを作成・実行
	params := url.Values{}
	params.Set("key", m.apiKey)
	reqURL := fmt.Sprintf("%s?%s", m.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, "POST", reqURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("リクエストの作成に失敗: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return nil, &model.RouteLookupError{Message: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &model.RouteLookupError{StatusCode: resp.StatusCode, Message: resp.Status}
	}

	// 3. JSONレスポンスをパース
	var apiResp routeMatrixResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, &model.RouteLookupError{Message: "レスポンスのパースに失敗: " + err.Error()}
	}

	// distance[0]/time[0]は出発地自身（常に0）なので2要素目を使う
	if len(apiResp.Distance) < 2 || len(apiResp.Time) < 2 {
		return nil, &model.RouteLookupError{Message: "レスポンスに距離情報が含まれていません"}
	}

	return &RouteMatrix{
		DistanceKm:  apiResp.Distance[1],
		DurationSec: apiResp.Time[1],
	}, nil
}

// --- MapQuest Route Matrix APIのリクエスト・レスポンス構造体 ---

type routeMatrixRequest struct {
	Locations []string           `json:"locations"`
	Options   routeMatrixOptions `json:"options"`
}

type routeMatrixOptions struct {
	AllToAll bool   `json:"allToAll"`
	Unit     string `json:"unit"`
}

type routeMatrixResponse struct {
	Distance []float64 `json:"distance"`
	Time     []float64 `json:"time"`
}
