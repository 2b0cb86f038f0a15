package helper

import (
	"math"
	"sort"

	"github.com/paulmach/orb"

	"ParkSpot-App/internal/domain/model"
)

const earthRadiusKm = 6371.0

// HaversineDistance は2地点間の大円距離を計算する (km)
func HaversineDistance(p1, p2 model.LatLng) float64 {
	lat1 := p1.Lat * math.Pi / 180
	lng1 := p1.Lng * math.Pi / 180
	lat2 := p2.Lat * math.Pi / 180
	lng2 := p2.Lng * math.Pi / 180
	dLat := lat2 - lat1
	dLng := lng2 - lng1
	a := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKm * c
}

// HaversineDistanceSpot は基準座標とスポット間の距離を計算する (km)
func HaversineDistanceSpot(origin model.LatLng, spot *model.ParkingSpot) float64 {
	return HaversineDistance(origin, spot.ToLatLng())
}

// RadiusBound は基準座標からradiusKmを内包する境界ボックスを作成する
// Haversine計算の前段の粗いフィルタとして使う（境界ボックス外は必ず半径外）
func RadiusBound(origin model.LatLng, radiusKm float64) orb.Bound {
	center := orb.Point{origin.Lng, origin.Lat}
	bound := orb.Bound{Min: center, Max: center}

	// 緯度1度 ≈ 111km。経度は緯度によって縮むので補正する
	latPadding := radiusKm / 111.0
	cosLat := math.Cos(origin.Lat * math.Pi / 180)
	if cosLat < 0.01 {
		cosLat = 0.01 // 極付近での発散を避ける
	}
	lngPadding := radiusKm / (111.0 * cosLat)

	bound = bound.Extend(orb.Point{center.Lon() - lngPadding, center.Lat() - latPadding})
	bound = bound.Extend(orb.Point{center.Lon() + lngPadding, center.Lat() + latPadding})
	return bound
}

// WithinBound はスポットが境界ボックス内にあるかを判定する
func WithinBound(bound orb.Bound, spot *model.ParkingSpot) bool {
	return bound.Contains(orb.Point{spot.Longitude, spot.Latitude})
}

// SortEnrichedByDistance は距離の昇順でエンリッチ済みスポットをソートする
// 距離不明のスポットは番兵値999kmとして扱い、既知距離のスポットの後ろに
// 元の相対順のまま並ぶ（安定ソート）
func SortEnrichedByDistance(spots []model.EnrichedParkingSpot) {
	sort.SliceStable(spots, func(i, j int) bool {
		return spots[i].SortDistanceKm() < spots[j].SortDistanceKm()
	})
}

// SortSpotsByDistanceFromLocation は基準座標からのHaversine距離でスポットをソートする
func SortSpotsByDistanceFromLocation(origin model.LatLng, spots []model.ParkingSpot) {
	sort.SliceStable(spots, func(i, j int) bool {
		return HaversineDistanceSpot(origin, &spots[i]) < HaversineDistanceSpot(origin, &spots[j])
	})
}
