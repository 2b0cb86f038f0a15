package repository

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"ParkSpot-App/internal/domain/helper"
	"ParkSpot-App/internal/domain/model"
)

func TestMemoryParkingSpotsRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("サンプルデータが連番IDで投入されている", func(t *testing.T) {
		repo := NewMemoryParkingSpotsRepository()

		spots, err := repo.GetAll(ctx)
		assert.NoError(t, err)
		assert.Len(t, spots, 18)
		for i, spot := range spots {
			assert.Equal(t, i+1, spot.ID)
		}

		first, err := repo.GetByID(ctx, 1)
		assert.NoError(t, err)
		assert.Equal(t, "SM Mall Parking", first.Name)
		assert.Equal(t, 45, first.AvailableSpots)
	})

	t.Run("存在しないIDはErrSpotNotFound", func(t *testing.T) {
		repo := NewMemoryParkingSpotsRepository()

		_, err := repo.GetByID(ctx, 9999)
		assert.ErrorIs(t, err, model.ErrSpotNotFound)
	})

	t.Run("半径検索は基準座標からのHaversine距離で絞り込む", func(t *testing.T) {
		repo := NewMemoryParkingSpotsRepository()

		// スポット1 (SM Mall Parking) の真上から半径1km
		origin := model.LatLng{Lat: 14.5547, Lng: 121.0244}
		spots, err := repo.GetByRadius(ctx, origin, 1.0)
		assert.NoError(t, err)

		found := false
		for _, spot := range spots {
			if spot.ID == 1 {
				found = true
			}
		}
		assert.True(t, found, "基準座標直上のスポットが半径1kmに含まれない")
		assert.Less(t, len(spots), 18, "半径1kmで全スポットが返るのはおかしい")
	})

	t.Run("半径検索の結果は必ず基準座標から半径以内にある", func(t *testing.T) {
		repo := NewEmptyMemoryParkingSpotsRepository()
		rng := rand.New(rand.NewSource(42))

		// マニラ首都圏付近にランダムなスポットを100件投入
		for i := 0; i < 100; i++ {
			_, err := repo.Create(ctx, &model.ParkingSpot{
				Name:      "Random Spot",
				Latitude:  14.3 + rng.Float64()*0.6,
				Longitude: 120.8 + rng.Float64()*0.6,
			})
			assert.NoError(t, err)
		}

		// ランダムな基準座標・半径の組で結果がすべて半径以内であることを確認
		for i := 0; i < 50; i++ {
			origin := model.LatLng{
				Lat: 14.3 + rng.Float64()*0.6,
				Lng: 120.8 + rng.Float64()*0.6,
			}
			radiusKm := rng.Float64() * 30

			spots, err := repo.GetByRadius(ctx, origin, radiusKm)
			assert.NoError(t, err)
			for _, spot := range spots {
				s := spot
				assert.LessOrEqual(t, helper.HaversineDistanceSpot(origin, &s), radiusKm)
			}
		}
	})

	t.Run("どのスポットからも遠い地点の半径検索は空", func(t *testing.T) {
		repo := NewMemoryParkingSpotsRepository()

		// 北極付近
		origin := model.LatLng{Lat: 89.0, Lng: 0.1}
		spots, err := repo.GetByRadius(ctx, origin, 5.0)
		assert.NoError(t, err)
		assert.Empty(t, spots)
	})

	t.Run("Createは連番IDを採番し通貨のデフォルトを補完する", func(t *testing.T) {
		repo := NewEmptyMemoryParkingSpotsRepository()

		created, err := repo.Create(ctx, &model.ParkingSpot{
			Name:           "Test Garage",
			Latitude:       14.55,
			Longitude:      121.02,
			TotalSpots:     10,
			AvailableSpots: 5,
		})
		assert.NoError(t, err)
		assert.Equal(t, 1, created.ID)
		assert.Equal(t, model.DefaultCurrency, created.Currency)

		second, err := repo.Create(ctx, &model.ParkingSpot{Name: "Another"})
		assert.NoError(t, err)
		assert.Equal(t, 2, second.ID)
	})

	t.Run("UpdateAvailabilityは空き台数だけを更新する", func(t *testing.T) {
		repo := NewMemoryParkingSpotsRepository()

		updated, err := repo.UpdateAvailability(ctx, 1, 3)
		assert.NoError(t, err)
		assert.Equal(t, 3, updated.AvailableSpots)
		assert.Equal(t, "SM Mall Parking", updated.Name)

		reloaded, err := repo.GetByID(ctx, 1)
		assert.NoError(t, err)
		assert.Equal(t, 3, reloaded.AvailableSpots)

		_, err = repo.UpdateAvailability(ctx, 9999, 3)
		assert.ErrorIs(t, err, model.ErrSpotNotFound)
	})
}

func TestMemoryUsersRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("作成したユーザーをUID・メール・IDで引ける", func(t *testing.T) {
		repo := NewMemoryUsersRepository()

		uid := "firebase-uid-1"
		created, err := repo.Create(ctx, &model.User{
			Email: "driver@example.com",
			UID:   &uid,
		})
		assert.NoError(t, err)
		assert.Equal(t, 1, created.ID)
		assert.False(t, created.CreatedAt.IsZero())

		byUID, err := repo.GetByUID(ctx, uid)
		assert.NoError(t, err)
		assert.Equal(t, created.ID, byUID.ID)

		byEmail, err := repo.GetByEmail(ctx, "driver@example.com")
		assert.NoError(t, err)
		assert.Equal(t, created.ID, byEmail.ID)

		byID, err := repo.GetByID(ctx, created.ID)
		assert.NoError(t, err)
		assert.Equal(t, "driver@example.com", byID.Email)
	})

	t.Run("存在しないユーザーはErrUserNotFound", func(t *testing.T) {
		repo := NewMemoryUsersRepository()

		_, err := repo.GetByUID(ctx, "missing")
		assert.ErrorIs(t, err, model.ErrUserNotFound)

		_, err = repo.GetByEmail(ctx, "missing@example.com")
		assert.ErrorIs(t, err, model.ErrUserNotFound)
	})
}

func TestMemoryFavoritesRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("同じ組み合わせのAddは冪等で既存レコードを返す", func(t *testing.T) {
		repo := NewMemoryFavoritesRepository()

		first, err := repo.Add(ctx, 1, 10)
		assert.NoError(t, err)

		second, err := repo.Add(ctx, 1, 10)
		assert.NoError(t, err)
		assert.Equal(t, first.ID, second.ID)

		favorites, err := repo.ListByUserID(ctx, 1)
		assert.NoError(t, err)
		assert.Len(t, favorites, 1)
	})

	t.Run("異なるユーザーの同じスポットは別レコード", func(t *testing.T) {
		repo := NewMemoryFavoritesRepository()

		_, err := repo.Add(ctx, 1, 10)
		assert.NoError(t, err)
		_, err = repo.Add(ctx, 2, 10)
		assert.NoError(t, err)

		user1, err := repo.ListByUserID(ctx, 1)
		assert.NoError(t, err)
		assert.Len(t, user1, 1)

		user2, err := repo.ListByUserID(ctx, 2)
		assert.NoError(t, err)
		assert.Len(t, user2, 1)
	})

	t.Run("存在しないIDのRemoveは成功扱い", func(t *testing.T) {
		repo := NewMemoryFavoritesRepository()

		assert.NoError(t, repo.Remove(ctx, 9999))

		fav, err := repo.Add(ctx, 1, 10)
		assert.NoError(t, err)
		assert.NoError(t, repo.Remove(ctx, fav.ID))
		assert.NoError(t, repo.Remove(ctx, fav.ID)) // 2回目もno-op

		favorites, err := repo.ListByUserID(ctx, 1)
		assert.NoError(t, err)
		assert.Empty(t, favorites)
	})
}

func TestMemoryHistoryRepository(t *testing.T) {
	ctx := context.Background()

	record := func(t *testing.T, repo interface {
		Record(ctx context.Context, entry model.HistoryEntry) error
	}, uid string, spotID int) {
		t.Helper()
		assert.NoError(t, repo.Record(ctx, model.HistoryEntry{UID: uid, ParkingSpotID: spotID}))
	}

	t.Run("新しい閲覧が先頭に入り同じスポットは重複排除される", func(t *testing.T) {
		repo := NewMemoryHistoryRepository()

		record(t, repo, "u1", 1)
		record(t, repo, "u1", 2)
		record(t, repo, "u1", 1) // 再閲覧

		entries, err := repo.ListByUID(ctx, "u1")
		assert.NoError(t, err)
		assert.Len(t, entries, 2)
		assert.Equal(t, 1, entries[0].ParkingSpotID)
		assert.Equal(t, 2, entries[1].ParkingSpotID)
	})

	t.Run("上限20件を超えた分は破棄される", func(t *testing.T) {
		repo := NewMemoryHistoryRepository()

		for i := 1; i <= 25; i++ {
			record(t, repo, "u1", i)
		}

		entries, err := repo.ListByUID(ctx, "u1")
		assert.NoError(t, err)
		assert.Len(t, entries, model.HistoryMaxEntries)
		assert.Equal(t, 25, entries[0].ParkingSpotID)
	})

	t.Run("履歴のないユーザーには空のスライスを返す", func(t *testing.T) {
		repo := NewMemoryHistoryRepository()

		entries, err := repo.ListByUID(ctx, "unknown")
		assert.NoError(t, err)
		assert.NotNil(t, entries)
		assert.Empty(t, entries)
	})

	t.Run("ユーザーごとに履歴は独立している", func(t *testing.T) {
		repo := NewMemoryHistoryRepository()

		record(t, repo, "u1", 1)
		record(t, repo, "u2", 2)

		u1, err := repo.ListByUID(ctx, "u1")
		assert.NoError(t, err)
		assert.Len(t, u1, 1)
		assert.Equal(t, 1, u1[0].ParkingSpotID)

		u2, err := repo.ListByUID(ctx, "u2")
		assert.NoError(t, err)
		assert.Len(t, u2, 1)
		assert.Equal(t, 2, u2[0].ParkingSpotID)
	})
}
