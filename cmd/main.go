package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"ParkSpot-App/internal/application"
	"ParkSpot-App/internal/database"
	"ParkSpot-App/internal/domain/repository"
	"ParkSpot-App/internal/domain/service"
	"ParkSpot-App/internal/handler"
	infradb "ParkSpot-App/internal/infrastructure/database"
	"ParkSpot-App/internal/infrastructure/firestore"
	"ParkSpot-App/internal/infrastructure/geolocation"
	"ParkSpot-App/internal/infrastructure/maps"
	repoImpl "ParkSpot-App/internal/repository"
	"ParkSpot-App/internal/usecase"
)

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: .env file not found, using system environment variables")
	}

	// ストレージバックエンドの選択（memory / supabase / postgres）
	backend := os.Getenv("STORAGE_BACKEND")
	if backend == "" {
		backend = "memory"
	}

	spotsRepo, usersRepo, favoritesRepo, err := buildRepositories(backend)
	if err != nil {
		log.Fatalf("ストレージバックエンドの初期化失敗: %v", err)
	}
	fmt.Printf("✅ Storage backend initialized: %s\n", backend)

	historyRepo := buildHistoryRepository()

	// 距離・所要時間ルックアップ
	mapquestKey := os.Getenv("MAPQUEST_API_KEY")
	if mapquestKey == "" {
		fmt.Println("⚠️  MAPQUEST_API_KEY が設定されていません。距離・所要時間は距離不明として返されます")
	}
	routeMatrixProvider := maps.NewMapQuestRouteMatrixProvider(mapquestKey)
	enrichmentService := service.NewSpotEnrichmentService(routeMatrixProvider)

	// サーバー側の現在位置取得（キーがない場合はnearbyで座標指定が必須になる）
	var locationAcquirer geolocation.LocationAcquirer
	if geoKey := os.Getenv("GOOGLE_MAPS_API_KEY"); geoKey != "" {
		source := geolocation.NewGoogleGeolocationSource(geoKey)
		locationAcquirer = geolocation.NewTieredLocationAcquirer(source)
	} else {
		fmt.Println("⚠️  GOOGLE_MAPS_API_KEY が設定されていません。サーバー側の位置取得は無効です")
	}

	// サービス・ユースケース・ハンドラーの組み立て
	usersService := application.NewUsersService(usersRepo)
	spotsService := application.NewParkingSpotsService(spotsRepo)
	favoritesService := application.NewFavoritesService(favoritesRepo, spotsRepo)
	historyService := application.NewHistoryService(historyRepo, spotsRepo)
	nearbyUseCase := usecase.NewNearbySpotsUseCase(spotsRepo, enrichmentService, locationAcquirer)

	usersHandler := handler.NewUsersHandler(usersService)
	spotsHandler := handler.NewParkingSpotsHandler(spotsService, nearbyUseCase)
	favoritesHandler := handler.NewFavoritesHandler(favoritesService)
	historyHandler := handler.NewHistoryHandler(historyService)

	r := gin.Default()
	handler.RegisterRoutes(r, usersHandler, spotsHandler, favoritesHandler, historyHandler)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	fmt.Printf("ParkSpot-App server starting on :%s...\n", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("サーバーの起動失敗: %v", err)
	}
}

// buildRepositories STORAGE_BACKENDに応じた永続化実装を組み立てる
func buildRepositories(backend string) (repository.ParkingSpotsRepository, repository.UsersRepository, repository.FavoritesRepository, error) {
	switch backend {
	case "memory":
		return repoImpl.NewMemoryParkingSpotsRepository(),
			repoImpl.NewMemoryUsersRepository(),
			repoImpl.NewMemoryFavoritesRepository(),
			nil

	case "supabase":
		client, err := database.NewSupabaseClient()
		if err != nil {
			return nil, nil, nil, err
		}
		if err := client.HealthCheck(); err != nil {
			return nil, nil, nil, err
		}
		return repoImpl.NewSupabaseParkingSpotsRepository(client),
			repoImpl.NewSupabaseUsersRepository(client),
			repoImpl.NewSupabaseFavoritesRepository(client),
			nil

	case "postgres":
		client, err := infradb.NewPostgreSQLClient()
		if err != nil {
			return nil, nil, nil, err
		}
		return repoImpl.NewPostgresParkingSpotsRepository(client),
			repoImpl.NewPostgresUsersRepository(client),
			repoImpl.NewPostgresFavoritesRepository(client),
			nil

	default:
		return nil, nil, nil, fmt.Errorf("不明なSTORAGE_BACKEND: %s", backend)
	}
}

// buildHistoryRepository 閲覧履歴の保存先を組み立てる
// FIRESTORE_PROJECT_IDが設定されている場合のみFirestoreを使い、なければインメモリにフォールバック
func buildHistoryRepository() repository.HistoryRepository {
	projectID := os.Getenv("FIRESTORE_PROJECT_ID")
	if projectID == "" {
		return repoImpl.NewMemoryHistoryRepository()
	}

	client, err := firestore.NewFirestoreClient(context.Background(), projectID)
	if err != nil {
		log.Printf("⚠️ Firestoreクライアントの初期化失敗、インメモリ履歴にフォールバック: %v", err)
		return repoImpl.NewMemoryHistoryRepository()
	}

	return repoImpl.NewFirestoreHistoryRepository(client.GetClient())
}
