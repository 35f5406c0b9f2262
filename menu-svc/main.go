package main

import (
	"context"
	"log"
	"time"

	"food-ordering/auth"
	"food-ordering/config"
	httpapi "food-ordering/menu-svc/internal/api/http"
	"food-ordering/menu-svc/internal/service"
	"food-ordering/menu-svc/internal/storage"
)

func main() {
	cfg := config.Load("8081")
	secret := config.MustJWTSecret(cfg)

	db := config.MustInitPostgres(cfg)
	defer db.Close()

	repo := storage.NewPostgresRepository(db)
	if err := repo.EnsureSchema(context.Background()); err != nil {
		log.Fatal("Failed to ensure schema:", err)
	}

	rdb := config.MustInitRedis(cfg)
	defer rdb.Close()
	cache := storage.NewRedisCache(rdb, cfg.CacheTTL)

	catalog := service.NewCatalogService(repo, repo, repo, cache)
	admin := service.NewAdminService(repo, repo, cache)
	issuer := auth.NewIssuer(secret, 24*time.Hour)

	handler := httpapi.NewHandler(catalog, admin, issuer, cfg.UploadDir)

	log.Printf("Menu Service starting on port %s", cfg.Port)
	httpapi.StartServer(":"+cfg.Port, httpapi.NewRouter(handler))
}
