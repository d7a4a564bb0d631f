// Rebuilds every user's cached progress blob from the relational rows.
//
// The server reconciles each user's cache lazily on read and write; this
// script forces a full rebuild, for example after restoring the database
// from a backup or flushing Redis.
//
// Usage: go run scripts/rebuild_progress_cache.go
package main

import (
	"context"
	"log"

	"ossu_arabic_backend/internal/config"
	"ossu_arabic_backend/internal/model"
	"ossu_arabic_backend/internal/repository"
	"ossu_arabic_backend/pkg/database"
)

func main() {
	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		log.Fatalf("failed to connect to redis: %v", err)
	}

	var userIDs []string
	if err := db.Model(&model.UserProgress{}).Distinct("user_id").Pluck("user_id", &userIDs).Error; err != nil {
		log.Fatalf("failed to list users: %v", err)
	}

	progress := repository.NewProgressRepository(db)
	cache := repository.NewProgressCache(rdb)
	ctx := context.Background()

	rebuilt := 0
	for _, userID := range userIDs {
		rows, err := progress.FindByUser(userID)
		if err != nil {
			log.Printf("skipping %s: %v", userID, err)
			continue
		}
		if err := cache.Put(ctx, userID, repository.BuildMapping(rows)); err != nil {
			log.Printf("cache write failed for %s: %v", userID, err)
			continue
		}
		rebuilt++
	}

	log.Printf("rebuilt progress cache for %d of %d users", rebuilt, len(userIDs))
}
