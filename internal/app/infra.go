package app

import (
	"context"
	"database/sql"

	"github.com/TahaRamkda/resourceBucketOr/internal/config"
	"github.com/TahaRamkda/resourceBucketOr/internal/content"
	"github.com/TahaRamkda/resourceBucketOr/internal/db"
	"github.com/TahaRamkda/resourceBucketOr/internal/logger"
	"github.com/TahaRamkda/resourceBucketOr/internal/redis"

	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
	_ "github.com/lib/pq"
)

type Infra struct {
	DB    *db.DB
	Redis *redis.Client
	S3    *awss3.Client
}

func setupInfra(ctx context.Context, cfg config.Config) (*Infra, error) {
	sqlDB, err := sql.Open("postgres", cfg.DatabaseDSN)
	if err != nil {
		return nil, err
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, err
	}

	if err := db.RunMigration(ctx, sqlDB); err != nil {
		return nil, err
	}

	logger.Info("database ready", nil)

	redisClient, err := redis.New(cfg.RedisAddr, cfg.RedisPassword)
	if err != nil {
		return nil, err
	}

	logger.Info("redis ready", nil)

	s3Client, err := content.NewClient(ctx, cfg.AWSRegion, cfg.AWSAccessKeyID, cfg.AWSSecretAccessKey)
	if err != nil {
		return nil, err
	}

	return &Infra{
		DB:    &db.DB{DB: sqlDB},
		Redis: redisClient,
		S3:    s3Client,
	}, nil
}
