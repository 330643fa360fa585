package main

import (
	"context"
	"lendkart/loan_broker/configs"
	"lendkart/loan_broker/internal/app/router"
	"lendkart/loan_broker/internal/pkg/db"
	"lendkart/loan_broker/internal/pkg/logger"
	"lendkart/loan_broker/internal/pkg/otel"
	"lendkart/loan_broker/internal/pkg/redis"
	"log"

	goredis "github.com/redis/go-redis/v9"
)

func main() {

	// Load Environment Variables
	err := configs.LoadEnv()
	if err != nil {
		logger.Debug("Error loading .env file: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// setup otel collector
	_, err = otel.Setup(ctx, configs.SERVICE_NAME, configs.OTEL_URL)
	if err != nil {
		logger.Error(ctx, "Error setting up OTLP: %v", err)
	}

	// DB Connection. MongoDB is the system of record; nothing works
	// without it.
	mdb, dbErr := db.NewMongoDB()
	if dbErr != nil {
		log.Fatalf("Error connecting to MongoDB: %v", dbErr)
	}
	db.MDB = mdb
	defer mdb.Close()

	db.CreateMobileIndexesIfNotExists()

	// Connect to Redis. The catalog cache is best-effort, so a missing
	// Redis only costs cache hits.
	var redisConn *goredis.Client
	redisClient, err := redis.ConnectToRedis(ctx, configs.GetRedisConfig(), nil)
	if err != nil {
		logger.Error(ctx, "Failed to connect to Redis, continuing without catalog cache: %v", err)
	} else {
		redisConn = redisClient.Client
	}

	r := router.SetupRouter(redisConn)

	port := configs.SERVER_PORT

	if err := r.Run(":" + port); err != nil {
		logger.Error(ctx, "Failed to run server: %v", err)
	}
}
