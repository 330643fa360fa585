package db

import (
	"context"
	"lendkart/loan_broker/internal/pkg/consts"
	"lendkart/loan_broker/internal/pkg/logger"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreateMobileIndexesIfNotExists ensures a non-unique index on the mobile
// field of the Requests and Members collections. Lookups, updates and
// deletes all filter on mobile, so the index keeps them from scanning.
// The index is deliberately not unique: duplicate mobiles are tolerated
// and operations apply to the first match.
func CreateMobileIndexesIfNotExists() {
	if MDB == nil || MDB.Database == nil {
		logger.Info("Skipping mobile index setup: MongoDB is not connected")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	for _, collectionName := range []string{consts.RequestsCollection, consts.MembersCollection} {
		collection := MDB.Database.Collection(collectionName)

		indexesCursor, err := collection.Indexes().List(ctx)
		if err != nil {
			logger.Error("Failed to list indexes for %s: %v", collectionName, err)
			continue
		}

		indexExists := false
		for indexesCursor.Next(ctx) {
			var index bson.M
			if err := indexesCursor.Decode(&index); err != nil {
				logger.Error("Error decoding index information: %v", err)
				continue
			}
			if keys, ok := index["key"].(bson.M); ok {
				if _, hasMobile := keys["mobile"]; hasMobile {
					indexExists = true
					break
				}
			}
		}

		if indexExists {
			logger.Info("Mobile index already exists on %s", collectionName)
			continue
		}

		indexModel := mongo.IndexModel{
			Keys:    bson.D{{Key: "mobile", Value: 1}},
			Options: options.Index(),
		}

		if _, err := collection.Indexes().CreateOne(ctx, indexModel); err != nil {
			logger.Error("Failed to create mobile index on %s: %v", collectionName, err)
		} else {
			logger.Info("Mobile index created on %s", collectionName)
		}
	}
}
