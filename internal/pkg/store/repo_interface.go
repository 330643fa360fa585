package store

import "go.mongodb.org/mongo-driver/mongo"

type RepositoryInterface[T any] interface {
	Create(document interface{}) (*mongo.InsertOneResult, error)
	Read(filter interface{}) (T, error)
	FindAll(filter interface{}) ([]T, error)
	FindOneAndUpdate(filter interface{}, update interface{}) (T, error)
	FindOneAndDelete(filter interface{}) (T, error)
	CountDocuments(filter interface{}) (int64, error)
}
