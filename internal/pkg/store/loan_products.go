package store

import (
	"lendkart/loan_broker/internal/pkg/consts"
	"lendkart/loan_broker/internal/pkg/db"
	"lendkart/loan_broker/internal/pkg/models"

	"go.mongodb.org/mongo-driver/bson"
)

type LoanProductsRepository struct {
	repo RepositoryInterface[models.LoanProduct]
}

func NewLoanProductsRepository() *LoanProductsRepository {
	collection := db.MDB.Database.Collection(consts.ServicesCollection)
	mrepo := NewMongoRepository[models.LoanProduct](collection)
	return &LoanProductsRepository{repo: mrepo}
}

func (r *LoanProductsRepository) AllProducts() ([]models.LoanProduct, error) {
	return r.repo.FindAll(bson.M{})
}

// ProductByType matches the type field by exact, case-sensitive equality.
func (r *LoanProductsRepository) ProductByType(productType string) (*models.LoanProduct, error) {
	result, err := r.repo.Read(bson.M{"type": productType})
	if err != nil {
		return nil, err
	}
	return &result, nil
}
