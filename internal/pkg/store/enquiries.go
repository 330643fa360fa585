package store

import (
	"lendkart/loan_broker/internal/pkg/consts"
	"lendkart/loan_broker/internal/pkg/db"
	"lendkart/loan_broker/internal/pkg/models"

	"go.mongodb.org/mongo-driver/bson"
)

// EnquiriesRepository persists loan enquiries. All lookups filter on the
// mobile field and act on the first match the store returns; duplicate
// mobiles are not rejected.
type EnquiriesRepository struct {
	repo RepositoryInterface[models.LoanEnquiry]
}

func NewEnquiriesRepository() *EnquiriesRepository {
	collection := db.MDB.Database.Collection(consts.RequestsCollection)
	mrepo := NewMongoRepository[models.LoanEnquiry](collection)
	return &EnquiriesRepository{repo: mrepo}
}

func (r *EnquiriesRepository) Insert(enquiry *models.LoanEnquiry) error {
	_, err := r.repo.Create(enquiry)
	return err
}

func (r *EnquiriesRepository) FirstByMobile(mobile int64) (*models.LoanEnquiry, error) {
	result, err := r.repo.Read(bson.M{"mobile": mobile})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *EnquiriesRepository) UpdateByMobile(mobile int64, patch bson.M) (*models.LoanEnquiry, error) {
	result, err := r.repo.FindOneAndUpdate(bson.M{"mobile": mobile}, patch)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *EnquiriesRepository) DeleteByMobile(mobile int64) (*models.LoanEnquiry, error) {
	result, err := r.repo.FindOneAndDelete(bson.M{"mobile": mobile})
	if err != nil {
		return nil, err
	}
	return &result, nil
}
