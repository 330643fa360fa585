package store

import (
	"lendkart/loan_broker/internal/pkg/consts"
	"lendkart/loan_broker/internal/pkg/db"
	"lendkart/loan_broker/internal/pkg/models"

	"go.mongodb.org/mongo-driver/bson"
)

type MembersRepository struct {
	repo RepositoryInterface[models.Member]
}

func NewMembersRepository() *MembersRepository {
	collection := db.MDB.Database.Collection(consts.MembersCollection)
	mrepo := NewMongoRepository[models.Member](collection)
	return &MembersRepository{repo: mrepo}
}

func (r *MembersRepository) Insert(member *models.Member) error {
	_, err := r.repo.Create(member)
	return err
}

func (r *MembersRepository) UpdateByMobile(mobile int64, patch bson.M) (*models.Member, error) {
	result, err := r.repo.FindOneAndUpdate(bson.M{"mobile": mobile}, patch)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *MembersRepository) DeleteByMobile(mobile int64) (*models.Member, error) {
	result, err := r.repo.FindOneAndDelete(bson.M{"mobile": mobile})
	if err != nil {
		return nil, err
	}
	return &result, nil
}
