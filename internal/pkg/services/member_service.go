package services

import (
	"context"
	"lendkart/loan_broker/configs"
	"lendkart/loan_broker/internal/pkg/consts"
	"lendkart/loan_broker/internal/pkg/logger"
	"lendkart/loan_broker/internal/pkg/models"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

// MemberService owns the member registry. Passwords are stored only as
// bcrypt hashes; the raw secret never reaches the store or the logs.
type MemberService struct {
	memberRepo MemberRepo
}

func NewMemberService(memberRepo MemberRepo) *MemberService {
	return &MemberService{memberRepo: memberRepo}
}

// Register writes a new member record. The payload must already have
// passed schema validation. Mobile and email uniqueness are not enforced.
func (s *MemberService) Register(ctx context.Context, payload models.RegistrationPayload) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(payload.CreatePassword), configs.BCRYPT_COST)
	if err != nil {
		logger.Error(ctx, "Failed to hash password for mobile %d: %v", payload.Mobile, err)
		return consts.ErrorPasswordHashFailed
	}

	member := &models.Member{
		Mobile:       payload.Mobile,
		Email:        payload.Email,
		Occupation:   payload.Occupation,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.memberRepo.Insert(member); err != nil {
		logger.Error(ctx, "Failed to insert member for mobile %d: %v", payload.Mobile, err)
		return consts.ErrorMemberWriteFailed
	}

	logger.Info(ctx, "Member registered for mobile %d", payload.Mobile)
	return nil
}

func (s *MemberService) UpdatePassword(ctx context.Context, mobile int64, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), configs.BCRYPT_COST)
	if err != nil {
		logger.Error(ctx, "Failed to hash password for mobile %d: %v", mobile, err)
		return consts.ErrorPasswordHashFailed
	}

	now := time.Now().UTC()
	patch := bson.M{
		"passwordHash": string(hash),
		"updatedAt":    now,
	}

	if _, err := s.memberRepo.UpdateByMobile(mobile, patch); err != nil {
		if err == mongo.ErrNoDocuments {
			return consts.ErrorMemberNotFound
		}
		logger.Error(ctx, "Failed to update password for mobile %d: %v", mobile, err)
		return consts.ErrorMemberWriteFailed
	}

	logger.Info(ctx, "Password updated for mobile %d", mobile)
	return nil
}

func (s *MemberService) CancelMembership(ctx context.Context, mobile int64) error {
	if _, err := s.memberRepo.DeleteByMobile(mobile); err != nil {
		if err == mongo.ErrNoDocuments {
			return consts.ErrorMemberNotFound
		}
		logger.Error(ctx, "Failed to delete member for mobile %d: %v", mobile, err)
		return consts.ErrorMemberWriteFailed
	}

	logger.Info(ctx, "Membership cancelled for mobile %d", mobile)
	return nil
}
