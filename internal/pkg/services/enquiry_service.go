package services

import (
	"context"
	"fmt"
	"lendkart/loan_broker/internal/pkg/consts"
	"lendkart/loan_broker/internal/pkg/logger"
	"lendkart/loan_broker/internal/pkg/models"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// EnquiryService owns the enquiry lifecycle: submission, interest quotes,
// remittance approval, update and deletion. Operations are independent;
// no cross-document transaction ties them together.
type EnquiryService struct {
	enquiryRepo EnquiryRepo
	catalog     CatalogServiceInterface
}

func NewEnquiryService(enquiryRepo EnquiryRepo, catalog CatalogServiceInterface) *EnquiryService {
	return &EnquiryService{
		enquiryRepo: enquiryRepo,
		catalog:     catalog,
	}
}

// SubmitEnquiry writes a new enquiry record. The payload must already have
// passed schema validation. No de-duplication by mobile is performed.
func (s *EnquiryService) SubmitEnquiry(ctx context.Context, payload models.EnquiryPayload) error {
	enquiry := &models.LoanEnquiry{
		Mobile:    payload.Mobile,
		Email:     payload.Email,
		Amount:    payload.Amount,
		Type:      payload.Type,
		Message:   payload.Message,
		Code:      payload.Code,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.enquiryRepo.Insert(enquiry); err != nil {
		logger.Error(ctx, "Failed to insert loan enquiry for mobile %d: %v", payload.Mobile, err)
		return consts.ErrorEnquiryWriteFailed
	}

	logger.Info(ctx, "Loan enquiry submitted for mobile %d, product %s", payload.Mobile, payload.Type)
	return nil
}

// CalculateInterest quotes simple interest on the product's whole-number
// percentage rate: amount * rate * tenure / 100. Pure computation, nothing
// is written.
func (s *EnquiryService) CalculateInterest(ctx context.Context, productType string, amount float64, tenure int32) (*models.InterestQuote, error) {
	if amount <= 0 || tenure <= 0 {
		return nil, consts.ErrorInvalidCalculationInput
	}

	product, err := s.catalog.GetProduct(ctx, productType)
	if err != nil {
		return nil, err
	}

	interest := amount * product.InterestRate * float64(tenure) / 100

	return &models.InterestQuote{
		TotalAmount: amount + interest,
		Interest:    interest,
		LoanAmount:  amount,
		Tenure:      tenure,
	}, nil
}

// RequestRemittance approves a disbursal request when any enquiry exists
// for the mobile number. The stored enquiry amount is not reconciled
// against the requested amount, and the approval is not persisted.
func (s *EnquiryService) RequestRemittance(ctx context.Context, mobile int64, amount float64) (string, error) {
	if mobile == 0 || amount <= 0 {
		return "", consts.ErrorMissingRemittanceFields
	}

	if _, err := s.enquiryRepo.FirstByMobile(mobile); err != nil {
		if err == mongo.ErrNoDocuments {
			return "", consts.ErrorEnquiryNotFound
		}
		logger.Error(ctx, "Failed to look up enquiry for mobile %d: %v", mobile, err)
		return "", consts.ErrorStoreReadFailed
	}

	reference := uuid.New().String()
	logger.Info(ctx, "Remittance approved for mobile %d, reference %s", mobile, reference)
	return fmt.Sprintf(consts.RemittanceApprovedMessage, amount, reference), nil
}

// UpdateEnquiry patches the first enquiry matching the mobile number and
// returns the post-update record. The mobile key itself is never part of
// the patch, so the record stays reachable by the same number.
func (s *EnquiryService) UpdateEnquiry(ctx context.Context, request models.UpdateEnquiryRequest) (*models.LoanEnquiry, error) {
	patch := bson.M{}
	if request.Email != nil {
		patch["email"] = *request.Email
	}
	if request.Amount != nil {
		patch["amount"] = *request.Amount
	}
	if request.Type != nil {
		patch["type"] = *request.Type
	}
	if request.Message != nil {
		patch["message"] = *request.Message
	}
	if request.Code != nil {
		patch["code"] = *request.Code
	}

	if len(patch) == 0 {
		return nil, consts.ErrorNoUpdatableFields
	}

	updated, err := s.enquiryRepo.UpdateByMobile(request.Mobile, patch)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, consts.ErrorEnquiryNotFound
		}
		logger.Error(ctx, "Failed to update enquiry for mobile %d: %v", request.Mobile, err)
		return nil, consts.ErrorEnquiryWriteFailed
	}

	logger.Info(ctx, "Loan enquiry updated for mobile %d", request.Mobile)
	return updated, nil
}

// DeleteEnquiry removes the first enquiry matching the mobile number. A
// second delete for the same number reports not-found rather than
// succeeding silently.
func (s *EnquiryService) DeleteEnquiry(ctx context.Context, mobile int64) error {
	if _, err := s.enquiryRepo.DeleteByMobile(mobile); err != nil {
		if err == mongo.ErrNoDocuments {
			return consts.ErrorEnquiryNotFound
		}
		logger.Error(ctx, "Failed to delete enquiry for mobile %d: %v", mobile, err)
		return consts.ErrorEnquiryWriteFailed
	}

	logger.Info(ctx, "Loan enquiry deleted for mobile %d", mobile)
	return nil
}
