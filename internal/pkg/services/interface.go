package services

import (
	"context"
	"lendkart/loan_broker/internal/pkg/models"
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

type CatalogServiceInterface interface {
	ListProducts(ctx context.Context) ([]models.LoanProductSummary, error)
	GetProduct(ctx context.Context, productType string) (*models.LoanProduct, error)
}

type EnquiryServiceInterface interface {
	SubmitEnquiry(ctx context.Context, payload models.EnquiryPayload) error
	CalculateInterest(ctx context.Context, productType string, amount float64, tenure int32) (*models.InterestQuote, error)
	RequestRemittance(ctx context.Context, mobile int64, amount float64) (string, error)
	UpdateEnquiry(ctx context.Context, request models.UpdateEnquiryRequest) (*models.LoanEnquiry, error)
	DeleteEnquiry(ctx context.Context, mobile int64) error
}

type MemberServiceInterface interface {
	Register(ctx context.Context, payload models.RegistrationPayload) error
	UpdatePassword(ctx context.Context, mobile int64, password string) error
	CancelMembership(ctx context.Context, mobile int64) error
}

type ValidationServiceInterface interface {
	ValidateEnquiry(payload models.EnquiryPayload) error
	ValidateRegistration(payload models.RegistrationPayload) error
}

// catalog_service repo
type LoanProductRepo interface {
	AllProducts() ([]models.LoanProduct, error)
	ProductByType(productType string) (*models.LoanProduct, error)
}

// enquiry_service repo
type EnquiryRepo interface {
	Insert(enquiry *models.LoanEnquiry) error
	FirstByMobile(mobile int64) (*models.LoanEnquiry, error)
	UpdateByMobile(mobile int64, patch bson.M) (*models.LoanEnquiry, error)
	DeleteByMobile(mobile int64) (*models.LoanEnquiry, error)
}

// member_service repo
type MemberRepo interface {
	Insert(member *models.Member) error
	UpdateByMobile(mobile int64, patch bson.M) (*models.Member, error)
	DeleteByMobile(mobile int64) (*models.Member, error)
}

type RedisStoreOperations interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Get(ctx context.Context, key string) (interface{}, error)
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)

	// Time-based operations
	Expire(ctx context.Context, key string, expiration time.Duration) (bool, error)
	TTL(ctx context.Context, key string) (time.Duration, error)
}
