package tests

import (
	"context"
	"lendkart/loan_broker/internal/pkg/models"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
)

// Mock structs shared by the service tests

type MockLoanProductRepo struct {
	mock.Mock
}

func (m *MockLoanProductRepo) AllProducts() ([]models.LoanProduct, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.LoanProduct), args.Error(1)
}

func (m *MockLoanProductRepo) ProductByType(productType string) (*models.LoanProduct, error) {
	args := m.Called(productType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.LoanProduct), args.Error(1)
}

type MockEnquiryRepo struct {
	mock.Mock
}

func (m *MockEnquiryRepo) Insert(enquiry *models.LoanEnquiry) error {
	args := m.Called(enquiry)
	return args.Error(0)
}

func (m *MockEnquiryRepo) FirstByMobile(mobile int64) (*models.LoanEnquiry, error) {
	args := m.Called(mobile)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.LoanEnquiry), args.Error(1)
}

func (m *MockEnquiryRepo) UpdateByMobile(mobile int64, patch bson.M) (*models.LoanEnquiry, error) {
	args := m.Called(mobile, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.LoanEnquiry), args.Error(1)
}

func (m *MockEnquiryRepo) DeleteByMobile(mobile int64) (*models.LoanEnquiry, error) {
	args := m.Called(mobile)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.LoanEnquiry), args.Error(1)
}

type MockMemberRepo struct {
	mock.Mock
}

func (m *MockMemberRepo) Insert(member *models.Member) error {
	args := m.Called(member)
	return args.Error(0)
}

func (m *MockMemberRepo) UpdateByMobile(mobile int64, patch bson.M) (*models.Member, error) {
	args := m.Called(mobile, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Member), args.Error(1)
}

func (m *MockMemberRepo) DeleteByMobile(mobile int64) (*models.Member, error) {
	args := m.Called(mobile)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Member), args.Error(1)
}

type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) ListProducts(ctx context.Context) ([]models.LoanProductSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.LoanProductSummary), args.Error(1)
}

func (m *MockCatalogService) GetProduct(ctx context.Context, productType string) (*models.LoanProduct, error) {
	args := m.Called(ctx, productType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.LoanProduct), args.Error(1)
}
