package tests

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"lendkart/loan_broker/configs"
	"lendkart/loan_broker/internal/pkg/consts"
	"lendkart/loan_broker/internal/pkg/models"
	"lendkart/loan_broker/internal/pkg/services"
	"lendkart/loan_broker/internal/pkg/store/repository"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/mongo"
)

const catalogCacheKey = "loanbroker:catalog:products"

func sampleProducts() []models.LoanProduct {
	return []models.LoanProduct{
		{
			Type:         "personal",
			Description:  "Personal loan for salaried applicants",
			InterestRate: 10,
			MaxAmount:    500000,
			Tenure:       60,
			ImageURL:     "/img/personal.png",
		},
		{
			Type:         "home",
			Description:  "Home loan with flexible tenure",
			InterestRate: 8,
			MaxAmount:    5000000,
			Tenure:       240,
			ImageURL:     "/img/home.png",
		},
	}
}

func TestListProducts(t *testing.T) {
	tests := []struct {
		name        string
		products    []models.LoanProduct
		repoErr     error
		expectedErr error
		expectedLen int
	}{
		{
			name:        "Success - Summaries Returned",
			products:    sampleProducts(),
			expectedLen: 2,
		},
		{
			name:        "Empty Catalog",
			products:    []models.LoanProduct{},
			expectedErr: consts.ErrorNoServicesFound,
		},
		{
			name:        "Store Read Failure",
			repoErr:     mongo.ErrClientDisconnected,
			expectedErr: consts.ErrorStoreReadFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockLoanProductRepo)
			if tt.repoErr != nil {
				mockRepo.On("AllProducts").Return(nil, tt.repoErr)
			} else {
				mockRepo.On("AllProducts").Return(tt.products, nil)
			}

			service := services.NewCatalogService(mockRepo, nil)

			summaries, err := service.ListProducts(context.Background())

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, summaries)
			} else {
				assert.NoError(t, err)
				assert.Len(t, summaries, tt.expectedLen)
				// Rate, ceiling and tenure stay out of the list view.
				assert.Equal(t, "personal", summaries[0].Type)
				assert.Equal(t, "/img/personal.png", summaries[0].ImageURL)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestListProductsCacheHit(t *testing.T) {
	configs.LoadEnvValues()

	cached, err := json.Marshal(sampleProducts())
	assert.NoError(t, err)

	client, redisMock := redismock.NewClientMock()
	redisMock.ExpectGet(catalogCacheKey).SetVal(string(cached))

	// No repo expectations: a cache hit must not touch the store.
	mockRepo := new(MockLoanProductRepo)

	service := services.NewCatalogService(mockRepo, repository.NewRedisStoreAdapter(client))

	summaries, err := service.ListProducts(context.Background())

	assert.NoError(t, err)
	assert.Len(t, summaries, 2)
	mockRepo.AssertExpectations(t)
	assert.NoError(t, redisMock.ExpectationsWereMet())
}

func TestListProductsCacheMissPopulatesCache(t *testing.T) {
	configs.LoadEnvValues()

	products := sampleProducts()
	payload, err := json.Marshal(products)
	assert.NoError(t, err)

	ttl := time.Duration(configs.CATALOG_CACHE_TTL_IN_MINUTES) * time.Minute

	client, redisMock := redismock.NewClientMock()
	redisMock.ExpectGet(catalogCacheKey).RedisNil()
	redisMock.ExpectSet(catalogCacheKey, payload, ttl).SetVal("OK")

	mockRepo := new(MockLoanProductRepo)
	mockRepo.On("AllProducts").Return(products, nil)

	service := services.NewCatalogService(mockRepo, repository.NewRedisStoreAdapter(client))

	summaries, err := service.ListProducts(context.Background())

	assert.NoError(t, err)
	assert.Len(t, summaries, 2)
	mockRepo.AssertExpectations(t)
	assert.NoError(t, redisMock.ExpectationsWereMet())
}

func TestGetProduct(t *testing.T) {
	tests := []struct {
		name        string
		productType string
		setupMocks  func(*MockLoanProductRepo)
		expectedErr error
	}{
		{
			name:        "Success",
			productType: "personal",
			setupMocks: func(repo *MockLoanProductRepo) {
				product := sampleProducts()[0]
				repo.On("ProductByType", "personal").Return(&product, nil)
			},
		},
		{
			name:        "Not Found",
			productType: "nonexistent",
			setupMocks: func(repo *MockLoanProductRepo) {
				repo.On("ProductByType", "nonexistent").Return(nil, mongo.ErrNoDocuments)
			},
			expectedErr: consts.ErrorServiceNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockLoanProductRepo)
			tt.setupMocks(mockRepo)

			service := services.NewCatalogService(mockRepo, nil)

			product, err := service.GetProduct(context.Background(), tt.productType)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, product)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.productType, product.Type)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}
