package services

import (
	"context"
	"encoding/json"
	"lendkart/loan_broker/configs"
	"lendkart/loan_broker/internal/pkg/consts"
	"lendkart/loan_broker/internal/pkg/logger"
	"lendkart/loan_broker/internal/pkg/models"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
)

const catalogCacheKey = "loanbroker:catalog:products"

// CatalogService is the read-only lookup over the loan-product catalog.
// Listings are served through a best-effort Redis read-through cache; any
// cache failure falls through to MongoDB.
type CatalogService struct {
	productsRepo LoanProductRepo
	cache        RedisStoreOperations
}

func NewCatalogService(productsRepo LoanProductRepo, cache RedisStoreOperations) *CatalogService {
	return &CatalogService{
		productsRepo: productsRepo,
		cache:        cache,
	}
}

func (s *CatalogService) ListProducts(ctx context.Context) ([]models.LoanProductSummary, error) {
	products, fromCache := s.cachedProducts(ctx)
	if !fromCache {
		var err error
		products, err = s.productsRepo.AllProducts()
		if err != nil {
			logger.Error(ctx, "Failed to read loan products: %v", err)
			return nil, consts.ErrorStoreReadFailed
		}
		s.storeInCache(ctx, products)
	}

	if len(products) == 0 {
		return nil, consts.ErrorNoServicesFound
	}

	summaries := make([]models.LoanProductSummary, 0, len(products))
	for _, product := range products {
		summaries = append(summaries, product.Summary())
	}
	return summaries, nil
}

func (s *CatalogService) GetProduct(ctx context.Context, productType string) (*models.LoanProduct, error) {
	product, err := s.productsRepo.ProductByType(productType)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, consts.ErrorServiceNotFound
		}
		logger.Error(ctx, "Failed to read loan product %s: %v", productType, err)
		return nil, consts.ErrorStoreReadFailed
	}
	return product, nil
}

func (s *CatalogService) cachedProducts(ctx context.Context) ([]models.LoanProduct, bool) {
	if s.cache == nil {
		return nil, false
	}

	raw, err := s.cache.Get(ctx, catalogCacheKey)
	if err != nil {
		return nil, false
	}
	payload, ok := raw.([]byte)
	if !ok {
		return nil, false
	}

	var products []models.LoanProduct
	if err := json.Unmarshal(payload, &products); err != nil {
		logger.Warn(ctx, "Discarding malformed catalog cache entry: %v", err)
		return nil, false
	}
	return products, true
}

func (s *CatalogService) storeInCache(ctx context.Context, products []models.LoanProduct) {
	if s.cache == nil || len(products) == 0 {
		return
	}

	payload, err := json.Marshal(products)
	if err != nil {
		return
	}

	ttl := time.Duration(configs.CATALOG_CACHE_TTL_IN_MINUTES) * time.Minute
	if err := s.cache.Set(ctx, catalogCacheKey, payload, ttl); err != nil {
		logger.Warn(ctx, "Failed to cache loan products: %v", err)
	}
}
