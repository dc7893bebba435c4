package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/eriju-studio/storefront-service/internal/entities"

	"github.com/google/uuid"
)

const (
	cacheKeyCatalog = "products:available"
	cacheKeyAll     = "products:all"
)

type ProductRepo interface {
	ListProducts(ctx context.Context, onlyAvailable bool) ([]entities.Product, error)
	GetProductByID(ctx context.Context, productID string) (entities.Product, error)
	SaveProduct(ctx context.Context, p entities.Product) error
	UpdateProduct(ctx context.Context, productID string, input entities.ProductInput) error
	DeleteProduct(ctx context.Context, productID string) error
}

type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
	Remove(key string)
}

type productService struct {
	logger *slog.Logger
	repo   ProductRepo
	cache  Cache
}

func NewProductService(logger *slog.Logger, repo ProductRepo, cache Cache) *productService {
	return &productService{
		logger: logger.With(slog.String("service", "product")),
		repo:   repo,
		cache:  cache,
	}
}

func (s *productService) ListProducts(ctx context.Context, includeUnavailable bool) ([]entities.Product, error) {
	key := cacheKeyCatalog
	if includeUnavailable {
		key = cacheKeyAll
	}

	if data, ok := s.cache.Get(key); ok {
		var list entities.ProductList
		if err := list.Unmarshal(data); err != nil {
			s.logger.ErrorContext(ctx, "failed to unmarshal cached products", slog.Any("error", err))
		} else {
			return list, nil
		}
	}

	products, err := s.repo.ListProducts(ctx, !includeUnavailable)
	if err != nil {
		return nil, err
	}

	if data, err := entities.ProductList(products).Marshal(); err != nil {
		s.logger.ErrorContext(ctx, "failed to marshal products for cache", slog.Any("error", err))
	} else {
		s.cache.Set(key, data)
	}
	return products, nil
}

func (s *productService) GetProductByID(ctx context.Context, productID string) (entities.Product, error) {
	return s.repo.GetProductByID(ctx, productID)
}

func (s *productService) CreateProduct(ctx context.Context, input entities.ProductInput) (entities.Product, error) {
	product := entities.Product{
		ID:          uuid.NewString(),
		Name:        input.Name,
		Price:       input.Price,
		Available:   input.Available,
		ImageURL:    input.ImageURL,
		Description: input.Description,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.repo.SaveProduct(ctx, product); err != nil {
		return entities.Product{}, err
	}

	s.invalidateListings()
	s.logger.InfoContext(ctx, "product created", slog.String("product_id", product.ID))
	return product, nil
}

func (s *productService) UpdateProduct(ctx context.Context, productID string, input entities.ProductInput) (entities.Product, error) {
	if err := s.repo.UpdateProduct(ctx, productID, input); err != nil {
		return entities.Product{}, err
	}

	s.invalidateListings()
	return s.repo.GetProductByID(ctx, productID)
}

func (s *productService) DeleteProduct(ctx context.Context, productID string) error {
	if err := s.repo.DeleteProduct(ctx, productID); err != nil {
		return err
	}

	s.invalidateListings()
	s.logger.InfoContext(ctx, "product deleted", slog.String("product_id", productID))
	return nil
}

// WarmUpCatalog primes the listing cache on startup.
func (s *productService) WarmUpCatalog(ctx context.Context) error {
	_, err := s.ListProducts(ctx, false)
	return err
}

func (s *productService) invalidateListings() {
	s.cache.Remove(cacheKeyCatalog)
	s.cache.Remove(cacheKeyAll)
}
