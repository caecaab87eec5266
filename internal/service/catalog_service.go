package service

import (
	"context"
	"strings"

	"golfa/internal/domain"
	"golfa/internal/repository"
)

// CatalogService отдаёт витринные представления каталога: список с
// фильтрацией по категории и тексту, новинки, отзывы. Только чтение.
type CatalogService struct {
	repo repository.ProductRepository
}

func NewCatalogService(repo repository.ProductRepository) *CatalogService {
	return &CatalogService{repo: repo}
}

// Browse список товаров, отфильтрованный по категории и поисковой строке
func (s *CatalogService) Browse(ctx context.Context, category domain.Category, query string) ([]domain.Product, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return Filter(products, category, query), nil
}

// NewArrivals новинки среди отфильтрованных товаров
func (s *CatalogService) NewArrivals(ctx context.Context, category domain.Category, query string) ([]domain.Product, error) {
	products, err := s.Browse(ctx, category, query)
	if err != nil {
		return nil, err
	}
	return NewArrivals(products), nil
}

func (s *CatalogService) GetByID(ctx context.Context, id int64) (domain.Product, error) {
	if id <= 0 {
		return domain.Product{}, repository.ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

// Testimonials статичные отзывы
func (s *CatalogService) Testimonials() []domain.Testimonial {
	return domain.SeedTestimonials()
}

// Filter чистая фильтрация: категория "all" (или пустая) совпадает со всем,
// иначе точное совпадение; запрос — регистронезависимая подстрока имени или
// описания, пустой совпадает со всем. Оба условия через И, порядок входа
// сохраняется.
func Filter(products []domain.Product, category domain.Category, query string) []domain.Product {
	out := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if category != "" && category != domain.CategoryAll && p.Category != category {
			continue
		}
		if !containsIgnoreCase(p.Name, query) && !containsIgnoreCase(p.Description, query) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// NewArrivals подпоследовательность товаров с isNew, в исходном порядке
func NewArrivals(products []domain.Product) []domain.Product {
	out := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if p.IsNew {
			out = append(out, p)
		}
	}
	return out
}

// helper: case-insensitive contains
func containsIgnoreCase(s, substr string) bool {
	if substr == "" {
		return true
	}
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
