package service

import (
	"context"
	"errors"
	"fmt"

	"golfa/internal/domain"
	"golfa/internal/repository"
)

// ErrValidation невалидный ввод: пустые обязательные поля, неизвестная
// категория, отрицательная цена, пустой список картинок
var ErrValidation = errors.New("validation error")

// ProductService операции админки над каталогом. Валидирует ввод и ходит в
// хранилище; пара price/oldPrice намеренно не проверяется на инверсию —
// скидка тогда просто выходит нулевой или отрицательной.
type ProductService struct {
	repo repository.ProductRepository
}

func NewProductService(repo repository.ProductRepository) *ProductService {
	return &ProductService{repo: repo}
}

func (s *ProductService) Create(ctx context.Context, draft domain.ProductDraft) (domain.Product, error) {
	if err := validateDraft(draft); err != nil {
		return domain.Product{}, err
	}
	return s.repo.Create(ctx, draft)
}

func (s *ProductService) Update(ctx context.Context, id int64, patch domain.ProductPatch) (domain.Product, error) {
	if id <= 0 {
		return domain.Product{}, fmt.Errorf("%w: product id is required", ErrValidation)
	}
	if err := validatePatch(patch); err != nil {
		return domain.Product{}, err
	}
	return s.repo.Update(ctx, id, patch)
}

func (s *ProductService) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: product id is required", ErrValidation)
	}
	return s.repo.Delete(ctx, id)
}

func validateDraft(d domain.ProductDraft) error {
	if d.Name == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	if !d.Category.Valid() {
		return fmt.Errorf("%w: unknown category %q", ErrValidation, d.Category)
	}
	if d.Price < 0 {
		return fmt.Errorf("%w: price must be non-negative", ErrValidation)
	}
	if len(d.Images) == 0 {
		return fmt.Errorf("%w: at least one image is required", ErrValidation)
	}
	return nil
}

func validatePatch(p domain.ProductPatch) error {
	if p.Name != nil && *p.Name == "" {
		return fmt.Errorf("%w: name cannot be empty", ErrValidation)
	}
	if p.Category != nil && !p.Category.Valid() {
		return fmt.Errorf("%w: unknown category %q", ErrValidation, *p.Category)
	}
	if p.Price != nil && *p.Price < 0 {
		return fmt.Errorf("%w: price must be non-negative", ErrValidation)
	}
	if p.Images != nil && len(*p.Images) == 0 {
		return fmt.Errorf("%w: at least one image is required", ErrValidation)
	}
	return nil
}
