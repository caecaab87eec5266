package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"

	"golfa/internal/domain"
)

// FileStore хранит каталог в одном JSON-файле: плоский массив товаров,
// читается и пишется целиком на каждой операции. Цикл
// читать-изменить-записать защищён мьютексом, писатель всегда один.
type FileStore struct {
	mu   sync.Mutex
	path string
}

// NewFileStore открывает хранилище над файлом path. Если файла нет, сразу
// записывает туда seed, чтобы магазин не стартовал с пустым каталогом.
func NewFileStore(path string, seed []domain.Product) (*FileStore, error) {
	s := &FileStore{path: path}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := s.writeAll(seed); err != nil {
			return nil, err
		}
	}
	return s, nil
}

var _ ProductRepository = (*FileStore)(nil)

// readAll читает весь каталог. Ошибка чтения или битый JSON деградируют до
// пустого списка: для витрины "файл сломан" и "товаров нет" выглядят
// одинаково.
func (s *FileStore) readAll() []domain.Product {
	data, err := os.ReadFile(s.path)
	if err != nil {
		log.Printf("catalog read failed, serving empty list: %v", err)
		return []domain.Product{}
	}
	var products []domain.Product
	if err := json.Unmarshal(data, &products); err != nil {
		log.Printf("catalog parse failed, serving empty list: %v", err)
		return []domain.Product{}
	}
	if products == nil {
		products = []domain.Product{}
	}
	return products
}

func (s *FileStore) writeAll(products []domain.Product) error {
	if products == nil {
		products = []domain.Product{}
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("%w: mkdir: %v", ErrPersistence, err)
	}
	out, err := json.MarshalIndent(products, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encode: %v", ErrPersistence, err)
	}
	if err := os.WriteFile(s.path, out, 0o644); err != nil {
		return fmt.Errorf("%w: write: %v", ErrPersistence, err)
	}
	return nil
}

// List возвращает все товары в порядке хранения. Не ошибается никогда:
// на сбое чтения отдаёт пустой список.
func (s *FileStore) List(ctx context.Context) ([]domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.readAll(), nil
}

func (s *FileStore) GetByID(ctx context.Context, id int64) (domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.readAll() {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.Product{}, ErrNotFound
}

// Create назначает id = max(существующих) + 1 (или 1 на пустом каталоге),
// добавляет товар в конец и переписывает файл.
func (s *FileStore) Create(ctx context.Context, draft domain.ProductDraft) (domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	products := s.readAll()
	var maxID int64
	for _, p := range products {
		if p.ID > maxID {
			maxID = p.ID
		}
	}
	created := domain.Product{
		ID:            maxID + 1,
		Name:          draft.Name,
		Category:      draft.Category,
		Price:         draft.Price,
		OldPrice:      draft.OldPrice,
		Images:        draft.Images,
		IsNew:         draft.IsNew,
		PublishedDate: draft.PublishedDate,
		Description:   draft.Description,
	}
	products = append(products, created)
	if err := s.writeAll(products); err != nil {
		return domain.Product{}, err
	}
	return created, nil
}

// Update накладывает патч на найденную запись. ID не меняется, даже если
// клиент прислал в теле другой.
func (s *FileStore) Update(ctx context.Context, id int64, patch domain.ProductPatch) (domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	products := s.readAll()
	idx := -1
	for i, p := range products {
		if p.ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return domain.Product{}, ErrNotFound
	}
	updated := patch.Apply(products[idx])
	updated.ID = id
	products[idx] = updated
	if err := s.writeAll(products); err != nil {
		return domain.Product{}, err
	}
	return updated, nil
}

// Delete отфильтровывает запись с заданным id. Факт удаления определяется
// строго сравнением длин до и после фильтра, без отдельной проверки
// существования: длина не уменьшилась — NotFound.
func (s *FileStore) Delete(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	products := s.readAll()
	filtered := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if p.ID != id {
			filtered = append(filtered, p)
		}
	}
	if len(filtered) == len(products) {
		return ErrNotFound
	}
	return s.writeAll(filtered)
}
