package adapters

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	"oms/internal/orders/domain"
	apperrors "oms/pkg/errors"
)

// orderDocument is the persisted collection layout. Field names are a
// compatibility surface for external readers of the data file.
type orderDocument struct {
	Orders []domain.Order `json:"orders"`
}

// FileOrderStore implements OrderStore on a single JSON document. Every
// mutation runs a full load, mutate in memory, full save cycle under the
// write lock; without that exclusive section two concurrent mutators would
// each load a stale snapshot and the second save would clobber the first.
type FileOrderStore struct {
	path string
	mu   sync.RWMutex
}

// NewFileOrderStore creates a store backed by the JSON document at path.
// The file is created on the first mutation; a missing file reads as an
// empty collection.
func NewFileOrderStore(path string) *FileOrderStore {
	return &FileOrderStore{path: path}
}

// Create validates the input, allocates the next identifier and appends a
// new pending order to the collection
func (s *FileOrderStore) Create(ctx context.Context, customerID string, items []domain.OrderItem, address domain.ShippingAddress) (*domain.Order, error) {
	// Reject malformed input before touching the collection
	if customerID == "" {
		return nil, domain.ErrCustomerIDRequired
	}
	if err := domain.ValidateItems(items); err != nil {
		return nil, err
	}
	if err := address.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return nil, err
	}

	orderID, err := domain.NextOrderID(doc.Orders)
	if err != nil {
		return nil, err
	}

	order, err := domain.NewOrder(orderID, customerID, items, address, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	doc.Orders = append(doc.Orders, *order)
	if err := s.save(doc); err != nil {
		return nil, err
	}

	return order, nil
}

// GetByID retrieves an order by its identifier
func (s *FileOrderStore) GetByID(ctx context.Context, orderID string) (*domain.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, err := s.load()
	if err != nil {
		return nil, err
	}

	for i := range doc.Orders {
		if doc.Orders[i].OrderID == orderID {
			order := doc.Orders[i]
			return &order, nil
		}
	}

	return nil, domain.NewOrderNotFound(orderID)
}

// Update replaces whichever of items/address is supplied, recomputes the
// total when items change and stamps updated_at
func (s *FileOrderStore) Update(ctx context.Context, orderID string, items []domain.OrderItem, address *domain.ShippingAddress) (*domain.Order, error) {
	if items != nil {
		if err := domain.ValidateItems(items); err != nil {
			return nil, err
		}
	}
	if address != nil {
		if err := address.Validate(); err != nil {
			return nil, err
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return nil, err
	}

	idx := findOrder(doc.Orders, orderID)
	if idx < 0 {
		return nil, domain.NewOrderNotFound(orderID)
	}

	order := &doc.Orders[idx]
	if !order.Status.CanModify() {
		return nil, domain.NewCannotUpdate(orderID, order.Status)
	}

	if items != nil {
		order.Items = items
		order.TotalAmount = domain.TotalAmount(items)
	}
	if address != nil {
		order.ShippingAddress = address.Normalized()
	}
	order.UpdatedAt = time.Now().UTC()

	if err := s.save(doc); err != nil {
		return nil, err
	}

	updated := *order
	return &updated, nil
}

// Cancel marks an order cancelled and stamps updated_at
func (s *FileOrderStore) Cancel(ctx context.Context, orderID string) (*domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return nil, err
	}

	idx := findOrder(doc.Orders, orderID)
	if idx < 0 {
		return nil, domain.NewOrderNotFound(orderID)
	}

	order := &doc.Orders[idx]
	if !order.Status.CanCancel() {
		return nil, domain.NewCannotCancel(orderID, order.Status)
	}

	order.Status = domain.OrderStatusCancelled
	order.UpdatedAt = time.Now().UTC()

	if err := s.save(doc); err != nil {
		return nil, err
	}

	cancelled := *order
	return &cancelled, nil
}

// List returns a consistent snapshot of the full collection
func (s *FileOrderStore) List(ctx context.Context) ([]domain.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, err := s.load()
	if err != nil {
		return nil, err
	}

	return doc.Orders, nil
}

func findOrder(orders []domain.Order, orderID string) int {
	for i := range orders {
		if orders[i].OrderID == orderID {
			return i
		}
	}
	return -1
}

// load reads the full collection. A missing file is an empty collection;
// unparseable data is fatal and never coerced to an empty one. Callers must
// hold the lock.
func (s *FileOrderStore) load() (*orderDocument, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return &orderDocument{Orders: []domain.Order{}}, nil
		}
		return nil, apperrors.NewStorageCorrupted("failed to read order collection", err)
	}

	var doc orderDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, apperrors.NewStorageCorrupted("order collection is not valid JSON", err)
	}

	return &doc, nil
}

// save writes the full collection to a temporary file in the same directory
// and atomically renames it over the previous snapshot, so readers never
// observe a partially written file. Callers must hold the write lock.
func (s *FileOrderStore) save(doc *orderDocument) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return apperrors.NewInternal("failed to marshal order collection", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return apperrors.NewInternal("failed to create data directory", err)
	}

	tmp, err := os.CreateTemp(dir, "orders-*.json")
	if err != nil {
		return apperrors.NewInternal("failed to create temp file", err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return apperrors.NewInternal("failed to write order collection", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return apperrors.NewInternal("failed to close temp file", err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return apperrors.NewInternal("failed to replace order collection", err)
	}

	return nil
}
