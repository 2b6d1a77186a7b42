package orders

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/amakha/storefront-backend/pkg/enums"
)

// Repository holds the placed orders in memory, newest first. Ids come from a
// monotonic sequence rather than a count snapshot so deletes or concurrent
// creators can never mint a duplicate.
type Repository struct {
	mu     sync.RWMutex
	orders []Order
	seq    int
	now    func() time.Time
}

func NewRepository(seed []Order) *Repository {
	orders := make([]Order, len(seed))
	copy(orders, seed)
	return &Repository{
		orders: orders,
		seq:    10000 + len(seed),
		now:    time.Now,
	}
}

// Create assigns the next ORD-<n> id, stamps status pending and the creation
// time, and prepends the order.
func (r *Repository) Create(input CreateOrderInput) Order {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.seq++
	items := make([]OrderItem, len(input.Items))
	copy(items, input.Items)

	order := Order{
		ID:            fmt.Sprintf("ORD-%d", r.seq),
		CustomerName:  input.CustomerName,
		CustomerEmail: input.CustomerEmail,
		CustomerPhone: input.CustomerPhone,
		Address:       input.Address,
		City:          input.City,
		Items:         items,
		Total:         input.Total,
		Status:        enums.OrderStatusPending,
		CreatedAt:     r.now(),
	}
	r.orders = append([]Order{order}, r.orders...)
	return order
}

// UpdateStatus overwrites the status of the matching order and nothing else.
// The repository is deliberately permissive; lifecycle legality is the
// service's concern.
func (r *Repository) UpdateStatus(orderID string, status enums.OrderStatus) (Order, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.orders {
		if r.orders[i].ID == orderID {
			r.orders[i].Status = status
			return r.orders[i], true
		}
	}
	return Order{}, false
}

// GetByID returns the order with the exact id.
func (r *Repository) GetByID(orderID string) (Order, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, order := range r.orders {
		if order.ID == orderID {
			return order, true
		}
	}
	return Order{}, false
}

// GetByEmail returns every order whose customer email matches the given one,
// compared case-insensitively, preserving list order.
func (r *Repository) GetByEmail(email string) []Order {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []Order
	for _, order := range r.orders {
		if strings.EqualFold(order.CustomerEmail, email) {
			out = append(out, order)
		}
	}
	return out
}

// List returns all orders, newest first.
func (r *Repository) List() []Order {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Order, len(r.orders))
	copy(out, r.orders)
	return out
}
