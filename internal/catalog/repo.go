package catalog

import "sync"

// Repository holds the live product catalog in memory, insertion-ordered.
// Misses are silent no-ops; the service layer decides whether to surface them.
type Repository struct {
	mu       sync.RWMutex
	products []Product
}

func NewRepository(seed []Product) *Repository {
	products := make([]Product, len(seed))
	copy(products, seed)
	return &Repository{products: products}
}

// Create assigns the next id (max existing + 1, or 1 when empty), zeroes the
// review fields and appends the product.
func (r *Repository) Create(input CreateProductInput) Product {
	r.mu.Lock()
	defer r.mu.Unlock()

	var maxID int64
	for _, p := range r.products {
		if p.ID > maxID {
			maxID = p.ID
		}
	}

	product := Product{
		ID:          maxID + 1,
		Name:        input.Name,
		Category:    input.Category,
		Description: input.Description,
		Price:       input.Price,
		Stock:       input.Stock,
		ImageURL:    input.ImageURL,
		ReviewCount: 0,
		Rating:      0,
	}
	r.products = append(r.products, product)
	return product
}

// Update merges the patch into the matching product. The second return is
// false when no product has the id.
func (r *Repository) Update(id int64, patch ProductPatch) (Product, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, p := range r.products {
		if p.ID == id {
			r.products[i] = patch.apply(p)
			return r.products[i], true
		}
	}
	return Product{}, false
}

// Delete removes the matching product. False when no product has the id.
func (r *Repository) Delete(id int64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, p := range r.products {
		if p.ID == id {
			r.products = append(r.products[:i], r.products[i+1:]...)
			return true
		}
	}
	return false
}

// Get returns the product by id.
func (r *Repository) Get(id int64) (Product, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

// List returns the catalog in insertion order.
func (r *Repository) List() []Product {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Product, len(r.products))
	copy(out, r.products)
	return out
}
