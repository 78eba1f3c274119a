package product

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"
)

var (
	_ CatalogModel = (*MemoryCatalogModel)(nil)
	_ IndexModel   = (*MemoryCatalogModel)(nil)
)

// MemoryCatalogModel keeps the catalog in process, ordered by id. It backs
// local runs and tests.
type MemoryCatalogModel struct {
	mu       sync.RWMutex
	products map[string]*Products
}

func NewMemoryCatalogModel(items ...*Products) *MemoryCatalogModel {
	m := &MemoryCatalogModel{products: make(map[string]*Products, len(items))}
	for _, p := range items {
		if p == nil || strings.TrimSpace(p.Id) == "" {
			continue
		}
		cp := *p
		m.products[cp.Id] = cp.Normalize()
	}
	return m
}

// LoadMemoryCatalogModel reads a JSON array of products, or an object with a
// "products" array.
func LoadMemoryCatalogModel(path string) (*MemoryCatalogModel, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog seed: %w", err)
	}

	var items []*Products
	if err := json.Unmarshal(raw, &items); err != nil {
		var wrapped struct {
			Products []*Products `json:"products"`
		}
		if werr := json.Unmarshal(raw, &wrapped); werr != nil {
			return nil, fmt.Errorf("decode catalog seed: %w", err)
		}
		items = wrapped.Products
	}
	return NewMemoryCatalogModel(items...), nil
}

func (m *MemoryCatalogModel) SearchCtx(_ context.Context, term string) ([]*Products, error) {
	needle := strings.ToLower(strings.TrimSpace(term))

	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*Products, 0)
	for _, p := range m.sortedLocked() {
		if needle == "" || strings.Contains(p.SearchText(), needle) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *MemoryCatalogModel) FetchBatchCtx(_ context.Context, limit, offset int) ([]*Products, error) {
	if limit <= 0 {
		return []*Products{}, nil
	}
	if offset < 0 {
		offset = 0
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	all := m.sortedLocked()
	if offset >= len(all) {
		return []*Products{}, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

func (m *MemoryCatalogModel) UpsertCtx(_ context.Context, p *Products) error {
	if p == nil || strings.TrimSpace(p.Id) == "" {
		return fmt.Errorf("product id is required")
	}
	cp := *p
	m.mu.Lock()
	m.products[cp.Id] = cp.Normalize()
	m.mu.Unlock()
	return nil
}

func (m *MemoryCatalogModel) DeleteCtx(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.products[id]; !ok {
		return ErrNotFound
	}
	delete(m.products, id)
	return nil
}

func (m *MemoryCatalogModel) sortedLocked() []*Products {
	out := make([]*Products, 0, len(m.products))
	for _, p := range m.products {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Id < out[j].Id })
	return out
}
