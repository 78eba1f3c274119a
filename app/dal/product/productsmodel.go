package product

import (
	"context"
	"errors"
	"strings"
)

var ErrNotFound = errors.New("product not found")

type Review struct {
	Rating        float64 `json:"rating"`
	Comment       string  `json:"comment"`
	ReviewerName  string  `json:"reviewerName,omitempty"`
	ReviewerEmail string  `json:"reviewerEmail,omitempty"`
	Date          string  `json:"date,omitempty"`
}

// Products is a catalog snapshot entry. The stylist only reads it.
type Products struct {
	Id                 string   `json:"id"`
	Title              string   `json:"title"`
	Description        string   `json:"description"`
	Price              float64  `json:"price"`
	DiscountPercentage float64  `json:"discountPercentage"`
	Rating             float64  `json:"rating"`
	Stock              int64    `json:"stock"`
	Brand              string   `json:"brand"`
	Category           string   `json:"category"`
	Thumbnail          string   `json:"thumbnail"`
	Images             []string `json:"images"`
	Reviews            []Review `json:"reviews"`
}

// Normalize fills defaults for fields the store may omit and clamps the
// numeric ranges the ranker relies on.
func (p *Products) Normalize() *Products {
	if p == nil {
		return nil
	}
	p.Id = strings.TrimSpace(p.Id)
	if p.Images == nil {
		p.Images = []string{}
	}
	if p.Reviews == nil {
		p.Reviews = []Review{}
	}
	if p.Thumbnail == "" && len(p.Images) > 0 {
		p.Thumbnail = p.Images[0]
	}
	p.DiscountPercentage = clamp(p.DiscountPercentage, 0, 100)
	p.Rating = clamp(p.Rating, 0, 5)
	if p.Price < 0 {
		p.Price = 0
	}
	if p.Stock < 0 {
		p.Stock = 0
	}
	return p
}

// SearchText is the lowercased text keyword search runs against.
func (p *Products) SearchText() string {
	return strings.ToLower(strings.Join([]string{p.Title, p.Description, p.Category, p.Brand}, " "))
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

type (
	// CatalogModel is the read side of the external product store.
	CatalogModel interface {
		// SearchCtx matches term case-insensitively against title, description,
		// category and brand.
		SearchCtx(ctx context.Context, term string) ([]*Products, error)
		// FetchBatchCtx pages through the catalog ordered by id.
		FetchBatchCtx(ctx context.Context, limit, offset int) ([]*Products, error)
	}

	// IndexModel is the write side used by the indexer.
	IndexModel interface {
		UpsertCtx(ctx context.Context, p *Products) error
		DeleteCtx(ctx context.Context, id string) error
	}
)
