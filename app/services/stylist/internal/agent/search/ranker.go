package search

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"StylistAI/app/dal/product"
	"StylistAI/app/services/stylist/internal/agent/extract"
)

const (
	MaxResults = 6

	latestBatchSize   = 50
	trendingBatchSize = 100
	fallbackTerm      = "clothing"
)

var latestTerms = map[string]struct{}{
	"latest": {}, "new": {}, "newest": {}, "recent": {},
}

type Ranker struct {
	catalog product.CatalogModel
}

func NewRanker(catalog product.CatalogModel) *Ranker {
	return &Ranker{catalog: catalog}
}

// Rank returns at most six products ordered by descending relevance. The only
// error it returns comes from the catalog.
func (r *Ranker) Rank(ctx context.Context, signals extract.Signals) ([]*product.Products, error) {
	term := strings.ToLower(strings.TrimSpace(signals.SearchTerm))

	if _, ok := latestTerms[term]; ok {
		return r.latest(ctx)
	}
	if term == "" {
		return r.trending(ctx)
	}

	candidates, err := r.searchCascade(ctx, term, signals.AlternateTerms)
	if err != nil {
		return nil, err
	}

	filtered := Filter(candidates, signals.MaxPrice, signals.Colors)
	return Score(filtered, term, signals.MaxPrice), nil
}

// ids stand in for recency; the store has no creation-time index.
func (r *Ranker) latest(ctx context.Context) ([]*product.Products, error) {
	batch, err := r.catalog.FetchBatchCtx(ctx, latestBatchSize, 0)
	if err != nil {
		return nil, fmt.Errorf("fetch latest batch: %w", err)
	}
	out := compact(batch)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Id > out[j].Id })
	return limit(out, MaxResults), nil
}

func (r *Ranker) trending(ctx context.Context) ([]*product.Products, error) {
	batch, err := r.catalog.FetchBatchCtx(ctx, trendingBatchSize, 0)
	if err != nil {
		return nil, fmt.Errorf("fetch trending batch: %w", err)
	}
	out := compact(batch)
	sort.SliceStable(out, func(i, j int) bool {
		return TrendingScore(out[i]) > TrendingScore(out[j])
	})
	return limit(out, MaxResults), nil
}

// searchCascade stops at the first strategy that returns anything; results
// from different strategies are never merged.
func (r *Ranker) searchCascade(ctx context.Context, term string, alternates []string) ([]*product.Products, error) {
	strategies := make([]string, 0, len(alternates)+3)
	strategies = append(strategies, term)
	strategies = append(strategies, alternates...)
	if fields := strings.Fields(term); len(fields) > 0 {
		strategies = append(strategies, fields[0])
	}
	strategies = append(strategies, fallbackTerm)

	tried := make(map[string]struct{}, len(strategies))
	for _, s := range strategies {
		s = strings.ToLower(strings.TrimSpace(s))
		if s == "" {
			continue
		}
		if _, seen := tried[s]; seen {
			continue
		}
		tried[s] = struct{}{}

		found, err := r.catalog.SearchCtx(ctx, s)
		if err != nil {
			return nil, fmt.Errorf("search %q: %w", s, err)
		}
		if found = compact(found); len(found) > 0 {
			return found, nil
		}
	}
	return []*product.Products{}, nil
}

// Filter applies the price ceiling when present, otherwise the color filter.
// The two never combine.
func Filter(items []*product.Products, maxPrice *float64, colors []string) []*product.Products {
	out := make([]*product.Products, 0, len(items))
	switch {
	case maxPrice != nil:
		for _, p := range items {
			if p.Price <= *maxPrice {
				out = append(out, p)
			}
		}
	case len(colors) > 0:
		for _, p := range items {
			text := strings.ToLower(p.Title + " " + p.Description)
			for _, c := range colors {
				if c = strings.ToLower(strings.TrimSpace(c)); c != "" && strings.Contains(text, c) {
					out = append(out, p)
					break
				}
			}
		}
	default:
		out = append(out, items...)
	}
	return out
}

type scored struct {
	item  *product.Products
	score float64
}

// Score orders items by relevance, stable on ties, capped at six.
func Score(items []*product.Products, term string, maxPrice *float64) []*product.Products {
	ranked := make([]scored, 0, len(items))
	for _, p := range items {
		ranked = append(ranked, scored{item: p, score: RelevanceScore(p, term, maxPrice)})
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].score > ranked[j].score })

	out := make([]*product.Products, 0, len(ranked))
	for _, s := range ranked {
		out = append(out, s.item)
	}
	return limit(out, MaxResults)
}

func RelevanceScore(p *product.Products, term string, maxPrice *float64) float64 {
	score := p.Rating*2 + p.DiscountPercentage/10
	if term != "" && strings.Contains(strings.ToLower(p.Title), strings.ToLower(term)) {
		score += 5
	}
	if maxPrice != nil && *maxPrice > 0 {
		ceiling := *maxPrice
		score += 3 * (1 - p.Price/ceiling)
	}
	return score
}

func TrendingScore(p *product.Products) float64 {
	return p.Rating*2 + p.DiscountPercentage/10
}

func compact(items []*product.Products) []*product.Products {
	out := make([]*product.Products, 0, len(items))
	for _, p := range items {
		if p != nil {
			out = append(out, p)
		}
	}
	return out
}

func limit(items []*product.Products, n int) []*product.Products {
	if len(items) <= n {
		return items
	}
	return items[:n]
}
