package outfit

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"sort"
	"strings"

	"StylistAI/app/common/snowflake"
	"StylistAI/app/dal/product"
	"StylistAI/app/services/stylist/internal/agent/completion"
	"StylistAI/app/services/stylist/internal/agent/extract"

	"github.com/zeromicro/go-zero/core/logx"
	"golang.org/x/sync/errgroup"
)

const (
	minItems       = 3
	maxItems       = 4
	drawAttempts   = 5
	pickRetries    = 20
	maxOutfits     = 3
	maxDevPenalty  = 20.0
	baseScore      = 100.0
	categoryBonus  = 5.0
	ratingWeight   = 2.0
	discountWeight = 5.0
)

var ErrInsufficientInventory = errors.New("insufficient inventory for occasion")

type Request struct {
	Occasion string
	Budget   *float64
	Colors   []string
	Style    string
}

type Outfit struct {
	Id              string              `json:"id"`
	Occasion        string              `json:"occasion"`
	Items           []*product.Products `json:"items"`
	TotalPrice      float64             `json:"totalPrice"`
	DiscountedTotal *float64            `json:"discountedTotal,omitempty"`
	Score           int                 `json:"score"`
	Reasoning       string              `json:"reasoning"`
	Colors          []string            `json:"colors"`
}

type Engine struct {
	completer completion.Completer
	newRand   func() *rand.Rand
}

type Option func(*Engine)

// WithRand injects the per-request random source factory.
func WithRand(newRand func() *rand.Rand) Option {
	return func(e *Engine) {
		if newRand != nil {
			e.newRand = newRand
		}
	}
}

func NewEngine(completer completion.Completer, opts ...Option) *Engine {
	e := &Engine{
		completer: completer,
		newRand: func() *rand.Rand {
			return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
		},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Generate builds up to three outfits for req from catalog, best first.
// Results are randomised; two calls with the same input may differ.
func (e *Engine) Generate(ctx context.Context, catalog []*product.Products, req Request) ([]*Outfit, error) {
	occasion, rule := RuleFor(req.Occasion)

	qualifying := Qualify(catalog, rule, req.Budget)
	if len(qualifying) < minItems {
		return nil, ErrInsufficientInventory
	}

	rng := e.newRand()
	groups, keys := groupByCategory(qualifying)

	outfits := make([]*Outfit, 0, drawAttempts)
	for d := 0; d < drawAttempts; d++ {
		items := draw(rng, groups, keys)
		if len(items) < minItems {
			continue
		}
		outfits = append(outfits, newOutfit(occasion, items))
	}

	sort.SliceStable(outfits, func(i, j int) bool {
		return outfits[i].Score > outfits[j].Score
	})
	if len(outfits) > maxOutfits {
		outfits = outfits[:maxOutfits]
	}

	e.enhance(ctx, outfits, req)
	return outfits, nil
}

// Qualify keeps products whose category and title hit an allowed keyword, hit
// no avoided keyword and fit the budget.
func Qualify(catalog []*product.Products, rule Rule, budget *float64) []*product.Products {
	out := make([]*product.Products, 0, len(catalog))
	for _, p := range catalog {
		if p == nil {
			continue
		}
		if budget != nil && p.Price > *budget {
			continue
		}
		text := strings.ToLower(p.Category + " " + p.Title)
		if rule.matches(text) {
			out = append(out, p)
		}
	}
	return out
}

func groupByCategory(items []*product.Products) (map[string][]*product.Products, []string) {
	groups := make(map[string][]*product.Products)
	for _, p := range items {
		key := strings.ToLower(strings.TrimSpace(p.Category))
		groups[key] = append(groups[key], p)
	}
	keys := make([]string, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return groups, keys
}

// draw picks one product from each of 3-4 distinct categories.
func draw(rng *rand.Rand, groups map[string][]*product.Products, keys []string) []*product.Products {
	target := minItems + rng.IntN(maxItems-minItems+1)
	if target > len(keys) {
		target = len(keys)
	}

	used := make(map[string]struct{}, target)
	items := make([]*product.Products, 0, target)
	for retry := 0; retry < pickRetries && len(items) < target; retry++ {
		key := keys[rng.IntN(len(keys))]
		if _, ok := used[key]; ok {
			continue
		}
		bucket := groups[key]
		if len(bucket) == 0 {
			continue
		}
		used[key] = struct{}{}
		items = append(items, bucket[rng.IntN(len(bucket))])
	}
	return items
}

func newOutfit(occasion string, items []*product.Products) *Outfit {
	var total, discounted float64
	hasDiscount := false
	for _, p := range items {
		total += p.Price
		discounted += p.Price * (1 - p.DiscountPercentage/100)
		if p.DiscountPercentage > 0 {
			hasDiscount = true
		}
	}

	o := &Outfit{
		Id:         snowflake.NextString(),
		Occasion:   occasion,
		Items:      items,
		TotalPrice: round2(total),
		Score:      Score(items),
		Colors:     colorsOf(items),
	}
	if hasDiscount {
		d := round2(discounted)
		o.DiscountedTotal = &d
	}
	return o
}

// Score rates how well items sit together, from 0 to 100.
func Score(items []*product.Products) int {
	if len(items) == 0 {
		return 0
	}

	n := float64(len(items))
	var sum, ratings, discounts float64
	categories := make(map[string]struct{}, len(items))
	for _, p := range items {
		sum += p.Price
		ratings += p.Rating
		discounts += p.DiscountPercentage
		categories[strings.ToLower(strings.TrimSpace(p.Category))] = struct{}{}
	}

	mean := sum / n
	var deviation float64
	for _, p := range items {
		deviation += math.Abs(p.Price - mean)
	}
	deviation /= n

	score := baseScore
	score -= math.Min(deviation/100, maxDevPenalty)
	score += categoryBonus * float64(len(categories))
	score += ratingWeight * (ratings / n)
	score += (discounts / n) / discountWeight

	return int(math.Round(math.Max(0, math.Min(100, score))))
}

func (e *Engine) enhance(ctx context.Context, outfits []*Outfit, req Request) {
	log := logx.WithContext(ctx)
	g, gctx := errgroup.WithContext(ctx)
	for _, o := range outfits {
		g.Go(func() error {
			o.Reasoning = e.reasoning(gctx, log, o, req)
			return nil
		})
	}
	_ = g.Wait()
}

func (e *Engine) reasoning(ctx context.Context, log logx.Logger, o *Outfit, req Request) string {
	if e.completer == nil {
		return fallbackReasoning(o)
	}

	res, err := e.completer.Complete(ctx, stylingPrompt(o), stylingHint(req))
	if err != nil {
		log.Errorw("outfit reasoning completion failed",
			logx.Field("outfit", o.Id),
			logx.Field("err", err.Error()))
		return fallbackReasoning(o)
	}
	if text := strings.TrimSpace(res.Text); text != "" {
		return text
	}
	return fallbackReasoning(o)
}

func stylingPrompt(o *Outfit) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("In two sentences, explain why this %s outfit works together:\n", o.Occasion))
	for _, p := range o.Items {
		sb.WriteString(fmt.Sprintf("- %s (%s, ₹%.0f)\n", p.Title, p.Category, p.Price))
	}
	sb.WriteString(fmt.Sprintf("Total: ₹%.0f", o.TotalPrice))
	return sb.String()
}

func stylingHint(req Request) string {
	parts := []string{"outfit styling"}
	if req.Style != "" {
		parts = append(parts, "preferred style: "+req.Style)
	}
	if len(req.Colors) > 0 {
		parts = append(parts, "preferred colours: "+strings.Join(req.Colors, ", "))
	}
	if req.Budget != nil {
		parts = append(parts, fmt.Sprintf("budget per item: ₹%.0f", *req.Budget))
	}
	return strings.Join(parts, "; ")
}

func fallbackReasoning(o *Outfit) string {
	return fmt.Sprintf("A %d-piece %s look with pieces picked to sit well together on price and rating.", len(o.Items), o.Occasion)
}

func colorsOf(items []*product.Products) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, p := range items {
		for _, c := range extract.ExtractColors(strings.ToLower(p.Title)) {
			if _, ok := seen[c]; ok {
				continue
			}
			seen[c] = struct{}{}
			out = append(out, c)
		}
	}
	return out
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
