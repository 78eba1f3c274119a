package helper

import (
	"StylistAI/app/dal/product"
	"StylistAI/app/dal/session"
	"StylistAI/app/services/stylist/internal/agent/outfit"
	"StylistAI/app/services/stylist/internal/types"
)

func ToProduct(src *product.Products) types.Product {
	if src == nil {
		return types.Product{}
	}
	return types.Product{
		Id:                 src.Id,
		Title:              src.Title,
		Description:        src.Description,
		Price:              src.Price,
		DiscountPercentage: src.DiscountPercentage,
		Rating:             src.Rating,
		Stock:              src.Stock,
		Brand:              src.Brand,
		Category:           src.Category,
		Thumbnail:          src.Thumbnail,
		Images:             src.Images,
	}
}

func ToProducts(list []*product.Products) []types.Product {
	res := make([]types.Product, 0, len(list))
	for _, p := range list {
		if p == nil {
			continue
		}
		res = append(res, ToProduct(p))
	}
	return res
}

func ToChatMessage(src *session.Message) types.ChatMessage {
	if src == nil {
		return types.ChatMessage{}
	}
	return types.ChatMessage{
		Id:          src.Id,
		Text:        src.Text,
		Author:      src.Author,
		Timestamp:   src.Timestamp.UnixMilli(),
		Products:    ToProducts(src.Products),
		Suggestions: nonNil(src.Suggestions),
		Follow_ups:  nonNil(src.FollowUps),
	}
}

func ToPreferences(src session.Preferences) types.Preferences {
	out := types.Preferences{
		Size:        src.Size,
		Style:       src.Style,
		Colors:      nonNil(src.Colors),
		Occasions:   nonNil(src.Occasions),
		Last_search: src.LastSearch,
	}
	if src.Budget != nil {
		out.Budget = *src.Budget
	}
	return out
}

func ToOutfit(src *outfit.Outfit) types.Outfit {
	if src == nil {
		return types.Outfit{}
	}
	out := types.Outfit{
		Id:          src.Id,
		Occasion:    src.Occasion,
		Items:       ToProducts(src.Items),
		Total_price: src.TotalPrice,
		Score:       src.Score,
		Reasoning:   src.Reasoning,
		Colors:      nonNil(src.Colors),
	}
	if src.DiscountedTotal != nil {
		out.Discounted_total = *src.DiscountedTotal
	}
	return out
}

func ToOutfits(list []*outfit.Outfit) []types.Outfit {
	res := make([]types.Outfit, 0, len(list))
	for _, o := range list {
		res = append(res, ToOutfit(o))
	}
	return res
}

func nonNil(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}
