// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package types

type Product struct {
	Id                 string   `json:"id"`
	Title              string   `json:"title"`
	Description        string   `json:"description"`
	Price              float64  `json:"price"`
	DiscountPercentage float64  `json:"discount_percentage"`
	Rating             float64  `json:"rating"`
	Stock              int64    `json:"stock"`
	Brand              string   `json:"brand"`
	Category           string   `json:"category"`
	Thumbnail          string   `json:"thumbnail"`
	Images             []string `json:"images"`
}

type ChatMessage struct {
	Id          string    `json:"id"`
	Text        string    `json:"text"`
	Author      string    `json:"author"`
	Timestamp   int64     `json:"timestamp"`
	Products    []Product `json:"products"`
	Suggestions []string  `json:"suggestions"`
	Follow_ups  []string  `json:"follow_ups"`
}

type Preferences struct {
	Size        string   `json:"size"`
	Style       string   `json:"style"`
	Budget      float64  `json:"budget"`
	Colors      []string `json:"colors"`
	Occasions   []string `json:"occasions"`
	Last_search string   `json:"last_search"`
}

type ChatRequest struct {
	Session_id string `json:"session_id,optional"`
	Message    string `json:"message"`
}

type ChatResponse struct {
	Session_id string      `json:"session_id"`
	Reply      ChatMessage `json:"reply"`
}

type Outfit struct {
	Id               string    `json:"id"`
	Occasion         string    `json:"occasion"`
	Items            []Product `json:"items"`
	Total_price      float64   `json:"total_price"`
	Discounted_total float64   `json:"discounted_total,omitempty"`
	Score            int       `json:"score"`
	Reasoning        string    `json:"reasoning"`
	Colors           []string  `json:"colors"`
}

type GenerateOutfitsRequest struct {
	Occasion string   `json:"occasion"`
	Budget   float64  `json:"budget,optional"`
	Colors   []string `json:"colors,optional"`
	Style    string   `json:"style,optional"`
}

type GenerateOutfitsResponse struct {
	Outfits []Outfit `json:"outfits"`
}

type SearchProductsRequest struct {
	Term      string `form:"term,optional"`
	Max_price string `form:"max_price,optional"`
	Colors    string `form:"colors,optional"`
}

type SearchProductsResponse struct {
	Products []Product `json:"products"`
}

type GetSessionRequest struct {
	Session_id string `path:"session_id"`
}

type GetSessionResponse struct {
	Session_id  string        `json:"session_id"`
	Preferences Preferences   `json:"preferences"`
	Messages    []ChatMessage `json:"messages"`
	Created_at  int64         `json:"created_at"`
	Updated_at  int64         `json:"updated_at"`
}

type EndSessionRequest struct {
	Session_id string `path:"session_id"`
}

type EndSessionResponse struct {
	Session_id string `json:"session_id"`
}
