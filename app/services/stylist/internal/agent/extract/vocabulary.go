package extract

type categoryTerms struct {
	Category string
	Terms    []string
}

// categoryTable is scanned top to bottom; the first entry with a term inside
// the message wins, so more specific garments sit above the generic ones.
var categoryTable = []categoryTerms{
	{Category: "t-shirt", Terms: []string{"t-shirt", "t-shirts", "tshirt", "tshirts", "tee", "tees"}},
	{Category: "shirt", Terms: []string{"shirt", "shirts", "button-down", "polo"}},
	{Category: "jeans", Terms: []string{"jeans", "denim", "denims"}},
	{Category: "pants", Terms: []string{"pants", "trousers", "chinos", "joggers", "leggings"}},
	{Category: "shorts", Terms: []string{"shorts", "bermuda"}},
	{Category: "dress", Terms: []string{"dress", "dresses", "gown", "gowns", "frock"}},
	{Category: "skirt", Terms: []string{"skirt", "skirts"}},
	{Category: "top", Terms: []string{"top", "tops", "blouse", "blouses", "tank", "crop"}},
	{Category: "jacket", Terms: []string{"jacket", "jackets", "blazer", "blazers", "coat", "coats"}},
	{Category: "hoodie", Terms: []string{"hoodie", "hoodies", "sweatshirt", "sweatshirts"}},
	{Category: "sweater", Terms: []string{"sweater", "sweaters", "cardigan", "pullover", "jumper"}},
	{Category: "kurta", Terms: []string{"kurta", "kurtas", "kurti", "kurtis"}},
	{Category: "saree", Terms: []string{"saree", "sarees", "sari", "lehenga"}},
	{Category: "suit", Terms: []string{"suit", "suits", "tuxedo"}},
	{Category: "shoes", Terms: []string{"shoes", "shoe", "sneakers", "sneaker", "heels", "sandals", "boots", "loafers", "footwear", "flats"}},
	{Category: "bag", Terms: []string{"bag", "bags", "handbag", "handbags", "purse", "backpack", "tote", "clutch"}},
	{Category: "watch", Terms: []string{"watch", "watches"}},
	{Category: "sunglasses", Terms: []string{"sunglasses", "shades", "eyewear"}},
	{Category: "jewellery", Terms: []string{"jewellery", "jewelry", "necklace", "earrings", "bracelet", "ring"}},
	{Category: "accessories", Terms: []string{"accessories", "accessory", "belt", "belts", "scarf", "cap", "hat"}},
}

// colorPalette holds no duplicates, so the extracted list never does either.
var colorPalette = []string{
	"red", "blue", "green", "black", "white", "yellow", "pink", "purple",
	"orange", "brown", "grey", "gray", "navy", "beige", "maroon", "olive",
	"teal", "gold", "silver", "cream", "khaki", "lavender",
}

var occasionKeywords = []string{
	"casual", "formal", "party", "office", "wedding", "date", "gym",
	"workout", "festive", "festival", "beach", "vacation", "interview", "brunch",
}

var styleKeywords = []string{
	"casual", "formal", "ethnic", "western", "boho", "minimalist", "vintage",
	"streetwear", "sporty", "elegant", "trendy", "classic", "chic", "bohemian",
}

var seasonKeywords = []string{"summer", "winter", "monsoon", "spring", "autumn", "fall"}

var latestKeywords = []string{"latest", "newest", "new arrival", "new arrivals", "recent", "just in"}

var stopWords = map[string]struct{}{
	"show": {}, "find": {}, "need": {}, "want": {}, "looking": {}, "look": {},
	"search": {}, "something": {}, "some": {}, "please": {}, "with": {},
	"under": {}, "below": {}, "above": {}, "within": {}, "budget": {},
	"price": {}, "cheap": {}, "that": {}, "this": {}, "have": {}, "like": {},
	"would": {}, "could": {}, "them": {}, "they": {}, "what": {}, "which": {},
	"from": {}, "your": {}, "about": {}, "good": {}, "best": {}, "nice": {},
	"recommend": {}, "suggest": {}, "give": {}, "also": {}, "there": {},
	"anything": {}, "less": {}, "than": {}, "more": {}, "rupees": {},
	"thanks": {}, "thank": {}, "hello": {}, "help": {}, "wear": {},
}
