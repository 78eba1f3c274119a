package mq

// ProductRow is one products row as canal flattens it; every column arrives
// as a string and may be missing.
type ProductRow struct {
	ID                 string `json:"id"`
	Title              string `json:"title"`
	Description        string `json:"description"`
	Price              string `json:"price"`
	DiscountPercentage string `json:"discount_percentage"`
	Rating             string `json:"rating"`
	Stock              string `json:"stock"`
	Brand              string `json:"brand"`
	Category           string `json:"category"`
	Thumbnail          string `json:"thumbnail"`
	Images             string `json:"images"`
	CreatedAt          string `json:"created_at"`
	UpdatedAt          string `json:"updated_at"`
}

type CanalMessageProducts struct {
	Data      []ProductRow      `json:"data"`
	Database  string            `json:"database"`
	Es        int64             `json:"es"`
	Gtid      string            `json:"gtid"`
	ID        int64             `json:"id"`
	IsDdl     bool              `json:"isDdl"`
	MysqlType map[string]string `json:"mysqlType"`
	Old       []map[string]any  `json:"old"`
	PkNames   []string          `json:"pkNames"`
	SQL       string            `json:"sql"`
	SQLType   map[string]int    `json:"sqlType"`
	Table     string            `json:"table"`
	Ts        int64             `json:"ts"`
	Type      string            `json:"type"`
}
