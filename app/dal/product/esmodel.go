package product

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/elastic/go-elasticsearch/v8"
)

const defaultSearchSize = 100

var (
	_ CatalogModel = (*ESCatalogModel)(nil)
	_ IndexModel   = (*ESCatalogModel)(nil)
)

var searchFields = []string{"title.keyword", "description.keyword", "category.keyword", "brand.keyword"}

type ESCatalogModel struct {
	client     *elasticsearch.Client
	index      string
	searchSize int
}

func NewESCatalogModel(client *elasticsearch.Client, index string, searchSize int) *ESCatalogModel {
	if searchSize <= 0 {
		searchSize = defaultSearchSize
	}
	return &ESCatalogModel{
		client:     client,
		index:      index,
		searchSize: searchSize,
	}
}

func (m *ESCatalogModel) SearchCtx(ctx context.Context, term string) ([]*Products, error) {
	term = strings.ToLower(strings.TrimSpace(term))

	query := map[string]any{"match_all": map[string]any{}}
	if term != "" {
		pattern := "*" + escapeWildcard(term) + "*"
		should := make([]any, 0, len(searchFields))
		for _, field := range searchFields {
			should = append(should, map[string]any{
				"wildcard": map[string]any{
					field: map[string]any{
						"value":            pattern,
						"case_insensitive": true,
					},
				},
			})
		}
		query = map[string]any{
			"bool": map[string]any{
				"should":               should,
				"minimum_should_match": 1,
			},
		}
	}

	return m.search(ctx, map[string]any{
		"query": query,
		"sort":  []any{map[string]any{"id": "asc"}},
	}, m.searchSize, 0)
}

func (m *ESCatalogModel) FetchBatchCtx(ctx context.Context, limit, offset int) ([]*Products, error) {
	if limit <= 0 {
		return []*Products{}, nil
	}
	if offset < 0 {
		offset = 0
	}
	return m.search(ctx, map[string]any{
		"query": map[string]any{"match_all": map[string]any{}},
		"sort":  []any{map[string]any{"id": "asc"}},
	}, limit, offset)
}

func (m *ESCatalogModel) search(ctx context.Context, body map[string]any, size, from int) ([]*Products, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encode search body: %w", err)
	}

	res, err := m.client.Search(
		m.client.Search.WithContext(ctx),
		m.client.Search.WithIndex(m.index),
		m.client.Search.WithBody(bytes.NewReader(payload)),
		m.client.Search.WithSize(size),
		m.client.Search.WithFrom(from),
	)
	if err != nil {
		return nil, fmt.Errorf("es search call: %w", err)
	}
	defer res.Body.Close()

	respBody, _ := io.ReadAll(res.Body)
	if res.IsError() {
		return nil, fmt.Errorf("es search status %s: %s", res.Status(), strings.TrimSpace(string(respBody)))
	}

	var decoded struct {
		Hits struct {
			Hits []struct {
				Source Products `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.Unmarshal(respBody, &decoded); err != nil {
		return nil, fmt.Errorf("decode search response: %w", err)
	}

	out := make([]*Products, 0, len(decoded.Hits.Hits))
	for _, hit := range decoded.Hits.Hits {
		p := hit.Source
		out = append(out, p.Normalize())
	}
	return out, nil
}

func (m *ESCatalogModel) UpsertCtx(ctx context.Context, p *Products) error {
	if p == nil || strings.TrimSpace(p.Id) == "" {
		return fmt.Errorf("product id is required")
	}

	payload := map[string]any{
		"doc":           p.Normalize(),
		"doc_as_upsert": true,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode product document: %w", err)
	}

	res, err := m.client.Update(m.index, p.Id, bytes.NewReader(body), m.client.Update.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("es update call: %w", err)
	}
	defer res.Body.Close()

	respBody, _ := io.ReadAll(res.Body)
	if res.IsError() {
		return fmt.Errorf("es update status %s: %s", res.Status(), strings.TrimSpace(string(respBody)))
	}
	return nil
}

func (m *ESCatalogModel) DeleteCtx(ctx context.Context, id string) error {
	res, err := m.client.Delete(m.index, id, m.client.Delete.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("es delete call: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	respBody, _ := io.ReadAll(res.Body)
	if res.IsError() {
		return fmt.Errorf("es delete status %s: %s", res.Status(), strings.TrimSpace(string(respBody)))
	}
	return nil
}

func escapeWildcard(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `*`, `\*`, `?`, `\?`)
	return r.Replace(s)
}
