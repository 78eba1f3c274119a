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

// IndexParams describes the product index the catalog reads from.
type IndexParams struct {
	IndexName        string
	NumberOfShards   int
	NumberOfReplicas int
}

// EnsureIndex creates the product index when it is missing. An existing index
// is left untouched.
func EnsureIndex(ctx context.Context, client *elasticsearch.Client, params IndexParams) (created bool, err error) {
	if client == nil || strings.TrimSpace(params.IndexName) == "" {
		return false, fmt.Errorf("missing elasticsearch client or index name")
	}

	shards := params.NumberOfShards
	if shards <= 0 {
		shards = 1
	}
	replicas := params.NumberOfReplicas
	if replicas < 0 {
		replicas = 0
	}

	existsRes, err := client.Indices.Exists(
		[]string{params.IndexName},
		client.Indices.Exists.WithContext(ctx),
	)
	if err != nil {
		return false, fmt.Errorf("check index existence: %w", err)
	}
	defer existsRes.Body.Close()

	if existsRes.StatusCode != http.StatusNotFound {
		if existsRes.IsError() {
			resp, _ := io.ReadAll(existsRes.Body)
			return false, fmt.Errorf("index existence status %s: %s", existsRes.Status(), strings.TrimSpace(string(resp)))
		}
		return false, nil
	}

	body, err := buildIndexDefinition(shards, replicas)
	if err != nil {
		return false, err
	}

	createRes, err := client.Indices.Create(
		params.IndexName,
		client.Indices.Create.WithContext(ctx),
		client.Indices.Create.WithBody(bytes.NewReader(body)),
	)
	if err != nil {
		return false, fmt.Errorf("create index: %w", err)
	}
	defer createRes.Body.Close()

	if createRes.IsError() {
		resp, _ := io.ReadAll(createRes.Body)
		return false, fmt.Errorf("create index status %s: %s", createRes.Status(), strings.TrimSpace(string(resp)))
	}
	return true, nil
}

func buildIndexDefinition(shards, replicas int) ([]byte, error) {
	textWithKeyword := func(ignoreAbove int) map[string]any {
		return map[string]any{
			"type": "text",
			"fields": map[string]any{
				"keyword": map[string]any{
					"type":         "keyword",
					"ignore_above": ignoreAbove,
				},
			},
		}
	}

	definition := map[string]any{
		"settings": map[string]any{
			"number_of_shards":   shards,
			"number_of_replicas": replicas,
		},
		"mappings": map[string]any{
			"properties": map[string]any{
				"id":                 map[string]any{"type": "keyword"},
				"title":              textWithKeyword(256),
				"description":        textWithKeyword(4096),
				"category":           textWithKeyword(256),
				"brand":              textWithKeyword(256),
				"price":              map[string]any{"type": "double"},
				"discountPercentage": map[string]any{"type": "double"},
				"rating":             map[string]any{"type": "double"},
				"stock":              map[string]any{"type": "long"},
				"thumbnail":          map[string]any{"type": "keyword", "index": false},
				"images":             map[string]any{"type": "keyword", "index": false},
				"reviews":            map[string]any{"type": "object", "enabled": false},
			},
		},
	}

	payload, err := json.Marshal(definition)
	if err != nil {
		return nil, fmt.Errorf("encode index definition: %w", err)
	}
	return payload, nil
}
