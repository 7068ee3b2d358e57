package search

import (
	"context"
	"fmt"
	"strings"
	"time"

	"cloud.google.com/go/civil"
	"github.com/algolia/algoliasearch-client-go/v4/algolia/search"
	"github.com/pfdash/backend/internal/finance"
	"github.com/pfdash/backend/internal/logger"
)

// Config holds Algolia configuration.
type Config struct {
	AppID     string
	APIKey    string // Admin key; the backend both indexes and searches
	IndexName string
}

// AlgoliaClient wraps the Algolia search API client.
type AlgoliaClient struct {
	client    *search.APIClient
	indexName string
}

// NewAlgoliaClient creates a new Algolia search client.
func NewAlgoliaClient(cfg Config) (*AlgoliaClient, error) {
	if cfg.AppID == "" || cfg.APIKey == "" {
		return nil, fmt.Errorf("algolia AppID and APIKey are required")
	}
	if cfg.IndexName == "" {
		cfg.IndexName = "pfdash"
	}

	client, err := search.NewClient(cfg.AppID, cfg.APIKey)
	if err != nil {
		return nil, fmt.Errorf("creating algolia client: %w", err)
	}

	return &AlgoliaClient{
		client:    client,
		indexName: cfg.IndexName,
	}, nil
}

func int32Ptr(v int32) *int32 { return &v }

// ConfigureIndex applies the index settings the search queries rely on.
// Settings are applied asynchronously by Algolia.
func (c *AlgoliaClient) ConfigureIndex(ctx context.Context) error {
	settings := &search.IndexSettings{
		SearchableAttributes: []string{"Note", "Category"},
		// UserId is filter-only so it never comes back as a facet value.
		AttributesForFaceting: []string{
			"filterOnly(UserId)",
			"searchable(Category)",
			"filterOnly(Type)",
			"filterOnly(Currency)",
		},
		NumericAttributesForFiltering: []string{"Amount", "DateUnix"},
		CustomRanking:                 []string{"desc(DateUnix)"},
		AttributesToRetrieve: []string{
			"objectID", "Note", "Category", "Amount", "Currency", "Date", "Type", "Source",
		},
		HitsPerPage: int32Ptr(defaultPageSize),
	}

	resp, err := c.client.SetSettings(c.client.NewApiSetSettingsRequest(c.indexName, settings))
	if err != nil {
		return fmt.Errorf("algolia set settings: %w", err)
	}
	log := logger.FromContext(ctx)
	log.Info().
		Str("index", c.indexName).
		Int64("task_id", resp.TaskID).
		Msg("algolia index settings applied")
	return nil
}

// Index upserts a transaction record. Deleted transactions are removed
// from the index instead.
func (c *AlgoliaClient) Index(ctx context.Context, tx *finance.Transaction) error {
	if !tx.IsActive() {
		return c.Remove(ctx, tx.ID)
	}
	if _, err := c.client.SaveObject(c.client.NewApiSaveObjectRequest(c.indexName, toRecord(tx))); err != nil {
		return fmt.Errorf("algolia save object %s: %w", tx.ID, err)
	}
	return nil
}

// Remove deletes a transaction record from the index.
func (c *AlgoliaClient) Remove(ctx context.Context, transactionID string) error {
	if _, err := c.client.DeleteObject(c.client.NewApiDeleteObjectRequest(c.indexName, transactionID)); err != nil {
		return fmt.Errorf("algolia delete object %s: %w", transactionID, err)
	}
	return nil
}

// Search performs a full-text search via Algolia.
func (c *AlgoliaClient) Search(ctx context.Context, params Params) (*Result, error) {
	params = params.normalized()
	filters := buildFilters(params)

	searchParams := search.SearchParamsObjectAsSearchParams(
		search.NewSearchParamsObject().
			SetQuery(params.Query).
			SetHitsPerPage(int32(params.PageSize)).
			SetPage(int32(params.Page)).
			SetFilters(filters),
	)

	resp, err := c.client.SearchSingleIndex(c.client.NewApiSearchSingleIndexRequest(c.indexName).WithSearchParams(searchParams))
	if err != nil {
		return nil, fmt.Errorf("algolia search: %w", err)
	}

	log := logger.FromContext(ctx)
	txs := make([]*finance.Transaction, 0, len(resp.Hits))
	for _, hit := range resp.Hits {
		tx := hitToTransaction(hit.AdditionalProperties, params.UserID)
		if tx == nil {
			log.Warn().Msg("algolia: skipping hit with no objectID")
			continue
		}
		txs = append(txs, tx)
	}

	result := &Result{Transactions: txs, Page: params.Page}
	if resp.NbHits != nil {
		result.TotalCount = int(*resp.NbHits)
	}
	if resp.NbPages != nil {
		result.TotalPages = int(*resp.NbPages)
	}
	return result, nil
}

func toRecord(tx *finance.Transaction) map[string]any {
	return map[string]any{
		"objectID": tx.ID,
		"UserId":   tx.UserID,
		"Note":     tx.Note,
		"Category": tx.Category,
		"Amount":   tx.Amount,
		"Currency": tx.Currency,
		"Date":     tx.Date.String(),
		"DateUnix": dateUnix(tx.Date),
		"Type":     string(tx.Type),
		"Source":   string(tx.Source),
	}
}

func dateUnix(d civil.Date) int64 {
	return d.In(time.UTC).Unix()
}

// buildFilters constructs the Algolia filter string. UserId is always
// enforced for tenant isolation.
func buildFilters(params Params) string {
	parts := []string{fmt.Sprintf("UserId:%q", params.UserID)}

	if params.Category != "" {
		parts = append(parts, fmt.Sprintf("Category:%q", params.Category))
	}
	if params.Type != "" {
		parts = append(parts, fmt.Sprintf("Type:%q", string(params.Type)))
	}
	if params.StartDate != nil {
		parts = append(parts, fmt.Sprintf("DateUnix >= %d", dateUnix(*params.StartDate)))
	}
	if params.EndDate != nil {
		parts = append(parts, fmt.Sprintf("DateUnix <= %d", dateUnix(*params.EndDate)))
	}

	return strings.Join(parts, " AND ")
}

// hitToTransaction converts an Algolia hit back into a transaction. Only
// the retrieved attributes are filled in.
func hitToTransaction(props map[string]any, userID string) *finance.Transaction {
	id, _ := props["objectID"].(string)
	if id == "" {
		return nil
	}

	tx := &finance.Transaction{ID: id, UserID: userID, State: finance.StateActive}
	if v, ok := props["Note"].(string); ok {
		tx.Note = v
	}
	if v, ok := props["Category"].(string); ok {
		tx.Category = v
	}
	if v, ok := props["Amount"].(float64); ok {
		tx.Amount = v
	}
	if v, ok := props["Currency"].(string); ok {
		tx.Currency = v
	}
	if v, ok := props["Date"].(string); ok {
		if d, err := civil.ParseDate(v); err == nil {
			tx.Date = d
		}
	}
	if v, ok := props["Type"].(string); ok {
		tx.Type = finance.TransactionType(strings.ToLower(v))
	}
	if v, ok := props["Source"].(string); ok {
		tx.Source = finance.Source(v)
	}
	return tx
}
