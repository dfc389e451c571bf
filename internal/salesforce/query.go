package salesforce

import (
	"context"
	"fmt"
	"net/url"
)

// Record is a single SObject row keyed by field name.
type Record map[string]any

// QueryResponse is one page of SOQL query results.
type QueryResponse struct {
	TotalSize      int      `json:"totalSize"`
	Done           bool     `json:"done"`
	NextRecordsURL string   `json:"nextRecordsUrl"`
	Records        []Record `json:"records"`
}

// QueryResult contains all records of a fully drained query.
type QueryResult struct {
	Records   []Record
	TotalSize int
	Pages     int
}

// Query executes a SOQL query and returns the first result page.
func (c *Client) Query(ctx context.Context, soql string) (*QueryResponse, error) {
	path := fmt.Sprintf("/services/data/%s/query?q=%s", c.apiVersion, url.QueryEscape(soql))
	return c.queryPage(ctx, path)
}

// QueryMore fetches a subsequent result page by its nextRecordsUrl.
func (c *Client) QueryMore(ctx context.Context, nextRecordsURL string) (*QueryResponse, error) {
	return c.queryPage(ctx, nextRecordsURL)
}

func (c *Client) queryPage(ctx context.Context, path string) (*QueryResponse, error) {
	var page QueryResponse
	if err := c.get(ctx, path, &page); err != nil {
		return nil, err
	}
	for _, record := range page.Records {
		// The attributes envelope is API bookkeeping, not row data.
		delete(record, "attributes")
	}
	return &page, nil
}

// QueryAll executes a SOQL query and follows nextRecordsUrl links until the
// result set is drained.
func QueryAll(ctx context.Context, api QueryAPI, soql string) (QueryResult, error) {
	page, err := api.Query(ctx, soql)
	if err != nil {
		return QueryResult{}, fmt.Errorf("query failed: %w", err)
	}

	result := QueryResult{
		Records:   page.Records,
		TotalSize: page.TotalSize,
		Pages:     1,
	}

	for !page.Done && page.NextRecordsURL != "" {
		page, err = api.QueryMore(ctx, page.NextRecordsURL)
		if err != nil {
			return QueryResult{}, fmt.Errorf("query page %d failed: %w", result.Pages+1, err)
		}
		result.Records = append(result.Records, page.Records...)
		result.Pages++
	}

	return result, nil
}
