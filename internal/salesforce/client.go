package salesforce

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// DefaultAPIVersion is the REST API version used when none is configured.
const DefaultAPIVersion = "v56.0"

// DescribeAPI defines the SObject metadata operations the client exposes,
// allowing for mock implementations.
type DescribeAPI interface {
	DescribeSObject(ctx context.Context, sObjectName string) (*DescribeResult, error)
}

// QueryAPI defines SOQL query execution, allowing for mock implementations.
type QueryAPI interface {
	Query(ctx context.Context, soql string) (*QueryResponse, error)
	QueryMore(ctx context.Context, nextRecordsURL string) (*QueryResponse, error)
}

// FieldDescription is one field entry of an SObject describe result.
// CompoundFieldName references the parent field for leaves of a compound
// field such as an address.
type FieldDescription struct {
	Name              string `json:"name"`
	Type              string `json:"type"`
	CompoundFieldName string `json:"compoundFieldName"`
}

// DescribeResult is the metadata returned for a single SObject.
type DescribeResult struct {
	Name   string             `json:"name"`
	Fields []FieldDescription `json:"fields"`
}

// Client is an authenticated Salesforce REST API client.
type Client struct {
	httpClient *http.Client
	auth       AuthContext
	apiVersion string
}

// NewClient creates a client for an authenticated session. An empty
// apiVersion falls back to DefaultAPIVersion.
func NewClient(httpClient *http.Client, auth AuthContext, apiVersion string) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if apiVersion == "" {
		apiVersion = DefaultAPIVersion
	}
	return &Client{httpClient: httpClient, auth: auth, apiVersion: apiVersion}
}

// DescribeSObject fetches the field metadata for the named SObject.
func (c *Client) DescribeSObject(ctx context.Context, sObjectName string) (*DescribeResult, error) {
	if sObjectName == "" {
		return nil, fmt.Errorf("sObject name cannot be empty")
	}

	path := fmt.Sprintf("/services/data/%s/sobjects/%s/describe", c.apiVersion, url.PathEscape(sObjectName))
	var result DescribeResult
	if err := c.get(ctx, path, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// get performs an authenticated GET against the instance and decodes the
// JSON response into out.
func (c *Client) get(ctx context.Context, path string, out any) error {
	endpoint := strings.TrimRight(c.auth.InstanceURL, "/") + path
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.auth.AccessToken)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request to %s failed: %w", path, err)
	}
	defer closeBody(resp.Body)

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response from %s: %w", path, err)
	}

	if resp.StatusCode != http.StatusOK {
		return decodeAPIError(resp.StatusCode, body)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to decode response from %s: %w", path, err)
	}
	return nil
}

// decodeAPIError maps a Salesforce error response body to an *APIError.
// The API returns an array of {message, errorCode} objects.
func decodeAPIError(statusCode int, body []byte) error {
	var apiErrors []struct {
		Message   string `json:"message"`
		ErrorCode string `json:"errorCode"`
	}
	if err := json.Unmarshal(body, &apiErrors); err == nil && len(apiErrors) > 0 {
		return &APIError{
			StatusCode: statusCode,
			ErrorCode:  apiErrors[0].ErrorCode,
			Message:    apiErrors[0].Message,
		}
	}
	return &APIError{StatusCode: statusCode, Message: strings.TrimSpace(string(body))}
}
