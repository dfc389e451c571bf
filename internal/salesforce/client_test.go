package salesforce

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	client := NewClient(server.Client(), AuthContext{
		AccessToken: "test-token",
		InstanceURL: server.URL,
	}, "v56.0")
	return client, server
}

func TestDescribeSObject(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/services/data/v56.0/sobjects/Account/describe" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-token" {
			t.Errorf("Authorization = %q, want bearer token", got)
		}
		fmt.Fprint(w, `{
			"name": "Account",
			"fields": [
				{"name": "Id", "type": "id"},
				{"name": "BillingAddress", "type": "address"},
				{"name": "BillingCity", "type": "string", "compoundFieldName": "BillingAddress"}
			]
		}`)
	}))

	result, err := client.DescribeSObject(context.Background(), "Account")
	if err != nil {
		t.Fatalf("DescribeSObject returned error: %v", err)
	}

	expected := &DescribeResult{
		Name: "Account",
		Fields: []FieldDescription{
			{Name: "Id", Type: "id"},
			{Name: "BillingAddress", Type: "address"},
			{Name: "BillingCity", Type: "string", CompoundFieldName: "BillingAddress"},
		},
	}
	if diff := cmp.Diff(expected, result); diff != "" {
		t.Errorf("DescribeSObject() mismatch (-want +got):\n%s", diff)
	}
}

func TestDescribeSObjectAPIError(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, `[{"message": "The requested resource does not exist", "errorCode": "NOT_FOUND"}]`)
	}))

	_, err := client.DescribeSObject(context.Background(), "NoSuchObject")
	if err == nil {
		t.Fatal("DescribeSObject expected error, got nil")
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error type = %T, want *APIError", err)
	}
	if apiErr.StatusCode != http.StatusNotFound || apiErr.ErrorCode != "NOT_FOUND" {
		t.Errorf("APIError = %+v, want 404 NOT_FOUND", apiErr)
	}
}

func TestDescribeSObjectEmptyName(t *testing.T) {
	client := NewClient(nil, AuthContext{}, "")
	if _, err := client.DescribeSObject(context.Background(), ""); err == nil {
		t.Error("empty sObject name expected error, got nil")
	}
}

func TestQueryAllFollowsPages(t *testing.T) {
	var pageRequests []string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		pageRequests = append(pageRequests, r.URL.RequestURI())
		switch r.URL.Path {
		case "/services/data/v56.0/query":
			if got := r.URL.Query().Get("q"); got != "SELECT Id FROM Account" {
				t.Errorf("query param q = %q", got)
			}
			fmt.Fprint(w, `{
				"totalSize": 3,
				"done": false,
				"nextRecordsUrl": "/services/data/v56.0/query/01g-next-2000",
				"records": [
					{"attributes": {"type": "Account"}, "Id": "001A"},
					{"attributes": {"type": "Account"}, "Id": "001B"}
				]
			}`)
		case "/services/data/v56.0/query/01g-next-2000":
			fmt.Fprint(w, `{
				"totalSize": 3,
				"done": true,
				"records": [{"attributes": {"type": "Account"}, "Id": "001C"}]
			}`)
		default:
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
	}))

	result, err := QueryAll(context.Background(), client, "SELECT Id FROM Account")
	if err != nil {
		t.Fatalf("QueryAll returned error: %v", err)
	}

	expected := []Record{{"Id": "001A"}, {"Id": "001B"}, {"Id": "001C"}}
	if diff := cmp.Diff(expected, result.Records); diff != "" {
		t.Errorf("records mismatch (-want +got):\n%s", diff)
	}
	if result.TotalSize != 3 {
		t.Errorf("TotalSize = %d, want 3", result.TotalSize)
	}
	if result.Pages != 2 {
		t.Errorf("Pages = %d, want 2", result.Pages)
	}
	if len(pageRequests) != 2 {
		t.Errorf("request count = %d, want 2", len(pageRequests))
	}
}

func TestQueryAllFirstPageError(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprint(w, `[{"message": "unexpected token", "errorCode": "MALFORMED_QUERY"}]`)
	}))

	_, err := QueryAll(context.Background(), client, "SELECT FROM Account")
	if err == nil {
		t.Fatal("QueryAll expected error, got nil")
	}
	var apiErr *APIError
	if !errors.As(err, &apiErr) || apiErr.ErrorCode != "MALFORMED_QUERY" {
		t.Errorf("error = %v, want MALFORMED_QUERY APIError", err)
	}
}

func TestLogin(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/services/oauth2/token" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if err := r.ParseForm(); err != nil {
			t.Fatalf("ParseForm: %v", err)
		}
		if got := r.PostForm.Get("grant_type"); got != "password" {
			t.Errorf("grant_type = %q, want password", got)
		}
		fmt.Fprintf(w, `{"access_token": "00D-token", "instance_url": %q}`, "https://example.my.salesforce.com")
	}))
	t.Cleanup(server.Close)

	auth, err := Login(context.Background(), server.Client(), Credentials{
		ConsumerKey:    "key",
		ConsumerSecret: "secret",
		Username:       "user@example.com",
		Password:       "hunter2",
		LoginURL:       server.URL,
	})
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if auth.AccessToken != "00D-token" {
		t.Errorf("AccessToken = %q", auth.AccessToken)
	}
	if auth.InstanceURL != "https://example.my.salesforce.com" {
		t.Errorf("InstanceURL = %q", auth.InstanceURL)
	}
}

func TestLoginFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprint(w, `{"error": "invalid_grant", "error_description": "authentication failure"}`)
	}))
	t.Cleanup(server.Close)

	_, err := Login(context.Background(), server.Client(), Credentials{
		ConsumerKey:    "key",
		ConsumerSecret: "secret",
		Username:       "user@example.com",
		Password:       "wrong",
		LoginURL:       server.URL,
	})
	if err == nil {
		t.Fatal("Login expected error, got nil")
	}
	var apiErr *APIError
	if !errors.As(err, &apiErr) || apiErr.ErrorCode != "invalid_grant" {
		t.Errorf("error = %v, want invalid_grant APIError", err)
	}
}

func TestLoginIncompleteCredentials(t *testing.T) {
	_, err := Login(context.Background(), http.DefaultClient, Credentials{Username: "user@example.com"})
	if err == nil {
		t.Fatal("Login expected error for incomplete credentials, got nil")
	}
}
