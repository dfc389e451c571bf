package source

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"sfq/internal/salesforce"
)

// mockDescribeAPI implements salesforce.DescribeAPI for resolver tests.
type mockDescribeAPI struct {
	fields []salesforce.FieldDescription
	err    error
}

func (m *mockDescribeAPI) DescribeSObject(_ context.Context, sObjectName string) (*salesforce.DescribeResult, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &salesforce.DescribeResult{Name: sObjectName, Fields: m.fields}, nil
}

func simpleFields(names ...string) []salesforce.FieldDescription {
	fields := make([]salesforce.FieldDescription, len(names))
	for i, name := range names {
		fields[i] = salesforce.FieldDescription{Name: name, Type: "string"}
	}
	return fields
}

func mustRunStart(t *testing.T) time.Time {
	t.Helper()
	runStart, err := time.Parse(time.RFC3339, "2019-03-12T12:00:00Z")
	if err != nil {
		t.Fatalf("bad run start time: %v", err)
	}
	return runStart
}

func TestGetSObjectQueryFullCatalog(t *testing.T) {
	api := &mockDescribeAPI{fields: simpleFields("Id", "Name", "Amount")}
	config := SourceConfig{}

	query, err := config.GetSObjectQuery(context.Background(), api, "Opportunity", nil, mustRunStart(t))
	if err != nil {
		t.Fatalf("GetSObjectQuery returned error: %v", err)
	}
	if query != "SELECT Id,Name,Amount FROM Opportunity" {
		t.Errorf("query = %q", query)
	}
}

func TestGetSObjectQuerySchemaNarrowsInCatalogOrder(t *testing.T) {
	api := &mockDescribeAPI{fields: simpleFields("Id", "Name", "Amount")}
	config := SourceConfig{}

	// Schema order differs from catalog order on purpose.
	schema := NewSchema("Amount", "Id")
	query, err := config.GetSObjectQuery(context.Background(), api, "Opportunity", schema, mustRunStart(t))
	if err != nil {
		t.Fatalf("GetSObjectQuery returned error: %v", err)
	}
	if query != "SELECT Id,Amount FROM Opportunity" {
		t.Errorf("query = %q, want catalog-ordered fields", query)
	}
}

func TestGetSObjectQueryEmptyIntersection(t *testing.T) {
	api := &mockDescribeAPI{fields: simpleFields("Id")}
	config := SourceConfig{}

	_, err := config.GetSObjectQuery(context.Background(), api, "Account", NewSchema("OtherField"), mustRunStart(t))
	if err == nil {
		t.Fatal("GetSObjectQuery expected error, got nil")
	}

	var illegalErr *IllegalInputError
	if !errors.As(err, &illegalErr) {
		t.Fatalf("error type = %T, want *IllegalInputError", err)
	}
	if !strings.Contains(err.Error(), "OtherField") || !strings.Contains(err.Error(), "Id") {
		t.Errorf("error should name schema and catalog fields, got %q", err.Error())
	}
}

func TestGetSObjectQueryDescribeFailure(t *testing.T) {
	api := &mockDescribeAPI{err: errors.New("dial tcp: connection refused")}
	config := SourceConfig{}

	_, err := config.GetSObjectQuery(context.Background(), api, "Account", nil, mustRunStart(t))
	if err == nil {
		t.Fatal("GetSObjectQuery expected error, got nil")
	}
	var connErr *salesforce.ConnectionError
	if !errors.As(err, &connErr) {
		t.Fatalf("error type = %T, want *salesforce.ConnectionError", err)
	}
}

func TestGetSObjectQueryIntervalTakesPrecedence(t *testing.T) {
	api := &mockDescribeAPI{fields: simpleFields("Id")}
	config := SourceConfig{
		DatetimeAfter: "2019-03-01T00:00:00Z",
		// Range properties set and valid, but interval must win.
		DurationRaw: "1 days",
		OffsetRaw:   "2 hours",
	}

	query, err := config.GetSObjectQuery(context.Background(), api, "Account", nil, mustRunStart(t))
	if err != nil {
		t.Fatalf("GetSObjectQuery returned error: %v", err)
	}
	expected := "SELECT Id FROM Account WHERE LastModifiedDate>=2019-03-01T00:00:00Z"
	if query != expected {
		t.Errorf("query = %q, want %q", query, expected)
	}
}

func TestGetSObjectQueryIntervalBothBounds(t *testing.T) {
	api := &mockDescribeAPI{fields: simpleFields("Id")}
	config := SourceConfig{
		DatetimeAfter:  "2019-03-01T00:00:00Z",
		DatetimeBefore: "2019-04-01T00:00:00Z",
	}

	query, err := config.GetSObjectQuery(context.Background(), api, "Account", nil, mustRunStart(t))
	if err != nil {
		t.Fatalf("GetSObjectQuery returned error: %v", err)
	}
	expected := "SELECT Id FROM Account" +
		" WHERE LastModifiedDate>=2019-03-01T00:00:00Z" +
		" AND LastModifiedDate<2019-04-01T00:00:00Z"
	if query != expected {
		t.Errorf("query = %q, want %q", query, expected)
	}
}

func TestGetSObjectQueryRangeMode(t *testing.T) {
	api := &mockDescribeAPI{fields: simpleFields("Id")}
	config := SourceConfig{
		DurationRaw: "1 days",
		OffsetRaw:   "2 hours",
	}

	query, err := config.GetSObjectQuery(context.Background(), api, "Account", nil, mustRunStart(t))
	if err != nil {
		t.Fatalf("GetSObjectQuery returned error: %v", err)
	}
	expected := "SELECT Id FROM Account" +
		" WHERE LastModifiedDate>=2019-03-11T10:00:00Z" +
		" AND LastModifiedDate<2019-03-12T10:00:00Z"
	if query != expected {
		t.Errorf("query = %q, want %q", query, expected)
	}
}

func TestGetSObjectQueryNoFiltersMeansFullExtract(t *testing.T) {
	api := &mockDescribeAPI{fields: simpleFields("Id", "Name")}
	config := SourceConfig{}

	query, err := config.GetSObjectQuery(context.Background(), api, "Contact", nil, mustRunStart(t))
	if err != nil {
		t.Fatalf("GetSObjectQuery returned error: %v", err)
	}
	if query != "SELECT Id,Name FROM Contact" {
		t.Errorf("query = %q, want unfiltered query", query)
	}
}

func TestGetSObjectQueryExcludesCompoundParents(t *testing.T) {
	api := &mockDescribeAPI{fields: []salesforce.FieldDescription{
		{Name: "Id", Type: "id"},
		{Name: "BillingAddress", Type: "address"},
		{Name: "BillingCity", Type: "string", CompoundFieldName: "BillingAddress"},
	}}
	config := SourceConfig{}

	query, err := config.GetSObjectQuery(context.Background(), api, "Account", nil, mustRunStart(t))
	if err != nil {
		t.Fatalf("GetSObjectQuery returned error: %v", err)
	}
	if query != "SELECT Id,BillingCity FROM Account" {
		t.Errorf("query = %q, want compound parent excluded", query)
	}
}
