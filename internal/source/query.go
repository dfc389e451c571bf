package source

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"sfq/internal/salesforce"
	"sfq/internal/soql"
)

// IllegalInputError reports that the narrowing schema and the SObject
// metadata have no fields in common, so no query can be built.
type IllegalInputError struct {
	SchemaFields  []string
	SObjectFields []string
}

func (e *IllegalInputError) Error() string {
	return fmt.Sprintf("None of the fields indicated in schema are present in sObject metadata."+
		" Schema: '%s'. SObject fields: '%s'",
		strings.Join(e.SchemaFields, ","), strings.Join(e.SObjectFields, ","))
}

// GetSObjectQuery generates a SOQL query for the named SObject based on its
// metadata and the configured filter properties. Only fields present in the
// optional narrowing schema are selected; compound fields are already
// flattened by the describe step to satisfy the Bulk API limitation. The
// filter properties must have passed ValidateFilters beforehand.
func (c *SourceConfig) GetSObjectQuery(ctx context.Context, api salesforce.DescribeAPI,
	sObjectName string, schema *Schema, runStartTime time.Time) (string, error) {
	descriptor, err := salesforce.FromName(ctx, api, sObjectName, salesforce.CompoundFields)
	if err != nil {
		return "", err
	}
	sObjectFields := descriptor.FieldNames()

	fieldNames := sObjectFields
	if schema != nil {
		fieldNames = nil
		for _, name := range sObjectFields {
			if schema.HasField(name) {
				fieldNames = append(fieldNames, name)
			}
		}
		if len(fieldNames) == 0 {
			return "", &IllegalInputError{
				SchemaFields:  schema.FieldNames(),
				SObjectFields: sObjectFields,
			}
		}
	}

	filter, err := c.filterDescriptor(runStartTime)
	if err != nil {
		return "", err
	}

	query := soql.CreateSObjectQuery(fieldNames, sObjectName, filter)
	log.Debug().Str("sobject", sObjectName).Str("query", query).Msg("generated SObject query")
	return query, nil
}

// filterDescriptor resolves the filter mode: interval when either datetime
// bound is set, otherwise a range anchored at the run start time.
func (c *SourceConfig) filterDescriptor(runStartTime time.Time) (soql.FilterDescriptor, error) {
	start, err := soql.ParseDatetime(PropertyDatetimeAfter, c.DatetimeAfter)
	if err != nil {
		return soql.FilterDescriptor{}, err
	}
	end, err := soql.ParseDatetime(PropertyDatetimeBefore, c.DatetimeBefore)
	if err != nil {
		return soql.FilterDescriptor{}, err
	}

	if start != nil || end != nil {
		return soql.IntervalFilter(start, end), nil
	}

	duration, err := c.Duration()
	if err != nil {
		return soql.FilterDescriptor{}, err
	}
	offset, err := c.Offset()
	if err != nil {
		return soql.FilterDescriptor{}, err
	}
	return soql.RangeFilter(runStartTime, duration, offset), nil
}
