package salesforce

import (
	"context"
)

// CompoundFields is the set of field types the Bulk API cannot select
// directly. Describe results list both the compound parent and its leaf
// components; the parent must be excluded and the leaves kept.
var CompoundFields = map[string]struct{}{
	"address":  {},
	"location": {},
}

// SObjectDescriptor holds the ordered, selectable field catalog of an
// SObject, with compound parents already replaced by their leaf fields.
type SObjectDescriptor struct {
	name   string
	fields []FieldDescription
}

// FromName describes the named SObject through the given API and builds a
// descriptor with compound fields flattened per compoundFields. A failure
// reaching the API is returned as *ConnectionError.
func FromName(ctx context.Context, api DescribeAPI, sObjectName string,
	compoundFields map[string]struct{}) (*SObjectDescriptor, error) {
	result, err := api.DescribeSObject(ctx, sObjectName)
	if err != nil {
		return nil, &ConnectionError{SObject: sObjectName, Err: err}
	}

	fields := make([]FieldDescription, 0, len(result.Fields))
	for _, field := range result.Fields {
		if _, compound := compoundFields[field.Type]; compound {
			// Compound parent, its leaves appear as separate entries.
			continue
		}
		fields = append(fields, field)
	}

	return &SObjectDescriptor{name: sObjectName, fields: fields}, nil
}

// Name returns the SObject name.
func (d *SObjectDescriptor) Name() string {
	return d.name
}

// FieldNames returns the selectable field names in describe order.
func (d *SObjectDescriptor) FieldNames() []string {
	names := make([]string, len(d.fields))
	for i, field := range d.fields {
		names[i] = field.Name
	}
	return names
}
