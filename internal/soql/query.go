package soql

import "strings"

// SOQL fragments used during query assembly.
const (
	soqlSelect = "SELECT "
	soqlFrom   = " FROM "
	soqlWhere  = " WHERE "
	soqlAnd    = " AND "

	// ModifiedDateField is the timestamp column every temporal filter
	// applies to.
	ModifiedDateField = "LastModifiedDate"
)

// CreateSObjectQuery assembles a SOQL query selecting the given fields from
// the given SObject, restricted by the filter descriptor. An empty
// descriptor yields a query without a WHERE clause.
func CreateSObjectQuery(fieldNames []string, sObjectName string, filter FilterDescriptor) string {
	var query strings.Builder
	query.WriteString(soqlSelect)
	query.WriteString(strings.Join(fieldNames, ","))
	query.WriteString(soqlFrom)
	query.WriteString(sObjectName)

	if filter.IsEmpty() {
		return query.String()
	}

	start, end := filter.Window()
	var conditions []string
	if start != nil {
		conditions = append(conditions, ModifiedDateField+">="+FormatDatetime(*start))
	}
	if end != nil {
		conditions = append(conditions, ModifiedDateField+"<"+FormatDatetime(*end))
	}

	query.WriteString(soqlWhere)
	query.WriteString(strings.Join(conditions, soqlAnd))
	return query.String()
}
