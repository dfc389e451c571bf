package salesforce

import "fmt"

// ConnectionError reports that the Salesforce API could not be reached or
// returned a failure while describing or querying an SObject. It is fatal
// for the current execution; this package performs no retries.
type ConnectionError struct {
	SObject string
	Err     error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("cannot establish connection to Salesforce to describe SObject: '%s': %v", e.SObject, e.Err)
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}

// APIError reports a non-2xx response from the Salesforce REST API.
type APIError struct {
	StatusCode int
	ErrorCode  string
	Message    string
}

func (e *APIError) Error() string {
	if e.ErrorCode != "" {
		return fmt.Sprintf("salesforce API error %d [%s]: %s", e.StatusCode, e.ErrorCode, e.Message)
	}
	return fmt.Sprintf("salesforce API error %d: %s", e.StatusCode, e.Message)
}
