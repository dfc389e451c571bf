package main

// Cache-related constants.
const (
	// DefaultCachePath is the default path for the describe cache database.
	DefaultCachePath = "~/.sfq/cache/describe.db"

	// DefaultConfigPath is the default path for the connector config file.
	DefaultConfigPath = "~/.sfq/config.yaml"
)

// Common defaults.
const (
	// DefaultFormat is the default record output format.
	DefaultFormat = "table"

	// DefaultLoginURL is the production Salesforce login endpoint.
	DefaultLoginURL = "https://login.salesforce.com"
)
