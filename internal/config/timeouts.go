// Package config provides configuration structures and defaults for the application.
package config

import "time"

// Timeouts defines standard timeout values used throughout the application.
type Timeouts struct {
	// HTTP is the timeout for Salesforce REST API requests
	HTTP time.Duration

	// Login is the timeout for the OAuth token exchange
	Login time.Duration

	// DB is the timeout for opening the local cache database
	DB time.Duration

	// CacheTTL is how long a cached SObject describe stays fresh
	CacheTTL time.Duration
}

// DefaultTimeouts returns the default timeout configuration.
func DefaultTimeouts() Timeouts {
	return Timeouts{
		HTTP:     30 * time.Second,
		Login:    10 * time.Second,
		DB:       30 * time.Second,
		CacheTTL: 24 * time.Hour,
	}
}
