package main

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"sfq/internal/cache"
	"sfq/internal/config"
	"sfq/internal/salesforce"
	"sfq/internal/source"
)

// session bundles the Salesforce client and the describe cache for one
// command invocation. The client is created lazily so cache hits do not
// require a login.
type session struct {
	flags  *CommandFlags
	client *salesforce.Client
	cache  *cache.Cache
}

// newSession opens the describe cache (unless bypassed) and returns a
// session ready for lazy connection.
func newSession(cmdFlags *CommandFlags) (*session, error) {
	s := &session{flags: cmdFlags}

	if !cmdFlags.NoCache {
		path, err := expandPath(cmdFlags.CachePath)
		if err != nil {
			return nil, err
		}
		timeouts := config.DefaultTimeouts()
		describeCache, err := cache.Open(path, timeouts.CacheTTL)
		if err != nil {
			return nil, fmt.Errorf("failed to open describe cache: %w", err)
		}
		s.cache = describeCache
	}

	return s, nil
}

// Close releases the session's cache handle.
func (s *session) Close() {
	if s.cache != nil {
		if err := s.cache.Close(); err != nil {
			log.Warn().Err(err).Msg("failed to close describe cache")
		}
	}
}

// ensureClient logs in on first use and returns the API client.
func (s *session) ensureClient(ctx context.Context) (*salesforce.Client, error) {
	if s.client != nil {
		return s.client, nil
	}

	cfg, err := LoadConnectorConfig(s.flags.ConfigPath)
	if err != nil {
		return nil, err
	}
	if s.flags.APIVersion != "" {
		cfg.APIVersion = s.flags.APIVersion
	}

	httpClient := &http.Client{Timeout: s.flags.HTTPTimeout}
	auth, err := salesforce.Login(ctx, httpClient, cfg.Credentials())
	if err != nil {
		return nil, fmt.Errorf("salesforce login failed: %w", err)
	}
	log.Debug().Str("instance", auth.InstanceURL).Msg("authenticated")

	s.client = salesforce.NewClient(httpClient, auth, cfg.APIVersion)
	return s.client, nil
}

// DescribeSObject implements salesforce.DescribeAPI with cache awareness:
// a fresh cached catalog short-circuits the API call, a miss or --refresh
// fetches and re-populates the cache.
func (s *session) DescribeSObject(ctx context.Context, sObjectName string) (*salesforce.DescribeResult, error) {
	if s.cache != nil && !s.flags.Refresh {
		entry, err := s.cache.Get(sObjectName)
		if err == nil {
			log.Debug().Str("sobject", sObjectName).Msg("describe served from cache")
			return &salesforce.DescribeResult{Name: entry.SObject, Fields: entry.Fields}, nil
		}
		if !cache.IsNotFound(err) && !cache.IsExpired(err) {
			log.Warn().Err(err).Str("sobject", sObjectName).Msg("describe cache lookup failed")
		}
	}

	client, err := s.ensureClient(ctx)
	if err != nil {
		return nil, err
	}
	result, err := client.DescribeSObject(ctx, sObjectName)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Put(sObjectName, result.Fields); err != nil {
			log.Warn().Err(err).Str("sobject", sObjectName).Msg("failed to cache describe result")
		}
	}
	return result, nil
}

// buildSObjectQuery validates the filter properties and resolves the SOQL
// query for one SObject. Validation problems are reported all at once.
func buildSObjectQuery(ctx context.Context, s *session, sObjectName string,
	cfg source.SourceConfig, schema *source.Schema, runStartTime time.Time) (string, error) {
	var collector source.FailureCollector
	cfg.ValidateFilters(&collector)
	if collector.HasFailures() {
		for _, failure := range collector.Failures() {
			fmt.Println(failure)
		}
		return "", fmt.Errorf("filter validation found %d problem(s)", len(collector.Failures()))
	}

	return cfg.GetSObjectQuery(ctx, s, sObjectName, schema, runStartTime)
}

// sourceConfigFromFlags converts the filter flags to a source config.
func sourceConfigFromFlags(cmdFlags *CommandFlags) source.SourceConfig {
	return source.SourceConfig{
		DatetimeAfter:  cmdFlags.DatetimeAfter,
		DatetimeBefore: cmdFlags.DatetimeBefore,
		DurationRaw:    cmdFlags.Duration,
		OffsetRaw:      cmdFlags.Offset,
	}
}

// schemaFromFlags resolves the narrowing schema, preferring --fields over
// --schema. Returns nil when neither is set.
func schemaFromFlags(cmdFlags *CommandFlags) (*source.Schema, error) {
	if fields := parseFields(cmdFlags.Fields); len(fields) > 0 {
		return source.NewSchema(fields...), nil
	}
	if cmdFlags.SchemaPath != "" {
		return source.LoadSchema(cmdFlags.SchemaPath)
	}
	return nil, nil
}

// columnsFromQuery recovers the ordered select list from a SOQL query for
// record formatting.
func columnsFromQuery(query string) []string {
	selectList := strings.TrimPrefix(query, "SELECT ")
	if idx := strings.Index(selectList, " FROM "); idx != -1 {
		selectList = selectList[:idx]
	}
	return strings.Split(selectList, ",")
}
