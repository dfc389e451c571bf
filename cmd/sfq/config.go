package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"sfq/internal/salesforce"
	"sfq/internal/source"
)

// ConnectorConfig holds the Salesforce connection settings loaded from the
// config file, overridable through SFQ_* environment variables.
type ConnectorConfig struct {
	LoginURL       string `yaml:"login_url"`
	Username       string `yaml:"username"`
	Password       string `yaml:"password"`
	ConsumerKey    string `yaml:"consumer_key"`
	ConsumerSecret string `yaml:"consumer_secret"`
	APIVersion     string `yaml:"api_version,omitempty"`
}

// LoadConnectorConfig reads the config file, then applies environment
// overrides. A missing file is not an error so a fully env-configured run
// works without one.
func LoadConnectorConfig(path string) (ConnectorConfig, error) {
	cfg := ConnectorConfig{LoginURL: DefaultLoginURL}

	expanded, err := expandPath(path)
	if err != nil {
		return cfg, err
	}

	data, err := os.ReadFile(expanded)
	if err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config file %s: %w", expanded, err)
		}
	} else if !os.IsNotExist(err) {
		return cfg, fmt.Errorf("failed to read config file %s: %w", expanded, err)
	}

	applyEnvOverride(&cfg.LoginURL, "SFQ_LOGIN_URL")
	applyEnvOverride(&cfg.Username, "SFQ_USERNAME")
	applyEnvOverride(&cfg.Password, "SFQ_PASSWORD")
	applyEnvOverride(&cfg.ConsumerKey, "SFQ_CONSUMER_KEY")
	applyEnvOverride(&cfg.ConsumerSecret, "SFQ_CONSUMER_SECRET")
	applyEnvOverride(&cfg.APIVersion, "SFQ_API_VERSION")

	return cfg, nil
}

func applyEnvOverride(target *string, envName string) {
	if value := os.Getenv(envName); value != "" {
		*target = value
	}
}

// Credentials converts the config to salesforce credentials.
func (c ConnectorConfig) Credentials() salesforce.Credentials {
	return salesforce.Credentials{
		ConsumerKey:    c.ConsumerKey,
		ConsumerSecret: c.ConsumerSecret,
		Username:       c.Username,
		Password:       c.Password,
		LoginURL:       c.LoginURL,
	}
}

// ExtractJob is one extraction described in a job file.
type ExtractJob struct {
	Name           string   `yaml:"name,omitempty"`
	Description    string   `yaml:"description,omitempty"`
	SObject        string   `yaml:"sobject"`
	DatetimeAfter  string   `yaml:"datetimeAfter,omitempty"`
	DatetimeBefore string   `yaml:"datetimeBefore,omitempty"`
	Duration       string   `yaml:"duration,omitempty"`
	Offset         string   `yaml:"offset,omitempty"`
	Schema         string   `yaml:"schema,omitempty"` // path to a schema file
	Fields         []string `yaml:"fields,omitempty"` // inline narrowing field list
	Format         string   `yaml:"format,omitempty"`
}

// SourceConfig converts the job's filter properties to a source config.
func (j ExtractJob) SourceConfig() source.SourceConfig {
	return source.SourceConfig{
		DatetimeAfter:  j.DatetimeAfter,
		DatetimeBefore: j.DatetimeBefore,
		DurationRaw:    j.Duration,
		OffsetRaw:      j.Offset,
	}
}

// NarrowingSchema resolves the job's schema, preferring the inline field
// list over the schema file. Returns nil when the job selects all fields.
func (j ExtractJob) NarrowingSchema() (*source.Schema, error) {
	if len(j.Fields) > 0 {
		return source.NewSchema(j.Fields...), nil
	}
	if j.Schema != "" {
		return source.LoadSchema(j.Schema)
	}
	return nil, nil
}

// JobCollection is a set of extraction jobs run in order.
type JobCollection struct {
	Jobs []ExtractJob `yaml:"jobs"`
}

// ParseJobFile parses job file bytes as a collection, falling back to a
// single job document.
func ParseJobFile(data []byte) (JobCollection, error) {
	var collection JobCollection
	if err := yaml.Unmarshal(data, &collection); err == nil && len(collection.Jobs) > 0 {
		return collection, nil
	}

	var job ExtractJob
	if err := yaml.Unmarshal(data, &job); err != nil {
		return JobCollection{}, fmt.Errorf("failed to parse job file: %w", err)
	}
	if job.SObject == "" {
		return JobCollection{}, fmt.Errorf("job file names no sobject")
	}
	return JobCollection{Jobs: []ExtractJob{job}}, nil
}
