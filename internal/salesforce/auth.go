// Package salesforce provides a thin client for the Salesforce REST API:
// OAuth login, SObject metadata describes and paged SOQL query execution.
package salesforce

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// Credentials holds the connected-app credentials for the OAuth
// username-password flow.
type Credentials struct {
	ConsumerKey    string
	ConsumerSecret string
	Username       string
	Password       string
	LoginURL       string
}

// Validate checks that all credential fields are set.
func (c Credentials) Validate() error {
	var missing []string
	if c.ConsumerKey == "" {
		missing = append(missing, "consumer key")
	}
	if c.ConsumerSecret == "" {
		missing = append(missing, "consumer secret")
	}
	if c.Username == "" {
		missing = append(missing, "username")
	}
	if c.Password == "" {
		missing = append(missing, "password")
	}
	if c.LoginURL == "" {
		missing = append(missing, "login URL")
	}
	if len(missing) > 0 {
		return fmt.Errorf("incomplete Salesforce credentials: missing %s", strings.Join(missing, ", "))
	}
	return nil
}

// AuthContext is an authenticated session: the bearer token and the
// instance URL all subsequent API calls go to.
type AuthContext struct {
	AccessToken string
	InstanceURL string
}

// tokenResponse is the OAuth token endpoint response body.
type tokenResponse struct {
	AccessToken      string `json:"access_token"`
	InstanceURL      string `json:"instance_url"`
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

// Login performs the OAuth username-password grant and returns an
// authenticated session context.
func Login(ctx context.Context, httpClient *http.Client, creds Credentials) (AuthContext, error) {
	if err := creds.Validate(); err != nil {
		return AuthContext{}, err
	}

	form := url.Values{}
	form.Set("grant_type", "password")
	form.Set("client_id", creds.ConsumerKey)
	form.Set("client_secret", creds.ConsumerSecret)
	form.Set("username", creds.Username)
	form.Set("password", creds.Password)

	endpoint := strings.TrimRight(creds.LoginURL, "/") + "/services/oauth2/token"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return AuthContext{}, fmt.Errorf("failed to build login request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := httpClient.Do(req)
	if err != nil {
		return AuthContext{}, fmt.Errorf("login request failed: %w", err)
	}
	defer closeBody(resp.Body)

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return AuthContext{}, fmt.Errorf("failed to read login response: %w", err)
	}

	var token tokenResponse
	if err := json.Unmarshal(body, &token); err != nil {
		return AuthContext{}, fmt.Errorf("failed to decode login response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return AuthContext{}, &APIError{
			StatusCode: resp.StatusCode,
			ErrorCode:  token.Error,
			Message:    token.ErrorDescription,
		}
	}
	if token.AccessToken == "" || token.InstanceURL == "" {
		return AuthContext{}, fmt.Errorf("login response missing access token or instance URL")
	}

	return AuthContext{AccessToken: token.AccessToken, InstanceURL: token.InstanceURL}, nil
}

func closeBody(body io.Closer) {
	// Read errors are already handled by callers; close failures here are
	// not actionable.
	_ = body.Close()
}
