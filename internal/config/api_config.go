package config

import (
	"time"
)

const (
	apiBaseURLVar  = "RF_API_BASE_URL"
	httpTimeoutVar = "RF_HTTP_TIMEOUT"
)

// APIConfig describes how to reach the RF Online backend. The base URL covers
// everything under /api; all authenticated calls add a bearer token on top.
type APIConfig interface {
	GetAPIBaseURL() string
	GetHTTPTimeout() time.Duration
}

type API struct{}

var _ APIConfig = API{}

func (API) GetAPIBaseURL() string {
	return GetEnv(apiBaseURLVar, "http://localhost:5000")
}

// GetHTTPTimeout returns the transport-level timeout for API calls. Zero means
// the transport default; no application-level timeout is layered on top.
func (API) GetHTTPTimeout() time.Duration {
	raw := GetEnv(httpTimeoutVar, "")
	if raw == "" {
		return 0
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0
	}
	return d
}
