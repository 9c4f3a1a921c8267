// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

package platform

import (
	"net/http"
	"os"
	"time"
)

// NewHTTPClient returns an HTTP client configured with proxy settings.
// Respects HTTP_PROXY, HTTPS_PROXY, and NO_PROXY environment variables.
func NewHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			Proxy:               http.ProxyFromEnvironment,
			MaxIdleConnsPerHost: 4,
			IdleConnTimeout:     90 * time.Second,
		},
	}
}

// HasProxy checks if any proxy is configured.
// Checks lowercase first (takes precedence per Unix convention).
func HasProxy() bool {
	proxyVars := []string{"http_proxy", "https_proxy", "HTTP_PROXY", "HTTPS_PROXY"}
	for _, v := range proxyVars {
		if os.Getenv(v) != "" {
			return true
		}
	}

	return false
}
