// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Flowdash Authors

package utils

import (
	"github.com/go-resty/resty/v2"
)

// HTTPClient wraps resty.Client. Embedding *resty.Client exposes the full
// resty API while leaving room for application-specific helpers.
//
// Example usage:
//
//	client := utils.NewHTTPClient()
//	resp, err := client.R().Get("http://localhost:3001/auth/me")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent HTTPClient with its own
// configuration, connection pool, and state.
func NewHTTPClient() *HTTPClient {
	return &HTTPClient{Client: resty.New()}
}
