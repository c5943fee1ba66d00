// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Flowdash Authors

package session

import "sync"

// Cookie is the client-side persistence record for one named value.
type Cookie struct {
	Name   string
	Value  string
	Path   string
	MaxAge int
}

// CookieJar persists cookies across client restarts. The session layer
// stores the bearer token under the contract's token key and nothing else.
type CookieJar interface {
	// Set stores or replaces the cookie under cookie.Name.
	Set(cookie Cookie)

	// Get returns the cookie stored under name, if any.
	Get(name string) (Cookie, bool)

	// Delete removes the cookie stored under name. Deleting an absent
	// cookie is a no-op.
	Delete(name string)
}

// memoryJar is an in-process CookieJar. Embedding environments replace it
// with a browser- or disk-backed implementation.
type memoryJar struct {
	mu      sync.RWMutex
	cookies map[string]Cookie
}

// NewMemoryJar returns an empty in-memory CookieJar safe for concurrent use.
func NewMemoryJar() CookieJar {
	return &memoryJar{cookies: make(map[string]Cookie)}
}

func (j *memoryJar) Set(cookie Cookie) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.cookies[cookie.Name] = cookie
}

func (j *memoryJar) Get(name string) (Cookie, bool) {
	j.mu.RLock()
	defer j.mu.RUnlock()
	cookie, ok := j.cookies[name]
	return cookie, ok
}

func (j *memoryJar) Delete(name string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	delete(j.cookies, name)
}
