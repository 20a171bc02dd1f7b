package domain

import (
	"net/url"
	"time"
)

type PostCore struct {
	ID string
	// Content is HTML-escaped text. Escaping is applied exactly once, when the post
	// is created; everything past the service layer treats it as opaque.
	Content string
	Created time.Time
}

type PostFed struct {
	PostCore
	// ApID and Url are the same string for local posts; federated consumers
	// dereference the id, so it must match what the HTTP surface serves.
	ApID   *url.URL
	Url    *url.URL
	Author UserCore
}
