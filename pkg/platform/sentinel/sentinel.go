package sentinel

import "errors"

// Sentinel errors for infrastructure facts. Infrastructure layers return
// these (optionally wrapped) so callers can test with errors.Is without
// inspecting messages.
//
// These represent factual states about resources, not validation failures:
// - ErrNotFound: record does not exist upstream
// - ErrExpired: admin session token has expired
//
// For validation errors (bad input, missing fields), use pkg/domain-errors directly.
var (
	ErrNotFound = errors.New("not found")
	ErrExpired  = errors.New("expired")
)
