package service

import "errors"

// Service layer errors for better error handling
var (
	// Generation path
	ErrVaultUnreachable = errors.New("credential vault unreachable")
	ErrProviderRejected = errors.New("generation provider rejected the request")

	// CMS path
	ErrCMSNotConfigured = errors.New("cms credentials not configured")

	// Catalogue path
	ErrArtworkNotFound = errors.New("artwork not found")
)
