package authstore

import "errors"

var (
	// ErrEmptyCredentials is returned when the identifier or secret is empty
	// after trimming. Rejected locally, before any network call.
	ErrEmptyCredentials = errors.New("identifier and secret are required")
	// ErrNilAuthenticator is returned when the store is created without an
	// authenticator.
	ErrNilAuthenticator = errors.New("nil authenticator")
	// ErrNilStorage is returned when the store is created without durable
	// storage.
	ErrNilStorage = errors.New("nil storage")
)
