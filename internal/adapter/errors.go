package adapter

import "errors"

var (
	// ErrUnauthorized maps a 401 response: the access token is missing or
	// expired.
	ErrUnauthorized = errors.New("client unauthorized")

	// ErrConflict maps a 409 response from the remote collaborator.
	ErrConflict = errors.New("remote conflict")
)
