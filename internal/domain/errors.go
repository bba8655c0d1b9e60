package domain

import "errors"

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")

	// ErrCartNotFound indicates no cart exists for the requested id.
	// Kept distinct from ErrNotFound so the HTTP layer can answer 404
	// for the cart itself but treat missing collaborator rows as a
	// server-side failure.
	ErrCartNotFound = errors.New("cart not found")
)
