package model

import "errors"

var (
	// ErrNotFound is returned by stores when no row matches.
	ErrNotFound = errors.New("not found")

	// ErrInvalidCredentials covers both unknown usernames and wrong
	// passwords; the two cases are deliberately indistinguishable.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrNotAuthenticated guards session operations invoked while logged out.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrDuplicateCard rejects an upload whose extracted text is already
	// stored. Nothing is written in that case.
	ErrDuplicateCard = errors.New("card already stored")

	// ErrExtractionFailed wraps image decode and text recognition failures.
	ErrExtractionFailed = errors.New("text extraction failed")
)
