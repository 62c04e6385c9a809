// File: database/repository/content/content.go
//
// Package contentRepo holds the data access for the marketing-site
// content collections: facilities, testimonials, gallery images,
// achievements and contact messages.
package contentRepo

import (
	"errors"
	"time"
)

// ErrNotFound is returned when no document matches the given id.
var ErrNotFound = errors.New("document not found")

const opTimeout = 5 * time.Second
