// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"errors"
	"fmt"
	"strings"
)

// Error taxonomy. NotFound and ProtectedFolder surface to callers;
// InvalidFormat is recovered silently on load but surfaced on import;
// persistence failures are always recovered internally (logged, saveError
// event, document stays valid in memory).
var (
	ErrNotFound        = errors.New("not found")
	ErrProtectedFolder = errors.New("protected folder")
	ErrInvalidFormat   = errors.New("invalid document format")
	ErrPersistence     = errors.New("persistence failure")
)

// InvalidFormatError carries the structural validation failures that made
// a loaded or imported document unusable. errors.Is(err, ErrInvalidFormat)
// matches it.
type InvalidFormatError struct {
	Errors []string
}

func (e *InvalidFormatError) Error() string {
	if len(e.Errors) == 0 {
		return ErrInvalidFormat.Error()
	}
	return fmt.Sprintf("%s: %s", ErrInvalidFormat, strings.Join(e.Errors, "; "))
}

func (e *InvalidFormatError) Unwrap() error {
	return ErrInvalidFormat
}
