// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators enforces the request rules of the catalog API.
//
// Each entity family has its own Validator. Every validator collects all
// violations of a value before returning, so callers get one
// *ValidationError listing each failing field instead of only the first.
// Validation never touches storage; uniqueness is left to the store.
package validators

import "context"

// Validator validates the provided value and optionally restricts
// the check to the named fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
