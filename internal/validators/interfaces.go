// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators holds the input rules of go-quiz: the shape of a quiz,
// of a partial quiz update, of a submitted answer index and of user
// credentials.
//
// Validators are injected into services; handlers never validate on their
// own.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
