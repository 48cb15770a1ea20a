// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 BankCore Identity Contributors

package errutil

import (
	"testing"

	"github.com/samber/oops"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// AssertErrorCode asserts that err carries the given oops code.
func AssertErrorCode(t *testing.T, err error, code string) {
	t.Helper()
	oopsErr, ok := oops.AsOops(err)
	require.True(t, ok, "expected oops error, got %T", err)
	assert.Equal(t, code, oopsErr.Code())
}

// AssertErrorContext asserts that err carries key=value in its oops context.
func AssertErrorContext(t *testing.T, err error, key string, value any) {
	t.Helper()
	oopsErr, ok := oops.AsOops(err)
	require.True(t, ok, "expected oops error, got %T", err)
	ctx := oopsErr.Context()
	assert.Contains(t, ctx, key)
	assert.Equal(t, value, ctx[key])
}

// Failure describes how an infrastructure error should be classified.
// Empty Code and Operation are not checked.
type Failure struct {
	// Class is the sentinel the error must wrap, e.g. a storage or
	// configuration marker.
	Class     error
	Code      string
	Operation string
}

// WithOperation returns a copy of f expecting the given operation context.
func (f Failure) WithOperation(operation string) Failure {
	f.Operation = operation
	return f
}

// AssertFailure asserts that err wraps f.Class and carries f's code and
// operation context when they are set.
func AssertFailure(t *testing.T, err error, f Failure) {
	t.Helper()
	require.Error(t, err)
	require.NotNil(t, f.Class, "failure class must be set")
	assert.ErrorIs(t, err, f.Class)
	if f.Code != "" {
		AssertErrorCode(t, err, f.Code)
	}
	if f.Operation != "" {
		AssertErrorContext(t, err, "operation", f.Operation)
	}
}
