//go:build tools

// Package werkstatt pins the code generators run through go generate.
// The mocks under mocks/ are produced by mockgen.
package werkstatt

import (
	_ "go.uber.org/mock/mockgen"
)
