//go:build tools

// Package tools pins the fake generator used by go:generate.
package tools

import (
	_ "github.com/maxbrunsfeld/counterfeiter/v6"
)
