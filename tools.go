//go:build tools

package main

// Keeps the swagger generator pinned in go.mod, docs/swagger.json is
// produced by `swag init` before the build.
import (
	_ "github.com/swaggo/swag"
)
