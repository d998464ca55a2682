//go:build tools

// Package tools pins the swag CLI that generates docs/docs.go from the
// handler annotations. Regenerate with:
//
//	go run github.com/swaggo/swag/cmd/swag init -g cmd/api/main.go -o docs
package tools

import (
	_ "github.com/swaggo/swag/cmd/swag"
)
