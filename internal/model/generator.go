package model

import "github.com/passgen/passgen-go/internal/crypto"

// GenerateRequest represents a password generation request from the CLI, the
// REPL or the interactive menu.
// An empty Classes slice means every class; Random overrides Classes.
type GenerateRequest struct {
	Length  int
	Count   int
	Classes []crypto.Class
	Random  bool
}

// GenerateResponse represents the passwords produced for a request.
type GenerateResponse struct {
	Passwords  []string
	Classes    []crypto.Class
	Randomized bool
}
