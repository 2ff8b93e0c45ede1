package tokenizer

import "strings"

// IsValidProtocol reports whether token looks like a scheme: every rune
// but the last is alphabetic and the last is ':'.
//
// A lone ":" is accepted because the letter check runs over an empty range.
// Inputs such as "://x/y" therefore pass the URL shape check.
func IsValidProtocol(token string) bool {
	if token == "" {
		return false
	}
	body, ok := strings.CutSuffix(token, ":")
	if !ok {
		return false
	}
	for _, r := range body {
		if !isAlpha(r) {
			return false
		}
	}
	return true
}

// IsValidURL reports whether the top-level tokens have URL shape:
// at least three tokens, a valid protocol and an empty second token
// (the "//" after the scheme).
func IsValidURL(tokens []string) bool {
	return len(tokens) >= 3 &&
		IsValidProtocol(tokens[0]) &&
		tokens[0] != "" &&
		tokens[1] == ""
}

// Shape is the structure of a URL-shaped token sequence.
type Shape int

const (
	// ShapeInvalid means the tokens are not URL-shaped.
	ShapeInvalid Shape = iota
	// ShapeHostOnly is "scheme://host" with nothing after the host.
	ShapeHostOnly
	// ShapeWithPath is "scheme://host/..." with at least one path token.
	ShapeWithPath
)

func (s Shape) String() string {
	switch s {
	case ShapeHostOnly:
		return "host-only"
	case ShapeWithPath:
		return "with-path"
	default:
		return "invalid"
	}
}

// ShapeOf classifies tokens by URL shape.
func ShapeOf(tokens []string) Shape {
	switch {
	case !IsValidURL(tokens):
		return ShapeInvalid
	case len(tokens) == 3:
		return ShapeHostOnly
	default:
		return ShapeWithPath
	}
}
