package tokenizer

import (
	"unicode/utf8"
)

// Delimiter separates top-level tokens.
const Delimiter = '/'

// SplitDelimiter splits input on every Delimiter.
// k delimiters yield k+1 tokens; empty tokens are kept, so joining the
// result with "/" gives back input. An empty input yields one empty token.
func SplitDelimiter(input string) []string {
	tokens := make([]string, 0, 4)
	start := 0

	for i := 0; i < len(input); i++ {
		if input[i] == Delimiter {
			tokens = append(tokens, input[start:i])
			start = i + 1
		}
	}

	return append(tokens, input[start:])
}

// Granularize splits a token into maximal alphanumeric runs and
// single-rune punctuation tokens. Empty tokens produce nothing.
func Granularize(token string) []string {
	var out []string
	start := 0

	for i := 0; i < len(token); {
		r, size := utf8.DecodeRuneInString(token[i:])
		if isAlnum(r) {
			i += size
			continue
		}
		if i > start {
			out = append(out, token[start:i])
		}
		out = append(out, token[i:i+size])
		i += size
		start = i
	}

	if start < len(token) {
		out = append(out, token[start:])
	}
	return out
}

// GranularizeAll applies Granularize to each token in order and concatenates the results.
func GranularizeAll(tokens []string) []string {
	var out []string
	for _, tok := range tokens {
		out = append(out, Granularize(tok)...)
	}
	return out
}
