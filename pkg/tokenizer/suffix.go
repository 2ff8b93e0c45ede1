package tokenizer

import "strings"

// SplitSuffix splits token at the first '?' or '#'.
// The marker itself is dropped. Without a marker it returns (token, "").
//
// Example: "123?category=technology#section2" gives ("123", "category=technology#section2").
func SplitSuffix(token string) (before, suffix string) {
	i := strings.IndexAny(token, "?#")
	if i < 0 {
		return token, ""
	}
	return token[:i], token[i+1:]
}
