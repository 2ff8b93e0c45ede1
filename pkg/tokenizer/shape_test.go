package tokenizer

import "testing"

func TestIsValidProtocol(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"https:", true},
		{"ftp:", true},
		{"Über:", true},
		{"हिंदी:", true},
		{":", true}, // nothing before the colon still passes
		{"", false},
		{"https", false},
		{"h2:", false},
		{"svn+ssh:", false},
		{"http::", false},
	}

	for _, tt := range tests {
		if got := IsValidProtocol(tt.input); got != tt.expected {
			t.Errorf("IsValidProtocol(%q) = %v, want %v", tt.input, got, tt.expected)
		}
	}
}

func TestIsValidURL(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"https://www.example.com/article/123", true},
		{"ftp://host", true},
		{"https://", true},
		{"://x/y", true},
		{"not a url", false},
		{"", false},
		{"https:/www.example.com", false},
		{"https:x//host", false},
		{"www.example.com/a/b", false},
		{"1http://host", false},
	}

	for _, tt := range tests {
		if got := IsValidURL(SplitDelimiter(tt.input)); got != tt.expected {
			t.Errorf("IsValidURL(%q) = %v, want %v", tt.input, got, tt.expected)
		}
	}
}

func TestIsValidURL_AppendingPathKeepsValid(t *testing.T) {
	tokens := SplitDelimiter("ftp://host")
	if !IsValidURL(tokens) {
		t.Fatalf("IsValidURL(ftp://host) = false")
	}
	for _, seg := range []string{"a", "", "b?c", "#"} {
		tokens = append(tokens, seg)
		if !IsValidURL(tokens) {
			t.Errorf("IsValidURL(%q) = false after appending %q", tokens, seg)
		}
	}
}

func TestShapeOf(t *testing.T) {
	tests := []struct {
		input    string
		expected Shape
	}{
		{"ftp://host", ShapeHostOnly},
		{"ftp://host/", ShapeWithPath},
		{"https://www.example.com/article/123", ShapeWithPath},
		{"example.com", ShapeInvalid},
	}

	for _, tt := range tests {
		if got := ShapeOf(SplitDelimiter(tt.input)); got != tt.expected {
			t.Errorf("ShapeOf(%q) = %v, want %v", tt.input, got, tt.expected)
		}
	}
}
