// Package render formats tokenizer results as plain text.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/kerem-kaynak/url-tokenizer/pkg/tokenizer"
)

const indent = "    "

// FormatTokens renders tokens as a bracketed, newline-separated list of
// single-quoted entries:
//
//	[
//	    'www',
//	    'example',
//	]
func FormatTokens(tokens []string) string {
	var b strings.Builder
	b.WriteString("[")
	for _, tok := range tokens {
		fmt.Fprintf(&b, "\n%s'%s',", indent, tok)
	}
	if len(tokens) > 0 {
		b.WriteString("\n")
	}
	b.WriteString("]\n")
	return b.String()
}

// FormatGranular renders each granular token followed by its characters:
//
//	[
//	    www => 'w', 'w', 'w'
//	]
func FormatGranular(tokens []string) string {
	var b strings.Builder
	b.WriteString("[")
	for _, tok := range tokens {
		fmt.Fprintf(&b, "\n%s%s => ", indent, tok)
		i := 0
		for _, r := range tok {
			if i > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "'%c'", r)
			i++
		}
	}
	if len(tokens) > 0 {
		b.WriteString("\n")
	}
	b.WriteString("]\n")
	return b.String()
}

// Validity returns the sentence shown for the URL shape check.
func Validity(r *tokenizer.Result) string {
	if r.IsValidURL {
		return "The input is a valid URL."
	}
	return "The input is not a valid URL."
}

type section struct {
	label string
	value string
}

// Report writes every field of r with a label. Absent fields print empty.
func Report(w io.Writer, r *tokenizer.Result) error {
	sections := []section{
		{"Protocol", tokenizer.Value(r.Protocol) + "\n"},
		{"Host", tokenizer.Value(r.Host) + "\n"},
		{"Directories", FormatTokens(r.Directories)},
		{"Filename", tokenizer.Value(r.Filename) + "\n"},
		{"URL Suffix", tokenizer.Value(r.Suffix) + "\n"},
		{"Word", FormatTokens(r.Words)},
		{"Punctuation", FormatTokens(r.Punctuations)},
		{"Number", FormatTokens(r.Numbers)},
		{"Alphanumeric", FormatTokens(r.Alphanumeric)},
	}
	if r.Keywords != nil {
		sections = append(sections, section{"Keywords", FormatTokens(r.Keywords)})
	}
	sections = append(sections, section{"Granular breakdown", FormatGranular(r.GranularTokens)})

	if _, err := fmt.Fprintf(w, "%s\n\n", Validity(r)); err != nil {
		return err
	}
	for _, s := range sections {
		if _, err := fmt.Fprintf(w, "%s:\n%s\n", s.label, s.value); err != nil {
			return err
		}
	}
	return nil
}
