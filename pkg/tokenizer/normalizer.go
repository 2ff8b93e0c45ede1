package tokenizer

import (
	"strings"
	"unicode"

	"github.com/kljensen/snowball"
	"golang.org/x/text/unicode/norm"
)

// DefaultLanguage is the snowball stemmer language used for keywords.
const DefaultLanguage = "english"

// NormalizerFunc defines a single normalization step.
type NormalizerFunc func(string) string

// Normalizer applies a configurable pipeline of normalization steps
// to turn granular tokens into keywords.
type Normalizer struct {
	steps []NormalizerFunc
}

// NewNormalizer creates a normalizer with the default pipeline for language.
func NewNormalizer(language string) *Normalizer {
	if language == "" {
		language = DefaultLanguage
	}
	return &Normalizer{
		steps: []NormalizerFunc{
			NFKCCompose,
			RemoveControlChars,
			Lowercase,
			RemoveCombiningMarks,
			Stemmer(language),
		},
	}
}

// NewNormalizerWithSteps creates a normalizer with a custom pipeline.
func NewNormalizerWithSteps(steps ...NormalizerFunc) *Normalizer {
	return &Normalizer{steps: steps}
}

// Normalize applies all configured steps in order.
func (n *Normalizer) Normalize(s string) string {
	for _, step := range n.steps {
		s = step(s)
	}
	return s
}

// NFKCCompose applies Unicode NFKC normalization.
// Compatibility forms fold to their canonical letters: ﬁ → fi, ① → 1.
func NFKCCompose(s string) string {
	return norm.NFKC.String(s)
}

// RemoveControlChars removes Unicode control characters.
func RemoveControlChars(s string) string {
	var result strings.Builder
	result.Grow(len(s))
	for _, r := range s {
		if !unicode.IsControl(r) {
			result.WriteRune(r)
		}
	}
	return result.String()
}

// Lowercase converts to lowercase.
func Lowercase(s string) string {
	return strings.ToLower(s)
}

// RemoveCombiningMarks removes Unicode combining characters (category Mn).
// Runs after NFKC, so only marks without a precomposed form remain.
func RemoveCombiningMarks(s string) string {
	var result strings.Builder
	result.Grow(len(s))
	for _, r := range s {
		if !unicode.Is(unicode.Mn, r) {
			result.WriteRune(r)
		}
	}
	return result.String()
}

// Stemmer returns a step applying the snowball stemmer for language.
// Unsupported languages leave the input unchanged.
func Stemmer(language string) NormalizerFunc {
	return func(s string) string {
		stemmed, err := snowball.Stem(s, language, true)
		if err != nil {
			return s
		}
		return stemmed
	}
}
