package tokenizer

// Category identifies the character class of a granular token.
type Category int

const (
	CategoryNumber Category = iota
	CategoryWord
	CategoryAlphanumeric
	CategoryPunctuation
)

func (c Category) String() string {
	switch c {
	case CategoryNumber:
		return "number"
	case CategoryWord:
		return "word"
	case CategoryAlphanumeric:
		return "alphanumeric"
	default:
		return "punctuation"
	}
}

// Classify assigns a granular token to exactly one category.
// Number and Word must be checked before Alphanumeric, which accepts both.
func Classify(token string) Category {
	switch {
	case IsNumber(token):
		return CategoryNumber
	case IsWord(token):
		return CategoryWord
	case IsAlphanumeric(token):
		return CategoryAlphanumeric
	default:
		return CategoryPunctuation
	}
}
