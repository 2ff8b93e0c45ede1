package tokenizer

// Result holds the structural and granular breakdown of one input.
// A Result is read-only once returned; Tokenizer may hand the same
// value to several callers.
type Result struct {
	IsValidURL bool `json:"is_valid_url"`

	// Nil when absent. Filename is also nil for host-only URLs.
	Protocol    *string  `json:"protocol,omitempty"`
	Host        *string  `json:"host,omitempty"`
	Directories []string `json:"directories"`
	Filename    *string  `json:"filename,omitempty"`
	Suffix      *string  `json:"suffix,omitempty"`

	Words        []string `json:"words"`
	Numbers      []string `json:"numbers"`
	Alphanumeric []string `json:"alphanumeric"`
	Punctuations []string `json:"punctuations"`

	// Tokens is the raw split on '/'.
	Tokens         []string `json:"tokens"`
	GranularTokens []string `json:"granular_tokens"`

	// Keywords is only filled by a Tokenizer configured with keywords enabled.
	Keywords []string `json:"keywords,omitempty"`
}

// Analyze tokenizes input and classifies every granular token.
// Classification runs whether or not the input is URL-shaped.
func Analyze(input string) *Result {
	r := &Result{
		Directories:  []string{},
		Words:        []string{},
		Numbers:      []string{},
		Alphanumeric: []string{},
		Punctuations: []string{},
		Tokens:       SplitDelimiter(input),
	}

	r.IsValidURL = IsValidURL(r.Tokens)
	decompose(r, ShapeOf(r.Tokens))

	r.GranularTokens = GranularizeAll(r.Tokens)
	if r.GranularTokens == nil {
		r.GranularTokens = []string{}
	}
	for _, tok := range r.GranularTokens {
		r.add(tok, Classify(tok))
	}

	return r
}

// decompose fills the structural fields from r.Tokens.
func decompose(r *Result, shape Shape) {
	switch shape {
	case ShapeWithPath:
		protocol := r.Tokens[0][:len(r.Tokens[0])-1]
		host := r.Tokens[2]
		path := r.Tokens[3:]
		last := len(path) - 1

		r.Protocol = &protocol
		r.Host = &host
		r.Directories = append(r.Directories, path[:last]...)
		filename, suffix := SplitSuffix(path[last])
		r.Filename = &filename
		r.Suffix = &suffix

	case ShapeHostOnly:
		protocol := r.Tokens[0][:len(r.Tokens[0])-1]
		host, suffix := SplitSuffix(r.Tokens[2])

		r.Protocol = &protocol
		r.Host = &host
		r.Suffix = &suffix
	}
}

func (r *Result) add(token string, c Category) {
	switch c {
	case CategoryNumber:
		r.Numbers = append(r.Numbers, token)
	case CategoryWord:
		r.Words = append(r.Words, token)
	case CategoryAlphanumeric:
		r.Alphanumeric = append(r.Alphanumeric, token)
	case CategoryPunctuation:
		r.Punctuations = append(r.Punctuations, token)
	}
}

// Value returns *s, or "" when s is nil.
func Value(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
