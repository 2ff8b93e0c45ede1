package tokenizer

import (
	"context"
	"io"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// DefaultCacheSize is the default number of cached results.
const DefaultCacheSize = 10_000

// Config controls optional Tokenizer features.
type Config struct {
	// Cache memoizes results per input string.
	Cache     bool
	CacheSize int

	// Keywords fills Result.Keywords with normalized, stemmed terms.
	Keywords bool
	Language string

	// StopwordsPath points to a stopword list; empty uses DefaultStopwords.
	StopwordsPath string

	Logger logrus.FieldLogger
}

// Tokenizer wraps Analyze with caching, keyword extraction and batching.
// It is safe for concurrent use.
type Tokenizer struct {
	log        logrus.FieldLogger
	stopwords  *Dictionary
	normalizer *Normalizer
	cache      *lru.Cache[string, *Result]
}

// NewTokenizer creates a tokenizer from cfg.
func NewTokenizer(cfg Config) (*Tokenizer, error) {
	t := &Tokenizer{log: cfg.Logger}
	if t.log == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		t.log = discard
	}

	if cfg.Cache {
		size := cfg.CacheSize
		if size <= 0 {
			size = DefaultCacheSize
		}
		cache, err := lru.New[string, *Result](size)
		if err != nil {
			return nil, err
		}
		t.cache = cache
	}

	if cfg.Keywords {
		dict, err := loadStopwords(cfg.StopwordsPath)
		if err != nil {
			return nil, err
		}
		t.stopwords = dict
		t.normalizer = NewNormalizer(cfg.Language)
		t.log.WithFields(logrus.Fields{
			"stopwords": dict.WordCount(),
			"path":      cfg.StopwordsPath,
		}).Debug("stopword dictionary loaded")
	}

	return t, nil
}

func loadStopwords(path string) (*Dictionary, error) {
	if path == "" {
		return NewMemoryDictionary(DefaultStopwords)
	}
	return NewDictionary(path)
}

// Analyze returns the breakdown of input, from cache when enabled.
// The returned Result must not be modified.
func (t *Tokenizer) Analyze(input string) *Result {
	if t.cache != nil {
		if r, ok := t.cache.Get(input); ok {
			return r
		}
	}

	r := Analyze(input)
	if t.normalizer != nil {
		r.Keywords = t.keywords(r)
	}

	if t.cache != nil {
		t.cache.Add(input, r)
	}
	return r
}

// keywords normalizes word and alphanumeric tokens, drops stopwords
// and deduplicates in first-seen order.
func (t *Tokenizer) keywords(r *Result) []string {
	seen := make(map[string]struct{})
	var out []string

	for _, tok := range r.GranularTokens {
		switch Classify(tok) {
		case CategoryWord, CategoryAlphanumeric:
		default:
			continue
		}
		if t.stopwords.Contains(tok) {
			continue
		}

		kw := t.normalizer.Normalize(tok)
		if kw == "" || t.stopwords.Contains(kw) {
			continue
		}
		if _, exists := seen[kw]; !exists {
			seen[kw] = struct{}{}
			out = append(out, kw)
		}
	}

	return out
}

// AnalyzeBatch analyzes inputs concurrently with at most workers goroutines.
// Results keep the order of inputs.
func (t *Tokenizer) AnalyzeBatch(ctx context.Context, inputs []string, workers int) ([]*Result, error) {
	if workers <= 0 {
		workers = 1
	}

	results := make([]*Result, len(inputs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, input := range inputs {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = t.Analyze(input)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	t.log.WithFields(logrus.Fields{
		"inputs":  len(inputs),
		"workers": workers,
	}).Debug("batch analyzed")
	return results, nil
}

// Close releases resources (call when done with tokenizer).
func (t *Tokenizer) Close() error {
	if t.stopwords != nil {
		return t.stopwords.Close()
	}
	return nil
}

// StopwordCount returns the number of stopwords, or 0 when keywords are disabled.
func (t *Tokenizer) StopwordCount() int {
	if t.stopwords == nil {
		return 0
	}
	return t.stopwords.WordCount()
}

// CacheSize returns the number of cached results.
func (t *Tokenizer) CacheSize() int {
	if t.cache == nil {
		return 0
	}
	return t.cache.Len()
}

// ClearCache clears the result cache.
func (t *Tokenizer) ClearCache() {
	if t.cache != nil {
		t.cache.Purge()
	}
}

// CacheEnabled returns true if caching is enabled.
func (t *Tokenizer) CacheEnabled() bool {
	return t.cache != nil
}
