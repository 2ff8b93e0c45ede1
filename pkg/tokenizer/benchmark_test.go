package tokenizer

import (
	"context"
	"testing"
)

const benchURL = "https://www.example.com/article/123?category=technology#section2"

func BenchmarkAnalyze(b *testing.B) {
	for i := 0; i < b.N; i++ {
		Analyze(benchURL)
	}
}

func BenchmarkAnalyze_NotURL(b *testing.B) {
	for i := 0; i < b.N; i++ {
		Analyze("the quick brown fox jumps over the lazy dog")
	}
}

func BenchmarkTokenizer_CacheHit(b *testing.B) {
	tok := newTestTokenizer(b, Config{Cache: true})
	tok.Analyze(benchURL) // Prime the cache

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tok.Analyze(benchURL)
	}
}

func BenchmarkTokenizer_Keywords(b *testing.B) {
	tok := newTestTokenizer(b, Config{Keywords: true})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tok.Analyze(benchURL)
	}
}

func BenchmarkTokenizer_AnalyzeBatch(b *testing.B) {
	tok := newTestTokenizer(b, Config{})
	inputs := make([]string, 256)
	for i := range inputs {
		inputs[i] = benchURL
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := tok.AnalyzeBatch(context.Background(), inputs, 4); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkGranularize(b *testing.B) {
	for i := 0; i < b.N; i++ {
		Granularize("123?category=technology#section2")
	}
}

func BenchmarkDictionary_Contains(b *testing.B) {
	dict, err := NewMemoryDictionary(DefaultStopwords)
	if err != nil {
		b.Fatalf("Failed to build dictionary: %v", err)
	}
	defer dict.Close()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		dict.Contains("www")
	}
}
