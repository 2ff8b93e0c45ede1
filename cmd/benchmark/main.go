package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/kerem-kaynak/url-tokenizer/pkg/tokenizer"
)

const (
	iterations = 100000
	warmup     = 1000

	colorReset = "\033[0m"
	colorBold  = "\033[1m"
	colorGreen = "\033[32m"
	colorDim   = "\033[2m"
)

// urlSample is one benchmark input. Throughput is reported against its length.
type urlSample struct {
	label string
	input string
}

var samples = []urlSample{
	{"host only", "ftp://files.example.org"},
	{"article path", "https://www.example.com/article/123"},
	{"query + fragment", "https://www.example.com/article/123?category=technology#section2"},
	{"deep path", "https://cdn.example.net/static/v2/assets/img/2024/06/hero_banner-large.webp"},
	{"object store", "s3://analytics-bucket/exports/2024-06-01/part-00017.parquet"},
	{"unicode path", "https://de.example.org/wiki/Straße/Größe?lang=de"},
	{"not a url", "www.example.com/no/scheme"},
}

type measurement struct {
	name    string
	nsPerOp float64
	bytes   int
}

func (m measurement) mbPerSec() float64 {
	if m.bytes == 0 || m.nsPerOp == 0 {
		return 0
	}
	return float64(m.bytes) / m.nsPerOp * 1e9 / (1 << 20)
}

func main() {
	log := logrus.New()

	start := time.Now()
	tok, err := tokenizer.NewTokenizer(tokenizer.Config{Keywords: true, Cache: true, Logger: log})
	if err != nil {
		log.WithError(err).Fatal("create tokenizer")
	}
	defer tok.Close()
	log.WithFields(logrus.Fields{
		"stopwords":  tok.StopwordCount(),
		"setup":      time.Since(start).Round(time.Microsecond),
		"iterations": iterations,
	}).Info("tokenizer ready")

	analyze := make([]measurement, 0, len(samples))
	for _, s := range samples {
		analyze = append(analyze, measure(s.label, len(s.input), func() { tokenizer.Analyze(s.input) }))
	}
	printTable("Analyze by URL shape", analyze)

	var keywords []measurement
	for _, s := range samples {
		keywords = append(keywords, measure(s.label, len(s.input), func() {
			tok.ClearCache()
			tok.Analyze(s.input)
		}))
	}
	hot := samples[2].input
	tok.Analyze(hot)
	keywords = append(keywords, measure("cached repeat", len(hot), func() { tok.Analyze(hot) }))
	printTable("Analyze with keywords", keywords)

	segments := tokenizer.SplitDelimiter(hot)
	last := segments[len(segments)-1]
	dict, err := tokenizer.NewMemoryDictionary(tokenizer.DefaultStopwords)
	if err != nil {
		log.WithError(err).Fatal("build stopword dictionary")
	}
	defer dict.Close()
	norm := tokenizer.NewNormalizer(tokenizer.DefaultLanguage)

	stages := []measurement{
		measure("split on '/'", len(hot), func() { tokenizer.SplitDelimiter(hot) }),
		measure("shape check", 0, func() { tokenizer.ShapeOf(segments) }),
		measure("cut ?/# suffix", len(last), func() { tokenizer.SplitSuffix(last) }),
		measure("granularize", len(hot), func() { tokenizer.GranularizeAll(segments) }),
		measure("classify segment", 0, func() { tokenizer.Classify("section2") }),
		measure("stopword lookup", 0, func() { dict.Contains("www") }),
		measure("normalize keyword", 0, func() { norm.Normalize("Technology") }),
	}
	printTable("Pipeline stages (query + fragment)", stages)
}

func measure(name string, size int, fn func()) measurement {
	for i := 0; i < warmup; i++ {
		fn()
	}
	start := time.Now()
	for i := 0; i < iterations; i++ {
		fn()
	}
	elapsed := time.Since(start)
	return measurement{
		name:    name,
		nsPerOp: float64(elapsed.Nanoseconds()) / iterations,
		bytes:   size,
	}
}

func printTable(title string, rows []measurement) {
	nameWidth := len("workload")
	for _, r := range rows {
		nameWidth = max(nameWidth, len(r.name))
	}
	rule := strings.Repeat("-", nameWidth+26)

	fmt.Printf("%s%s%s\n", colorBold, title, colorReset)
	fmt.Printf("%s%-*s %12s %12s%s\n", colorDim, nameWidth, "workload", "ns/op", "MB/s", colorReset)
	fmt.Println(colorDim + rule + colorReset)
	for _, r := range rows {
		throughput := "-"
		if mb := r.mbPerSec(); mb > 0 {
			throughput = fmt.Sprintf("%.1f", mb)
		}
		fmt.Printf("%-*s %s%12.0f%s %12s\n", nameWidth, r.name, colorGreen, r.nsPerOp, colorReset, throughput)
	}
	fmt.Println()
}
