package tokenizer

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/blevesearch/vellum"
)

// DefaultStopwords are URL noise terms dropped from keywords when no
// dictionary file is configured.
var DefaultStopwords = []string{
	"amp", "asp", "aspx", "cgi", "co", "com", "default", "edu", "gov",
	"htm", "html", "http", "https", "index", "info", "io", "jsp", "net",
	"org", "php", "utm", "www",
}

// Dictionary holds stopwords in an FST for fast lookups.
// A file-backed dictionary keeps a .fst next to its .txt source;
// an in-memory one never touches disk.
type Dictionary struct {
	fst      *vellum.FST
	words    map[string]struct{} // Source of truth for modifications
	comments []string            // "#" lines, written back above the words
	fstPath  string
	txtPath  string
	mu       sync.RWMutex
}

// NewDictionary loads a stopword list from txtPath into an FST.
// If the FST doesn't exist, builds it from the text file. Loading never
// modifies the text file.
func NewDictionary(txtPath string) (*Dictionary, error) {
	fstPath := strings.TrimSuffix(txtPath, ".txt") + ".fst"

	d := &Dictionary{
		words:   make(map[string]struct{}, 64),
		fstPath: fstPath,
		txtPath: txtPath,
	}

	if err := d.loadTextFile(); err != nil {
		return nil, fmt.Errorf("load stopwords %s: %w", txtPath, err)
	}

	if err := d.loadOrBuildFST(); err != nil {
		return nil, fmt.Errorf("build stopword fst %s: %w", fstPath, err)
	}

	return d, nil
}

// NewMemoryDictionary builds an in-memory FST from words.
func NewMemoryDictionary(words []string) (*Dictionary, error) {
	d := &Dictionary{words: make(map[string]struct{}, len(words))}
	for _, w := range words {
		if w = strings.TrimSpace(w); w != "" {
			d.words[strings.ToLower(w)] = struct{}{}
		}
	}

	if err := d.rebuildFST(); err != nil {
		return nil, fmt.Errorf("build stopword fst: %w", err)
	}
	return d, nil
}

// loadTextFile reads words from the source text file.
func (d *Dictionary) loadTextFile() error {
	file, err := os.Open(d.txtPath)
	if err != nil {
		return err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word == "" {
			continue
		}
		if strings.HasPrefix(word, "#") {
			d.comments = append(d.comments, word)
			continue
		}
		d.words[strings.ToLower(word)] = struct{}{}
	}
	return scanner.Err()
}

// loadOrBuildFST loads existing FST or builds a new one.
func (d *Dictionary) loadOrBuildFST() error {
	if fst, err := vellum.Open(d.fstPath); err == nil {
		if fst.Len() == len(d.words) {
			d.fst = fst
			return nil
		}
		// stale: the text file was edited by hand
		fst.Close()
	}

	return d.buildFST()
}

// Contains checks if a word is a stopword (case-insensitive).
func (d *Dictionary) Contains(word string) bool {
	lower := strings.ToLower(word)

	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.fst == nil {
		return false
	}
	_, exists, _ := d.fst.Get([]byte(lower))
	return exists
}

// AddWord adds a word to the dictionary and rebuilds FST.
func (d *Dictionary) AddWord(word string) error {
	lower := strings.ToLower(strings.TrimSpace(word))
	if lower == "" {
		return nil
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	d.words[lower] = struct{}{}
	return d.rebuildFST()
}

// RemoveWord removes a word from the dictionary and rebuilds FST.
func (d *Dictionary) RemoveWord(word string) error {
	lower := strings.ToLower(strings.TrimSpace(word))

	d.mu.Lock()
	defer d.mu.Unlock()

	delete(d.words, lower)
	return d.rebuildFST()
}

// RebuildFST rebuilds the FST from the current word set and, for a
// file-backed dictionary, saves both files to disk.
func (d *Dictionary) RebuildFST() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.rebuildFST()
}

// rebuildFST rebuilds FST and saves the text file without locking
// (caller must hold lock).
func (d *Dictionary) rebuildFST() error {
	if err := d.buildFST(); err != nil {
		return err
	}
	if d.txtPath == "" {
		return nil
	}
	return d.saveTextFile()
}

// buildFST replaces the FST with one built from the current word set.
// Only the .fst file is written.
func (d *Dictionary) buildFST() error {
	if d.fst != nil {
		d.fst.Close()
		d.fst = nil
	}

	if d.fstPath == "" {
		return d.buildMemoryFST()
	}

	fstFile, err := os.Create(d.fstPath)
	if err != nil {
		return err
	}

	if err := insertSorted(fstFile, d.sortedWords()); err != nil {
		fstFile.Close()
		return err
	}
	fstFile.Close()

	fst, err := vellum.Open(d.fstPath)
	if err != nil {
		return err
	}
	d.fst = fst
	return nil
}

func (d *Dictionary) buildMemoryFST() error {
	var buf bytes.Buffer
	if err := insertSorted(&buf, d.sortedWords()); err != nil {
		return err
	}

	fst, err := vellum.Load(buf.Bytes())
	if err != nil {
		return err
	}
	d.fst = fst
	return nil
}

// insertSorted writes an FST of words to w. Words must be sorted.
func insertSorted(w io.Writer, words []string) error {
	builder, err := vellum.New(w, nil)
	if err != nil {
		return err
	}

	for _, word := range words {
		if err := builder.Insert([]byte(word), 0); err != nil {
			builder.Close()
			return err
		}
	}
	return builder.Close()
}

func (d *Dictionary) sortedWords() []string {
	sorted := make([]string, 0, len(d.words))
	for word := range d.words {
		sorted = append(sorted, word)
	}
	sort.Strings(sorted)
	return sorted
}

// saveTextFile writes the comments and the current word set back to the text file.
func (d *Dictionary) saveTextFile() error {
	file, err := os.Create(d.txtPath)
	if err != nil {
		return err
	}
	defer file.Close()

	lines := append(append([]string{}, d.comments...), d.sortedWords()...)
	for _, line := range lines {
		if _, err := file.WriteString(line + "\n"); err != nil {
			return err
		}
	}
	return nil
}

// Close releases FST resources.
func (d *Dictionary) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.fst != nil {
		err := d.fst.Close()
		d.fst = nil
		return err
	}
	return nil
}

// WordCount returns the number of words in the dictionary.
func (d *Dictionary) WordCount() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.words)
}
