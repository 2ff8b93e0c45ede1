package tokenizer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writeTestDict writes words to a fresh stopword file and returns its path.
func writeTestDict(t testing.TB, words ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "stopwords.txt")
	content := "# test stopwords\n" + strings.Join(words, "\n") + "\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write dictionary: %v", err)
	}
	return path
}

func TestDictionary_FileBacked(t *testing.T) {
	path := writeTestDict(t, "www", "COM", "", "html")

	dict, err := NewDictionary(path)
	if err != nil {
		t.Fatalf("Failed to load dictionary: %v", err)
	}
	defer dict.Close()

	if dict.WordCount() != 3 {
		t.Errorf("WordCount() = %d, want 3", dict.WordCount())
	}
	for _, w := range []string{"www", "com", "Com", "HTML"} {
		if !dict.Contains(w) {
			t.Errorf("Contains(%q) = false, want true", w)
		}
	}
	if dict.Contains("example") {
		t.Error("Contains(\"example\") = true, want false")
	}

	fstPath := strings.TrimSuffix(path, ".txt") + ".fst"
	if _, err := os.Stat(fstPath); err != nil {
		t.Errorf("expected FST file at %s: %v", fstPath, err)
	}
}

func TestDictionary_LoadLeavesTextFileUntouched(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stopwords.txt")
	original := []byte("# keep this header\nwww\nCOM\n# trailing note\nhtml\n")
	if err := os.WriteFile(path, original, 0o644); err != nil {
		t.Fatalf("write dictionary: %v", err)
	}

	for i := 0; i < 2; i++ {
		dict, err := NewDictionary(path)
		if err != nil {
			t.Fatalf("Failed to load dictionary: %v", err)
		}
		if !dict.Contains("com") {
			t.Error("Contains(\"com\") = false, want true")
		}
		dict.Close()

		got, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("read dictionary: %v", err)
		}
		if string(got) != string(original) {
			t.Errorf("load %d changed %s: got %q, want %q", i+1, path, got, original)
		}
	}
}

func TestDictionary_AddKeepsComments(t *testing.T) {
	path := writeTestDict(t, "www")

	dict, err := NewDictionary(path)
	if err != nil {
		t.Fatalf("Failed to load dictionary: %v", err)
	}
	defer dict.Close()

	if err := dict.AddWord("blog"); err != nil {
		t.Fatalf("AddWord: %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read dictionary: %v", err)
	}
	expected := "# test stopwords\nblog\nwww\n"
	if string(got) != expected {
		t.Errorf("saved file = %q, want %q", got, expected)
	}
}

func TestDictionary_AddRemovePersist(t *testing.T) {
	path := writeTestDict(t, "www")

	dict, err := NewDictionary(path)
	if err != nil {
		t.Fatalf("Failed to load dictionary: %v", err)
	}

	if err := dict.AddWord("Blog"); err != nil {
		t.Fatalf("AddWord: %v", err)
	}
	if err := dict.RemoveWord("www"); err != nil {
		t.Fatalf("RemoveWord: %v", err)
	}
	if !dict.Contains("blog") || dict.Contains("www") {
		t.Errorf("unexpected contents after add/remove")
	}
	if err := dict.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	reloaded, err := NewDictionary(path)
	if err != nil {
		t.Fatalf("Failed to reload dictionary: %v", err)
	}
	defer reloaded.Close()

	if !reloaded.Contains("blog") || reloaded.Contains("www") {
		t.Errorf("changes were not persisted to %s", path)
	}
	if reloaded.WordCount() != 1 {
		t.Errorf("WordCount() = %d, want 1", reloaded.WordCount())
	}
}

func TestDictionary_StaleFSTRebuilt(t *testing.T) {
	path := writeTestDict(t, "www")

	dict, err := NewDictionary(path)
	if err != nil {
		t.Fatalf("Failed to load dictionary: %v", err)
	}
	dict.Close()

	if err := os.WriteFile(path, []byte("www\nphp\n"), 0o644); err != nil {
		t.Fatalf("rewrite dictionary: %v", err)
	}

	dict, err = NewDictionary(path)
	if err != nil {
		t.Fatalf("Failed to reload dictionary: %v", err)
	}
	defer dict.Close()

	if !dict.Contains("php") {
		t.Error("Contains(\"php\") = false after editing the text file")
	}
}

func TestDictionary_MissingFile(t *testing.T) {
	_, err := NewDictionary(filepath.Join(t.TempDir(), "missing.txt"))
	if err == nil {
		t.Fatal("expected error for missing dictionary file")
	}
}

func TestMemoryDictionary(t *testing.T) {
	dict, err := NewMemoryDictionary(DefaultStopwords)
	if err != nil {
		t.Fatalf("NewMemoryDictionary: %v", err)
	}
	defer dict.Close()

	if dict.WordCount() != len(DefaultStopwords) {
		t.Errorf("WordCount() = %d, want %d", dict.WordCount(), len(DefaultStopwords))
	}
	if !dict.Contains("WWW") {
		t.Error("Contains(\"WWW\") = false, want true")
	}

	if err := dict.AddWord("blog"); err != nil {
		t.Fatalf("AddWord: %v", err)
	}
	if !dict.Contains("blog") {
		t.Error("Contains(\"blog\") = false after AddWord")
	}
}

func TestMemoryDictionary_Empty(t *testing.T) {
	dict, err := NewMemoryDictionary(nil)
	if err != nil {
		t.Fatalf("NewMemoryDictionary(nil): %v", err)
	}
	defer dict.Close()

	if dict.Contains("www") {
		t.Error("empty dictionary should not contain anything")
	}
}
