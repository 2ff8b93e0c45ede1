package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/kerem-kaynak/url-tokenizer/pkg/tokenizer"
)

type command struct {
	usage   string
	minArgs int
	run     func(dict *tokenizer.Dictionary, path string, words []string) error
}

var commands = map[string]command{
	"add": {
		usage:   "add <word> [word...]    Add URL noise terms",
		minArgs: 1,
		run:     eachWord("Added", (*tokenizer.Dictionary).AddWord),
	},
	"remove": {
		usage:   "remove <word> [word...] Remove URL noise terms",
		minArgs: 1,
		run:     eachWord("Removed", (*tokenizer.Dictionary).RemoveWord),
	},
	"contains": {
		usage:   "contains <word>         Check if a keyword would be dropped",
		minArgs: 1,
		run:     contains,
	},
	"rebuild": {
		usage: "rebuild                 Rebuild FST from text file",
		run: func(dict *tokenizer.Dictionary, _ string, _ []string) error {
			if err := dict.RebuildFST(); err != nil {
				return fmt.Errorf("rebuild FST: %w", err)
			}
			fmt.Printf("FST rebuilt. Total words: %d\n", dict.WordCount())
			return nil
		},
	},
	"stats": {
		usage: "stats                   Show dictionary statistics",
		run: func(dict *tokenizer.Dictionary, path string, _ []string) error {
			fmt.Printf("Dictionary: %s\n", path)
			fmt.Printf("Word count: %d\n", dict.WordCount())
			return nil
		},
	},
}

var commandOrder = []string{"add", "remove", "contains", "rebuild", "stats"}

func main() {
	if len(os.Args) < 3 {
		printUsage()
		os.Exit(1)
	}

	dictPath, name := os.Args[1], os.Args[2]
	cmd, ok := commands[name]
	if !ok {
		fmt.Printf("Unknown command: %s\n", name)
		printUsage()
		os.Exit(1)
	}
	words := wordArgs(name, cmd.minArgs)

	dict, err := tokenizer.NewDictionary(dictPath)
	if err != nil {
		logrus.WithError(err).Fatal("load stopword dictionary")
	}

	err = cmd.run(dict, dictPath, words)
	dict.Close()
	if errors.Is(err, errNotFound) {
		os.Exit(1)
	}
	if err != nil {
		logrus.WithError(err).WithField("command", name).Fatal("dictmgr")
	}
}

// wordArgs returns the words following the command name, exiting when
// fewer than atLeast were given.
func wordArgs(name string, atLeast int) []string {
	words := os.Args[3:]
	if len(words) < atLeast {
		logrus.WithField("command", name).Fatalf("expected at least %d word(s)", atLeast)
	}
	return words
}

func eachWord(verb string, apply func(*tokenizer.Dictionary, string) error) func(*tokenizer.Dictionary, string, []string) error {
	return func(dict *tokenizer.Dictionary, _ string, words []string) error {
		for _, word := range words {
			if err := apply(dict, word); err != nil {
				return fmt.Errorf("%s %q: %w", verb, word, err)
			}
			fmt.Printf("%s: %s\n", verb, word)
		}
		fmt.Printf("Total words: %d\n", dict.WordCount())
		return nil
	}
}

var errNotFound = errors.New("word not in dictionary")

func contains(dict *tokenizer.Dictionary, _ string, words []string) error {
	word := words[0]
	if !dict.Contains(word) {
		fmt.Printf("'%s' is kept as a keyword\n", word)
		return errNotFound
	}
	fmt.Printf("'%s' is dropped from keywords\n", word)
	return nil
}

func printUsage() {
	fmt.Println("Usage: dictmgr <url_stopwords.txt> <command> [args...]")
	fmt.Println()
	fmt.Println("Commands:")
	for _, name := range commandOrder {
		fmt.Println("  " + commands[name].usage)
	}
}
