package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/sirupsen/logrus"

	"github.com/kerem-kaynak/url-tokenizer/internal/config"
	"github.com/kerem-kaynak/url-tokenizer/internal/render"
	"github.com/kerem-kaynak/url-tokenizer/pkg/tokenizer"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("load config: %v", err)
	}

	fs := flag.NewFlagSet("tokenize", flag.ExitOnError)
	batch := fs.Bool("batch", false, "Read one input per line from stdin and analyze concurrently")
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "Usage: tokenize [flags] [url...]")
		fmt.Fprintln(fs.Output(), "       tokenize [flags]            (interactive mode)")
		fmt.Fprintln(fs.Output(), "       tokenize -batch [flags] < urls.txt")
		fs.PrintDefaults()
	}
	if err := cfg.ParseFlags(fs, os.Args[1:]); err != nil {
		logrus.Fatalf("parse flags: %v", err)
	}

	log := cfg.Logger()
	tok, err := tokenizer.NewTokenizer(cfg.TokenizerConfig(log))
	if err != nil {
		log.WithError(err).Fatal("create tokenizer")
	}
	defer tok.Close()

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	switch {
	case *batch:
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		err = runBatch(ctx, tok, cfg, os.Stdin, out)
	case fs.NArg() > 0:
		for _, input := range fs.Args() {
			if err = write(out, cfg.Format, tok.Analyze(input)); err != nil {
				break
			}
		}
	default:
		err = interactive(tok, cfg, os.Stdin, out)
	}

	if err != nil {
		out.Flush()
		log.WithError(err).Fatal("tokenize")
	}
}

func runBatch(ctx context.Context, tok *tokenizer.Tokenizer, cfg *config.Config, in io.Reader, out io.Writer) error {
	var inputs []string
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		inputs = append(inputs, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	results, err := tok.AnalyzeBatch(ctx, inputs, cfg.Workers)
	if err != nil {
		return err
	}
	for _, r := range results {
		if err := write(out, cfg.Format, r); err != nil {
			return err
		}
	}
	return nil
}

func interactive(tok *tokenizer.Tokenizer, cfg *config.Config, in io.Reader, out *bufio.Writer) error {
	fmt.Fprintln(out, "URL Tokenizer (interactive mode)")
	if tok.StopwordCount() > 0 {
		fmt.Fprintf(out, "Stopwords loaded: %d words\n", tok.StopwordCount())
	}
	fmt.Fprintln(out, "Type a URL, press Enter to tokenize. Ctrl+D to exit.")
	fmt.Fprintln(out)

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "> ")
		out.Flush()
		if !scanner.Scan() {
			break
		}
		if err := write(out, cfg.Format, tok.Analyze(scanner.Text())); err != nil {
			return err
		}
		fmt.Fprintln(out)
	}
	return scanner.Err()
}

func write(w io.Writer, format string, r *tokenizer.Result) error {
	if format == config.FormatJSON {
		return json.NewEncoder(w).Encode(r)
	}
	return render.Report(w, r)
}
