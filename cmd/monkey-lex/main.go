package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/reidswan/monkey/internal/cli"
	"github.com/reidswan/monkey/internal/lexer"
	"github.com/reidswan/monkey/internal/parser"
	"github.com/reidswan/monkey/internal/watch"
)

func main() {
	var (
		showVersion    = flag.Bool("version", false, "show version information")
		jsonOutput     = flag.Bool("json", false, "output version in JSON format")
		parseMode      = flag.Bool("parse", false, "parse files and report errors instead of printing tokens")
		watchMode      = flag.Bool("watch", false, "keep running and re-process files when they change")
		verbose        = flag.Bool("verbose", false, "enable verbose logging")
		requireVersion = flag.String("require-version", "", "exit unless the tool version satisfies this semver constraint")
	)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [OPTIONS] FILE...\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Tokenize Monkey source files and print the token stream.\n\n")
		fmt.Fprintf(os.Stderr, "OPTIONS:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	if *showVersion {
		cli.PrintVersion("Monkey Lexer", *jsonOutput)
		os.Exit(0)
	}

	cli.RequireVersion(*requireVersion)

	files := flag.Args()
	if len(files) == 0 {
		flag.Usage()
		os.Exit(2)
	}

	log := cli.NewLogger(*verbose, false)

	failed := false
	for _, path := range files {
		if !processFile(log, path, *parseMode) {
			failed = true
		}
	}

	if *watchMode {
		watchFiles(log, files, *parseMode)
		return
	}

	if failed {
		os.Exit(1)
	}
}

// processFile lexes (or parses) one file and reports whether it was
// clean: readable and, in parse mode, free of parse errors.
func processFile(log *cli.Logger, path string, parseMode bool) bool {
	log.Info("processing %s", path)

	source, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
		return false
	}

	if parseMode {
		return parseSource(path, string(source))
	}

	l := lexer.New(string(source))
	for {
		tok := l.NextToken()
		fmt.Printf("%s:%s\t%s %q\n", path, tok.Pos, tok.Type, tok.Literal)
		if tok.Type == lexer.TokenEOF {
			break
		}
	}
	return true
}

// parseSource parses one file's contents and prints every statement
// and error with file-qualified positions.
func parseSource(path, source string) bool {
	program := parser.New(lexer.New(source)).Parse()

	for _, stmt := range program.Statements {
		fmt.Printf("%s:%s\t%s\n", path, stmt.Pos(), stmt)
	}
	for _, perr := range program.Errors {
		if perr.Pos != nil {
			fmt.Fprintf(os.Stderr, "%s:%s: %s\n", path, perr.Pos, perr.Message)
		} else {
			fmt.Fprintf(os.Stderr, "%s: %s\n", path, perr.Message)
		}
	}

	return len(program.Errors) == 0
}

// watchFiles re-processes files on write events until interrupted.
func watchFiles(log *cli.Logger, files []string, parseMode bool) {
	w, err := watch.New()
	if err != nil {
		cli.ExitWithError("failed to create watcher: %v", err)
	}
	defer w.Close()

	for _, path := range files {
		if err := w.Add(path); err != nil {
			cli.ExitWithError("failed to watch %s: %v", path, err)
		}
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	log.Info("watching %d file(s)", len(files))

	for {
		select {
		case ev := <-w.Events():
			if ev.Op.Has(watch.OpWrite) || ev.Op.Has(watch.OpCreate) {
				processFile(log, ev.Path, parseMode)
			}
		case err := <-w.Errors():
			log.Error("watch error: %v", err)
		case <-sigChan:
			return
		}
	}
}
