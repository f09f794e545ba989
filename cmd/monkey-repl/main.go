package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/reidswan/monkey/internal/cli"
	"github.com/reidswan/monkey/internal/lexer"
	"github.com/reidswan/monkey/internal/parser"
)

const prompt = ">> "

func main() {
	var (
		showVersion    = flag.Bool("version", false, "show version information")
		showHelp       = flag.Bool("help", false, "show help information")
		jsonOutput     = flag.Bool("json", false, "output version in JSON format")
		noPrompt       = flag.Bool("no-prompt", false, "disable interactive prompt")
		parseMode      = flag.Bool("parse", false, "also parse each line and print statements and errors")
		evalStr        = flag.String("eval", "", "tokenize the given input and exit")
		requireVersion = flag.String("require-version", "", "exit unless the tool version satisfies this semver constraint")
	)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [OPTIONS]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Monkey interactive REPL. Each input line is tokenized with a fresh\n")
		fmt.Fprintf(os.Stderr, "lexer and every token is printed; no state carries between lines.\n\n")
		fmt.Fprintf(os.Stderr, "OPTIONS:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nEXAMPLES:\n")
		fmt.Fprintf(os.Stderr, "  %s                          # start the interactive loop\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --eval \"let x = 5;\"      # tokenize one input and exit\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --parse                  # print parsed statements as well\n", os.Args[0])
	}

	flag.Parse()

	if *showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if *showVersion {
		cli.PrintVersion("Monkey REPL", *jsonOutput)
		os.Exit(0)
	}

	cli.RequireVersion(*requireVersion)

	if *evalStr != "" {
		printLine(os.Stdout, *evalStr, *parseMode)
		os.Exit(0)
	}

	if !*noPrompt {
		info := cli.GetVersionInfo()
		fmt.Printf("Monkey REPL v%s\n", info.Version)
		fmt.Println("Enter Monkey source to see its tokens. Ctrl-D exits.")
	}

	run(os.Stdin, os.Stdout, !*noPrompt, *parseMode)
}

// run reads one line at a time and prints the tokens it produces.
// Malformed input yields illegal tokens and parse errors, never a
// crash of the read loop.
func run(in io.Reader, out io.Writer, showPrompt, parseMode bool) {
	scanner := bufio.NewScanner(in)
	for {
		if showPrompt {
			fmt.Fprint(out, prompt)
		}
		if !scanner.Scan() {
			break
		}
		printLine(out, scanner.Text(), parseMode)
	}
}

// printLine tokenizes a single line with a fresh lexer and prints each
// token, including illegal ones, verbatim.
func printLine(out io.Writer, line string, parseMode bool) {
	l := lexer.New(line)
	for {
		tok := l.NextToken()
		fmt.Fprintln(out, tok)
		if tok.Type == lexer.TokenEOF {
			break
		}
	}

	if !parseMode {
		return
	}

	program := parser.New(lexer.New(line)).Parse()
	for _, stmt := range program.Statements {
		fmt.Fprintln(out, stmt)
	}
	for _, err := range program.Errors {
		fmt.Fprintln(out, err)
	}
}
