package text

// This consists of a bunch of text utilities to help in generating readable error
// messages, help messages, and trace output.

import (
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rabbitsfoot/rabbitsfoot/source/token"
)

const (
	VERSION = "0.2.1"
	BULLET  = "  ▪ "
	PROMPT  = "→ "
	TOS     = " <-TOS"
)

const HELP = "\nUsage: rabbitsfoot [-v | --verbose] [--seed <n>] [--history <driver>:<dsn>]\n" +
	"                   [-h | --help] [--version] <file>\n" +
	"       rabbitsfoot --history <driver>:<dsn> --recent <n>\n\n" +
	"Runs the program in <file> against a list of integers read from standard input,\n" +
	"and prints the transformed list.\n\n" +
	"Options are:\n\n" +
	"  -v, --verbose        Traces every combination, line, and stack to standard error.\n" +
	"  --seed <n>           Seeds the random source used by '%'.\n" +
	"  --history <d>:<dsn>  Records each successful run in a SQL database, e.g.\n" +
	"                       'sqlite:runs.db' or 'postgres:host=localhost dbname=runs'.\n" +
	"  --recent <n>         Shows the last <n> runs in the history instead of running a program.\n\n"

var (
	RESET = "\033[0m"
	RED   = "\033[31m"
)

func Red(s string) string {
	return RED + s + RESET
}

func Emph(s string) string {
	return "'" + s + "'"
}

// ExtractFileName turns the path of a program into the name we call it by in messages.
func ExtractFileName(s string) string {
	s = filepath.Base(s)
	return strings.TrimSuffix(s, filepath.Ext(s))
}

func DescribePos(tok *token.Token) string {
	if tok == nil {
		return ""
	}
	prettySource := tok.Source
	if prettySource == "" {
		prettySource = "program"
	} else {
		prettySource = "'" + ExtractFileName(prettySource) + "'"
	}
	if tok.Line > 0 {
		return " at line " + strconv.Itoa(tok.Line) + " of " + prettySource
	}
	return " in " + prettySource
}

// Describes a token for the purposes of error messages etc.
func DescribeTok(tok *token.Token) string {
	switch tok.Type {
	case token.NOP:
		return "empty line"
	case token.EOF:
		return "end of program"
	}
	return "'" + tok.Literal + "'"
}

// Shows whitespace in a way that survives being printed, for diagnosing macro expansions.
func ExplainWhitespace(s string) string {
	var b strings.Builder
	for _, ch := range s {
		switch ch {
		case '\n':
			b.WriteString("\\n")
		case '\r':
			b.WriteString("\\r")
		case '\t':
			b.WriteString("\\t")
		default:
			b.WriteRune(ch)
		}
	}
	return b.String()
}
