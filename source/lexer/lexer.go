package lexer

import (
	"strconv"
	"strings"

	"github.com/rabbitsfoot/rabbitsfoot/source/err"
	"github.com/rabbitsfoot/rabbitsfoot/source/settings"
	"github.com/rabbitsfoot/rabbitsfoot/source/text"
	"github.com/rabbitsfoot/rabbitsfoot/source/token"
)

// Program is a preprocessed program: one token per line, plus the facts about the
// program as a whole which the vm needs.
type Program struct {
	Source     string
	Code       string // The preprocessed text.
	Lines      []*token.Token
	WindowSize int
	OddBangs   bool // Whether the '!' lines fail to pair up.

	// Malformed lines are only an error if they're executed, so the lexer keeps the error
	// for each one here, keyed by line number, until the vm needs it.
	Faults map[int]*err.Error
}

type lexer struct {
	source string
	faults map[int]*err.Error
}

func NewLexer(source string) *lexer {
	return &lexer{source: source, faults: map[int]*err.Error{}}
}

// Lex preprocesses the code and turns it into a Program.
func Lex(source, code string) (*Program, *err.Error) {
	code, e := Preprocess(source, code)
	if e != nil {
		return nil, e
	}
	l := NewLexer(source)
	lines := strings.Split(code, "\n")
	prog := &Program{
		Source:     source,
		Code:       code,
		Lines:      make([]*token.Token, 0, len(lines)),
		WindowSize: InferWindowSize(lines),
		OddBangs:   countBangs(code)%2 == 1,
		Faults:     l.faults,
	}
	for i, line := range lines {
		tok := l.lexLine(strings.TrimSpace(line), i+1)
		if settings.SHOW_LEXER {
			println(text.BULLET + strconv.Itoa(tok.Line) + " " + string(tok.Type) + " " + text.Emph(tok.Literal))
		}
		prog.Lines = append(prog.Lines, tok)
	}
	return prog, nil
}

func (l *lexer) NewToken(tokenType token.TokenType, literal string, line int) *token.Token {
	return &token.Token{Type: tokenType, Literal: literal, Line: line, Source: l.source}
}

func (l *lexer) lexLine(line string, lineNo int) *token.Token {
	if tokenType, ok := token.LookupInstruction(line); ok {
		return l.NewToken(tokenType, line, lineNo)
	}
	if isListLiteral(line) {
		tok := l.NewToken(token.LIST, line, lineNo)
		ints, bad, ok := parseInts(strings.Trim(line, "[ ]"))
		if !ok {
			return l.throw(tok, "lex/list/int", bad)
		}
		tok.Ints = ints
		return tok
	}
	if isIncrement(line) {
		tok := l.NewToken(token.INCREMENT, line, lineNo)
		if strings.Contains(line, "-") {
			return l.throw(tok, "lex/increment/neg")
		}
		ints, bad, ok := parseInts(strings.Trim(line, "< >"))
		if !ok {
			return l.throw(tok, "lex/increment/int", bad)
		}
		tok.Ints = ints
		return tok
	}
	return l.throw(l.NewToken(token.ILLEGAL, line, lineNo), "lex/line")
}

// The token becomes ILLEGAL and the error is kept for when the line is executed.
func (l *lexer) throw(tok *token.Token, errorId string, args ...any) *token.Token {
	l.faults[tok.Line] = err.CreateErr(errorId, tok, args...)
	tok.Type = token.ILLEGAL
	tok.Problem = errorId
	return tok
}

func parseInts(s string) ([]int, string, bool) {
	fL := fields(s)
	result := make([]int, 0, len(fL))
	for _, f := range fL {
		i, e := strconv.Atoi(f)
		if e != nil {
			return nil, f, false
		}
		result = append(result, i)
	}
	return result, "", true
}

// Counts the lines consisting only of '!', in exactly the way the parity check for branches
// has always counted them: whitespace is squeezed out, a '!' line is one bracketed by
// newlines, where two adjacent ones share a newline and so only count once, and then a '!'
// at just one end of the program counts for one more.
func countBangs(code string) int {
	squeezed := strings.NewReplacer(" ", "", "\t", "").Replace(code)
	count := strings.Count(squeezed, "\n!\n")
	if strings.HasPrefix(code, "!") != strings.HasSuffix(code, "!") {
		count++
	}
	return count
}
