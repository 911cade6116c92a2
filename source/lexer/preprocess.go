package lexer

import (
	"strings"

	"github.com/rabbitsfoot/rabbitsfoot/source/err"
	"github.com/rabbitsfoot/rabbitsfoot/source/settings"
	"github.com/rabbitsfoot/rabbitsfoot/source/text"
	"github.com/rabbitsfoot/rabbitsfoot/source/token"
)

// Preprocess expands the macros, removes the comments, and inserts the newlines implied by
// endorsed characters. The result still has to be split into lines.
func Preprocess(source, code string) (string, *err.Error) {
	firstLine, _, _ := strings.Cut(code, "\n")
	if strings.Contains(firstLine, "@") {
		return "", err.CreateErr("lex/at/first", &token.Token{Literal: strings.TrimSpace(firstLine), Line: 1, Source: source})
	}
	code = strings.ReplaceAll(code, "@", firstLine)
	firstComment, e := findFirstComment(source, code)
	if e != nil {
		return "", e
	}
	code = stripComments(code)
	code = strings.ReplaceAll(code, "=", firstComment)
	code = endorse(code)
	if settings.SHOW_PREPROCESSOR {
		println(text.BULLET + "Preprocessed code: " + text.ExplainWhitespace(code))
	}
	return code, nil
}

func isComment(line string) bool {
	return strings.HasPrefix(line, "#") || strings.HasPrefix(line, "REM ")
}

// The first comment supplies the text of the '=' macro. An '=' on any line before it is an
// error, since it would have nothing to mean.
func findFirstComment(source, code string) (string, *err.Error) {
	for i, line := range strings.Split(code, "\n") {
		if isComment(line) {
			if strings.HasPrefix(line, "REM ") {
				return strings.TrimPrefix(line, "REM "), nil
			}
			return strings.TrimPrefix(line, "#"), nil
		}
		if strings.Contains(line, "=") {
			return "", err.CreateErr("lex/comment/eq", &token.Token{Literal: strings.TrimSpace(line), Line: i + 1, Source: source})
		}
	}
	return "", nil
}

func stripComments(code string) string {
	lines := strings.Split(code, "\n")
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		if !isComment(line) {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "\n")
}

func endorse(code string) string {
	var b strings.Builder
	b.Grow(len(code))
	for _, ch := range code {
		b.WriteRune(ch)
		if strings.ContainsRune(token.ENDORSED, ch) {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
