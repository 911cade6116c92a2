package lexer

import "strings"

// InferWindowSize finds the first list literal in the program: its length is the window
// size. A program with no list literal has window size 1.
func InferWindowSize(lines []string) int {
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if isListLiteral(line) {
			return len(fields(strings.Trim(line, "[ ]")))
		}
	}
	return 1
}

func isListLiteral(line string) bool {
	return strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]")
}

func isIncrement(line string) bool {
	return strings.HasPrefix(line, "<") && strings.HasSuffix(line, ">")
}

func fields(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '\v' || r == '\f'
	})
}
