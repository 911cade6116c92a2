package token

type TokenType string

// Every line of a preprocessed program lexes to exactly one token, and the token type
// names the instruction the line stands for.
const (
	ILLEGAL = "ILLEGAL"
	EOF     = "EOF"

	NOP = "NOP" // An empty line.

	// Single-character instructions.
	SELECT    = ","
	ADD       = "+"
	MUL       = "*"
	FACTORIAL = "?"
	MINUS     = "-"
	CACHE     = "|"
	FLIP      = "~"
	ZERO      = "0"
	PACK      = "$"
	BRANCH    = "!"
	EVAL      = "^"
	DIVIDE    = "/"
	RANDOM    = "%"
	HALT      = "."

	// Literals.
	LIST      = "[...]"
	INCREMENT = "<...>"
)

type Token struct {
	Type    TokenType
	Literal string // The trimmed text of the line.
	Line    int
	Source  string
	Ints    []int  // The parsed contents of a LIST or INCREMENT line.
	Problem string // For ILLEGAL tokens, the identifier of the error the line raises when it is executed.
}

var instructions = map[string]TokenType{
	"":  NOP,
	",": SELECT,
	"+": ADD,
	"*": MUL,
	"?": FACTORIAL,
	"-": MINUS,
	"|": CACHE,
	"~": FLIP,
	"0": ZERO,
	"$": PACK,
	"!": BRANCH,
	"^": EVAL,
	"/": DIVIDE,
	"%": RANDOM,
	".": HALT,
}

// LookupInstruction returns the type of a line which consists of a single instruction, and
// false if the line is anything else.
func LookupInstruction(line string) (TokenType, bool) {
	tok, ok := instructions[line]
	return tok, ok
}

// Endorsed characters get a newline inserted after them by the preprocessor, so they can
// be written one after another without explicit line breaks.
const ENDORSED = "+*/~|,.]>!?"
