package err

import (
	"fmt"
	"strings"

	"github.com/rabbitsfoot/rabbitsfoot/source/text"
	"github.com/rabbitsfoot/rabbitsfoot/source/token"
)

// The kind of an error says what sort of thing went wrong. Every error is fatal to the
// run whatever its kind.
type Kind int

const (
	SYNTAX Kind = iota
	TYPE
	VALUE
	SHAPE
	STACK
	UNSUPPORTED
	IO
)

var kindNames = []string{"SyntaxError", "TypeError", "ValueError", "ShapeError", "StackError",
	"UnsupportedError", "IOError"}

func (k Kind) String() string {
	return kindNames[k]
}

// The 'error' type.
type Error struct {
	ErrorId string
	Kind    Kind
	Message string
	Args    []any
	Token   *token.Token
}

func (e *Error) Error() string {
	return e.Kind.String() + ": " + e.Message + text.DescribePos(e.Token)
}

// Explain returns the longer explanation of the error from the catalogue.
func (e *Error) Explain() string {
	creator, ok := ErrorCreatorMap[e.ErrorId]
	if !ok {
		return ""
	}
	return creator.Explanation(e.Token, e.Args...)
}

type ErrorCreator struct {
	Kind        Kind
	Message     func(tok *token.Token, args ...any) string
	Explanation func(tok *token.Token, args ...any) string
}

// CreateErr makes the error with the given identifier, attributing it to the given token,
// which may be nil.
func CreateErr(errorId string, tok *token.Token, args ...any) *Error {
	creator, ok := ErrorCreatorMap[errorId]
	if !ok {
		return &Error{ErrorId: errorId, Kind: SYNTAX, Message: "unknown error " + emph(errorId), Args: args, Token: tok}
	}
	return &Error{ErrorId: errorId, Kind: creator.Kind, Message: creator.Message(tok, args...), Args: args, Token: tok}
}

// A map from error identifiers to functions that supply the corresponding error messages and explanations.
//
// Errors in the map are in alphabetical order of their identifers.
//
// Major categories are io, lex, and vm.
//
// Two otherwise identical errors thrown in different places in the Go code must be assigned
// different identifiers, if only by suffixing /a, /b, etc to the identifier.
var ErrorCreatorMap = map[string]ErrorCreator{

	"io/file": {
		Kind: IO,
		Message: func(tok *token.Token, args ...any) string {
			return "can't read program file " + emph(args[0]) + ": " + fmt.Sprint(args[1])
		},
		Explanation: func(tok *token.Token, args ...any) string {
			return "The program is read in full from the file named as the last argument on the command line."
		},
	},

	"io/history": {
		Kind: IO,
		Message: func(tok *token.Token, args ...any) string {
			return "can't use run history " + emph(args[0]) + ": " + fmt.Sprint(args[1])
		},
		Explanation: func(tok *token.Token, args ...any) string {
			return "The value of '--history' should be a driver name and a data source name separated by a " +
				"colon, for example " + emph("sqlite:runs.db") + "."
		},
	},

	"io/input/int": {
		Kind: VALUE,
		Message: func(tok *token.Token, args ...any) string {
			return emph(args[0]) + " in the input is not an integer"
		},
		Explanation: func(tok *token.Token, args ...any) string {
			return "The input should be a single line of integers separated by commas or spaces, " +
				"optionally in square brackets, for example " + emph("[1, 2, 3]") + "."
		},
	},

	"io/input/read": {
		Kind: IO,
		Message: func(tok *token.Token, args ...any) string {
			return "can't read the input list: " + fmt.Sprint(args[0])
		},
		Explanation: func(tok *token.Token, args ...any) string {
			return "The list of integers the program transforms is read as one line from standard input."
		},
	},

	"io/output": {
		Kind: IO,
		Message: func(tok *token.Token, args ...any) string {
			return "can't write the result: " + fmt.Sprint(args[0])
		},
		Explanation: func(tok *token.Token, args ...any) string {
			return "The transformed list is written as one line to standard output."
		},
	},

	"lex/at/first": {
		Kind: SYNTAX,
		Message: func(tok *token.Token, args ...any) string {
			return emph("@") + " on first line of program"
		},
		Explanation: func(tok *token.Token, args ...any) string {
			return "Every " + emph("@") + " in the program is replaced by the first line of the program, " +
				"so the first line can't contain one itself."
		},
	},

	"lex/comment/eq": {
		Kind: SYNTAX,
		Message: func(tok *token.Token, args ...any) string {
			return emph("=") + " before first comment"
		},
		Explanation: func(tok *token.Token, args ...any) string {
			return "Every " + emph("=") + " is replaced by the text of the first comment, so it can't " +
				"appear before there is a first comment to take its meaning from."
		},
	},

	"lex/increment/int": {
		Kind: SYNTAX,
		Message: func(tok *token.Token, args ...any) string {
			return emph(args[0]) + " in increment list is not an integer"
		},
		Explanation: func(tok *token.Token, args ...any) string {
			return "A line of the form " + emph("<...>") + " should contain only positions in the array, " +
				"separated by spaces."
		},
	},

	"lex/increment/neg": {
		Kind: VALUE,
		Message: func(tok *token.Token, args ...any) string {
			return "negative integer in indices to increment"
		},
		Explanation: func(tok *token.Token, args ...any) string {
			return "The positions listed in a line of the form " + emph("<...>") + " can't be negative."
		},
	},

	"lex/line": {
		Kind: SYNTAX,
		Message: func(tok *token.Token, args ...any) string {
			return "malformed line " + text.DescribeTok(tok)
		},
		Explanation: func(tok *token.Token, args ...any) string {
			return "A line must be empty, a single instruction, a list literal " + emph("[...]") +
				", or an increment " + emph("<...>") + "."
		},
	},

	"lex/list/int": {
		Kind: SYNTAX,
		Message: func(tok *token.Token, args ...any) string {
			return emph(args[0]) + " in list literal is not an integer"
		},
		Explanation: func(tok *token.Token, args ...any) string {
			return "A list literal should contain only integers separated by spaces."
		},
	},

	"vm/add/overflow": {
		Kind: VALUE,
		Message: func(tok *token.Token, args ...any) string {
			return "integer overflow adding " + emph(args[0]) + " and " + emph(args[1])
		},
		Explanation: func(tok *token.Token, args ...any) string {
			return "Integers are 64 bits wide, and a sum which doesn't fit is an error rather than wrapping around."
		},
	},

	"vm/add/shape": {
		Kind: SHAPE,
		Message: func(tok *token.Token, args ...any) string {
			return fmt.Sprintf("can't add lists of lengths %v and %v", args[0], args[1])
		},
		Explanation: func(tok *token.Token, args ...any) string {
			return "Lists are added element by element, and so must be the same length."
		},
	},

	"vm/add/type": {
		Kind: TYPE,
		Message: func(tok *token.Token, args ...any) string {
			return "mixed-type addition is not supported"
		},
		Explanation: func(tok *token.Token, args ...any) string {
			return emph("+") + " adds two integers or two lists, but not an integer to a list."
		},
	},

	"vm/branch/parity": {
		Kind: SYNTAX,
		Message: func(tok *token.Token, args ...any) string {
			return "odd number of " + emph("!")
		},
		Explanation: func(tok *token.Token, args ...any) string {
			return "The lines consisting of " + emph("!") + " mark the two ends of a branch, and so must come in pairs."
		},
	},

	"vm/branch/unsupported": {
		Kind: UNSUPPORTED,
		Message: func(tok *token.Token, args ...any) string {
			return "conditional jump on an integer is not supported"
		},
		Explanation: func(tok *token.Token, args ...any) string {
			return "The behavior of " + emph("!") + " when the top of the stack is an integer has never " +
				"been defined, and so it is an error rather than a guess."
		},
	},

	"vm/divide/type": {
		Kind: TYPE,
		Message: func(tok *token.Token, args ...any) string {
			return "division of something other than a list"
		},
		Explanation: func(tok *token.Token, args ...any) string {
			return emph("/") + " divides each element of a list by the window size, rounding down."
		},
	},

	"vm/eval/unsupported": {
		Kind: UNSUPPORTED,
		Message: func(tok *token.Token, args ...any) string {
			return "tried to execute something other than program text"
		},
		Explanation: func(tok *token.Token, args ...any) string {
			return emph("^") + " would execute program text taken from the stack, but no instruction ever " +
				"puts program text on the stack."
		},
	},

	"vm/factorial/negative": {
		Kind: VALUE,
		Message: func(tok *token.Token, args ...any) string {
			return "attempted factorial on negative number " + emph(args[0])
		},
		Explanation: func(tok *token.Token, args ...any) string {
			return "The factorial is only defined for non-negative integers."
		},
	},

	"vm/factorial/overflow": {
		Kind: VALUE,
		Message: func(tok *token.Token, args ...any) string {
			return "integer overflow taking the factorial of " + emph(args[0])
		},
		Explanation: func(tok *token.Token, args ...any) string {
			return "Integers are 64 bits wide, and 20 is the largest number whose factorial fits."
		},
	},

	"vm/factorial/type": {
		Kind: TYPE,
		Message: func(tok *token.Token, args ...any) string {
			return "factorial on something other than an integer"
		},
		Explanation: func(tok *token.Token, args ...any) string {
			return emph("?") + " replaces an integer on top of the stack with its factorial."
		},
	},

	"vm/flip/shape": {
		Kind: SHAPE,
		Message: func(tok *token.Token, args ...any) string {
			return "can't flip lists of different lengths"
		},
		Explanation: func(tok *token.Token, args ...any) string {
			return emph("~") + " treats the lists it pops as the rows of a matrix, and so they must be the same length."
		},
	},

	"vm/flip/type": {
		Kind: TYPE,
		Message: func(tok *token.Token, args ...any) string {
			return "tried to flip something other than a list"
		},
		Explanation: func(tok *token.Token, args ...any) string {
			return emph("~") + " pops as many lists as the window size and transposes them."
		},
	},

	"vm/halt": {
		Kind: SYNTAX,
		Message: func(tok *token.Token, args ...any) string {
			return "program does not contain a " + emph(".") + " instruction"
		},
		Explanation: func(tok *token.Token, args ...any) string {
			return "Each pass through the program must end at a line consisting of " + emph(".") + "."
		},
	},

	"vm/increment/overflow": {
		Kind: VALUE,
		Message: func(tok *token.Token, args ...any) string {
			return fmt.Sprintf("incrementing the array at index %v overflows", emph(args[0]))
		},
		Explanation: func(tok *token.Token, args ...any) string {
			return "Arithmetic on the array is checked, and a value can't be incremented past the largest integer."
		},
	},

	"vm/increment/range": {
		Kind: VALUE,
		Message: func(tok *token.Token, args ...any) string {
			return fmt.Sprintf("index %v to increment is out of range for an array of length %v", emph(args[0]), args[1])
		},
		Explanation: func(tok *token.Token, args ...any) string {
			return "The positions listed in a line of the form " + emph("<...>") + " must be positions in the array."
		},
	},

	"vm/list/count": {
		Kind: SYNTAX,
		Message: func(tok *token.Token, args ...any) string {
			return fmt.Sprintf("literal has %v elements but the window size is %v", args[0], args[1])
		},
		Explanation: func(tok *token.Token, args ...any) string {
			return "The window size is the length of the first list literal in the program, and every " +
				"list literal must be that length."
		},
	},

	"vm/minus/type": {
		Kind: TYPE,
		Message: func(tok *token.Token, args ...any) string {
			return "can't take the maximum and minimum of an integer and a list"
		},
		Explanation: func(tok *token.Token, args ...any) string {
			return "When the top of the stack is an integer, " + emph("-") + " needs another integer beneath it."
		},
	},

	"vm/minus/unsupported": {
		Kind: UNSUPPORTED,
		Message: func(tok *token.Token, args ...any) string {
			return fmt.Sprintf("maximum and minimum of %v and %v is not supported", emph(args[0]), emph(args[1]))
		},
		Explanation: func(tok *token.Token, args ...any) string {
			return "The behavior of " + emph("-") + " on two integers has never been defined, and so it " +
				"is an error rather than a guess. On a list it gives the sign of each element."
		},
	},

	"vm/mul/overflow": {
		Kind: VALUE,
		Message: func(tok *token.Token, args ...any) string {
			return "integer overflow multiplying " + emph(args[0]) + " and " + emph(args[1])
		},
		Explanation: func(tok *token.Token, args ...any) string {
			return "Integers are 64 bits wide, and a product which doesn't fit is an error rather than wrapping around."
		},
	},

	"vm/mul/shape": {
		Kind: SHAPE,
		Message: func(tok *token.Token, args ...any) string {
			return fmt.Sprintf("can't multiply lists of lengths %v and %v", args[0], args[1])
		},
		Explanation: func(tok *token.Token, args ...any) string {
			return "Lists are multiplied element by element, and so must be the same length."
		},
	},

	"vm/mul/type": {
		Kind: TYPE,
		Message: func(tok *token.Token, args ...any) string {
			return "mixed-type multiplication is not supported"
		},
		Explanation: func(tok *token.Token, args ...any) string {
			return emph("*") + " multiplies two integers or two lists, but not an integer by a list."
		},
	},

	"vm/pack/count": {
		Kind: VALUE,
		Message: func(tok *token.Token, args ...any) string {
			return fmt.Sprintf("wrong number of popped integers: got %v, window size is %v", args[0], args[1])
		},
		Explanation: func(tok *token.Token, args ...any) string {
			return emph("$") + " empties the stack into a list, so the stack must hold exactly as many " +
				"integers as the window size."
		},
	},

	"vm/pack/type": {
		Kind: TYPE,
		Message: func(tok *token.Token, args ...any) string {
			return "tried to pack non-integer into list of integers"
		},
		Explanation: func(tok *token.Token, args ...any) string {
			return emph("$") + " empties the stack into a list, so everything on the stack must be an integer."
		},
	},

	"vm/random/negative": {
		Kind: VALUE,
		Message: func(tok *token.Token, args ...any) string {
			return "random integer from empty set"
		},
		Explanation: func(tok *token.Token, args ...any) string {
			return emph("%") + " replaces an integer n with a random integer from 0 to n, so n can't be negative."
		},
	},

	"vm/result/shape": {
		Kind: SHAPE,
		Message: func(tok *token.Token, args ...any) string {
			return fmt.Sprintf("result has %v elements but the window size is %v", args[0], args[1])
		},
		Explanation: func(tok *token.Token, args ...any) string {
			return "The list on top of the stack at the end of each pass is written back into the array " +
				"at the positions of the window, and so must be the same length as the window."
		},
	},

	"vm/result/type": {
		Kind: TYPE,
		Message: func(tok *token.Token, args ...any) string {
			return "result of pass is " + emph(args[0]) + ", not a list"
		},
		Explanation: func(tok *token.Token, args ...any) string {
			return "The value on top of the stack at the end of each pass is written back into the array, " +
				"and so must be a list."
		},
	},

	"vm/stack/empty": {
		Kind: STACK,
		Message: func(tok *token.Token, args ...any) string {
			return "pop from empty stack"
		},
		Explanation: func(tok *token.Token, args ...any) string {
			return "The instruction needed more values than there were on the stack. Bear in mind that " +
				"the stack is not emptied between passes."
		},
	},

	"vm/zero/empty": {
		Kind: VALUE,
		Message: func(tok *token.Token, args ...any) string {
			return "tried to execute " + emph("0") + " when window size and input size were both 0"
		},
		Explanation: func(tok *token.Token, args ...any) string {
			return emph("0") + " is forbidden when there is nothing to work on."
		},
	},

	"vm/zero/origin": {
		Kind: VALUE,
		Message: func(tok *token.Token, args ...any) string {
			return "tried to execute " + emph("0") + " when index tuple was all zeros"
		},
		Explanation: func(tok *token.Token, args ...any) string {
			return emph("0") + " pushes the integer 0, except on the pass where every position in the window is 0."
		},
	},
}

func emph(s any) string {
	if t, ok := s.(string); ok {
		s = strings.TrimSpace(t)
	}
	return fmt.Sprintf("'%v'", s)
}
