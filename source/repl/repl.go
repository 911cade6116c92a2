package repl

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/lmorg/readline"
	"golang.org/x/term"

	"github.com/rabbitsfoot/rabbitsfoot/source/err"
	"github.com/rabbitsfoot/rabbitsfoot/source/text"
	"github.com/rabbitsfoot/rabbitsfoot/source/values"
)

// The input to a run is one line holding the array, e.g. '[1, 2, 3]' or '1 2 3'. When
// someone is typing it at a terminal they get a prompt and line editing.

const PROMPT = "list " + text.PROMPT

func ReadArray(in io.Reader) ([]int, *err.Error) {
	line, e := readLine(in)
	if e != nil {
		return nil, err.CreateErr("io/input/read", nil, e)
	}
	return ParseArray(line)
}

func readLine(in io.Reader) (string, error) {
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		rline := readline.NewInstance()
		rline.SetPrompt(PROMPT)
		return rline.Readline()
	}
	line, e := bufio.NewReader(in).ReadString('\n')
	if e == io.EOF && line != "" {
		e = nil
	}
	return strings.TrimRight(line, "\r\n"), e
}

// ParseArray reads a list of integers separated by commas or whitespace, with or without
// square brackets around it.
func ParseArray(line string) ([]int, *err.Error) {
	line = strings.Trim(strings.ReplaceAll(line, ",", " "), "[ ]")
	result := []int{}
	for _, field := range strings.Fields(line) {
		i, e := strconv.Atoi(field)
		if e != nil {
			return nil, err.CreateErr("io/input/int", nil, field)
		}
		result = append(result, i)
	}
	return result, nil
}

func WriteArray(out io.Writer, data []int) error {
	_, e := io.WriteString(out, values.IntsLiteral(data)+"\n")
	return e
}
