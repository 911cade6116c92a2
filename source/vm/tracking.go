package vm

import (
	"io"
	"math"

	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog"

	"github.com/rabbitsfoot/rabbitsfoot/source/stack"
	"github.com/rabbitsfoot/rabbitsfoot/source/text"
	"github.com/rabbitsfoot/rabbitsfoot/source/token"
	"github.com/rabbitsfoot/rabbitsfoot/source/values"
)

// This file supplies the trace of a run for verbose mode. The trace is for people to read
// and nothing should try to parse it.

type tracker struct {
	on  bool
	log zerolog.Logger
}

func newTracker(out io.Writer) *tracker {
	if out == nil {
		return &tracker{log: zerolog.Nop()}
	}
	writer := zerolog.ConsoleWriter{
		Out:          out,
		NoColor:      true,
		PartsExclude: []string{zerolog.TimestampFieldName},
	}
	return &tracker{on: true, log: zerolog.New(writer).Level(zerolog.DebugLevel)}
}

func (tr *tracker) window(window, length int) {
	if !tr.on {
		return
	}
	count := "more than " + humanize.Comma(math.MaxInt)
	if n, ok := countCombinations(length, window); ok {
		count = humanize.Comma(int64(n))
	}
	tr.log.Debug().Int("window_size", window).Str("passes", count).Msg("Inferred window size")
}

func (tr *tracker) combination(indices []int) {
	if !tr.on {
		return
	}
	tr.log.Debug().Str("indices", values.IntsLiteral(indices)).Msg("Iterating")
}

func (tr *tracker) line(tok *token.Token) {
	if !tr.on {
		return
	}
	tr.log.Debug().Int("line", tok.Line).Msg("  Running line: " + tok.Literal)
}

func (tr *tracker) stack(s *stack.Stack) {
	if !tr.on {
		return
	}
	tr.log.Debug().Msg("  stack = " + s.Snapshot().String() + text.TOS)
}

func (tr *tracker) cacheSet(v values.Value) {
	if !tr.on {
		return
	}
	tr.log.Debug().Msg("  cache set to " + v.Literal())
}

func (tr *tracker) replace(indices, newValues []int) {
	if !tr.on {
		return
	}
	tr.log.Debug().Str("indices", values.IntsLiteral(indices)).Str("new_values", values.IntsLiteral(newValues)).
		Msg("Replacing values")
}

func (tr *tracker) afterPass(cache *values.Value, data []int) {
	if !tr.on {
		return
	}
	cached := "None"
	if cache != nil {
		cached = cache.Literal()
	}
	tr.log.Debug().Str("cache", cached).Str("data", values.IntsLiteral(data)).Msg("Pass complete")
}

func (tr *tracker) done() {
	if !tr.on {
		return
	}
	tr.log.Debug().Msg("Program terminated successfully.")
}
