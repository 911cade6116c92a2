//
// rabbitsfoot
//
// Runs a program of one instruction per line over every combination of positions in a list of
// integers, writing the result of each pass back into the list.
//

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rabbitsfoot/rabbitsfoot/source/hub"
	"github.com/rabbitsfoot/rabbitsfoot/source/settings"
	"github.com/rabbitsfoot/rabbitsfoot/source/text"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// Only the transformed list goes to out. Everything else, including usage, goes to errOut
// so that the output can be piped on.
func run(args []string, in io.Reader, out, errOut io.Writer) int {
	cfg, problem := settings.FromEnvironment()
	if problem == "" {
		cfg, problem = settings.ParseArgs(cfg, args)
	}
	hb := hub.New(in, out, errOut, cfg)
	if problem != "" {
		hb.WriteProblem(problem)
		fmt.Fprint(errOut, text.HELP)
		return 2
	}
	switch {
	case cfg.Help:
		fmt.Fprint(out, text.HELP)
		return 0
	case cfg.Version:
		fmt.Fprintln(out, "rabbitsfoot version "+text.VERSION)
		return 0
	}
	if e := hb.OpenHistory(); e != nil {
		hb.WriteError(e)
		return 1
	}
	defer hb.Close()
	if cfg.Recent > 0 {
		if e := hb.ShowRecent(cfg.Recent); e != nil {
			hb.WriteError(e)
			return 1
		}
		return 0
	}
	if cfg.Filename == "" {
		fmt.Fprintln(errOut, "Please pass filename of code")
		return 1
	}
	if e := hb.Run(cfg.Filename); e != nil {
		hb.WriteError(e)
		return 1
	}
	return 0
}
