// All this does is contain in one place the constants controlling which bits of the inner workings
// of the lexer and vm are displayed for debugging purposes, and the options a run is configured with.
// In a release the SHOW_* flags must all be set to false.

package settings

import (
	"os"
	"strconv"
	"strings"
)

const (
	// These do what it sounds like.
	SHOW_PREPROCESSOR = false
	SHOW_LEXER        = false
	SHOW_RUNTIME      = false

	SHOW_TESTS = false // Says whether the tests should say what is being tested, useful if one of them crashes and we don't know which.
)

const (
	ENV_HISTORY = "RABBITSFOOT_HISTORY"
	ENV_SEED    = "RABBITSFOOT_SEED"
)

// Config holds everything a run can be told from outside the program text.
type Config struct {
	Filename string
	Verbose  bool
	Seed     uint64
	HasSeed  bool
	History  string // "driver:dsn", or empty for no run history.
	Recent   int    // How many runs from the history to show instead of running a program.
	Help     bool
	Version  bool
}

// FromEnvironment supplies the defaults which the command line may then override. Like
// ParseArgs, it returns a description of anything wrong, or the empty string.
func FromEnvironment() (Config, string) {
	cfg := Config{History: os.Getenv(ENV_HISTORY)}
	if s := os.Getenv(ENV_SEED); s != "" {
		seed, e := strconv.ParseUint(s, 10, 64)
		if e != nil {
			return cfg, ENV_SEED + " needs a non-negative integer, not '" + s + "'"
		}
		cfg.Seed, cfg.HasSeed = seed, true
	}
	return cfg, ""
}

// ParseArgs reads the command line. The program file is the last argument which
// isn't an option or an option's parameter.
func ParseArgs(cfg Config, args []string) (Config, string) {
	for i := 0; i < len(args); i++ {
		switch arg := args[i]; arg {
		case "-v", "--verbose":
			cfg.Verbose = true
		case "-h", "--help":
			cfg.Help = true
		case "--version":
			cfg.Version = true
		case "--seed", "--history", "--recent":
			if i+1 >= len(args) {
				return cfg, "option '" + arg + "' needs a value"
			}
			i++
			switch arg {
			case "--history":
				cfg.History = args[i]
				continue
			case "--recent":
				n, e := strconv.Atoi(args[i])
				if e != nil || n <= 0 {
					return cfg, "option '--recent' needs a positive integer, not '" + args[i] + "'"
				}
				cfg.Recent = n
				continue
			}
			seed, e := strconv.ParseUint(args[i], 10, 64)
			if e != nil {
				return cfg, "option '--seed' needs a non-negative integer, not '" + args[i] + "'"
			}
			cfg.Seed, cfg.HasSeed = seed, true
		default:
			if strings.HasPrefix(arg, "--") {
				return cfg, "unknown option '" + arg + "'"
			}
			cfg.Filename = arg
		}
	}
	return cfg, ""
}
