package hub

import (
	"database/sql"
	"io"
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/rabbitsfoot/rabbitsfoot/source/database"
	"github.com/rabbitsfoot/rabbitsfoot/source/err"
	"github.com/rabbitsfoot/rabbitsfoot/source/lexer"
	"github.com/rabbitsfoot/rabbitsfoot/source/repl"
	"github.com/rabbitsfoot/rabbitsfoot/source/settings"
	"github.com/rabbitsfoot/rabbitsfoot/source/text"
	"github.com/rabbitsfoot/rabbitsfoot/source/values"
	"github.com/rabbitsfoot/rabbitsfoot/source/vm"
)

// The hub is what stands between the user and the lexer and vm: it finds the program and
// the array, runs the one on the other, says how it went, and keeps the history.
type Hub struct {
	in     io.Reader
	out    io.Writer
	errOut io.Writer // Errors and the trace go here, so that the output can be piped on.
	cfg    settings.Config
	Db     *sql.DB
	driver string
}

func New(in io.Reader, out, errOut io.Writer, cfg settings.Config) *Hub {
	return &Hub{in: in, out: out, errOut: errOut, cfg: cfg}
}

// OpenHistory connects to the run history if the user has asked for one.
func (hub *Hub) OpenHistory() *err.Error {
	if hub.cfg.History == "" {
		return nil
	}
	db, driver, e := database.Open(hub.cfg.History)
	if e == nil {
		if e = errors.Wrap(database.Init(db, driver), "making table"); e != nil {
			db.Close()
		}
	}
	if e != nil {
		return err.CreateErr("io/history", nil, hub.cfg.History, e)
	}
	hub.Db, hub.driver = db, driver
	return nil
}

func (hub *Hub) Close() {
	if hub.Db != nil {
		hub.Db.Close()
	}
}

// Run runs the program in the file on the array read from the hub's input, and writes
// the array as the program leaves it to the hub's output.
func (hub *Hub) Run(filename string) *err.Error {
	code, e := readProgram(filename)
	if e != nil {
		return err.CreateErr("io/file", nil, filename, errors.Cause(e))
	}
	prog, lexErr := lexer.Lex(filename, code)
	if lexErr != nil {
		return lexErr
	}
	data, inputErr := repl.ReadArray(hub.in)
	if inputErr != nil {
		return inputErr
	}
	input := values.IntsLiteral(data)
	started := time.Now()
	machine := vm.Make(prog, data, hub.vmConfig())
	if runErr := machine.Run(); runErr != nil {
		return runErr
	}
	if e := repl.WriteArray(hub.out, machine.Data); e != nil {
		return err.CreateErr("io/output", nil, e)
	}
	if hub.Db == nil {
		return nil
	}
	run := database.NewRun(code, prog.WindowSize, input, values.IntsLiteral(machine.Data), started)
	if e := database.Record(hub.Db, hub.driver, run); e != nil {
		return err.CreateErr("io/history", nil, hub.cfg.History, errors.Wrap(e, "recording run"))
	}
	return nil
}

func readProgram(filename string) (string, error) {
	code, e := os.ReadFile(filename)
	if e != nil {
		return "", errors.Wrapf(e, "reading %s", filename)
	}
	return string(code), nil
}

func (hub *Hub) vmConfig() vm.Config {
	cfg := vm.Config{}
	if hub.cfg.HasSeed {
		cfg.Random = vm.NewSeededRandom(hub.cfg.Seed)
	}
	if hub.cfg.Verbose {
		cfg.Trace = hub.errOut
	}
	return cfg
}

// ShowRecent writes the last n runs in the history.
func (hub *Hub) ShowRecent(n int) *err.Error {
	if hub.Db == nil {
		return err.CreateErr("io/history", nil, "", errors.New("no history was given with '--history'"))
	}
	runs, e := database.Recent(hub.Db, hub.driver, n)
	if e != nil {
		return err.CreateErr("io/history", nil, hub.cfg.History, errors.Wrap(e, "reading runs"))
	}
	hub.WriteString(database.Describe(runs))
	return nil
}

func (hub *Hub) WriteError(e *err.Error) {
	hub.WriteProblem(e.Error())
	if hub.cfg.Verbose {
		if explanation := e.Explain(); explanation != "" {
			io.WriteString(hub.errOut, "\n"+explanation+"\n\n")
		}
	}
}

func (hub *Hub) WriteProblem(s string) {
	io.WriteString(hub.errOut, text.Red("Error")+": "+s+"\n")
}

func (hub *Hub) WriteString(s string) {
	io.WriteString(hub.out, s)
}
