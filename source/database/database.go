package database

// The run history. If the user asks for it, every successful run is written to a table in
// whichever SQL database they name, so that they can see later what a program did to what.

import (
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/blake2b"

	"github.com/rabbitsfoot/rabbitsfoot/source/text"

	// SQL drivers

	_ "github.com/go-sql-driver/mysql"  // MariaDB & MySQL
	_ "github.com/lib/pq"               // Postgres
	_ "github.com/microsoft/go-mssqldb" // SQL Server
	_ "github.com/nakagami/firebirdsql" // Firebird
	_ "github.com/sijms/go-ora"         // Oracle
	_ "modernc.org/sqlite"              // SQLite
)

// The names the user may give a database by, and the names its driver registered itself under.
var (
	drivers = map[string]string{"firebird": "firebirdsql", "mariadb": "mysql", "mysql": "mysql",
		"oracle": "oracle", "postgres": "postgres", "sqlite": "sqlite", "sqlserver": "sqlserver"}
)

const TABLE = "rabbitsfoot_runs"

const TIME_FORMAT = "2006-01-02 15:04:05.000000000" // Always UTC, so that the strings sort by time.

// A Run is one row of the history.
type Run struct {
	ID          string
	Fingerprint string // Identifies the program text, which we don't store.
	WindowSize  int
	Input       string
	Output      string
	Started     time.Time
}

func NewRun(code string, windowSize int, input, output string, started time.Time) Run {
	return Run{ID: uuid.New().String(), Fingerprint: Fingerprint(code), WindowSize: windowSize,
		Input: input, Output: output, Started: started.UTC()}
}

// Fingerprint hashes a program so that runs of the same program can be found together.
func Fingerprint(code string) string {
	sum := blake2b.Sum256([]byte(code))
	return hex.EncodeToString(sum[:])
}

// Open takes a string of the form "driver:dsn", where the driver is one of the names the
// user knows the databases by. It returns the database and the name of its driver.
func Open(spec string) (*sql.DB, string, error) {
	name, dsn, ok := strings.Cut(spec, ":")
	if !ok || dsn == "" {
		return nil, "", errors.New("expected a driver and a data source name separated by ':'")
	}
	driver, ok := drivers[strings.ToLower(name)]
	if !ok {
		return nil, "", errors.New("unknown driver '" + name + "', try one of " + strings.Join(GetSortedDrivers(), ", "))
	}
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, "", err
	}
	if driver == "sqlite" {
		// Otherwise each connection to ":memory:" is a different database.
		db.SetMaxOpenConns(1)
	}
	if err = db.Ping(); err != nil {
		db.Close()
		return nil, "", err
	}
	return db, driver, nil
}

func GetSortedDrivers() []string {
	dr := []string{}
	for k := range drivers {
		dr = append(dr, k)
	}
	sort.Strings(dr)
	return dr
}

// Init makes the table if it isn't there already. Not every database understands
// CREATE TABLE IF NOT EXISTS, so we look first.
func Init(db *sql.DB, driver string) error {
	rows, err := db.Query("SELECT id FROM " + TABLE + " WHERE 1 = 0")
	if err == nil {
		return rows.Close()
	}
	textType := textTypes[driver]
	if textType == "" {
		textType = "TEXT"
	}
	query := fmt.Sprintf(`CREATE TABLE %v (
    id varchar(36),
    fingerprint varchar(64),
    window_size integer,
    input %v,
    output %v,
    started varchar(32),
PRIMARY KEY (id))`, TABLE, textType, textType)
	_, err = db.Exec(query)
	return err
}

var textTypes = map[string]string{"firebirdsql": "BLOB SUB_TYPE TEXT", "oracle": "CLOB", "sqlserver": "varchar(max)"}

func Record(db *sql.DB, driver string, run Run) error {
	query := fmt.Sprintf(`INSERT INTO %v(id, fingerprint, window_size, input, output, started)
	VALUES (%v)`, TABLE, placeholders(driver, 6))
	_, err := db.Exec(query, run.ID, run.Fingerprint, run.WindowSize, run.Input, run.Output,
		run.Started.UTC().Format(TIME_FORMAT))
	return err
}

// Recent returns at most n runs, the latest first.
func Recent(db *sql.DB, driver string, n int) ([]Run, error) {
	columns := "id, fingerprint, window_size, input, output, started"
	var query string
	switch driver {
	case "sqlserver":
		query = "SELECT TOP " + strconv.Itoa(n) + " " + columns + " FROM " + TABLE + " ORDER BY started DESC"
	case "oracle", "firebirdsql":
		query = "SELECT " + columns + " FROM " + TABLE + " ORDER BY started DESC FETCH FIRST " + strconv.Itoa(n) + " ROWS ONLY"
	default:
		query = "SELECT " + columns + " FROM " + TABLE + " ORDER BY started DESC LIMIT " + strconv.Itoa(n)
	}
	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []Run

	for rows.Next() {
		var run Run
		var started string
		if err := rows.Scan(&run.ID, &run.Fingerprint, &run.WindowSize, &run.Input, &run.Output, &started); err != nil {
			return nil, err
		}
		if run.Started, err = time.Parse(TIME_FORMAT, started); err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// Describe is for showing the user their history.
func Describe(runs []Run) string {
	if len(runs) == 0 {
		return "There are no runs in the history.\n"
	}
	result := "\n"
	for _, run := range runs {
		fingerprint := run.Fingerprint
		if len(fingerprint) > 8 {
			fingerprint = fingerprint[:8]
		}
		result = result + text.BULLET + run.Started.Format(time.DateTime) + " " + text.Emph(fingerprint) +
			" " + run.Input + " → " + run.Output + "\n"
	}
	return result + "\n"
}

// Each driver has its own idea of what a parameter in a query looks like.
func placeholders(driver string, n int) string {
	marks := make([]string, n)
	for i := range marks {
		switch driver {
		case "postgres":
			marks[i] = "$" + strconv.Itoa(i+1)
		case "sqlserver":
			marks[i] = "@p" + strconv.Itoa(i+1)
		case "oracle":
			marks[i] = ":" + strconv.Itoa(i+1)
		default:
			marks[i] = "?"
		}
	}
	return strings.Join(marks, ", ")
}
