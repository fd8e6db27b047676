package shell

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"kopadb/database"
	"kopadb/executor"
)

// DefaultPrompt is shown before each command.
const DefaultPrompt = "kopadb> "

// Shell is the interactive line shell
type Shell struct {
	db     *database.Database
	exec   *executor.Executor
	in     io.Reader
	out    io.Writer
	prompt string
	log    logrus.FieldLogger
}

// Option configures a Shell
type Option func(*Shell)

func WithPrompt(prompt string) Option {
	return func(s *Shell) { s.prompt = prompt }
}

func WithLogger(log logrus.FieldLogger) Option {
	return func(s *Shell) { s.log = log }
}

// New creates a shell reading commands from in and writing to out.
func New(db *database.Database, exec *executor.Executor, in io.Reader, out io.Writer, opts ...Option) *Shell {
	s := &Shell{
		db:     db,
		exec:   exec,
		in:     in,
		out:    out,
		prompt: DefaultPrompt,
		log:    logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run reads commands until exit or end of input. Command errors are printed
// and do not stop the loop.
func (s *Shell) Run() error {
	fmt.Fprintln(s.out, "Welcome to KopaDB. Type 'exit' to quit.")
	scanner := bufio.NewScanner(s.in)
	for {
		fmt.Fprint(s.out, s.prompt)
		if !scanner.Scan() {
			break
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if strings.EqualFold(line, "exit") || strings.EqualFold(line, "quit") {
			break
		}
		if strings.HasPrefix(line, ".") {
			if s.handleMetaCommand(line) {
				break
			}
			continue
		}

		res, err := s.exec.Run(line)
		if err != nil {
			s.log.WithError(err).Debug("command failed")
			fmt.Fprintf(s.out, "Error: %v\n", err)
			continue
		}
		render(s.out, res)
	}
	fmt.Fprintln(s.out, "Goodbye!")
	return scanner.Err()
}

// handleMetaCommand processes dot commands. Returns true to exit the shell.
func (s *Shell) handleMetaCommand(line string) bool {
	parts := strings.Fields(line)
	switch strings.ToLower(parts[0]) {
	case ".exit", ".quit":
		return true
	case ".help":
		s.printHelp()
	case ".tables":
		for _, name := range s.db.Names() {
			fmt.Fprintln(s.out, name)
		}
	case ".schema":
		s.showSchema(parts[1:])
	case ".indexes":
		s.showIndexes(parts[1:])
	default:
		fmt.Fprintf(s.out, "Unknown command: %s (try .help)\n", parts[0])
	}
	return false
}

func (s *Shell) printHelp() {
	fmt.Fprintln(s.out, "  .tables           List tables")
	fmt.Fprintln(s.out, "  .schema TABLE     Show columns and keys")
	fmt.Fprintln(s.out, "  .indexes TABLE    Show index statistics")
	fmt.Fprintln(s.out, "  .exit             Leave the shell")
}

func (s *Shell) showSchema(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(s.out, "Usage: .schema TABLE")
		return
	}
	t, err := s.db.Table(args[0])
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	for _, col := range t.Schema().Columns() {
		var mods []string
		if col.Name == t.PrimaryKey() {
			mods = append(mods, "PRIMARY KEY")
		}
		for _, u := range t.UniqueKeys() {
			if u == col.Name {
				mods = append(mods, "UNIQUE")
			}
		}
		fmt.Fprintln(s.out, strings.TrimSpace(fmt.Sprintf("%s %s %s", col.Name, col.Type, strings.Join(mods, " "))))
	}
}

func (s *Shell) showIndexes(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(s.out, "Usage: .indexes TABLE")
		return
	}
	stats, err := s.db.IndexStats(args[0])
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	if len(stats) == 0 {
		fmt.Fprintln(s.out, "No indexes.")
		return
	}
	for _, st := range stats {
		fmt.Fprintf(s.out, "%s: %d distinct, %d rows\n", st.Column, st.DistinctValues, st.TotalRowsIndexed)
	}
}
