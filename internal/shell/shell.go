package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/chzyer/readline"

	logAdapter "github.com/bft-labs/petdb/internal/adapters/log"
	"github.com/bft-labs/petdb/internal/app"
	"github.com/bft-labs/petdb/internal/domain"
	"github.com/bft-labs/petdb/internal/ports"
)

const (
	choicePrompt = "Your choice: "
	addPrompt    = "add pet (name, age): "
	removePrompt = "Enter the pet ID to remove: "
	doneKeyword  = "done"
)

// Menu choices.
const (
	choiceView = iota + 1
	choiceAdd
	choiceRemove
	choiceSave
	choiceExit
)

const menuText = `Pet Database Program.
What would you like to do?
1) View all pets
2) Add new pets
3) Remove a pet
4) Save
5) Exit program`

// errExit ends the menu loop.
var errExit = errors.New("exit")

// Option configures optional behavior of a Shell.
type Option func(*options)

type options struct {
	out     io.Writer
	errOut  io.Writer
	logger  ports.Logger
	watcher ports.FileWatcher
}

// WithOutput sets the writers for normal and error output.
// Defaults are os.Stdout and os.Stderr.
func WithOutput(out, errOut io.Writer) Option {
	return func(o *options) {
		o.out = out
		o.errOut = errOut
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger ports.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithWatcher warns through the logger whenever the data file is changed by
// another process while the shell runs.
func WithWatcher(w ports.FileWatcher) Option {
	return func(o *options) {
		o.watcher = w
	}
}

// Shell is the interactive menu loop.
type Shell struct {
	db      *app.Database
	in      LineReader
	out     io.Writer
	errOut  io.Writer
	logger  ports.Logger
	watcher ports.FileWatcher
}

// New creates a Shell reading from in and operating on db.
func New(db *app.Database, in LineReader, opts ...Option) *Shell {
	o := options{out: os.Stdout, errOut: os.Stderr, logger: logAdapter.NewNoopLogger()}
	for _, opt := range opts {
		opt(&o)
	}
	return &Shell{
		db:      db,
		in:      in,
		out:     o.out,
		errOut:  o.errOut,
		logger:  o.logger,
		watcher: o.watcher,
	}
}

// Run shows the menu until the user exits, input ends or ctx is cancelled,
// then saves. Errors from individual operations are printed and the loop
// continues; only a failed final save is returned.
func (s *Shell) Run(ctx context.Context) error {
	watchCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	if s.watcher != nil {
		go s.watch(watchCtx)
	}

	for {
		if ctx.Err() != nil {
			s.logger.Info("shutting down, saving data file", ports.String("path", s.db.Path()))
			break
		}
		err := s.step(ctx)
		if errors.Is(err, errExit) {
			break
		}
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if err != nil {
			s.printErr(err)
		}
	}

	// The final save runs even when ctx was cancelled by a signal.
	if err := s.db.Save(context.WithoutCancel(ctx)); err != nil {
		return err
	}
	s.println("Goodbye!")
	return nil
}

// step shows the menu and runs one choice.
func (s *Shell) step(ctx context.Context) error {
	s.println(menuText)
	line, err := s.readLine(choicePrompt)
	if err != nil {
		return err
	}

	choice, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		choice = -1
	}

	switch choice {
	case choiceView:
		RenderTable(s.out, s.db.List())
	case choiceAdd:
		return s.addPets()
	case choiceRemove:
		return s.removePet()
	case choiceSave:
		if err := s.db.Save(ctx); err != nil {
			return err
		}
		s.printf("Saved %d pets to %s.\n", s.db.Size(), s.db.Path())
	case choiceExit:
		return errExit
	default:
		s.println("Invalid choice. Please try again.")
	}
	return nil
}

// addPets reads "<name> <age>" lines until "done".
func (s *Shell) addPets() error {
	added := 0
	defer func() { s.printf("%d pets added.\n", added) }()

	for {
		line, err := s.readLine(addPrompt)
		if errors.Is(err, readline.ErrInterrupt) {
			return nil
		}
		if err != nil {
			return err
		}
		line = strings.TrimSpace(line)
		if line == doneKeyword {
			return nil
		}
		if line == "" {
			continue
		}
		if _, err := s.db.Add(line); err != nil {
			s.printErr(err)
			s.logger.Debug("rejected pet", ports.String("input", line), ports.Err(err))
			continue
		}
		added++
	}
}

func (s *Shell) removePet() error {
	if s.db.Empty() {
		s.println("No pets to remove.")
		return nil
	}
	RenderTable(s.out, s.db.List())

	line, err := s.readLine(removePrompt)
	if err != nil {
		return err
	}
	id, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return fmt.Errorf("%w: %q is not an ID", domain.ErrInvalidPosition, strings.TrimSpace(line))
	}
	if err := s.db.Remove(id); err != nil {
		return err
	}
	s.printf("Pet at ID %d is removed.\n", id)
	return nil
}

// readLine prompts and reads one line. End of input maps to errExit.
func (s *Shell) readLine(prompt string) (string, error) {
	s.in.SetPrompt(prompt)
	line, err := s.in.Readline()
	if errors.Is(err, io.EOF) {
		return "", errExit
	}
	return line, err
}

func (s *Shell) watch(ctx context.Context) {
	err := s.watcher.Run(ctx, func() {
		stale, err := s.db.Stale(ctx)
		if err != nil {
			s.logger.Warn("check data file", ports.Err(err))
			return
		}
		if stale {
			s.logger.Warn("data file changed on disk; saving will overwrite it",
				ports.String("path", s.db.Path()))
		}
	})
	if err != nil {
		s.logger.Warn("file watcher stopped", ports.Err(err))
	}
}

func (s *Shell) println(msg string) {
	_, _ = fmt.Fprintln(s.out, msg)
}

func (s *Shell) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(s.out, format, args...)
}

func (s *Shell) printErr(err error) {
	_, _ = fmt.Fprintf(s.errOut, "Error: %v\n", err)
}
