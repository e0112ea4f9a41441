package shell

import (
	"fmt"

	"github.com/chzyer/readline"
)

// LineReader reads one line of user input at a time.
// *readline.Instance satisfies this interface.
type LineReader interface {
	Readline() (string, error)
	SetPrompt(prompt string)
	Close() error
}

// NewReadline creates a terminal LineReader. An empty historyFile disables
// persistent history.
func NewReadline(historyFile string) (*readline.Instance, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          choicePrompt,
		HistoryFile:     historyFile,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		AutoComplete: readline.NewPrefixCompleter(
			readline.PcItem(doneKeyword),
		),
	})
	if err != nil {
		return nil, fmt.Errorf("initialize prompt: %w", err)
	}
	return rl, nil
}
