package repl

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/chzyer/readline"

	"github.com/tanema/minire/src/conf"
)

// Run starts an interactive repl reading commands with readline and writing
// results to out. It returns on ctrl-c with an empty buffer or on EOF.
func Run(cfg conf.REPL, out io.Writer, colored bool) error {
	prompt := cfg.Prompt
	if prompt == "" {
		prompt = conf.DEFAULTPROMPT
	}
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          prompt,
		HistoryFile:     cfg.HistoryFile,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return err
	}
	defer func() { _ = rl.Close() }()

	session := NewSession(out, colored)
	for {
		src, err := rl.Readline()
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) {
				if session.Pending() {
					rl.SetPrompt(prompt)
					session.Reset()
					fmt.Fprint(os.Stderr, "Press ctrl-c again to quit.\n")
					continue
				}
				break
			} else if errors.Is(err, io.EOF) {
				break
			}
			fmt.Fprintln(os.Stderr, err)
			continue
		}

		pending, err := session.Feed(src)
		if pending {
			rl.SetPrompt(conf.CONTINUEPROMPT)
			continue
		}
		rl.SetPrompt(prompt)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
	}
	return nil
}
