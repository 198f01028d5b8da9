package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"golang.org/x/term"
)

// isTerminal is a test seam for term.IsTerminal.
var isTerminal = term.IsTerminal

// stdin is the REPL input.
var stdin = os.Stdin

func (a *App) getStatus() string {
	s := ""
	if a.wizard != nil {
		s = a.wizard.Step().String() + " "
	}
	s += string(a.Mode())
	return fmt.Sprintf("(%s)", s)
}

// Root runs the REPL on stdin until the user exits or input ends. The
// online-status watcher runs alongside it and stops when Root returns.
func (a *App) Root(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)

	var prompt func() string
	if isTerminal(int(stdin.Fd())) {
		fmt.Fprintln(a.out, "Welcome to stackpick (type 'help' for commands)")
		prompt = func() string { return fmt.Sprintf("stackpick %s> ", a.getStatus()) }
	}

	runREPL(ctx, a, a.out, prompt, bufio.NewScanner(stdin))
}
