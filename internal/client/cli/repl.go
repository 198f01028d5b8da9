package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	Options(ctx context.Context) error
	Pick(ctx context.Context, value string) error
	Next(ctx context.Context) error
	Back(ctx context.Context) error
	Reset(ctx context.Context) error
	Status(ctx context.Context) error
	Summary(ctx context.Context) error
	Download(ctx context.Context) error
	Sync(ctx context.Context) error
}

const helpText = "Available commands: options, pick <value>, next, back, reset, status, summary, download, sync, exit"

// runREPL starts a read–eval–print loop for the stackpick CLI.
//
// It reads a line from scanner, takes the first token as the command and
// dispatches to a. Prompts and REPL messages go to out, which should be the
// writer the commands print to so both stay in order. The loop exits on scanner EOF or when the user types
// "exit" or "quit". A nil prompt suppresses the prompt, which is how piped
// input is handled.
//
// Commands:
//
//	help           show available commands
//	options        list the choices for the current step
//	pick <value>   choose a value for the current step
//	next | back    move between steps
//	reset          clear every choice
//	status         show connectivity, catalog source and last sync
//	summary        show the selections and the matching template
//	download       save the matched template archive
//	sync           refresh the catalog from the server
//	exit | quit    leave the program
//
// Values may contain spaces: everything after "pick " is the value.
// Handler errors are printed and the loop continues.
func runREPL(ctx context.Context, a execIface, out io.Writer, prompt func() string, scanner *bufio.Scanner) {
	for {
		if prompt != nil {
			fmt.Fprint(out, prompt())
		}
		if !scanner.Scan() {
			return
		}
		line := strings.TrimSpace(scanner.Text())
		cmd, rest, _ := strings.Cut(line, " ")
		if cmd == "" {
			continue
		}
		rest = strings.TrimSpace(rest)

		var err error
		switch cmd {
		case "help":
			fmt.Fprintln(out, helpText)

		case "options":
			err = a.Options(ctx)

		case "pick":
			if rest == "" {
				fmt.Fprintln(out, "Usage: pick <value>")
				continue
			}
			err = a.Pick(ctx, rest)

		case "next":
			err = a.Next(ctx)

		case "back":
			err = a.Back(ctx)

		case "reset":
			err = a.Reset(ctx)

		case "status":
			err = a.Status(ctx)

		case "summary":
			err = a.Summary(ctx)

		case "download":
			err = a.Download(ctx)

		case "sync":
			err = a.Sync(ctx)

		case "exit", "quit":
			fmt.Fprintln(out, "Bye!")
			return

		default:
			fmt.Fprintln(out, "Unknown command:", cmd)
		}

		if err != nil {
			fmt.Fprintln(out, "Error:", err)
		}
	}
}
