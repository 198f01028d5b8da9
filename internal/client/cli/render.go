package cli

import (
	"fmt"
	"io"

	"github.com/dmitrijs2005/stackpick/internal/stack"
)

func valueOrDash(v string) string {
	if v == "" {
		return "-"
	}
	return v
}

// writeOptions prints the current step and its choices, marking the one
// already picked.
func writeOptions(w io.Writer, wz *stack.Wizard) {
	fmt.Fprintf(w, "Step %d/3: %s\n", wz.Step(), wz.Step())

	opts := wz.Options()
	if len(opts) == 0 {
		fmt.Fprintln(w, "  (no options)")
		return
	}
	cur := wz.Current()
	for i, o := range opts {
		mark := " "
		if o == cur {
			mark = "*"
		}
		fmt.Fprintf(w, " %s %d) %s\n", mark, i+1, o)
	}
}

// writeSummary prints the three selections and, when they resolve to a
// template, how to get it.
func writeSummary(w io.Writer, sel *stack.Selection) {
	fmt.Fprintf(w, "Frontend:    %s\n", valueOrDash(sel.Frontend()))
	fmt.Fprintf(w, "Backend:     %s\n", valueOrDash(sel.Backend()))
	fmt.Fprintf(w, "Auth method: %s\n", valueOrDash(sel.AuthMethod()))

	t, ok := sel.Match()
	if !ok {
		if sel.Complete() {
			fmt.Fprintln(w, "No template matches this combination.")
		}
		return
	}

	fmt.Fprintf(w, "\nTemplate:    %s\n", t.Slug)
	fmt.Fprintf(w, "Clone:       %s\n", t.CloneCommand())
	if t.DocURL != "" {
		fmt.Fprintf(w, "Docs:        %s\n", t.DocURL)
	}
}
