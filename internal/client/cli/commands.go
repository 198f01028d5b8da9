package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/dmitrijs2005/stackpick/internal/stack"
)

var (
	errNoCatalog = errors.New("no catalog loaded")
	errNoMatch   = errors.New("no template matches the current selection")
)

func (a *App) ensureWizard() error {
	if a.wizard == nil {
		return errNoCatalog
	}
	return nil
}

func (a *App) Options(ctx context.Context) error {
	if err := a.ensureWizard(); err != nil {
		return err
	}
	writeOptions(a.out, a.wizard)
	return nil
}

// Pick chooses value for the current step. A number is taken as the
// 1-based position in the options list when no option has that literal
// value.
func (a *App) Pick(ctx context.Context, value string) error {
	if err := a.ensureWizard(); err != nil {
		return err
	}

	opts := a.wizard.Options()
	if n, err := strconv.Atoi(value); err == nil && !contains(opts, value) && n >= 1 && n <= len(opts) {
		value = opts[n-1]
	}

	if !a.wizard.Choose(value) {
		return fmt.Errorf("%q is not offered for %s", value, a.wizard.Step())
	}
	fmt.Fprintf(a.out, "%s: %s\n", a.wizard.Step(), value)
	return nil
}

func (a *App) Next(ctx context.Context) error {
	if err := a.ensureWizard(); err != nil {
		return err
	}
	if !a.wizard.GoNext() {
		if a.wizard.Step() == stack.StepAuthMethod {
			return errors.New("already at the last step")
		}
		return fmt.Errorf("pick a %s first", a.wizard.Step())
	}
	writeOptions(a.out, a.wizard)
	return nil
}

func (a *App) Back(ctx context.Context) error {
	if err := a.ensureWizard(); err != nil {
		return err
	}
	if !a.wizard.GoPrev() {
		return errors.New("already at the first step")
	}
	writeOptions(a.out, a.wizard)
	return nil
}

func (a *App) Reset(ctx context.Context) error {
	if err := a.ensureWizard(); err != nil {
		return err
	}
	a.wizard.Reset()
	fmt.Fprintln(a.out, "Selection cleared")
	return nil
}

func (a *App) Status(ctx context.Context) error {
	fmt.Fprintf(a.out, "Mode:      %s\n", a.Mode())
	fmt.Fprintf(a.out, "Catalog:   %d templates (%s)\n", a.catalogSize, a.source)

	last, ok, err := a.catalogService.LastSync(ctx)
	if err != nil {
		return err
	}
	if ok {
		fmt.Fprintf(a.out, "Last sync: %s\n", last.Local().Format(time.DateTime))
	} else {
		fmt.Fprintln(a.out, "Last sync: never")
	}
	return nil
}

func (a *App) Summary(ctx context.Context) error {
	if err := a.ensureWizard(); err != nil {
		return err
	}
	writeSummary(a.out, a.wizard.Selection())
	return nil
}

// Download saves the archive of the matched template into the configured
// download directory.
func (a *App) Download(ctx context.Context) error {
	if err := a.ensureWizard(); err != nil {
		return err
	}
	t, ok := a.wizard.Selection().Match()
	if !ok {
		return errNoMatch
	}

	path, err := a.catalogService.Download(ctx, t.Slug, a.config.DownloadDir)
	if err != nil {
		a.logger.Error(ctx, "download failed", "slug", t.Slug, "error", err)
		return err
	}
	fmt.Fprintf(a.out, "Saved %s\n", path)
	return nil
}

// Sync refreshes the cache from the server and rebuilds the wizard,
// keeping every choice the new catalog still offers.
func (a *App) Sync(ctx context.Context) error {
	n, err := a.catalogService.Sync(ctx)
	if err != nil {
		a.setMode(ModeOffline)
		return err
	}
	a.setMode(ModeOnline)

	list, err := a.catalogService.Load(ctx)
	if err != nil {
		return err
	}

	prev := a.wizard
	a.startWizard(list, "server")
	if prev != nil {
		restore(a.wizard, prev)
	}

	fmt.Fprintf(a.out, "Synced %d templates\n", n)
	return nil
}

// restore replays the choices and step of prev onto w.
func restore(w, prev *stack.Wizard) {
	sel := prev.Selection()
	w.Selection().SetFrontend(sel.Frontend())
	w.Selection().SetBackend(sel.Backend())
	w.Selection().SetAuthMethod(sel.AuthMethod())
	for w.Step() < prev.Step() {
		if !w.GoNext() {
			return
		}
	}
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
