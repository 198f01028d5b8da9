package stack

// Step is a position in the wizard.
type Step int

const (
	StepFrontend   Step = 1
	StepBackend    Step = 2
	StepAuthMethod Step = 3
)

func (s Step) String() string {
	switch s {
	case StepFrontend:
		return "frontend"
	case StepBackend:
		return "backend"
	case StepAuthMethod:
		return "auth method"
	}
	return "unknown"
}

// Wizard walks a Selection one dimension at a time.
//
// Moving forward requires the current step's dimension to be chosen;
// moving back keeps every choice so it can be reviewed. There is no final
// state: the user may go back and forth or reset at any time.
type Wizard struct {
	sel  *Selection
	step Step
}

// NewWizard starts a wizard at the first step with nothing selected.
func NewWizard(c *Catalog, l Listener) *Wizard {
	return &Wizard{sel: NewSelection(c, l), step: StepFrontend}
}

func (w *Wizard) Step() Step            { return w.step }
func (w *Wizard) Selection() *Selection { return w.sel }

// Options returns the choices offered at the current step.
func (w *Wizard) Options() []string {
	switch w.step {
	case StepBackend:
		return BackendOptions(w.sel.catalog, w.sel.frontend)
	case StepAuthMethod:
		return AuthOptions(w.sel.catalog, w.sel.frontend, w.sel.backend)
	}
	return FrontendOptions(w.sel.catalog)
}

// Current returns the value chosen at the current step, or "".
func (w *Wizard) Current() string {
	switch w.step {
	case StepBackend:
		return w.sel.backend
	case StepAuthMethod:
		return w.sel.authMethod
	}
	return w.sel.frontend
}

// Choose sets the current step's dimension to v. It reports false, leaving
// the state untouched, when v is not among Options.
func (w *Wizard) Choose(v string) bool {
	if v == "" {
		return false
	}
	switch w.step {
	case StepBackend:
		return w.sel.SetBackend(v)
	case StepAuthMethod:
		return w.sel.SetAuthMethod(v)
	}
	return w.sel.SetFrontend(v)
}

// CanAdvance reports whether GoNext would move forward.
func (w *Wizard) CanAdvance() bool {
	return w.step < StepAuthMethod && w.Current() != ""
}

// GoNext moves to the next step. It is a no-op at the last step or when
// the current step has no choice yet.
func (w *Wizard) GoNext() bool {
	if !w.CanAdvance() {
		return false
	}
	w.step++
	return true
}

// GoPrev moves to the previous step without clearing anything. It is a
// no-op at the first step.
func (w *Wizard) GoPrev() bool {
	if w.step <= StepFrontend {
		return false
	}
	w.step--
	return true
}

// Reset clears the selection and returns to the first step.
func (w *Wizard) Reset() {
	w.sel.Reset()
	w.step = StepFrontend
}
