package stack

// Listener receives the current match after every change of a Selection.
// It is called with nil when the selection is incomplete or matches nothing.
type Listener func(match *Template)

// Selection holds the frontend, backend and auth method chosen so far and
// keeps them consistent with each other and with the catalog.
//
// The dimensions form a chain: frontend -> backend -> auth method. Changing
// or clearing an upstream value re-validates everything downstream of it;
// changing a downstream value never touches anything upstream.
type Selection struct {
	catalog    *Catalog
	frontend   string
	backend    string
	authMethod string
	matched    *Template
	listener   Listener
}

// NewSelection returns an empty selection over c. l may be nil.
func NewSelection(c *Catalog, l Listener) *Selection {
	return &Selection{catalog: c, listener: l}
}

func (s *Selection) Frontend() string   { return s.frontend }
func (s *Selection) Backend() string    { return s.backend }
func (s *Selection) AuthMethod() string { return s.authMethod }

// Complete reports whether all three dimensions are chosen.
func (s *Selection) Complete() bool {
	return s.frontend != "" && s.backend != "" && s.authMethod != ""
}

// Match returns the template matching the current selection, if any.
func (s *Selection) Match() (Template, bool) {
	if s.matched == nil {
		return Template{}, false
	}
	return *s.matched, true
}

// SetFrontend chooses v as the frontend. An empty v clears the frontend and
// everything downstream. A value the catalog does not offer is ignored and
// false is returned.
func (s *Selection) SetFrontend(v string) bool {
	if v != "" && !contains(FrontendOptions(s.catalog), v) {
		return false
	}
	s.frontend = v
	s.revalidate()
	return true
}

// SetBackend chooses v as the backend. A frontend must be chosen and v must
// be offered for it; otherwise the call is ignored and false is returned.
// An empty v clears the backend and the auth method.
func (s *Selection) SetBackend(v string) bool {
	if v != "" && (s.frontend == "" || !contains(BackendOptions(s.catalog, s.frontend), v)) {
		return false
	}
	s.backend = v
	s.revalidate()
	return true
}

// SetAuthMethod chooses v as the auth method. A backend must be chosen and v
// must be offered for the current frontend and backend; otherwise the call
// is ignored and false is returned. An empty v clears the auth method.
func (s *Selection) SetAuthMethod(v string) bool {
	if v != "" && (s.backend == "" || !contains(AuthOptions(s.catalog, s.frontend, s.backend), v)) {
		return false
	}
	s.authMethod = v
	s.revalidate()
	return true
}

// Reset clears all three dimensions and publishes a nil match.
func (s *Selection) Reset() {
	s.frontend, s.backend, s.authMethod = "", "", ""
	s.revalidate()
}

// revalidate walks the chain from the top, clearing every value that is no
// longer offered given the values above it, then recomputes the match and
// notifies the listener.
func (s *Selection) revalidate() {
	if s.backend != "" && (s.frontend == "" || !contains(BackendOptions(s.catalog, s.frontend), s.backend)) {
		s.backend = ""
	}
	if s.backend == "" {
		s.authMethod = ""
	} else if s.authMethod != "" && !contains(AuthOptions(s.catalog, s.frontend, s.backend), s.authMethod) {
		s.authMethod = ""
	}

	s.matched = nil
	if s.Complete() {
		if t, ok := Resolve(s.catalog, s.frontend, s.backend, s.authMethod); ok {
			s.matched = &t
		}
	}

	if s.listener != nil {
		var m *Template
		if s.matched != nil {
			c := *s.matched
			m = &c
		}
		s.listener(m)
	}
}
