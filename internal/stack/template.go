package stack

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/stackpick/internal/common"
)

// Template is a single starter template in the catalog.
//
// Frontend, Backend and AuthMethod are the selection dimensions. GitBranch,
// DocURL and GitHubURL are opaque to the engine and only passed through to
// whatever renders the result.
type Template struct {
	Slug       string `json:"slug"`
	Frontend   string `json:"frontend"`
	Backend    string `json:"backend"`
	AuthMethod string `json:"authMethod"`
	GitBranch  string `json:"gitBranch"`
	DocURL     string `json:"docUrl"`
	GitHubURL  string `json:"githubUrl"`
}

// Triple returns the three selection dimensions of t.
func (t Template) Triple() (frontend, backend, authMethod string) {
	return t.Frontend, t.Backend, t.AuthMethod
}

// CloneCommand returns the git command that checks out the template branch.
func (t Template) CloneCommand() string {
	if t.GitBranch == "" {
		return fmt.Sprintf("git clone %s", t.GitHubURL)
	}
	return fmt.Sprintf("git clone -b %s %s", t.GitBranch, t.GitHubURL)
}

// Catalog is an immutable, ordered list of templates.
type Catalog struct {
	templates []Template
}

// NewCatalog copies templates into a new Catalog. Later changes to the
// argument slice are not visible through the catalog.
func NewCatalog(templates []Template) *Catalog {
	c := &Catalog{templates: make([]Template, len(templates))}
	copy(c.templates, templates)
	return c
}

// Len returns the number of templates.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.templates)
}

// Templates returns a copy of the templates in catalog order.
func (c *Catalog) Templates() []Template {
	if c == nil {
		return nil
	}
	out := make([]Template, len(c.templates))
	copy(out, c.templates)
	return out
}

// BySlug returns the template with the given slug.
func (c *Catalog) BySlug(slug string) (Template, bool) {
	for _, t := range c.all() {
		if t.Slug == slug {
			return t, true
		}
	}
	return Template{}, false
}

func (c *Catalog) all() []Template {
	if c == nil {
		return nil
	}
	return c.templates
}

// Conflict describes templates sharing the same selection triple. Only the
// first one (Winner) can ever be matched.
type Conflict struct {
	Frontend   string
	Backend    string
	AuthMethod string
	Winner     string
	Shadowed   []string
}

func (c Conflict) String() string {
	return fmt.Sprintf("%s/%s/%s resolves to %q, shadowing %s",
		c.Frontend, c.Backend, c.AuthMethod, c.Winner, strings.Join(c.Shadowed, ", "))
}

type triple struct{ f, b, a string }

// Validate checks templates before they are used to build a catalog.
//
// Empty slugs, empty dimension labels and duplicate slugs make the catalog
// invalid and are reported as an error wrapping common.ErrInvalidCatalog.
// Templates that share a triple are allowed but reported as conflicts, in
// the order their triples first appear.
func Validate(templates []Template) ([]Conflict, error) {
	slugs := make(map[string]int, len(templates))
	index := make(map[triple]int)
	var conflicts []Conflict

	for i, t := range templates {
		if t.Slug == "" {
			return nil, fmt.Errorf("%w: template #%d has no slug", common.ErrInvalidCatalog, i)
		}
		if prev, ok := slugs[t.Slug]; ok {
			return nil, fmt.Errorf("%w: slug %q used by templates #%d and #%d", common.ErrInvalidCatalog, t.Slug, prev, i)
		}
		slugs[t.Slug] = i

		if t.Frontend == "" || t.Backend == "" || t.AuthMethod == "" {
			return nil, fmt.Errorf("%w: template %q has an empty dimension", common.ErrInvalidCatalog, t.Slug)
		}

		k := triple{t.Frontend, t.Backend, t.AuthMethod}
		if pos, ok := index[k]; ok {
			conflicts[pos].Shadowed = append(conflicts[pos].Shadowed, t.Slug)
			continue
		}
		index[k] = len(conflicts)
		conflicts = append(conflicts, Conflict{Frontend: t.Frontend, Backend: t.Backend, AuthMethod: t.AuthMethod, Winner: t.Slug})
	}

	// keep only triples that actually collide
	out := conflicts[:0]
	for _, c := range conflicts {
		if len(c.Shadowed) > 0 {
			out = append(out, c)
		}
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out, nil
}
