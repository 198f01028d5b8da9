package stack

// FrontendOptions returns the distinct frontends of the catalog in order of
// first appearance.
func FrontendOptions(c *Catalog) []string {
	return distinct(c, func(Template) bool { return true }, func(t Template) string { return t.Frontend })
}

// BackendOptions returns the distinct backends of templates built on
// frontend, in order of first appearance. An empty frontend matches every
// template.
func BackendOptions(c *Catalog, frontend string) []string {
	return distinct(c,
		func(t Template) bool { return matches(t.Frontend, frontend) },
		func(t Template) string { return t.Backend })
}

// AuthOptions returns the distinct auth methods of templates built on
// frontend and backend, in order of first appearance. Empty arguments match
// every template.
func AuthOptions(c *Catalog, frontend, backend string) []string {
	return distinct(c,
		func(t Template) bool { return matches(t.Frontend, frontend) && matches(t.Backend, backend) },
		func(t Template) string { return t.AuthMethod })
}

func matches(value, want string) bool {
	return want == "" || value == want
}

func distinct(c *Catalog, keep func(Template) bool, field func(Template) string) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, t := range c.all() {
		if !keep(t) {
			continue
		}
		v := field(t)
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

func contains(options []string, v string) bool {
	for _, o := range options {
		if o == v {
			return true
		}
	}
	return false
}
