package stack

// Resolve returns the first template, in catalog order, whose frontend,
// backend and auth method equal the arguments exactly. The second result is
// false when nothing matches or when any argument is empty.
func Resolve(c *Catalog, frontend, backend, authMethod string) (Template, bool) {
	if frontend == "" || backend == "" || authMethod == "" {
		return Template{}, false
	}
	for _, t := range c.all() {
		if t.Frontend == frontend && t.Backend == backend && t.AuthMethod == authMethod {
			return t, true
		}
	}
	return Template{}, false
}
