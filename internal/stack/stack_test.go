package stack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scenarioCatalog() *Catalog {
	return NewCatalog([]Template{
		{Slug: "next-firebase-jwt", Frontend: "Next.js", Backend: "Firebase", AuthMethod: "JWT", GitBranch: "next-firebase-jwt", GitHubURL: "https://github.com/example/auth"},
		{Slug: "next-firebase-oauth", Frontend: "Next.js", Backend: "Firebase", AuthMethod: "OAuth"},
		{Slug: "vite-supabase-jwt", Frontend: "Vite", Backend: "Supabase", AuthMethod: "JWT"},
	})
}

// recorder captures every notification published by a Selection.
type recorder struct {
	calls []*Template
}

func (r *recorder) listen(m *Template) { r.calls = append(r.calls, m) }

func (r *recorder) last(t *testing.T) *Template {
	t.Helper()
	require.NotEmpty(t, r.calls, "listener was never called")
	return r.calls[len(r.calls)-1]
}

func TestScenario(t *testing.T) {
	c := scenarioCatalog()
	rec := &recorder{}
	w := NewWizard(c, rec.listen)

	assert.Equal(t, []string{"Next.js", "Vite"}, w.Options())

	require.True(t, w.Choose("Next.js"))
	require.True(t, w.GoNext())
	assert.Equal(t, []string{"Firebase"}, w.Options())

	require.True(t, w.Choose("Firebase"))
	require.True(t, w.GoNext())
	assert.Equal(t, []string{"JWT", "OAuth"}, w.Options())

	require.True(t, w.Choose("JWT"))
	m := rec.last(t)
	require.NotNil(t, m)
	assert.Equal(t, "next-firebase-jwt", m.Slug)

	got, ok := w.Selection().Match()
	require.True(t, ok)
	assert.Equal(t, *m, got)

	require.True(t, w.Selection().SetFrontend("Vite"))
	assert.Empty(t, w.Selection().Backend())
	assert.Empty(t, w.Selection().AuthMethod())
	assert.Nil(t, rec.last(t))
	assert.Equal(t, []string{"Supabase"}, BackendOptions(c, w.Selection().Frontend()))
}

func TestOptions_Idempotent(t *testing.T) {
	c := scenarioCatalog()

	assert.Equal(t, FrontendOptions(c), FrontendOptions(c))
	assert.Equal(t, BackendOptions(c, "Next.js"), BackendOptions(c, "Next.js"))
	assert.Equal(t, AuthOptions(c, "Next.js", "Firebase"), AuthOptions(c, "Next.js", "Firebase"))
}

func TestOptions_Wildcards(t *testing.T) {
	c := scenarioCatalog()

	tests := []struct {
		name string
		got  []string
		want []string
	}{
		{"all backends", BackendOptions(c, ""), []string{"Firebase", "Supabase"}},
		{"all auth methods", AuthOptions(c, "", ""), []string{"JWT", "OAuth"}},
		{"auth by backend only", AuthOptions(c, "", "Supabase"), []string{"JWT"}},
		{"unknown frontend", BackendOptions(c, "Angular"), []string{}},
		{"mismatched pair", AuthOptions(c, "Vite", "Firebase"), []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}

func TestOptions_EmptyCatalog(t *testing.T) {
	for _, c := range []*Catalog{nil, NewCatalog(nil)} {
		assert.Empty(t, FrontendOptions(c))
		assert.Empty(t, BackendOptions(c, "Next.js"))
		assert.Empty(t, AuthOptions(c, "Next.js", "Firebase"))
		_, ok := Resolve(c, "Next.js", "Firebase", "JWT")
		assert.False(t, ok)
	}
}

func TestResolve(t *testing.T) {
	c := NewCatalog([]Template{
		{Slug: "a", Frontend: "Vue", Backend: "MongoDB", AuthMethod: "MFA"},
		{Slug: "b", Frontend: "Vue", Backend: "MongoDB", AuthMethod: "MFA"},
		{Slug: "c", Frontend: "Vue", Backend: "MongoDB", AuthMethod: "Magic Link"},
	})

	t.Run("first match wins", func(t *testing.T) {
		got, ok := Resolve(c, "Vue", "MongoDB", "MFA")
		require.True(t, ok)
		assert.Equal(t, "a", got.Slug)
	})

	t.Run("deterministic", func(t *testing.T) {
		a, okA := Resolve(c, "Vue", "MongoDB", "Magic Link")
		b, okB := Resolve(c, "Vue", "MongoDB", "Magic Link")
		assert.Equal(t, okA, okB)
		assert.Equal(t, a, b)
	})

	t.Run("exact only", func(t *testing.T) {
		_, ok := Resolve(c, "Vue", "MongoDB", "Magic")
		assert.False(t, ok)
		_, ok = Resolve(c, "vue", "MongoDB", "MFA")
		assert.False(t, ok)
	})

	t.Run("partial triple", func(t *testing.T) {
		_, ok := Resolve(c, "Vue", "MongoDB", "")
		assert.False(t, ok)
	})
}

func TestSelection_CascadeClearsEvenCompatibleAuth(t *testing.T) {
	// JWT exists for both frontends, but the backend does not.
	s := NewSelection(scenarioCatalog(), nil)
	require.True(t, s.SetFrontend("Next.js"))
	require.True(t, s.SetBackend("Firebase"))
	require.True(t, s.SetAuthMethod("JWT"))

	require.True(t, s.SetFrontend("Vite"))
	assert.Equal(t, "Vite", s.Frontend())
	assert.Empty(t, s.Backend())
	assert.Empty(t, s.AuthMethod())
	_, ok := s.Match()
	assert.False(t, ok)
}

func TestSelection_CascadeKeepsValidDownstream(t *testing.T) {
	c := NewCatalog([]Template{
		{Slug: "n-pg-jwt", Frontend: "Next.js", Backend: "PostgreSQL", AuthMethod: "JWT"},
		{Slug: "v-pg-jwt", Frontend: "Vite", Backend: "PostgreSQL", AuthMethod: "JWT"},
		{Slug: "v-pg-mfa", Frontend: "Vite", Backend: "PostgreSQL", AuthMethod: "MFA"},
	})
	rec := &recorder{}
	s := NewSelection(c, rec.listen)
	require.True(t, s.SetFrontend("Next.js"))
	require.True(t, s.SetBackend("PostgreSQL"))
	require.True(t, s.SetAuthMethod("JWT"))
	require.Equal(t, "n-pg-jwt", rec.last(t).Slug)

	require.True(t, s.SetFrontend("Vite"))
	assert.Equal(t, "PostgreSQL", s.Backend())
	assert.Equal(t, "JWT", s.AuthMethod())
	require.NotNil(t, rec.last(t))
	assert.Equal(t, "v-pg-jwt", rec.last(t).Slug)
}

func TestSelection_AuthOnlyInvalidatedWhenIncompatible(t *testing.T) {
	c := NewCatalog([]Template{
		{Slug: "n-pg-jwt", Frontend: "Next.js", Backend: "PostgreSQL", AuthMethod: "JWT"},
		{Slug: "n-pg-mfa", Frontend: "Next.js", Backend: "PostgreSQL", AuthMethod: "MFA"},
		{Slug: "v-pg-jwt", Frontend: "Vite", Backend: "PostgreSQL", AuthMethod: "JWT"},
	})
	s := NewSelection(c, nil)
	require.True(t, s.SetFrontend("Next.js"))
	require.True(t, s.SetBackend("PostgreSQL"))
	require.True(t, s.SetAuthMethod("MFA"))

	require.True(t, s.SetFrontend("Vite"))
	assert.Equal(t, "PostgreSQL", s.Backend())
	assert.Empty(t, s.AuthMethod())
}

func TestSelection_DownstreamChangeKeepsUpstream(t *testing.T) {
	s := NewSelection(scenarioCatalog(), nil)
	require.True(t, s.SetFrontend("Next.js"))
	require.True(t, s.SetBackend("Firebase"))
	require.True(t, s.SetAuthMethod("JWT"))
	require.True(t, s.SetAuthMethod("OAuth"))

	assert.Equal(t, "Next.js", s.Frontend())
	assert.Equal(t, "Firebase", s.Backend())
	m, ok := s.Match()
	require.True(t, ok)
	assert.Equal(t, "next-firebase-oauth", m.Slug)
}

func TestSelection_InvalidValuesAreIgnored(t *testing.T) {
	rec := &recorder{}
	s := NewSelection(scenarioCatalog(), rec.listen)

	assert.False(t, s.SetBackend("Firebase"), "backend before frontend")
	assert.False(t, s.SetAuthMethod("JWT"), "auth before backend")
	assert.False(t, s.SetFrontend("Angular"))
	assert.Empty(t, rec.calls, "ignored calls must not publish")

	require.True(t, s.SetFrontend("Vite"))
	assert.False(t, s.SetBackend("Firebase"), "stale backend from another frontend")
	assert.Equal(t, "Vite", s.Frontend())
	assert.Empty(t, s.Backend())
}

func TestSelection_ClearingCascades(t *testing.T) {
	s := NewSelection(scenarioCatalog(), nil)
	require.True(t, s.SetFrontend("Next.js"))
	require.True(t, s.SetBackend("Firebase"))
	require.True(t, s.SetAuthMethod("OAuth"))

	require.True(t, s.SetBackend(""))
	assert.Equal(t, "Next.js", s.Frontend())
	assert.Empty(t, s.AuthMethod())

	require.True(t, s.SetBackend("Firebase"))
	require.True(t, s.SetAuthMethod("OAuth"))
	require.True(t, s.SetFrontend(""))
	assert.Empty(t, s.Backend())
	assert.Empty(t, s.AuthMethod())
}

func TestSelection_ListenerGetsCopy(t *testing.T) {
	var got *Template
	s := NewSelection(scenarioCatalog(), func(m *Template) { got = m })
	s.SetFrontend("Vite")
	s.SetBackend("Supabase")
	s.SetAuthMethod("JWT")
	require.NotNil(t, got)

	got.Slug = "tampered"
	m, ok := s.Match()
	require.True(t, ok)
	assert.Equal(t, "vite-supabase-jwt", m.Slug)
}

func TestWizard_NoOpBoundaries(t *testing.T) {
	w := NewWizard(scenarioCatalog(), nil)

	assert.False(t, w.GoPrev(), "prev at step 1")
	assert.Equal(t, StepFrontend, w.Step())

	assert.False(t, w.GoNext(), "next without a frontend")
	assert.Equal(t, StepFrontend, w.Step())

	require.True(t, w.Choose("Next.js"))
	require.True(t, w.GoNext())
	assert.False(t, w.GoNext(), "next without a backend")
	assert.Equal(t, StepBackend, w.Step())

	require.True(t, w.Choose("Firebase"))
	require.True(t, w.GoNext())
	require.True(t, w.Choose("OAuth"))
	assert.False(t, w.GoNext(), "next at step 3")
	assert.Equal(t, StepAuthMethod, w.Step())
}

func TestWizard_BackKeepsSelections(t *testing.T) {
	w := NewWizard(scenarioCatalog(), nil)
	w.Choose("Next.js")
	w.GoNext()
	w.Choose("Firebase")
	w.GoNext()
	w.Choose("JWT")

	require.True(t, w.GoPrev())
	require.True(t, w.GoPrev())
	assert.Equal(t, StepFrontend, w.Step())
	assert.Equal(t, "Next.js", w.Selection().Frontend())
	assert.Equal(t, "Firebase", w.Selection().Backend())
	assert.Equal(t, "JWT", w.Selection().AuthMethod())
	_, ok := w.Selection().Match()
	assert.True(t, ok)
}

func TestWizard_ChooseRejectsStaleOption(t *testing.T) {
	w := NewWizard(scenarioCatalog(), nil)
	w.Choose("Vite")
	w.GoNext()

	assert.False(t, w.Choose("Firebase"))
	assert.False(t, w.Choose(""))
	assert.Empty(t, w.Current())
	assert.False(t, w.CanAdvance())
}

func TestWizard_Reset(t *testing.T) {
	rec := &recorder{}
	w := NewWizard(scenarioCatalog(), rec.listen)
	w.Choose("Next.js")
	w.GoNext()
	w.Choose("Firebase")
	w.GoNext()
	w.Choose("JWT")
	require.NotNil(t, rec.last(t))

	w.Reset()

	assert.Equal(t, StepFrontend, w.Step())
	assert.Empty(t, w.Selection().Frontend())
	assert.Empty(t, w.Selection().Backend())
	assert.Empty(t, w.Selection().AuthMethod())
	_, ok := w.Selection().Match()
	assert.False(t, ok)
	assert.Nil(t, rec.last(t))
}

func TestStep_String(t *testing.T) {
	assert.Equal(t, "frontend", StepFrontend.String())
	assert.Equal(t, "backend", StepBackend.String())
	assert.Equal(t, "auth method", StepAuthMethod.String())
	assert.Equal(t, "unknown", Step(7).String())
}
