package stack

import (
	"errors"
	"testing"

	"github.com/dmitrijs2005/stackpick/internal/common"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCatalog_CopiesInput(t *testing.T) {
	in := []Template{{Slug: "a", Frontend: "Vue", Backend: "MongoDB", AuthMethod: "JWT"}}
	c := NewCatalog(in)
	in[0].Slug = "changed"

	assert.Equal(t, "a", c.Templates()[0].Slug)

	out := c.Templates()
	out[0].Slug = "changed"
	assert.Equal(t, "a", c.Templates()[0].Slug)
	assert.Equal(t, 1, c.Len())
}

func TestCatalog_NilSafe(t *testing.T) {
	var c *Catalog
	assert.Equal(t, 0, c.Len())
	assert.Nil(t, c.Templates())
	_, ok := c.BySlug("x")
	assert.False(t, ok)
}

func TestCatalog_BySlug(t *testing.T) {
	c := scenarioCatalog()
	got, ok := c.BySlug("vite-supabase-jwt")
	require.True(t, ok)
	assert.Equal(t, "Vite", got.Frontend)

	_, ok = c.BySlug("missing")
	assert.False(t, ok)
}

func TestTemplate_CloneCommand(t *testing.T) {
	tm := Template{GitBranch: "vite-supabase", GitHubURL: "https://github.com/example/auth.git"}
	assert.Equal(t, "git clone -b vite-supabase https://github.com/example/auth.git", tm.CloneCommand())

	tm.GitBranch = ""
	assert.Equal(t, "git clone https://github.com/example/auth.git", tm.CloneCommand())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		in        []Template
		wantErr   bool
		conflicts []Conflict
	}{
		{
			name: "valid",
			in:   scenarioCatalog().Templates(),
		},
		{
			name: "empty",
			in:   nil,
		},
		{
			name:    "missing slug",
			in:      []Template{{Frontend: "Vue", Backend: "MongoDB", AuthMethod: "JWT"}},
			wantErr: true,
		},
		{
			name:    "missing dimension",
			in:      []Template{{Slug: "a", Frontend: "Vue", AuthMethod: "JWT"}},
			wantErr: true,
		},
		{
			name: "duplicate slug",
			in: []Template{
				{Slug: "a", Frontend: "Vue", Backend: "MongoDB", AuthMethod: "JWT"},
				{Slug: "a", Frontend: "Vite", Backend: "MongoDB", AuthMethod: "JWT"},
			},
			wantErr: true,
		},
		{
			name: "duplicate triple",
			in: []Template{
				{Slug: "a", Frontend: "Vue", Backend: "MongoDB", AuthMethod: "JWT"},
				{Slug: "b", Frontend: "Vite", Backend: "MongoDB", AuthMethod: "JWT"},
				{Slug: "c", Frontend: "Vue", Backend: "MongoDB", AuthMethod: "JWT"},
				{Slug: "d", Frontend: "Vue", Backend: "MongoDB", AuthMethod: "JWT"},
			},
			conflicts: []Conflict{
				{Frontend: "Vue", Backend: "MongoDB", AuthMethod: "JWT", Winner: "a", Shadowed: []string{"c", "d"}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conflicts, err := Validate(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, common.ErrInvalidCatalog))
				return
			}
			require.NoError(t, err)
			assert.Empty(t, cmp.Diff(tt.conflicts, conflicts))
		})
	}
}

func TestConflict_String(t *testing.T) {
	c := Conflict{Frontend: "Vue", Backend: "MongoDB", AuthMethod: "JWT", Winner: "a", Shadowed: []string{"b"}}
	assert.Equal(t, `Vue/MongoDB/JWT resolves to "a", shadowing b`, c.String())
}
