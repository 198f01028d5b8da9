// Package catalog reads and writes template catalogs as JSON and ships the
// built-in catalog of the product.
//
// Two JSON shapes are accepted: a bare array of templates, or an object
// with a "templates" array. Each template carries a single authMethod
// string; list-valued auth methods are rejected.
package catalog

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/stackpick/internal/common"
	"github.com/dmitrijs2005/stackpick/internal/stack"
)

//go:embed templates.json
var builtin []byte

type document struct {
	Templates []stack.Template `json:"templates"`
}

// Decode reads a catalog from r and validates it. Conflicting triples are
// returned alongside the templates; they do not make the catalog invalid.
func Decode(r io.Reader) ([]stack.Template, []stack.Conflict, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, nil, fmt.Errorf("read catalog: %w", err)
	}

	var templates []stack.Template
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		err = json.Unmarshal(trimmed, &templates)
	} else {
		var doc document
		err = json.Unmarshal(trimmed, &doc)
		templates = doc.Templates
	}
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", common.ErrInvalidCatalog, err)
	}

	conflicts, err := stack.Validate(templates)
	if err != nil {
		return nil, nil, err
	}
	return templates, conflicts, nil
}

// Encode writes templates to w in the object form.
func Encode(w io.Writer, templates []stack.Template) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if templates == nil {
		templates = []stack.Template{}
	}
	return enc.Encode(document{Templates: templates})
}

// LoadFile decodes the catalog stored at path.
func LoadFile(path string) ([]stack.Template, []stack.Conflict, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()

	return Decode(f)
}

// Builtin returns the catalog bundled with the binary.
func Builtin() []stack.Template {
	templates, _, err := Decode(bytes.NewReader(builtin))
	if err != nil {
		panic(fmt.Sprintf("built-in catalog: %v", err))
	}
	return templates
}
