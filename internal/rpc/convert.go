// Package rpc maps catalog templates to and from their stackpick.v1 wire
// messages.
package rpc

import (
	"errors"
	"fmt"

	pb "github.com/dmitrijs2005/stackpick/internal/proto"
	"github.com/dmitrijs2005/stackpick/internal/stack"
)

var ErrMalformedTemplates = errors.New("malformed templates payload")

// TemplatesToProto converts templates, keeping their order.
func TemplatesToProto(templates []stack.Template) []*pb.Template {
	out := make([]*pb.Template, 0, len(templates))
	for _, t := range templates {
		out = append(out, &pb.Template{
			Slug:       t.Slug,
			Frontend:   t.Frontend,
			Backend:    t.Backend,
			AuthMethod: t.AuthMethod,
			GitBranch:  t.GitBranch,
			DocUrl:     t.DocURL,
			GithubUrl:  t.GitHubURL,
		})
	}
	return out
}

// TemplatesFromProto converts a ListTemplates payload. Nil entries and
// entries without a slug are rejected.
func TemplatesFromProto(list []*pb.Template) ([]stack.Template, error) {
	out := make([]stack.Template, 0, len(list))
	for i, t := range list {
		if t == nil {
			return nil, fmt.Errorf("%w: item #%d is nil", ErrMalformedTemplates, i)
		}
		if t.GetSlug() == "" {
			return nil, fmt.Errorf("%w: item #%d has no slug", ErrMalformedTemplates, i)
		}
		out = append(out, stack.Template{
			Slug:       t.GetSlug(),
			Frontend:   t.GetFrontend(),
			Backend:    t.GetBackend(),
			AuthMethod: t.GetAuthMethod(),
			GitBranch:  t.GetGitBranch(),
			DocURL:     t.GetDocUrl(),
			GitHubURL:  t.GetGithubUrl(),
		})
	}
	return out, nil
}
