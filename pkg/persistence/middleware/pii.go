package middleware

import (
	"context"
	"regexp"

	"github.com/acrowfliedover/eGainAssignment/pkg/domain"
	"github.com/acrowfliedover/eGainAssignment/pkg/ports"
)

type piiMiddleware struct {
	next     ports.StateStore
	patterns []*regexp.Regexp
}

// NewPIIMiddleware creates a middleware that masks pattern matches in
// user-authored transcript messages before they reach the store. Typed input
// is free text until it validates, so anything the user pasted at a prompt
// ends up in the transcript.
//
// Bot messages are script content and pass through unmasked.
func NewPIIMiddleware(patternStrings []string) Middleware {
	patterns := make([]*regexp.Regexp, len(patternStrings))
	for i, p := range patternStrings {
		patterns[i] = regexp.MustCompile(p)
	}
	return func(next ports.StateStore) ports.StateStore {
		return &piiMiddleware{next: next, patterns: patterns}
	}
}

func (m *piiMiddleware) Save(ctx context.Context, sessionID string, state *domain.State) error {
	// Clone so the engine's in-memory transcript keeps the original text.
	masked := state.Clone()
	for i := range masked.Transcript {
		if masked.Transcript[i].Author != domain.AuthorUser {
			continue
		}
		for _, p := range m.patterns {
			masked.Transcript[i].Content = p.ReplaceAllString(masked.Transcript[i].Content, "***")
		}
	}

	return m.next.Save(ctx, sessionID, masked)
}

func (m *piiMiddleware) Load(ctx context.Context, sessionID string) (*domain.State, error) {
	return m.next.Load(ctx, sessionID)
}

func (m *piiMiddleware) Delete(ctx context.Context, sessionID string) error {
	return m.next.Delete(ctx, sessionID)
}

func (m *piiMiddleware) List(ctx context.Context) ([]string, error) {
	return m.next.List(ctx)
}
