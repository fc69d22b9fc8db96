package geocode

import (
	"context"
	"errors"
	"sync"
)

var ErrSuperseded = errors.New("lookup superseded by a newer one")

type searchFunc func(ctx context.Context, query string) []Place

// Searcher runs search-as-you-type lookups: a new lookup for a key
// cancels the one still in flight for the same key.
type Searcher struct {
	search searchFunc

	mu       sync.Mutex
	inflight map[string]*lookup
}

type lookup struct {
	cancel context.CancelCauseFunc
}

func NewSearcher(client *Client) *Searcher {
	return newSearcher(client.Search)
}

func newSearcher(search searchFunc) *Searcher {
	return &Searcher{search: search, inflight: make(map[string]*lookup)}
}

// Lookup returns ErrSuperseded when a later Lookup for key started before
// this one finished.
func (s *Searcher) Lookup(ctx context.Context, key, query string) ([]Place, error) {
	ctx, cancel := context.WithCancelCause(ctx)
	current := &lookup{cancel: cancel}

	s.mu.Lock()
	if prev, ok := s.inflight[key]; ok {
		prev.cancel(ErrSuperseded)
	}
	s.inflight[key] = current
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		if s.inflight[key] == current {
			delete(s.inflight, key)
		}
		s.mu.Unlock()
		cancel(nil)
	}()

	places := s.search(ctx, query)
	if errors.Is(context.Cause(ctx), ErrSuperseded) {
		return nil, ErrSuperseded
	}
	return places, nil
}
