package cmsclient

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/rs/zerolog/log"
)

// State is what a renderer sees: the fetched value, whether a fetch is in
// flight, and the last failure.
type State struct {
	Data    json.RawMessage
	Loading bool
	Error   error
}

// Fetcher is the read side of Client.
type Fetcher interface {
	Fetch(ctx context.Context, section string) (json.RawMessage, error)
}

// Hook fetches a section once and fetches again only when asked for a
// different section. Failures are logged and kept in State, never retried.
type Hook struct {
	fetcher Fetcher

	mu      sync.Mutex
	section string
	mounted bool
	state   State
}

func NewHook(fetcher Fetcher) *Hook {
	return &Hook{fetcher: fetcher}
}

// Use returns the state for section, fetching it first when section
// differs from the previous call.
func (h *Hook) Use(ctx context.Context, section string) State {
	h.mu.Lock()
	if h.mounted && h.section == section {
		state := h.state
		h.mu.Unlock()
		return state
	}
	h.mounted = true
	h.section = section
	h.state = State{Loading: true}
	h.mu.Unlock()

	data, err := h.fetcher.Fetch(ctx, section)
	if err != nil {
		log.Error().Err(err).Str("section", section).Msg("Error fetching CMS data")
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.section == section {
		h.state = State{Data: data, Error: err}
	}
	return State{Data: data, Error: err}
}

// State returns the current state without fetching.
func (h *Hook) State() State {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.state
}

// Decode unmarshals the state's data into T. The zero value and false are
// returned while loading, after a failure, or when the section is absent.
func Decode[T any](s State) (T, bool) {
	var v T
	if s.Loading || s.Error != nil || len(s.Data) == 0 {
		return v, false
	}
	if err := json.Unmarshal(s.Data, &v); err != nil {
		log.Error().Err(err).Msg("Error decoding CMS data")
		return v, false
	}
	return v, true
}
