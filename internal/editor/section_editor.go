package editor

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/rs/zerolog/log"

	"clinic-cms/internal/domains/content/model"
	"clinic-cms/pkg/cmsclient"
)

const (
	SavedMessage      = "Changes saved successfully!"
	SaveFailedMessage = "Failed to save changes. Please try again."
)

// SectionSaver posts one section. *cmsclient.Client satisfies it.
type SectionSaver interface {
	UpdateSection(ctx context.Context, section string, data interface{}) (json.RawMessage, error)
}

// Result is what the operator is told after a save.
type Result struct {
	OK      bool
	Message string
}

// Message turns a save failure into operator text. Only a read-only
// storage failure shows the server's message and suggestion; everything
// else gets the generic retry text.
func Message(err error) string {
	if err == nil {
		return SavedMessage
	}
	var apiErr *cmsclient.APIError
	if errors.As(err, &apiErr) && apiErr.IsReadOnly() {
		msg := apiErr.Message
		if msg == "" {
			msg = SaveFailedMessage
		}
		if apiErr.Suggestion != "" {
			msg += " " + apiErr.Suggestion
		}
		return msg
	}
	return SaveFailedMessage
}

// SectionEditor holds the working copy of one section. Submit always sends
// the whole draft; the server replaces the section with it.
type SectionEditor[T any] struct {
	section model.SectionName
	saver   SectionSaver

	// BeforeSubmit may rewrite the draft against the last loaded value.
	BeforeSubmit func(draft, loaded T) T

	mu     sync.Mutex
	draft  T
	loaded T
	saving bool
}

func NewSectionEditor[T any](section model.SectionName, saver SectionSaver) *SectionEditor[T] {
	return &SectionEditor[T]{section: section, saver: saver}
}

// Load replaces the draft with a value fetched from the server. A nil raw
// value (section absent) resets the draft to zero.
func (e *SectionEditor[T]) Load(raw json.RawMessage) error {
	draft, err := decode[T](raw)
	if err != nil {
		return err
	}
	loaded, _ := decode[T](raw)

	e.mu.Lock()
	defer e.mu.Unlock()
	e.draft = draft
	e.loaded = loaded
	return nil
}

// decode yields a value sharing no memory with any earlier decode, so the
// draft can be edited in place without touching the loaded copy.
func decode[T any](raw json.RawMessage) (T, error) {
	var v T
	if len(raw) == 0 {
		return v, nil
	}
	err := json.Unmarshal(raw, &v)
	return v, err
}

// Draft returns the working copy.
func (e *SectionEditor[T]) Draft() T {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.draft
}

// Edit applies fn to the working copy.
func (e *SectionEditor[T]) Edit(fn func(T) T) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.draft = fn(e.draft)
}

// Saving reports whether a submit is in flight.
func (e *SectionEditor[T]) Saving() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.saving
}

// Submit posts the draft. On success the server's value becomes both the
// draft and the loaded value.
func (e *SectionEditor[T]) Submit(ctx context.Context) Result {
	e.mu.Lock()
	if e.saving {
		e.mu.Unlock()
		return Result{Message: "A save is already in progress."}
	}
	draft := e.draft
	if e.BeforeSubmit != nil {
		draft = e.BeforeSubmit(draft, e.loaded)
	}
	e.saving = true
	e.mu.Unlock()

	raw, err := e.saver.UpdateSection(ctx, string(e.section), draft)

	e.mu.Lock()
	defer e.mu.Unlock()
	e.saving = false

	if err != nil {
		log.Error().Err(err).Str("section", string(e.section)).Msg("Error saving")
		return Result{Message: Message(err)}
	}

	if len(raw) == 0 {
		raw, _ = json.Marshal(draft)
	}
	if saved, err := decode[T](raw); err == nil {
		e.draft = saved
		e.loaded, _ = decode[T](raw)
	}
	return Result{OK: true, Message: SavedMessage}
}

// NewHeaderEditor returns a header editor that keeps stored hrefs unless
// link editing is enabled.
func NewHeaderEditor(saver SectionSaver, linkEditing bool) *SectionEditor[model.Header] {
	e := NewSectionEditor[model.Header](model.SectionHeader, saver)
	if !linkEditing {
		e.BeforeSubmit = LockHeaderLinks
	}
	return e
}

// NewHeroEditor is the hero counterpart of NewHeaderEditor.
func NewHeroEditor(saver SectionSaver, linkEditing bool) *SectionEditor[model.Hero] {
	e := NewSectionEditor[model.Hero](model.SectionHero, saver)
	if !linkEditing {
		e.BeforeSubmit = LockHeroLinks
	}
	return e
}
