package repository

import (
	"context"

	"clinic-cms/internal/domains/content/model"
)

// unavailable is installed when the selected strategy cannot be built.
// Every call fails fast with the same error; there is no fallback.
type unavailable struct {
	name string
	err  *model.ContentError
}

// NewUnavailable returns a strategy whose every operation returns err.
func NewUnavailable(name string, err *model.ContentError) Strategy {
	return &unavailable{name: name, err: err}
}

func (u *unavailable) Name() string { return u.name }

func (u *unavailable) Load(context.Context) (*model.Document, error) { return nil, u.err }

func (u *unavailable) Store(context.Context, *model.Document) error { return u.err }

func (u *unavailable) Ping(context.Context) error { return u.err }
