package repository

import (
	"context"

	"clinic-cms/internal/domains/content/model"
)

// =====================================================
// CONTENT STRATEGY INTERFACE
// =====================================================

// Strategy durably stores the content document under model.DocumentKey.
// Exactly one strategy is active per process; implementations return
// *model.ContentError so callers can branch on the taxonomy code.
type Strategy interface {
	// Name identifies the strategy in logs and health output.
	Name() string

	// Load returns the stored document.
	Load(ctx context.Context) (*model.Document, error)

	// Store overwrites the stored document unconditionally (last write wins).
	Store(ctx context.Context, doc *model.Document) error

	// Ping checks that the backing medium is reachable.
	Ping(ctx context.Context) error
}
