package service

import (
	"context"
	"encoding/json"

	"clinic-cms/internal/domains/content/model"
)

// =====================================================
// CONTENT SERVICE INTERFACE
// =====================================================

type ServiceInterface interface {
	// Get returns the whole document.
	Get(ctx context.Context) (*model.Document, error)

	// GetSection returns one section; (nil, nil) for a name that is not a section.
	GetSection(ctx context.Context, name string) (interface{}, error)

	// Update replaces one section with data and persists the whole document.
	Update(ctx context.Context, section string, data json.RawMessage) (*model.Document, error)

	// Save replaces the whole document.
	Save(ctx context.Context, doc *model.Document) error

	// StorageName reports the active strategy.
	StorageName() string

	// Ping checks the active strategy.
	Ping(ctx context.Context) error
}
