package service

import (
	"context"
	"encoding/json"

	"github.com/rs/zerolog/log"

	"clinic-cms/internal/domains/content/model"
	"clinic-cms/internal/domains/content/repository"
)

// contentService mediates between handlers and the active strategy.
//
// Update is read-modify-write without a lock or version check: two
// concurrent updates of different sections can lose one of them. The admin
// panel is operated by one person at a time.
type contentService struct {
	store repository.Strategy
}

func NewContentService(store repository.Strategy) ServiceInterface {
	return &contentService{store: store}
}

func (s *contentService) Get(ctx context.Context) (*model.Document, error) {
	return s.store.Load(ctx)
}

func (s *contentService) GetSection(ctx context.Context, name string) (interface{}, error) {
	doc, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	value, ok := doc.Section(model.SectionName(name))
	if !ok {
		return nil, nil
	}
	return value, nil
}

func (s *contentService) Update(ctx context.Context, section string, data json.RawMessage) (*model.Document, error) {
	req := model.UpdateSectionRequest{Section: section, Data: data}
	if err := req.Validate(); err != nil {
		return nil, model.NewValidationError("Section and data are required", err)
	}

	// Decode before touching storage so a malformed payload never costs a read.
	var scratch model.Document
	if err := scratch.ReplaceSection(model.SectionName(section), data); err != nil {
		return nil, model.NewValidationError("Invalid "+section+" data", err)
	}

	doc, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	if err := doc.ReplaceSection(model.SectionName(section), data); err != nil {
		return nil, model.NewValidationError("Invalid "+section+" data", err)
	}
	assigned := model.AssignIDs(doc)

	if err := s.store.Store(ctx, doc); err != nil {
		return nil, err
	}

	log.Info().
		Str("section", section).
		Str("storage", s.store.Name()).
		Int("ids_assigned", assigned).
		Msg("CMS section updated")
	return doc, nil
}

func (s *contentService) Save(ctx context.Context, doc *model.Document) error {
	if doc == nil {
		return model.NewValidationError("CMS document is required", nil)
	}
	assigned := model.AssignIDs(doc)

	if err := s.store.Store(ctx, doc); err != nil {
		return err
	}

	log.Info().
		Str("storage", s.store.Name()).
		Int("ids_assigned", assigned).
		Msg("CMS document replaced")
	return nil
}

func (s *contentService) StorageName() string { return s.store.Name() }

func (s *contentService) Ping(ctx context.Context) error { return s.store.Ping(ctx) }
