package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clinic-cms/internal/domains/content/model"
)

// memoryStore is an in-memory Strategy that stores a JSON copy, the way a
// real backend would.
type memoryStore struct {
	raw      []byte
	loadErr  error
	storeErr error
	loads    int
	stores   int
}

func newMemoryStore(t *testing.T, doc *model.Document) *memoryStore {
	t.Helper()
	raw, err := json.Marshal(doc)
	require.NoError(t, err)
	return &memoryStore{raw: raw}
}

func (m *memoryStore) Name() string { return "memory" }

func (m *memoryStore) Load(context.Context) (*model.Document, error) {
	m.loads++
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	var doc model.Document
	if err := json.Unmarshal(m.raw, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

func (m *memoryStore) Store(_ context.Context, doc *model.Document) error {
	m.stores++
	if m.storeErr != nil {
		return m.storeErr
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	m.raw = raw
	return nil
}

func (m *memoryStore) Ping(context.Context) error { return m.loadErr }

func heroPayload() json.RawMessage {
	return json.RawMessage(`{"title":"Welcome","subtitle":"Care","ctaText":"Book","ctaHref":"/#contact","backgroundImage":"data:image/png;base64,AAAA"}`)
}

func TestUpdate_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newMemoryStore(t, model.DefaultDocument())
	svc := NewContentService(store)

	_, err := svc.Update(ctx, "hero", heroPayload())
	require.NoError(t, err)

	doc, err := svc.Get(ctx)
	require.NoError(t, err)

	var want model.Hero
	require.NoError(t, json.Unmarshal(heroPayload(), &want))
	assert.Equal(t, want, doc.Hero)
}

func TestUpdate_EverySectionRoundTrips(t *testing.T) {
	ctx := context.Background()
	source := model.DefaultDocument()
	source.Hero.Title = "Changed"
	source.Footer.Copyright = "Changed"

	for _, name := range model.AllSections() {
		t.Run(string(name), func(t *testing.T) {
			svc := NewContentService(newMemoryStore(t, &model.Document{}))

			value, _ := source.Section(name)
			raw, err := json.Marshal(value)
			require.NoError(t, err)

			_, err = svc.Update(ctx, string(name), raw)
			require.NoError(t, err)

			got, err := svc.GetSection(ctx, string(name))
			require.NoError(t, err)
			assert.Equal(t, value, got)
		})
	}
}

func TestUpdate_Idempotent(t *testing.T) {
	ctx := context.Background()
	store := newMemoryStore(t, model.DefaultDocument())
	svc := NewContentService(store)

	payload := json.RawMessage(`{"title":"Svc","subtitle":"s","items":[{"id":"a","title":"A","description":"d","image":"i","features":["x"]}]}`)

	_, err := svc.Update(ctx, "services", payload)
	require.NoError(t, err)
	once := append([]byte(nil), store.raw...)

	_, err = svc.Update(ctx, "services", payload)
	require.NoError(t, err)

	assert.JSONEq(t, string(once), string(store.raw))
}

func TestUpdate_DoesNotTouchOtherSections(t *testing.T) {
	ctx := context.Background()
	svc := NewContentService(newMemoryStore(t, model.DefaultDocument()))

	before, err := svc.Get(ctx)
	require.NoError(t, err)

	after, err := svc.Update(ctx, "hero", heroPayload())
	require.NoError(t, err)

	assert.Equal(t, before.Header, after.Header)
	assert.Equal(t, before.Services, after.Services)
	assert.Equal(t, before.About, after.About)
	assert.Equal(t, before.Footer, after.Footer)
	assert.Equal(t, before.Contact, after.Contact)
}

func TestUpdate_ReplacesWholeSection(t *testing.T) {
	ctx := context.Background()
	svc := NewContentService(newMemoryStore(t, model.DefaultDocument()))

	doc, err := svc.Update(ctx, "hero", json.RawMessage(`{"title":"Only title"}`))
	require.NoError(t, err)

	assert.Equal(t, model.Hero{Title: "Only title"}, doc.Hero)
}

func TestUpdate_RemovingAnEntry(t *testing.T) {
	ctx := context.Background()
	svc := NewContentService(newMemoryStore(t, model.DefaultDocument()))

	header := model.DefaultDocument().Header
	header.NavItems = header.NavItems[1:]
	raw, err := json.Marshal(header)
	require.NoError(t, err)

	doc, err := svc.Update(ctx, "header", raw)
	require.NoError(t, err)
	assert.Len(t, doc.Header.NavItems, len(model.DefaultDocument().Header.NavItems)-1)
	assert.Equal(t, "nav-services", doc.Header.NavItems[0].ID)
}

func TestUpdate_AssignsMissingIDs(t *testing.T) {
	ctx := context.Background()
	svc := NewContentService(newMemoryStore(t, model.DefaultDocument()))

	doc, err := svc.Update(ctx, "about", json.RawMessage(`{"title":"t","features":[{"title":"no id"}]}`))
	require.NoError(t, err)
	require.Len(t, doc.About.Features, 1)
	id := doc.About.Features[0].ID
	assert.NotEmpty(t, id)

	stored, err := svc.GetSection(ctx, "about")
	require.NoError(t, err)
	assert.Equal(t, id, stored.(model.About).Features[0].ID)
}

func TestUpdate_ValidationNeverReachesStore(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		section string
		data    json.RawMessage
	}{
		{"missing section", "", json.RawMessage(`{}`)},
		{"unknown section", "sidebar", json.RawMessage(`{}`)},
		{"missing data", "hero", nil},
		{"wrong shape", "services", json.RawMessage(`{"items":42}`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newMemoryStore(t, model.DefaultDocument())
			_, err := NewContentService(store).Update(ctx, tt.section, tt.data)

			assert.True(t, errors.Is(err, model.ErrValidation))
			assert.Zero(t, store.loads)
			assert.Zero(t, store.stores)
		})
	}
}

func TestUpdate_PassesClassificationThrough(t *testing.T) {
	ctx := context.Background()

	store := newMemoryStore(t, model.DefaultDocument())
	store.storeErr = model.NewReadOnlyError("ro", "use remote", nil)
	_, err := NewContentService(store).Update(ctx, "hero", heroPayload())
	assert.Equal(t, model.CodeReadOnly, model.CodeOf(err))

	store = newMemoryStore(t, model.DefaultDocument())
	store.loadErr = model.NewNotFoundError("missing", "seed", nil)
	_, err = NewContentService(store).Update(ctx, "hero", heroPayload())
	assert.Equal(t, model.CodeNotFound, model.CodeOf(err))
	assert.Zero(t, store.stores)
}

func TestGetSection_Unknown(t *testing.T) {
	svc := NewContentService(newMemoryStore(t, model.DefaultDocument()))

	v, err := svc.GetSection(context.Background(), "doesNotExist")
	assert.NoError(t, err)
	assert.Nil(t, v)
}

func TestGet_Failure(t *testing.T) {
	store := newMemoryStore(t, model.DefaultDocument())
	store.loadErr = model.NewNotConfiguredError("not configured", "set env")

	_, err := NewContentService(store).Get(context.Background())
	assert.True(t, errors.Is(err, model.ErrNotConfigured))

	_, err = NewContentService(store).GetSection(context.Background(), "hero")
	assert.True(t, errors.Is(err, model.ErrNotConfigured))
}

func TestSave_FullReplace(t *testing.T) {
	ctx := context.Background()
	store := newMemoryStore(t, model.DefaultDocument())
	svc := NewContentService(store)

	next := &model.Document{Hero: model.Hero{Title: "Imported"}}
	require.NoError(t, svc.Save(ctx, next))

	doc, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Imported", doc.Hero.Title)
	assert.Empty(t, doc.Services.Items)

	assert.True(t, errors.Is(svc.Save(ctx, nil), model.ErrValidation))
}
