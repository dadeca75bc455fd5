package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clinic-cms/internal/domains/content/model"
	"clinic-cms/internal/domains/content/repository"
	"clinic-cms/internal/domains/content/service"
)

type schemaSpy struct{ calls int }

func (s *schemaSpy) EnsureSchema(context.Context) error { s.calls++; return nil }

func fileService(t *testing.T) service.ServiceInterface {
	t.Helper()
	return service.NewContentService(repository.NewFileStrategy(filepath.Join(t.TempDir(), "data", "cms-data.json")))
}

func TestSeed(t *testing.T) {
	ctx := context.Background()
	svc := fileService(t)
	spy := &schemaSpy{}

	var out bytes.Buffer
	require.NoError(t, runSeed(ctx, svc, spy, false, &out))
	assert.Equal(t, 1, spy.calls)
	assert.Contains(t, out.String(), "file storage")

	doc, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, model.DefaultDocument().Hero, doc.Hero)
	assert.Len(t, doc.Services.Items, len(model.DefaultDocument().Services.Items))

	err = runSeed(ctx, svc, nil, false, &out)
	assert.True(t, errors.Is(err, ErrAlreadySeeded))

	require.NoError(t, runSeed(ctx, svc, nil, true, &out))
}

type failingLoadStore struct {
	loadErr error
	stores  int
}

func (s *failingLoadStore) Name() string { return "remote" }
func (s *failingLoadStore) Load(context.Context) (*model.Document, error) {
	return nil, s.loadErr
}
func (s *failingLoadStore) Store(context.Context, *model.Document) error { s.stores++; return nil }
func (s *failingLoadStore) Ping(context.Context) error                  { return nil }

func TestSeed_ReadFailureLeavesStoreAlone(t *testing.T) {
	store := &failingLoadStore{loadErr: model.NewUnknownIOError("Failed to fetch CMS data", context.DeadlineExceeded)}

	err := runSeed(context.Background(), service.NewContentService(store), nil, false, &bytes.Buffer{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
	assert.Zero(t, store.stores)
}

func TestSeed_ReplacesCorruptDocument(t *testing.T) {
	store := &failingLoadStore{loadErr: model.NewCorruptError("Remote CMS data is not valid JSON", errors.New("unexpected EOF"))}

	require.NoError(t, runSeed(context.Background(), service.NewContentService(store), nil, false, &bytes.Buffer{}))
	assert.Equal(t, 1, store.stores)
}

func TestSeed_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cms-data.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))
	svc := service.NewContentService(repository.NewFileStrategy(path))

	require.NoError(t, runSeed(context.Background(), svc, nil, false, &bytes.Buffer{}))
	_, err := svc.Get(context.Background())
	assert.NoError(t, err)
}

func TestExportImport(t *testing.T) {
	ctx := context.Background()
	src := fileService(t)
	require.NoError(t, runSeed(ctx, src, nil, false, &bytes.Buffer{}))

	var exported bytes.Buffer
	require.NoError(t, runExport(ctx, src, &exported))

	dst := fileService(t)
	require.NoError(t, runImport(ctx, dst, &exported, &bytes.Buffer{}))

	a, err := src.Get(ctx)
	require.NoError(t, err)
	b, err := dst.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, a.Hero, b.Hero)
	assert.Equal(t, a.Services, b.Services)
	assert.Equal(t, a.Contact, b.Contact)
}

func TestImport_RejectsUnknownFields(t *testing.T) {
	err := runImport(context.Background(), fileService(t), strings.NewReader(`{"sidebar":{}}`), &bytes.Buffer{})
	assert.Error(t, err)
}

func TestExport_MissingDocument(t *testing.T) {
	err := runExport(context.Background(), fileService(t), &bytes.Buffer{})
	assert.True(t, errors.Is(err, model.ErrNotFound))
}

func TestExport_IsIndentedJSON(t *testing.T) {
	ctx := context.Background()
	svc := fileService(t)
	require.NoError(t, runSeed(ctx, svc, nil, false, &bytes.Buffer{}))

	var out bytes.Buffer
	require.NoError(t, runExport(ctx, svc, &out))
	assert.True(t, json.Valid(out.Bytes()))
	assert.Contains(t, out.String(), "\n  \"header\"")
}
