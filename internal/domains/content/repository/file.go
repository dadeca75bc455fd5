package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/rs/zerolog/log"

	"clinic-cms/internal/domains/content/model"
)

const (
	fileReadOnlyMessage    = "This hosting platform uses a read-only file system. Configure the remote store by setting REMOTE_STORE_URL and REMOTE_STORE_KEY."
	fileReadOnlySuggestion = "Add remote store credentials to enable CMS updates on serverless hosting."
)

// FileStrategy keeps the document as indented JSON in a single file.
type FileStrategy struct {
	path string
}

// NewFileStrategy returns a file-backed strategy, or an unavailable one when
// no path is configured.
func NewFileStrategy(path string) Strategy {
	if strings.TrimSpace(path) == "" {
		return NewUnavailable("file", model.NewNotConfiguredError(
			"File storage is not configured",
			"Set CMS_DATA_FILE or configure REMOTE_STORE_URL and REMOTE_STORE_KEY.",
		))
	}
	return &FileStrategy{path: path}
}

func (f *FileStrategy) Name() string { return "file" }

// Path returns the data file location.
func (f *FileStrategy) Path() string { return f.path }

func (f *FileStrategy) Load(ctx context.Context) (*model.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, model.NewUnknownIOError("Failed to read CMS data", err)
	}

	raw, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, model.NewNotFoundError(
				"Failed to read CMS data",
				fmt.Sprintf("Make sure %s exists or run `cmsctl seed` to initialize the store.", f.path),
				err,
			)
		}
		return nil, model.NewUnknownIOError("Failed to read CMS data", err)
	}

	var doc model.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, model.NewCorruptError(fmt.Sprintf("CMS data file %s is not valid JSON", f.path), err)
	}
	return &doc, nil
}

// Store writes through a temp file in the same directory and renames it
// over the target, so readers never observe a partial document.
func (f *FileStrategy) Store(ctx context.Context, doc *model.Document) error {
	if err := ctx.Err(); err != nil {
		return model.NewUnknownIOError("Failed to save CMS data", err)
	}

	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return model.NewUnknownIOError("Failed to encode CMS data", err)
	}

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return classifyWriteError(fmt.Errorf("create directory: %w", err))
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(f.path)+".*.tmp")
	if err != nil {
		return classifyWriteError(fmt.Errorf("create temp file: %w", err))
	}
	tmpPath := tmp.Name()
	_ = tmp.Chmod(0o644)

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return classifyWriteError(fmt.Errorf("write temp file: %w", err))
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return classifyWriteError(fmt.Errorf("close temp file: %w", err))
	}
	if err := os.Rename(tmpPath, f.path); err != nil {
		os.Remove(tmpPath)
		return classifyWriteError(fmt.Errorf("rename temp file: %w", err))
	}

	log.Debug().Str("path", f.path).Int("bytes", len(raw)).Msg("CMS data written")
	return nil
}

func (f *FileStrategy) Ping(context.Context) error {
	if _, err := os.Stat(f.path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return model.NewNotFoundError("CMS data file missing", "Run `cmsctl seed` to initialize the store.", err)
		}
		return model.NewUnknownIOError("CMS data file not accessible", err)
	}
	return nil
}

// classifyWriteError separates storage that refuses writes from every other failure.
func classifyWriteError(err error) error {
	if isReadOnly(err) {
		return model.NewReadOnlyError(fileReadOnlyMessage, fileReadOnlySuggestion, err)
	}
	return model.NewUnknownIOError("Failed to save CMS data", err)
}

func isReadOnly(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, fs.ErrPermission) ||
		errors.Is(err, syscall.EROFS) ||
		errors.Is(err, syscall.EACCES) ||
		errors.Is(err, syscall.EPERM) {
		return true
	}
	return strings.Contains(strings.ToLower(err.Error()), "read-only")
}
