package service

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mediatrackapp/mediatrack-server/internal/store"
	"github.com/mediatrackapp/mediatrack-server/internal/store/sqlite"
	"github.com/mediatrackapp/mediatrack-server/internal/validation"
)

type testServices struct {
	store       store.Store
	media       *MediaService
	categories  *CategoryService
	tags        *TagService
	fieldValues *FieldValueService
	stats       *StatsService
}

func setupServices(t *testing.T) *testServices {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s, err := sqlite.Open(dbPath, logger)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	v := validation.New()
	return &testServices{
		store:       s,
		media:       NewMediaService(s, v, logger),
		categories:  NewCategoryService(s, v, logger),
		tags:        NewTagService(s, v, logger),
		fieldValues: NewFieldValueService(s, v, logger),
		stats:       NewStatsService(s, logger),
	}
}

// seededCategory resolves a built-in category id by name.
func seededCategory(t *testing.T, svc *testServices, name string) int64 {
	t.Helper()
	categories, err := svc.categories.List(context.Background())
	require.NoError(t, err)
	for _, c := range categories {
		if c.Name == name {
			return c.ID
		}
	}
	t.Fatalf("seeded category %q missing", name)
	return 0
}

func ptr[T any](v T) *T { return &v }

// opt builds a set Optional carrying a value.
func opt[T any](v T) Optional[T] {
	return Optional[T]{Set: true, Value: &v}
}

// optNull builds a set Optional carrying an explicit null.
func optNull[T any]() Optional[T] {
	return Optional[T]{Set: true}
}
