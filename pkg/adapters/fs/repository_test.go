package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/veil/pkg/adapters/fs"
	"github.com/aretw0/veil/pkg/core"
)

func testDocument() *core.Document {
	doc := core.NewDocument()
	doc.Entities = append(doc.Entities, core.Entity{
		Original:   "John Smith",
		Alias:      "Person_A",
		Type:       core.TypePerson,
		Variations: []string{"Johnny"},
		Added:      time.Now(),
	})
	return doc
}

func TestRepository_SaveLoad_JSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mapping.json")
	repo := fs.NewRepository(fs.Config{Path: path})

	require.NoError(t, repo.Save(context.Background(), testDocument()))

	loaded, err := repo.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, loaded.Entities, 1)
	assert.Equal(t, "John Smith", loaded.Entities[0].Original)
	assert.Equal(t, core.TypePerson, loaded.Entities[0].Type)
	assert.Equal(t, []string{"Johnny"}, loaded.Entities[0].Variations)
	assert.Equal(t, core.DocumentVersion, loaded.Version)
}

func TestRepository_SaveLoad_YAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mapping.yaml")
	repo := fs.NewRepository(fs.Config{Path: path})

	require.NoError(t, repo.Save(context.Background(), testDocument()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "original: John Smith")

	loaded, err := repo.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, loaded.Entities, 1)
	assert.Equal(t, "Person_A", loaded.Entities[0].Alias)
}

func TestRepository_UnknownExtensionFallsBackToJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mapping.dat")
	repo := fs.NewRepository(fs.Config{Path: path})

	require.NoError(t, repo.Save(context.Background(), testDocument()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(strings.TrimSpace(string(data)), "{"))
}

func TestRepository_Load_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.json")

	repo := fs.NewRepository(fs.Config{Path: path})
	doc, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, doc.Entities, "missing file starts an empty document")

	strict := fs.NewRepository(fs.Config{Path: path, MustExist: true})
	_, err = strict.Load(context.Background())
	assert.Error(t, err)
}

func TestRepository_NoPath(t *testing.T) {
	repo := fs.NewRepository(fs.Config{})

	_, err := repo.Load(context.Background())
	assert.ErrorIs(t, err, core.ErrNoPath)

	err = repo.Save(context.Background(), core.NewDocument())
	assert.ErrorIs(t, err, core.ErrNoPath)
}

func TestRepository_Save_CreatesParentDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deep", "mapping.json")
	repo := fs.NewRepository(fs.Config{Path: path})

	require.NoError(t, repo.Save(context.Background(), testDocument()))
	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func TestRepository_Save_RefreshesUpdated(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mapping.json")
	repo := fs.NewRepository(fs.Config{Path: path})

	doc := testDocument()
	stale := time.Now().Add(-time.Hour)
	doc.Updated = stale

	require.NoError(t, repo.Save(context.Background(), doc))
	assert.True(t, doc.Updated.After(stale))
}

func TestRepository_Save_LeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	repo := fs.NewRepository(fs.Config{Path: filepath.Join(dir, "mapping.json")})

	require.NoError(t, repo.Save(context.Background(), testDocument()))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	for _, entry := range entries {
		assert.False(t, strings.HasPrefix(entry.Name(), fs.TempFilePrefix), "leftover temp file %s", entry.Name())
	}
}

func TestRepository_Load_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mapping.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	repo := fs.NewRepository(fs.Config{Path: path})
	_, err := repo.Load(context.Background())
	assert.Error(t, err)
}

func TestRepository_SaveTo(t *testing.T) {
	dir := t.TempDir()
	repo := fs.NewRepository(fs.Config{Path: filepath.Join(dir, "mapping.json")})

	other := filepath.Join(dir, "backup.yaml")
	require.NoError(t, repo.SaveTo(context.Background(), other, testDocument()))

	data, err := os.ReadFile(other)
	require.NoError(t, err)
	assert.Contains(t, string(data), "alias: Person_A")
}
