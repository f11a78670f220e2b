package storage

import (
	"path/filepath"
	"testing"

	"docvault/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func testDocuments(t *testing.T) *Documents {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Document{}))

	return NewDocuments(db)
}

func TestSaveAndFindByID(t *testing.T) {
	docs := testDocuments(t)

	id, err := docs.Save("report.pdf", 1, []byte("%PDF-1.4 data"))
	require.NoError(t, err)
	require.NotZero(t, id)

	doc, err := docs.FindByID(id)
	require.NoError(t, err)
	assert.Equal(t, "report.pdf", doc.Filename)
	assert.Equal(t, uint(1), doc.UploaderID)
	assert.Equal(t, []byte("%PDF-1.4 data"), doc.FileData)
}

func TestFindByFilenameFirstMatch(t *testing.T) {
	docs := testDocuments(t)

	// одно и то же имя у разных пользователей — это легально
	first, err := docs.Save("report.pdf", 1, []byte("first"))
	require.NoError(t, err)
	_, err = docs.Save("report.pdf", 2, []byte("second"))
	require.NoError(t, err)

	doc, err := docs.FindByFilename("report.pdf")
	require.NoError(t, err)
	assert.Equal(t, first, doc.ID) // берётся самый ранний
	assert.Equal(t, []byte("first"), doc.FileData)
}

func TestFindNotFound(t *testing.T) {
	docs := testDocuments(t)

	_, err := docs.FindByFilename("missing.pdf")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = docs.FindByID(9999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFindAllByUploader(t *testing.T) {
	docs := testDocuments(t)

	_, err := docs.Save("a.pdf", 1, []byte("a"))
	require.NoError(t, err)
	_, err = docs.Save("b.pdf", 1, []byte("b"))
	require.NoError(t, err)
	_, err = docs.Save("c.pdf", 2, []byte("c"))
	require.NoError(t, err)

	mine, err := docs.FindAllByUploader(1)
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, "a.pdf", mine[0].Filename)
	assert.Equal(t, "b.pdf", mine[1].Filename)

	// списки отдают метаданные, тело файла не тянется
	assert.Empty(t, mine[0].FileData)

	all, err := docs.FindAll()
	require.NoError(t, err)
	assert.Len(t, all, 3)
}
