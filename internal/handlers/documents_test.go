package handlers

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"docvault/internal/models"
	"docvault/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func testDocuments(t *testing.T) *storage.Documents {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Document{}))

	return storage.NewDocuments(db)
}

// Аноним режется самим хэндлером через access, а не только
// порядком middleware в роутере.
func TestUploadAnonymousDenied(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/upload", nil)

	h := NewDocumentHandler(testDocuments(t), 16<<20)
	h.Upload(c)
	c.Writer.WriteHeaderNow()

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}

func TestDownloadAnonymousDenied(t *testing.T) {
	gin.SetMode(gin.TestMode)

	docs := testDocuments(t)
	_, err := docs.Save("x.pdf", 1, []byte("%PDF-1.4 data"))
	require.NoError(t, err)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/uploads/x.pdf", nil)
	c.Params = gin.Params{{Key: "filename", Value: "x.pdf"}}

	h := NewDocumentHandler(docs, 16<<20)
	h.Download(c)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}
