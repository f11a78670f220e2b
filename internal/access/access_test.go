package access

import (
	"testing"

	"docvault/internal/models"

	"github.com/stretchr/testify/assert"
)

func userWithID(id uint, role models.UserRole) models.User {
	u := models.User{Role: role}
	u.ID = id
	return u
}

func docOf(uploaderID uint) models.Document {
	return models.Document{Filename: "x.pdf", UploaderID: uploaderID}
}

func TestCanUpload(t *testing.T) {
	u := userWithID(1, models.RoleUser)
	assert.True(t, CanUpload(&u))
	assert.False(t, CanUpload(nil))
}

func TestVisibleDocsOwner(t *testing.T) {
	pred := VisibleDocs(userWithID(1, models.RoleUser))

	assert.True(t, pred(docOf(1)))
	assert.False(t, pred(docOf(2)))

	// без записей между вызовами результат не меняется
	assert.True(t, pred(docOf(1)))
	assert.False(t, pred(docOf(2)))
}

func TestVisibleDocsAdmin(t *testing.T) {
	pred := VisibleDocs(userWithID(1, models.RoleAdmin))

	assert.True(t, pred(docOf(1)))
	assert.True(t, pred(docOf(2)))
}

// Скачивание намеренно не привязано к владельцу: проверяется только
// аутентификация. Если этот тест сломался — поведение ужесточили осознанно.
func TestCanDownloadNotOwnerScoped(t *testing.T) {
	u := userWithID(2, models.RoleUser)
	assert.True(t, CanDownload(&u, docOf(1)))
	assert.False(t, CanDownload(nil, docOf(1)))
}

func TestAllowedFileType(t *testing.T) {
	assert.True(t, AllowedFileType("report.pdf"))
	assert.True(t, AllowedFileType("report.PDF"))
	assert.False(t, AllowedFileType("report.exe"))
	assert.False(t, AllowedFileType("report"))
	assert.False(t, AllowedFileType(""))
	assert.False(t, AllowedFileType("report.pdf.exe"))
}
