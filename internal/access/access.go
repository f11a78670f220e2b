package access

import (
	"path/filepath"
	"strings"

	"docvault/internal/models"
)

// CanUpload: загружать может любой аутентифицированный пользователь,
// роль не важна.
func CanUpload(user *models.User) bool {
	return user != nil
}

// VisibleDocs возвращает предикат видимости документа: админ видит всё,
// обычный пользователь — только свои загрузки. Это единственная точка,
// где решается видимость списка.
func VisibleDocs(user models.User) func(models.Document) bool {
	if user.Role == models.RoleAdmin {
		return func(models.Document) bool { return true }
	}
	return func(d models.Document) bool { return d.UploaderID == user.ID }
}

// CanDownload: скачивание по имени файла открыто любому
// аутентифицированному пользователю, владение не проверяется —
// в отличие от списка. Так ведёт себя текущая система; см. тест
// TestDownloadNotOwnerScoped, прежде чем ужесточать.
func CanDownload(user *models.User, _ models.Document) bool {
	return user != nil
}

// AllowedFileType: принимаем только .pdf, регистр расширения не важен.
// Проверяется до записи байтов — отказ означает, что в хранилище
// ничего не попало.
func AllowedFileType(filename string) bool {
	return strings.EqualFold(filepath.Ext(filename), ".pdf")
}
