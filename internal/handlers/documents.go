package handlers

import (
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"path/filepath"

	"docvault/internal/access"
	"docvault/internal/middleware"
	"docvault/internal/models"
	"docvault/internal/storage"

	"github.com/gin-gonic/gin"
)

type DocumentHandler struct {
	docs        *storage.Documents
	uploadLimit int64
}

func NewDocumentHandler(docs *storage.Documents, uploadLimit int64) *DocumentHandler {
	return &DocumentHandler{docs: docs, uploadLimit: uploadLimit}
}

func (h *DocumentHandler) ShowUpload(c *gin.Context) {
	render(c, http.StatusOK, "upload.html", gin.H{"error": ""})
}

// currentUserPtr: nil, если пользователь не зарезолвлен — именно nil
// ждут проверки в пакете access, указатель на пустого User их обманет.
func currentUserPtr(c *gin.Context) (*models.User, models.User) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return nil, models.User{}
	}
	return &user, user
}

func (h *DocumentHandler) Upload(c *gin.Context) {
	userPtr, user := currentUserPtr(c)
	if !access.CanUpload(userPtr) {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	// ограничение на размер тела — до разбора multipart
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.uploadLimit)

	header, err := c.FormFile("file")
	if err != nil {
		render(c, http.StatusBadRequest, "upload.html", gin.H{"error": "Файл не выбран или слишком большой"})
		return
	}

	// имя без клиентских путей
	filename := filepath.Base(header.Filename)

	// тип проверяем до чтения байтов: отказ — значит в хранилище
	// ничего не записано
	if !access.AllowedFileType(filename) {
		render(c, http.StatusBadRequest, "upload.html", gin.H{"error": "Можно загружать только PDF"})
		return
	}

	f, err := header.Open()
	if err != nil {
		render(c, http.StatusBadRequest, "upload.html", gin.H{"error": "Не удалось прочитать файл"})
		return
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		render(c, http.StatusBadRequest, "upload.html", gin.H{"error": "Не удалось прочитать файл"})
		return
	}

	if _, err := h.docs.Save(filename, user.ID, data); err != nil {
		log.Printf("upload failed: %v", err)
		failPage(c)
		return
	}

	c.Redirect(http.StatusFound, "/documents")
}

func (h *DocumentHandler) List(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	var rows []models.Document
	var err error
	if user.Role == models.RoleAdmin {
		rows, err = h.docs.FindAll()
	} else {
		rows, err = h.docs.FindAllByUploader(user.ID)
	}
	if err != nil {
		log.Printf("list documents failed: %v", err)
		failPage(c)
		return
	}

	// предикат видимости — последнее слово за ним, а не за запросом
	visible := rows[:0]
	pred := access.VisibleDocs(user)
	for _, d := range rows {
		if pred(d) {
			visible = append(visible, d)
		}
	}

	render(c, http.StatusOK, "documents.html", gin.H{"docs": visible})
}

func (h *DocumentHandler) Download(c *gin.Context) {
	userPtr, _ := currentUserPtr(c)

	filename := c.Param("filename")
	doc, err := h.docs.FindByFilename(filename)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			render(c, http.StatusNotFound, "not_found.html", gin.H{})
			return
		}
		log.Printf("download failed: %v", err)
		failPage(c)
		return
	}

	if !access.CanDownload(userPtr, doc) {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.Filename))
	c.Data(http.StatusOK, "application/pdf", doc.FileData)
}
