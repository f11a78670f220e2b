package storage

import (
	"errors"
	"fmt"

	"docvault/internal/models"

	"gorm.io/gorm"
)

// ErrNotFound — документа с таким id или именем нет.
var ErrNotFound = errors.New("document not found")

// Documents — хранилище загруженных файлов. Прав доступа не знает,
// этим занимается пакет access.
type Documents struct {
	db *gorm.DB
}

func NewDocuments(db *gorm.DB) *Documents {
	return &Documents{db: db}
}

// метаданные без тела файла — для списков
var metaColumns = []string{"id", "created_at", "updated_at", "deleted_at", "filename", "uploader_id"}

// Save кладёт файл в хранилище. Уникальность имени не проверяется:
// дубликаты легальны, в том числе у одного пользователя.
func (s *Documents) Save(filename string, uploaderID uint, data []byte) (uint, error) {
	doc := models.Document{
		Filename:   filename,
		UploaderID: uploaderID,
		FileData:   data,
	}
	if err := s.db.Create(&doc).Error; err != nil {
		return 0, fmt.Errorf("save document: %w", err)
	}
	return doc.ID, nil
}

func (s *Documents) FindByID(id uint) (models.Document, error) {
	var doc models.Document
	if err := s.db.First(&doc, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Document{}, ErrNotFound
		}
		return models.Document{}, fmt.Errorf("find document: %w", err)
	}
	return doc, nil
}

// FindByFilename возвращает первый документ с таким именем.
// При дубликатах выбор неоднозначен — берём самый ранний по id.
func (s *Documents) FindByFilename(filename string) (models.Document, error) {
	var doc models.Document
	if err := s.db.Where("filename = ?", filename).
		Order("id asc").
		First(&doc).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Document{}, ErrNotFound
		}
		return models.Document{}, fmt.Errorf("find document: %w", err)
	}
	return doc, nil
}

// FindAllByUploader — метаданные загрузок одного пользователя.
func (s *Documents) FindAllByUploader(uploaderID uint) ([]models.Document, error) {
	var docs []models.Document
	if err := s.db.Select(metaColumns).
		Where("uploader_id = ?", uploaderID).
		Order("id asc").
		Find(&docs).Error; err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	return docs, nil
}

// FindAll — метаданные всех документов.
func (s *Documents) FindAll() ([]models.Document, error) {
	var docs []models.Document
	if err := s.db.Select(metaColumns).
		Order("id asc").
		Find(&docs).Error; err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	return docs, nil
}
