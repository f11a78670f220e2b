package models

import "gorm.io/gorm"

type Document struct {
	gorm.Model
	Filename string `gorm:"size:200;not null"` // имя как при загрузке, уникальность не гарантируется
	FileData []byte

	UploaderID uint `gorm:"not null;index"`
	Uploader   User `gorm:"foreignKey:UploaderID"`
}
