package database

import (
	"log"
	"os"
	"time"

	"docvault/internal/auth"
	"docvault/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Init подключается к БД и накатывает схему. Без работающего
// хранилища сервису делать нечего, поэтому любая ошибка здесь фатальна.
func Init(dsn string) *gorm.DB {
	var db *gorm.DB
	var err error

	const maxAttempts = 10
	for i := 1; i <= maxAttempts; i++ {
		log.Printf("trying to connect to DB (attempt %d/%d)...", i, maxAttempts)

		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
		if err == nil {
			log.Println("connected to DB successfully")
			break
		}

		log.Printf("failed to connect to DB: %v", err)
		time.Sleep(2 * time.Second)
	}

	if err != nil {
		log.Fatalf("failed to connect to db after %d attempts: %v", maxAttempts, err)
	}

	// миграции
	if err := db.AutoMigrate(&models.User{}, &models.Document{}); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	createDefaultAdmin(db)

	return db
}

// админ только из конфига, через форму регистрации его не создать
func createDefaultAdmin(db *gorm.DB) {
	username := os.Getenv("ADMIN_USERNAME")
	if username == "" {
		return
	}
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		log.Printf("ADMIN_USERNAME set but ADMIN_PASSWORD is empty, skipping admin seed")
		return
	}

	var count int64
	if err := db.Model(&models.User{}).
		Where("role = ?", models.RoleAdmin).
		Count(&count).Error; err != nil {
		log.Printf("failed to check admin user: %v", err)
		return
	}
	if count > 0 {
		// админ уже есть — ничего не делаем
		return
	}

	if _, err := auth.NewStore(db).Register(username, password, models.RoleAdmin); err != nil {
		log.Printf("failed to create default admin: %v", err)
		return
	}

	log.Printf("created default admin user: %s", username)
}
