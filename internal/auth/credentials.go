package auth

import (
	"errors"
	"fmt"

	"docvault/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	// ErrDuplicateUsername — логин уже занят.
	ErrDuplicateUsername = errors.New("username already exists")
	// ErrInvalidPassword — пароль не прошёл политику.
	ErrInvalidPassword = errors.New("password does not meet policy")
	// ErrInvalidCredentials — неверный логин или пароль.
	// Специально один и тот же результат для "нет такого пользователя"
	// и "пароль не подошёл", чтобы нельзя было перебирать логины.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Store хранит учётные записи. Сырой пароль за пределы этого
// пакета не выходит — наружу только bcrypt-хэш.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Register создаёт пользователя. Логин сравнивается точно,
// с учётом регистра. Хэшируем bcrypt с DefaultCost (work factor 10).
func (s *Store) Register(username, password string, role models.UserRole) (models.User, error) {
	if !IsStrong(password) {
		return models.User{}, ErrInvalidPassword
	}

	var count int64
	if err := s.db.Model(&models.User{}).
		Where("username = ?", username).
		Count(&count).Error; err != nil {
		return models.User{}, fmt.Errorf("check username: %w", err)
	}
	if count > 0 {
		return models.User{}, ErrDuplicateUsername
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, fmt.Errorf("hash password: %w", err)
	}

	user := models.User{
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
	}
	if err := s.db.Create(&user).Error; err != nil {
		// гонка двух одновременных регистраций: уникальный индекс
		// в БД добивает того, кто пришёл вторым
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return models.User{}, ErrDuplicateUsername
		}
		return models.User{}, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

// Verify проверяет логин и пароль, возвращает пользователя при совпадении.
func (s *Store) Verify(username, password string) (models.User, error) {
	var user models.User
	if err := s.db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, ErrInvalidCredentials
		}
		return models.User{}, fmt.Errorf("find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return models.User{}, ErrInvalidCredentials
	}

	return user, nil
}

// FindByID достаёт пользователя по id (нужно для резолва сессии).
func (s *Store) FindByID(id uint) (models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		return models.User{}, err
	}
	return user, nil
}
