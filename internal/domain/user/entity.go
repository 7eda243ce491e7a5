// Package user содержит доменную модель пользователя Pulseboard.
// Пользователь — корень социального графа: на него ссылаются посты,
// комментарии, лайки и подписки.
package user

import (
	"errors"
	"strings"
	"time"

	"github.com/pulseboard/pulseboard-backend/internal/domain/shared"
)

// Validation errors.
var (
	ErrUsernameRequired = errors.New("user: username is required")
	ErrUsernameInvalid  = errors.New("user: username must be 2-30 characters without whitespace")
	ErrPasswordRequired = errors.New("user: password hash is required")
)

// Username представляет уникальный неизменяемый бизнес-ключ пользователя.
type Username string

// IsValid проверяет корректность имени пользователя.
func (u Username) IsValid() bool {
	s := string(u)
	return len(s) >= 2 && len(s) <= 30 && !strings.ContainsAny(s, " \t\n\r")
}

// String возвращает строковое представление.
func (u Username) String() string {
	return string(u)
}

// User - центральная сущность системы.
type User struct {
	shared.Entity

	// Username - уникальный логин. Неизменяем после создания.
	Username Username

	// PasswordHash - хеш пароля. Для ядра это непрозрачная строка:
	// хеширование и проверка выполняются снаружи.
	PasswordHash string

	// DisplayName - отображаемое имя профиля.
	DisplayName string

	// Bio - краткое описание профиля.
	Bio string
}

// New создаёт нового пользователя с валидацией обязательных полей.
func New(username Username, passwordHash, displayName string) (*User, error) {
	if username == "" {
		return nil, ErrUsernameRequired
	}
	if !username.IsValid() {
		return nil, ErrUsernameInvalid
	}
	if passwordHash == "" {
		return nil, ErrPasswordRequired
	}
	if displayName == "" {
		displayName = username.String()
	}
	return &User{
		Entity:       shared.NewEntity(),
		Username:     username,
		PasswordHash: passwordHash,
		DisplayName:  displayName,
	}, nil
}

// UpdateProfile заменяет изменяемые атрибуты профиля. Username и
// PasswordHash не затрагиваются.
func (u *User) UpdateProfile(displayName, bio string) {
	if displayName != "" {
		u.DisplayName = displayName
	}
	u.Bio = bio
	u.Touch()
}

// ChangePassword заменяет хеш пароля.
func (u *User) ChangePassword(newHash string) error {
	if newHash == "" {
		return ErrPasswordRequired
	}
	u.PasswordHash = newHash
	u.Touch()
	return nil
}

// View - плоское сериализуемое представление пользователя.
// Хеш пароля наружу не отдаётся никогда.
type View struct {
	ID          string    `json:"id"`
	Username    string    `json:"username"`
	DisplayName string    `json:"displayName"`
	Bio         string    `json:"bio,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ToView возвращает снимок текущих атрибутов пользователя.
func (u *User) ToView() View {
	return View{
		ID:          u.ID,
		Username:    u.Username.String(),
		DisplayName: u.DisplayName,
		Bio:         u.Bio,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}
