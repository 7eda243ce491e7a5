package user

import "context"

// Repository определяет контракт хранилища пользователей.
// Реализации находятся в infrastructure/persistence.
type Repository interface {
	// Insert добавляет нового пользователя в хранилище.
	Insert(ctx context.Context, u *User) error

	// FindByID возвращает пользователя по ID.
	// Отсутствие - это (nil, nil), а не ошибка.
	FindByID(ctx context.Context, id string) (*User, error)

	// FindMany возвращает всех пользователей в порядке вставки.
	FindMany(ctx context.Context) ([]*User, error)

	// Update заменяет атрибуты существующего пользователя.
	// Возвращает shared.ErrNotFound, если пользователь не найден.
	Update(ctx context.Context, u *User) (*User, error)

	// Delete удаляет пользователя по ID.
	// Возвращает shared.ErrNotFound, если пользователь не найден.
	Delete(ctx context.Context, id string) error

	// FindByUsername возвращает пользователя по логину.
	// Отсутствие - это (nil, nil), а не ошибка.
	FindByUsername(ctx context.Context, username Username) (*User, error)
}
