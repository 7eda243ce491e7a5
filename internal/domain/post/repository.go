package post

import "context"

// Repository определяет контракт хранилища постов. Специализированных
// запросов у постов нет: агрегирующие сценарии фильтруют FindMany сами.
type Repository interface {
	// Insert добавляет новый пост.
	Insert(ctx context.Context, p *Post) error

	// FindByID возвращает пост по ID. Отсутствие - это (nil, nil).
	FindByID(ctx context.Context, id string) (*Post, error)

	// FindMany возвращает все посты в порядке вставки.
	FindMany(ctx context.Context) ([]*Post, error)

	// Update заменяет атрибуты существующего поста.
	// Возвращает shared.ErrNotFound, если пост не найден.
	Update(ctx context.Context, p *Post) (*Post, error)

	// Delete удаляет пост по ID. Зависимые комментарии и лайки не
	// каскадируются - они отфильтровываются лениво при чтении.
	// Возвращает shared.ErrNotFound, если пост не найден.
	Delete(ctx context.Context, id string) error
}
