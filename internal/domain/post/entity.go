// Package post содержит доменную модель публикации.
// Пост владеет комментариями и лайками через обратные ссылки (postId),
// а не через вложенность: удаление поста не каскадируется.
package post

import (
	"errors"
	"time"

	"github.com/pulseboard/pulseboard-backend/internal/domain/shared"
)

// Validation errors.
var (
	ErrTitleRequired   = errors.New("post: title is required")
	ErrContentRequired = errors.New("post: content is required")
	ErrAuthorRequired  = errors.New("post: author id is required")
)

// Post - публикация пользователя.
type Post struct {
	shared.Entity

	// AuthorID - владелец поста. Обязателен.
	AuthorID string

	// Title - заголовок.
	Title string

	// Content - тело поста.
	Content string

	// Tags - упорядоченный список тегов. Может быть пустым.
	Tags []string
}

// New создаёт новый пост с валидацией обязательных полей.
func New(authorID, title, content string, tags []string) (*Post, error) {
	if authorID == "" {
		return nil, ErrAuthorRequired
	}
	if title == "" {
		return nil, ErrTitleRequired
	}
	if content == "" {
		return nil, ErrContentRequired
	}
	return &Post{
		Entity:   shared.NewEntity(),
		AuthorID: authorID,
		Title:    title,
		Content:  content,
		Tags:     tags,
	}, nil
}

// Edit заменяет изменяемые атрибуты поста. Идентичность и автор
// не затрагиваются.
func (p *Post) Edit(title, content string, tags []string) error {
	if title == "" {
		return ErrTitleRequired
	}
	if content == "" {
		return ErrContentRequired
	}
	p.Title = title
	p.Content = content
	p.Tags = tags
	p.Touch()
	return nil
}

// View - плоское сериализуемое представление поста.
type View struct {
	ID        string    `json:"id"`
	AuthorID  string    `json:"authorId"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Tags      []string  `json:"tags,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ToView возвращает снимок текущих атрибутов поста.
func (p *Post) ToView() View {
	return View{
		ID:        p.ID,
		AuthorID:  p.AuthorID,
		Title:     p.Title,
		Content:   p.Content,
		Tags:      p.Tags,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
