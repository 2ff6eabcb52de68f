package repository

import (
	"context"

	"github.com/bizlens/bizlens/internal/domain"
)

type SessionRepo interface {
	Upsert(ctx context.Context, s *domain.ChatSession) error
	GetByID(ctx context.Context, id string) (*domain.ChatSession, error)
	List(ctx context.Context, limit int) ([]*domain.ChatSession, error)
	Delete(ctx context.Context, id string) error
}

type MessageRepo interface {
	Create(ctx context.Context, m *domain.ChatMessage) error
	ListBySession(ctx context.Context, sessionID string) ([]*domain.ChatMessage, error)
	ListRecent(ctx context.Context, limit int) ([]*domain.ChatMessage, error)
	CountBySession(ctx context.Context, sessionID string) (int, error)
}

type SettingsRepo interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	All(ctx context.Context) (map[string]string, error)
	Delete(ctx context.Context, key string) error
}
