package parties

import (
	"context"
	"strings"

	"appointly/backend/internal/domain"
	"appointly/backend/internal/store"
)

type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}

func validationError(msg string) error {
	return &ValidationError{msg: msg}
}

type Service struct {
	registry store.PartyRegistry
	dir      store.PartyDirectory
}

// NewService registers through registry and resolves through dir. Passing the
// registry for both is fine; dir is usually a caching decorator around it.
func NewService(registry store.PartyRegistry, dir store.PartyDirectory) *Service {
	if dir == nil {
		dir = registry
	}
	return &Service{registry: registry, dir: dir}
}

type RegisterInput struct {
	// ID is optional; one is generated when empty.
	ID          string
	Kind        string
	DisplayName string
}

func (s *Service) Register(ctx context.Context, in RegisterInput) (domain.Party, error) {
	kind, ok := domain.ParsePartyKind(in.Kind)
	if !ok {
		return domain.Party{}, validationError("kind must be provider or requester")
	}
	name := strings.TrimSpace(in.DisplayName)
	if name == "" {
		return domain.Party{}, validationError("display_name is required")
	}
	id := strings.TrimSpace(in.ID)
	if len(id) > 128 {
		return domain.Party{}, validationError("id too long")
	}

	return s.registry.Register(ctx, domain.Party{
		ID:          id,
		Kind:        kind,
		DisplayName: name,
	})
}

func (s *Service) Get(ctx context.Context, kind string, id string) (domain.Party, error) {
	k, ok := domain.ParsePartyKind(kind)
	if !ok {
		return domain.Party{}, validationError("kind must be provider or requester")
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return domain.Party{}, validationError("id is required")
	}
	return s.dir.Resolve(ctx, k, id)
}
