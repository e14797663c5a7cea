package repository

import (
	"context"

	"github.com/raidshadowmc-sudo/bedwars-panel/internal/domain"
)

// Cosmetic defines the interface for title and gradient persistence
type Cosmetic interface {
	CreateTitle(ctx context.Context, title *domain.CustomTitle) error
	GetTitleByID(ctx context.Context, id int) (*domain.CustomTitle, error)
	GetTitleByName(ctx context.Context, name string) (*domain.CustomTitle, error)
	ListTitles(ctx context.Context) ([]domain.CustomTitle, error)

	// AssignTitle deactivates any active binding and inserts the new active
	// one in a single transaction, so the one-active invariant holds under
	// concurrent assignment
	AssignTitle(ctx context.Context, playerID, titleID int, assignedBy string) error
	// ActivateOwnedTitle flips an existing binding active, deactivating the
	// rest in the same transaction; ErrTitleNotOwned if no binding exists
	ActivateOwnedTitle(ctx context.Context, playerID, titleID int) error
	DeactivateTitles(ctx context.Context, playerID int) error
	DeactivateAllTitles(ctx context.Context) error
	GetActiveTitle(ctx context.Context, playerID int) (*domain.CustomTitle, error)
	ListPlayerTitles(ctx context.Context, playerID int) ([]domain.PlayerTitle, error)

	CreateTheme(ctx context.Context, theme *domain.GradientTheme) error
	GetThemeByID(ctx context.Context, id int) (*domain.GradientTheme, error)
	GetThemeByName(ctx context.Context, name string) (*domain.GradientTheme, error)
	ListThemes(ctx context.Context, activeOnly bool) ([]domain.GradientTheme, error)

	// UpsertGradientSetting inserts or replaces the single row keyed by
	// (player, element type)
	UpsertGradientSetting(ctx context.Context, setting *domain.PlayerGradientSetting) error
	RemoveGradientSetting(ctx context.Context, playerID int, elementType string) error
	ListGradientSettings(ctx context.Context, playerID int) ([]domain.PlayerGradientSetting, error)
}
