package cosmetic

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/raidshadowmc-sudo/bedwars-panel/internal/domain"
	"github.com/raidshadowmc-sudo/bedwars-panel/internal/logger"
	"github.com/raidshadowmc-sudo/bedwars-panel/internal/repository"
)

// DefaultAssignedBy marks rows created through the admin panel
const DefaultAssignedBy = "admin"

var knownElements = map[string]bool{
	domain.ElementNickname: true,
	domain.ElementTitle:    true,
	domain.ElementStats:    true,
	domain.ElementKills:    true,
	domain.ElementDeaths:   true,
	domain.ElementWins:     true,
	domain.ElementBeds:     true,
	domain.ElementStatus:   true,
	domain.ElementBio:      true,
	domain.ElementRole:     true,
}

type Service interface {
	// Titles
	CreateTitle(ctx context.Context, title *domain.CustomTitle) error
	ListTitles(ctx context.Context) ([]domain.CustomTitle, error)
	AssignTitle(ctx context.Context, playerID, titleID int, assignedBy string) error
	ActivateOwnTitle(ctx context.Context, nickname string, titleID int) error
	RemoveTitle(ctx context.Context, playerID int) error
	RemoveAllTitles(ctx context.Context) error
	GetActiveTitle(ctx context.Context, playerID int) (*domain.CustomTitle, error)
	ListPlayerTitles(ctx context.Context, playerID int) ([]domain.PlayerTitle, error)
	EnsureDefaultTitles(ctx context.Context) error

	// Gradient themes
	CreateTheme(ctx context.Context, theme *domain.GradientTheme) error
	ListThemes(ctx context.Context, activeOnly bool) ([]domain.GradientTheme, error)
	ThemesByElement(ctx context.Context) (map[string][]domain.GradientTheme, error)
	EnsureDefaultThemes(ctx context.Context) error

	// Player gradient settings
	AssignGradient(ctx context.Context, playerID int, elementType string, themeID int, color1, color2, color3 string) error
	ApplyGradient(ctx context.Context, nickname, elementType string, themeID int) error
	RemoveGradient(ctx context.Context, playerID int, elementType string) error
	GradientCSS(ctx context.Context, playerID int) (map[string]string, error)
}

type service struct {
	cosmetics repository.Cosmetic
	players   repository.Player
}

func NewService(cosmetics repository.Cosmetic, players repository.Player) Service {
	return &service{cosmetics: cosmetics, players: players}
}

// CreateTitle stores a new custom title. Names are normalized to lowercase
// and must be unique.
func (s *service) CreateTitle(ctx context.Context, title *domain.CustomTitle) error {
	title.Name = strings.ToLower(strings.TrimSpace(title.Name))
	title.DisplayName = strings.TrimSpace(title.DisplayName)
	if title.Name == "" || title.DisplayName == "" {
		return fmt.Errorf("%w: title name and display name are required", domain.ErrInvalidInput)
	}
	if title.Color == "" {
		title.Color = "#ffd700"
	}
	if title.GlowColor == "" {
		title.GlowColor = title.Color
	}
	if title.CreatedBy == "" {
		title.CreatedBy = DefaultAssignedBy
	}
	title.IsActive = true
	return s.cosmetics.CreateTitle(ctx, title)
}

func (s *service) ListTitles(ctx context.Context) ([]domain.CustomTitle, error) {
	return s.cosmetics.ListTitles(ctx)
}

// AssignTitle gives a player a title and makes it their active one
func (s *service) AssignTitle(ctx context.Context, playerID, titleID int, assignedBy string) error {
	log := logger.FromContext(ctx)

	if _, err := s.players.GetPlayerByID(ctx, playerID); err != nil {
		return err
	}
	if _, err := s.cosmetics.GetTitleByID(ctx, titleID); err != nil {
		return err
	}
	if assignedBy == "" {
		assignedBy = DefaultAssignedBy
	}
	if err := s.cosmetics.AssignTitle(ctx, playerID, titleID, assignedBy); err != nil {
		return err
	}
	log.Info("Title assigned", "player_id", playerID, "title_id", titleID)
	return nil
}

// ActivateOwnTitle lets a player switch their active title among the ones
// they already own
func (s *service) ActivateOwnTitle(ctx context.Context, nickname string, titleID int) error {
	player, err := s.players.GetPlayerByNickname(ctx, nickname)
	if err != nil {
		return err
	}
	return s.cosmetics.ActivateOwnedTitle(ctx, player.ID, titleID)
}

func (s *service) RemoveTitle(ctx context.Context, playerID int) error {
	return s.cosmetics.DeactivateTitles(ctx, playerID)
}

func (s *service) RemoveAllTitles(ctx context.Context) error {
	log := logger.FromContext(ctx)
	if err := s.cosmetics.DeactivateAllTitles(ctx); err != nil {
		return err
	}
	log.Warn("All player titles deactivated")
	return nil
}

func (s *service) GetActiveTitle(ctx context.Context, playerID int) (*domain.CustomTitle, error) {
	return s.cosmetics.GetActiveTitle(ctx, playerID)
}

func (s *service) ListPlayerTitles(ctx context.Context, playerID int) ([]domain.PlayerTitle, error) {
	return s.cosmetics.ListPlayerTitles(ctx, playerID)
}

// CreateTheme stores a new gradient theme. Names are normalized the same
// way the admin form did: lowercased with spaces as underscores.
func (s *service) CreateTheme(ctx context.Context, theme *domain.GradientTheme) error {
	theme.Name = strings.ReplaceAll(strings.ToLower(strings.TrimSpace(theme.Name)), " ", "_")
	theme.DisplayName = strings.TrimSpace(theme.DisplayName)
	if theme.Name == "" || theme.DisplayName == "" || theme.ElementType == "" {
		return fmt.Errorf("%w: theme name, display name and element type are required", domain.ErrInvalidInput)
	}
	if !knownElements[theme.ElementType] {
		return fmt.Errorf("%w: unknown element type %q", domain.ErrInvalidInput, theme.ElementType)
	}
	if theme.Color1 == "" {
		theme.Color1 = "#ffffff"
	}
	if theme.Color2 == "" {
		theme.Color2 = "#000000"
	}
	if theme.GradientDirection == "" {
		theme.GradientDirection = "45deg"
	}
	theme.IsActive = true
	return s.cosmetics.CreateTheme(ctx, theme)
}

func (s *service) ListThemes(ctx context.Context, activeOnly bool) ([]domain.GradientTheme, error) {
	return s.cosmetics.ListThemes(ctx, activeOnly)
}

// ThemesByElement groups the active themes by the element they style
func (s *service) ThemesByElement(ctx context.Context) (map[string][]domain.GradientTheme, error) {
	themes, err := s.cosmetics.ListThemes(ctx, true)
	if err != nil {
		return nil, err
	}
	grouped := make(map[string][]domain.GradientTheme)
	for _, t := range themes {
		grouped[t.ElementType] = append(grouped[t.ElementType], t)
	}
	return grouped, nil
}

// AssignGradient sets a player's gradient for one element from the admin
// panel, either referencing a theme or carrying inline custom colors.
func (s *service) AssignGradient(ctx context.Context, playerID int, elementType string, themeID int, color1, color2, color3 string) error {
	if !knownElements[elementType] {
		return fmt.Errorf("%w: unknown element type %q", domain.ErrInvalidInput, elementType)
	}
	if _, err := s.players.GetPlayerByID(ctx, playerID); err != nil {
		return err
	}
	if themeID != 0 {
		if _, err := s.cosmetics.GetThemeByID(ctx, themeID); err != nil {
			return err
		}
	} else if color1 == "" || color2 == "" {
		return fmt.Errorf("%w: custom gradients need at least two colors", domain.ErrInvalidInput)
	}

	return s.cosmetics.UpsertGradientSetting(ctx, &domain.PlayerGradientSetting{
		PlayerID:        playerID,
		ElementType:     elementType,
		GradientThemeID: themeID,
		CustomColor1:    color1,
		CustomColor2:    color2,
		CustomColor3:    color3,
		IsEnabled:       true,
		AssignedBy:      DefaultAssignedBy,
	})
}

// ApplyGradient is the player self-service path: themes only, no custom
// colors, and animated themes gated behind level 40. A zero theme ID clears
// the element.
func (s *service) ApplyGradient(ctx context.Context, nickname, elementType string, themeID int) error {
	if !knownElements[elementType] {
		return fmt.Errorf("%w: unknown element type %q", domain.ErrInvalidInput, elementType)
	}
	player, err := s.players.GetPlayerByNickname(ctx, nickname)
	if err != nil {
		return err
	}

	if themeID == 0 {
		return s.cosmetics.RemoveGradientSetting(ctx, player.ID, elementType)
	}

	theme, err := s.cosmetics.GetThemeByID(ctx, themeID)
	if err != nil {
		return err
	}
	if !player.CanUseStaticGradients() {
		return fmt.Errorf("%w: gradients unlock at level 1", domain.ErrUnauthorized)
	}
	if theme.AnimationEnabled && !player.CanUseAnimatedGradients() {
		return fmt.Errorf("%w: animated gradients unlock at level 40", domain.ErrUnauthorized)
	}

	return s.cosmetics.UpsertGradientSetting(ctx, &domain.PlayerGradientSetting{
		PlayerID:        player.ID,
		ElementType:     elementType,
		GradientThemeID: themeID,
		IsEnabled:       true,
		AssignedBy:      nickname,
	})
}

func (s *service) RemoveGradient(ctx context.Context, playerID int, elementType string) error {
	return s.cosmetics.RemoveGradientSetting(ctx, playerID, elementType)
}

// GradientCSS resolves the player's enabled gradient settings to a map of
// element type to CSS value, ready for the profile renderer.
func (s *service) GradientCSS(ctx context.Context, playerID int) (map[string]string, error) {
	settings, err := s.cosmetics.ListGradientSettings(ctx, playerID)
	if err != nil {
		return nil, err
	}
	css := make(map[string]string, len(settings))
	for i := range settings {
		if !settings[i].IsEnabled {
			continue
		}
		if value := settings[i].CSSGradient(); value != "" {
			css[settings[i].ElementType] = value
		}
	}
	return css, nil
}

// EnsureDefaultTitles creates the standard title set, skipping names that
// already exist.
func (s *service) EnsureDefaultTitles(ctx context.Context) error {
	for _, t := range defaultTitles() {
		_, err := s.cosmetics.GetTitleByName(ctx, t.Name)
		if err == nil {
			continue
		}
		if !errors.Is(err, domain.ErrTitleNotFound) {
			return err
		}
		t.IsActive = true
		if err := s.cosmetics.CreateTitle(ctx, &t); err != nil {
			return err
		}
	}
	return nil
}

// EnsureDefaultThemes creates the standard gradient themes, skipping names
// that already exist.
func (s *service) EnsureDefaultThemes(ctx context.Context) error {
	for _, t := range defaultThemes() {
		_, err := s.cosmetics.GetThemeByName(ctx, t.Name)
		if err == nil {
			continue
		}
		if !errors.Is(err, domain.ErrThemeNotFound) {
			return err
		}
		t.IsActive = true
		if err := s.cosmetics.CreateTheme(ctx, &t); err != nil {
			return err
		}
	}
	return nil
}
