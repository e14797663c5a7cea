package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Player errors
	ErrMsgPlayerNotFound    = "player not found"
	ErrMsgDuplicateNickname = "nickname already taken"

	// Quest errors
	ErrMsgQuestNotFound = "quest not found"

	// Achievement errors
	ErrMsgAchievementNotFound = "achievement not found"

	// Cosmetic errors
	ErrMsgTitleNotFound  = "title not found"
	ErrMsgThemeNotFound  = "gradient theme not found"
	ErrMsgDuplicateName  = "name already exists"
	ErrMsgTitleNotOwned  = "title not assigned to player"

	// Auth errors
	ErrMsgUnauthorized = "unauthorized"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Player errors
	ErrPlayerNotFound    = errors.New(ErrMsgPlayerNotFound)
	ErrDuplicateNickname = errors.New(ErrMsgDuplicateNickname)

	// Quest errors
	ErrQuestNotFound = errors.New(ErrMsgQuestNotFound)

	// Achievement errors
	ErrAchievementNotFound = errors.New(ErrMsgAchievementNotFound)

	// Cosmetic errors
	ErrTitleNotFound = errors.New(ErrMsgTitleNotFound)
	ErrThemeNotFound = errors.New(ErrMsgThemeNotFound)
	ErrDuplicateName = errors.New(ErrMsgDuplicateName)
	ErrTitleNotOwned = errors.New(ErrMsgTitleNotOwned)

	// Auth errors
	ErrUnauthorized = errors.New(ErrMsgUnauthorized)

	// Validation errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
