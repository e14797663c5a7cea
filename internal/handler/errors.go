package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	ErrMsgMethodNotAllowed      = "Method not allowed"
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Query parameter error messages
	ErrMsgMissingQueryParam = "Missing %s query parameter"
	ErrMsgInvalidLimit      = "Invalid limit parameter"

	// Player management error messages
	ErrMsgCreatePlayerFailed = "Failed to create player"
	ErrMsgUpdatePlayerFailed = "Failed to update player"
	ErrMsgDeletePlayerFailed = "Failed to delete player"
	ErrMsgGetPlayerFailed    = "Failed to get player"
	ErrMsgListPlayersFailed  = "Failed to list players"
	ErrMsgInvalidPlayerID    = "Invalid player ID"
	ErrMsgSearchFailed       = "Failed to perform search"
	ErrMsgExportFailed       = "Failed to export leaderboard"
	ErrMsgPrivateProfile     = "This profile is private"

	// Quest error messages
	ErrMsgGetQuestsFailed    = "Failed to retrieve quests"
	ErrMsgCreateQuestFailed  = "Failed to create quest"
	ErrMsgAcceptQuestFailed  = "Failed to accept quest"
	ErrMsgInvalidQuestID     = "Invalid quest ID"
	ErrMsgQuestProgressError = "Failed to update quest progress"

	// Achievement error messages
	ErrMsgGetAchievementsFailed   = "Failed to retrieve achievements"
	ErrMsgCreateAchievementFailed = "Failed to create achievement"
	ErrMsgInvalidAchievementID    = "Invalid achievement ID"

	// Cosmetic error messages
	ErrMsgCreateTitleFailed   = "Failed to create title"
	ErrMsgAssignTitleFailed   = "Failed to assign title"
	ErrMsgCreateThemeFailed   = "Failed to create gradient theme"
	ErrMsgApplyGradientFailed = "Failed to apply gradient"

	// Stats error messages
	ErrMsgGetStatsFailed = "Failed to load statistics"
)

// Success messages for API responses
const (
	MsgPlayerCreatedSuccess    = "Player added to the leaderboard"
	MsgPlayerUpdatedSuccess    = "Player updated"
	MsgPlayerDeletedSuccess    = "Player deleted"
	MsgLeaderboardCleared      = "Leaderboard cleared"
	MsgQuestAcceptedSuccess    = "Quest accepted"
	MsgQuestCompletedSuccess   = "Quest completed"
	MsgQuestDeletedSuccess     = "Quest deleted"
	MsgQuestProgressReset      = "Quest progress reset"
	MsgTitleAssignedSuccess    = "Title assigned"
	MsgTitleRemovedSuccess     = "Title removed"
	MsgAllTitlesRemoved        = "All titles removed"
	MsgGradientAppliedSuccess  = "Gradient applied"
	MsgGradientRemovedSuccess  = "Gradient removed"
	MsgProfileUpdatedSuccess   = "Profile updated"
	MsgSkinUpdatedSuccess      = "Skin settings updated"
	MsgDemoDataInitialized     = "Demo data initialized"
	MsgLoggedOutSuccess        = "Logged out"
	MsgAchievementDeleted      = "Achievement deleted"
	MsgRoleUpdatedSuccess      = "Role updated"
	MsgTitleActivatedSuccess   = "Title activated"
)
