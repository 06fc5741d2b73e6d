package workrule

import (
	"context"
	"time"
)

// RuleRepository defines read access to the rule data the engine resolves
// against. The engine never writes through this interface.
type RuleRepository interface {
	// FindAssignmentRules returns assignment-scoped rules whose membership
	// interval contains the work date.
	FindAssignmentRules(ctx context.Context, userID string, date time.Time) ([]Assignment, error)

	// FindDefaultRules returns rules with no membership interval for the user.
	FindDefaultRules(ctx context.Context, userID string) ([]Rule, error)

	// GetUserSetting returns the user's closing day and rounding unit.
	// Returns ErrUserSettingNotFound when the user has no row.
	GetUserSetting(ctx context.Context, userID string) (UserSetting, error)
}
