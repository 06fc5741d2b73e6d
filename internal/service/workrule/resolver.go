package workrule

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/kintai-hq/kintai-backend-go/internal/domain/workrule"
)

const (
	// DefaultWorkplaceRadiusMeters applies when a rule carries a workplace
	// without an explicit tolerance radius.
	DefaultWorkplaceRadiusMeters = 100

	// DefaultClosingDay clamps to the last day of every month, so users
	// without settings get plain calendar-month periods.
	DefaultClosingDay = 31

	// DefaultRoundingUnitMinutes leaves clock times at minute precision.
	DefaultRoundingUnitMinutes = 1
)

// SystemDefaultTemplate is the template of last resort: 09:00-17:30 with a
// 12:00-13:00 break (7.5h standard work).
func SystemDefaultTemplate() workrule.Template {
	breakStart := workrule.At(12, 0)
	breakEnd := workrule.At(13, 0)
	return workrule.Template{
		StandardStart: workrule.At(9, 0),
		StandardEnd:   workrule.At(17, 30),
		BreakStart:    &breakStart,
		BreakEnd:      &breakEnd,
	}
}

// ruleSource is one step of the resolution chain. It returns nil when it has
// no rule for the (user, date) pair, letting the next source take over.
type ruleSource interface {
	find(ctx context.Context, userID string, date time.Time) (*workrule.Rule, error)
}

// assignmentSource serves rules scoped to a membership interval containing
// the work date. When several assignments overlap, the one with the latest
// start date wins; equal start dates break by the most recently created.
type assignmentSource struct {
	repo workrule.RuleRepository
}

func (s assignmentSource) find(ctx context.Context, userID string, date time.Time) (*workrule.Rule, error) {
	assignments, err := s.repo.FindAssignmentRules(ctx, userID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to find assignment rules: %w", err)
	}

	var best *workrule.Assignment
	for i := range assignments {
		a := &assignments[i]
		if a.StartDate.After(a.EndDate) {
			return nil, fmt.Errorf("rule %s: %w", a.ID, workrule.ErrInvalidInterval)
		}
		if !a.Covers(date) {
			continue
		}
		if best == nil ||
			a.StartDate.After(best.StartDate) ||
			(a.StartDate.Equal(best.StartDate) && a.CreatedAt.After(best.CreatedAt)) {
			best = a
		}
	}

	if best == nil {
		return nil, nil
	}
	return &best.Rule, nil
}

// defaultSource serves the user's interval-less fallback rules. The most
// recently created one wins.
type defaultSource struct {
	repo workrule.RuleRepository
}

func (s defaultSource) find(ctx context.Context, userID string, _ time.Time) (*workrule.Rule, error) {
	rules, err := s.repo.FindDefaultRules(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to find default rules: %w", err)
	}

	var best *workrule.Rule
	for i := range rules {
		r := &rules[i]
		if best == nil || r.CreatedAt.After(best.CreatedAt) {
			best = r
		}
	}

	return best, nil
}

// Resolver walks an ordered chain of rule sources: assignment rule, then the
// user's default rule, then the hard-coded system default. Resolve therefore
// always yields a usable template.
type Resolver struct {
	sources []ruleSource
	repo    workrule.RuleRepository
}

func NewResolver(repo workrule.RuleRepository) *Resolver {
	return &Resolver{
		sources: []ruleSource{
			assignmentSource{repo: repo},
			defaultSource{repo: repo},
		},
		repo: repo,
	}
}

// Resolve returns the work-time template applying to the user on the work
// date. Missing rule data is not an error; the system default fills in.
func (r *Resolver) Resolve(ctx context.Context, userID string, date time.Time) (workrule.Template, error) {
	for _, src := range r.sources {
		rule, err := src.find(ctx, userID, date)
		if err != nil {
			return workrule.Template{}, err
		}
		if rule != nil {
			return rule.Template, nil
		}
	}

	return SystemDefaultTemplate(), nil
}

// ResolveWorkplace returns the geofenced workplace applying to the user on
// the work date, or nil when no rule source carries location data. A found
// workplace without an explicit radius gets DefaultWorkplaceRadiusMeters.
func (r *Resolver) ResolveWorkplace(ctx context.Context, userID string, date time.Time) (*workrule.Workplace, error) {
	for _, src := range r.sources {
		rule, err := src.find(ctx, userID, date)
		if err != nil {
			return nil, err
		}
		if rule == nil || rule.Workplace == nil {
			continue
		}

		wp := *rule.Workplace
		if wp.RadiusMeters <= 0 {
			wp.RadiusMeters = DefaultWorkplaceRadiusMeters
		}
		return &wp, nil
	}

	return nil, nil
}

// GetUserSetting returns the user's closing day and rounding unit, falling
// back to system defaults when the user has no settings row.
func (r *Resolver) GetUserSetting(ctx context.Context, userID string) (workrule.UserSetting, error) {
	setting, err := r.repo.GetUserSetting(ctx, userID)
	if err != nil {
		if errors.Is(err, workrule.ErrUserSettingNotFound) {
			return workrule.UserSetting{
				UserID:              userID,
				ClosingDay:          DefaultClosingDay,
				RoundingUnitMinutes: DefaultRoundingUnitMinutes,
			}, nil
		}
		return workrule.UserSetting{}, fmt.Errorf("failed to get user setting: %w", err)
	}

	return setting, nil
}
