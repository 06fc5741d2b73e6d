package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/kintai-hq/kintai-backend-go/internal/domain/workrule"
	"github.com/kintai-hq/kintai-backend-go/internal/pkg/database"
)

type workRuleRepositoryImpl struct {
	db *database.DB
}

func NewWorkRuleRepository(db *database.DB) workrule.RuleRepository {
	return &workRuleRepositoryImpl{db: db}
}

const ruleColumns = `
	r.id, r.user_id, r.name,
	r.standard_start, r.standard_end, r.break_start, r.break_end,
	r.workplace_name, r.latitude, r.longitude, r.radius_meters,
	r.created_at, r.updated_at
`

// scanRule maps one work_rules row. The workplace is attached only when the
// row carries coordinates.
func scanRule(row pgx.Row, extra ...interface{}) (workrule.Rule, error) {
	var (
		rule          workrule.Rule
		workplaceName *string
		latitude      *float64
		longitude     *float64
		radiusMeters  *int
	)

	dest := []interface{}{
		&rule.ID, &rule.UserID, &rule.Name,
		&rule.Template.StandardStart, &rule.Template.StandardEnd,
		&rule.Template.BreakStart, &rule.Template.BreakEnd,
		&workplaceName, &latitude, &longitude, &radiusMeters,
		&rule.CreatedAt, &rule.UpdatedAt,
	}
	dest = append(dest, extra...)

	if err := row.Scan(dest...); err != nil {
		return workrule.Rule{}, err
	}

	if latitude != nil && longitude != nil {
		wp := workrule.Workplace{
			Latitude:  *latitude,
			Longitude: *longitude,
		}
		if workplaceName != nil {
			wp.Name = *workplaceName
		}
		if radiusMeters != nil {
			wp.RadiusMeters = *radiusMeters
		}
		rule.Workplace = &wp
	}

	return rule, nil
}

// FindAssignmentRules implements workrule.RuleRepository.
func (r *workRuleRepositoryImpl) FindAssignmentRules(ctx context.Context, userID string, date time.Time) ([]workrule.Assignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + ruleColumns + `, a.start_date, a.end_date
		FROM work_rules r
		JOIN rule_assignments a ON a.rule_id = r.id
		WHERE r.user_id = $1
		  AND a.start_date <= $2
		  AND a.end_date >= $2
		ORDER BY a.start_date DESC, r.created_at DESC
	`

	rows, err := q.Query(ctx, query, userID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to find assignment rules: %w", err)
	}
	defer rows.Close()

	var assignments []workrule.Assignment
	for rows.Next() {
		var a workrule.Assignment
		rule, err := scanRule(rows, &a.StartDate, &a.EndDate)
		if err != nil {
			return nil, fmt.Errorf("failed to scan assignment rule: %w", err)
		}
		a.Rule = rule
		assignments = append(assignments, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate assignment rules: %w", err)
	}

	return assignments, nil
}

// FindDefaultRules implements workrule.RuleRepository.
func (r *workRuleRepositoryImpl) FindDefaultRules(ctx context.Context, userID string) ([]workrule.Rule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + ruleColumns + `
		FROM work_rules r
		WHERE r.user_id = $1
		  AND NOT EXISTS (
			SELECT 1 FROM rule_assignments a WHERE a.rule_id = r.id
		  )
		ORDER BY r.created_at DESC
	`

	rows, err := q.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to find default rules: %w", err)
	}
	defer rows.Close()

	var rules []workrule.Rule
	for rows.Next() {
		rule, err := scanRule(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan default rule: %w", err)
		}
		rules = append(rules, rule)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate default rules: %w", err)
	}

	return rules, nil
}

// GetUserSetting implements workrule.RuleRepository.
func (r *workRuleRepositoryImpl) GetUserSetting(ctx context.Context, userID string) (workrule.UserSetting, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT user_id, closing_day, rounding_unit_minutes, created_at, updated_at
		FROM user_settings
		WHERE user_id = $1
	`

	var setting workrule.UserSetting
	err := q.QueryRow(ctx, query, userID).Scan(
		&setting.UserID, &setting.ClosingDay, &setting.RoundingUnitMinutes,
		&setting.CreatedAt, &setting.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return workrule.UserSetting{}, workrule.ErrUserSettingNotFound
		}
		return workrule.UserSetting{}, fmt.Errorf("failed to get user setting: %w", err)
	}

	return setting, nil
}
