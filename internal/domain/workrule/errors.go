package workrule

import "errors"

// Work rule domain errors
var (
	ErrRuleNotFound        = errors.New("work rule not found")
	ErrUserSettingNotFound = errors.New("user setting not found")
	ErrInvalidInterval     = errors.New("assignment start date must not be after end date")
)
