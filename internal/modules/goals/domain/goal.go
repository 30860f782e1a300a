package domain

import (
	"hash/fnv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	apperrors "cfdash/internal/platform/errors"
)

// MaxDeadlineYears bounds how far in the future a goal deadline may sit.
const MaxDeadlineYears = 10

// Palette mirrors the dashboard's goal accent colors.
var Palette = []string{"green", "blue", "purple", "red", "yellow"}

type Goal struct {
	ID       string
	Title    string
	Target   decimal.Decimal
	Current  decimal.Decimal
	Deadline time.Time
}

// Draft is a goal before the server has assigned it an id. New goals always
// start at zero progress.
type Draft struct {
	Title    string
	Target   decimal.Decimal
	Deadline time.Time
}

// ProgressPercent is round(current/target*100).
func (g Goal) ProgressPercent() int {
	if g.Target.IsZero() {
		return 0
	}
	pct := g.Current.Div(g.Target).Mul(decimal.NewFromInt(100))
	return int(pct.Round(0).IntPart())
}

// ClampAmount turns a signed delta into the absolute amount sent to the
// server: floor-clamped at zero, ceiling-clamped at the target.
func (g Goal) ClampAmount(delta decimal.Decimal) decimal.Decimal {
	next := g.Current.Add(delta)
	if next.IsNegative() {
		return decimal.Zero
	}
	if next.GreaterThan(g.Target) {
		return g.Target
	}
	return next
}

// Color derives a stable accent color from the goal id, so a goal keeps its
// color across refreshes regardless of list order.
func (g Goal) Color() string {
	h := fnv.New32a()
	_, _ = h.Write([]byte(g.ID))
	return Palette[int(h.Sum32())%len(Palette)]
}

// ValidateDraft enforces the creation rules: non-empty title, positive
// target, deadline between now and now plus ten years, both ends inclusive.
func ValidateDraft(title string, target decimal.Decimal, deadline, now time.Time) error {
	v := apperrors.NewValidation()
	validateInto(v, title, target, deadline, now)
	if !v.Empty() {
		return v
	}
	return nil
}

// ValidateEdit adds the cross-field rule: a target may never be edited below
// progress already made.
func ValidateEdit(title string, target, current decimal.Decimal, deadline, now time.Time) error {
	v := apperrors.NewValidation()
	validateInto(v, title, target, deadline, now)
	if current.IsNegative() {
		v.Add("current", "current amount cannot be negative")
	}
	if target.LessThan(current) {
		v.Add("target", "target cannot be below the current amount")
	}
	if !v.Empty() {
		return v
	}
	return nil
}

func validateInto(v *apperrors.ValidationError, title string, target decimal.Decimal, deadline, now time.Time) {
	if strings.TrimSpace(title) == "" {
		v.Add("title", "title is required")
	}
	if !target.IsPositive() {
		v.Add("target", "target must be greater than zero")
	}
	if deadline.IsZero() {
		v.Add("deadline", "deadline is required")
		return
	}
	if deadline.Before(now) || deadline.After(now.AddDate(MaxDeadlineYears, 0, 0)) {
		v.Add("deadline", "deadline must be between today and ten years from now")
	}
}
