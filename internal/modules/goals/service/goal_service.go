package service

import (
	"time"

	"github.com/shopspring/decimal"

	"cfdash/internal/modules/goals/domain"
	"cfdash/internal/platform/clock"
)

// GoalService anchors the validation window to the clock. Deadlines are
// compared at day granularity: a deadline of today is valid, yesterday is
// not, and the upper bound is exactly ten years out.
type GoalService struct {
	clock clock.Clock
}

func NewGoalService(clk clock.Clock) *GoalService {
	return &GoalService{clock: clk}
}

func (s *GoalService) NewDraft(title string, target decimal.Decimal, deadline time.Time) (domain.Draft, error) {
	if err := domain.ValidateDraft(title, target, deadline, s.today()); err != nil {
		return domain.Draft{}, err
	}
	return domain.Draft{Title: title, Target: target, Deadline: deadline}, nil
}

func (s *GoalService) CheckEdit(title string, target, current decimal.Decimal, deadline time.Time) error {
	return domain.ValidateEdit(title, target, current, deadline, s.today())
}

func (s *GoalService) today() time.Time {
	now := s.clock.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
