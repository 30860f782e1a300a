package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"cfdash/internal/modules/goals/domain"
	"cfdash/internal/modules/goals/dto"
	goalsin "cfdash/internal/modules/goals/port/in"
	goalsout "cfdash/internal/modules/goals/port/out"
	"cfdash/internal/modules/goals/service"
	apperrors "cfdash/internal/platform/errors"
)

const dateLayout = "2006-01-02"

// Interactor is the goal ledger: the sole owner of the in-memory goal list.
// Every mutation is confirmed-only — the list changes after the server
// answers, never before.
type Interactor struct {
	svc *service.GoalService
	api goalsout.GoalAPI

	// The TUI fires API calls from command goroutines outside the update
	// loop, so the ledger itself is guarded.
	mu     sync.Mutex
	ledger []domain.Goal
}

func NewInteractor(svc *service.GoalService, api goalsout.GoalAPI) goalsin.Usecase {
	return &Interactor{svc: svc, api: api}
}

func (i *Interactor) List(ctx context.Context) ([]dto.GoalOutput, error) {
	goals, err := i.api.List(ctx)
	if err != nil {
		return nil, err
	}
	i.mu.Lock()
	i.ledger = goals
	i.mu.Unlock()

	outputs := make([]dto.GoalOutput, 0, len(goals))
	for _, g := range goals {
		outputs = append(outputs, toOutput(g))
	}
	return outputs, nil
}

func (i *Interactor) Create(ctx context.Context, input dto.CreateInput) (dto.GoalOutput, error) {
	deadline, err := parseDeadline(input.Deadline)
	if err != nil {
		return dto.GoalOutput{}, err
	}
	draft, err := i.svc.NewDraft(input.Title, decimal.NewFromFloat(input.Target), deadline)
	if err != nil {
		return dto.GoalOutput{}, err
	}

	created, err := i.api.Create(ctx, draft)
	if err != nil {
		return dto.GoalOutput{}, err
	}

	i.mu.Lock()
	i.ledger = append(i.ledger, created)
	i.mu.Unlock()
	return toOutput(created), nil
}

func (i *Interactor) Edit(ctx context.Context, id string, input dto.EditInput) (dto.GoalOutput, error) {
	deadline, err := parseDeadline(input.Deadline)
	if err != nil {
		return dto.GoalOutput{}, err
	}
	target := decimal.NewFromFloat(input.Target)
	current := decimal.NewFromFloat(input.Current)
	if err := i.svc.CheckEdit(input.Title, target, current, deadline); err != nil {
		return dto.GoalOutput{}, err
	}

	updated, err := i.api.Update(ctx, domain.Goal{
		ID:       id,
		Title:    input.Title,
		Target:   target,
		Current:  current,
		Deadline: deadline,
	})
	if err != nil {
		return dto.GoalOutput{}, err
	}

	i.mu.Lock()
	i.replace(updated)
	i.mu.Unlock()
	return toOutput(updated), nil
}

// Adjust applies a signed delta to a goal's current amount. The request
// carries the clamped absolute amount, and the local record only takes the
// server-confirmed value.
func (i *Interactor) Adjust(ctx context.Context, id string, delta float64) (dto.GoalOutput, error) {
	goal, err := i.lookup(ctx, id)
	if err != nil {
		return dto.GoalOutput{}, err
	}

	amount := goal.ClampAmount(decimal.NewFromFloat(delta))
	confirmed, err := i.api.UpdateValue(ctx, id, amount)
	if err != nil {
		return dto.GoalOutput{}, err
	}

	i.mu.Lock()
	i.replace(confirmed)
	i.mu.Unlock()
	return toOutput(confirmed), nil
}

func (i *Interactor) Remove(ctx context.Context, id string) error {
	if err := i.api.Delete(ctx, id); err != nil {
		return err
	}
	i.mu.Lock()
	defer i.mu.Unlock()
	kept := i.ledger[:0]
	for _, g := range i.ledger {
		if g.ID != id {
			kept = append(kept, g)
		}
	}
	i.ledger = kept
	return nil
}

// lookup finds a goal locally, refreshing from the server once when the
// ledger has not been populated in this process yet.
func (i *Interactor) lookup(ctx context.Context, id string) (domain.Goal, error) {
	if g, ok := i.find(id); ok {
		return g, nil
	}
	goals, err := i.api.List(ctx)
	if err != nil {
		return domain.Goal{}, err
	}
	i.mu.Lock()
	i.ledger = goals
	i.mu.Unlock()
	if g, ok := i.find(id); ok {
		return g, nil
	}
	return domain.Goal{}, apperrors.ErrNotFound
}

func (i *Interactor) find(id string) (domain.Goal, bool) {
	i.mu.Lock()
	defer i.mu.Unlock()
	for _, g := range i.ledger {
		if g.ID == id {
			return g, true
		}
	}
	return domain.Goal{}, false
}

func (i *Interactor) replace(goal domain.Goal) {
	for idx, g := range i.ledger {
		if g.ID == goal.ID {
			i.ledger[idx] = goal
			return
		}
	}
	i.ledger = append(i.ledger, goal)
}

func parseDeadline(value string) (time.Time, error) {
	deadline, err := time.Parse(dateLayout, value)
	if err != nil {
		v := apperrors.NewValidation()
		v.Add("deadline", "deadline must be a date in YYYY-MM-DD form")
		return time.Time{}, v
	}
	return deadline, nil
}

func toOutput(g domain.Goal) dto.GoalOutput {
	return dto.GoalOutput{
		ID:       g.ID,
		Title:    g.Title,
		Target:   g.Target.InexactFloat64(),
		Current:  g.Current.InexactFloat64(),
		Deadline: g.Deadline.Format(dateLayout),
		Color:    g.Color(),
		Percent:  g.ProgressPercent(),
	}
}
