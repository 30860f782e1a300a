package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"cfdash/internal/modules/goals/domain"
	"cfdash/internal/modules/goals/dto"
	goalsin "cfdash/internal/modules/goals/port/in"
	"cfdash/internal/modules/goals/service"
	"cfdash/internal/modules/goals/usecase"
	"cfdash/internal/platform/clock"
	apperrors "cfdash/internal/platform/errors"
)

// ─── fakes ───────────────────────────────────────────────────────────────────

type fakeGoalAPI struct {
	goals []domain.Goal

	listCalls   int
	createCalls int
	valueCalls  int

	lastValueID     string
	lastValueAmount decimal.Decimal

	failList   error
	failDelete error
}

func (f *fakeGoalAPI) List(context.Context) ([]domain.Goal, error) {
	f.listCalls++
	if f.failList != nil {
		return nil, f.failList
	}
	return append([]domain.Goal(nil), f.goals...), nil
}

func (f *fakeGoalAPI) Create(_ context.Context, draft domain.Draft) (domain.Goal, error) {
	f.createCalls++
	goal := domain.Goal{
		ID:       "meta-new",
		Title:    draft.Title,
		Target:   draft.Target,
		Current:  decimal.Zero,
		Deadline: draft.Deadline,
	}
	f.goals = append(f.goals, goal)
	return goal, nil
}

func (f *fakeGoalAPI) Update(_ context.Context, goal domain.Goal) (domain.Goal, error) {
	for i, g := range f.goals {
		if g.ID == goal.ID {
			f.goals[i] = goal
		}
	}
	return goal, nil
}

func (f *fakeGoalAPI) UpdateValue(_ context.Context, id string, amount decimal.Decimal) (domain.Goal, error) {
	f.valueCalls++
	f.lastValueID = id
	f.lastValueAmount = amount
	for i, g := range f.goals {
		if g.ID == id {
			f.goals[i].Current = amount
			return f.goals[i], nil
		}
	}
	return domain.Goal{}, apperrors.ErrNotFound
}

func (f *fakeGoalAPI) Delete(_ context.Context, id string) error {
	if f.failDelete != nil {
		return f.failDelete
	}
	kept := f.goals[:0]
	for _, g := range f.goals {
		if g.ID != id {
			kept = append(kept, g)
		}
	}
	f.goals = kept
	return nil
}

func newInteractor(api *fakeGoalAPI) goalsin.Usecase {
	clk := clock.Fixed{T: time.Date(2026, 9, 1, 15, 30, 0, 0, time.UTC)}
	return usecase.NewInteractor(service.NewGoalService(clk), api)
}

func seededGoal() domain.Goal {
	return domain.Goal{
		ID:       "meta-1",
		Title:    "Emergency fund",
		Target:   decimal.NewFromInt(1000),
		Current:  decimal.NewFromInt(900),
		Deadline: time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

// ─── tests ───────────────────────────────────────────────────────────────────

func TestCreateRejectsInvalidInputBeforeNetwork(t *testing.T) {
	t.Parallel()
	api := &fakeGoalAPI{}
	uc := newInteractor(api)

	_, err := uc.Create(context.Background(), dto.CreateInput{Title: "", Target: 0, Deadline: "2027-01-01"})
	if _, ok := apperrors.AsValidation(err); !ok {
		t.Fatalf("expected validation error, got %v", err)
	}
	if api.createCalls != 0 {
		t.Fatalf("invalid input must not reach the server, got %d calls", api.createCalls)
	}
}

func TestCreateRejectsMalformedDeadline(t *testing.T) {
	t.Parallel()
	api := &fakeGoalAPI{}
	uc := newInteractor(api)

	_, err := uc.Create(context.Background(), dto.CreateInput{Title: "Trip", Target: 100, Deadline: "01/02/2027"})
	v, ok := apperrors.AsValidation(err)
	if !ok {
		t.Fatalf("expected validation error, got %v", err)
	}
	if _, present := v.Fields["deadline"]; !present {
		t.Fatalf("expected deadline message, got %v", v.Fields)
	}
	if api.createCalls != 0 {
		t.Fatalf("malformed deadline must not reach the server")
	}
}

func TestCreateAppearsInList(t *testing.T) {
	t.Parallel()
	api := &fakeGoalAPI{}
	uc := newInteractor(api)

	out, err := uc.Create(context.Background(), dto.CreateInput{Title: "Trip", Target: 5000, Deadline: "2027-06-30"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if out.Current != 0 || out.Percent != 0 {
		t.Fatalf("new goal should start at zero, got current=%v percent=%d", out.Current, out.Percent)
	}
	goals, err := uc.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(goals) != 1 || goals[0].Title != "Trip" {
		t.Fatalf("created goal missing from list: %+v", goals)
	}
}

func TestAdjustClampsToTarget(t *testing.T) {
	t.Parallel()
	api := &fakeGoalAPI{goals: []domain.Goal{seededGoal()}}
	uc := newInteractor(api)

	out, err := uc.Adjust(context.Background(), "meta-1", 500)
	if err != nil {
		t.Fatalf("adjust: %v", err)
	}
	if !api.lastValueAmount.Equal(decimal.NewFromInt(1000)) {
		t.Fatalf("expected clamped amount 1000 on the wire, got %s", api.lastValueAmount)
	}
	if out.Current != 1000 || out.Percent != 100 {
		t.Fatalf("expected confirmed 1000 at 100%%, got current=%v percent=%d", out.Current, out.Percent)
	}
}

func TestAdjustClampsToZero(t *testing.T) {
	t.Parallel()
	api := &fakeGoalAPI{goals: []domain.Goal{seededGoal()}}
	uc := newInteractor(api)

	out, err := uc.Adjust(context.Background(), "meta-1", -5000)
	if err != nil {
		t.Fatalf("adjust: %v", err)
	}
	if !api.lastValueAmount.Equal(decimal.Zero) {
		t.Fatalf("expected clamped amount 0 on the wire, got %s", api.lastValueAmount)
	}
	if out.Current != 0 {
		t.Fatalf("expected confirmed 0, got %v", out.Current)
	}
}

func TestAdjustRefreshesColdLedger(t *testing.T) {
	t.Parallel()
	api := &fakeGoalAPI{goals: []domain.Goal{seededGoal()}}
	uc := newInteractor(api)

	// No List call yet in this process; Adjust must fetch once by itself.
	if _, err := uc.Adjust(context.Background(), "meta-1", 50); err != nil {
		t.Fatalf("adjust on cold ledger: %v", err)
	}
	if api.listCalls != 1 {
		t.Fatalf("expected exactly one refresh, got %d", api.listCalls)
	}
}

func TestAdjustUnknownGoal(t *testing.T) {
	t.Parallel()
	api := &fakeGoalAPI{goals: []domain.Goal{seededGoal()}}
	uc := newInteractor(api)

	_, err := uc.Adjust(context.Background(), "meta-missing", 50)
	if !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if api.valueCalls != 0 {
		t.Fatalf("unknown goal must not produce a write")
	}
}

func TestRemoveKeepsGoalOnServerFailure(t *testing.T) {
	t.Parallel()
	api := &fakeGoalAPI{goals: []domain.Goal{seededGoal()}, failDelete: apperrors.ErrTransient}
	uc := newInteractor(api)

	if _, err := uc.List(context.Background()); err != nil {
		t.Fatalf("list: %v", err)
	}
	if err := uc.Remove(context.Background(), "meta-1"); !errors.Is(err, apperrors.ErrTransient) {
		t.Fatalf("expected transient error, got %v", err)
	}
	api.failDelete = nil
	goals, err := uc.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(goals) != 1 {
		t.Fatalf("failed delete must not drop the goal locally, got %d goals", len(goals))
	}
}

func TestEditValidatesCrossField(t *testing.T) {
	t.Parallel()
	api := &fakeGoalAPI{goals: []domain.Goal{seededGoal()}}
	uc := newInteractor(api)

	_, err := uc.Edit(context.Background(), "meta-1", dto.EditInput{
		Title:    "Emergency fund",
		Target:   500,
		Current:  900,
		Deadline: "2027-01-01",
	})
	if _, ok := apperrors.AsValidation(err); !ok {
		t.Fatalf("expected validation error for target below current, got %v", err)
	}
}
