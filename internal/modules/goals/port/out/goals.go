package out

import (
	"context"

	"github.com/shopspring/decimal"

	"cfdash/internal/modules/goals/domain"
)

// GoalAPI is the backend surface the ledger writes through. UpdateValue
// carries the absolute amount, not the delta, so a stale base cannot drift
// the server past what the client computed.
type GoalAPI interface {
	List(ctx context.Context) ([]domain.Goal, error)
	Create(ctx context.Context, draft domain.Draft) (domain.Goal, error)
	Update(ctx context.Context, goal domain.Goal) (domain.Goal, error)
	UpdateValue(ctx context.Context, id string, amount decimal.Decimal) (domain.Goal, error)
	Delete(ctx context.Context, id string) error
}
