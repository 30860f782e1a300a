package out

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"cfdash/internal/modules/goals/domain"
	goalsout "cfdash/internal/modules/goals/port/out"
	"cfdash/internal/platform/httpx"
)

const wireDateLayout = "2006-01-02"

// HTTPGoalClient speaks the backend's Portuguese wire contract for metas.
type HTTPGoalClient struct {
	client *httpx.Client
}

func NewHTTPGoalClient(client *httpx.Client) *HTTPGoalClient {
	return &HTTPGoalClient{client: client}
}

var _ goalsout.GoalAPI = (*HTTPGoalClient)(nil)

type metaRecord struct {
	ID         string  `json:"id"`
	Titulo     string  `json:"titulo"`
	Atual      float64 `json:"atual"`
	Meta       float64 `json:"meta"`
	DataLimite string  `json:"dataLimite"`
}

type metaWrite struct {
	Descricao     string  `json:"descricao"`
	ValorObjetivo float64 `json:"valorObjetivo"`
	ValorAtual    float64 `json:"valorAtual"`
	DataLimite    string  `json:"dataLimite"`
}

type valorWrite struct {
	Valor float64 `json:"valor"`
}

func (c *HTTPGoalClient) List(ctx context.Context) ([]domain.Goal, error) {
	var records []metaRecord
	if err := c.client.Get(ctx, "/api/metas", &records); err != nil {
		return nil, err
	}
	goals := make([]domain.Goal, 0, len(records))
	for _, r := range records {
		g, err := r.toDomain()
		if err != nil {
			return nil, err
		}
		goals = append(goals, g)
	}
	return goals, nil
}

func (c *HTTPGoalClient) Create(ctx context.Context, draft domain.Draft) (domain.Goal, error) {
	body := metaWrite{
		Descricao:     draft.Title,
		ValorObjetivo: draft.Target.InexactFloat64(),
		ValorAtual:    0,
		DataLimite:    draft.Deadline.Format(wireDateLayout),
	}
	var record metaRecord
	if err := c.client.Post(ctx, "/api/metas", body, &record); err != nil {
		return domain.Goal{}, err
	}
	return record.toDomain()
}

func (c *HTTPGoalClient) Update(ctx context.Context, goal domain.Goal) (domain.Goal, error) {
	body := metaWrite{
		Descricao:     goal.Title,
		ValorObjetivo: goal.Target.InexactFloat64(),
		ValorAtual:    goal.Current.InexactFloat64(),
		DataLimite:    goal.Deadline.Format(wireDateLayout),
	}
	var record metaRecord
	if err := c.client.Put(ctx, "/api/metas/"+goal.ID, body, &record); err != nil {
		return domain.Goal{}, err
	}
	return record.toDomain()
}

func (c *HTTPGoalClient) UpdateValue(ctx context.Context, id string, amount decimal.Decimal) (domain.Goal, error) {
	var record metaRecord
	if err := c.client.Patch(ctx, "/api/metas/"+id+"/valor", valorWrite{Valor: amount.InexactFloat64()}, &record); err != nil {
		return domain.Goal{}, err
	}
	return record.toDomain()
}

func (c *HTTPGoalClient) Delete(ctx context.Context, id string) error {
	return c.client.Delete(ctx, "/api/metas/"+id)
}

func (r metaRecord) toDomain() (domain.Goal, error) {
	deadline, err := time.Parse(wireDateLayout, r.DataLimite)
	if err != nil {
		return domain.Goal{}, fmt.Errorf("goal %s has malformed dataLimite %q: %w", r.ID, r.DataLimite, err)
	}
	return domain.Goal{
		ID:       r.ID,
		Title:    r.Titulo,
		Target:   decimal.NewFromFloat(r.Meta),
		Current:  decimal.NewFromFloat(r.Atual),
		Deadline: deadline,
	}, nil
}
