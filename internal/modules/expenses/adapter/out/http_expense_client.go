package out

import (
	"context"

	"github.com/shopspring/decimal"

	"cfdash/internal/modules/expenses/domain"
	expensesout "cfdash/internal/modules/expenses/port/out"
	"cfdash/internal/platform/httpx"
)

type HTTPExpenseClient struct {
	client *httpx.Client
}

func NewHTTPExpenseClient(client *httpx.Client) *HTTPExpenseClient {
	return &HTTPExpenseClient{client: client}
}

var _ expensesout.ExpenseAPI = (*HTTPExpenseClient)(nil)

type gastoFuturoRecord struct {
	ID        string  `json:"id"`
	Descricao string  `json:"descricao"`
	Valor     float64 `json:"valor"`
}

type gastoFuturoWrite struct {
	Descricao string  `json:"descricao"`
	Valor     float64 `json:"valor"`
}

func (c *HTTPExpenseClient) List(ctx context.Context) ([]domain.FutureExpense, error) {
	var records []gastoFuturoRecord
	if err := c.client.Get(ctx, "/api/gastos-futuros", &records); err != nil {
		return nil, err
	}
	expenses := make([]domain.FutureExpense, 0, len(records))
	for _, r := range records {
		expenses = append(expenses, r.toDomain())
	}
	return expenses, nil
}

func (c *HTTPExpenseClient) Create(ctx context.Context, expense domain.FutureExpense) (domain.FutureExpense, error) {
	var record gastoFuturoRecord
	if err := c.client.Post(ctx, "/api/gastos-futuros", toWrite(expense), &record); err != nil {
		return domain.FutureExpense{}, err
	}
	return record.toDomain(), nil
}

func (c *HTTPExpenseClient) Update(ctx context.Context, expense domain.FutureExpense) (domain.FutureExpense, error) {
	var record gastoFuturoRecord
	if err := c.client.Put(ctx, "/api/gastos-futuros/"+expense.ID, toWrite(expense), &record); err != nil {
		return domain.FutureExpense{}, err
	}
	return record.toDomain(), nil
}

func (c *HTTPExpenseClient) Delete(ctx context.Context, id string) error {
	return c.client.Delete(ctx, "/api/gastos-futuros/"+id)
}

func toWrite(e domain.FutureExpense) gastoFuturoWrite {
	return gastoFuturoWrite{Descricao: e.Description, Valor: e.Amount.InexactFloat64()}
}

func (r gastoFuturoRecord) toDomain() domain.FutureExpense {
	return domain.FutureExpense{ID: r.ID, Description: r.Descricao, Amount: decimal.NewFromFloat(r.Valor)}
}
