package out

import (
	"context"

	"github.com/shopspring/decimal"

	"cfdash/internal/modules/account/domain"
	accountout "cfdash/internal/modules/account/port/out"
	"cfdash/internal/platform/httpx"
)

type HTTPAccountClient struct {
	client *httpx.Client
}

func NewHTTPAccountClient(client *httpx.Client) *HTTPAccountClient {
	return &HTTPAccountClient{client: client}
}

var _ accountout.AccountAPI = (*HTTPAccountClient)(nil)

type userWrite struct {
	Nome  string `json:"nome"`
	Email string `json:"email"`
	Senha string `json:"senha"`
}

type userRecord struct {
	ID    string `json:"id"`
	Nome  string `json:"nome"`
	Email string `json:"email"`
}

type planoRecord struct {
	ID        string  `json:"id"`
	Nome      string  `json:"nome"`
	Preco     float64 `json:"preco"`
	Descricao string  `json:"descricao"`
}

type contaWrite struct {
	PlanoID string `json:"planoId"`
}

func (c *HTTPAccountClient) Register(ctx context.Context, reg domain.Registration) (string, string, string, error) {
	var record userRecord
	body := userWrite{Nome: reg.Name, Email: reg.Email, Senha: reg.Password}
	if err := c.client.Post(ctx, "/users", body, &record); err != nil {
		return "", "", "", err
	}
	return record.ID, record.Nome, record.Email, nil
}

func (c *HTTPAccountClient) Plans(ctx context.Context) ([]domain.Plan, error) {
	var records []planoRecord
	if err := c.client.Get(ctx, "/api/plano", &records); err != nil {
		return nil, err
	}
	plans := make([]domain.Plan, 0, len(records))
	for _, r := range records {
		plans = append(plans, domain.Plan{
			ID:          r.ID,
			Name:        r.Nome,
			Price:       decimal.NewFromFloat(r.Preco),
			Description: r.Descricao,
		})
	}
	return plans, nil
}

func (c *HTTPAccountClient) CreateAccount(ctx context.Context, planID string) error {
	return c.client.Post(ctx, "/api/conta", contaWrite{PlanoID: planID}, nil)
}
