package out

import (
	"context"

	"github.com/shopspring/decimal"

	"cfdash/internal/modules/summary/domain"
	summaryout "cfdash/internal/modules/summary/port/out"
	"cfdash/internal/platform/httpx"
)

type HTTPSummaryClient struct {
	client *httpx.Client
}

func NewHTTPSummaryClient(client *httpx.Client) *HTTPSummaryClient {
	return &HTTPSummaryClient{client: client}
}

var _ summaryout.SummaryAPI = (*HTTPSummaryClient)(nil)

type saudeRecord struct {
	Percentual float64 `json:"percentual"`
}

type cartaoRecord struct {
	Numero   string `json:"numero"`
	Validade string `json:"validade"`
	Titular  string `json:"titular"`
	Bandeira string `json:"bandeira"`
}

type visaoMensalRecord struct {
	Mes   string  `json:"mes"`
	Valor float64 `json:"valor"`
}

func (c *HTTPSummaryClient) Health(ctx context.Context) (domain.Health, error) {
	var record saudeRecord
	if err := c.client.Get(ctx, "/api/saude-financeira", &record); err != nil {
		return domain.Health{}, err
	}
	return domain.Health{Percent: record.Percentual}, nil
}

func (c *HTTPSummaryClient) Card(ctx context.Context) (domain.CardInfo, error) {
	var record cartaoRecord
	if err := c.client.Get(ctx, "/api/cartao", &record); err != nil {
		return domain.CardInfo{}, err
	}
	return domain.CardInfo{
		Number: record.Numero,
		Expiry: record.Validade,
		Holder: record.Titular,
		Brand:  record.Bandeira,
	}, nil
}

func (c *HTTPSummaryClient) Monthly(ctx context.Context) ([]domain.MonthPoint, error) {
	var records []visaoMensalRecord
	if err := c.client.Get(ctx, "/api/visao-mensal", &records); err != nil {
		return nil, err
	}
	points := make([]domain.MonthPoint, 0, len(records))
	for _, r := range records {
		points = append(points, domain.MonthPoint{Month: r.Mes, Amount: decimal.NewFromFloat(r.Valor)})
	}
	return points, nil
}
