package out

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"cfdash/internal/modules/ledger/domain"
	ledgerout "cfdash/internal/modules/ledger/port/out"
	"cfdash/internal/platform/httpx"
)

type HTTPTransactionClient struct {
	client *httpx.Client
}

func NewHTTPTransactionClient(client *httpx.Client) *HTTPTransactionClient {
	return &HTTPTransactionClient{client: client}
}

var _ ledgerout.TransactionAPI = (*HTTPTransactionClient)(nil)

type transacaoRecord struct {
	ID            string  `json:"id"`
	Descricao     string  `json:"descricao"`
	Valor         float64 `json:"valor"`
	Hora          string  `json:"hora"`
	Tipo          string  `json:"tipo"`
	CategoriaID   string  `json:"categoriaId,omitempty"`
	CategoriaNome string  `json:"categoriaNome,omitempty"`
}

type transacaoWrite struct {
	Descricao   string  `json:"descricao"`
	Valor       float64 `json:"valor"`
	Tipo        string  `json:"tipo"`
	CategoriaID string  `json:"categoriaId,omitempty"`
}

type categoriaRecord struct {
	ID   string `json:"id"`
	Nome string `json:"nome"`
}

func (c *HTTPTransactionClient) List(ctx context.Context, limit int) ([]domain.Transaction, error) {
	var records []transacaoRecord
	if err := c.client.Get(ctx, fmt.Sprintf("/api/transacoes?limit=%d", limit), &records); err != nil {
		return nil, err
	}
	txs := make([]domain.Transaction, 0, len(records))
	for _, r := range records {
		txs = append(txs, r.toDomain())
	}
	return txs, nil
}

func (c *HTTPTransactionClient) Categories(ctx context.Context) ([]domain.Category, error) {
	var records []categoriaRecord
	if err := c.client.Get(ctx, "/api/categorias", &records); err != nil {
		return nil, err
	}
	categories := make([]domain.Category, 0, len(records))
	for _, r := range records {
		categories = append(categories, domain.Category{ID: r.ID, Name: r.Nome})
	}
	return categories, nil
}

func (c *HTTPTransactionClient) Create(ctx context.Context, tx domain.Transaction) (domain.Transaction, error) {
	var record transacaoRecord
	if err := c.client.Post(ctx, "/api/transacoes", toWrite(tx), &record); err != nil {
		return domain.Transaction{}, err
	}
	return record.toDomain(), nil
}

func (c *HTTPTransactionClient) Update(ctx context.Context, tx domain.Transaction) (domain.Transaction, error) {
	var record transacaoRecord
	if err := c.client.Put(ctx, "/api/transacoes/"+tx.ID, toWrite(tx), &record); err != nil {
		return domain.Transaction{}, err
	}
	return record.toDomain(), nil
}

func (c *HTTPTransactionClient) Delete(ctx context.Context, id string) error {
	return c.client.Delete(ctx, "/api/transacoes/"+id)
}

func toWrite(tx domain.Transaction) transacaoWrite {
	return transacaoWrite{
		Descricao:   tx.Description,
		Valor:       tx.Amount.Abs().InexactFloat64(),
		Tipo:        string(tx.Kind),
		CategoriaID: tx.CategoryID,
	}
}

func (r transacaoRecord) toDomain() domain.Transaction {
	return domain.Transaction{
		ID:          r.ID,
		Description: r.Descricao,
		Amount:      decimal.NewFromFloat(r.Valor),
		Time:        r.Hora,
		Kind:        domain.Kind(r.Tipo),
		Category:    r.CategoriaNome,
		CategoryID:  r.CategoriaID,
	}
}
