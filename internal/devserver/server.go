// Package devserver is an in-memory stand-in for the Controle Fácil backend.
// It implements the same REST contract the production server exposes, close
// enough for local development and end-to-end tests: JWT bearer auth,
// bcrypt-hashed passwords, and the goal amount clamp enforced server-side.
package devserver

import (
	"sync"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type user struct {
	ID        string
	Nome      string
	Email     string
	SenhaHash []byte
}

type account struct {
	PlanoID string
	Ativa   bool
}

type meta struct {
	ID         string  `json:"id"`
	Titulo     string  `json:"titulo"`
	Atual      float64 `json:"atual"`
	Meta       float64 `json:"meta"`
	DataLimite string  `json:"dataLimite"`
}

type transacao struct {
	ID            string  `json:"id"`
	Descricao     string  `json:"descricao"`
	Valor         float64 `json:"valor"`
	Hora          string  `json:"hora"`
	Tipo          string  `json:"tipo"`
	CategoriaID   string  `json:"categoriaId,omitempty"`
	CategoriaNome string  `json:"categoriaNome,omitempty"`
}

type categoria struct {
	ID   string `json:"id"`
	Nome string `json:"nome"`
}

type gastoFuturo struct {
	ID        string  `json:"id"`
	Descricao string  `json:"descricao"`
	Valor     float64 `json:"valor"`
}

type plano struct {
	ID        string  `json:"id"`
	Nome      string  `json:"nome"`
	Preco     float64 `json:"preco"`
	Descricao string  `json:"descricao"`
}

type cartao struct {
	Numero   string `json:"numero"`
	Validade string `json:"validade"`
	Titular  string `json:"titular"`
	Bandeira string `json:"bandeira"`
}

type visaoMensal struct {
	Mes   string  `json:"mes"`
	Valor float64 `json:"valor"`
}

// Server holds all state behind one mutex. Data is keyed by user email so
// multiple seeded users stay isolated.
type Server struct {
	secret []byte

	mu       sync.Mutex
	users    map[string]user
	accounts map[string]account
	metas    map[string][]meta
	txs      map[string][]transacao
	gastos   map[string][]gastoFuturo

	planos     []plano
	categorias []categoria
	cartoes    map[string]cartao
}

func NewServer(secret string) *Server {
	return &Server{
		secret:   []byte(secret),
		users:    map[string]user{},
		accounts: map[string]account{},
		metas:    map[string][]meta{},
		txs:      map[string][]transacao{},
		gastos:   map[string][]gastoFuturo{},
		planos: []plano{
			{ID: "basico", Nome: "Básico", Preco: 9.90, Descricao: "Controle essencial"},
			{ID: "plus", Nome: "Plus", Preco: 19.90, Descricao: "Relatórios avançados"},
			{ID: "premium", Nome: "Premium", Preco: 39.90, Descricao: "Tudo do Plus com suporte dedicado"},
		},
		categorias: []categoria{
			{ID: "cat-alimentacao", Nome: "Alimentação"},
			{ID: "cat-transporte", Nome: "Transporte"},
			{ID: "cat-lazer", Nome: "Lazer"},
			{ID: "cat-salario", Nome: "Salário"},
		},
		cartoes: map[string]cartao{},
	}
}

// SeedUser registers a user and, when planID is non-empty, an account in the
// given activation state, plus a card so the dashboard widgets have data.
func (s *Server) SeedUser(nome, email, senha, planID string, ativa bool) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(senha), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[email] = user{ID: uuid.NewString(), Nome: nome, Email: email, SenhaHash: hash}
	if planID != "" {
		s.accounts[email] = account{PlanoID: planID, Ativa: ativa}
	}
	s.cartoes[email] = cartao{
		Numero:   "5502 0944 1103 8821",
		Validade: "09/29",
		Titular:  nome,
		Bandeira: "Mastercard",
	}
	return nil
}
