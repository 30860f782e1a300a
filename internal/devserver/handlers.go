package devserver

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// ─── onboarding ──────────────────────────────────────────────────────────────

func (s *Server) handleAccountStatus(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	acc, ok := s.accounts[requestEmail(r)]
	s.mu.Unlock()
	if !ok {
		writeError(w, http.StatusNotFound, "conta não encontrada")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"hasAccount": true, "contaAtiva": acc.Ativa})
}

func (s *Server) handleCreateAccount(w http.ResponseWriter, r *http.Request) {
	var body struct {
		PlanoID string `json:"planoId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.PlanoID == "" {
		writeError(w, http.StatusBadRequest, "planoId é obrigatório")
		return
	}
	known := false
	for _, p := range s.planos {
		if p.ID == body.PlanoID {
			known = true
			break
		}
	}
	if !known {
		writeError(w, http.StatusBadRequest, "plano desconhecido")
		return
	}
	s.mu.Lock()
	// Accounts start inactive; activation follows payment confirmation.
	s.accounts[requestEmail(r)] = account{PlanoID: body.PlanoID, Ativa: false}
	s.mu.Unlock()
	writeJSON(w, http.StatusCreated, map[string]any{"planoId": body.PlanoID, "contaAtiva": false})
}

func (s *Server) handleActivateAccount(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	acc, ok := s.accounts[requestEmail(r)]
	if !ok {
		writeError(w, http.StatusNotFound, "conta não encontrada")
		return
	}
	acc.Ativa = true
	s.accounts[requestEmail(r)] = acc
	writeJSON(w, http.StatusOK, map[string]any{"planoId": acc.PlanoID, "contaAtiva": true})
}

func (s *Server) handlePlans(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.planos)
}

// ─── metas ───────────────────────────────────────────────────────────────────

func (s *Server) handleListMetas(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	metas := append([]meta(nil), s.metas[requestEmail(r)]...)
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, metas)
}

type metaBody struct {
	Descricao     string  `json:"descricao"`
	ValorObjetivo float64 `json:"valorObjetivo"`
	ValorAtual    float64 `json:"valorAtual"`
	DataLimite    string  `json:"dataLimite"`
}

func (b metaBody) invalid() string {
	if b.Descricao == "" {
		return "descricao é obrigatória"
	}
	if b.ValorObjetivo <= 0 {
		return "valorObjetivo deve ser positivo"
	}
	if b.ValorAtual < 0 || b.ValorAtual > b.ValorObjetivo {
		return "valorAtual fora do intervalo"
	}
	if _, err := time.Parse("2006-01-02", b.DataLimite); err != nil {
		return "dataLimite inválida"
	}
	return ""
}

func (s *Server) handleCreateMeta(w http.ResponseWriter, r *http.Request) {
	var body metaBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "payload inválido")
		return
	}
	if msg := body.invalid(); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}
	record := meta{
		ID:         uuid.NewString(),
		Titulo:     body.Descricao,
		Atual:      body.ValorAtual,
		Meta:       body.ValorObjetivo,
		DataLimite: body.DataLimite,
	}
	email := requestEmail(r)
	s.mu.Lock()
	s.metas[email] = append(s.metas[email], record)
	s.mu.Unlock()
	writeJSON(w, http.StatusCreated, record)
}

func (s *Server) handleUpdateMeta(w http.ResponseWriter, r *http.Request) {
	var body metaBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "payload inválido")
		return
	}
	if msg := body.invalid(); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}
	id := mux.Vars(r)["id"]
	email := requestEmail(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	for idx, m := range s.metas[email] {
		if m.ID == id {
			updated := meta{ID: id, Titulo: body.Descricao, Atual: body.ValorAtual, Meta: body.ValorObjetivo, DataLimite: body.DataLimite}
			s.metas[email][idx] = updated
			writeJSON(w, http.StatusOK, updated)
			return
		}
	}
	writeError(w, http.StatusNotFound, "meta não encontrada")
}

func (s *Server) handleUpdateMetaValor(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Valor float64 `json:"valor"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "payload inválido")
		return
	}
	id := mux.Vars(r)["id"]
	email := requestEmail(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	for idx, m := range s.metas[email] {
		if m.ID == id {
			// Server-side clamp: the stored amount never leaves [0, meta].
			valor := body.Valor
			if valor < 0 {
				valor = 0
			}
			if valor > m.Meta {
				valor = m.Meta
			}
			s.metas[email][idx].Atual = valor
			writeJSON(w, http.StatusOK, s.metas[email][idx])
			return
		}
	}
	writeError(w, http.StatusNotFound, "meta não encontrada")
}

func (s *Server) handleDeleteMeta(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	email := requestEmail(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	metas := s.metas[email]
	for idx, m := range metas {
		if m.ID == id {
			s.metas[email] = append(metas[:idx], metas[idx+1:]...)
			w.WriteHeader(http.StatusNoContent)
			return
		}
	}
	writeError(w, http.StatusNotFound, "meta não encontrada")
}

// ─── transacoes ──────────────────────────────────────────────────────────────

func (s *Server) handleListTransacoes(w http.ResponseWriter, r *http.Request) {
	limit := 5
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}
	s.mu.Lock()
	txs := append([]transacao(nil), s.txs[requestEmail(r)]...)
	s.mu.Unlock()
	if len(txs) > limit {
		txs = txs[:limit]
	}
	writeJSON(w, http.StatusOK, txs)
}

type transacaoBody struct {
	Descricao   string  `json:"descricao"`
	Valor       float64 `json:"valor"`
	Tipo        string  `json:"tipo"`
	CategoriaID string  `json:"categoriaId"`
}

func (s *Server) categoryName(id string) string {
	for _, c := range s.categorias {
		if c.ID == id {
			return c.Nome
		}
	}
	return ""
}

func (b transacaoBody) invalid() string {
	if b.Descricao == "" {
		return "descricao é obrigatória"
	}
	if b.Valor <= 0 {
		return "valor deve ser positivo"
	}
	if b.Tipo != "ENTRADA" && b.Tipo != "SAIDA" {
		return "tipo deve ser ENTRADA ou SAIDA"
	}
	return ""
}

func (s *Server) handleCreateTransacao(w http.ResponseWriter, r *http.Request) {
	var body transacaoBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "payload inválido")
		return
	}
	if msg := body.invalid(); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}
	record := transacao{
		ID:            uuid.NewString(),
		Descricao:     body.Descricao,
		Valor:         body.Valor,
		Hora:          time.Now().Format("15:04"),
		Tipo:          body.Tipo,
		CategoriaID:   body.CategoriaID,
		CategoriaNome: s.categoryName(body.CategoriaID),
	}
	email := requestEmail(r)
	s.mu.Lock()
	// Newest first, matching the dashboard's recent-transactions list.
	s.txs[email] = append([]transacao{record}, s.txs[email]...)
	s.mu.Unlock()
	writeJSON(w, http.StatusCreated, record)
}

func (s *Server) handleUpdateTransacao(w http.ResponseWriter, r *http.Request) {
	var body transacaoBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "payload inválido")
		return
	}
	if msg := body.invalid(); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}
	id := mux.Vars(r)["id"]
	email := requestEmail(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	for idx, tx := range s.txs[email] {
		if tx.ID == id {
			tx.Descricao = body.Descricao
			tx.Valor = body.Valor
			tx.Tipo = body.Tipo
			tx.CategoriaID = body.CategoriaID
			tx.CategoriaNome = s.categoryName(body.CategoriaID)
			s.txs[email][idx] = tx
			writeJSON(w, http.StatusOK, tx)
			return
		}
	}
	writeError(w, http.StatusNotFound, "transação não encontrada")
}

func (s *Server) handleDeleteTransacao(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	email := requestEmail(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	txs := s.txs[email]
	for idx, tx := range txs {
		if tx.ID == id {
			s.txs[email] = append(txs[:idx], txs[idx+1:]...)
			w.WriteHeader(http.StatusNoContent)
			return
		}
	}
	writeError(w, http.StatusNotFound, "transação não encontrada")
}

func (s *Server) handleCategorias(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.categorias)
}

// ─── gastos futuros ──────────────────────────────────────────────────────────

func (s *Server) handleListGastos(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	gastos := append([]gastoFuturo(nil), s.gastos[requestEmail(r)]...)
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, gastos)
}

func (s *Server) handleCreateGasto(w http.ResponseWriter, r *http.Request) {
	var body gastoFuturoWriteBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "payload inválido")
		return
	}
	if body.Descricao == "" || body.Valor <= 0 {
		writeError(w, http.StatusBadRequest, "descricao e valor positivo são obrigatórios")
		return
	}
	record := gastoFuturo{ID: uuid.NewString(), Descricao: body.Descricao, Valor: body.Valor}
	email := requestEmail(r)
	s.mu.Lock()
	s.gastos[email] = append(s.gastos[email], record)
	s.mu.Unlock()
	writeJSON(w, http.StatusCreated, record)
}

type gastoFuturoWriteBody struct {
	Descricao string  `json:"descricao"`
	Valor     float64 `json:"valor"`
}

func (s *Server) handleUpdateGasto(w http.ResponseWriter, r *http.Request) {
	var body gastoFuturoWriteBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "payload inválido")
		return
	}
	if body.Descricao == "" || body.Valor <= 0 {
		writeError(w, http.StatusBadRequest, "descricao e valor positivo são obrigatórios")
		return
	}
	id := mux.Vars(r)["id"]
	email := requestEmail(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	for idx, g := range s.gastos[email] {
		if g.ID == id {
			updated := gastoFuturo{ID: id, Descricao: body.Descricao, Valor: body.Valor}
			s.gastos[email][idx] = updated
			writeJSON(w, http.StatusOK, updated)
			return
		}
	}
	writeError(w, http.StatusNotFound, "gasto futuro não encontrado")
}

func (s *Server) handleDeleteGasto(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	email := requestEmail(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	gastos := s.gastos[email]
	for idx, g := range gastos {
		if g.ID == id {
			s.gastos[email] = append(gastos[:idx], gastos[idx+1:]...)
			w.WriteHeader(http.StatusNoContent)
			return
		}
	}
	writeError(w, http.StatusNotFound, "gasto futuro não encontrado")
}

// ─── dashboard widgets ───────────────────────────────────────────────────────

func (s *Server) handleCartao(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	card, ok := s.cartoes[requestEmail(r)]
	s.mu.Unlock()
	if !ok {
		writeError(w, http.StatusNotFound, "cartão não encontrado")
		return
	}
	writeJSON(w, http.StatusOK, card)
}

// handleSaude derives a naive health score from the recent transaction mix
// so the gauge moves during development.
func (s *Server) handleSaude(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	txs := s.txs[requestEmail(r)]
	s.mu.Unlock()
	in, out := 0.0, 0.0
	for _, tx := range txs {
		if tx.Tipo == "ENTRADA" {
			in += tx.Valor
		} else {
			out += tx.Valor
		}
	}
	percent := 50.0
	if in+out > 0 {
		percent = in / (in + out) * 100
	}
	writeJSON(w, http.StatusOK, map[string]float64{"percentual": percent})
}

func (s *Server) handleVisaoMensal(w http.ResponseWriter, r *http.Request) {
	now := time.Now()
	months := make([]visaoMensal, 0, 6)
	s.mu.Lock()
	txs := s.txs[requestEmail(r)]
	s.mu.Unlock()
	total := 0.0
	for _, tx := range txs {
		if tx.Tipo == "SAIDA" {
			total += tx.Valor
		}
	}
	for i := 5; i >= 0; i-- {
		m := now.AddDate(0, -i, 0)
		months = append(months, visaoMensal{Mes: m.Format("Jan"), Valor: total / 6})
	}
	writeJSON(w, http.StatusOK, months)
}
