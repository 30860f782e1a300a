package devserver

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
)

// Router wires the public auth routes and the bearer-guarded /api subtree.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.Use(logRequest)

	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	r.HandleFunc("/login", s.handleLogin).Methods(http.MethodPost)
	r.HandleFunc("/users", s.handleRegister).Methods(http.MethodPost)

	api := r.PathPrefix("/api").Subrouter()
	api.Use(s.requireAuth)

	api.HandleFunc("/conta/me", s.handleAccountStatus).Methods(http.MethodGet)
	api.HandleFunc("/conta", s.handleCreateAccount).Methods(http.MethodPost)
	api.HandleFunc("/conta/ativar", s.handleActivateAccount).Methods(http.MethodPost)
	api.HandleFunc("/plano", s.handlePlans).Methods(http.MethodGet)

	api.HandleFunc("/metas", s.handleListMetas).Methods(http.MethodGet)
	api.HandleFunc("/metas", s.handleCreateMeta).Methods(http.MethodPost)
	api.HandleFunc("/metas/{id}", s.handleUpdateMeta).Methods(http.MethodPut)
	api.HandleFunc("/metas/{id}/valor", s.handleUpdateMetaValor).Methods(http.MethodPatch)
	api.HandleFunc("/metas/{id}", s.handleDeleteMeta).Methods(http.MethodDelete)

	api.HandleFunc("/transacoes", s.handleListTransacoes).Methods(http.MethodGet)
	api.HandleFunc("/transacoes", s.handleCreateTransacao).Methods(http.MethodPost)
	api.HandleFunc("/transacoes/{id}", s.handleUpdateTransacao).Methods(http.MethodPut)
	api.HandleFunc("/transacoes/{id}", s.handleDeleteTransacao).Methods(http.MethodDelete)
	api.HandleFunc("/categorias", s.handleCategorias).Methods(http.MethodGet)

	api.HandleFunc("/gastos-futuros", s.handleListGastos).Methods(http.MethodGet)
	api.HandleFunc("/gastos-futuros", s.handleCreateGasto).Methods(http.MethodPost)
	api.HandleFunc("/gastos-futuros/{id}", s.handleUpdateGasto).Methods(http.MethodPut)
	api.HandleFunc("/gastos-futuros/{id}", s.handleDeleteGasto).Methods(http.MethodDelete)

	api.HandleFunc("/cartao", s.handleCartao).Methods(http.MethodGet)
	api.HandleFunc("/saude-financeira", s.handleSaude).Methods(http.MethodGet)
	api.HandleFunc("/visao-mensal", s.handleVisaoMensal).Methods(http.MethodGet)

	return r
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}
