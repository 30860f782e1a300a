package devserver_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"cfdash/internal/devserver"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := devserver.NewServer("test-secret")
	if err := srv.SeedUser("Maria", "maria@example.com", "senha12345", "plus", true); err != nil {
		t.Fatalf("seed: %v", err)
	}
	ts := httptest.NewServer(srv.Router())
	t.Cleanup(ts.Close)
	return ts
}

func request(t *testing.T, method, url, token string, in, out any) int {
	t.Helper()
	var body *bytes.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		body = bytes.NewReader(payload)
	} else {
		body = bytes.NewReader(nil)
	}
	req, err := http.NewRequest(method, url, body)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, url, err)
	}
	defer func() { _ = resp.Body.Close() }()
	if out != nil {
		_ = json.NewDecoder(resp.Body).Decode(out)
	}
	return resp.StatusCode
}

func login(t *testing.T, base, email, senha string) string {
	t.Helper()
	var out struct {
		Token string `json:"token"`
	}
	status := request(t, http.MethodPost, base+"/login", "", map[string]string{"email": email, "senha": senha}, &out)
	if status != http.StatusOK {
		t.Fatalf("login returned %d", status)
	}
	if out.Token == "" {
		t.Fatalf("login returned no token")
	}
	return out.Token
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	t.Parallel()
	ts := newTestServer(t)

	var unknown, wrongPw struct {
		Message string `json:"message"`
	}
	s1 := request(t, http.MethodPost, ts.URL+"/login", "", map[string]string{"email": "nobody@example.com", "senha": "x"}, &unknown)
	s2 := request(t, http.MethodPost, ts.URL+"/login", "", map[string]string{"email": "maria@example.com", "senha": "wrong"}, &wrongPw)
	if s1 != http.StatusUnauthorized || s2 != http.StatusUnauthorized {
		t.Fatalf("expected 401s, got %d and %d", s1, s2)
	}
	// Unknown email and wrong password are indistinguishable.
	if unknown.Message != wrongPw.Message {
		t.Fatalf("error messages differ: %q vs %q", unknown.Message, wrongPw.Message)
	}
}

func TestAPIRequiresBearerToken(t *testing.T) {
	t.Parallel()
	ts := newTestServer(t)

	if status := request(t, http.MethodGet, ts.URL+"/api/metas", "", nil, nil); status != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", status)
	}
	if status := request(t, http.MethodGet, ts.URL+"/api/metas", "garbage", nil, nil); status != http.StatusUnauthorized {
		t.Fatalf("expected 401 with garbage token, got %d", status)
	}
}

func TestAccountLifecycle(t *testing.T) {
	t.Parallel()
	ts := newTestServer(t)

	// A fresh user has no account yet.
	status := request(t, http.MethodPost, ts.URL+"/users", "", map[string]string{
		"nome": "João", "email": "joao@example.com", "senha": "senha12345",
	}, nil)
	if status != http.StatusCreated {
		t.Fatalf("register returned %d", status)
	}
	token := login(t, ts.URL, "joao@example.com", "senha12345")

	if status := request(t, http.MethodGet, ts.URL+"/api/conta/me", token, nil, nil); status != http.StatusNotFound {
		t.Fatalf("expected 404 before account creation, got %d", status)
	}

	var created struct {
		ContaAtiva bool `json:"contaAtiva"`
	}
	if status := request(t, http.MethodPost, ts.URL+"/api/conta", token, map[string]string{"planoId": "basico"}, &created); status != http.StatusCreated {
		t.Fatalf("create account returned %d", status)
	}
	if created.ContaAtiva {
		t.Fatalf("new accounts must start inactive")
	}

	if status := request(t, http.MethodPost, ts.URL+"/api/conta/ativar", token, nil, nil); status != http.StatusOK {
		t.Fatalf("activate returned %d", status)
	}
	var me struct {
		HasAccount bool `json:"hasAccount"`
		ContaAtiva bool `json:"contaAtiva"`
	}
	if status := request(t, http.MethodGet, ts.URL+"/api/conta/me", token, nil, &me); status != http.StatusOK {
		t.Fatalf("status probe returned %d", status)
	}
	if !me.HasAccount || !me.ContaAtiva {
		t.Fatalf("expected active account, got %+v", me)
	}
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	t.Parallel()
	ts := newTestServer(t)

	status := request(t, http.MethodPost, ts.URL+"/users", "", map[string]string{
		"nome": "Maria 2", "email": "maria@example.com", "senha": "outra12345",
	}, nil)
	if status != http.StatusConflict {
		t.Fatalf("expected 409 for duplicate email, got %d", status)
	}
}

func TestMetaValorClampedServerSide(t *testing.T) {
	t.Parallel()
	ts := newTestServer(t)
	token := login(t, ts.URL, "maria@example.com", "senha12345")

	var created struct {
		ID   string  `json:"id"`
		Meta float64 `json:"meta"`
	}
	status := request(t, http.MethodPost, ts.URL+"/api/metas", token, map[string]any{
		"descricao": "Reserva", "valorObjetivo": 1000.0, "valorAtual": 900.0, "dataLimite": "2027-01-01",
	}, &created)
	if status != http.StatusCreated {
		t.Fatalf("create meta returned %d", status)
	}

	var updated struct {
		Atual float64 `json:"atual"`
	}
	url := fmt.Sprintf("%s/api/metas/%s/valor", ts.URL, created.ID)
	if status := request(t, http.MethodPatch, url, token, map[string]float64{"valor": 2500}, &updated); status != http.StatusOK {
		t.Fatalf("patch valor returned %d", status)
	}
	if updated.Atual != 1000 {
		t.Fatalf("expected server clamp to 1000, got %v", updated.Atual)
	}
	if status := request(t, http.MethodPatch, url, token, map[string]float64{"valor": -50}, &updated); status != http.StatusOK {
		t.Fatalf("patch valor returned %d", status)
	}
	if updated.Atual != 0 {
		t.Fatalf("expected server clamp to 0, got %v", updated.Atual)
	}
}

func TestMetaCreateValidation(t *testing.T) {
	t.Parallel()
	ts := newTestServer(t)
	token := login(t, ts.URL, "maria@example.com", "senha12345")

	status := request(t, http.MethodPost, ts.URL+"/api/metas", token, map[string]any{
		"descricao": "", "valorObjetivo": 0.0, "valorAtual": 0.0, "dataLimite": "soon",
	}, nil)
	if status != http.StatusBadRequest {
		t.Fatalf("expected 400 for invalid meta, got %d", status)
	}
}

func TestTransacoesNewestFirstAndLimited(t *testing.T) {
	t.Parallel()
	ts := newTestServer(t)
	token := login(t, ts.URL, "maria@example.com", "senha12345")

	for i := 1; i <= 7; i++ {
		status := request(t, http.MethodPost, ts.URL+"/api/transacoes", token, map[string]any{
			"descricao": fmt.Sprintf("tx-%d", i), "valor": float64(i), "tipo": "SAIDA",
		}, nil)
		if status != http.StatusCreated {
			t.Fatalf("create tx %d returned %d", i, status)
		}
	}

	var txs []struct {
		Descricao string `json:"descricao"`
	}
	if status := request(t, http.MethodGet, ts.URL+"/api/transacoes", token, nil, &txs); status != http.StatusOK {
		t.Fatalf("list returned %d", status)
	}
	if len(txs) != 5 {
		t.Fatalf("default limit should be 5, got %d", len(txs))
	}
	if txs[0].Descricao != "tx-7" {
		t.Fatalf("expected newest first, got %q", txs[0].Descricao)
	}

	if status := request(t, http.MethodGet, ts.URL+"/api/transacoes?limit=100", token, nil, &txs); status != http.StatusOK {
		t.Fatalf("list returned %d", status)
	}
	if len(txs) != 7 {
		t.Fatalf("expected all 7 with a raised limit, got %d", len(txs))
	}
}
