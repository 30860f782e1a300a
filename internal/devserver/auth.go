package devserver

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type contextKey string

const emailKey contextKey = "email"

const tokenTTL = 24 * time.Hour

func (s *Server) issueToken(email string) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   email,
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenTTL)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

func (s *Server) verifyToken(raw string) (string, error) {
	token, err := jwt.ParseWithClaims(raw, &jwt.RegisteredClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return "", jwt.ErrTokenUnverifiable
	}
	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return "", jwt.ErrTokenInvalidSubject
	}
	return claims.Subject, nil
}

// requireAuth guards /api routes: a valid bearer token puts the user email
// into the request context, anything else is a 401.
func (s *Server) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			writeError(w, http.StatusUnauthorized, "missing bearer token")
			return
		}
		email, err := s.verifyToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			writeError(w, http.StatusUnauthorized, "invalid or expired token")
			return
		}
		s.mu.Lock()
		_, known := s.users[email]
		s.mu.Unlock()
		if !known {
			writeError(w, http.StatusUnauthorized, "unknown user")
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), emailKey, email)))
	})
}

func requestEmail(r *http.Request) string {
	email, _ := r.Context().Value(emailKey).(string)
	return email
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email string `json:"email"`
		Senha string `json:"senha"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "malformed login payload")
		return
	}
	s.mu.Lock()
	u, ok := s.users[body.Email]
	s.mu.Unlock()
	// Same response for unknown email and wrong password.
	if !ok || bcrypt.CompareHashAndPassword(u.SenhaHash, []byte(body.Senha)) != nil {
		writeError(w, http.StatusUnauthorized, "credenciais inválidas")
		return
	}
	token, err := s.issueToken(u.Email)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "token signing failed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"token": token, "nome": u.Nome, "email": u.Email})
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Nome  string `json:"nome"`
		Email string `json:"email"`
		Senha string `json:"senha"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "malformed register payload")
		return
	}
	if body.Nome == "" || body.Email == "" || body.Senha == "" {
		writeError(w, http.StatusBadRequest, "nome, email e senha são obrigatórios")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.users[body.Email]; exists {
		writeError(w, http.StatusConflict, "email já cadastrado")
		return
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(body.Senha), bcrypt.DefaultCost)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "hashing failed")
		return
	}
	u := user{ID: uuid.NewString(), Nome: body.Nome, Email: body.Email, SenhaHash: hash}
	s.users[body.Email] = u
	writeJSON(w, http.StatusCreated, map[string]string{"id": u.ID, "nome": u.Nome, "email": u.Email})
}

func logRequest(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.Printf("%s %s", r.Method, r.URL.Path)
		next.ServeHTTP(w, r)
	})
}
