package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/example/storefront-service/internal/domain"
)

func (s *Server) handleRegisterUser(w http.ResponseWriter, r *http.Request) {
	var u domain.User
	if err := json.NewDecoder(r.Body).Decode(&u); err != nil {
		s.writeError(w, "register user", domain.ErrValidation)
		return
	}
	if err := s.uc.RegisterUser.Execute(r.Context(), u); err != nil {
		s.writeError(w, "register user", err)
		return
	}
	s.writeJSON(w, http.StatusCreated, map[string]string{"message": "user saved"})
}

func (s *Server) handleGetUser(w http.ResponseWriter, r *http.Request) {
	email := mux.Vars(r)["email"]
	u, err := s.uc.GetUser.Execute(r.Context(), email)
	if err != nil {
		s.writeError(w, "get user", err)
		return
	}
	s.writeJSON(w, http.StatusOK, u)
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name  string `json:"name"`
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		s.writeError(w, "login", domain.ErrValidation)
		return
	}
	role, err := s.uc.Login.Execute(r.Context(), body.Name, body.Email)
	if err != nil {
		s.writeError(w, "login", err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]string{"message": "user found", "role": role})
}

func (s *Server) handleContact(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name    string `json:"name"`
		Email   string `json:"email"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		s.writeError(w, "save contact", domain.ErrValidation)
		return
	}
	if err := s.uc.SaveContact.Execute(r.Context(), body.Name, body.Email, body.Message); err != nil {
		s.writeError(w, "save contact", err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]string{"message": "message saved"})
}

// handleCreateOrder — заглушка: заказ никуда не сохраняется, фиксируется только сумма.
func (s *Server) handleCreateOrder(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Items       json.RawMessage `json:"items"`
		TotalAmount decimal.Decimal `json:"totalAmount"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		s.writeError(w, "create order", domain.ErrValidation)
		return
	}
	s.log.Info("order received", zap.String("total", body.TotalAmount.String()))
	w.WriteHeader(http.StatusAccepted)
}
