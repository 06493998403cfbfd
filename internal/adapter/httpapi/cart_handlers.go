package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/example/storefront-service/internal/domain"
)

func (s *Server) handleListCart(w http.ResponseWriter, r *http.Request) {
	email := mux.Vars(r)["email"]
	entries, err := s.uc.ListCart.Execute(r.Context(), email)
	if err != nil {
		s.writeError(w, "list cart", err)
		return
	}
	if entries == nil {
		entries = []domain.CartEntry{}
	}
	s.writeJSON(w, http.StatusOK, entries)
}

func (s *Server) handleAddToCart(w http.ResponseWriter, r *http.Request) {
	email := mux.Vars(r)["email"]
	var body struct {
		ItemID   int64 `json:"itemId"`
		Quantity int   `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		s.writeError(w, "add to cart", domain.ErrValidation)
		return
	}
	created, err := s.uc.AddToCart.Execute(r.Context(), email, body.ItemID, body.Quantity)
	if err != nil {
		s.writeError(w, "add to cart", err)
		return
	}
	if created {
		s.writeJSON(w, http.StatusCreated, map[string]string{"message": "item added to cart"})
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]string{"message": "cart updated"})
}

func (s *Server) handleRemoveFromCart(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	email := vars["email"]
	itemID, err := strconv.ParseInt(vars["itemId"], 10, 64)
	if err != nil {
		s.writeError(w, "remove from cart", domain.ErrValidation)
		return
	}
	if err := s.uc.RemoveFromCart.Execute(r.Context(), email, itemID); err != nil {
		s.writeError(w, "remove from cart", err)
		return
	}
	s.log.Info("cart line removed", zap.String("email", email), zap.Int64("item_id", itemID))
	s.writeJSON(w, http.StatusOK, map[string]string{"message": "item removed from cart"})
}
