package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/example/storefront-service/internal/domain"
	"github.com/example/storefront-service/internal/usecase"
)

// Usecases — операции, которые публикует HTTP-слой.
type Usecases struct {
	ListCatalog     usecase.ListCatalog
	AddItem         usecase.AddCatalogItem
	RegisterUser    usecase.RegisterUser
	GetUser         usecase.GetUser
	Login           usecase.Login
	SaveContact     usecase.SaveContactMessage
	ListCart        usecase.ListCart
	AddToCart       usecase.AddToCart
	RemoveFromCart  usecase.RemoveFromCart
	GenerateVoucher usecase.GenerateVoucher
}

type Server struct {
	Router     *mux.Router
	uc         Usecases
	log        *zap.Logger
	uploadsDir string
}

func NewServer(log *zap.Logger, uc Usecases, uploadsDir string) *Server {
	s := &Server{Router: mux.NewRouter(), uc: uc, log: log, uploadsDir: uploadsDir}
	r := s.Router
	r.HandleFunc("/api/items", s.handleListItems).Methods(http.MethodGet)
	r.HandleFunc("/api/items", s.handleAddItem).Methods(http.MethodPost)
	r.HandleFunc("/api/users", s.handleRegisterUser).Methods(http.MethodPost)
	r.HandleFunc("/api/users/{email}", s.handleGetUser).Methods(http.MethodGet)
	r.HandleFunc("/api/login", s.handleLogin).Methods(http.MethodPost)
	r.HandleFunc("/api/contact", s.handleContact).Methods(http.MethodPost)
	r.HandleFunc("/api/cart/{email}", s.handleListCart).Methods(http.MethodGet)
	r.HandleFunc("/api/cart/{email}", s.handleAddToCart).Methods(http.MethodPost)
	r.HandleFunc("/api/cart/{email}/{itemId}", s.handleRemoveFromCart).Methods(http.MethodDelete)
	r.HandleFunc("/api/voucher", s.handleGenerateVoucher).Methods(http.MethodPost)
	r.HandleFunc("/api/orders", s.handleCreateOrder).Methods(http.MethodPost)
	r.PathPrefix("/uploads/").Handler(http.StripPrefix("/uploads/", http.FileServer(http.Dir(uploadsDir))))
	return s
}

type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError отображает доменную ошибку на HTTP-ответ со стабильным машинным кодом.
func (s *Server) writeError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		s.writeJSON(w, http.StatusBadRequest, errorBody{Error: "validation", Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		s.writeJSON(w, http.StatusNotFound, errorBody{Error: "not_found", Message: err.Error()})
	case errors.Is(err, domain.ErrEncoding):
		s.log.Error(op, zap.Error(err))
		s.writeJSON(w, http.StatusInternalServerError, errorBody{Error: "encoding", Message: "barcode encoding failed"})
	default:
		// ошибки хранилища наружу не раскрываем
		s.log.Error(op, zap.Error(err))
		s.writeJSON(w, http.StatusInternalServerError, errorBody{Error: "internal", Message: "internal error"})
	}
}
