package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/bakeryshop/cart-service/internal/core/domain"
	"github.com/bakeryshop/cart-service/internal/core/service"
)

type HTTPHandler struct {
	carts     *service.CartService
	accounts  *service.AccountService
	inventory *service.InventoryService
	logger    *zap.Logger
}

type createAccountRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type addItemRequest struct {
	Item     string `json:"item"`
	Quantity int    `json:"quantity"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func NewHTTPHandler(carts *service.CartService, accounts *service.AccountService, inventory *service.InventoryService, logger *zap.Logger) *HTTPHandler {
	return &HTTPHandler{carts: carts, accounts: accounts, inventory: inventory, logger: logger}
}

// Register binds all routes on the mux. Cart mutations require a valid
// Authorization header; account creation and inventory reads do not.
func (h *HTTPHandler) Register(mux *http.ServeMux) {
	auth := AuthMiddleware(h.accounts)

	mux.HandleFunc("PUT /users/{username}", h.CreateAccount)
	mux.HandleFunc("POST /carts/{username}/items", auth(h.AddItem))
	mux.HandleFunc("DELETE /carts/{username}/items/{itemName}", auth(h.RemoveItem))
	mux.HandleFunc("GET /inventory/{itemName}", h.GetInventory)
	mux.HandleFunc("GET /healthz", h.HealthCheck)
	mux.Handle("GET /metrics", promhttp.Handler())
}

func (h *HTTPHandler) CreateAccount(w http.ResponseWriter, r *http.Request) {
	username := r.PathValue("username")

	var req createAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if username == "" || req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "username, email and password are required")
		return
	}

	if _, err := h.accounts.Create(r.Context(), username, req.Email, req.Password); err != nil {
		if errors.Is(err, domain.ErrDuplicateUser) {
			writeError(w, http.StatusConflict, fmt.Sprintf("%s already exists", username))
			return
		}
		h.internalError(w, "create account", err)
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Message: fmt.Sprintf("%s created successfully", username)})
}

func (h *HTTPHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	username := r.PathValue("username")
	if !h.authorizeCartAccess(w, r, username) {
		return
	}

	var req addItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Item == "" {
		writeError(w, http.StatusBadRequest, "item is required")
		return
	}

	cart, err := h.carts.AddItem(r.Context(), username, req.Item, req.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInsufficientStock):
			writeError(w, http.StatusBadRequest, fmt.Sprintf("%s is unavailable", req.Item))
		case errors.Is(err, domain.ErrInvalidQuantity):
			writeError(w, http.StatusBadRequest, "quantity must be positive")
		case errors.Is(err, domain.ErrUserNotFound):
			writeError(w, http.StatusNotFound, fmt.Sprintf("%s does not exist", username))
		default:
			h.internalError(w, "add item", err)
		}
		return
	}

	writeJSON(w, http.StatusOK, cart)
}

func (h *HTTPHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	username := r.PathValue("username")
	itemName := r.PathValue("itemName")
	if !h.authorizeCartAccess(w, r, username) {
		return
	}

	// Optional quantity query parameter; the service removes one unit when
	// it is absent.
	quantity := 0
	if raw := r.URL.Query().Get("quantity"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			writeError(w, http.StatusBadRequest, "quantity must be a positive integer")
			return
		}
		quantity = parsed
	}

	cart, err := h.carts.RemoveItem(r.Context(), username, itemName, quantity)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotInCart):
			writeError(w, http.StatusBadRequest, fmt.Sprintf("%s is not in the cart", itemName))
		case errors.Is(err, domain.ErrUserNotFound):
			writeError(w, http.StatusNotFound, fmt.Sprintf("%s does not exist", username))
		default:
			h.internalError(w, "remove item", err)
		}
		return
	}

	writeJSON(w, http.StatusOK, cart)
}

func (h *HTTPHandler) GetInventory(w http.ResponseWriter, r *http.Request) {
	itemName := r.PathValue("itemName")

	detail, err := h.inventory.Get(r.Context(), itemName)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrItemNotFound):
			writeError(w, http.StatusNotFound, fmt.Sprintf("%s was not found", itemName))
		case errors.Is(err, domain.ErrEnrichmentUnavailable):
			writeError(w, http.StatusBadGateway, "recipe lookup unavailable")
		default:
			h.internalError(w, "get inventory", err)
		}
		return
	}

	writeJSON(w, http.StatusOK, detail)
}

func (h *HTTPHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// authorizeCartAccess rejects requests whose authenticated user does not own
// the cart named in the path.
func (h *HTTPHandler) authorizeCartAccess(w http.ResponseWriter, r *http.Request, username string) bool {
	user := UserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "invalid credentials")
		return false
	}
	if user.Username != username {
		writeError(w, http.StatusForbidden, "cannot access another user's cart")
		return false
	}
	return true
}

func (h *HTTPHandler) internalError(w http.ResponseWriter, op string, err error) {
	h.logger.Error(op+" failed", zap.Error(err))
	writeError(w, http.StatusInternalServerError, "internal error")
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, messageResponse{Message: message})
}
