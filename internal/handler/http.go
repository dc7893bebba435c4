package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/eriju-studio/storefront-service/internal/entities"
	"github.com/eriju-studio/storefront-service/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type OrderService interface {
	Checkout(ctx context.Context, sessionID string, draft entities.OrderDraft) (entities.Order, error)
	RequestTransition(ctx context.Context, orderID string, target entities.Status, actor entities.Actor, reason string) (entities.Order, error)
	GetOrderByID(ctx context.Context, orderID string) (entities.Order, error)
	ListCustomerOrders(ctx context.Context, email string) ([]entities.Order, error)
}

type CartService interface {
	GetCart(ctx context.Context, sessionID string) (entities.Cart, error)
	SetCart(ctx context.Context, sessionID string, entries entities.Cart) (entities.Cart, error)
	ClearCart(ctx context.Context, sessionID string) error
}

type ProductReader interface {
	ListProducts(ctx context.Context, includeUnavailable bool) ([]entities.Product, error)
	GetProductByID(ctx context.Context, productID string) (entities.Product, error)
}

type HTTPHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	orders   OrderService
	carts    CartService
	products ProductReader
}

func NewHTTPHandler(logger *slog.Logger, orders OrderService, carts CartService, products ProductReader) *HTTPHandler {
	return &HTTPHandler{
		logger:   logger.With(slog.String("handler", "http")),
		validate: validator.New(),
		orders:   orders,
		carts:    carts,
		products: products,
	}
}

func (h *HTTPHandler) Init(r chi.Router) {
	r.Get("/products", h.ListProducts)
	r.Get("/products/{product_id}", h.GetProduct)

	r.Get("/cart/{session_id}", h.GetCart)
	r.Put("/cart/{session_id}", h.SetCart)
	r.Delete("/cart/{session_id}", h.ClearCart)

	r.Post("/checkout", h.Checkout)

	r.Get("/orders", h.ListOrders)
	r.Get("/orders/{order_id}", h.GetOrder)
	r.Post("/orders/{order_id}/cancel-request", h.RequestCancel)
	r.Post("/orders/{order_id}/confirm-receipt", h.ConfirmReceipt)
}

// ListProducts returns the public catalog.
// @Summary      List available products
// @Tags         products
// @Success      200  {array}   Product
// @Failure      500  {object}  utils.ErrorResponse
// @Router       /products [get]
func (h *HTTPHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	products, err := h.products.ListProducts(ctx, false)
	if err != nil {
		h.writeServiceError(ctx, w, err)
		return
	}

	utils.WriteJSON(w, ProductsEntityToJSON(products), http.StatusOK)
}

// GetProduct returns one product by id.
// @Summary      Get product
// @Tags         products
// @Param        product_id  path  string  true  "Product ID"
// @Success      200  {object}  Product
// @Failure      404  {object}  utils.ErrorResponse
// @Router       /products/{product_id} [get]
func (h *HTTPHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	productID := chi.URLParam(r, "product_id")

	product, err := h.products.GetProductByID(ctx, productID)
	if err != nil {
		h.writeServiceError(ctx, w, err)
		return
	}

	utils.WriteJSON(w, ProductEntityToJSON(product), http.StatusOK)
}

// GetCart returns the session cart reconciled against the catalog.
// @Summary      Get cart
// @Tags         cart
// @Param        session_id  path  string  true  "Cart session ID"
// @Success      200  {object}  CartResponse
// @Router       /cart/{session_id} [get]
func (h *HTTPHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sessionID := chi.URLParam(r, "session_id")

	cart, err := h.carts.GetCart(ctx, sessionID)
	if err != nil {
		h.writeServiceError(ctx, w, err)
		return
	}

	utils.WriteJSON(w, CartEntityToJSON(cart), http.StatusOK)
}

// SetCart replaces the session cart.
// @Summary      Replace cart
// @Tags         cart
// @Param        session_id  path  string       true  "Cart session ID"
// @Param        cart        body  CartRequest  true  "Cart entries"
// @Success      200  {object}  CartResponse
// @Failure      400  {object}  utils.ValidationErrorResponse
// @Router       /cart/{session_id} [put]
func (h *HTTPHandler) SetCart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sessionID := chi.URLParam(r, "session_id")

	var req CartRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	cart, err := h.carts.SetCart(ctx, sessionID, CartRequestToEntity(req))
	if err != nil {
		h.writeServiceError(ctx, w, err)
		return
	}

	utils.WriteJSON(w, CartEntityToJSON(cart), http.StatusOK)
}

// ClearCart drops the session cart.
// @Summary      Clear cart
// @Tags         cart
// @Param        session_id  path  string  true  "Cart session ID"
// @Success      204
// @Router       /cart/{session_id} [delete]
func (h *HTTPHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sessionID := chi.URLParam(r, "session_id")

	if err := h.carts.ClearCart(ctx, sessionID); err != nil {
		h.writeServiceError(ctx, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Checkout turns the session cart into an order.
// @Summary      Checkout
// @Description  Creates an order from the session cart and the shipping form,
// @Description  then clears the cart. The staff notification is best effort.
// @Tags         orders
// @Param        checkout  body  CheckoutRequest  true  "Checkout form"
// @Success      201  {object}  Order
// @Failure      400  {object}  utils.ValidationErrorResponse
// @Failure      500  {object}  utils.ErrorResponse
// @Router       /checkout [post]
func (h *HTTPHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CheckoutRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	order, err := h.orders.Checkout(ctx, req.SessionID, entities.OrderDraft{
		CustomerEmail:   req.CustomerEmail,
		RecipientName:   req.RecipientName,
		Phone:           req.Phone,
		ShippingAddress: req.ShippingAddress,
	})
	if err != nil {
		h.writeServiceError(ctx, w, err)
		return
	}

	ordersCreated.Inc()
	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusCreated)
}

// ListOrders returns the customer's orders, newest first.
// @Summary      List customer orders
// @Tags         orders
// @Param        email  query  string  true  "Customer email"
// @Success      200  {array}   Order
// @Failure      400  {object}  utils.ValidationErrorResponse
// @Router       /orders [get]
func (h *HTTPHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	email := r.URL.Query().Get("email")

	if err := h.validate.Var(email, "required,email"); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	orders, err := h.orders.ListCustomerOrders(ctx, email)
	if err != nil {
		h.writeServiceError(ctx, w, err)
		return
	}

	utils.WriteJSON(w, OrdersEntityToJSON(orders), http.StatusOK)
}

// GetOrder returns one order by id.
// @Summary      Get order
// @Tags         orders
// @Param        order_id  path  string  true  "Order ID"
// @Success      200  {object}  Order
// @Failure      404  {object}  utils.ErrorResponse
// @Router       /orders/{order_id} [get]
func (h *HTTPHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orderID := chi.URLParam(r, "order_id")

	order, err := h.orders.GetOrderByID(ctx, orderID)
	if err != nil {
		h.writeServiceError(ctx, w, err)
		return
	}

	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

// RequestCancel files a customer cancellation request. Only allowed before
// the order ships; the admin approves or rejects it.
// @Summary      Request cancellation
// @Tags         orders
// @Param        order_id  path  string              true  "Order ID"
// @Param        cancel    body  CancelOrderRequest  true  "Cancellation reason"
// @Success      200  {object}  Order
// @Failure      400  {object}  utils.ValidationErrorResponse
// @Failure      409  {object}  utils.ErrorResponse
// @Router       /orders/{order_id}/cancel-request [post]
func (h *HTTPHandler) RequestCancel(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orderID := chi.URLParam(r, "order_id")

	var req CancelOrderRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	order, err := h.orders.RequestTransition(ctx, orderID, entities.StatusCancelling, entities.ActorCustomer, req.Reason)
	if err != nil {
		h.writeServiceError(ctx, w, err)
		return
	}

	orderTransitions.WithLabelValues(string(entities.StatusCancelling)).Inc()
	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

// ConfirmReceipt closes a delivered order.
// @Summary      Confirm receipt
// @Tags         orders
// @Param        order_id  path  string  true  "Order ID"
// @Success      200  {object}  Order
// @Failure      409  {object}  utils.ErrorResponse
// @Router       /orders/{order_id}/confirm-receipt [post]
func (h *HTTPHandler) ConfirmReceipt(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orderID := chi.URLParam(r, "order_id")

	order, err := h.orders.RequestTransition(ctx, orderID, entities.StatusCompleted, entities.ActorCustomer, "")
	if err != nil {
		h.writeServiceError(ctx, w, err)
		return
	}

	orderTransitions.WithLabelValues(string(entities.StatusCompleted)).Inc()
	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

func (h *HTTPHandler) writeServiceError(ctx context.Context, w http.ResponseWriter, err error) {
	writeServiceError(ctx, h.logger, w, err)
}

// writeServiceError maps service errors onto HTTP responses. Validation
// failures never reach the store, so everything unexpected here is a 500.
func writeServiceError(ctx context.Context, logger *slog.Logger, w http.ResponseWriter, err error) {
	var invalid *entities.InvalidTransitionError

	switch {
	case errors.Is(err, entities.ErrOrderNotFound):
		utils.WriteError(w, "order not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrProductNotFound):
		utils.WriteError(w, "product not found", http.StatusNotFound)
	case errors.As(err, &invalid):
		utils.WriteError(w, invalid.Error(), http.StatusConflict)
	case errors.Is(err, entities.ErrActorNotAllowed):
		utils.WriteError(w, "not allowed", http.StatusForbidden)
	case errors.Is(err, entities.ErrCancelReasonRequired):
		utils.WriteError(w, "cancel reason is required", http.StatusBadRequest)
	case errors.Is(err, entities.ErrEmptyCart):
		utils.WriteError(w, "cart is empty", http.StatusBadRequest)
	default:
		logger.ErrorContext(ctx, "request failed", slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
	}
}
