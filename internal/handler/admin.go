package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/eriju-studio/storefront-service/internal/entities"
	"github.com/eriju-studio/storefront-service/internal/middleware"
	"github.com/eriju-studio/storefront-service/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type AdminOrderService interface {
	RequestTransition(ctx context.Context, orderID string, target entities.Status, actor entities.Actor, reason string) (entities.Order, error)
	ListOrdersByStatus(ctx context.Context, status entities.Status) ([]entities.Order, error)
	CountByStatus(ctx context.Context) (map[entities.Status]int, error)
}

type ProductService interface {
	ListProducts(ctx context.Context, includeUnavailable bool) ([]entities.Product, error)
	GetProductByID(ctx context.Context, productID string) (entities.Product, error)
	CreateProduct(ctx context.Context, input entities.ProductInput) (entities.Product, error)
	UpdateProduct(ctx context.Context, productID string, input entities.ProductInput) (entities.Product, error)
	DeleteProduct(ctx context.Context, productID string) error
}

type AdminHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	key      string
	orders   AdminOrderService
	products ProductService
}

func NewAdminHandler(logger *slog.Logger, key string, orders AdminOrderService, products ProductService) *AdminHandler {
	return &AdminHandler{
		logger:   logger.With(slog.String("handler", "admin")),
		validate: validator.New(),
		key:      key,
		orders:   orders,
		products: products,
	}
}

func (h *AdminHandler) Init(r chi.Router) {
	r.Route("/admin", func(r chi.Router) {
		r.Use(middleware.AdminKey(h.key))

		r.Get("/orders", h.ListOrders)
		r.Post("/orders/{order_id}/status", h.UpdateOrderStatus)

		r.Get("/products", h.ListProducts)
		r.Post("/products", h.CreateProduct)
		r.Put("/products/{product_id}", h.UpdateProduct)
		r.Delete("/products/{product_id}", h.DeleteProduct)
	})
}

// ListOrders returns orders in the requested status plus per-status counts.
// @Summary      List orders by status
// @Tags         admin
// @Param        status  query  string  true  "Order status"
// @Param        X-Admin-Key  header  string  true  "Admin key"
// @Success      200  {object}  AdminOrdersResponse
// @Failure      400  {object}  utils.ErrorResponse
// @Failure      401  {object}  utils.ErrorResponse
// @Router       /admin/orders [get]
func (h *AdminHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	status := entities.Status(r.URL.Query().Get("status"))
	if !status.Valid() {
		utils.WriteError(w, "unknown status", http.StatusBadRequest)
		return
	}

	orders, err := h.orders.ListOrdersByStatus(ctx, status)
	if err != nil {
		h.writeServiceError(ctx, w, err)
		return
	}

	counts, err := h.orders.CountByStatus(ctx)
	if err != nil {
		h.writeServiceError(ctx, w, err)
		return
	}

	resp := AdminOrdersResponse{
		Orders: OrdersEntityToJSON(orders),
		Counts: make(map[string]int, len(counts)),
	}
	for st, n := range counts {
		resp.Counts[string(st)] = n
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}

// UpdateOrderStatus performs an admin transition: start production, mark
// shipped, force-close, arbitrate a cancellation request, or cancel outright.
// @Summary      Update order status
// @Tags         admin
// @Param        order_id  path  string               true  "Order ID"
// @Param        status    body  UpdateStatusRequest  true  "Target status"
// @Param        X-Admin-Key  header  string  true  "Admin key"
// @Success      200  {object}  Order
// @Failure      400  {object}  utils.ValidationErrorResponse
// @Failure      409  {object}  utils.ErrorResponse
// @Router       /admin/orders/{order_id}/status [post]
func (h *AdminHandler) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orderID := chi.URLParam(r, "order_id")

	var req UpdateStatusRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	target := entities.Status(req.Status)
	if !target.Valid() {
		utils.WriteError(w, "unknown status", http.StatusBadRequest)
		return
	}

	order, err := h.orders.RequestTransition(ctx, orderID, target, entities.ActorAdmin, req.Reason)
	if err != nil {
		h.writeServiceError(ctx, w, err)
		return
	}

	orderTransitions.WithLabelValues(string(target)).Inc()
	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

// ListProducts returns the full catalog, unavailable products included.
// @Summary      List all products
// @Tags         admin
// @Param        X-Admin-Key  header  string  true  "Admin key"
// @Success      200  {array}  Product
// @Router       /admin/products [get]
func (h *AdminHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	products, err := h.products.ListProducts(ctx, true)
	if err != nil {
		h.writeServiceError(ctx, w, err)
		return
	}

	utils.WriteJSON(w, ProductsEntityToJSON(products), http.StatusOK)
}

// CreateProduct adds a catalog entry.
// @Summary      Create product
// @Tags         admin
// @Param        product  body  ProductRequest  true  "Product fields"
// @Param        X-Admin-Key  header  string  true  "Admin key"
// @Success      201  {object}  Product
// @Failure      400  {object}  utils.ValidationErrorResponse
// @Router       /admin/products [post]
func (h *AdminHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req ProductRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	product, err := h.products.CreateProduct(ctx, productInput(req))
	if err != nil {
		h.writeServiceError(ctx, w, err)
		return
	}

	utils.WriteJSON(w, ProductEntityToJSON(product), http.StatusCreated)
}

// UpdateProduct edits a catalog entry.
// @Summary      Update product
// @Tags         admin
// @Param        product_id  path  string          true  "Product ID"
// @Param        product     body  ProductRequest  true  "Product fields"
// @Param        X-Admin-Key  header  string  true  "Admin key"
// @Success      200  {object}  Product
// @Failure      404  {object}  utils.ErrorResponse
// @Router       /admin/products/{product_id} [put]
func (h *AdminHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	productID := chi.URLParam(r, "product_id")

	var req ProductRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	product, err := h.products.UpdateProduct(ctx, productID, productInput(req))
	if err != nil {
		h.writeServiceError(ctx, w, err)
		return
	}

	utils.WriteJSON(w, ProductEntityToJSON(product), http.StatusOK)
}

// DeleteProduct removes a catalog entry.
// @Summary      Delete product
// @Tags         admin
// @Param        product_id  path  string  true  "Product ID"
// @Param        X-Admin-Key  header  string  true  "Admin key"
// @Success      204
// @Failure      404  {object}  utils.ErrorResponse
// @Router       /admin/products/{product_id} [delete]
func (h *AdminHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	productID := chi.URLParam(r, "product_id")

	if err := h.products.DeleteProduct(ctx, productID); err != nil {
		h.writeServiceError(ctx, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *AdminHandler) writeServiceError(ctx context.Context, w http.ResponseWriter, err error) {
	writeServiceError(ctx, h.logger, w, err)
}

func productInput(req ProductRequest) entities.ProductInput {
	return entities.ProductInput{
		Name:        req.Name,
		Price:       req.Price,
		Available:   req.Available,
		ImageURL:    req.ImageURL,
		Description: req.Description,
	}
}
