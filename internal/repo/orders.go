package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"

	"github.com/eriju-studio/storefront-service/internal/entities"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

var orderColumns = []string{
	"id", "customer_email", "recipient_name", "phone",
	"shipping_address", "total_amount", "status", "cancel_reason", "created_at",
}

var itemColumns = []string{
	"order_id", "position", "product_id", "name", "unit_price", "quantity",
}

type ordersRepo struct {
	pgExecutor
	qb sq.StatementBuilderType
}

func NewOrdersRepo(db *sqlx.DB) *ordersRepo {
	return &ordersRepo{
		pgExecutor: pgExecutor{db: db},
		qb:         sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *ordersRepo) SaveOrder(ctx context.Context, o entities.Order) error {
	query, args := r.qb.Insert("orders").
		Columns(orderColumns...).
		Values(
			o.ID, o.CustomerEmail, o.RecipientName, o.Phone,
			o.ShippingAddress, o.TotalAmount, string(o.Status),
			nullString(o.CancelReason), o.CreatedAt,
		).
		MustSql()

	_, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to save order: %w", err)
	}
	return nil
}

func (r *ordersRepo) SaveItems(ctx context.Context, orderID string, items []entities.LineItem) error {
	if len(items) == 0 {
		return nil
	}

	q := r.qb.Insert("order_items").Columns(itemColumns...)
	for i, it := range items {
		q = q.Values(orderID, i, it.ProductID, it.Name, it.UnitPrice, it.Quantity)
	}

	query, args := q.MustSql()
	_, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to save order items: %w", err)
	}
	return nil
}

func (r *ordersRepo) GetOrderByID(ctx context.Context, orderID string) (entities.Order, error) {
	query, args := r.qb.Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"id": orderID}).
		MustSql()

	var order Order
	err := r.getContext(ctx, &order, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order: %w", err)
	}

	query, args = r.qb.Select(itemColumns...).
		From("order_items").
		Where(sq.Eq{"order_id": orderID}).
		OrderBy("position").
		MustSql()

	var items []OrderItem
	if err := r.selectContext(ctx, &items, query, args...); err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order items: %w", err)
	}

	return OrderToEntity(order, items), nil
}

// UpdateStatus overwrites the order status, and the cancel reason when one is
// given. Last write wins; there is no version check.
func (r *ordersRepo) UpdateStatus(ctx context.Context, orderID string, status entities.Status, cancelReason *string) error {
	q := r.qb.Update("orders").
		Set("status", string(status)).
		Where(sq.Eq{"id": orderID})
	if cancelReason != nil {
		q = q.Set("cancel_reason", *cancelReason)
	}

	query, args := q.MustSql()
	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return entities.ErrOrderNotFound
	}
	return nil
}

func (r *ordersRepo) ListByCustomer(ctx context.Context, email string) ([]entities.Order, error) {
	return r.list(ctx, sq.Eq{"customer_email": email})
}

func (r *ordersRepo) ListByStatus(ctx context.Context, status entities.Status) ([]entities.Order, error) {
	return r.list(ctx, sq.Eq{"status": string(status)})
}

func (r *ordersRepo) list(ctx context.Context, where sq.Eq) ([]entities.Order, error) {
	query, args := r.qb.Select(orderColumns...).
		From("orders").
		Where(where).
		OrderBy("created_at DESC").
		MustSql()

	var orders []Order
	if err := r.selectContext(ctx, &orders, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select orders: %w", err)
	}

	if len(orders) == 0 {
		return []entities.Order{}, nil
	}

	ids := make([]string, len(orders))
	for i, o := range orders {
		ids[i] = o.ID
	}

	query, args = r.qb.Select(itemColumns...).
		From("order_items").
		Where(sq.Eq{"order_id": ids}).
		MustSql()

	var items []OrderItem
	if err := r.selectContext(ctx, &items, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select order items: %w", err)
	}

	itemsMap := make(map[string][]OrderItem, len(ids))
	for _, it := range items {
		itemsMap[it.OrderID] = append(itemsMap[it.OrderID], it)
	}
	for _, group := range itemsMap {
		sort.Slice(group, func(i, j int) bool { return group[i].Position < group[j].Position })
	}

	result := make([]entities.Order, 0, len(orders))
	for _, o := range orders {
		result = append(result, OrderToEntity(o, itemsMap[o.ID]))
	}
	return result, nil
}

// CountByStatus backs the admin console badges.
func (r *ordersRepo) CountByStatus(ctx context.Context) (map[entities.Status]int, error) {
	query, args := r.qb.Select("status", "COUNT(*) AS count").
		From("orders").
		GroupBy("status").
		MustSql()

	var rows []struct {
		Status string `db:"status"`
		Count  int    `db:"count"`
	}
	if err := r.selectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to count orders: %w", err)
	}

	counts := make(map[entities.Status]int, len(rows))
	for _, row := range rows {
		counts[entities.Status(row.Status)] = row.Count
	}
	return counts, nil
}
