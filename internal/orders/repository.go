package orders

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/northwind-api/northwind-api/internal/platform/db"
	"github.com/northwind-api/northwind-api/internal/schema"
)

var (
	// ErrNotFound indicates the order does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrCustomerNotFound distinguishes a missing customer from a customer
	// with no orders in the history report.
	ErrCustomerNotFound = errors.New("customer not found")
)

type Repository interface {
	WithTx(ctx context.Context, fn func(context.Context, Repository) error) error
	List(ctx context.Context) ([]Order, error)
	Get(ctx context.Context, id int64) (*Order, error)
	ListByCustomer(ctx context.Context, customerID string) ([]Order, error)
	CustomerExists(ctx context.Context, customerID string) (bool, error)
	Create(ctx context.Context, order Order) (int64, error)
	InsertDetail(ctx context.Context, detail OrderDetail) error
	Update(ctx context.Context, id int64, updates map[string]any) error
	DeleteDetails(ctx context.Context, orderID int64) error
	Delete(ctx context.Context, id int64) error
}

type dbtx interface {
	Exec(context.Context, string, ...interface{}) (pgconn.CommandTag, error)
	Query(context.Context, string, ...interface{}) (pgx.Rows, error)
	QueryRow(context.Context, string, ...interface{}) pgx.Row
}

type repository struct {
	db   dbtx
	pool *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{db: pool, pool: pool}
}

func (r *repository) WithTx(ctx context.Context, fn func(context.Context, Repository) error) error {
	return db.WithTx(ctx, r.pool, func(tx pgx.Tx) error {
		return fn(ctx, &repository{db: tx, pool: r.pool})
	})
}

const orderColumns = `id, customer_id, employee_id, order_date, required_date, shipped_date, ship_via, freight, ship_name, ship_address, ship_city, ship_region, ship_postal_code, ship_country`

func (r *repository) List(ctx context.Context) ([]Order, error) {
	return r.queryOrders(ctx, `SELECT `+orderColumns+` FROM orders ORDER BY id`)
}

func (r *repository) ListByCustomer(ctx context.Context, customerID string) ([]Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE customer_id = $1 ORDER BY order_date DESC`
	return r.queryOrders(ctx, query, customerID)
}

func (r *repository) queryOrders(ctx context.Context, query string, args ...interface{}) ([]Order, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []Order{}
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := r.attachDetails(ctx, result); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *repository) Get(ctx context.Context, id int64) (*Order, error) {
	row := r.db.QueryRow(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = $1`, id)
	o, err := scanOrder(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	details, err := r.listDetails(ctx, []int64{id})
	if err != nil {
		return nil, err
	}
	o.Details = append([]OrderDetail{}, details[id]...)
	return &o, nil
}

func (r *repository) CustomerExists(ctx context.Context, customerID string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM customers WHERE id = $1)`, customerID).Scan(&exists)
	return exists, err
}

func (r *repository) Create(ctx context.Context, o Order) (int64, error) {
	query := `
		INSERT INTO orders (customer_id, employee_id, order_date, required_date, shipped_date,
			ship_via, freight, ship_name, ship_address, ship_city, ship_region,
			ship_postal_code, ship_country)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id
	`
	var id int64
	err := r.db.QueryRow(ctx, query,
		o.CustomerID, o.EmployeeID, o.OrderDate.Time, dateArg(o.RequiredDate), dateArg(o.ShippedDate),
		o.ShipVia, decimalArg(o.Freight), o.ShipName, o.ShipAddress, o.ShipCity, o.ShipRegion,
		o.ShipPostalCode, o.ShipCountry,
	).Scan(&id)
	return id, err
}

func (r *repository) InsertDetail(ctx context.Context, d OrderDetail) error {
	query := `
		INSERT INTO order_details (order_id, product_id, unit_price, quantity, discount)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := r.db.Exec(ctx, query, d.OrderID, d.ProductID, float64(d.UnitPrice), d.Quantity, float64(d.Discount))
	return err
}

func (r *repository) Update(ctx context.Context, id int64, updates map[string]any) error {
	if len(updates) == 0 {
		return nil
	}

	var setClauses []string
	var args []interface{}
	argPos := 1

	for column, value := range updates {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", column, argPos))
		args = append(args, value)
		argPos++
	}
	args = append(args, id)

	query := fmt.Sprintf("UPDATE orders SET %s WHERE id = $%d", strings.Join(setClauses, ", "), argPos)
	cmdTag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *repository) DeleteDetails(ctx context.Context, orderID int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM order_details WHERE order_id = $1`, orderID)
	return err
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// attachDetails resolves line items plus their product projection for every
// order in the slice.
func (r *repository) attachDetails(ctx context.Context, result []Order) error {
	if len(result) == 0 {
		return nil
	}
	ids := make([]int64, len(result))
	for i, o := range result {
		ids[i] = o.ID
	}
	byOrder, err := r.listDetails(ctx, ids)
	if err != nil {
		return err
	}
	for i := range result {
		result[i].Details = append([]OrderDetail{}, byOrder[result[i].ID]...)
	}
	return nil
}

func (r *repository) listDetails(ctx context.Context, orderIDs []int64) (map[int64][]OrderDetail, error) {
	query := `
		SELECT d.order_id, d.product_id, d.unit_price, d.quantity, d.discount, p.name
		FROM order_details d
		LEFT JOIN products p ON p.id = d.product_id
		WHERE d.order_id = ANY($1)
		ORDER BY d.order_id, d.product_id
	`
	rows, err := r.db.Query(ctx, query, orderIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	byOrder := make(map[int64][]OrderDetail)
	for rows.Next() {
		var d OrderDetail
		var unitPrice, discount pgtype.Numeric
		var productName pgtype.Text

		if err := rows.Scan(&d.OrderID, &d.ProductID, &unitPrice, &d.Quantity, &discount, &productName); err != nil {
			return nil, err
		}
		if unitPrice.Valid {
			f, _ := unitPrice.Float64Value()
			d.UnitPrice = schema.Decimal(f.Float64)
		}
		if discount.Valid {
			f, _ := discount.Float64Value()
			d.Discount = schema.Decimal(f.Float64)
		}
		if productName.Valid {
			d.Product = &ProductRef{ID: d.ProductID, Name: productName.String}
		}
		byOrder[d.OrderID] = append(byOrder[d.OrderID], d)
	}
	return byOrder, rows.Err()
}

func scanOrder(row pgx.Row) (Order, error) {
	var o Order
	var employeeID, shipVia pgtype.Int8
	var orderDate, requiredDate, shippedDate pgtype.Date
	var freight pgtype.Numeric
	var shipName, shipAddress, shipCity, shipRegion, shipPostalCode, shipCountry pgtype.Text

	err := row.Scan(
		&o.ID, &o.CustomerID, &employeeID, &orderDate, &requiredDate, &shippedDate,
		&shipVia, &freight, &shipName, &shipAddress, &shipCity, &shipRegion,
		&shipPostalCode, &shipCountry,
	)
	if err != nil {
		return Order{}, err
	}

	if employeeID.Valid {
		val := employeeID.Int64
		o.EmployeeID = &val
	}
	if orderDate.Valid {
		o.OrderDate = schema.Date{Time: orderDate.Time}
	}
	if requiredDate.Valid {
		val := schema.Date{Time: requiredDate.Time}
		o.RequiredDate = &val
	}
	if shippedDate.Valid {
		val := schema.Date{Time: shippedDate.Time}
		o.ShippedDate = &val
	}
	if shipVia.Valid {
		val := shipVia.Int64
		o.ShipVia = &val
	}
	if freight.Valid {
		f, _ := freight.Float64Value()
		val := schema.Decimal(f.Float64)
		o.Freight = &val
	}
	o.ShipName = textPtr(shipName)
	o.ShipAddress = textPtr(shipAddress)
	o.ShipCity = textPtr(shipCity)
	o.ShipRegion = textPtr(shipRegion)
	o.ShipPostalCode = textPtr(shipPostalCode)
	o.ShipCountry = textPtr(shipCountry)
	return o, nil
}

func textPtr(t pgtype.Text) *string {
	if !t.Valid {
		return nil
	}
	val := t.String
	return &val
}

func dateArg(d *schema.Date) any {
	if d == nil {
		return nil
	}
	return d.Time
}

func decimalArg(d *schema.Decimal) any {
	if d == nil {
		return nil
	}
	return float64(*d)
}
