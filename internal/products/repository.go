package products

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

// ErrNotFound indicates the product does not exist.
var ErrNotFound = errors.New("record not found")

type Repository interface {
	WithTx(ctx context.Context, fn func(context.Context, Repository) error) error
	List(ctx context.Context) ([]Product, error)
	Get(ctx context.Context, id int64) (*Product, error)
	Create(ctx context.Context, product Product) (int64, error)
	Update(ctx context.Context, id int64, updates map[string]any) error
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

const productColumns = `id, name, supplier_id, category_id, quantity_per_unit, unit_price, units_in_stock, units_on_order, reorder_level, discontinued`

func (r *repository) List(ctx context.Context) ([]Product, error) {
	rows, err := r.db.Query(ctx, `SELECT `+productColumns+` FROM products ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	return result, rows.Err()
}

func (r *repository) Get(ctx context.Context, id int64) (*Product, error) {
	row := r.db.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1`, id)
	p, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *repository) Create(ctx context.Context, p Product) (int64, error) {
	query := `
		INSERT INTO products (name, supplier_id, category_id, quantity_per_unit, unit_price,
			units_in_stock, units_on_order, reorder_level, discontinued)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`
	var id int64
	err := r.db.QueryRow(ctx, query,
		p.Name, p.SupplierID, p.CategoryID, p.QuantityPerUnit, decimalArg(p.UnitPrice),
		p.UnitsInStock, p.UnitsOnOrder, p.ReorderLevel, p.Discontinued,
	).Scan(&id)
	return id, err
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

	query := fmt.Sprintf("UPDATE products SET %s WHERE id = $%d", strings.Join(setClauses, ", "), argPos)
	cmdTag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanProduct(row pgx.Row) (Product, error) {
	var p Product
	var supplierID, categoryID pgtype.Int8
	var quantityPerUnit pgtype.Text
	var unitPrice pgtype.Numeric
	var unitsInStock, unitsOnOrder, reorderLevel pgtype.Int2

	err := row.Scan(
		&p.ID, &p.Name, &supplierID, &categoryID, &quantityPerUnit,
		&unitPrice, &unitsInStock, &unitsOnOrder, &reorderLevel, &p.Discontinued,
	)
	if err != nil {
		return Product{}, err
	}

	if supplierID.Valid {
		val := supplierID.Int64
		p.SupplierID = &val
	}
	if categoryID.Valid {
		val := categoryID.Int64
		p.CategoryID = &val
	}
	if quantityPerUnit.Valid {
		val := quantityPerUnit.String
		p.QuantityPerUnit = &val
	}
	if unitPrice.Valid {
		f, _ := unitPrice.Float64Value()
		val := schema.Decimal(f.Float64)
		p.UnitPrice = &val
	}
	if unitsInStock.Valid {
		val := unitsInStock.Int16
		p.UnitsInStock = &val
	}
	if unitsOnOrder.Valid {
		val := unitsOnOrder.Int16
		p.UnitsOnOrder = &val
	}
	if reorderLevel.Valid {
		val := reorderLevel.Int16
		p.ReorderLevel = &val
	}
	return p, nil
}

func decimalArg(d *schema.Decimal) any {
	if d == nil {
		return nil
	}
	return float64(*d)
}
