package sqldb

import (
	"context"
	"database/sql"
	"time"

	"capilia/internal/database"
	"capilia/internal/model"
	"capilia/internal/repository"
)

// RFQSQL is the database/sql implementation of repository.RFQRepository.
// Timestamps are stored as unix milliseconds so both dialects share one schema.
type RFQSQL struct {
	db      *sql.DB
	dialect database.Dialect
}

// NewRFQSQL creates a new RFQSQL repository.
func NewRFQSQL(db *sql.DB, dialect database.Dialect) *RFQSQL {
	return &RFQSQL{db: db, dialect: dialect}
}

var _ repository.RFQRepository = (*RFQSQL)(nil)

const rfqColumns = `id, product_id, product_name, manufacturer, quantity, unit, delivery_location, notes, archive_key, created_at_ms`

// Create inserts a new RFQ row and returns the stored record.
func (r *RFQSQL) Create(ctx context.Context, rfq *model.RFQ) (*model.RFQ, error) {
	const q = `
		INSERT INTO rfqs (` + rfqColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING ` + rfqColumns
	row := r.db.QueryRowContext(ctx, r.dialect.Rebind(q),
		rfq.ID,
		rfq.ProductID,
		rfq.ProductName,
		rfq.Manufacturer,
		rfq.Quantity,
		rfq.Unit,
		rfq.DeliveryLocation,
		rfq.Notes,
		rfq.ArchiveKey,
		rfq.CreatedAt.UTC().UnixMilli(),
	)
	return scanRFQ(row)
}

// FindByID fetches a single RFQ by its ID.
func (r *RFQSQL) FindByID(ctx context.Context, id string) (*model.RFQ, error) {
	const q = `SELECT ` + rfqColumns + ` FROM rfqs WHERE id = ?`
	return scanRFQ(r.db.QueryRowContext(ctx, r.dialect.Rebind(q), id))
}

// List returns RFQs using LIMIT/OFFSET pagination and a total count.
func (r *RFQSQL) List(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[model.RFQ], error) {
	const qCount = `SELECT COUNT(*) FROM rfqs`
	var total int
	if err := r.db.QueryRowContext(ctx, qCount).Scan(&total); err != nil {
		return nil, err
	}

	const qList = `
		SELECT ` + rfqColumns + `
		FROM rfqs
		ORDER BY created_at_ms DESC, id DESC
		LIMIT ? OFFSET ?`
	rows, err := r.db.QueryContext(ctx, r.dialect.Rebind(qList), pq.Limit, pq.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.RFQ, 0)
	for rows.Next() {
		rfq, err := scanRFQ(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *rfq)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &repository.PageResult[model.RFQ]{
		Items: items,
		Total: total,
	}, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRFQ(row rowScanner) (*model.RFQ, error) {
	var (
		out       model.RFQ
		createdMs int64
	)
	if err := row.Scan(
		&out.ID,
		&out.ProductID,
		&out.ProductName,
		&out.Manufacturer,
		&out.Quantity,
		&out.Unit,
		&out.DeliveryLocation,
		&out.Notes,
		&out.ArchiveKey,
		&createdMs,
	); err != nil {
		return nil, err
	}
	out.CreatedAt = time.UnixMilli(createdMs).UTC()
	return &out, nil
}
