// Package repository implements record persistence for PostgreSQL and MySQL.
// Both variants store tokens in the sensitive columns; the repository never
// handles plaintext identity data.
package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/prabhanjangururaj/records-vault/internal/database"
	apperrors "github.com/prabhanjangururaj/records-vault/internal/errors"
	recordsDomain "github.com/prabhanjangururaj/records-vault/internal/records/domain"
)

// PostgreSQLRecordRepository implements Record persistence for PostgreSQL databases.
type PostgreSQLRecordRepository struct {
	db *sql.DB
}

// NewPostgreSQLRecordRepository creates a new PostgreSQL Record repository instance.
func NewPostgreSQLRecordRepository(db *sql.DB) *PostgreSQLRecordRepository {
	return &PostgreSQLRecordRepository{db: db}
}

// Create inserts a new record into the PostgreSQL database.
func (p *PostgreSQLRecordRepository) Create(ctx context.Context, record *recordsDomain.Record) error {
	querier := database.GetTx(ctx, p.db)

	query := `INSERT INTO records
			  (id, name, phone, email, ssn, passport_number, account_number, service_request, created_by, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := querier.ExecContext(
		ctx,
		query,
		record.ID,
		record.Name,
		record.Phone,
		record.Email,
		record.SSN,
		record.PassportNumber,
		record.AccountNumber,
		record.ServiceRequest,
		record.CreatedBy,
		record.CreatedAt,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create record")
	}
	return nil
}

// GetByID retrieves a record by its ID.
func (p *PostgreSQLRecordRepository) GetByID(
	ctx context.Context,
	recordID uuid.UUID,
) (*recordsDomain.Record, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, name, phone, email, ssn, passport_number, account_number, service_request, created_by, created_at
			  FROM records
			  WHERE id = $1`

	var record recordsDomain.Record
	err := querier.QueryRowContext(ctx, query, recordID).Scan(
		&record.ID,
		&record.Name,
		&record.Phone,
		&record.Email,
		&record.SSN,
		&record.PassportNumber,
		&record.AccountNumber,
		&record.ServiceRequest,
		&record.CreatedBy,
		&record.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, recordsDomain.ErrRecordNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get record by id")
	}

	return &record, nil
}

// List retrieves records ordered by creation time, newest first.
func (p *PostgreSQLRecordRepository) List(
	ctx context.Context,
	offset, limit int,
) ([]*recordsDomain.Record, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, name, phone, email, ssn, passport_number, account_number, service_request, created_by, created_at
			  FROM records
			  ORDER BY created_at DESC
			  OFFSET $1 LIMIT $2`

	rows, err := querier.QueryContext(ctx, query, offset, limit)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list records")
	}
	defer rows.Close()

	return scanRecords(rows)
}

// Search retrieves records whose column matches the given pattern. The
// pattern is matched with LIKE; the caller decides whether to add wildcards.
func (p *PostgreSQLRecordRepository) Search(
	ctx context.Context,
	field recordsDomain.SearchField,
	pattern string,
	offset, limit int,
) ([]*recordsDomain.Record, error) {
	querier := database.GetTx(ctx, p.db)

	var query string
	switch field {
	case recordsDomain.SearchFieldName:
		query = `SELECT id, name, phone, email, ssn, passport_number, account_number, service_request, created_by, created_at
				 FROM records
				 WHERE name LIKE $1
				 ORDER BY created_at DESC
				 OFFSET $2 LIMIT $3`
	case recordsDomain.SearchFieldAccountNumber:
		query = `SELECT id, name, phone, email, ssn, passport_number, account_number, service_request, created_by, created_at
				 FROM records
				 WHERE account_number LIKE $1
				 ORDER BY created_at DESC
				 OFFSET $2 LIMIT $3`
	default:
		return nil, recordsDomain.ErrInvalidSearchField
	}

	rows, err := querier.QueryContext(ctx, query, pattern, offset, limit)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to search records")
	}
	defer rows.Close()

	return scanRecords(rows)
}

// Delete removes a record by its ID.
func (p *PostgreSQLRecordRepository) Delete(ctx context.Context, recordID uuid.UUID) error {
	querier := database.GetTx(ctx, p.db)

	query := `DELETE FROM records WHERE id = $1`

	result, err := querier.ExecContext(ctx, query, recordID)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete record")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to read delete result")
	}
	if affected == 0 {
		return recordsDomain.ErrRecordNotFound
	}

	return nil
}

// scanRecords collects all rows of a record query.
func scanRecords(rows *sql.Rows) ([]*recordsDomain.Record, error) {
	var records []*recordsDomain.Record
	for rows.Next() {
		var record recordsDomain.Record
		err := rows.Scan(
			&record.ID,
			&record.Name,
			&record.Phone,
			&record.Email,
			&record.SSN,
			&record.PassportNumber,
			&record.AccountNumber,
			&record.ServiceRequest,
			&record.CreatedBy,
			&record.CreatedAt,
		)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan record")
		}
		records = append(records, &record)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate records")
	}
	return records, nil
}
