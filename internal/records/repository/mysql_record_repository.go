package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/prabhanjangururaj/records-vault/internal/database"
	apperrors "github.com/prabhanjangururaj/records-vault/internal/errors"
	recordsDomain "github.com/prabhanjangururaj/records-vault/internal/records/domain"
)

// MySQLRecordRepository implements Record persistence for MySQL databases.
// UUIDs are stored as BINARY(16).
type MySQLRecordRepository struct {
	db *sql.DB
}

// NewMySQLRecordRepository creates a new MySQL Record repository instance.
func NewMySQLRecordRepository(db *sql.DB) *MySQLRecordRepository {
	return &MySQLRecordRepository{db: db}
}

// Create inserts a new record into the MySQL database.
func (m *MySQLRecordRepository) Create(ctx context.Context, record *recordsDomain.Record) error {
	querier := database.GetTx(ctx, m.db)

	query := `INSERT INTO records
			  (id, name, phone, email, ssn, passport_number, account_number, service_request, created_by, created_at)
			  VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	id, err := record.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal record id")
	}

	_, err = querier.ExecContext(
		ctx,
		query,
		id,
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
func (m *MySQLRecordRepository) GetByID(
	ctx context.Context,
	recordID uuid.UUID,
) (*recordsDomain.Record, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT id, name, phone, email, ssn, passport_number, account_number, service_request, created_by, created_at
			  FROM records
			  WHERE id = ?`

	id, err := recordID.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal record id")
	}

	row := querier.QueryRowContext(ctx, query, id)
	record, err := scanMySQLRecord(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, recordsDomain.ErrRecordNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get record by id")
	}

	return record, nil
}

// List retrieves records ordered by creation time, newest first.
func (m *MySQLRecordRepository) List(
	ctx context.Context,
	offset, limit int,
) ([]*recordsDomain.Record, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT id, name, phone, email, ssn, passport_number, account_number, service_request, created_by, created_at
			  FROM records
			  ORDER BY created_at DESC
			  LIMIT ? OFFSET ?`

	rows, err := querier.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list records")
	}
	defer rows.Close()

	return collectMySQLRecords(rows)
}

// Search retrieves records whose column matches the given pattern.
func (m *MySQLRecordRepository) Search(
	ctx context.Context,
	field recordsDomain.SearchField,
	pattern string,
	offset, limit int,
) ([]*recordsDomain.Record, error) {
	querier := database.GetTx(ctx, m.db)

	var query string
	switch field {
	case recordsDomain.SearchFieldName:
		query = `SELECT id, name, phone, email, ssn, passport_number, account_number, service_request, created_by, created_at
				 FROM records
				 WHERE name LIKE ?
				 ORDER BY created_at DESC
				 LIMIT ? OFFSET ?`
	case recordsDomain.SearchFieldAccountNumber:
		query = `SELECT id, name, phone, email, ssn, passport_number, account_number, service_request, created_by, created_at
				 FROM records
				 WHERE account_number LIKE ?
				 ORDER BY created_at DESC
				 LIMIT ? OFFSET ?`
	default:
		return nil, recordsDomain.ErrInvalidSearchField
	}

	rows, err := querier.QueryContext(ctx, query, pattern, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to search records")
	}
	defer rows.Close()

	return collectMySQLRecords(rows)
}

// Delete removes a record by its ID.
func (m *MySQLRecordRepository) Delete(ctx context.Context, recordID uuid.UUID) error {
	querier := database.GetTx(ctx, m.db)

	query := `DELETE FROM records WHERE id = ?`

	id, err := recordID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal record id")
	}

	result, err := querier.ExecContext(ctx, query, id)
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

// scanMySQLRecord scans one row, unmarshaling the BINARY(16) id column.
func scanMySQLRecord(scan func(dest ...any) error) (*recordsDomain.Record, error) {
	var record recordsDomain.Record
	var id []byte
	err := scan(
		&id,
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
		return nil, err
	}
	if err := record.ID.UnmarshalBinary(id); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal record id")
	}
	return &record, nil
}

// collectMySQLRecords collects all rows of a record query.
func collectMySQLRecords(rows *sql.Rows) ([]*recordsDomain.Record, error) {
	var records []*recordsDomain.Record
	for rows.Next() {
		record, err := scanMySQLRecord(rows.Scan)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan record")
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate records")
	}
	return records, nil
}
