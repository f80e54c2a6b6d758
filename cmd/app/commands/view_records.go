package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/prabhanjangururaj/records-vault/internal/app"
	"github.com/prabhanjangururaj/records-vault/internal/config"
	recordsDomain "github.com/prabhanjangururaj/records-vault/internal/records/domain"
	recordsUseCase "github.com/prabhanjangururaj/records-vault/internal/records/usecase"
)

// RunViewRecords prints stored records exactly as persisted, tokens included.
// This is the operator's view: no detokenization happens, so no DSM
// credentials are needed.
//
// Requirements: Database must be migrated and accessible.
func RunViewRecords(ctx context.Context, offset, limit int, format string) error {
	cfg := config.Load()

	container := app.NewContainer(cfg)
	logger := container.Logger()
	logger.Info("viewing stored records",
		slog.Int("offset", offset),
		slog.Int("limit", limit),
	)

	defer closeContainer(container, logger)

	useCase, err := container.RecordUseCase()
	if err != nil {
		return fmt.Errorf("failed to initialize record use case: %w", err)
	}

	return viewRecords(ctx, useCase, os.Stdout, format, offset, limit)
}

// viewRecords fetches the stored rows and writes them in the requested format.
func viewRecords(
	ctx context.Context,
	useCase recordsUseCase.RecordUseCase,
	out io.Writer,
	format string,
	offset, limit int,
) error {
	if format != "text" && format != "json" {
		return fmt.Errorf("invalid format: %s (valid options: text, json)", format)
	}
	if offset < 0 {
		return fmt.Errorf("offset must not be negative, got: %d", offset)
	}
	if limit < 1 {
		return fmt.Errorf("limit must be positive, got: %d", limit)
	}

	records, err := useCase.ListRaw(ctx, offset, limit)
	if err != nil {
		return fmt.Errorf("failed to list records: %w", err)
	}

	if format == "json" {
		return outputRecordsJSON(out, records)
	}
	outputRecordsText(out, records)
	return nil
}

// outputRecordsText writes the records in human-readable text format.
func outputRecordsText(out io.Writer, records []*recordsDomain.Record) {
	fmt.Fprintf(out, "Found %d record(s)\n", len(records))
	for _, record := range records {
		fmt.Fprintf(out, "---\n")
		fmt.Fprintf(out, "ID:              %s\n", record.ID)
		fmt.Fprintf(out, "Name:            %s\n", record.Name)
		fmt.Fprintf(out, "Phone:           %s\n", record.Phone)
		fmt.Fprintf(out, "Email:           %s\n", record.Email)
		fmt.Fprintf(out, "SSN:             %s\n", record.SSN)
		fmt.Fprintf(out, "Passport Number: %s\n", record.PassportNumber)
		fmt.Fprintf(out, "Account Number:  %s\n", record.AccountNumber)
		fmt.Fprintf(out, "Service Request: %s\n", record.ServiceRequest)
		fmt.Fprintf(out, "Created By:      %s\n", record.CreatedBy)
		fmt.Fprintf(out, "Created At:      %s\n", record.CreatedAt)
	}
}

// outputRecordsJSON writes the records in JSON format for machine consumption.
func outputRecordsJSON(out io.Writer, records []*recordsDomain.Record) error {
	items := make([]map[string]interface{}, 0, len(records))
	for _, record := range records {
		items = append(items, map[string]interface{}{
			"id":              record.ID.String(),
			"name":            record.Name,
			"phone":           record.Phone,
			"email":           record.Email,
			"ssn":             record.SSN,
			"passport_number": record.PassportNumber,
			"account_number":  record.AccountNumber,
			"service_request": record.ServiceRequest,
			"created_by":      record.CreatedBy,
			"created_at":      record.CreatedAt,
		})
	}

	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(map[string]interface{}{
		"count":   len(items),
		"records": items,
	})
}
