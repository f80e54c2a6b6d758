package app

import (
	"fmt"

	recordsRepository "github.com/prabhanjangururaj/records-vault/internal/records/repository"
	recordsUseCase "github.com/prabhanjangururaj/records-vault/internal/records/usecase"
)

// recordsComponents groups the record module parts.
type recordsComponents struct {
	repository recordsUseCase.RecordRepository
	useCase    recordsUseCase.RecordUseCase
}

// RecordUseCase returns the record use case instance.
// When metrics are enabled the use case is wrapped with instrumentation.
func (c *Container) RecordUseCase() (recordsUseCase.RecordUseCase, error) {
	c.recordsInit.Do(func() {
		if err := c.initRecords(); err != nil {
			c.initErrors["records"] = err
		}
	})
	if storedErr, exists := c.initErrors["records"]; exists {
		return nil, storedErr
	}
	return c.records.useCase, nil
}

// initRecords assembles the repository and use case for record management.
func (c *Container) initRecords() error {
	logger := c.Logger()

	db, err := c.DB()
	if err != nil {
		return fmt.Errorf("failed to get database for record repository: %w", err)
	}

	// Select the appropriate repository based on the database driver
	switch c.config.DBDriver {
	case "mysql":
		c.records.repository = recordsRepository.NewMySQLRecordRepository(db)
	case "postgres":
		c.records.repository = recordsRepository.NewPostgreSQLRecordRepository(db)
	default:
		return fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}

	txManager, err := c.TxManager()
	if err != nil {
		return fmt.Errorf("failed to get tx manager for record use case: %w", err)
	}

	tokenization, err := c.TokenizationUseCase()
	if err != nil {
		return fmt.Errorf("failed to get tokenization use case for record use case: %w", err)
	}

	useCase := recordsUseCase.NewRecordUseCase(txManager, c.records.repository, tokenization, logger)

	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return err
	}
	if businessMetrics != nil {
		useCase = recordsUseCase.NewRecordUseCaseWithMetrics(useCase, businessMetrics)
	}

	c.records.useCase = useCase
	return nil
}
