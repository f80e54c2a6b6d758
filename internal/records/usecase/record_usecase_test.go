package usecase

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	databaseMocks "github.com/prabhanjangururaj/records-vault/internal/database/mocks"
	apperrors "github.com/prabhanjangururaj/records-vault/internal/errors"
	recordsDomain "github.com/prabhanjangururaj/records-vault/internal/records/domain"
	recordsMocks "github.com/prabhanjangururaj/records-vault/internal/records/usecase/mocks"
	tokenizationDomain "github.com/prabhanjangururaj/records-vault/internal/tokenization/domain"
	tokenizationMocks "github.com/prabhanjangururaj/records-vault/internal/tokenization/usecase/mocks"
)

type testMocks struct {
	txManager    *databaseMocks.MockTxManager
	repo         *recordsMocks.MockRecordRepository
	tokenization *tokenizationMocks.MockTokenizationUseCase
}

func newTestRecordUseCase(t *testing.T) (RecordUseCase, *testMocks) {
	t.Helper()
	m := &testMocks{
		txManager:    &databaseMocks.MockTxManager{},
		repo:         &recordsMocks.MockRecordRepository{},
		tokenization: &tokenizationMocks.MockTokenizationUseCase{},
	}
	uc := NewRecordUseCase(m.txManager, m.repo, m.tokenization, slog.Default())
	return uc, m
}

func (m *testMocks) assertExpectations(t *testing.T) {
	m.txManager.AssertExpectations(t)
	m.repo.AssertExpectations(t)
	m.tokenization.AssertExpectations(t)
}

func storedRecord() *recordsDomain.Record {
	return &recordsDomain.Record{
		ID:             uuid.Must(uuid.NewV7()),
		Name:           "TOKEN-NAME",
		Phone:          "TOKEN-PHONE",
		Email:          "TOKEN-EMAIL",
		SSN:            "TOKEN-SSN",
		PassportNumber: "TOKEN-PASSPORT",
		AccountNumber:  "ACC-1001",
		ServiceRequest: "address change",
		CreatedBy:      "editor1",
		CreatedAt:      time.Now().UTC(),
	}
}

func TestRecordUseCase_Create(t *testing.T) {
	ctx := context.Background()

	input := &CreateRecordInput{
		Name:           "Alice Smith",
		Phone:          "555-0100",
		Email:          "alice@example.com",
		SSN:            "123-45-6789",
		PassportNumber: "P1234567",
		AccountNumber:  "ACC-1001",
		ServiceRequest: "address change",
		CreatedBy:      "editor1",
	}

	t.Run("tokenizes then stores", func(t *testing.T) {
		uc, m := newTestRecordUseCase(t)

		plaintextValues := tokenizationDomain.FieldValues{
			tokenizationDomain.FieldName:     "Alice Smith",
			tokenizationDomain.FieldPhone:    "555-0100",
			tokenizationDomain.FieldEmail:    "alice@example.com",
			tokenizationDomain.FieldSSN:      "123-45-6789",
			tokenizationDomain.FieldPassport: "P1234567",
		}
		tokenizedValues := tokenizationDomain.FieldValues{
			tokenizationDomain.FieldName:     "TOKEN-NAME",
			tokenizationDomain.FieldPhone:    "TOKEN-PHONE",
			tokenizationDomain.FieldEmail:    "TOKEN-EMAIL",
			tokenizationDomain.FieldSSN:      "TOKEN-SSN",
			tokenizationDomain.FieldPassport: "P1234567",
		}

		m.tokenization.On("TokenizeRecord", ctx, plaintextValues, tokenizationDomain.RoleEditor).
			Return(tokenizedValues, nil).
			Once()
		m.txManager.On("WithTx", ctx, mock.AnythingOfType("func(context.Context) error")).
			Return(nil).
			Once()
		m.repo.On("Create", ctx, mock.MatchedBy(func(r *recordsDomain.Record) bool {
			return r.Name == "TOKEN-NAME" &&
				r.SSN == "TOKEN-SSN" &&
				r.PassportNumber == "P1234567" &&
				r.AccountNumber == "ACC-1001" &&
				r.CreatedBy == "editor1" &&
				r.ID != uuid.Nil
		})).Return(nil).Once()

		record, err := uc.Create(ctx, input, tokenizationDomain.RoleEditor)

		require.NoError(t, err)
		assert.Equal(t, "TOKEN-NAME", record.Name)
		assert.Equal(t, "ACC-1001", record.AccountNumber)
		m.assertExpectations(t)
	})

	t.Run("tokenization failure aborts before storage", func(t *testing.T) {
		uc, m := newTestRecordUseCase(t)

		m.tokenization.On("TokenizeRecord", ctx, mock.Anything, tokenizationDomain.RoleEditor).
			Return(nil, apperrors.Wrap(apperrors.ErrUnavailable, "dsm unreachable")).
			Once()

		_, err := uc.Create(ctx, input, tokenizationDomain.RoleEditor)

		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrUnavailable)
		m.assertExpectations(t)
	})

	t.Run("storage failure is propagated", func(t *testing.T) {
		uc, m := newTestRecordUseCase(t)

		m.tokenization.On("TokenizeRecord", ctx, mock.Anything, tokenizationDomain.RoleEditor).
			Return(tokenizationDomain.FieldValues{}, nil).
			Once()
		m.txManager.On("WithTx", ctx, mock.AnythingOfType("func(context.Context) error")).
			Return(nil).
			Once()
		m.repo.On("Create", ctx, mock.Anything).
			Return(apperrors.New("insert failed")).
			Once()

		_, err := uc.Create(ctx, input, tokenizationDomain.RoleEditor)

		require.Error(t, err)
		m.assertExpectations(t)
	})
}

func TestRecordUseCase_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("detokenizes per role", func(t *testing.T) {
		uc, m := newTestRecordUseCase(t)

		record := storedRecord()
		restored := record.SensitiveValues()
		restored[tokenizationDomain.FieldName] = "Alice Smith"

		m.repo.On("GetByID", ctx, record.ID).Return(record, nil).Once()
		m.tokenization.On("DetokenizeRecord", ctx, mock.Anything, tokenizationDomain.RoleViewer).
			Return(restored, nil).
			Once()

		got, err := uc.Get(ctx, record.ID, tokenizationDomain.RoleViewer)

		require.NoError(t, err)
		assert.Equal(t, "Alice Smith", got.Name)
		assert.Equal(t, "TOKEN-SSN", got.SSN)
		m.assertExpectations(t)
	})

	t.Run("missing record propagates not found", func(t *testing.T) {
		uc, m := newTestRecordUseCase(t)

		recordID := uuid.Must(uuid.NewV7())
		m.repo.On("GetByID", ctx, recordID).
			Return(nil, recordsDomain.ErrRecordNotFound).
			Once()

		_, err := uc.Get(ctx, recordID, tokenizationDomain.RoleViewer)

		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
		m.assertExpectations(t)
	})
}

func TestRecordUseCase_List(t *testing.T) {
	ctx := context.Background()

	uc, m := newTestRecordUseCase(t)

	first := storedRecord()
	second := storedRecord()
	records := []*recordsDomain.Record{first, second}

	restoredFirst := first.SensitiveValues()
	restoredFirst[tokenizationDomain.FieldName] = "Alice Smith"
	restoredSecond := second.SensitiveValues()
	restoredSecond[tokenizationDomain.FieldName] = "Bob Jones"

	m.repo.On("List", ctx, 0, 50).Return(records, nil).Once()
	m.tokenization.On("DetokenizeRecords", ctx, mock.Anything, tokenizationDomain.RoleViewer).
		Return([]tokenizationDomain.FieldValues{restoredFirst, restoredSecond}, nil).
		Once()

	got, err := uc.List(ctx, tokenizationDomain.RoleViewer, 0, 50)

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Alice Smith", got[0].Name)
	assert.Equal(t, "Bob Jones", got[1].Name)
	m.assertExpectations(t)
}

func TestRecordUseCase_Search(t *testing.T) {
	ctx := context.Background()

	t.Run("name lookup tokenizes the key", func(t *testing.T) {
		uc, m := newTestRecordUseCase(t)

		record := storedRecord()
		m.tokenization.On("TokenizeField",
			ctx, "Alice Smith", tokenizationDomain.FieldName, tokenizationDomain.RoleViewer).
			Return("TOKEN-NAME", nil).
			Once()
		m.repo.On("Search", ctx, recordsDomain.SearchFieldName, "TOKEN-NAME", 0, 50).
			Return([]*recordsDomain.Record{record}, nil).
			Once()
		m.tokenization.On("DetokenizeRecords", ctx, mock.Anything, tokenizationDomain.RoleViewer).
			Return([]tokenizationDomain.FieldValues{record.SensitiveValues()}, nil).
			Once()

		got, err := uc.Search(
			ctx, recordsDomain.SearchFieldName, "Alice Smith",
			tokenizationDomain.RoleViewer, 0, 50)

		require.NoError(t, err)
		require.Len(t, got, 1)
		m.assertExpectations(t)
	})

	t.Run("name lookup degrades to raw key when tokenization fails", func(t *testing.T) {
		uc, m := newTestRecordUseCase(t)

		m.tokenization.On("TokenizeField",
			ctx, "Alice Smith", tokenizationDomain.FieldName, tokenizationDomain.RoleViewer).
			Return("", apperrors.Wrap(apperrors.ErrUnavailable, "dsm unreachable")).
			Once()
		m.repo.On("Search", ctx, recordsDomain.SearchFieldName, "Alice Smith", 0, 50).
			Return([]*recordsDomain.Record{}, nil).
			Once()

		got, err := uc.Search(
			ctx, recordsDomain.SearchFieldName, "Alice Smith",
			tokenizationDomain.RoleViewer, 0, 50)

		require.NoError(t, err)
		assert.Empty(t, got)
		m.assertExpectations(t)
	})

	t.Run("account number lookup is a plaintext substring match", func(t *testing.T) {
		uc, m := newTestRecordUseCase(t)

		record := storedRecord()
		m.repo.On("Search", ctx, recordsDomain.SearchFieldAccountNumber, "%ACC-10%", 0, 50).
			Return([]*recordsDomain.Record{record}, nil).
			Once()
		m.tokenization.On("DetokenizeRecords", ctx, mock.Anything, tokenizationDomain.RoleViewer).
			Return([]tokenizationDomain.FieldValues{record.SensitiveValues()}, nil).
			Once()

		got, err := uc.Search(
			ctx, recordsDomain.SearchFieldAccountNumber, "ACC-10",
			tokenizationDomain.RoleViewer, 0, 50)

		require.NoError(t, err)
		require.Len(t, got, 1)
		m.assertExpectations(t)
	})

	t.Run("unknown field is invalid input", func(t *testing.T) {
		uc, m := newTestRecordUseCase(t)

		_, err := uc.Search(
			ctx, recordsDomain.SearchField("ssn"), "123",
			tokenizationDomain.RoleAdmin, 0, 50)

		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
		m.assertExpectations(t)
	})
}

func TestRecordUseCase_ListRaw(t *testing.T) {
	ctx := context.Background()

	uc, m := newTestRecordUseCase(t)

	record := storedRecord()
	m.repo.On("List", ctx, 0, 50).Return([]*recordsDomain.Record{record}, nil).Once()

	got, err := uc.ListRaw(ctx, 0, 50)

	require.NoError(t, err)
	require.Len(t, got, 1)
	// Raw view returns stored tokens untouched.
	assert.Equal(t, "TOKEN-SSN", got[0].SSN)
	m.assertExpectations(t)
	m.tokenization.AssertNotCalled(t, "DetokenizeRecords", mock.Anything, mock.Anything, mock.Anything)
}

func TestRecordUseCase_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("deleted", func(t *testing.T) {
		uc, m := newTestRecordUseCase(t)

		recordID := uuid.Must(uuid.NewV7())
		m.repo.On("Delete", ctx, recordID).Return(nil).Once()

		err := uc.Delete(ctx, recordID)

		require.NoError(t, err)
		m.assertExpectations(t)
	})

	t.Run("missing record propagates not found", func(t *testing.T) {
		uc, m := newTestRecordUseCase(t)

		recordID := uuid.Must(uuid.NewV7())
		m.repo.On("Delete", ctx, recordID).Return(recordsDomain.ErrRecordNotFound).Once()

		err := uc.Delete(ctx, recordID)

		assert.ErrorIs(t, err, apperrors.ErrNotFound)
		m.assertExpectations(t)
	})
}
