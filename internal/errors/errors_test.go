package errors_test

import (
	"errors"
	"net/http"
	"testing"

	appErrors "Credify/internal/errors"
)

func TestWithErrorKeepsSentinelIdentity(t *testing.T) {
	t.Parallel()

	underlying := errors.New("record not found")
	err := appErrors.ErrCreditNotFound.WithError(underlying)

	if !errors.Is(err, appErrors.ErrCreditNotFound) {
		t.Fatal("derived error must match the sentinel")
	}
	if !errors.Is(err, underlying) {
		t.Fatal("derived error must unwrap to the underlying cause")
	}
	if appErrors.ErrCreditNotFound.Err != nil {
		t.Fatal("sentinel must not be mutated by WithError")
	}
}

func TestWithDetailsDoesNotMutateSentinel(t *testing.T) {
	t.Parallel()

	derived := appErrors.ErrUnsupportedCustomerType.WithDetails(map[string]interface{}{
		"customerType": "GOVERNMENT",
	})

	if len(appErrors.ErrUnsupportedCustomerType.Details) != 0 {
		t.Fatal("sentinel details must stay empty")
	}
	if derived.Details["customerType"] != "GOVERNMENT" {
		t.Fatalf("expected detail on derived error, got %v", derived.Details)
	}
}

func TestFromError(t *testing.T) {
	t.Parallel()

	t.Run("app error passes through", func(t *testing.T) {
		appErr := appErrors.FromError(appErrors.ErrInsufficientCredit)
		if appErr.Code != appErrors.ErrInsufficientCredit.Code {
			t.Fatalf("expected same code, got %s", appErr.Code)
		}
	})

	t.Run("unknown error becomes 500", func(t *testing.T) {
		appErr := appErrors.FromError(errors.New("boom"))
		if appErr.Code != "UNKNOWN_ERROR" {
			t.Fatalf("expected UNKNOWN_ERROR, got %s", appErr.Code)
		}
		if appErr.StatusCode != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", appErr.StatusCode)
		}
	})

	t.Run("wrapped app error is found", func(t *testing.T) {
		wrapped := appErrors.ErrReportGeneration.WithError(appErrors.ErrCreditNotFound)
		appErr := appErrors.FromError(wrapped)
		if appErr.Code != appErrors.ErrReportGeneration.Code {
			t.Fatalf("expected outer code, got %s", appErr.Code)
		}
	})
}

func TestNewValidationError(t *testing.T) {
	t.Parallel()

	err := appErrors.NewValidationError("amount", "O valor deve ser maior que zero")
	if err.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", err.StatusCode)
	}
	if err.Details["field"] != "amount" {
		t.Fatalf("expected field detail, got %v", err.Details)
	}
}
