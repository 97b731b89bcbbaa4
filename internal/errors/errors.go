package errors

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	ErrNotFound       = NewAppError("NOT_FOUND", "Recurso não encontrado", http.StatusNotFound)
	ErrBadRequest     = NewAppError("BAD_REQUEST", "Requisição inválida", http.StatusBadRequest)
	ErrInternalServer = NewAppError("INTERNAL_SERVER_ERROR", "Erro interno do servidor", http.StatusInternalServerError)
	ErrValidation     = NewAppError("VALIDATION_ERROR", "Erro de validação", http.StatusBadRequest)
	ErrDatabase       = NewAppError("DATABASE_ERROR", "Erro no banco de dados", http.StatusInternalServerError)

	ErrCreditNotFound          = NewAppError("CREDIT_NOT_FOUND", "Crédito não encontrado", http.StatusNotFound)
	ErrMissingCustomerType     = NewAppError("MISSING_CUSTOMER_TYPE", "O tipo de cliente não pode ser nulo", http.StatusBadRequest)
	ErrUnsupportedCustomerType = NewAppError("UNSUPPORTED_CUSTOMER_TYPE", "Tipo de cliente não suportado", http.StatusBadRequest)
	ErrUnsupportedCreditType   = NewAppError("UNSUPPORTED_CREDIT_TYPE", "Tipo de crédito não suportado", http.StatusBadRequest)
	ErrUnsupportedAccountType  = NewAppError("UNSUPPORTED_ACCOUNT_TYPE", "Tipo de conta não suportado", http.StatusBadRequest)
	ErrInvalidSegment          = NewAppError("INVALID_SEGMENT", "Estratégia não se aplica a este segmento de cliente", http.StatusBadRequest)
	ErrDuplicateActiveCredit   = NewAppError("DUPLICATE_ACTIVE_CREDIT", "Cliente pessoal já possui um crédito simples ativo", http.StatusConflict)
	ErrInvalidTransactionType  = NewAppError("INVALID_TRANSACTION_TYPE", "Tipo de transação não válido", http.StatusBadRequest)
	ErrInsufficientCredit      = NewAppError("INSUFFICIENT_CREDIT", "Crédito disponível insuficiente", http.StatusBadRequest)
	ErrPaymentExceedsLimit     = NewAppError("PAYMENT_EXCEEDS_LIMIT", "O pagamento excede o limite do crédito", http.StatusBadRequest)
	ErrPaymentExceedsTotal     = NewAppError("PAYMENT_EXCEEDS_TOTAL", "O pagamento excede o valor total do crédito", http.StatusBadRequest)
	ErrReportGeneration        = NewAppError("REPORT_GENERATION_ERROR", "Erro ao gerar o relatório", http.StatusInternalServerError)
)

type AppError struct {
	Code       string
	Message    string
	StatusCode int
	Details    map[string]interface{}
	Err        error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s - %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func (e *AppError) WithDetails(details map[string]interface{}) *AppError {
	clone := e.clone()
	if details == nil {
		clone.Details = make(map[string]interface{})
		return clone
	}
	clone.Details = make(map[string]interface{}, len(details))
	for k, v := range details {
		clone.Details[k] = v
	}
	return clone
}

func (e *AppError) WithError(err error) *AppError {
	clone := e.clone()
	clone.Err = err
	return clone
}

// Is permite comparar erros derivados via WithError/WithDetails com o sentinela original.
func (e *AppError) Is(target error) bool {
	var appErr *AppError
	if !errors.As(target, &appErr) {
		return false
	}
	return e.Code == appErr.Code
}

func NewAppError(code, message string, statusCode int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
		Details:    make(map[string]interface{}),
	}
}

func WrapError(err error, code, message string, statusCode int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
		Err:        err,
		Details:    make(map[string]interface{}),
	}
}

func (e *AppError) clone() *AppError {
	if e == nil {
		return nil
	}
	clone := *e
	if e.Details != nil {
		clone.Details = make(map[string]interface{}, len(e.Details))
		for k, v := range e.Details {
			clone.Details[k] = v
		}
	} else {
		clone.Details = make(map[string]interface{})
	}
	return &clone
}

func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	ok := errors.As(err, &appErr)
	return appErr, ok
}

func FromError(err error) *AppError {
	if appErr, ok := AsAppError(err); ok {
		return appErr
	}

	if errors.Is(err, context.Canceled) {
		return WrapError(err, "REQUEST_CANCELED", "Requisição cancelada pelo cliente", http.StatusRequestTimeout)
	}

	return WrapError(err, "UNKNOWN_ERROR", "Erro desconhecido", http.StatusInternalServerError)
}

func NewValidationError(field, message string) *AppError {
	return &AppError{
		Code:       "VALIDATION_ERROR",
		Message:    message,
		StatusCode: http.StatusBadRequest,
		Details: map[string]interface{}{
			"field": field,
		},
	}
}

func NewDatabaseError(err error) *AppError {
	return WrapError(err, "DATABASE_ERROR", "Erro ao executar operação no banco de dados", http.StatusInternalServerError)
}

func ParseValidationErrors(err error) *AppError {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return ErrBadRequest.WithError(err)
	}

	fieldErrors := make([]map[string]string, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		translatedField := translateFieldName(fieldErr.Field())
		fieldErrors = append(fieldErrors, map[string]string{
			"field":   translatedField,
			"message": translateValidationError(fieldErr),
		})
	}

	return &AppError{
		Code:       "VALIDATION_ERROR",
		Message:    "Erro de validação nos campos",
		StatusCode: http.StatusBadRequest,
		Details: map[string]interface{}{
			"fields": fieldErrors,
		},
	}
}

func translateFieldName(field string) string {
	fieldLower := strings.ToLower(field)
	fieldMap := map[string]string{
		"amount":          "valor",
		"creditid":        "crédito",
		"credit_id":       "crédito",
		"customerid":      "cliente",
		"customer_id":     "cliente",
		"customertype":    "tipo de cliente",
		"type":            "tipo",
		"cardnumber":      "número do cartão",
		"availablecredit": "crédito disponível",
		"amountpaid":      "valor pago",
		"startdate":       "data inicial",
		"enddate":         "data final",
	}
	if translated, ok := fieldMap[fieldLower]; ok {
		return translated
	}
	return field
}

func translateValidationError(fe validator.FieldError) string {
	fieldName := translateFieldName(fe.Field())

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s é obrigatório", fieldName)
	case "gt":
		return fmt.Sprintf("%s deve ser maior que %s", fieldName, fe.Param())
	case "gte":
		return fmt.Sprintf("%s deve ser maior ou igual a %s", fieldName, fe.Param())
	case "lte":
		return fmt.Sprintf("%s deve ser menor ou igual a %s", fieldName, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s deve ser um dos valores: %s", fieldName, fe.Param())
	case "max":
		return fmt.Sprintf("%s deve ter no máximo %s caracteres", fieldName, fe.Param())
	case "datetime":
		return fmt.Sprintf("%s deve ser uma data/hora válida", fieldName)
	default:
		return fmt.Sprintf("Validação '%s' falhou para %s", fe.Tag(), fieldName)
	}
}
