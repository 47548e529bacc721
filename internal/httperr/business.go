package httperr

import "errors"

// BusinessError carries a stable error code from usecases up to the
// HTTP boundary without binding the usecase layer to gin.
type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// Codes shared between usecases and handlers.
const (
	CodeCustomerNotFound        = "customer_not_found"
	CodeServiceNotFound         = "service_not_found"
	CodeOverlappingSubscription = "overlapping_subscription"
	CodeMissingField            = "missing_field"
)
