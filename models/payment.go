package models

const (
	MethodCash         = "Cash"
	MethodMobileMoney  = "Mobile Money"
	MethodBankTransfer = "Bank Transfer"
)

// Payment statuses are informational only; they are never reconciled
// against amount_paid or the order total.
const (
	PaymentPaid    = "Paid"
	PaymentPartial = "Partial"
	PaymentUnpaid  = "Unpaid"
)

type Payment struct {
	ID            int     `json:"payment_id"`
	OrderID       int     `json:"order_id"`
	AmountPaid    float64 `json:"amount_paid"`
	PaymentDate   string  `json:"payment_date"`
	PaymentMethod string  `json:"payment_method"`
	PaymentStatus string  `json:"payment_status"`
	Notes         string  `json:"notes"`
}

func IsPaymentMethod(method string) bool {
	switch method {
	case MethodCash, MethodMobileMoney, MethodBankTransfer:
		return true
	}
	return false
}

func IsPaymentStatus(status string) bool {
	switch status {
	case PaymentPaid, PaymentPartial, PaymentUnpaid:
		return true
	}
	return false
}
