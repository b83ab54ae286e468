package heidelpay

import (
	"encoding/json"
	"fmt"
)

// PaymentMethod is the wire tag of a payment method, e.g. "sepa-direct-debit".
type PaymentMethod string

const (
	Card                      PaymentMethod = "card"
	Sofort                    PaymentMethod = "sofort"
	SepaDirectDebit           PaymentMethod = "sepa-direct-debit"
	SepaDirectDebitGuaranteed PaymentMethod = "sepa-direct-debit-guaranteed"
	Invoice                   PaymentMethod = "invoice"
	InvoiceGuaranteed         PaymentMethod = "invoice-guaranteed"
	Giropay                   PaymentMethod = "giropay"
	Prepayment                PaymentMethod = "prepayment"
	Przelewy24                PaymentMethod = "przelewy24"
	Paypal                    PaymentMethod = "paypal"
	Ideal                     PaymentMethod = "ideal"
	Alipay                    PaymentMethod = "alipay"
	Wechatpay                 PaymentMethod = "wechatpay"
	PIS                       PaymentMethod = "PIS"
	InvoiceFactoring          PaymentMethod = "invoice-factoring"
	HirePurchase              PaymentMethod = "hire-purchase-direct-debit"
)

// AllPaymentMethods lists every method known to the SDK in a stable order.
var AllPaymentMethods = []PaymentMethod{
	Card,
	Sofort,
	SepaDirectDebit,
	SepaDirectDebitGuaranteed,
	Invoice,
	InvoiceGuaranteed,
	Giropay,
	Prepayment,
	Przelewy24,
	Paypal,
	Ideal,
	Alipay,
	Wechatpay,
	PIS,
	InvoiceFactoring,
	HirePurchase,
}

var paymentMethodNames = map[PaymentMethod]string{
	Card:                      "Credit Card",
	Sofort:                    "SOFORT",
	SepaDirectDebit:           "SEPA Direct Debit",
	SepaDirectDebitGuaranteed: "SEPA Direct Debit (guaranteed)",
	Invoice:                   "Invoice",
	InvoiceGuaranteed:         "Invoice (guaranteed)",
	Giropay:                   "giropay",
	Prepayment:                "Prepayment",
	Przelewy24:                "Przelewy24",
	Paypal:                    "PayPal",
	Ideal:                     "iDEAL",
	Alipay:                    "Alipay",
	Wechatpay:                 "WeChat Pay",
	PIS:                       "PIS",
	InvoiceFactoring:          "Invoice Factoring",
	HirePurchase:              "Hire Purchase",
}

// ParsePaymentMethod resolves a wire tag. Matching is exact.
func ParsePaymentMethod(s string) (PaymentMethod, bool) {
	m := PaymentMethod(s)
	_, ok := paymentMethodNames[m]
	return m, ok
}

// Valid reports whether m is a method known to the SDK.
func (m PaymentMethod) Valid() bool {
	_, ok := paymentMethodNames[m]
	return ok
}

func (m PaymentMethod) String() string { return string(m) }

// BackendPath is the path segment used below "types/" to create a payment
// type of this method.
func (m PaymentMethod) BackendPath() string {
	if m == PIS {
		return "pis"
	}
	return string(m)
}

// DisplayName is an English name suitable for a payment method picker.
func (m PaymentMethod) DisplayName() string {
	if name, ok := paymentMethodNames[m]; ok {
		return name
	}
	return string(m)
}

// MultipleInstancesAllowed reports whether a customer can hold more than one
// payment type of this method, e.g. several cards.
func (m PaymentMethod) MultipleInstancesAllowed() bool {
	switch m {
	case Card, SepaDirectDebit, SepaDirectDebitGuaranteed, Ideal:
		return true
	default:
		return false
	}
}

// UnmarshalJSON rejects unknown wire tags.
func (m *PaymentMethod) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, ok := ParsePaymentMethod(s)
	if !ok {
		return fmt.Errorf("unknown payment method %q", s)
	}
	*m = parsed
	return nil
}

// availablePaymentMethods keeps the known methods of a setup response in
// order and drops everything else.
func availablePaymentMethods(raw []string) []PaymentMethod {
	methods := make([]PaymentMethod, 0, len(raw))
	for _, s := range raw {
		if m, ok := ParsePaymentMethod(s); ok {
			methods = append(methods, m)
		}
	}
	return methods
}
