package heidelpay

import (
	"encoding/json"
	"fmt"
)

// CreatePaymentType holds the input needed to create a payment type of one
// method on the backend. The set of implementations is closed: use the
// payment structs of this package.
type CreatePaymentType interface {
	Method() PaymentMethod
	// paymentType maps the backend's answer to the created [PaymentType].
	// data is the response without "id" and "method".
	paymentType(paymentID string, method PaymentMethod, data map[string]any) PaymentType
}

var (
	_ CreatePaymentType = CardPayment{}
	_ CreatePaymentType = SepaDirectDebitPayment{}
	_ CreatePaymentType = InvoicePayment{}
	_ CreatePaymentType = InvoiceFactoringPayment{}
	_ CreatePaymentType = SofortPayment{}
	_ CreatePaymentType = GiropayPayment{}
	_ CreatePaymentType = PrepaymentPayment{}
	_ CreatePaymentType = Przelewy24Payment{}
	_ CreatePaymentType = PaypalPayment{}
	_ CreatePaymentType = IdealPayment{}
	_ CreatePaymentType = AlipayPayment{}
	_ CreatePaymentType = WechatpayPayment{}
	_ CreatePaymentType = PISPayment{}
	_ CreatePaymentType = HirePurchasePayment{}
)

// EncodeJSON returns the request body for t. Optional fields left empty are
// omitted.
func EncodeJSON(t CreatePaymentType) ([]byte, error) {
	if t == nil {
		return nil, fmt.Errorf("payment type is nil")
	}
	return json.Marshal(t)
}

// passThrough surfaces the backend's data unchanged.
type passThrough struct{}

func (passThrough) paymentType(paymentID string, method PaymentMethod, data map[string]any) PaymentType {
	return PaymentType{
		PaymentID: paymentID,
		Method:    method,
		Title:     string(method),
		Data:      data,
	}
}

// CardPayment creates a card payment type.
type CardPayment struct {
	Number string `json:"number" validate:"required,card_number"`
	CVC    string `json:"cvc" validate:"required,numeric,min=3,max=4"`
	// ExpiryDate is formatted MM/YY.
	ExpiryDate string `json:"expiryDate" validate:"required,expiry_date"`
}

func (CardPayment) Method() PaymentMethod { return Card }

// The backend's card fields are ignored; the result always carries the
// brand "Card" and the number and expiry date as entered.
func (p CardPayment) paymentType(paymentID string, method PaymentMethod, _ map[string]any) PaymentType {
	return PaymentType{
		PaymentID: paymentID,
		Method:    method,
		Title:     string(method),
		Data: map[string]any{
			"brand":      "Card",
			"number":     p.Number,
			"expiryDate": p.ExpiryDate,
		},
	}
}

// SepaDirectDebitPayment creates a SEPA direct debit payment type, or the
// guaranteed variant when Guaranteed is set.
type SepaDirectDebitPayment struct {
	IBAN       string `json:"iban" validate:"required,iban_checksum"`
	BIC        string `json:"bic,omitempty" validate:"omitempty,min=8,max=11"`
	Holder     string `json:"holder,omitempty"`
	Guaranteed bool   `json:"-"`
}

func (p SepaDirectDebitPayment) Method() PaymentMethod {
	if p.Guaranteed {
		return SepaDirectDebitGuaranteed
	}
	return SepaDirectDebit
}

func (p SepaDirectDebitPayment) paymentType(paymentID string, method PaymentMethod, _ map[string]any) PaymentType {
	return PaymentType{
		PaymentID: paymentID,
		Method:    method,
		Title:     string(method),
		Data:      map[string]any{"iban": p.IBAN},
	}
}

// InvoicePayment creates an invoice payment type, or the guaranteed variant
// when Guaranteed is set.
type InvoicePayment struct {
	passThrough
	Guaranteed bool `json:"-"`
}

func (p InvoicePayment) Method() PaymentMethod {
	if p.Guaranteed {
		return InvoiceGuaranteed
	}
	return Invoice
}

// InvoiceFactoringPayment creates an invoice factoring payment type.
type InvoiceFactoringPayment struct{ passThrough }

func (InvoiceFactoringPayment) Method() PaymentMethod { return InvoiceFactoring }

// SofortPayment creates a SOFORT payment type.
type SofortPayment struct{ passThrough }

func (SofortPayment) Method() PaymentMethod { return Sofort }

// GiropayPayment creates a giropay payment type.
type GiropayPayment struct{ passThrough }

func (GiropayPayment) Method() PaymentMethod { return Giropay }

// PrepaymentPayment creates a prepayment payment type.
type PrepaymentPayment struct{ passThrough }

func (PrepaymentPayment) Method() PaymentMethod { return Prepayment }

// Przelewy24Payment creates a Przelewy24 payment type.
type Przelewy24Payment struct{ passThrough }

func (Przelewy24Payment) Method() PaymentMethod { return Przelewy24 }

// PaypalPayment creates a PayPal payment type.
type PaypalPayment struct{ passThrough }

func (PaypalPayment) Method() PaymentMethod { return Paypal }

// AlipayPayment creates an Alipay payment type.
type AlipayPayment struct{ passThrough }

func (AlipayPayment) Method() PaymentMethod { return Alipay }

// WechatpayPayment creates a WeChat Pay payment type.
type WechatpayPayment struct{ passThrough }

func (WechatpayPayment) Method() PaymentMethod { return Wechatpay }

// PISPayment creates a payment initiation service payment type.
type PISPayment struct{ passThrough }

func (PISPayment) Method() PaymentMethod { return PIS }

// IdealPayment creates an iDEAL payment type for the customer's bank.
type IdealPayment struct {
	BIC string `json:"bic" validate:"required"`
}

func (IdealPayment) Method() PaymentMethod { return Ideal }

func (p IdealPayment) paymentType(paymentID string, method PaymentMethod, _ map[string]any) PaymentType {
	return PaymentType{
		PaymentID: paymentID,
		Method:    method,
		Title:     string(method),
		Data:      map[string]any{"bic": p.BIC},
	}
}
