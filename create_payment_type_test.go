package heidelpay

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"
)

func decodeObject(t *testing.T, data []byte) map[string]any {
	t.Helper()
	var obj map[string]any
	if err := json.Unmarshal(data, &obj); err != nil {
		t.Fatalf("decode %s: %v", data, err)
	}
	return obj
}

func TestCreatePaymentTypeMethods(t *testing.T) {
	t.Parallel()

	tests := map[PaymentMethod]CreatePaymentType{
		Card:                      CardPayment{},
		SepaDirectDebit:           SepaDirectDebitPayment{},
		SepaDirectDebitGuaranteed: SepaDirectDebitPayment{Guaranteed: true},
		Invoice:                   InvoicePayment{},
		InvoiceGuaranteed:         InvoicePayment{Guaranteed: true},
		InvoiceFactoring:          InvoiceFactoringPayment{},
		Sofort:                    SofortPayment{},
		Giropay:                   GiropayPayment{},
		Prepayment:                PrepaymentPayment{},
		Przelewy24:                Przelewy24Payment{},
		Paypal:                    PaypalPayment{},
		Ideal:                     IdealPayment{},
		Alipay:                    AlipayPayment{},
		Wechatpay:                 WechatpayPayment{},
		PIS:                       PISPayment{},
		HirePurchase:              HirePurchasePayment{},
	}
	if len(tests) != len(AllPaymentMethods) {
		t.Fatalf("expected a payment type for every method")
	}
	for want, pt := range tests {
		if got := pt.Method(); got != want {
			t.Fatalf("%T: expected %s got %s", pt, want, got)
		}
	}
}

func TestEncodeJSON(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		payment CreatePaymentType
		want    map[string]any
	}{
		"card": {
			payment: CardPayment{Number: "4539260780952497", CVC: "123", ExpiryDate: "03/30"},
			want:    map[string]any{"number": "4539260780952497", "cvc": "123", "expiryDate": "03/30"},
		},
		"sepa omits empty optionals": {
			payment: SepaDirectDebitPayment{IBAN: "DE89370400440532013000", Guaranteed: true},
			want:    map[string]any{"iban": "DE89370400440532013000"},
		},
		"sepa with optionals": {
			payment: SepaDirectDebitPayment{IBAN: "DE89370400440532013000", BIC: "COBADEFFXXX", Holder: "Max Mustermann"},
			want:    map[string]any{"iban": "DE89370400440532013000", "bic": "COBADEFFXXX", "holder": "Max Mustermann"},
		},
		"invoice has no fields": {
			payment: InvoicePayment{Guaranteed: true},
			want:    map[string]any{},
		},
		"pis has no fields": {
			payment: PISPayment{},
			want:    map[string]any{},
		},
		"ideal": {
			payment: IdealPayment{BIC: "RABONL2U"},
			want:    map[string]any{"bic": "RABONL2U"},
		},
	}

	for name, tc := range tests {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			data, err := EncodeJSON(tc.payment)
			if err != nil {
				t.Fatalf("encode: %v", err)
			}
			if got := decodeObject(t, data); !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("expected %v got %v", tc.want, got)
			}
		})
	}
}

func TestEncodeJSONNil(t *testing.T) {
	t.Parallel()

	if _, err := EncodeJSON(nil); err == nil {
		t.Fatalf("expected error for nil payment type")
	}
}

// Card, SEPA and iDEAL surface the entered values, not the backend's fields.
func TestResponseMappersSurfaceInput(t *testing.T) {
	t.Parallel()

	server := map[string]any{"brand": "VISA", "number": "453926******2497", "iban": "DE89***", "bic": "SERVERBIC"}

	tests := map[string]struct {
		payment CreatePaymentType
		want    map[string]any
	}{
		"card": {
			payment: CardPayment{Number: "4539260780952497", CVC: "123", ExpiryDate: "03/30"},
			want:    map[string]any{"brand": "Card", "number": "4539260780952497", "expiryDate": "03/30"},
		},
		"sepa": {
			payment: SepaDirectDebitPayment{IBAN: "DE89370400440532013000", BIC: "COBADEFFXXX"},
			want:    map[string]any{"iban": "DE89370400440532013000"},
		},
		"ideal": {
			payment: IdealPayment{BIC: "RABONL2U"},
			want:    map[string]any{"bic": "RABONL2U"},
		},
		"others pass through": {
			payment: PaypalPayment{},
			want:    server,
		},
	}

	for name, tc := range tests {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			pt := tc.payment.paymentType("s-1", tc.payment.Method(), server)
			if pt.PaymentID != "s-1" || pt.Method != tc.payment.Method() {
				t.Fatalf("unexpected payment type %+v", pt)
			}
			if pt.Title != string(tc.payment.Method()) {
				t.Fatalf("expected wire tag as title got %q", pt.Title)
			}
			if !reflect.DeepEqual(pt.Data, tc.want) {
				t.Fatalf("expected data %v got %v", tc.want, pt.Data)
			}
		})
	}
}

func TestValidateCreatePaymentType(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		payment CreatePaymentType
		field   string
	}{
		"valid card":          {CardPayment{Number: "4539 2607 8095 2497", CVC: "123", ExpiryDate: "12/99"}, ""},
		"card checksum":       {CardPayment{Number: "4539260780952498", CVC: "123", ExpiryDate: "12/99"}, "number"},
		"card cvc":            {CardPayment{Number: "4539260780952497", CVC: "12a", ExpiryDate: "12/99"}, "cvc"},
		"card expired":        {CardPayment{Number: "4539260780952497", CVC: "123", ExpiryDate: "12/13"}, "expiryDate"},
		"valid sepa":          {SepaDirectDebitPayment{IBAN: "DE91 1000 0000 0123 4567 89"}, ""},
		"sepa checksum":       {SepaDirectDebitPayment{IBAN: "DE91 1000 0000 0123 4567 88"}, "iban"},
		"sepa short bic":      {SepaDirectDebitPayment{IBAN: "DE91100000000123456789", BIC: "ABC"}, "bic"},
		"ideal requires bic":  {IdealPayment{}, "bic"},
		"no parameter method": {SofortPayment{}, ""},
	}

	for name, tc := range tests {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			err := validateStruct(tc.payment)
			if tc.field == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.HasPrefix(err.Error(), tc.field+" ") {
				t.Fatalf("expected error on %s got %v", tc.field, err)
			}
		})
	}
}
