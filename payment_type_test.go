package heidelpay

import (
	"reflect"
	"testing"
)

func TestMapPaymentTypeCard(t *testing.T) {
	t.Parallel()

	types := MapPaymentTypes([]any{
		map[string]any{"method": "card", "id": "B1", "brand": "Mastercard", "number": "****1233"},
	})
	if len(types) != 1 {
		t.Fatalf("expected 1 payment type got %d", len(types))
	}
	pt := types[0]
	if pt.PaymentID != "B1" || pt.Method != Card {
		t.Fatalf("unexpected payment type %+v", pt)
	}
	if pt.Title != "Mastercard" {
		t.Fatalf("expected brand as title got %q", pt.Title)
	}
	want := map[string]any{"brand": "Mastercard", "number": "****1233"}
	if !reflect.DeepEqual(pt.Data, want) {
		t.Fatalf("unexpected data %#v", pt.Data)
	}
}

func TestMapPaymentTypeTitle(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		raw  map[string]any
		want string
	}{
		"card without brand":     {map[string]any{"method": "card", "id": "1"}, "card"},
		"sepa uses iban":         {map[string]any{"method": "sepa-direct-debit", "id": "1", "iban": "DE89370400440532013000"}, "DE89370400440532013000"},
		"guaranteed sepa":        {map[string]any{"method": "sepa-direct-debit-guaranteed", "id": "1", "iban": "DE89"}, "DE89"},
		"sepa without iban":      {map[string]any{"method": "sepa-direct-debit", "id": "1"}, "sepa-direct-debit"},
		"non string brand":       {map[string]any{"method": "card", "id": "1", "brand": 7}, "card"},
		"other methods use wire": {map[string]any{"method": "PIS", "id": "1", "iban": "DE89"}, "PIS"},
	}

	for name, tc := range tests {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			pt, ok := MapPaymentType(tc.raw)
			if !ok {
				t.Fatalf("expected mapping to succeed")
			}
			if pt.Title != tc.want {
				t.Fatalf("expected title %q got %q", tc.want, pt.Title)
			}
		})
	}
}

func TestMapPaymentTypeRejects(t *testing.T) {
	t.Parallel()

	tests := map[string]map[string]any{
		"missing method":  {"id": "1"},
		"unknown method":  {"id": "1", "method": "bitcoin"},
		"method not text": {"id": "1", "method": 5},
		"missing id":      {"method": "card"},
		"id not text":     {"method": "card", "id": 12},
	}
	for name, raw := range tests {
		if _, ok := MapPaymentType(raw); ok {
			t.Fatalf("%s: expected mapping to fail", name)
		}
	}
}

func TestMapPaymentTypesDropsUnmappableEntries(t *testing.T) {
	t.Parallel()

	types := MapPaymentTypes([]any{
		map[string]any{"method": "card", "id": "1"},
		"not an object",
		map[string]any{"method": "unknown", "id": "2"},
		map[string]any{"method": "paypal", "id": "3"},
		nil,
		map[string]any{"method": "ideal", "id": "4"},
	})
	var ids []string
	for _, pt := range types {
		ids = append(ids, pt.PaymentID)
	}
	if !reflect.DeepEqual(ids, []string{"1", "3", "4"}) {
		t.Fatalf("unexpected ids %v", ids)
	}
}

func TestParsePaymentTypesNormalizesNestedValues(t *testing.T) {
	t.Parallel()

	types, err := ParsePaymentTypes([]byte(`[
		{"id":"s-crd-1","method":"card","brand":"VISA","cardDetails":{"countryIsoA2":"DE","tags":["a",{"b":1}]},"amount":12.5,"count":3},
		{"id":"s-x","method":"nope"}
	]`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(types) != 1 {
		t.Fatalf("expected 1 payment type got %d", len(types))
	}
	data := types[0].Data
	if _, ok := data["id"]; ok {
		t.Fatalf("id must not be part of data")
	}
	if _, ok := data["method"]; ok {
		t.Fatalf("method must not be part of data")
	}
	details, ok := data["cardDetails"].(map[string]any)
	if !ok {
		t.Fatalf("expected nested object got %T", data["cardDetails"])
	}
	tags, ok := details["tags"].([]any)
	if !ok || len(tags) != 2 {
		t.Fatalf("expected nested array got %#v", details["tags"])
	}
	if inner, ok := tags[1].(map[string]any); !ok || inner["b"] != int64(1) {
		t.Fatalf("unexpected nested object %#v", tags[1])
	}
	if data["amount"] != 12.5 || data["count"] != int64(3) {
		t.Fatalf("unexpected numbers %#v %#v", data["amount"], data["count"])
	}
}

func TestParsePaymentTypesRejectsInvalidJSON(t *testing.T) {
	t.Parallel()

	if _, err := ParsePaymentTypes([]byte(`{"id":"1"}`)); err == nil {
		t.Fatalf("expected error for an object")
	}
	if _, err := ParsePaymentTypes([]byte(`[`)); err == nil {
		t.Fatalf("expected error for truncated input")
	}
}

func TestPaymentTypeEqualComparesIDOnly(t *testing.T) {
	t.Parallel()

	a := PaymentType{PaymentID: "1", Method: Card, Title: "VISA"}
	b := PaymentType{PaymentID: "1", Method: Paypal, Title: "paypal", Data: map[string]any{"x": 1}}
	c := PaymentType{PaymentID: "2", Method: Card, Title: "VISA"}
	if !a.Equal(b) {
		t.Fatalf("expected payment types with the same id to be equal")
	}
	if a.Equal(c) {
		t.Fatalf("expected payment types with different ids to differ")
	}
}

func TestPaymentMethod(t *testing.T) {
	t.Parallel()

	if PIS.BackendPath() != "pis" || string(PIS) != "PIS" {
		t.Fatalf("unexpected PIS wire values")
	}
	if SepaDirectDebitGuaranteed.BackendPath() != "sepa-direct-debit-guaranteed" {
		t.Fatalf("unexpected backend path %q", SepaDirectDebitGuaranteed.BackendPath())
	}
	if _, ok := ParsePaymentMethod("pis"); ok {
		t.Fatalf("expected wire tags to match exactly")
	}
	if len(AllPaymentMethods) != 16 {
		t.Fatalf("expected 16 payment methods got %d", len(AllPaymentMethods))
	}
	for _, m := range AllPaymentMethods {
		if !m.Valid() || m.DisplayName() == "" {
			t.Fatalf("%s: expected valid method with a name", m)
		}
	}
	if !Card.MultipleInstancesAllowed() || Invoice.MultipleInstancesAllowed() {
		t.Fatalf("unexpected multiple instance flags")
	}

	got := availablePaymentMethods([]string{"card", "bitcoin", "PIS", "sofort"})
	if !reflect.DeepEqual(got, []PaymentMethod{Card, PIS, Sofort}) {
		t.Fatalf("unexpected available methods %v", got)
	}
}
