package heidelpay

import (
	"bytes"
	"encoding/json"
	"fmt"
)

const (
	fieldID     = "id"
	fieldMethod = "method"
)

// PaymentType is a payment instrument created on the backend. Its PaymentID
// is used for charges on the merchant's server.
type PaymentType struct {
	PaymentID string        `json:"id"`
	Method    PaymentMethod `json:"method"`
	// Title is a printable name, e.g. the card brand or the IBAN.
	Title string `json:"title"`
	// Data holds method specific fields named like the parameters of the
	// request that created the type, e.g. "brand" for cards.
	Data map[string]any `json:"data,omitempty"`
}

// Equal compares payment types by PaymentID only.
func (p PaymentType) Equal(other PaymentType) bool {
	return p.PaymentID == other.PaymentID
}

// MapPaymentType builds a PaymentType from a decoded backend object. It
// reports false when "method" is missing or unknown, or "id" is not a string.
func MapPaymentType(raw map[string]any) (PaymentType, bool) {
	methodValue, ok := raw[fieldMethod].(string)
	if !ok {
		return PaymentType{}, false
	}
	method, ok := ParsePaymentMethod(methodValue)
	if !ok {
		return PaymentType{}, false
	}
	id, ok := raw[fieldID].(string)
	if !ok {
		return PaymentType{}, false
	}

	title := string(method)
	switch method {
	case Card:
		if brand, ok := raw["brand"].(string); ok {
			title = brand
		}
	case SepaDirectDebit, SepaDirectDebitGuaranteed:
		if iban, ok := raw["iban"].(string); ok {
			title = iban
		}
	}

	return PaymentType{
		PaymentID: id,
		Method:    method,
		Title:     title,
		Data:      dataFields(raw),
	}, true
}

// MapPaymentTypes maps every entry that is an object and drops the ones that
// cannot be mapped, keeping the order of the rest.
func MapPaymentTypes(list []any) []PaymentType {
	types := make([]PaymentType, 0, len(list))
	for _, entry := range list {
		raw, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		if pt, ok := MapPaymentType(raw); ok {
			types = append(types, pt)
		}
	}
	return types
}

// ParsePaymentTypes decodes a JSON array of payment type objects, e.g. the
// payment types a merchant server fetched for a customer.
func ParsePaymentTypes(data []byte) ([]PaymentType, error) {
	var list []any
	if err := decodeGeneric(data, &list); err != nil {
		return nil, fmt.Errorf("decode payment types: %w", err)
	}
	return MapPaymentTypes(list), nil
}

// dataFields copies raw without the protocol fields.
func dataFields(raw map[string]any) map[string]any {
	data := make(map[string]any, len(raw))
	for key, value := range raw {
		if key == fieldID || key == fieldMethod {
			continue
		}
		data[key] = normalizeValue(value)
	}
	return data
}

// normalizeValue deep copies a decoded JSON value so that objects are
// map[string]any and arrays are []any at every level.
func normalizeValue(value any) any {
	switch v := value.(type) {
	case map[string]any:
		out := make(map[string]any, len(v))
		for key, inner := range v {
			out[key] = normalizeValue(inner)
		}
		return out
	case []map[string]any:
		out := make([]any, len(v))
		for i, inner := range v {
			out[i] = normalizeValue(inner)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, inner := range v {
			out[i] = normalizeValue(inner)
		}
		return out
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return i
		}
		if f, err := v.Float64(); err == nil {
			return f
		}
		return v.String()
	default:
		return v
	}
}

// decodeGeneric decodes data into v keeping numbers exact until
// normalizeValue converts them.
func decodeGeneric(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(v); err != nil {
		return err
	}
	if dec.More() {
		return fmt.Errorf("unexpected data after JSON body")
	}
	return nil
}
