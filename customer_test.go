package heidelpay

import (
	"encoding/json"
	"strings"
	"testing"
)

func testAddress() CustomerAddress {
	return CustomerAddress{
		Name:    "Max Mustermann",
		Street:  "Vangerowstr. 18",
		State:   "DE-BW",
		Zip:     "69115",
		City:    "Heidelberg",
		Country: "DE",
	}
}

func TestCustomerEncodesEmptyValuesAsNull(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(NewCustomer("Max", "Mustermann"))
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	obj := decodeObject(t, data)
	for _, key := range []string{"customerId", "salutation", "company", "birthDate", "email", "phone", "mobile"} {
		value, ok := obj[key]
		if !ok {
			t.Fatalf("expected key %s in %s", key, data)
		}
		if value != nil {
			t.Fatalf("expected %s to be null got %v", key, value)
		}
	}
	if obj["firstname"] != "Max" || obj["lastname"] != "Mustermann" {
		t.Fatalf("unexpected names in %s", data)
	}
	for _, key := range []string{"billingAddress", "shippingAddress", "companyInfo"} {
		if _, ok := obj[key]; ok {
			t.Fatalf("expected %s to be omitted from %s", key, data)
		}
	}
}

func TestRegisteredCompanyCustomer(t *testing.T) {
	t.Parallel()

	customer := NewRegisteredCompanyCustomer("heidelpay GmbH", "HRB 337681", testAddress())
	if err := validateStruct(customer); err != nil {
		t.Fatalf("unexpected validation error: %v", err)
	}
	data, err := json.Marshal(customer)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	obj := decodeObject(t, data)
	info, ok := obj["companyInfo"].(map[string]any)
	if !ok {
		t.Fatalf("expected company info in %s", data)
	}
	if info["registrationType"] != "registered" || info["commercialRegisterNumber"] != "HRB 337681" {
		t.Fatalf("unexpected company info %v", info)
	}
	if v, ok := info["function"]; !ok || v != nil {
		t.Fatalf("expected function to be null got %v", v)
	}
	if address, ok := obj["billingAddress"].(map[string]any); !ok || address["city"] != "Heidelberg" {
		t.Fatalf("unexpected billing address %v", obj["billingAddress"])
	}
}

func TestNonRegisteredCompanyCustomer(t *testing.T) {
	t.Parallel()

	customer := NewNonRegisteredCompanyCustomer("Max", "Mustermann", "Mustermann IT", "1980-12-24", "max@example.com", testAddress(), "OWNER", "AIR_TRANSPORT")
	if err := validateStruct(customer); err != nil {
		t.Fatalf("unexpected validation error: %v", err)
	}
	if customer.CompanyInfo.RegistrationType != RegistrationTypeNotRegistered {
		t.Fatalf("unexpected registration type %q", customer.CompanyInfo.RegistrationType)
	}

	customer.CompanyInfo.CommercialSector = ""
	if err := validateStruct(customer); err == nil || !strings.Contains(err.Error(), "commercialSector") {
		t.Fatalf("expected commercialSector to be required got %v", err)
	}
}

func TestValidateCustomer(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		mutate func(*Customer)
		field  string
	}{
		"valid":               {func(c *Customer) {}, ""},
		"german birth date":   {func(c *Customer) { c.BirthDate = "24.12.1980" }, ""},
		"bad birth date":      {func(c *Customer) { c.BirthDate = "12/24/1980" }, "birthDate"},
		"bad email":           {func(c *Customer) { c.Email = "max@" }, "email"},
		"bad salutation":      {func(c *Customer) { c.Salutation = "dr" }, "salutation"},
		"long firstname":      {func(c *Customer) { c.Firstname = strings.Repeat("a", 41) }, "firstname"},
		"long phone":          {func(c *Customer) { c.Phone = strings.Repeat("1", 21) }, "phone"},
		"bad address country": {func(c *Customer) { c.BillingAddress = &CustomerAddress{Country: "Germany"} }, "billingAddress.country"},
		"long address street": {func(c *Customer) { c.ShippingAddress = &CustomerAddress{Street: strings.Repeat("s", 51)} }, "shippingAddress.street"},
	}

	for name, tc := range tests {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			customer := NewCustomer("Max", "Mustermann")
			customer.Salutation = SalutationMr
			customer.BirthDate = "1980-12-24"
			customer.Email = "max@example.com"
			tc.mutate(&customer)
			err := validateStruct(customer)
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
