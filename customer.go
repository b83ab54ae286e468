package heidelpay

import "encoding/json"

const customersPath = "customers"

// Salutation values accepted by the backend.
const (
	SalutationMr      = "mr"
	SalutationMrs     = "mrs"
	SalutationUnknown = "unknown"
)

// Company registration types.
const (
	RegistrationTypeRegistered    = "registered"
	RegistrationTypeNotRegistered = "not_registered"
)

// Customer is the customer resource created with [Client.CreateCustomer].
// Empty strings are sent as null so that the backend clears the field.
type Customer struct {
	Firstname string `json:"firstname" validate:"max=40"`
	Lastname  string `json:"lastname" validate:"max=40"`
	// CustomerID must be unique and can be used in place of the resource id.
	CustomerID string `json:"customerId" validate:"max=256"`
	Salutation string `json:"salutation" validate:"omitempty,oneof=mr mrs unknown"`
	Company    string `json:"company" validate:"max=40"`
	// BirthDate is formatted yyyy-mm-dd or dd.mm.yyyy.
	BirthDate string `json:"birthDate" validate:"omitempty,birth_date"`
	Email     string `json:"email" validate:"omitempty,max=100,email_format"`
	Phone     string `json:"phone" validate:"max=20"`
	Mobile    string `json:"mobile" validate:"max=40"`

	BillingAddress  *CustomerAddress `json:"billingAddress,omitempty"`
	ShippingAddress *CustomerAddress `json:"shippingAddress,omitempty"`
	CompanyInfo     *CompanyInfo     `json:"companyInfo,omitempty"`
}

// CustomerAddress is a billing or shipping address.
type CustomerAddress struct {
	// Name is the first and last name of the recipient.
	Name   string `json:"name" validate:"max=40"`
	Street string `json:"street" validate:"max=50"`
	// State is an ISO 3166-2 subdivision code.
	State string `json:"state" validate:"max=8"`
	Zip   string `json:"zip" validate:"max=10"`
	City  string `json:"city" validate:"max=30"`
	// Country is an ISO 3166-1 alpha-2 code.
	Country string `json:"country" validate:"omitempty,iso3166_1_alpha2"`
}

// CompanyInfo describes a business customer.
type CompanyInfo struct {
	RegistrationType         string `json:"registrationType" validate:"required,oneof=registered not_registered"`
	CommercialRegisterNumber string `json:"commercialRegisterNumber" validate:"required_if=RegistrationType registered"`
	Function                 string `json:"function" validate:"required_if=RegistrationType not_registered"`
	CommercialSector         string `json:"commercialSector" validate:"required_if=RegistrationType not_registered"`
}

// NewCustomer builds a private customer. Set the optional fields on the
// returned value.
func NewCustomer(firstname, lastname string) Customer {
	return Customer{Firstname: firstname, Lastname: lastname}
}

// NewRegisteredCompanyCustomer builds a customer for a company listed in a
// commercial register.
func NewRegisteredCompanyCustomer(company, commercialRegisterNumber string, billingAddress CustomerAddress) Customer {
	return Customer{
		Company:        company,
		BillingAddress: &billingAddress,
		CompanyInfo: &CompanyInfo{
			RegistrationType:         RegistrationTypeRegistered,
			CommercialRegisterNumber: commercialRegisterNumber,
		},
	}
}

// NewNonRegisteredCompanyCustomer builds a customer for a business that is
// not listed in a commercial register, identified by its owner.
func NewNonRegisteredCompanyCustomer(firstname, lastname, company, birthDate, email string, billingAddress CustomerAddress, function, commercialSector string) Customer {
	return Customer{
		Firstname:      firstname,
		Lastname:       lastname,
		Company:        company,
		BirthDate:      birthDate,
		Email:          email,
		BillingAddress: &billingAddress,
		CompanyInfo: &CompanyInfo{
			RegistrationType: RegistrationTypeNotRegistered,
			Function:         function,
			CommercialSector: commercialSector,
		},
	}
}

// MarshalJSON emits every scalar key, using null for empty values.
func (c Customer) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Firstname       *string          `json:"firstname"`
		Lastname        *string          `json:"lastname"`
		CustomerID      *string          `json:"customerId"`
		Salutation      *string          `json:"salutation"`
		Company         *string          `json:"company"`
		BirthDate       *string          `json:"birthDate"`
		Email           *string          `json:"email"`
		Phone           *string          `json:"phone"`
		Mobile          *string          `json:"mobile"`
		BillingAddress  *CustomerAddress `json:"billingAddress,omitempty"`
		ShippingAddress *CustomerAddress `json:"shippingAddress,omitempty"`
		CompanyInfo     *CompanyInfo     `json:"companyInfo,omitempty"`
	}{
		Firstname:       nullable(c.Firstname),
		Lastname:        nullable(c.Lastname),
		CustomerID:      nullable(c.CustomerID),
		Salutation:      nullable(c.Salutation),
		Company:         nullable(c.Company),
		BirthDate:       nullable(c.BirthDate),
		Email:           nullable(c.Email),
		Phone:           nullable(c.Phone),
		Mobile:          nullable(c.Mobile),
		BillingAddress:  c.BillingAddress,
		ShippingAddress: c.ShippingAddress,
		CompanyInfo:     c.CompanyInfo,
	})
}

// MarshalJSON emits every key, using null for empty values.
func (c CompanyInfo) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		RegistrationType         *string `json:"registrationType"`
		CommercialRegisterNumber *string `json:"commercialRegisterNumber"`
		Function                 *string `json:"function"`
		CommercialSector         *string `json:"commercialSector"`
	}{
		RegistrationType:         nullable(c.RegistrationType),
		CommercialRegisterNumber: nullable(c.CommercialRegisterNumber),
		Function:                 nullable(c.Function),
		CommercialSector:         nullable(c.CommercialSector),
	})
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

type createdResource struct {
	ID string `json:"id"`
}
