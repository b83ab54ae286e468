package heidelpay

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"
)

// Client creates payment types for one merchant account. Build it with
// [Setup]. A Client holds no per call state and is safe for concurrent use.
type Client struct {
	backend        BackendService
	logger         *slog.Logger
	paymentMethods []PaymentMethod
}

type setupResponse struct {
	AvailablePaymentTypes []string `json:"availablePaymentTypes"`
}

// Setup checks the public key against the backend and loads the payment
// methods enabled for the merchant.
func Setup(ctx context.Context, publicKey PublicKey, opts ...Option) (*Client, error) {
	if publicKey.IsZero() {
		return nil, newNotAuthorizedError(withCause(errors.New("public key is required")))
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(cfg)
	}
	backend := cfg.backend
	if backend == nil {
		backend = newHTTPBackendService(publicKey, cfg)
	}

	body, err := backend.PerformRequest(ctx, newSetupRequest())
	if err != nil {
		return nil, toError(err)
	}
	var resp setupResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, toError(newBackendError(InvalidServerResponse, fmt.Errorf("decode setup response: %w", err)))
	}

	c := &Client{
		backend:        backend,
		logger:         cfg.logger,
		paymentMethods: availablePaymentMethods(resp.AvailablePaymentTypes),
	}
	c.logger.DebugContext(ctx, "heidelpay setup complete", slog.Int("payment_methods", len(c.paymentMethods)))
	return c, nil
}

// PaymentMethods returns the methods that are both enabled for the merchant
// and supported by the SDK, in backend order.
func (c *Client) PaymentMethods() []PaymentMethod {
	return slices.Clone(c.paymentMethods)
}

// CreatePayment validates t and creates the payment type on the backend.
func (c *Client) CreatePayment(ctx context.Context, t CreatePaymentType) (PaymentType, error) {
	if t == nil {
		return PaymentType{}, newGeneralProcessingError(withCause(errors.New("payment type is nil")))
	}
	if err := validateStruct(t); err != nil {
		return PaymentType{}, toError(newBackendError(InvalidRequest, err))
	}
	req, err := newCreatePaymentTypeRequest(t)
	if err != nil {
		return PaymentType{}, toError(err)
	}
	body, err := c.backend.PerformRequest(ctx, req)
	if err != nil {
		return PaymentType{}, toError(err)
	}

	var raw map[string]any
	if err := decodeGeneric(body, &raw); err != nil {
		return PaymentType{}, toError(newBackendError(InvalidServerResponse, fmt.Errorf("decode payment type: %w", err)))
	}
	id, _ := raw[fieldID].(string)
	methodValue, _ := raw[fieldMethod].(string)
	method, ok := ParsePaymentMethod(methodValue)
	if id == "" || !ok {
		return PaymentType{}, toError(newBackendError(InvalidServerResponse, fmt.Errorf("payment type response without id or known method %q", methodValue)))
	}
	return t.paymentType(id, method, dataFields(raw)), nil
}

// CreatePaymentCard creates a card payment type. expiryDate is formatted MM/YY.
func (c *Client) CreatePaymentCard(ctx context.Context, number, cvc, expiryDate string) (PaymentType, error) {
	return c.CreatePayment(ctx, CardPayment{Number: number, CVC: cvc, ExpiryDate: expiryDate})
}

// CreatePaymentSepaDirectDebit creates a SEPA direct debit payment type. bic
// and holder are optional.
func (c *Client) CreatePaymentSepaDirectDebit(ctx context.Context, iban, bic, holder string, guaranteed bool) (PaymentType, error) {
	return c.CreatePayment(ctx, SepaDirectDebitPayment{IBAN: iban, BIC: bic, Holder: holder, Guaranteed: guaranteed})
}

func (c *Client) CreatePaymentInvoice(ctx context.Context, guaranteed bool) (PaymentType, error) {
	return c.CreatePayment(ctx, InvoicePayment{Guaranteed: guaranteed})
}

func (c *Client) CreatePaymentInvoiceFactoring(ctx context.Context) (PaymentType, error) {
	return c.CreatePayment(ctx, InvoiceFactoringPayment{})
}

func (c *Client) CreatePaymentSofort(ctx context.Context) (PaymentType, error) {
	return c.CreatePayment(ctx, SofortPayment{})
}

func (c *Client) CreatePaymentGiropay(ctx context.Context) (PaymentType, error) {
	return c.CreatePayment(ctx, GiropayPayment{})
}

func (c *Client) CreatePaymentPrepayment(ctx context.Context) (PaymentType, error) {
	return c.CreatePayment(ctx, PrepaymentPayment{})
}

func (c *Client) CreatePaymentPrzelewy24(ctx context.Context) (PaymentType, error) {
	return c.CreatePayment(ctx, Przelewy24Payment{})
}

func (c *Client) CreatePaymentPaypal(ctx context.Context) (PaymentType, error) {
	return c.CreatePayment(ctx, PaypalPayment{})
}

// CreatePaymentIdeal creates an iDEAL payment type for the bank identified by bic.
func (c *Client) CreatePaymentIdeal(ctx context.Context, bic string) (PaymentType, error) {
	return c.CreatePayment(ctx, IdealPayment{BIC: bic})
}

func (c *Client) CreatePaymentAlipay(ctx context.Context) (PaymentType, error) {
	return c.CreatePayment(ctx, AlipayPayment{})
}

func (c *Client) CreatePaymentWechatpay(ctx context.Context) (PaymentType, error) {
	return c.CreatePayment(ctx, WechatpayPayment{})
}

func (c *Client) CreatePaymentPIS(ctx context.Context) (PaymentType, error) {
	return c.CreatePayment(ctx, PISPayment{})
}

// CreatePaymentHirePurchase creates a hire purchase payment type for a plan
// returned by [Client.RetrieveHirePurchasePlans].
func (c *Client) CreatePaymentHirePurchase(ctx context.Context, iban, bic, holder string, plan HirePurchasePlan) (PaymentType, error) {
	return c.CreatePayment(ctx, NewHirePurchasePayment(iban, bic, holder, plan))
}

// CreateCustomer creates the customer resource and returns its id.
func (c *Client) CreateCustomer(ctx context.Context, customer Customer) (string, error) {
	if err := validateStruct(customer); err != nil {
		return "", toError(newBackendError(InvalidRequest, err))
	}
	req, err := newCreateServerObjectRequest(customersPath, customer)
	if err != nil {
		return "", toError(err)
	}
	body, err := c.backend.PerformRequest(ctx, req)
	if err != nil {
		return "", toError(err)
	}
	var created createdResource
	if err := json.Unmarshal(body, &created); err != nil {
		return "", toError(newBackendError(InvalidServerResponse, fmt.Errorf("decode customer: %w", err)))
	}
	if created.ID == "" {
		return "", toError(newBackendError(InvalidServerResponse, errors.New("customer response without id")))
	}
	return created.ID, nil
}

// RetrieveHirePurchasePlans loads the installment plans offered for amount in
// currency. effectiveInterest is the yearly rate in percent configured for
// the merchant. orderDate is optional.
func (c *Client) RetrieveHirePurchasePlans(ctx context.Context, amount float64, currency string, effectiveInterest float64, orderDate *time.Time) ([]HirePurchasePlan, error) {
	q := HirePurchasePlansQuery{
		Amount:            amount,
		Currency:          currency,
		EffectiveInterest: effectiveInterest,
		OrderDate:         orderDate,
	}
	if err := validateStruct(q); err != nil {
		return nil, toError(newBackendError(InvalidRequest, err))
	}
	req, err := newRetrieveHirePurchasePlansRequest(q)
	if err != nil {
		return nil, toError(err)
	}
	body, err := c.backend.PerformRequest(ctx, req)
	if err != nil {
		return nil, toError(err)
	}
	plans, err := parseHirePurchasePlans(body)
	if err != nil {
		return nil, toError(newBackendError(InvalidServerResponse, err))
	}
	return plans, nil
}
