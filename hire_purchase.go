package heidelpay

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/oapi-codegen/runtime"
	"github.com/oapi-codegen/runtime/types"
	"github.com/shopspring/decimal"
)

const hirePurchasePlansPath = "types/hire-purchase-direct-debit/plans"

// HirePurchaseInstallmentRate is one rate of a [HirePurchasePlan].
type HirePurchaseInstallmentRate struct {
	AmountOfRepayment    float64 `json:"amountOfRepayment"`
	Rate                 float64 `json:"rate"`
	TotalRemainingAmount float64 `json:"totalRemainingAmount"`
	Type                 string  `json:"type"`
	RateIndex            int     `json:"rateIndex"`
	Ultimo               bool    `json:"ultimo"`
}

// HirePurchasePlan is an installment schedule offered by the backend.
type HirePurchasePlan struct {
	NumberOfRates         int                           `json:"numberOfRates"`
	DayOfPurchase         string                        `json:"dayOfPurchase"`
	TotalPurchaseAmount   float64                       `json:"totalPurchaseAmount"`
	TotalInterestAmount   float64                       `json:"totalInterestAmount"`
	TotalAmount           float64                       `json:"totalAmount"`
	EffectiveInterestRate float64                       `json:"effectiveInterestRate"`
	NominalInterestRate   float64                       `json:"nominalInterestRate"`
	FeeFirstRate          float64                       `json:"feeFirstRate"`
	FeePerRate            float64                       `json:"feePerRate"`
	MonthlyRate           float64                       `json:"monthlyRate"`
	LastRate              float64                       `json:"lastRate"`
	InstallmentRates      []HirePurchaseInstallmentRate `json:"installmentRates"`
}

type hirePurchasePlansResponse struct {
	Code   string             `json:"code"`
	Entity []HirePurchasePlan `json:"entity"`
}

func parseHirePurchasePlans(body []byte) ([]HirePurchasePlan, error) {
	var resp hirePurchasePlansResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("decode hire purchase plans: %w", err)
	}
	if resp.Entity == nil {
		return []HirePurchasePlan{}, nil
	}
	return resp.Entity, nil
}

// HirePurchasePlansQuery selects the plans offered for a basket.
type HirePurchasePlansQuery struct {
	Amount            float64 `validate:"gt=0"`
	Currency          string  `validate:"required,iso4217"`
	EffectiveInterest float64 `validate:"gte=0"`
	// OrderDate is sent as yyyy-mm-dd when set.
	OrderDate *time.Time
}

type queryParam struct {
	name  string
	value any
}

// path renders the query in form style, e.g.
// "types/hire-purchase-direct-debit/plans?amount=100.5&currency=EUR&effectiveInterest=4.5".
func (q HirePurchasePlansQuery) path() (string, error) {
	params := []queryParam{
		{"amount", q.Amount},
		{"currency", q.Currency},
		{"effectiveInterest", q.EffectiveInterest},
	}
	if q.OrderDate != nil {
		params = append(params, queryParam{"orderDate", types.Date{Time: *q.OrderDate}})
	}

	parts := make([]string, 0, len(params))
	for _, p := range params {
		styled, err := runtime.StyleParamWithLocation("form", true, p.name, runtime.ParamLocationQuery, p.value)
		if err != nil {
			return "", fmt.Errorf("encode %s: %w", p.name, err)
		}
		parts = append(parts, styled)
	}
	return hirePurchasePlansPath + "?" + strings.Join(parts, "&"), nil
}

// HirePurchasePayment creates a hire purchase payment type from a plan the
// customer selected.
type HirePurchasePayment struct {
	passThrough

	IBAN   string `json:"iban" validate:"required,iban_checksum"`
	BIC    string `json:"bic" validate:"required,min=8,max=11"`
	Holder string `json:"holder" validate:"required"`

	NumberOfRates         int     `json:"numberOfRates" validate:"gt=0"`
	EffectiveInterestRate float64 `json:"effectiveInterestRate"`
	NominalInterestRate   float64 `json:"nominalInterestRate"`
	TotalPurchaseAmount   float64 `json:"totalPurchaseAmount"`
	TotalInterestAmount   float64 `json:"totalInterestAmount"`
	TotalAmount           float64 `json:"totalAmount"`
	FeeFirstRate          float64 `json:"feeFirstRate"`
	FeePerRate            float64 `json:"feePerRate"`
	MonthlyRate           float64 `json:"monthlyRate"`
	LastRate              float64 `json:"lastRate"`
	DayOfPurchase         string  `json:"dayOfPurchase"`
}

// NewHirePurchasePayment copies the plan's values, rounding every amount and
// rate to two decimal places, half up.
func NewHirePurchasePayment(iban, bic, holder string, plan HirePurchasePlan) HirePurchasePayment {
	return HirePurchasePayment{
		IBAN:                  iban,
		BIC:                   bic,
		Holder:                holder,
		NumberOfRates:         plan.NumberOfRates,
		EffectiveInterestRate: roundTo2(plan.EffectiveInterestRate),
		NominalInterestRate:   roundTo2(plan.NominalInterestRate),
		TotalPurchaseAmount:   roundTo2(plan.TotalPurchaseAmount),
		TotalInterestAmount:   roundTo2(plan.TotalInterestAmount),
		TotalAmount:           roundTo2(plan.TotalAmount),
		FeeFirstRate:          roundTo2(plan.FeeFirstRate),
		FeePerRate:            roundTo2(plan.FeePerRate),
		MonthlyRate:           roundTo2(plan.MonthlyRate),
		LastRate:              roundTo2(plan.LastRate),
		DayOfPurchase:         plan.DayOfPurchase,
	}
}

func (HirePurchasePayment) Method() PaymentMethod { return HirePurchase }

func roundTo2(v float64) float64 {
	rounded, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return rounded
}
