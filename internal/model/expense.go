package model

import (
	"bytes"
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Cost type vocabulary offered by the expense form. Free text is also
// accepted; these are the usual lines on a customs invoice.
var CostTypes = []string{
	"Local charges",
	"Extension delivery order charges",
	"Port Infrastructure fee",
	"E Port Charges",
	"Extension port storage",
	"Custom clearance",
	"Clearing agent fees",
	"Extension (Dem + Det)",
	"Lift Off Charges",
	"Container deposit",
	"Trucking fee",
	"Return empty depo fee",
	"Others",
}

// Amount is a money value that tolerates sloppy input. The remote store holds
// amounts as numbers or numeric strings and occasionally null or free text;
// anything that is not a number decodes to zero rather than failing the whole
// document.
type Amount struct {
	decimal.Decimal
}

func NewAmount(d decimal.Decimal) Amount { return Amount{d} }

func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		a.Decimal = decimal.Zero
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			a.Decimal = decimal.Zero
			return nil
		}
		d, err := decimal.NewFromString(s)
		if err != nil {
			a.Decimal = decimal.Zero
			return nil
		}
		a.Decimal = d
		return nil
	}
	d, err := decimal.NewFromString(string(data))
	if err != nil {
		a.Decimal = decimal.Zero
		return nil
	}
	a.Decimal = d
	return nil
}

func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.Decimal.String()), nil
}

// CostLine is one typed line item on an expense document.
type CostLine struct {
	CostType string `json:"costType"`
	Amount   Amount `json:"amount"`
}

// Expense groups the cost lines paid against one invoice, optionally tagged
// with the containers they cover.
type Expense struct {
	ID               string     `json:"_id,omitempty"`
	InvoiceNumber    string     `json:"invoiceNumber"`
	ContainerNumbers []string   `json:"containerNumbers"`
	ExpenseDate      string     `json:"expenseDate"`
	Remarks          string     `json:"remarks"`
	Costs            []CostLine `json:"costs"`
}

// Total sums the cost lines.
func (e Expense) Total() decimal.Decimal {
	total := decimal.Zero
	for _, c := range e.Costs {
		total = total.Add(c.Amount.Decimal)
	}
	return total
}
