package model

import "encoding/json"

// GoodsOptions and ShippingLines mirror the master lists used by the
// dashboard forms. They are defaults for the UI, not validated server-side:
// the remote API stores free text.
var GoodsOptions = []string{
	"Rice 5%",
	"Rice 15%",
	"Rice 100%",
	"Rice Reject",
	"DORB",
	"DORB Grade 1",
	"DORB Grade 2",
	"DDGS",
}

var ShippingLines = []string{
	"Maersk", "MSC", "CMA CGM", "Hapag-Lloyd",
}

// DefaultExchangeRate is applied when a shipment carries no exchange rate.
const DefaultExchangeRate = 24500

// FlexStrings decodes a JSON field that may be a single string or a list of
// strings into a list. Older shipment documents store containerNumber as a
// scalar; newer ones store an array. null decodes to nil.
type FlexStrings []string

func (f *FlexStrings) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*f = list
		return nil
	}
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		if single == "" {
			*f = nil
		} else {
			*f = []string{single}
		}
		return nil
	}
	*f = nil
	return nil
}

func (f FlexStrings) MarshalJSON() ([]byte, error) {
	if f == nil {
		return json.Marshal([]string{})
	}
	return json.Marshal([]string(f))
}

// Shipment is a consignment as stored by the remote service. totalValueVnd is
// computed once at creation (netWeight * pricePerKgUsd * exchangeRate) and is
// never re-derived on read.
type Shipment struct {
	ID              string      `json:"_id"`
	InvoiceNumber   string      `json:"invoiceNumber"`
	BLNumber        string      `json:"blNumber"`
	ContainerNumber FlexStrings `json:"containerNumber"`
	ContainerIDs    []string    `json:"containerIds"`
	GoodsName       string      `json:"goodsName"`
	ShippingLine    string      `json:"shippingLine"`
	ArrivalPort     string      `json:"arrivalPort"`
	CountryOfOrigin string      `json:"countryOfOrigin"`
	GrossWeight     float64     `json:"grossWeight"`
	NetWeight       float64     `json:"netWeight"`
	NoOfBags        int         `json:"noOfBags"`
	PricePerKgUsd   float64     `json:"pricePerKgUsd"`
	ExchangeRate    float64     `json:"exchangeRate"`
	TotalValueVnd   float64     `json:"totalValueVnd"`
	ETA             string      `json:"eta"`
	CreatedAt       string      `json:"createdAt"`
}

// Container is the per-box detail record. UniqueID is the opaque lookup key
// issued by the remote generator; ContainerNumber is the human identifier
// painted on the box.
type Container struct {
	ID              string  `json:"_id"`
	UniqueID        string  `json:"uniqueId"`
	ContainerNumber string  `json:"containerNumber"`
	SealNumber1     string  `json:"sealNumber1"`
	SealNumber2     string  `json:"sealNumber2"`
	GrossWeight     float64 `json:"grossWeight"`
	NetWeight       float64 `json:"netWeight"`
	NoOfBags        int     `json:"noOfBags"`
	Status          string  `json:"status"`
}
