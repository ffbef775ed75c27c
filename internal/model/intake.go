package model

// Sale targets for an intake record. A container is either received into one
// of our warehouses or handed straight to a customer at the port.
const (
	SaleTargetWarehouse = "warehouse"
	SaleTargetCustomer  = "customer"
)

// DefaultWarehouseName is the warehouse preselected for every new intake
// entry regardless of what the previous entry used.
const DefaultWarehouseName = "Thanh Binh"

// WarehouseLocations is the fixed list of receiving locations.
var WarehouseLocations = []string{"Thanh Binh", "P & C", "CAT LAI PORT"}

// IntakeRecord is a single container hand-off. The same shape backs both
// warehouse receipts and direct customer deliveries; SellingDirect plus
// SaleTarget decide which remote collection the record lands in.
type IntakeRecord struct {
	ID                string  `json:"_id,omitempty"`
	ContainerNumber   string  `json:"containerNumber"`
	InvoiceNumber     string  `json:"invoiceNumber"`
	BLNumber          string  `json:"blNumber"`
	GrossWeight       float64 `json:"grossWeight"`
	NetWeight         float64 `json:"netWeight"`
	NumberOfBags      int     `json:"numberOfBags"`
	Value             float64 `json:"value"`
	ShippingLine      string  `json:"shippingLine"`
	NameOfGoods       string  `json:"nameOfGoods"`
	ArrivalPort       string  `json:"arrivalPort"`
	WarehouseName     string  `json:"warehouseName"`
	ReceivedDate      string  `json:"receivedDate"`
	BagsReceived      int     `json:"bagsReceived"`
	NetWeightReceived float64 `json:"netWeightReceived"`
	TruckNumber       string  `json:"truckNumber"`
	TruckingAgent     string  `json:"truckingAgent"`
	CHA               string  `json:"cha"`
	Notes             string  `json:"notes"`
	SellingDirect     bool    `json:"sellingDirect"`
	SaleTarget        string  `json:"saleTarget"`
	CustomerName      string  `json:"customerName"`
}

// ForCustomer reports whether the record should be stored as a direct
// customer delivery rather than a warehouse receipt.
func (r IntakeRecord) ForCustomer() bool {
	return r.SellingDirect && r.SaleTarget == SaleTargetCustomer
}
