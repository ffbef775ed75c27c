package model

// DashboardSummary carries the headline cards of the overview page. Money
// fields are preformatted strings so the frontend never reformats: VND with
// no decimals, USD with two.
type DashboardSummary struct {
	TotalShipments      int    `json:"totalShipments"`
	TotalContainers     int    `json:"totalContainers"`
	TotalNetWeight      string `json:"totalNetWeight"`
	TotalValueVnd       string `json:"totalValueVnd"`
	TotalExpenseVnd     string `json:"totalExpenseVnd"`
	TotalNetValueVnd    string `json:"totalNetValueVnd"`
	WarehouseReceipts   int    `json:"warehouseReceipts"`
	CustomerDeliveries  int    `json:"customerDeliveries"`
	PendingContainers   int    `json:"pendingContainers"`
	AvgPricePerMTUsd    string `json:"avgPricePerMtUsd"`
	SnapshotRefreshedAt string `json:"snapshotRefreshedAt"`
}

// ShipmentRow is one line of the reconciliation table: a shipment joined with
// its per-invoice expenses and derived trade metrics.
type ShipmentRow struct {
	ID             string  `json:"_id"`
	InvoiceNumber  string  `json:"invoiceNumber"`
	BLNumber       string  `json:"blNumber"`
	GoodsName      string  `json:"goodsName"`
	ContainerCount int     `json:"containerCount"`
	NetWeight      float64 `json:"netWeight"`
	ETA            string  `json:"eta"`
	TotalValueVnd  string  `json:"totalValueVnd"`
	ExpenseVnd     string  `json:"expenseVnd"`
	NetValueVnd    string  `json:"netValueVnd"`
	PricePerMTUsd  string  `json:"pricePerMtUsd"`
}

// ExpenseRow is one expense document flattened for the expense dashboard.
type ExpenseRow struct {
	ID               string   `json:"_id"`
	InvoiceNumber    string   `json:"invoiceNumber"`
	ContainerNumbers []string `json:"containerNumbers"`
	ExpenseDate      string   `json:"expenseDate"`
	Remarks          string   `json:"remarks"`
	TotalVnd         string   `json:"totalVnd"`
	CostCount        int      `json:"costCount"`
}

// ExpenseDashboard is the expense overview: grand totals plus the flattened
// rows the table renders.
type ExpenseDashboard struct {
	TotalExpenseVnd string       `json:"totalExpenseVnd"`
	TotalContainers int          `json:"totalContainers"`
	AvgPerContainer string       `json:"avgPerContainer"`
	Rows            []ExpenseRow `json:"rows"`
}
