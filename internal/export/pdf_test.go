package export

import (
	"bytes"
	"testing"
)

func TestRenderInvoiceProducesPDF(t *testing.T) {
	r := NewPDFRenderer()
	data, err := r.RenderInvoice(InvoiceReport{
		InvoiceNumber: "INV-001",
		TotalValueVnd: "100000000",
		ExpenseVnd:    "5000000",
		NetValueVnd:   "105000000",
		PricePerMTUsd: "80.00",
		Receipts: []ReceiptLine{
			{ContainerNumber: "C1", WarehouseName: "Thanh Binh", ReceivedDate: "2026-03-01", BagsReceived: 500, NetWeight: 24900, Destination: "Warehouse"},
		},
		Expenses: []ExpenseLine{
			{ExpenseDate: "2026-01-10", CostType: "THC", AmountVnd: "5000000"},
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Errorf("output is not a pdf, starts with %q", data[:min(8, len(data))])
	}
}

func TestRenderShipmentProducesPDF(t *testing.T) {
	r := NewPDFRenderer()
	data, err := r.RenderShipment(ShipmentReport{
		InvoiceNumber: "INV-001",
		GoodsName:     "Rice 5% KOLKATA",
		NetWeight:     50000,
		NoOfBags:      1000,
		TotalValueVnd: "100000000",
		Containers: []ContainerLine{
			{ContainerNumber: "C1", SealNumber: "SL1", GrossWeight: 26000, NetWeight: 25000, NoOfBags: 500},
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Errorf("output is not a pdf, starts with %q", data[:min(8, len(data))])
	}
}
