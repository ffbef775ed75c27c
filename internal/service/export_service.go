package service

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"backoffice/internal/export"
	"backoffice/internal/model"
)

// ErrNotFound marks lookups that matched nothing; handlers map it to 404.
var ErrNotFound = fmt.Errorf("not found")

// ExportService assembles printable reports from the snapshot and hands them
// to a renderer.
type ExportService interface {
	InvoicePDF(ctx context.Context, invoiceNumber string) (filename string, data []byte, err error)
	ShipmentPDF(ctx context.Context, shipmentID string) (filename string, data []byte, err error)
}

type exportService struct {
	store    Store
	joiner   Joiner
	renderer export.Renderer
}

func NewExportService(st Store, joiner Joiner, renderer export.Renderer) ExportService {
	return &exportService{store: st, joiner: joiner, renderer: renderer}
}

func destination(r model.IntakeRecord) string {
	if r.ForCustomer() {
		return "Customer: " + r.CustomerName
	}
	return "Warehouse"
}

func (s *exportService) InvoicePDF(ctx context.Context, invoiceNumber string) (string, []byte, error) {
	snap, err := s.store.Snapshot(ctx)
	if err != nil {
		return "", nil, err
	}

	var shipment *model.Shipment
	for i := range snap.Shipments {
		if snap.Shipments[i].InvoiceNumber == invoiceNumber {
			shipment = &snap.Shipments[i]
			break
		}
	}

	var expenses []model.Expense
	for _, e := range snap.Expenses {
		if e.InvoiceNumber == invoiceNumber {
			expenses = append(expenses, e)
		}
	}

	var receipts []model.IntakeRecord
	for _, r := range snap.WarehouseRecords {
		if r.InvoiceNumber == invoiceNumber {
			receipts = append(receipts, r)
		}
	}
	for _, r := range snap.CustomerRecords {
		if r.InvoiceNumber == invoiceNumber {
			receipts = append(receipts, r)
		}
	}

	// The report is a receipt listing; an invoice with no recorded hand-offs
	// has nothing to print, shipment and expenses notwithstanding.
	if len(receipts) == 0 {
		return "", nil, fmt.Errorf("invoice %q has no intake records: %w", invoiceNumber, ErrNotFound)
	}

	report := export.InvoiceReport{InvoiceNumber: invoiceNumber}
	totalExp := TotalExpenseForInvoice(expenses)
	report.ExpenseVnd = totalExp.StringFixed(0)
	if shipment != nil {
		report.BLNumber = shipment.BLNumber
		report.GoodsName = shipment.GoodsName
		report.ShippingLine = shipment.ShippingLine
		report.ArrivalPort = shipment.ArrivalPort
		report.ETA = shipment.ETA
		report.NetWeight = shipment.NetWeight
		report.TotalValueVnd = decimal.NewFromFloat(shipment.TotalValueVnd).StringFixed(0)
		report.NetValueVnd = NetValue(shipment.TotalValueVnd, totalExp).StringFixed(0)
		perTon := PricePerMetricTon(shipment.TotalValueVnd, shipment.NetWeight)
		report.PricePerMTUsd = PricePerMetricTonUSD(perTon, shipment.ExchangeRate).StringFixed(2)
	} else {
		report.TotalValueVnd = "0"
		report.NetValueVnd = totalExp.StringFixed(0)
		report.PricePerMTUsd = "0.00"
	}

	for _, r := range receipts {
		report.Receipts = append(report.Receipts, export.ReceiptLine{
			ContainerNumber: r.ContainerNumber,
			WarehouseName:   r.WarehouseName,
			ReceivedDate:    r.ReceivedDate,
			BagsReceived:    r.BagsReceived,
			NetWeight:       r.NetWeightReceived,
			Destination:     destination(r),
		})
	}
	for _, e := range expenses {
		for _, c := range e.Costs {
			report.Expenses = append(report.Expenses, export.ExpenseLine{
				ExpenseDate: e.ExpenseDate,
				CostType:    c.CostType,
				AmountVnd:   c.Amount.StringFixed(0),
				Remarks:     e.Remarks,
			})
		}
	}

	data, err := s.renderer.RenderInvoice(report)
	if err != nil {
		return "", nil, err
	}
	filename := fmt.Sprintf("Invoice_%s_%s.pdf", invoiceNumber, time.Now().Format("2006-01-02"))
	return filename, data, nil
}

func (s *exportService) ShipmentPDF(ctx context.Context, shipmentID string) (string, []byte, error) {
	snap, err := s.store.Snapshot(ctx)
	if err != nil {
		return "", nil, err
	}

	var shipment *model.Shipment
	for i := range snap.Shipments {
		if snap.Shipments[i].ID == shipmentID {
			shipment = &snap.Shipments[i]
			break
		}
	}
	if shipment == nil {
		return "", nil, fmt.Errorf("shipment %q: %w", shipmentID, ErrNotFound)
	}

	containers, err := s.store.Containers(ctx)
	if err != nil {
		return "", nil, err
	}

	report := export.ShipmentReport{
		InvoiceNumber: shipment.InvoiceNumber,
		BLNumber:      shipment.BLNumber,
		GoodsName:     shipment.GoodsName,
		ShippingLine:  shipment.ShippingLine,
		ArrivalPort:   shipment.ArrivalPort,
		Origin:        shipment.CountryOfOrigin,
		ETA:           shipment.ETA,
		NetWeight:     shipment.NetWeight,
		NoOfBags:      shipment.NoOfBags,
		TotalValueVnd: decimal.NewFromFloat(shipment.TotalValueVnd).StringFixed(0),
	}
	for _, c := range s.joiner.MatchedContainers(*shipment, containers) {
		seal := c.SealNumber1
		if seal == "" {
			seal = c.SealNumber2
		}
		report.Containers = append(report.Containers, export.ContainerLine{
			ContainerNumber: c.ContainerNumber,
			SealNumber:      seal,
			GrossWeight:     c.GrossWeight,
			NetWeight:       c.NetWeight,
			NoOfBags:        c.NoOfBags,
		})
	}

	data, err := s.renderer.RenderShipment(report)
	if err != nil {
		return "", nil, err
	}
	filename := fmt.Sprintf("Shipment_%s_%s.pdf", shipment.InvoiceNumber, time.Now().Format("2006-01-02"))
	return filename, data, nil
}
