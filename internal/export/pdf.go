package export

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf/v2"
)

// InvoiceReport is everything the invoice sheet prints: header fields, the
// containers received against the invoice and the expense lines.
type InvoiceReport struct {
	InvoiceNumber string
	BLNumber      string
	GoodsName     string
	ShippingLine  string
	ArrivalPort   string
	ETA           string
	NetWeight     float64
	TotalValueVnd string
	ExpenseVnd    string
	NetValueVnd   string
	PricePerMTUsd string

	Receipts []ReceiptLine
	Expenses []ExpenseLine
}

type ReceiptLine struct {
	ContainerNumber string
	WarehouseName   string
	ReceivedDate    string
	BagsReceived    int
	NetWeight       float64
	Destination     string
}

type ExpenseLine struct {
	ExpenseDate string
	CostType    string
	AmountVnd   string
	Remarks     string
}

// ShipmentReport prints a single shipment with its container details.
type ShipmentReport struct {
	InvoiceNumber string
	BLNumber      string
	GoodsName     string
	ShippingLine  string
	ArrivalPort   string
	Origin        string
	ETA           string
	NetWeight     float64
	NoOfBags      int
	TotalValueVnd string

	Containers []ContainerLine
}

type ContainerLine struct {
	ContainerNumber string
	SealNumber      string
	GrossWeight     float64
	NetWeight       float64
	NoOfBags        int
}

// Renderer turns reports into downloadable documents.
type Renderer interface {
	RenderInvoice(report InvoiceReport) ([]byte, error)
	RenderShipment(report ShipmentReport) ([]byte, error)
}

// PDFRenderer renders A4 portrait sheets.
type PDFRenderer struct{}

func NewPDFRenderer() *PDFRenderer { return &PDFRenderer{} }

func newSheet(title string) *gofpdf.Fpdf {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(title, false)
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 10, title, "", 1, "C", false, 0, "")
	pdf.Ln(4)
	return pdf
}

func keyValue(pdf *gofpdf.Fpdf, key, value string) {
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(45, 7, key, "", 0, "L", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(0, 7, value, "", 1, "L", false, 0, "")
}

func tableHeader(pdf *gofpdf.Fpdf, widths []float64, titles []string) {
	pdf.SetFont("Arial", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	for i, t := range titles {
		pdf.CellFormat(widths[i], 7, t, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)
}

func tableRow(pdf *gofpdf.Fpdf, widths []float64, cells []string) {
	pdf.SetFont("Arial", "", 9)
	for i, c := range cells {
		pdf.CellFormat(widths[i], 6, c, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)
}

func (r *PDFRenderer) RenderInvoice(report InvoiceReport) ([]byte, error) {
	pdf := newSheet("Invoice Summary " + report.InvoiceNumber)

	keyValue(pdf, "Invoice No", report.InvoiceNumber)
	keyValue(pdf, "B/L No", report.BLNumber)
	keyValue(pdf, "Goods", report.GoodsName)
	keyValue(pdf, "Shipping Line", report.ShippingLine)
	keyValue(pdf, "Arrival Port", report.ArrivalPort)
	keyValue(pdf, "ETA", report.ETA)
	keyValue(pdf, "Net Weight (kg)", fmt.Sprintf("%.0f", report.NetWeight))
	keyValue(pdf, "Total Value (VND)", report.TotalValueVnd)
	keyValue(pdf, "Expenses (VND)", report.ExpenseVnd)
	keyValue(pdf, "Net Value (VND)", report.NetValueVnd)
	keyValue(pdf, "Price/MT (USD)", report.PricePerMTUsd)
	pdf.Ln(4)

	if len(report.Receipts) > 0 {
		pdf.SetFont("Arial", "B", 11)
		pdf.CellFormat(0, 8, "Containers Received", "", 1, "L", false, 0, "")
		widths := []float64{40, 35, 28, 22, 30, 35}
		tableHeader(pdf, widths, []string{"Container", "Warehouse", "Date", "Bags", "Net (kg)", "Destination"})
		for _, line := range report.Receipts {
			tableRow(pdf, widths, []string{
				line.ContainerNumber,
				line.WarehouseName,
				line.ReceivedDate,
				fmt.Sprintf("%d", line.BagsReceived),
				fmt.Sprintf("%.0f", line.NetWeight),
				line.Destination,
			})
		}
		pdf.Ln(4)
	}

	if len(report.Expenses) > 0 {
		pdf.SetFont("Arial", "B", 11)
		pdf.CellFormat(0, 8, "Expenses", "", 1, "L", false, 0, "")
		widths := []float64{28, 55, 40, 67}
		tableHeader(pdf, widths, []string{"Date", "Cost Type", "Amount (VND)", "Remarks"})
		for _, line := range report.Expenses {
			tableRow(pdf, widths, []string{line.ExpenseDate, line.CostType, line.AmountVnd, line.Remarks})
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render invoice pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *PDFRenderer) RenderShipment(report ShipmentReport) ([]byte, error) {
	pdf := newSheet("Shipment " + report.InvoiceNumber)

	keyValue(pdf, "Invoice No", report.InvoiceNumber)
	keyValue(pdf, "B/L No", report.BLNumber)
	keyValue(pdf, "Goods", report.GoodsName)
	keyValue(pdf, "Shipping Line", report.ShippingLine)
	keyValue(pdf, "Arrival Port", report.ArrivalPort)
	keyValue(pdf, "Origin", report.Origin)
	keyValue(pdf, "ETA", report.ETA)
	keyValue(pdf, "Net Weight (kg)", fmt.Sprintf("%.0f", report.NetWeight))
	keyValue(pdf, "Bags", fmt.Sprintf("%d", report.NoOfBags))
	keyValue(pdf, "Total Value (VND)", report.TotalValueVnd)
	pdf.Ln(4)

	if len(report.Containers) > 0 {
		pdf.SetFont("Arial", "B", 11)
		pdf.CellFormat(0, 8, "Containers", "", 1, "L", false, 0, "")
		widths := []float64{45, 40, 35, 35, 35}
		tableHeader(pdf, widths, []string{"Container", "Seal", "Gross (kg)", "Net (kg)", "Bags"})
		for _, line := range report.Containers {
			tableRow(pdf, widths, []string{
				line.ContainerNumber,
				line.SealNumber,
				fmt.Sprintf("%.0f", line.GrossWeight),
				fmt.Sprintf("%.0f", line.NetWeight),
				fmt.Sprintf("%d", line.NoOfBags),
			})
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render shipment pdf: %w", err)
	}
	return buf.Bytes(), nil
}
