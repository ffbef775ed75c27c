package service

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"backoffice/internal/model"
	"backoffice/internal/store"
)

// Store is the snapshot source the services read from and invalidate after
// writes. Implemented by store.Store.
type Store interface {
	Snapshot(ctx context.Context) (store.Snapshot, error)
	Containers(ctx context.Context) ([]model.Container, error)
	Refresh(ctx context.Context) error
	Invalidate()
}

var dateLayouts = []string{"2006-01-02", time.RFC3339, "02/01/2006"}

func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC().Truncate(24 * time.Hour), true
		}
	}
	return time.Time{}, false
}

// DateRange filters by day precision, inclusive on both ends. A zero bound
// is open.
type DateRange struct {
	From time.Time
	To   time.Time
}

// ParseDateRange builds a range from query strings; empty or unparseable
// inputs leave the bound open.
func ParseDateRange(from, to string) DateRange {
	var r DateRange
	if t, ok := parseDate(from); ok {
		r.From = t
	}
	if t, ok := parseDate(to); ok {
		r.To = t
	}
	return r
}

// Contains reports whether the record date falls inside the range. When a
// bound is set and the record date does not parse, the record is excluded.
func (r DateRange) Contains(date string) bool {
	if r.From.IsZero() && r.To.IsZero() {
		return true
	}
	t, ok := parseDate(date)
	if !ok {
		return false
	}
	if !r.From.IsZero() && t.Before(r.From) {
		return false
	}
	if !r.To.IsZero() && t.After(r.To) {
		return false
	}
	return true
}

// TotalExpenseForInvoice sums every cost line across the given expense
// documents.
func TotalExpenseForInvoice(expenses []model.Expense) decimal.Decimal {
	total := decimal.Zero
	for _, e := range expenses {
		total = total.Add(e.Total())
	}
	return total
}

// NetValue is the shipment value plus the expenses booked against its
// invoice. The ledger convention here treats expenses as part of the landed
// value, so the amounts add.
func NetValue(totalValueVnd float64, totalExpense decimal.Decimal) decimal.Decimal {
	return decimal.NewFromFloat(totalValueVnd).Add(totalExpense)
}

// PricePerMetricTon derives the VND price per metric ton from the total value
// and the net weight in kilograms. Zero or negative weight yields zero.
func PricePerMetricTon(totalValueVnd, netWeightKg float64) decimal.Decimal {
	if netWeightKg <= 0 {
		return decimal.Zero
	}
	return decimal.NewFromFloat(totalValueVnd).
		Mul(decimal.NewFromInt(1000)).
		Div(decimal.NewFromFloat(netWeightKg))
}

// PricePerMetricTonUSD converts the VND per-ton price at the shipment's
// exchange rate, falling back to the default rate when unset.
func PricePerMetricTonUSD(perTonVnd decimal.Decimal, exchangeRate float64) decimal.Decimal {
	if exchangeRate <= 0 {
		exchangeRate = model.DefaultExchangeRate
	}
	return perTonVnd.Div(decimal.NewFromFloat(exchangeRate))
}

// ShipmentFilter narrows the reconciliation table. Search matches invoice,
// BL, goods and container numbers; Invoice matches the invoice number alone.
// Both are case insensitive substring matches. Range filters by the record's
// creation date.
type ShipmentFilter struct {
	Search  string
	Invoice string
	Range   DateRange
}

func (f ShipmentFilter) matches(s model.Shipment) bool {
	if f.Invoice != "" && !strings.Contains(strings.ToLower(s.InvoiceNumber), strings.ToLower(f.Invoice)) {
		return false
	}
	if !f.Range.Contains(s.CreatedAt) {
		return false
	}
	if f.Search == "" {
		return true
	}
	needle := strings.ToLower(f.Search)
	haystack := []string{s.InvoiceNumber, s.BLNumber, s.GoodsName}
	haystack = append(haystack, s.ContainerNumber...)
	for _, h := range haystack {
		if strings.Contains(strings.ToLower(h), needle) {
			return true
		}
	}
	return false
}

// MetricsService computes the dashboard aggregates over the current snapshot.
type MetricsService interface {
	DashboardSummary(ctx context.Context) (*model.DashboardSummary, error)
	ShipmentRows(ctx context.Context, filter ShipmentFilter) ([]model.ShipmentRow, error)
	ExpenseDashboard(ctx context.Context, rng DateRange) (*model.ExpenseDashboard, error)
}

type metricsService struct {
	store  Store
	joiner Joiner
}

func NewMetricsService(st Store, joiner Joiner) MetricsService {
	return &metricsService{store: st, joiner: joiner}
}

func (s *metricsService) DashboardSummary(ctx context.Context) (*model.DashboardSummary, error) {
	snap, err := s.store.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	byInvoice := s.joiner.ExpensesByInvoice(snap.Expenses)

	var (
		netWeight    float64
		totalValue   = decimal.Zero
		totalExpense = decimal.Zero
		totalNet     = decimal.Zero
		perTonSumUSD = decimal.Zero
		pricedCount  int64
		containers   int
	)
	for _, sh := range snap.Shipments {
		containers += len(sh.ContainerIDs)
		netWeight += sh.NetWeight

		exp := TotalExpenseForInvoice(byInvoice[sh.InvoiceNumber])
		totalValue = totalValue.Add(decimal.NewFromFloat(sh.TotalValueVnd))
		totalExpense = totalExpense.Add(exp)
		totalNet = totalNet.Add(NetValue(sh.TotalValueVnd, exp))

		perTon := PricePerMetricTon(sh.TotalValueVnd, sh.NetWeight)
		if !perTon.IsZero() {
			perTonSumUSD = perTonSumUSD.Add(PricePerMetricTonUSD(perTon, sh.ExchangeRate))
			pricedCount++
		}
	}

	avgPerTonUSD := decimal.Zero
	if pricedCount > 0 {
		avgPerTonUSD = perTonSumUSD.Div(decimal.NewFromInt(pricedCount))
	}

	queued := make(map[string]bool, len(snap.WarehouseRecords)+len(snap.CustomerRecords))
	for _, r := range snap.WarehouseRecords {
		queued[r.ContainerNumber] = true
	}
	for _, r := range snap.CustomerRecords {
		queued[r.ContainerNumber] = true
	}
	pending := 0
	for _, entry := range s.joiner.ContainerEntries(snap.Shipments) {
		if !queued[entry.ContainerNumber] {
			pending++
		}
	}

	return &model.DashboardSummary{
		TotalShipments:      len(snap.Shipments),
		TotalContainers:     containers,
		TotalNetWeight:      decimal.NewFromFloat(netWeight).StringFixed(0),
		TotalValueVnd:       totalValue.StringFixed(0),
		TotalExpenseVnd:     totalExpense.StringFixed(0),
		TotalNetValueVnd:    totalNet.StringFixed(0),
		WarehouseReceipts:   len(snap.WarehouseRecords),
		CustomerDeliveries:  len(snap.CustomerRecords),
		PendingContainers:   pending,
		AvgPricePerMTUsd:    avgPerTonUSD.StringFixed(2),
		SnapshotRefreshedAt: snap.FetchedAt.UTC().Format(time.RFC3339),
	}, nil
}

func (s *metricsService) ShipmentRows(ctx context.Context, filter ShipmentFilter) ([]model.ShipmentRow, error) {
	snap, err := s.store.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	byInvoice := s.joiner.ExpensesByInvoice(snap.Expenses)
	rows := make([]model.ShipmentRow, 0, len(snap.Shipments))
	for _, sh := range snap.Shipments {
		if !filter.matches(sh) {
			continue
		}
		exp := TotalExpenseForInvoice(byInvoice[sh.InvoiceNumber])
		perTon := PricePerMetricTon(sh.TotalValueVnd, sh.NetWeight)
		rows = append(rows, model.ShipmentRow{
			ID:             sh.ID,
			InvoiceNumber:  sh.InvoiceNumber,
			BLNumber:       sh.BLNumber,
			GoodsName:      sh.GoodsName,
			ContainerCount: len(sh.ContainerIDs),
			NetWeight:      sh.NetWeight,
			ETA:            sh.ETA,
			TotalValueVnd:  decimal.NewFromFloat(sh.TotalValueVnd).StringFixed(0),
			ExpenseVnd:     exp.StringFixed(0),
			NetValueVnd:    NetValue(sh.TotalValueVnd, exp).StringFixed(0),
			PricePerMTUsd:  PricePerMetricTonUSD(perTon, sh.ExchangeRate).StringFixed(2),
		})
	}
	return rows, nil
}

func (s *metricsService) ExpenseDashboard(ctx context.Context, rng DateRange) (*model.ExpenseDashboard, error) {
	snap, err := s.store.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	total := decimal.Zero
	// A container billed on several expense documents counts once.
	seen := make(map[string]bool)
	rows := make([]model.ExpenseRow, 0, len(snap.Expenses))
	for _, e := range snap.Expenses {
		if !rng.Contains(e.ExpenseDate) {
			continue
		}
		sum := e.Total()
		total = total.Add(sum)
		for _, cn := range e.ContainerNumbers {
			seen[cn] = true
		}
		rows = append(rows, model.ExpenseRow{
			ID:               e.ID,
			InvoiceNumber:    e.InvoiceNumber,
			ContainerNumbers: e.ContainerNumbers,
			ExpenseDate:      e.ExpenseDate,
			Remarks:          e.Remarks,
			TotalVnd:         sum.StringFixed(0),
			CostCount:        len(e.Costs),
		})
	}

	containers := len(seen)
	avg := decimal.Zero
	if containers > 0 {
		avg = total.Div(decimal.NewFromInt(int64(containers)))
	}
	return &model.ExpenseDashboard{
		TotalExpenseVnd: total.StringFixed(0),
		TotalContainers: containers,
		AvgPerContainer: avg.StringFixed(0),
		Rows:            rows,
	}, nil
}
