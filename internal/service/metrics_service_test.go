package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"

	"backoffice/internal/model"
	"backoffice/internal/store"
)

func amount(v int64) model.Amount {
	return model.NewAmount(decimal.NewFromInt(v))
}

func TestNetValueAddsExpensesToValue(t *testing.T) {
	exp := decimal.NewFromInt(5_000_000)
	got := NetValue(100_000_000, exp)
	if got.String() != "105000000" {
		t.Errorf("net value: got %s, want 105000000", got)
	}
}

func TestNetValueZeroExpenses(t *testing.T) {
	got := NetValue(100_000_000, decimal.Zero)
	if got.String() != "100000000" {
		t.Errorf("net value with no expenses must equal total value, got %s", got)
	}
}

func TestPricePerMetricTon(t *testing.T) {
	// 100,000,000 VND over 50,000 kg is 2,000,000 VND per ton.
	got := PricePerMetricTon(100_000_000, 50_000)
	if got.String() != "2000000" {
		t.Errorf("got %s, want 2000000", got)
	}
}

func TestPricePerMetricTonZeroWeight(t *testing.T) {
	if got := PricePerMetricTon(100_000_000, 0); !got.IsZero() {
		t.Errorf("zero weight must yield zero, got %s", got)
	}
	if got := PricePerMetricTon(100_000_000, -5); !got.IsZero() {
		t.Errorf("negative weight must yield zero, got %s", got)
	}
}

func TestPricePerMetricTonUSDDefaultRate(t *testing.T) {
	perTon := decimal.NewFromInt(24_500_000)
	got := PricePerMetricTonUSD(perTon, 0)
	if got.StringFixed(2) != "1000.00" {
		t.Errorf("default rate conversion: got %s, want 1000.00", got.StringFixed(2))
	}
	got = PricePerMetricTonUSD(perTon, 25000)
	if got.StringFixed(2) != "980.00" {
		t.Errorf("explicit rate conversion: got %s, want 980.00", got.StringFixed(2))
	}
}

func TestDateRangeContains(t *testing.T) {
	cases := []struct {
		name     string
		from, to string
		date     string
		want     bool
	}{
		{"both unset", "", "", "garbage", true},
		{"both unset empty date", "", "", "", true},
		{"inside", "2026-01-01", "2026-01-31", "2026-01-15", true},
		{"on lower bound", "2026-01-01", "2026-01-31", "2026-01-01", true},
		{"on upper bound", "2026-01-01", "2026-01-31", "2026-01-31", true},
		{"before", "2026-01-01", "2026-01-31", "2025-12-31", false},
		{"after", "2026-01-01", "2026-01-31", "2026-02-01", false},
		{"only from", "2026-01-01", "", "2027-06-01", true},
		{"only to", "", "2026-01-31", "2020-01-01", true},
		{"bound set unparseable date", "2026-01-01", "", "not a date", false},
		{"rfc3339 record date", "2026-01-01", "2026-01-31", "2026-01-10T08:30:00Z", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rng := ParseDateRange(tc.from, tc.to)
			if got := rng.Contains(tc.date); got != tc.want {
				t.Errorf("Contains(%q) with [%q, %q]: got %v, want %v",
					tc.date, tc.from, tc.to, got, tc.want)
			}
		})
	}
}

func TestShipmentRowsJoinAndDerive(t *testing.T) {
	st := &fakeStore{snapshot: store.Snapshot{
		Shipments: []model.Shipment{
			{
				ID:              "s1",
				InvoiceNumber:   "INV-001",
				ContainerNumber: model.FlexStrings{"C1", "C2", "C2-DUP"},
				ContainerIDs:    []string{"cid-1", "cid-2"},
				NetWeight:       50_000,
				TotalValueVnd:   100_000_000,
				ExchangeRate:    25_000,
				ETA:             "2026-01-15",
			},
			{
				ID:            "s2",
				InvoiceNumber: "INV-002",
				NetWeight:     0,
				TotalValueVnd: 40_000_000,
				ETA:           "2026-02-20",
			},
		},
		Expenses: []model.Expense{
			{InvoiceNumber: "INV-001", Costs: []model.CostLine{{CostType: "THC", Amount: amount(5_000_000)}}},
			{InvoiceNumber: "INV-999", Costs: []model.CostLine{{CostType: "THC", Amount: amount(9_000_000)}}},
		},
	}}
	svc := NewMetricsService(st, NewJoiner())

	rows, err := svc.ShipmentRows(context.Background(), ShipmentFilter{})
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}

	r1 := rows[0]
	if r1.ExpenseVnd != "5000000" {
		t.Errorf("expense: got %s, want 5000000", r1.ExpenseVnd)
	}
	if r1.NetValueVnd != "105000000" {
		t.Errorf("net value: got %s, want 105000000", r1.NetValueVnd)
	}
	// The count follows the linked container documents, not the number list.
	if r1.ContainerCount != 2 {
		t.Errorf("container count: got %d, want 2", r1.ContainerCount)
	}
	// 100M VND / 50t = 2M VND/t, at 25000 VND/USD = 80 USD/t.
	if r1.PricePerMTUsd != "80.00" {
		t.Errorf("price per MT: got %s, want 80.00", r1.PricePerMTUsd)
	}

	r2 := rows[1]
	if r2.ExpenseVnd != "0" {
		t.Errorf("unmatched invoice expense: got %s, want 0", r2.ExpenseVnd)
	}
	if r2.NetValueVnd != "40000000" {
		t.Errorf("net value without expenses: got %s, want 40000000", r2.NetValueVnd)
	}
	if r2.PricePerMTUsd != "0.00" {
		t.Errorf("zero weight price: got %s, want 0.00", r2.PricePerMTUsd)
	}
}

func TestShipmentRowsFilters(t *testing.T) {
	st := &fakeStore{snapshot: store.Snapshot{
		Shipments: []model.Shipment{
			{ID: "s1", InvoiceNumber: "INV-001", GoodsName: "Rice 5%", ContainerNumber: model.FlexStrings{"TCLU1"}, ETA: "2026-03-15", CreatedAt: "2026-01-15T09:00:00Z"},
			{ID: "s2", InvoiceNumber: "INV-002", GoodsName: "DORB", ContainerNumber: model.FlexStrings{"MSKU2"}, ETA: "2026-01-05", CreatedAt: "2026-03-01T09:00:00Z"},
		},
	}}
	svc := NewMetricsService(st, NewJoiner())
	ctx := context.Background()

	rows, err := svc.ShipmentRows(ctx, ShipmentFilter{Search: "tclu"})
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 1 || rows[0].ID != "s1" {
		t.Errorf("container search: got %v", rows)
	}

	// Invoice matches a partial number regardless of case.
	rows, _ = svc.ShipmentRows(ctx, ShipmentFilter{Invoice: "inv-002"})
	if len(rows) != 1 || rows[0].ID != "s2" {
		t.Errorf("invoice filter: got %v", rows)
	}
	rows, _ = svc.ShipmentRows(ctx, ShipmentFilter{Invoice: "002"})
	if len(rows) != 1 || rows[0].ID != "s2" {
		t.Errorf("invoice substring filter: got %v", rows)
	}

	// The range applies to when the record was created, not the ETA.
	rows, _ = svc.ShipmentRows(ctx, ShipmentFilter{Range: ParseDateRange("2026-02-01", "")})
	if len(rows) != 1 || rows[0].ID != "s2" {
		t.Errorf("created range filter: got %v", rows)
	}
}

func TestExpenseDashboardTotals(t *testing.T) {
	st := &fakeStore{snapshot: store.Snapshot{
		Expenses: []model.Expense{
			{
				ID:               "e1",
				InvoiceNumber:    "INV-001",
				ContainerNumbers: []string{"C1", "C2"},
				ExpenseDate:      "2026-01-10",
				Costs: []model.CostLine{
					{CostType: "Custom clearance", Amount: amount(3_000_000)},
					{CostType: "Local charges", Amount: amount(1_000_000)},
				},
			},
			{
				ID:               "e2",
				InvoiceNumber:    "INV-002",
				ContainerNumbers: []string{"C2", "C3"},
				ExpenseDate:      "2026-02-10",
				Costs:            []model.CostLine{{CostType: "Trucking fee", Amount: amount(2_000_000)}},
			},
		},
	}}
	svc := NewMetricsService(st, NewJoiner())

	dash, err := svc.ExpenseDashboard(context.Background(), DateRange{})
	if err != nil {
		t.Fatal(err)
	}
	if dash.TotalExpenseVnd != "6000000" {
		t.Errorf("total: got %s, want 6000000", dash.TotalExpenseVnd)
	}
	// C2 appears on both documents and counts once.
	if dash.TotalContainers != 3 {
		t.Errorf("containers: got %d, want 3", dash.TotalContainers)
	}
	if dash.AvgPerContainer != "2000000" {
		t.Errorf("avg: got %s, want 2000000", dash.AvgPerContainer)
	}

	bounded, err := svc.ExpenseDashboard(context.Background(), ParseDateRange("2026-02-01", ""))
	if err != nil {
		t.Fatal(err)
	}
	if len(bounded.Rows) != 1 || bounded.Rows[0].ID != "e2" {
		t.Errorf("date bounded rows: got %v", bounded.Rows)
	}
}

func TestDashboardSummaryPendingContainers(t *testing.T) {
	st := &fakeStore{snapshot: store.Snapshot{
		Shipments: []model.Shipment{
			{
				InvoiceNumber:   "INV-001",
				ContainerNumber: model.FlexStrings{"C1", "C2", "C3"},
				ContainerIDs:    []string{"cid-1", "cid-2"},
			},
		},
		WarehouseRecords: []model.IntakeRecord{{ContainerNumber: "C1"}},
		CustomerRecords:  []model.IntakeRecord{{ContainerNumber: "C3"}},
	}}
	svc := NewMetricsService(st, NewJoiner())

	summary, err := svc.DashboardSummary(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if summary.PendingContainers != 1 {
		t.Errorf("pending: got %d, want 1", summary.PendingContainers)
	}
	// Totals follow the linked container documents; the pending count walks
	// the container number list.
	if summary.TotalContainers != 2 {
		t.Errorf("total containers: got %d, want 2", summary.TotalContainers)
	}
	if summary.WarehouseReceipts != 1 || summary.CustomerDeliveries != 1 {
		t.Errorf("receipt counts: got %d/%d, want 1/1",
			summary.WarehouseReceipts, summary.CustomerDeliveries)
	}
}
