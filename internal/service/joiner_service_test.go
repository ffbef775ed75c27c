package service

import (
	"testing"

	"backoffice/internal/model"
)

func TestExpensesByInvoiceExactMatch(t *testing.T) {
	j := NewJoiner()
	expenses := []model.Expense{
		{ID: "1", InvoiceNumber: "INV-001"},
		{ID: "2", InvoiceNumber: "INV-001"},
		{ID: "3", InvoiceNumber: "inv-001"},
		{ID: "4", InvoiceNumber: "INV-001 "},
	}

	byInvoice := j.ExpensesByInvoice(expenses)
	if got := len(byInvoice["INV-001"]); got != 2 {
		t.Errorf("INV-001: got %d expenses, want 2; keys must not be normalized", got)
	}
	if got := len(byInvoice["inv-001"]); got != 1 {
		t.Errorf("inv-001: got %d expenses, want 1", got)
	}
	if got := len(byInvoice["INV-001 "]); got != 1 {
		t.Errorf("trailing-space key: got %d expenses, want 1", got)
	}
}

func TestContainerEntriesFlattensInOrder(t *testing.T) {
	j := NewJoiner()
	shipments := []model.Shipment{
		{InvoiceNumber: "INV-001", ContainerNumber: model.FlexStrings{"C1", "C2"}},
		{InvoiceNumber: "INV-002", ContainerNumber: model.FlexStrings{"C3"}},
		{InvoiceNumber: "INV-003", ContainerNumber: model.FlexStrings{"", "C4"}},
	}

	entries := j.ContainerEntries(shipments)
	want := []string{"C1", "C2", "C3", "C4"}
	if len(entries) != len(want) {
		t.Fatalf("got %d entries, want %d", len(entries), len(want))
	}
	for i, w := range want {
		if entries[i].ContainerNumber != w {
			t.Errorf("entry %d: got %s, want %s", i, entries[i].ContainerNumber, w)
		}
	}
	if entries[2].Shipment.InvoiceNumber != "INV-002" {
		t.Errorf("entry C3 should carry its shipment, got %s", entries[2].Shipment.InvoiceNumber)
	}
}

func TestMatchedContainersByUniqueID(t *testing.T) {
	j := NewJoiner()
	containers := []model.Container{
		{UniqueID: "uid-1", ContainerNumber: "C1"},
		{UniqueID: "uid-2", ContainerNumber: "C2"},
		{UniqueID: "", ContainerNumber: "C3"},
	}
	shipment := model.Shipment{ContainerIDs: []string{"uid-2", "uid-missing", "uid-1"}}

	matched := j.MatchedContainers(shipment, containers)
	if len(matched) != 2 {
		t.Fatalf("got %d matches, want 2", len(matched))
	}
	if matched[0].ContainerNumber != "C2" || matched[1].ContainerNumber != "C1" {
		t.Errorf("matches must keep shipment id order, got %s then %s",
			matched[0].ContainerNumber, matched[1].ContainerNumber)
	}
}
