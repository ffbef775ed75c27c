package service

import (
	"backoffice/internal/model"
)

// ContainerEntry pairs a container number with the shipment it came from.
// Produced by flattening shipment container lists in document order.
type ContainerEntry struct {
	ContainerNumber string
	Shipment        model.Shipment
}

// Joiner links the flat remote collections by their natural keys: invoice
// number for expenses, container number and uniqueId for containers. Keys are
// matched exactly, case sensitive, no trimming; a record whose key does not
// match joins nothing, which is the desired signal for dirty data.
type Joiner interface {
	ExpensesByInvoice(expenses []model.Expense) map[string][]model.Expense
	ContainerEntries(shipments []model.Shipment) []ContainerEntry
	ContainerIndex(containers []model.Container) map[string]model.Container
	MatchedContainers(shipment model.Shipment, containers []model.Container) []model.Container
}

type exactJoiner struct{}

func NewJoiner() Joiner {
	return exactJoiner{}
}

func (exactJoiner) ExpensesByInvoice(expenses []model.Expense) map[string][]model.Expense {
	byInvoice := make(map[string][]model.Expense, len(expenses))
	for _, e := range expenses {
		byInvoice[e.InvoiceNumber] = append(byInvoice[e.InvoiceNumber], e)
	}
	return byInvoice
}

func (exactJoiner) ContainerEntries(shipments []model.Shipment) []ContainerEntry {
	var entries []ContainerEntry
	for _, s := range shipments {
		for _, cn := range s.ContainerNumber {
			if cn == "" {
				continue
			}
			entries = append(entries, ContainerEntry{ContainerNumber: cn, Shipment: s})
		}
	}
	return entries
}

func (exactJoiner) ContainerIndex(containers []model.Container) map[string]model.Container {
	index := make(map[string]model.Container, len(containers))
	for _, c := range containers {
		if c.UniqueID == "" {
			continue
		}
		index[c.UniqueID] = c
	}
	return index
}

// MatchedContainers resolves a shipment's containerIds against the container
// collection by uniqueId, keeping shipment order. Ids with no matching
// container are skipped.
func (j exactJoiner) MatchedContainers(shipment model.Shipment, containers []model.Container) []model.Container {
	index := j.ContainerIndex(containers)
	var matched []model.Container
	for _, id := range shipment.ContainerIDs {
		if c, ok := index[id]; ok {
			matched = append(matched, c)
		}
	}
	return matched
}
