package service

import (
	"context"
	"fmt"
	"sync"

	"backoffice/internal/model"
	"backoffice/internal/repository"
)

// IntakeState tracks where the single intake session is. Transitions:
// Idle -> ContainerListLoaded (LoadContainers), -> EditingContainer
// (SelectContainer or auto-advance after QueueCurrent), -> Queued (no
// unqueued container left), -> Submitting (CommitAll), -> Idle on success.
type IntakeState int

const (
	StateIdle IntakeState = iota
	StateContainerListLoaded
	StateEditingContainer
	StateQueued
	StateSubmitting
)

func (s IntakeState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateContainerListLoaded:
		return "container_list_loaded"
	case StateEditingContainer:
		return "editing_container"
	case StateQueued:
		return "queued"
	case StateSubmitting:
		return "submitting"
	}
	return "unknown"
}

// IntakeContainer is one selectable container in the session list.
type IntakeContainer struct {
	ContainerNumber string `json:"containerNumber"`
	InvoiceNumber   string `json:"invoiceNumber"`
	BLNumber        string `json:"blNumber"`
	GoodsName       string `json:"goodsName"`
	Recorded        bool   `json:"recorded"`
	Queued          bool   `json:"queued"`
}

// IntakeView is the whole session as the client renders it.
type IntakeView struct {
	State      string               `json:"state"`
	Containers []IntakeContainer    `json:"containers"`
	Queue      []model.IntakeRecord `json:"queue"`
	Current    *model.IntakeRecord  `json:"current,omitempty"`
}

// Broadcaster pushes session events to connected dashboard clients.
type Broadcaster interface {
	BroadcastEvent(event string, data map[string]interface{})
}

// IntakeService drives a single receiving session: load the outstanding
// containers, fill a record per container, queue them, commit the queue in
// one shot. One session at a time; the handlers gate concurrent writers.
type IntakeService interface {
	Load(ctx context.Context, shipmentID string) (*IntakeView, error)
	Select(containerNumber string) (*IntakeView, error)
	Queue(record model.IntakeRecord) (*IntakeView, error)
	Remove(containerNumber string) (*IntakeView, error)
	Commit(ctx context.Context) (*IntakeView, error)
	State() *IntakeView
}

type intakeService struct {
	store     Store
	joiner    Joiner
	warehouse repository.IntakeRecordRepository
	customer  repository.IntakeRecordRepository
	notify    Broadcaster

	mu       sync.Mutex
	state    IntakeState
	entries  []ContainerEntry
	details  map[string]model.Container
	recorded map[string]bool
	queue    []model.IntakeRecord
	current  *model.IntakeRecord
	sticky   model.IntakeRecord
}

func NewIntakeService(
	st Store,
	joiner Joiner,
	warehouse, customer repository.IntakeRecordRepository,
	notify Broadcaster,
) IntakeService {
	return &intakeService{
		store:     st,
		joiner:    joiner,
		warehouse: warehouse,
		customer:  customer,
		notify:    notify,
		state:     StateIdle,
		sticky:    model.IntakeRecord{WarehouseName: model.DefaultWarehouseName},
	}
}

// Load starts a session for one shipment: the container list holds only that
// shipment's containers and any previously queued work is dropped.
func (s *intakeService) Load(ctx context.Context, shipmentID string) (*IntakeView, error) {
	if shipmentID == "" {
		return nil, fmt.Errorf("shipmentId is required")
	}
	snap, err := s.store.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	var shipment *model.Shipment
	for i := range snap.Shipments {
		if snap.Shipments[i].ID == shipmentID {
			shipment = &snap.Shipments[i]
			break
		}
	}
	if shipment == nil {
		return nil, fmt.Errorf("shipment %q not found", shipmentID)
	}
	containers, err := s.store.Containers(ctx)
	if err != nil {
		return nil, err
	}

	recorded := make(map[string]bool, len(snap.WarehouseRecords)+len(snap.CustomerRecords))
	for _, r := range snap.WarehouseRecords {
		recorded[r.ContainerNumber] = true
	}
	for _, r := range snap.CustomerRecords {
		recorded[r.ContainerNumber] = true
	}

	details := make(map[string]model.Container, len(containers))
	for _, c := range containers {
		if c.ContainerNumber != "" {
			details[c.ContainerNumber] = c
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = s.joiner.ContainerEntries([]model.Shipment{*shipment})
	s.details = details
	s.recorded = recorded
	s.queue = nil
	s.current = nil
	s.sticky = model.IntakeRecord{WarehouseName: model.DefaultWarehouseName}
	s.state = StateContainerListLoaded
	return s.viewLocked(), nil
}

func (s *intakeService) Select(containerNumber string) (*IntakeView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateIdle || s.state == StateSubmitting {
		return nil, fmt.Errorf("no container list loaded")
	}
	entry, ok := s.findEntry(containerNumber)
	if !ok {
		return nil, fmt.Errorf("container %q is not in the loaded list", containerNumber)
	}
	if queued, ok := s.queuedRecord(containerNumber); ok {
		// Re-selecting a queued container reopens its saved values.
		cp := queued
		s.current = &cp
	} else {
		s.current = s.prefill(entry)
	}
	s.state = StateEditingContainer
	return s.viewLocked(), nil
}

// Queue upserts the record into the session queue keyed by container number,
// keeping queue order for an existing entry, then advances to the next
// container that has neither a remote record nor a queued entry. Operational
// form values carry over to the next prefill; the warehouse name always
// resets to the default.
func (s *intakeService) Queue(record model.IntakeRecord) (*IntakeView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateEditingContainer {
		return nil, fmt.Errorf("no container selected")
	}
	if record.ContainerNumber == "" {
		return nil, fmt.Errorf("containerNumber is required")
	}
	if record.ReceivedDate == "" {
		return nil, fmt.Errorf("receivedDate is required")
	}
	if record.SellingDirect && record.SaleTarget == model.SaleTargetCustomer && record.CustomerName == "" {
		return nil, fmt.Errorf("customerName is required for direct sales")
	}

	replaced := false
	for i := range s.queue {
		if s.queue[i].ContainerNumber == record.ContainerNumber {
			s.queue[i] = record
			replaced = true
			break
		}
	}
	if !replaced {
		s.queue = append(s.queue, record)
	}

	s.sticky = record
	s.sticky.WarehouseName = model.DefaultWarehouseName

	if next, ok := s.nextUnqueued(); ok {
		s.current = s.prefill(next)
		s.state = StateEditingContainer
	} else {
		s.current = nil
		if len(s.queue) > 0 {
			s.state = StateQueued
		} else {
			s.state = StateContainerListLoaded
		}
	}
	return s.viewLocked(), nil
}

func (s *intakeService) Remove(containerNumber string) (*IntakeView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateIdle || s.state == StateSubmitting {
		return nil, fmt.Errorf("no active session")
	}
	kept := s.queue[:0]
	found := false
	for _, r := range s.queue {
		if r.ContainerNumber == containerNumber {
			found = true
			continue
		}
		kept = append(kept, r)
	}
	if !found {
		return nil, fmt.Errorf("container %q is not queued", containerNumber)
	}
	s.queue = kept
	if len(s.queue) == 0 && s.state == StateQueued {
		s.state = StateContainerListLoaded
	}
	return s.viewLocked(), nil
}

// Commit posts every queued record, warehouse and customer deliveries to
// their own collections, one create per record, concurrently. If any create
// fails the whole queue is kept so the operator can retry; records that did
// land remotely stay there, commit is not transactional.
func (s *intakeService) Commit(ctx context.Context) (*IntakeView, error) {
	s.mu.Lock()
	if s.state == StateSubmitting {
		s.mu.Unlock()
		return nil, fmt.Errorf("commit already in progress")
	}
	if len(s.queue) == 0 {
		s.mu.Unlock()
		return nil, fmt.Errorf("queue is empty")
	}
	prior := s.state
	pending := make([]model.IntakeRecord, len(s.queue))
	copy(pending, s.queue)
	s.state = StateSubmitting
	s.mu.Unlock()

	var wg sync.WaitGroup
	errs := make([]error, len(pending))
	for i, rec := range pending {
		wg.Add(1)
		go func(i int, rec model.IntakeRecord) {
			defer wg.Done()
			repo := s.warehouse
			if rec.ForCustomer() {
				repo = s.customer
			}
			_, errs[i] = repo.Create(ctx, rec)
		}(i, rec)
	}
	wg.Wait()

	var firstErr error
	for _, err := range errs {
		if err != nil {
			firstErr = err
			break
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if firstErr != nil {
		s.state = prior
		return nil, fmt.Errorf("commit failed, queue kept: %w", firstErr)
	}

	// Session done. The next batch starts with a fresh Load.
	s.entries = nil
	s.details = nil
	s.recorded = nil
	s.queue = nil
	s.current = nil
	s.state = StateIdle
	s.store.Invalidate()
	if s.notify != nil {
		s.notify.BroadcastEvent("intake_committed", map[string]interface{}{
			"count": len(pending),
		})
	}
	return s.viewLocked(), nil
}

func (s *intakeService) State() *IntakeView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.viewLocked()
}

func (s *intakeService) findEntry(containerNumber string) (ContainerEntry, bool) {
	for _, e := range s.entries {
		if e.ContainerNumber == containerNumber {
			return e, true
		}
	}
	return ContainerEntry{}, false
}

func (s *intakeService) queuedRecord(containerNumber string) (model.IntakeRecord, bool) {
	for _, r := range s.queue {
		if r.ContainerNumber == containerNumber {
			return r, true
		}
	}
	return model.IntakeRecord{}, false
}

func (s *intakeService) isQueued(containerNumber string) bool {
	_, ok := s.queuedRecord(containerNumber)
	return ok
}

func (s *intakeService) nextUnqueued() (ContainerEntry, bool) {
	for _, e := range s.entries {
		if s.recorded[e.ContainerNumber] || s.isQueued(e.ContainerNumber) {
			continue
		}
		return e, true
	}
	return ContainerEntry{}, false
}

// prefill seeds the form from the shipment and the sticky operational values
// from the previous entry. Weights and bag counts come from the container
// detail record when one matches the container number, otherwise the
// shipment-level figures stand in. Value is always the shipment total.
func (s *intakeService) prefill(entry ContainerEntry) *model.IntakeRecord {
	sh := entry.Shipment
	rec := model.IntakeRecord{
		ContainerNumber: entry.ContainerNumber,
		InvoiceNumber:   sh.InvoiceNumber,
		BLNumber:        sh.BLNumber,
		ShippingLine:    sh.ShippingLine,
		NameOfGoods:     sh.GoodsName,
		ArrivalPort:     sh.ArrivalPort,
		WarehouseName:   s.sticky.WarehouseName,
		ReceivedDate:    s.sticky.ReceivedDate,
		TruckNumber:     s.sticky.TruckNumber,
		TruckingAgent:   s.sticky.TruckingAgent,
		CHA:             s.sticky.CHA,
		SellingDirect:   s.sticky.SellingDirect,
		SaleTarget:      s.sticky.SaleTarget,
		CustomerName:    s.sticky.CustomerName,
	}
	rec.GrossWeight = sh.GrossWeight
	rec.NetWeight = sh.NetWeight
	rec.NumberOfBags = sh.NoOfBags
	rec.Value = sh.TotalValueVnd
	if d, ok := s.details[entry.ContainerNumber]; ok {
		if d.GrossWeight > 0 {
			rec.GrossWeight = d.GrossWeight
		}
		if d.NetWeight > 0 {
			rec.NetWeight = d.NetWeight
		}
		if d.NoOfBags > 0 {
			rec.NumberOfBags = d.NoOfBags
		}
	}
	return &rec
}

func (s *intakeService) viewLocked() *IntakeView {
	view := &IntakeView{
		State: s.state.String(),
		Queue: append([]model.IntakeRecord(nil), s.queue...),
	}
	for _, e := range s.entries {
		view.Containers = append(view.Containers, IntakeContainer{
			ContainerNumber: e.ContainerNumber,
			InvoiceNumber:   e.Shipment.InvoiceNumber,
			BLNumber:        e.Shipment.BLNumber,
			GoodsName:       e.Shipment.GoodsName,
			Recorded:        s.recorded[e.ContainerNumber],
			Queued:          s.isQueued(e.ContainerNumber),
		})
	}
	if s.current != nil {
		cp := *s.current
		view.Current = &cp
	}
	return view
}
