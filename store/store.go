// Package store is the single write path for the four record
// collections. It loads rows through the workbook adapter, mutates them
// in memory and saves the touched sheets back immediately.
package store

import (
	"errors"
	"strconv"
	"strings"

	"washwear-backend/models"
	"washwear-backend/storage"
)

var (
	ErrClientNotFound = errors.New("client not found")
	ErrOrderNotFound  = errors.New("order not found")
	ErrInvalidStatus  = errors.New("unrecognized order status")
)

type RecordStore struct {
	wb *storage.Workbook
}

func New(wb *storage.Workbook) *RecordStore {
	return &RecordStore{wb: wb}
}

// NextID returns 1 for an empty collection, otherwise max(id)+1. Deleted
// ids are never reused, so ids grow monotonically with gaps allowed.
func NextID(ids []int) int {
	next := 1
	for _, id := range ids {
		if id >= next {
			next = id + 1
		}
	}
	return next
}

// cell reads a column defensively: the workbook reader trims trailing
// empty cells, so rows can be shorter than the header.
func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// parseID coerces an id cell to an integer. Spreadsheet edits can leave
// ids as floats ("3.0") or garbage; garbage reads as 0 and never wins the
// max when the next id is assigned.
func parseID(value string) int {
	if n, err := strconv.Atoi(value); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(value, 64); err == nil {
		return int(f)
	}
	return 0
}

func parseAmount(value string) float64 {
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0
	}
	return f
}

func formatID(id int) string {
	return strconv.Itoa(id)
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// --- Clients ---

func (s *RecordStore) Clients() []models.Client {
	rows := s.wb.Load(storage.SheetClients)
	clients := make([]models.Client, 0, len(rows))
	for _, row := range rows {
		clients = append(clients, models.Client{
			ID:       parseID(cell(row, 0)),
			FullName: cell(row, 1),
			Phone:    cell(row, 2),
			Email:    cell(row, 3),
			Address:  cell(row, 4),
			Notes:    cell(row, 5),
		})
	}
	return clients
}

func (s *RecordStore) saveClients(clients []models.Client) error {
	rows := make([][]string, 0, len(clients))
	for _, c := range clients {
		rows = append(rows, []string{
			formatID(c.ID), c.FullName, c.Phone, c.Email, c.Address, c.Notes,
		})
	}
	return s.wb.Save(storage.SheetClients, rows)
}

func (s *RecordStore) ClientByID(id int) (models.Client, bool) {
	for _, c := range s.Clients() {
		if c.ID == id {
			return c, true
		}
	}
	return models.Client{}, false
}

func (s *RecordStore) AddClient(c models.Client) (models.Client, error) {
	clients := s.Clients()
	ids := make([]int, 0, len(clients))
	for _, existing := range clients {
		ids = append(ids, existing.ID)
	}
	c.ID = NextID(ids)
	clients = append(clients, c)
	if err := s.saveClients(clients); err != nil {
		return models.Client{}, err
	}
	return c, nil
}

// DeleteClient removes the client, every order belonging to it, and every
// payment belonging to those orders. The three sheet saves happen in
// sequence without a transaction. Unknown ids delete nothing and return
// nil.
func (s *RecordStore) DeleteClient(clientID int) error {
	clients := s.Clients()
	kept := clients[:0]
	for _, c := range clients {
		if c.ID != clientID {
			kept = append(kept, c)
		}
	}
	if err := s.saveClients(kept); err != nil {
		return err
	}

	orders := s.Orders()
	removedOrders := make(map[int]bool)
	keptOrders := orders[:0]
	for _, o := range orders {
		if o.ClientID == clientID {
			removedOrders[o.ID] = true
			continue
		}
		keptOrders = append(keptOrders, o)
	}
	if err := s.saveOrders(keptOrders); err != nil {
		return err
	}

	payments := s.Payments()
	keptPayments := payments[:0]
	for _, p := range payments {
		if !removedOrders[p.OrderID] {
			keptPayments = append(keptPayments, p)
		}
	}
	return s.savePayments(keptPayments)
}

// --- Orders ---

func (s *RecordStore) Orders() []models.Order {
	rows := s.wb.Load(storage.SheetOrders)
	orders := make([]models.Order, 0, len(rows))
	for _, row := range rows {
		orders = append(orders, models.Order{
			ID:                  parseID(cell(row, 0)),
			ClientID:            parseID(cell(row, 1)),
			ServiceType:         cell(row, 2),
			WeightCount:         parseAmount(cell(row, 3)),
			PickupDate:          cell(row, 4),
			DueDate:             cell(row, 5),
			Status:              cell(row, 6),
			SpecialInstructions: cell(row, 7),
			DeliveryFee:         parseAmount(cell(row, 8)),
			TotalFee:            parseAmount(cell(row, 9)),
		})
	}
	return orders
}

func (s *RecordStore) saveOrders(orders []models.Order) error {
	rows := make([][]string, 0, len(orders))
	for _, o := range orders {
		rows = append(rows, []string{
			formatID(o.ID),
			formatID(o.ClientID),
			o.ServiceType,
			formatAmount(o.WeightCount),
			o.PickupDate,
			o.DueDate,
			o.Status,
			o.SpecialInstructions,
			formatAmount(o.DeliveryFee),
			formatAmount(o.TotalFee),
		})
	}
	return s.wb.Save(storage.SheetOrders, rows)
}

func (s *RecordStore) OrderByID(id int) (models.Order, bool) {
	for _, o := range s.Orders() {
		if o.ID == id {
			return o, true
		}
	}
	return models.Order{}, false
}

// AddOrder creates an order for an existing client. The total fee is
// computed here, once; later edits never recompute it.
func (s *RecordStore) AddOrder(o models.Order) (models.Order, error) {
	if _, ok := s.ClientByID(o.ClientID); !ok {
		return models.Order{}, ErrClientNotFound
	}
	orders := s.Orders()
	ids := make([]int, 0, len(orders))
	for _, existing := range orders {
		ids = append(ids, existing.ID)
	}
	o.ID = NextID(ids)
	o.TotalFee = models.CalculateFee(o.ServiceType, o.WeightCount, o.DeliveryFee)
	orders = append(orders, o)
	if err := s.saveOrders(orders); err != nil {
		return models.Order{}, err
	}
	return o, nil
}

// UpdateOrderStatus overwrites the status of the matching order and
// nothing else. The status must normalize to one of the four canonical
// values; an unknown order id is a no-op.
func (s *RecordStore) UpdateOrderStatus(orderID int, status string) error {
	canonical, ok := models.NormalizeOrderStatus(status)
	if !ok {
		return ErrInvalidStatus
	}
	orders := s.Orders()
	for i := range orders {
		if orders[i].ID == orderID {
			orders[i].Status = canonical
		}
	}
	return s.saveOrders(orders)
}

// DeleteOrder removes the order and its payments. Sibling orders of the
// same client are untouched. Unknown ids delete nothing and return nil.
func (s *RecordStore) DeleteOrder(orderID int) error {
	orders := s.Orders()
	kept := orders[:0]
	for _, o := range orders {
		if o.ID != orderID {
			kept = append(kept, o)
		}
	}
	if err := s.saveOrders(kept); err != nil {
		return err
	}

	payments := s.Payments()
	keptPayments := payments[:0]
	for _, p := range payments {
		if p.OrderID != orderID {
			keptPayments = append(keptPayments, p)
		}
	}
	return s.savePayments(keptPayments)
}

// --- Payments ---

func (s *RecordStore) Payments() []models.Payment {
	rows := s.wb.Load(storage.SheetPayments)
	payments := make([]models.Payment, 0, len(rows))
	for _, row := range rows {
		payments = append(payments, models.Payment{
			ID:            parseID(cell(row, 0)),
			OrderID:       parseID(cell(row, 1)),
			AmountPaid:    parseAmount(cell(row, 2)),
			PaymentDate:   cell(row, 3),
			PaymentMethod: cell(row, 4),
			PaymentStatus: cell(row, 5),
			Notes:         cell(row, 6),
		})
	}
	return payments
}

func (s *RecordStore) savePayments(payments []models.Payment) error {
	rows := make([][]string, 0, len(payments))
	for _, p := range payments {
		rows = append(rows, []string{
			formatID(p.ID),
			formatID(p.OrderID),
			formatAmount(p.AmountPaid),
			p.PaymentDate,
			p.PaymentMethod,
			p.PaymentStatus,
			p.Notes,
		})
	}
	return s.wb.Save(storage.SheetPayments, rows)
}

func (s *RecordStore) AddPayment(p models.Payment) (models.Payment, error) {
	if _, ok := s.OrderByID(p.OrderID); !ok {
		return models.Payment{}, ErrOrderNotFound
	}
	payments := s.Payments()
	ids := make([]int, 0, len(payments))
	for _, existing := range payments {
		ids = append(ids, existing.ID)
	}
	p.ID = NextID(ids)
	payments = append(payments, p)
	if err := s.savePayments(payments); err != nil {
		return models.Payment{}, err
	}
	return p, nil
}

// DeletePayment removes exactly one payment; nothing cascades from it.
func (s *RecordStore) DeletePayment(paymentID int) error {
	payments := s.Payments()
	kept := payments[:0]
	for _, p := range payments {
		if p.ID != paymentID {
			kept = append(kept, p)
		}
	}
	return s.savePayments(kept)
}

// --- Costs ---

func (s *RecordStore) Costs() []models.Cost {
	rows := s.wb.Load(storage.SheetCosts)
	costs := make([]models.Cost, 0, len(rows))
	for _, row := range rows {
		costs = append(costs, models.Cost{
			ID:            parseID(cell(row, 0)),
			DateIncurred:  cell(row, 1),
			Category:      cell(row, 2),
			Description:   cell(row, 3),
			Amount:        parseAmount(cell(row, 4)),
			FixedVariable: cell(row, 5),
			Notes:         cell(row, 6),
		})
	}
	return costs
}

func (s *RecordStore) saveCosts(costs []models.Cost) error {
	rows := make([][]string, 0, len(costs))
	for _, c := range costs {
		rows = append(rows, []string{
			formatID(c.ID),
			c.DateIncurred,
			c.Category,
			c.Description,
			formatAmount(c.Amount),
			c.FixedVariable,
			c.Notes,
		})
	}
	return s.wb.Save(storage.SheetCosts, rows)
}

func (s *RecordStore) AddCost(c models.Cost) (models.Cost, error) {
	costs := s.Costs()
	ids := make([]int, 0, len(costs))
	for _, existing := range costs {
		ids = append(ids, existing.ID)
	}
	c.ID = NextID(ids)
	costs = append(costs, c)
	if err := s.saveCosts(costs); err != nil {
		return models.Cost{}, err
	}
	return c, nil
}
