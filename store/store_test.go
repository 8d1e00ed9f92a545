package store

import (
	"path/filepath"
	"testing"

	"washwear-backend/models"
	"washwear-backend/reports"
	"washwear-backend/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*RecordStore, *storage.Workbook) {
	t.Helper()
	wb := storage.NewWorkbook(filepath.Join(t.TempDir(), "cms_data.xlsx"))
	require.NoError(t, wb.Initialize())
	return New(wb), wb
}

func addClient(t *testing.T, s *RecordStore, name string) models.Client {
	t.Helper()
	client, err := s.AddClient(models.Client{FullName: name, Phone: "677000001"})
	require.NoError(t, err)
	return client
}

func addOrder(t *testing.T, s *RecordStore, clientID int, service string, weight float64) models.Order {
	t.Helper()
	order, err := s.AddOrder(models.Order{
		ClientID:    clientID,
		ServiceType: service,
		WeightCount: weight,
		PickupDate:  "2025-08-01",
		DueDate:     "2025-08-03",
		Status:      models.StatusScheduledPickup,
	})
	require.NoError(t, err)
	return order
}

func addPayment(t *testing.T, s *RecordStore, orderID int, amount float64) models.Payment {
	t.Helper()
	payment, err := s.AddPayment(models.Payment{
		OrderID:       orderID,
		AmountPaid:    amount,
		PaymentDate:   "2025-08-02",
		PaymentMethod: models.MethodCash,
		PaymentStatus: models.PaymentPartial,
	})
	require.NoError(t, err)
	return payment
}

func TestNextID(t *testing.T) {
	assert.Equal(t, 1, NextID(nil))
	assert.Equal(t, 1, NextID([]int{}))
	assert.Equal(t, 6, NextID([]int{1, 3, 5}))
	assert.Equal(t, 6, NextID([]int{5, 1, 3}))
}

func TestNextIDToleratesStrayIDValues(t *testing.T) {
	s, wb := newTestStore(t)

	// Hand-edited sheets can hold float or garbage ids; the store coerces
	// them instead of failing and keeps assigning past the real max.
	require.NoError(t, wb.Save(storage.SheetClients, [][]string{
		{"1", "Ama", "677000001", "a@example.com", "Douala", "x"},
		{"3.0", "Bessem", "677000002", "b@example.com", "Limbe", "x"},
		{"junk", "Chi", "677000003", "c@example.com", "Buea", "x"},
	}))

	client := addClient(t, s, "Didi")
	assert.Equal(t, 4, client.ID)
}

func TestAddClientAssignsSequentialIDs(t *testing.T) {
	s, _ := newTestStore(t)

	first := addClient(t, s, "Ama")
	second := addClient(t, s, "Bessem")

	assert.Equal(t, 1, first.ID)
	assert.Equal(t, 2, second.ID)
	assert.Len(t, s.Clients(), 2)
}

func TestIDsAreNeverReused(t *testing.T) {
	s, _ := newTestStore(t)

	addClient(t, s, "Ama")
	second := addClient(t, s, "Bessem")
	require.NoError(t, s.DeleteClient(second.ID))

	third := addClient(t, s, "Chi")
	assert.Equal(t, 3, third.ID)
}

func TestAddOrderComputesTotalFeeOnce(t *testing.T) {
	s, _ := newTestStore(t)
	client := addClient(t, s, "Ama")

	order := addOrder(t, s, client.ID, "WDF (Wash, Dry, Fold)", 10)
	assert.Equal(t, 1, order.ID)
	assert.InDelta(t, 5000, order.TotalFee, 1e-9)

	// A status change must not touch the fee.
	require.NoError(t, s.UpdateOrderStatus(order.ID, models.StatusCompleted))
	got, found := s.OrderByID(order.ID)
	require.True(t, found)
	assert.InDelta(t, 5000, got.TotalFee, 1e-9)
}

func TestAddOrderRequiresExistingClient(t *testing.T) {
	s, _ := newTestStore(t)

	_, err := s.AddOrder(models.Order{ClientID: 42, ServiceType: "WDF"})
	assert.ErrorIs(t, err, ErrClientNotFound)
	assert.Empty(t, s.Orders())
}

func TestAddPaymentRequiresExistingOrder(t *testing.T) {
	s, _ := newTestStore(t)

	_, err := s.AddPayment(models.Payment{OrderID: 42, AmountPaid: 1000})
	assert.ErrorIs(t, err, ErrOrderNotFound)
	assert.Empty(t, s.Payments())
}

func TestDeleteClientCascadesTwoLevels(t *testing.T) {
	s, _ := newTestStore(t)

	ama := addClient(t, s, "Ama")
	bessem := addClient(t, s, "Bessem")

	o1 := addOrder(t, s, ama.ID, "WDF", 5)
	o2 := addOrder(t, s, ama.ID, "Bedding", 1)
	o3 := addOrder(t, s, bessem.ID, "Iron Only", 2)

	addPayment(t, s, o1.ID, 1000)
	addPayment(t, s, o1.ID, 500)
	p3 := addPayment(t, s, o3.ID, 400)

	require.NoError(t, s.DeleteClient(ama.ID))

	clients := s.Clients()
	require.Len(t, clients, 1)
	assert.Equal(t, bessem.ID, clients[0].ID)

	orders := s.Orders()
	require.Len(t, orders, 1)
	assert.Equal(t, o3.ID, orders[0].ID)
	assert.NotEqual(t, o1.ID, orders[0].ID)
	assert.NotEqual(t, o2.ID, orders[0].ID)

	payments := s.Payments()
	require.Len(t, payments, 1)
	assert.Equal(t, p3.ID, payments[0].ID)
}

func TestDeleteOrderCascadesToItsPaymentsOnly(t *testing.T) {
	s, _ := newTestStore(t)

	ama := addClient(t, s, "Ama")
	o1 := addOrder(t, s, ama.ID, "WDF", 5)
	o2 := addOrder(t, s, ama.ID, "WDI", 3)

	addPayment(t, s, o1.ID, 1000)
	p2 := addPayment(t, s, o2.ID, 700)

	require.NoError(t, s.DeleteOrder(o1.ID))

	// The sibling order of the same client stays.
	orders := s.Orders()
	require.Len(t, orders, 1)
	assert.Equal(t, o2.ID, orders[0].ID)

	payments := s.Payments()
	require.Len(t, payments, 1)
	assert.Equal(t, p2.ID, payments[0].ID)
}

func TestDeletePaymentRemovesExactlyOneRow(t *testing.T) {
	s, _ := newTestStore(t)

	ama := addClient(t, s, "Ama")
	order := addOrder(t, s, ama.ID, "WDF", 5)
	p1 := addPayment(t, s, order.ID, 1000)
	p2 := addPayment(t, s, order.ID, 500)

	require.NoError(t, s.DeletePayment(p1.ID))

	payments := s.Payments()
	require.Len(t, payments, 1)
	assert.Equal(t, p2.ID, payments[0].ID)
	assert.Len(t, s.Orders(), 1)
	assert.Len(t, s.Clients(), 1)
}

func TestDeletesAreLenientForUnknownIDs(t *testing.T) {
	s, _ := newTestStore(t)

	ama := addClient(t, s, "Ama")
	order := addOrder(t, s, ama.ID, "WDF", 5)
	addPayment(t, s, order.ID, 1000)

	require.NoError(t, s.DeleteClient(99))
	require.NoError(t, s.DeleteOrder(99))
	require.NoError(t, s.DeletePayment(99))

	assert.Len(t, s.Clients(), 1)
	assert.Len(t, s.Orders(), 1)
	assert.Len(t, s.Payments(), 1)
}

func TestUpdateOrderStatusChangesOnlyStatus(t *testing.T) {
	s, _ := newTestStore(t)

	ama := addClient(t, s, "Ama")
	order := addOrder(t, s, ama.ID, "WDF (Wash, Dry, Fold)", 10)

	require.NoError(t, s.UpdateOrderStatus(order.ID, "completed"))

	got, found := s.OrderByID(order.ID)
	require.True(t, found)
	assert.Equal(t, models.StatusCompleted, got.Status)

	expected := order
	expected.Status = models.StatusCompleted
	assert.Equal(t, expected, got)
}

func TestUpdateOrderStatusRejectsUnknownValues(t *testing.T) {
	s, _ := newTestStore(t)

	ama := addClient(t, s, "Ama")
	order := addOrder(t, s, ama.ID, "WDF", 5)

	err := s.UpdateOrderStatus(order.ID, "Shipped")
	assert.ErrorIs(t, err, ErrInvalidStatus)

	got, found := s.OrderByID(order.ID)
	require.True(t, found)
	assert.Equal(t, models.StatusScheduledPickup, got.Status)
}

func TestUpdateOrderStatusUnknownIDIsNoOp(t *testing.T) {
	s, _ := newTestStore(t)

	ama := addClient(t, s, "Ama")
	order := addOrder(t, s, ama.ID, "WDF", 5)

	require.NoError(t, s.UpdateOrderStatus(99, models.StatusReady))

	got, found := s.OrderByID(order.ID)
	require.True(t, found)
	assert.Equal(t, models.StatusScheduledPickup, got.Status)
}

// The full lifecycle from the books' point of view: bill, collect part of
// it, then void the order and confirm the balance settles to zero.
func TestOrderLifecycleBalances(t *testing.T) {
	s, _ := newTestStore(t)

	ama, err := s.AddClient(models.Client{FullName: "Ama"})
	require.NoError(t, err)
	assert.Equal(t, 1, ama.ID)

	order, err := s.AddOrder(models.Order{
		ClientID:    ama.ID,
		ServiceType: "WDF (Wash, Dry, Fold)",
		WeightCount: 10,
		DeliveryFee: 0,
		PickupDate:  "2025-08-01",
		DueDate:     "2025-08-03",
		Status:      models.StatusScheduledPickup,
	})
	require.NoError(t, err)
	assert.InDelta(t, 5000, order.TotalFee, 1e-9)

	addPayment(t, s, order.ID, 2000)

	balance := reports.BalanceForClient(ama.ID, s.Orders(), s.Payments())
	assert.InDelta(t, 2000, balance.TotalSpent, 1e-9)
	assert.InDelta(t, 3000, balance.TotalDue, 1e-9)

	require.NoError(t, s.DeleteOrder(order.ID))
	assert.Empty(t, s.Payments())

	balance = reports.BalanceForClient(ama.ID, s.Orders(), s.Payments())
	assert.InDelta(t, 0, balance.TotalSpent, 1e-9)
	assert.InDelta(t, 0, balance.TotalDue, 1e-9)
}
