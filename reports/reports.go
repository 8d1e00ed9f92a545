// Package reports derives read-only views from the record collections.
// Every query recomputes from the rows it is given; nothing is cached.
// Reference dates are explicit parameters so the queries stay
// deterministic and free of ambient state.
package reports

import (
	"sort"
	"time"

	"washwear-backend/models"
	"washwear-backend/utils"
)

// Summary is the overview block: headline counts and money totals.
type Summary struct {
	TotalClients       int     `json:"totalClients"`
	TotalOrders        int     `json:"totalOrders"`
	TotalRevenue       float64 `json:"totalRevenue"`
	TotalCosts         float64 `json:"totalCosts"`
	TotalProfit        float64 `json:"totalProfit"`
	PendingOrders      int     `json:"pendingOrders"`
	CompletedOrders    int     `json:"completedOrders"`
	OutstandingBalance float64 `json:"outstandingBalance"`
}

// Overview computes the headline totals. The outstanding balance is
// global (billed fees minus all payments) and goes negative when clients
// overpay; that is reported as-is.
func Overview(clients []models.Client, orders []models.Order, payments []models.Payment, costs []models.Cost) Summary {
	s := Summary{
		TotalClients: len(clients),
		TotalOrders:  len(orders),
	}
	var billed float64
	for _, o := range orders {
		billed += o.TotalFee
		if o.Status == models.StatusCompleted {
			s.CompletedOrders++
		} else {
			s.PendingOrders++
		}
	}
	for _, p := range payments {
		s.TotalRevenue += p.AmountPaid
	}
	for _, c := range costs {
		s.TotalCosts += c.Amount
	}
	s.TotalProfit = s.TotalRevenue - s.TotalCosts
	s.OutstandingBalance = billed - s.TotalRevenue
	return s
}

type ClientRevenue struct {
	ClientID  int     `json:"clientId"`
	FullName  string  `json:"fullName"`
	TotalPaid float64 `json:"totalPaid"`
}

// TopClients joins payments through orders to clients, sums what each
// client paid and returns the top `limit` by that sum. Ties keep the
// clients' stored order.
func TopClients(clients []models.Client, orders []models.Order, payments []models.Payment, limit int) []ClientRevenue {
	orderClient := make(map[int]int, len(orders))
	for _, o := range orders {
		orderClient[o.ID] = o.ClientID
	}
	paidByClient := make(map[int]float64)
	for _, p := range payments {
		if clientID, ok := orderClient[p.OrderID]; ok {
			paidByClient[clientID] += p.AmountPaid
		}
	}

	ranked := make([]ClientRevenue, 0, len(clients))
	for _, c := range clients {
		if total, ok := paidByClient[c.ID]; ok {
			ranked = append(ranked, ClientRevenue{ClientID: c.ID, FullName: c.FullName, TotalPaid: total})
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].TotalPaid > ranked[j].TotalPaid
	})
	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

// UpcomingDeliveries returns orders due within `days` of `today`,
// inclusive, regardless of status — overdue orders are included. Orders
// with malformed due dates are excluded.
func UpcomingDeliveries(orders []models.Order, today time.Time, days int) []models.Order {
	cutoff := utils.BeginningOfDay(today).AddDate(0, 0, days)
	upcoming := make([]models.Order, 0)
	for _, o := range orders {
		due, ok := utils.ParseDate(o.DueDate)
		if !ok {
			continue
		}
		if !due.After(cutoff) {
			upcoming = append(upcoming, o)
		}
	}
	return upcoming
}

type ClientBalance struct {
	TotalSpent float64 `json:"totalSpent"`
	TotalDue   float64 `json:"totalDue"`
}

// BalanceForClient sums payments made through one client's orders and
// the fees billed against them.
func BalanceForClient(clientID int, orders []models.Order, payments []models.Payment) ClientBalance {
	clientOrders := make(map[int]bool)
	var billed float64
	for _, o := range orders {
		if o.ClientID == clientID {
			clientOrders[o.ID] = true
			billed += o.TotalFee
		}
	}
	var spent float64
	for _, p := range payments {
		if clientOrders[p.OrderID] {
			spent += p.AmountPaid
		}
	}
	return ClientBalance{TotalSpent: spent, TotalDue: billed - spent}
}

// DayColor classifies a calendar day by the state of the orders due on it.
type DayColor string

const (
	ColorNone       DayColor = "none"        // no orders due
	ColorDone       DayColor = "done"        // everything completed
	ColorInProgress DayColor = "in_progress" // anything scheduled or processing
	ColorOverdue    DayColor = "overdue"     // past date with unfinished work
	ColorScheduled  DayColor = "scheduled"   // future or same-day, nothing started
)

// ColorForDay colors one calendar day given the orders due that day. The
// branch order is significant: in-progress wins over overdue even on a
// past date, and a past date whose only incomplete order is "Ready" still
// colors overdue because the in-progress branch never saw it.
func ColorForDay(dayOrders []models.Order, day, today time.Time) DayColor {
	if len(dayOrders) == 0 {
		return ColorNone
	}
	allCompleted := true
	anyInProgress := false
	for _, o := range dayOrders {
		if o.Status != models.StatusCompleted {
			allCompleted = false
		}
		if o.Status == models.StatusScheduledPickup || o.Status == models.StatusProcessing {
			anyInProgress = true
		}
	}
	if allCompleted {
		return ColorDone
	}
	if anyInProgress {
		return ColorInProgress
	}
	if utils.BeginningOfDay(day).Before(utils.BeginningOfDay(today)) {
		// not allCompleted already implies unfinished work
		return ColorOverdue
	}
	return ColorScheduled
}

// OrdersDueOn filters orders whose due date falls on the given day.
func OrdersDueOn(orders []models.Order, day time.Time) []models.Order {
	target := utils.BeginningOfDay(day)
	due := make([]models.Order, 0)
	for _, o := range orders {
		d, ok := utils.ParseDate(o.DueDate)
		if !ok {
			continue
		}
		if d.Equal(target) {
			due = append(due, o)
		}
	}
	return due
}

type MonthlyPoint struct {
	Month   string  `json:"month"` // "2006-01"
	Revenue float64 `json:"revenue"`
	Costs   float64 `json:"costs"`
	Profit  float64 `json:"profit"`
}

// MonthlySeries groups payments and costs by calendar month, aligns the
// two by month key filling the missing side with zero, and derives profit
// per month. Rows with malformed dates are skipped. The result is sorted
// by month ascending.
func MonthlySeries(payments []models.Payment, costs []models.Cost) []MonthlyPoint {
	revenue := make(map[string]float64)
	spend := make(map[string]float64)
	for _, p := range payments {
		if t, ok := utils.ParseDate(p.PaymentDate); ok {
			revenue[utils.MonthKey(t)] += p.AmountPaid
		}
	}
	for _, c := range costs {
		if t, ok := utils.ParseDate(c.DateIncurred); ok {
			spend[utils.MonthKey(t)] += c.Amount
		}
	}

	keys := make([]string, 0, len(revenue)+len(spend))
	seen := make(map[string]bool)
	for k := range revenue {
		keys = append(keys, k)
		seen[k] = true
	}
	for k := range spend {
		if !seen[k] {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	series := make([]MonthlyPoint, 0, len(keys))
	for _, k := range keys {
		point := MonthlyPoint{
			Month:   k,
			Revenue: revenue[k],
			Costs:   spend[k],
		}
		point.Profit = point.Revenue - point.Costs
		series = append(series, point)
	}
	return series
}

// ProfitChange is the percent change of the latest month's profit against
// the month before it. With fewer than two months of data, or a prior
// profit of exactly zero, the change is defined as 0 — that hides real
// swings from or to zero, which matches the historical behaviour.
func ProfitChange(series []MonthlyPoint) float64 {
	if len(series) < 2 {
		return 0
	}
	latest := series[len(series)-1].Profit
	prior := series[len(series)-2].Profit
	if prior == 0 {
		return 0
	}
	return (latest - prior) / prior * 100
}

type CategoryTotal struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
}

// ExpenseBreakdown sums costs per category for proportion display,
// sorted by amount descending.
func ExpenseBreakdown(costs []models.Cost) []CategoryTotal {
	byCategory := make(map[string]float64)
	order := make([]string, 0)
	for _, c := range costs {
		if _, ok := byCategory[c.Category]; !ok {
			order = append(order, c.Category)
		}
		byCategory[c.Category] += c.Amount
	}
	totals := make([]CategoryTotal, 0, len(order))
	for _, cat := range order {
		totals = append(totals, CategoryTotal{Category: cat, Amount: byCategory[cat]})
	}
	sort.SliceStable(totals, func(i, j int) bool {
		return totals[i].Amount > totals[j].Amount
	})
	return totals
}

type ServiceCount struct {
	ServiceType string `json:"serviceType"`
	Count       int    `json:"count"`
}

// ServiceDistribution counts orders per service type, most frequent first.
func ServiceDistribution(orders []models.Order) []ServiceCount {
	byService := make(map[string]int)
	order := make([]string, 0)
	for _, o := range orders {
		if _, ok := byService[o.ServiceType]; !ok {
			order = append(order, o.ServiceType)
		}
		byService[o.ServiceType]++
	}
	counts := make([]ServiceCount, 0, len(order))
	for _, s := range order {
		counts = append(counts, ServiceCount{ServiceType: s, Count: byService[s]})
	}
	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Count > counts[j].Count
	})
	return counts
}
