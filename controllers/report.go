// controllers/report.go
package controllers

import (
	"net/http"

	"washwear-backend/config"
	"washwear-backend/reports"

	"github.com/gin-gonic/gin"
)

// PerformanceReport is the business performance payload: the monthly
// revenue/cost/profit series plus the latest month's figures.
type PerformanceReport struct {
	MonthlySeries    []reports.MonthlyPoint  `json:"monthlySeries"`
	ThisMonthProfit  float64                 `json:"thisMonthProfit"`
	ProfitChange     float64                 `json:"profitChange"` // percent vs prior month
	MonthsTracked    int                     `json:"monthsTracked"`
	ExpenseBreakdown []reports.CategoryTotal `json:"expenseBreakdown"`
}

// GetPerformanceReport returns the monthly financial trend and the
// expense breakdown by category.
func GetPerformanceReport(c *gin.Context) {
	payments := config.Records.Payments()
	costs := config.Records.Costs()

	series := reports.MonthlySeries(payments, costs)

	report := PerformanceReport{
		MonthlySeries:    series,
		ProfitChange:     reports.ProfitChange(series),
		MonthsTracked:    len(series),
		ExpenseBreakdown: reports.ExpenseBreakdown(costs),
	}
	if len(series) > 0 {
		report.ThisMonthProfit = series[len(series)-1].Profit
	}

	c.JSON(http.StatusOK, report)
}
