package models

const (
	CategorySupplies    = "Supplies"
	CategoryBillsRents  = "Bills/Rents"
	CategoryMaintenance = "Maintenance"
	CategoryOthers      = "Others"
)

const (
	CostFixed    = "Fixed"
	CostVariable = "Variable"
)

// Cost is a business expense. Costs stand alone: they reference no other
// collection and nothing cascades to them.
type Cost struct {
	ID            int     `json:"expense_id"`
	DateIncurred  string  `json:"date_incurred"`
	Category      string  `json:"category"`
	Description   string  `json:"description"`
	Amount        float64 `json:"amount"`
	FixedVariable string  `json:"fixed_variable"`
	Notes         string  `json:"notes"`
}

func IsExpenseCategory(category string) bool {
	switch category {
	case CategorySupplies, CategoryBillsRents, CategoryMaintenance, CategoryOthers:
		return true
	}
	return false
}

func IsCostType(costType string) bool {
	return costType == CostFixed || costType == CostVariable
}
