package engine

import (
	"strings"

	"github.com/Kajalyadav4/Personal-Finance-Assistant/internal/models"
)

const (
	categoryFallback = "Other"
	categoryTransfer = "Transfer"
)

// Ordered keyword → category table; the first keyword found in the
// upper-cased description wins. Order matters: "UBER EATS" must sit
// ahead of "UBER", and "COFFEE" ahead of "FEE".
var defaultCategoryRules = []models.CategoryRule{
	{Keyword: "GROCERY", Category: "Groceries"},
	{Keyword: "SUPERMARKET", Category: "Groceries"},
	{Keyword: "WHOLE FOODS", Category: "Groceries"},
	{Keyword: "TRADER JOE", Category: "Groceries"},
	{Keyword: "KROGER", Category: "Groceries"},
	{Keyword: "SAFEWAY", Category: "Groceries"},
	{Keyword: "ALDI", Category: "Groceries"},
	{Keyword: "UBER EATS", Category: "Dining"},
	{Keyword: "DOORDASH", Category: "Dining"},
	{Keyword: "RESTAURANT", Category: "Dining"},
	{Keyword: "CAFE", Category: "Dining"},
	{Keyword: "COFFEE", Category: "Dining"},
	{Keyword: "STARBUCKS", Category: "Dining"},
	{Keyword: "MCDONALD", Category: "Dining"},
	{Keyword: "PIZZA", Category: "Dining"},
	{Keyword: "WALMART", Category: "Shopping"},
	{Keyword: "TARGET", Category: "Shopping"},
	{Keyword: "AMAZON", Category: "Shopping"},
	{Keyword: "COSTCO", Category: "Shopping"},
	{Keyword: "EBAY", Category: "Shopping"},
	{Keyword: "UBER", Category: "Transport"},
	{Keyword: "LYFT", Category: "Transport"},
	{Keyword: "TAXI", Category: "Transport"},
	{Keyword: "SHELL", Category: "Transport"},
	{Keyword: "CHEVRON", Category: "Transport"},
	{Keyword: "EXXON", Category: "Transport"},
	{Keyword: "FUEL", Category: "Transport"},
	{Keyword: "PARKING", Category: "Transport"},
	{Keyword: "TRANSIT", Category: "Transport"},
	{Keyword: "NETFLIX", Category: "Entertainment"},
	{Keyword: "SPOTIFY", Category: "Entertainment"},
	{Keyword: "HULU", Category: "Entertainment"},
	{Keyword: "CINEMA", Category: "Entertainment"},
	{Keyword: "ELECTRIC", Category: "Utilities"},
	{Keyword: "WATER", Category: "Utilities"},
	{Keyword: "INTERNET", Category: "Utilities"},
	{Keyword: "COMCAST", Category: "Utilities"},
	{Keyword: "VERIZON", Category: "Utilities"},
	{Keyword: "UTILITY", Category: "Utilities"},
	{Keyword: "RENT", Category: "Housing"},
	{Keyword: "MORTGAGE", Category: "Housing"},
	{Keyword: "PHARMACY", Category: "Health"},
	{Keyword: "WALGREEN", Category: "Health"},
	{Keyword: "MEDICAL", Category: "Health"},
	{Keyword: "DENTAL", Category: "Health"},
	{Keyword: "HOSPITAL", Category: "Health"},
	{Keyword: "GYM", Category: "Health"},
	{Keyword: "INSURANCE", Category: "Insurance"},
	{Keyword: "AIRLINE", Category: "Travel"},
	{Keyword: "HOTEL", Category: "Travel"},
	{Keyword: "AIRBNB", Category: "Travel"},
	{Keyword: "PAYROLL", Category: "Salary"},
	{Keyword: "SALARY", Category: "Salary"},
	{Keyword: "WAGES", Category: "Salary"},
	{Keyword: "DIVIDEND", Category: "Investments"},
	{Keyword: "INTEREST", Category: "Investments"},
	{Keyword: "ATM", Category: "Cash"},
	{Keyword: "WITHDRAWAL", Category: "Cash"},
	{Keyword: "FEE", Category: "Fees"},
	{Keyword: "SERVICE CHARGE", Category: "Fees"},
}

// Categorize maps a normalized description to a category label. Total:
// every description yields exactly one category, never absent.
func (e *Engine) Categorize(description string) string {
	upper := strings.ToUpper(description)
	for _, rule := range e.categoryRules {
		if strings.Contains(upper, strings.ToUpper(rule.Keyword)) {
			return rule.Category
		}
	}
	if strings.Contains(upper, "TRANSFER") || strings.Contains(upper, "PAYMENT") {
		return categoryTransfer
	}
	return categoryFallback
}
