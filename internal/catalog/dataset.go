package catalog

import "github.com/bizlens/bizlens/internal/domain"

// Default returns the built-in sample dataset: six months of financials,
// top customers, expense categories, and regional revenue.
func Default() *Catalog {
	c := New("RM")

	monthly := NewSource(domain.SourceMonthly, domain.FieldMonths, []string{
		"Aug 2024", "Sep 2024", "Oct 2024", "Nov 2024", "Dec 2024", "Jan 2025",
	})
	must(monthly.AddMetric(domain.FieldRevenue, []float64{95000, 105000, 98000, 125000, 118000, 130000}, UnitCurrency))
	must(monthly.AddMetric(domain.FieldExpenses, []float64{78000, 82000, 85000, 89000, 91000, 88000}, UnitCurrency))
	must(monthly.AddMetric(domain.FieldProfit, []float64{17000, 23000, 13000, 36000, 27000, 42000}, UnitCurrency))
	must(monthly.AddMetric(domain.FieldProfitMargin, []float64{17.9, 21.9, 13.3, 28.8, 22.9, 32.3}, UnitPercent))
	must(c.Add(monthly))

	customers := NewSource(domain.SourceCustomers, domain.FieldNames, []string{
		"ABC Trading", "XYZ Manufacturing", "DEF Industries", "GHI Solutions", "Others",
	})
	must(customers.AddMetric(domain.FieldRevenue, []float64{45000, 38000, 25000, 17430, 4570}, UnitCurrency))
	must(customers.AddMetric(domain.FieldMargin, []float64{35, 28, 42, 31, 25}, UnitPercent))
	must(c.Add(customers))

	expenses := NewSource(domain.SourceExpenses, domain.FieldCategories, []string{
		"Staff Costs", "Marketing", "Rent", "Supplies", "Utilities", "Insurance",
	})
	must(expenses.AddMetric(domain.FieldAmounts, []float64{35000, 15000, 12000, 11000, 8000, 7000}, UnitCurrency))
	must(c.Add(expenses))

	regions := NewSource(domain.SourceRegions, domain.FieldNames, []string{
		"KL", "Selangor", "Penang", "Johor", "Others",
	})
	must(regions.AddMetric(domain.FieldRevenue, []float64{45000, 38000, 25000, 17000, 5000}, UnitCurrency))
	must(c.Add(regions))

	return c
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}
