package domain

type DataSource string

const (
	SourceMonthly   DataSource = "monthly_data"
	SourceCustomers DataSource = "customers"
	SourceExpenses  DataSource = "expenses"
	SourceRegions   DataSource = "regions"
)

// ValidDataSources is the canonical set of accepted data source names.
var ValidDataSources = map[string]bool{
	"monthly_data": true, "customers": true, "expenses": true, "regions": true,
}

type ChartType string

const (
	ChartLine ChartType = "line"
	ChartBar  ChartType = "bar"
	ChartPie  ChartType = "pie"
	ChartArea ChartType = "area"
)

// ValidChartTypes is the canonical set of accepted chart type names.
var ValidChartTypes = map[string]bool{
	"line": true, "bar": true, "pie": true, "area": true,
}

type ModificationType string

const (
	ModNone             ModificationType = ""
	ModAddSecondaryAxis ModificationType = "add_secondary_axis"
	ModAddMetric        ModificationType = "add_metric"
)

type MessageRole string

const (
	RoleUser      MessageRole = "user"
	RoleAssistant MessageRole = "assistant"
)

// Field names of the catalog's categorical and metric arrays.
const (
	FieldMonths       = "months"
	FieldNames        = "names"
	FieldCategories   = "categories"
	FieldRevenue      = "revenue"
	FieldExpenses     = "expenses"
	FieldProfit       = "profit"
	FieldProfitMargin = "profit_margin"
	FieldMargin       = "margin"
	FieldAmounts      = "amounts"
)
