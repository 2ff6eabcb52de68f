package assistant

// QuickAction is a one-tap preset question shown by interactive surfaces.
type QuickAction struct {
	Label    string
	Question string
}

// QuickActions returns the preset chart questions in display order.
func QuickActions() []QuickAction {
	return []QuickAction{
		{Label: "Revenue Trends", Question: "show revenue trends"},
		{Label: "Customer Pie", Question: "show customer pie chart"},
		{Label: "Profit Margins", Question: "show profit margin trends"},
		{Label: "Regional Sales", Question: "show regional revenue"},
	}
}
