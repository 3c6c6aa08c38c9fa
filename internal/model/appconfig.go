package model

// AppConfig holds application-wide preferences. Only presentation settings
// and the starting form values live here; calculations are never saved.
type AppConfig struct {
	// Branding used on screen and in exported documents
	BusinessName string `json:"business_name"`
	Currency     string `json:"currency"` // symbol printed before amounts, e.g. "S/"
	ReportTitle  string `json:"report_title"`
	ReportFooter string `json:"report_footer"`

	// Values the form is filled with on start
	DefaultInput Input `json:"default_input"`

	// Application preferences
	Theme string `json:"theme"` // "light", "dark", "system"
}

// DefaultAppConfig returns an AppConfig populated with sensible defaults.
func DefaultAppConfig() AppConfig {
	return AppConfig{
		BusinessName: "FurniProfit",
		Currency:     "S/",
		ReportTitle:  "Furniture Profitability Report",
		ReportFooter: "Powered by FurniProfit",
		DefaultInput: DefaultInput(),
		Theme:        "dark",
	}
}

// Normalize fills blank fields with defaults and repairs a default input
// that would not pass validation, so a hand-edited file cannot break the form.
func (c *AppConfig) Normalize() {
	defaults := DefaultAppConfig()
	if c.Currency == "" {
		c.Currency = defaults.Currency
	}
	if c.ReportTitle == "" {
		c.ReportTitle = defaults.ReportTitle
	}
	if c.ReportFooter == "" {
		c.ReportFooter = defaults.ReportFooter
	}
	switch c.Theme {
	case "light", "dark", "system":
	default:
		c.Theme = defaults.Theme
	}
	if c.DefaultInput.Validate() != nil {
		c.DefaultInput = DefaultInput()
	}
}
