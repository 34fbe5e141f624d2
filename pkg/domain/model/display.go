package model

// DefaultHeader is the card header text when none is configured
const DefaultHeader = "Pregnancy Tracker"

// DisplayOptions controls which sections of the status card are rendered
type DisplayOptions struct {
	Header             string `yaml:"header" json:"header"`
	ShowHeader         bool   `yaml:"show_header" json:"showHeader"`
	ShowDaysRemaining  bool   `yaml:"show_days_remaining" json:"showDaysRemaining"`
	ShowSizeComparison bool   `yaml:"show_size_comparison" json:"showSizeComparison"`
	ShowMilestones     bool   `yaml:"show_milestones" json:"showMilestones"`
}

// DefaultDisplayOptions returns the default display options
func DefaultDisplayOptions() DisplayOptions {
	return DisplayOptions{
		Header:             DefaultHeader,
		ShowHeader:         false,
		ShowDaysRemaining:  true,
		ShowSizeComparison: true,
		ShowMilestones:     true,
	}
}

// VisibleHeader returns the header text, or empty when the header is hidden
func (d DisplayOptions) VisibleHeader() string {
	if !d.ShowHeader {
		return ""
	}
	return d.Header
}
