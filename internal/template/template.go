package template

import (
	"strings"
)

// Variables holds the data to be injected into template placeholders.
type Variables struct {
	Name    string // Widget name (sync channel key)
	Popup   string // Popup mode
	Choices string // Choices file path
}

// Render replaces {{variable}} placeholders in template with actual values.
// Supports the following variables:
// - {{name}} - Widget name
// - {{popup}} - Popup mode
// - {{choices}} - Choices file path
func Render(template string, vars Variables) string {
	result := template

	replacements := map[string]string{
		"{{name}}":    vars.Name,
		"{{popup}}":   vars.Popup,
		"{{choices}}": vars.Choices,
	}

	for placeholder, value := range replacements {
		result = strings.ReplaceAll(result, placeholder, value)
	}

	return result
}
