package email

// Template names an HTML file under templates/.
type Template string

const (
	TemplateWelcome Template = "welcome"
)

// PreviewData holds sample values for every template, keyed by template name.
// It backs the local email preview route.
var PreviewData = map[Template]map[string]string{
	TemplateWelcome: {
		"UserName": "Devin Sanders",
	},
}
