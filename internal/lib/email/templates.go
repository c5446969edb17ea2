package email

// Template is a string-based enum naming email templates.
type Template string

const (
	// TemplateParcelCreated corresponds to templates/parcel_created.html
	TemplateParcelCreated Template = "parcel_created"
)
