package assets

// TemplateLoader loads an HTML page template by name.
type TemplateLoader interface {
	// LoadTemplate returns the template content.
	// Returns ErrTemplateNotFound if the template doesn't exist.
	// Returns ErrInvalidAssetName if the name contains invalid characters.
	LoadTemplate(name string) (string, error)
}
