package assets

// DefaultTemplateName is the preamble template used when none is configured.
const DefaultTemplateName = "default"

// AssetLoader defines the contract for loading preamble templates.
type AssetLoader interface {
	// LoadTemplate loads an HTML template by name (without .html extension).
	// Returns ErrTemplateNotFound if the template doesn't exist.
	// Returns ErrInvalidAssetName if the name contains invalid characters.
	LoadTemplate(name string) (string, error)
}
