package assets

import "errors"

// AssetResolver combines custom and embedded loaders with fallback logic.
// When a custom loader is configured, it tries custom first, then falls back
// to embedded if the template is not found in the custom location.
type AssetResolver struct {
	custom   AssetLoader // nil if no custom path configured
	embedded AssetLoader
}

// NewAssetResolver creates an AssetResolver.
// If customBasePath is empty, only embedded templates are used.
// Returns error if customBasePath is set but invalid.
func NewAssetResolver(customBasePath string) (*AssetResolver, error) {
	resolver := &AssetResolver{
		embedded: NewEmbeddedLoader(),
	}

	if customBasePath != "" {
		fsLoader, err := NewFilesystemLoader(customBasePath)
		if err != nil {
			return nil, err
		}
		resolver.custom = fsLoader
	}

	return resolver, nil
}

// LoadTemplate loads a template, trying the custom loader first if available.
// Only "not found" falls back; validation and I/O errors are returned as is.
func (r *AssetResolver) LoadTemplate(name string) (string, error) {
	if r.custom == nil {
		return r.embedded.LoadTemplate(name)
	}

	content, err := r.custom.LoadTemplate(name)
	if err == nil {
		return content, nil
	}
	if !errors.Is(err, ErrTemplateNotFound) {
		return "", err
	}

	return r.embedded.LoadTemplate(name)
}

// Compile-time interface check.
var _ AssetLoader = (*AssetResolver)(nil)
