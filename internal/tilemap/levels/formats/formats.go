package formats

// Format names a level file format.
type Format string

const (
	FormatText Format = "text"
	FormatYAML Format = "yaml"
)

var extensions = map[string]Format{
	".txt":  FormatText,
	".map":  FormatText,
	".lvl":  FormatText,
	".yaml": FormatYAML,
	".yml":  FormatYAML,
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".txt", ".map", ".lvl", ".yaml", ".yml"}
}

// ForExtension returns the format for a lower-case extension.
func ForExtension(ext string) (Format, bool) {
	f, ok := extensions[ext]
	return f, ok
}
