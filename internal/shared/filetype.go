package shared

import "path/filepath"

// FileType is the language classification of a file, used to pick a
// formatter and to word the analysis prompt.
type FileType string

// Known file types.
const (
	FileTypeRust      FileType = "Rust"
	FileTypeWebScript FileType = "JavaScript/TypeScript"
	FileTypePython    FileType = "Python"
	FileTypeJSON      FileType = "JSON"
	FileTypeTOML      FileType = "TOML"
	FileTypeMarkdown  FileType = "Markdown"
	FileTypePlainText FileType = "text"
)

var extensionTypes = map[string]FileType{
	".rs":   FileTypeRust,
	".js":   FileTypeWebScript,
	".ts":   FileTypeWebScript,
	".py":   FileTypePython,
	".json": FileTypeJSON,
	".toml": FileTypeTOML,
	".md":   FileTypeMarkdown,
}

// DetectFileType classifies path by its extension. Matching is case
// sensitive; unknown or missing extensions are plain text. A dotfile such
// as ".md" has no extension.
func DetectFileType(path string) FileType {
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	if ext == base {
		return FileTypePlainText
	}
	if fileType, ok := extensionTypes[ext]; ok {
		return fileType
	}
	return FileTypePlainText
}

// String returns the display name of the file type.
func (f FileType) String() string {
	return string(f)
}
