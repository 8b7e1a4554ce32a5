package discordhook

import (
	"os"
	"path/filepath"

	"github.com/gabriel-vasile/mimetype"
)

// FileAttachment is a file uploaded alongside a webhook message. Content is
// fully buffered in memory, so an attachment stays valid after the source
// file changes or disappears.
type FileAttachment struct {
	Name        string // File name shown in Discord
	Content     []byte
	ContentType string
}

// NewFileAttachment creates an attachment from in-memory content. When
// contentType is empty it is sniffed from the content.
func NewFileAttachment(name string, content []byte, contentType string) FileAttachment {
	if contentType == "" {
		contentType = mimetype.Detect(content).String()
	}
	return FileAttachment{
		Name:        name,
		Content:     content,
		ContentType: contentType,
	}
}

// AttachmentFromPath reads the file at path into an attachment. The
// attachment is named after the file's base name and its content type is
// sniffed from the content. Read failures are reported as a *FileError.
func AttachmentFromPath(path string) (FileAttachment, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return FileAttachment{}, NewFileError(path, err)
	}
	return NewFileAttachment(filepath.Base(path), content, ""), nil
}

// Validate checks that the attachment can be uploaded.
func (f FileAttachment) Validate() error {
	if f.Name == "" {
		return NewValidationError("file_name", f.Name, "attachment name cannot be empty")
	}
	return nil
}
