package transport

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/textproto"
)

// FormFile is one binary attachment in a multipart upload.
type FormFile struct {
	FieldName   string
	FileName    string
	ContentType string
	Data        []byte
}

// MultipartForm carries a JSON metadata blob plus binary attachments, used
// by the application-form generation endpoint. Encode produces the body and
// the content type carrying the multipart boundary; the Content-Type header
// must come from Encode, not be set by hand.
type MultipartForm struct {
	MetadataField string // field name for the JSON blob, defaults to "metadata"
	Metadata      any
	Files         []FormFile
}

// Encode serializes the form. The returned content type includes the
// generated boundary.
func (f *MultipartForm) Encode() ([]byte, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	if f.Metadata != nil {
		field := f.MetadataField
		if field == "" {
			field = "metadata"
		}
		data, err := json.Marshal(f.Metadata)
		if err != nil {
			return nil, "", fmt.Errorf("failed to marshal form metadata: %w", err)
		}
		header := textproto.MIMEHeader{}
		header.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q`, field))
		header.Set("Content-Type", "application/json")
		part, err := w.CreatePart(header)
		if err != nil {
			return nil, "", fmt.Errorf("failed to create metadata part: %w", err)
		}
		if _, err := part.Write(data); err != nil {
			return nil, "", fmt.Errorf("failed to write metadata part: %w", err)
		}
	}

	for _, file := range f.Files {
		header := textproto.MIMEHeader{}
		header.Set("Content-Disposition",
			fmt.Sprintf(`form-data; name=%q; filename=%q`, file.FieldName, file.FileName))
		if file.ContentType != "" {
			header.Set("Content-Type", file.ContentType)
		}
		part, err := w.CreatePart(header)
		if err != nil {
			return nil, "", fmt.Errorf("failed to create part for %s: %w", file.FileName, err)
		}
		if _, err := part.Write(file.Data); err != nil {
			return nil, "", fmt.Errorf("failed to write part for %s: %w", file.FileName, err)
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("failed to finalize multipart form: %w", err)
	}
	return buf.Bytes(), w.FormDataContentType(), nil
}
