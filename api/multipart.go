// File: tahanansafe/api/multipart.go
package api

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"
	"os"
	"path"
	"strings"

	"tahanansafe/models"
)

// PhotoOpener resolves a photo URI to its bytes. The URI arrives verbatim
// from the picker; the opener decides how to dereference it.
type PhotoOpener func(uri string) (io.ReadCloser, error)

// OSPhotoOpener reads photos from the local filesystem.
func OSPhotoOpener(uri string) (io.ReadCloser, error) {
	return os.Open(uri)
}

// MultipartForm is an assembled multipart/form-data request body.
type MultipartForm struct {
	buf         bytes.Buffer
	contentType string
}

func (f *MultipartForm) Reader() io.Reader   { return &f.buf }
func (f *MultipartForm) ContentType() string { return f.contentType }

// BuildIncidentForm encodes the incident fields plus up to three photos.
// Photos past the cap are silently dropped. Empty field values are omitted.
func BuildIncidentForm(fields map[string]string, photos []string, open PhotoOpener) (*MultipartForm, error) {
	form := &MultipartForm{}
	writer := multipart.NewWriter(&form.buf)

	for key, value := range fields {
		if value == "" {
			continue
		}
		if err := writer.WriteField(key, value); err != nil {
			return nil, fmt.Errorf("failed to write field %q: %w", key, err)
		}
	}

	if len(photos) > models.MaxIncidentPhotos {
		photos = photos[:models.MaxIncidentPhotos]
	}
	for i, uri := range photos {
		name := PhotoFileName(uri, i)
		header := textproto.MIMEHeader{}
		header.Set("Content-Disposition",
			fmt.Sprintf(`form-data; name="photos"; filename="%s"`, escapeQuotes(name)))
		header.Set("Content-Type", PhotoMIMEType(name))

		part, err := writer.CreatePart(header)
		if err != nil {
			return nil, fmt.Errorf("failed to create photo part: %w", err)
		}
		src, err := open(uri)
		if err != nil {
			return nil, fmt.Errorf("failed to open photo %q: %w", uri, err)
		}
		_, copyErr := io.Copy(part, src)
		src.Close()
		if copyErr != nil {
			return nil, fmt.Errorf("failed to read photo %q: %w", uri, copyErr)
		}
	}

	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize form: %w", err)
	}
	form.contentType = writer.FormDataContentType()
	return form, nil
}

// PhotoFileName derives an upload filename from a photo URI: the last path
// segment, falling back to photo_{index}.jpg, with .jpg appended when the
// name carries no extension.
func PhotoFileName(uri string, index int) string {
	name := path.Base(strings.ReplaceAll(uri, "\\", "/"))
	if name == "." || name == "/" || name == "" {
		name = ""
	}
	// Strip any query string a content URI might carry.
	if at := strings.IndexByte(name, '?'); at >= 0 {
		name = name[:at]
	}
	if name == "" {
		return fmt.Sprintf("photo_%d.jpg", index)
	}
	if path.Ext(name) == "" {
		name += ".jpg"
	}
	return name
}

// PhotoMIMEType guesses a photo's MIME type from its filename extension.
func PhotoMIMEType(name string) string {
	switch strings.ToLower(path.Ext(name)) {
	case ".png":
		return "image/png"
	case ".webp":
		return "image/webp"
	case ".heic":
		return "image/heic"
	case ".heif":
		return "image/heif"
	default:
		return "image/jpeg"
	}
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func escapeQuotes(s string) string {
	return quoteEscaper.Replace(s)
}
