package api

import (
	"io"
	"mime"
	"mime/multipart"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPhotoFileName(t *testing.T) {
	tests := []struct {
		name  string
		uri   string
		index int
		want  string
	}{
		{"plain_path", "/storage/photos/shot.jpg", 0, "shot.jpg"},
		{"file_uri", "file:///tmp/pic.png", 1, "pic.png"},
		{"no_extension", "/tmp/IMG_0042", 0, "IMG_0042.jpg"},
		{"query_string", "content://media/external/999?size=full", 2, "999.jpg"},
		{"empty", "", 2, "photo_2.jpg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PhotoFileName(tt.uri, tt.index))
		})
	}
}

func TestPhotoMIMEType(t *testing.T) {
	tests := []struct {
		name string
		file string
		want string
	}{
		{"png", "a.png", "image/png"},
		{"png_upper", "a.PNG", "image/png"},
		{"webp", "a.webp", "image/webp"},
		{"heic", "a.heic", "image/heic"},
		{"heif", "a.heif", "image/heif"},
		{"jpg", "a.jpg", "image/jpeg"},
		{"unknown", "a.bin", "image/jpeg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PhotoMIMEType(tt.file))
		})
	}
}

func TestBuildIncidentForm(t *testing.T) {
	opener := func(uri string) (io.ReadCloser, error) {
		return io.NopCloser(strings.NewReader("data:" + uri)), nil
	}

	fields := map[string]string{"mode": "complain", "details": "x", "witnessName": ""}
	photos := []string{"/p/a.jpg", "/p/b.png", "/p/c.webp", "/p/d.jpg"}

	form, err := BuildIncidentForm(fields, photos, opener)
	require.NoError(t, err)

	_, params, err := mime.ParseMediaType(form.ContentType())
	require.NoError(t, err)
	reader := multipart.NewReader(form.Reader(), params["boundary"])

	var fieldNames []string
	var photoNames []string
	for {
		part, err := reader.NextPart()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		if part.FileName() != "" {
			photoNames = append(photoNames, part.FileName())
			// The opener received the URI verbatim.
			content, err := io.ReadAll(part)
			require.NoError(t, err)
			assert.True(t, strings.HasPrefix(string(content), "data:/p/"))
		} else {
			fieldNames = append(fieldNames, part.FormName())
		}
	}

	// Empty fields are omitted; the fourth photo is dropped.
	assert.ElementsMatch(t, []string{"mode", "details"}, fieldNames)
	assert.Equal(t, []string{"a.jpg", "b.png", "c.webp"}, photoNames)
}
