package test

import (
	"bytes"
	"io"
	"mime/multipart"
	"os"
	"path"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// LoadTestFile loads a test file from the testdata directory
//
// File contents are returned as a buffer and a map for the HTTP request headers
func LoadTestFile(t *testing.T, filePath string) (*bytes.Buffer, map[string]string) {
	file, err := os.Open(path.Join("../../testdata", filePath))
	if err != nil {
		assert.FailNow(t, err.Error())
	}
	defer file.Close()

	return MultipartFile(t, "file", path.Base(filePath), file)
}

// MultipartFile returns a multipart form holding a single file and the
// HTTP request headers for it.
//
// An empty filename sends the part without a filename.
func MultipartFile(t *testing.T, field, filename string, content io.Reader) (*bytes.Buffer, map[string]string) {
	body := new(bytes.Buffer)
	mw := multipart.NewWriter(body)

	var w io.Writer
	var err error
	if filename == "" {
		w, err = mw.CreateFormField(field)
	} else {
		w, err = mw.CreateFormFile(field, filename)
	}
	if err != nil {
		assert.Fail(t, err.Error())
	}

	if _, err := io.Copy(w, content); err != nil {
		assert.Fail(t, err.Error())
	}

	mw.Close()

	return body, map[string]string{"Content-Type": mw.FormDataContentType()}
}

// CSV returns a multipart form holding a statement CSV with the given lines.
func CSV(t *testing.T, filename string, lines ...string) (*bytes.Buffer, map[string]string) {
	return MultipartFile(t, "file", filename, strings.NewReader(strings.Join(lines, "\n")+"\n"))
}
