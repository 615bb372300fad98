package models

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
)

// Upload is a transient file reference carried by a mutation input. It is
// never persisted.
type Upload struct {
	Filename    string
	ContentType string
	Size        int64
	open        func() (io.ReadCloser, error)
}

func UploadFromFileHeader(fh *multipart.FileHeader) *Upload {
	if fh == nil {
		return nil
	}
	return &Upload{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Size:        fh.Size,
		open: func() (io.ReadCloser, error) {
			return fh.Open()
		},
	}
}

func UploadFromBytes(filename, contentType string, data []byte) *Upload {
	return &Upload{
		Filename:    filename,
		ContentType: contentType,
		Size:        int64(len(data)),
		open: func() (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewReader(data)), nil
		},
	}
}

func (u *Upload) Open() (io.ReadCloser, error) {
	if u == nil || u.open == nil {
		return nil, errors.New("upload has no content")
	}
	return u.open()
}

func (u *Upload) ReadAll() ([]byte, error) {
	rc, err := u.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("failed to read upload %s: %w", u.Filename, err)
	}
	return data, nil
}
