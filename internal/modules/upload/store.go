package upload

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

const maxUploadBytes = 5 * 1024 * 1024

var allowedImageTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

// Store saves image blobs on local disk under YYYY/MM/DD directories
// with uuid filenames, and maps each saved file to its public URL.
type Store struct {
	baseDir string
	baseURL string
}

func NewStore(baseDir, baseURL string) *Store {
	return &Store{
		baseDir: baseDir,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// Save sniffs the content type from the first 512 bytes rather than
// trusting the client's filename or header.
func (s *Store) Save(fh *multipart.FileHeader) (filePath, url string, err error) {
	if fh.Size > maxUploadBytes {
		return "", "", ErrFileTooLarge
	}

	src, err := fh.Open()
	if err != nil {
		return "", "", err
	}
	defer src.Close()

	head := make([]byte, 512)
	n, err := src.Read(head)
	if err != nil && err != io.EOF {
		return "", "", err
	}
	ext, ok := allowedImageTypes[http.DetectContentType(head[:n])]
	if !ok {
		return "", "", ErrBadFileType
	}

	day := time.Now().Format("2006/01/02")
	dir := filepath.Join(s.baseDir, day)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", "", err
	}

	name := uuid.NewString() + ext
	filePath = filepath.Join(dir, name)

	dst, err := os.Create(filePath)
	if err != nil {
		return "", "", err
	}
	defer dst.Close()

	if _, err := dst.Write(head[:n]); err != nil {
		return "", "", err
	}
	if _, err := io.Copy(dst, src); err != nil {
		return "", "", err
	}

	return filePath, fmt.Sprintf("%s/%s/%s", s.baseURL, day, name), nil
}

func (s *Store) Remove(filePath string) error {
	if filePath == "" {
		return nil
	}
	return os.Remove(filePath)
}
