package common

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/afero"
)

// GenerateUUID generates a new UUID string
func GenerateUUID() string {
	return uuid.New().String()
}

// ValidateName checks that name is a bare filename that cannot escape the managed directory
func ValidateName(name string) error {
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return nil
}

// FileURI builds a file:// URI from a path, normalising separators to forward slashes
func FileURI(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	path = strings.ReplaceAll(path, `\`, "/")
	return "file:///" + strings.TrimLeft(path, "/")
}

// CopyFile copies src to dst byte for byte, then carries over the modification
// time and mode where the filesystem allows it. A failed copy removes dst.
func CopyFile(fs afero.Fs, src, dst string) error {
	sourceFile, err := fs.Open(src)
	if err != nil {
		return err
	}
	defer sourceFile.Close()

	info, err := sourceFile.Stat()
	if err != nil {
		return err
	}

	// Create destination directory if it doesn't exist
	if err := fs.MkdirAll(filepath.Dir(dst), DefaultDirPermissions); err != nil {
		return err
	}

	destFile, err := fs.OpenFile(dst, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, DefaultFilePermissions)
	if err != nil {
		return err
	}

	if _, err := io.Copy(destFile, sourceFile); err != nil {
		destFile.Close()
		fs.Remove(dst)
		return err
	}
	if err := destFile.Close(); err != nil {
		fs.Remove(dst)
		return err
	}

	// Metadata is best effort
	_ = fs.Chmod(dst, info.Mode().Perm())
	_ = fs.Chtimes(dst, info.ModTime(), info.ModTime())

	return nil
}
