package textfile

import "os"

// FS is the file system abstraction used for text load and save.
// Swapping the implementation allows testing with an in-memory store.
type FS interface {
	// ReadFile reads the entire file content.
	ReadFile(path string) ([]byte, error)

	// WriteFile writes data to a file, creating it if necessary.
	WriteFile(path string, data []byte) error

	// Exists reports whether the path exists.
	Exists(path string) bool
}

// OSFS implements FS using the operating system's file system.
type OSFS struct{}

// Ensure OSFS implements FS.
var _ FS = OSFS{}

// ReadFile reads the entire file content.
func (OSFS) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// WriteFile writes data to a file with owner read/write permissions.
func (OSFS) WriteFile(path string, data []byte) error {
	return os.WriteFile(path, data, 0o644)
}

// Exists reports whether the path exists.
func (OSFS) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
