package storage

import "io"

// ObjectStorage is what the core needs from the file-storage
// collaborator: put bytes under a key, delete them later. Entities store
// only the key.
type ObjectStorage interface {
	Upload(key string, src io.Reader) error
	Delete(key string) error
}
