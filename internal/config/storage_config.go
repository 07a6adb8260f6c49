package config

import (
	"os"
	"path/filepath"
)

const storageFileVar = "RF_STORAGE_FILE"

// StorageConfig locates the file that plays the part of the browser's local
// storage: the persisted token and remember flag live there and nowhere else.
type StorageConfig interface {
	GetStorageFile() string
}

type Storage struct{}

var _ StorageConfig = Storage{}

func (Storage) GetStorageFile() string {
	if path := os.Getenv(storageFileVar); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".rfonline.json"
	}
	return filepath.Join(home, ".rfonline.json")
}
