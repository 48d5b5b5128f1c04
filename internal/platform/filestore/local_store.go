// Package filestore keeps uploaded avatars on the local disk.
package filestore

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/SscSPs/household_ledger/internal/apperrors"
	"github.com/SscSPs/household_ledger/internal/utils"
)

// PublicPrefix is the URL path the upload directory is served under.
const PublicPrefix = "/uploads"

var allowedExtensions = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
	".gif":  {},
	".webp": {},
}

// LocalStore names and locates avatar files inside one directory.
type LocalStore struct {
	dir string
}

// NewLocalStore creates dir if needed.
func NewLocalStore(dir string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload directory %s: %w", dir, err)
	}
	return &LocalStore{dir: dir}, nil
}

// Dir returns the directory uploads are written to.
func (s *LocalStore) Dir() string {
	return s.dir
}

// NewAvatarTarget picks a fresh file name for an upload of originalName and
// returns the disk path to write it to and the public URL it is served at.
func (s *LocalStore) NewAvatarTarget(accountID int64, originalName string) (diskPath, publicURL string, err error) {
	ext := strings.ToLower(filepath.Ext(originalName))
	if _, ok := allowedExtensions[ext]; !ok {
		return "", "", fmt.Errorf("%w: avatar must be a jpg, png, gif or webp image", apperrors.ErrValidation)
	}
	suffix, err := utils.GenerateSecureRandomString(8)
	if err != nil {
		return "", "", fmt.Errorf("name avatar file: %w", err)
	}
	name := fmt.Sprintf("avatar-%d-%s%s", accountID, suffix, ext)
	return filepath.Join(s.dir, name), PublicPrefix + "/" + name, nil
}
