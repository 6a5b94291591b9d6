package impl

import (
	"fmt"
	"path/filepath"
	"strings"

	domainerrors "pawsconnect/internal/domain/errors"
	"pawsconnect/internal/usecase"

	"github.com/google/uuid"
)

// allowedImageExts is the extension allow-list for uploaded images.
// Everything else is rejected before it reaches the store.
var allowedImageExts = map[string]struct{}{
	".png":  {},
	".jpg":  {},
	".jpeg": {},
	".gif":  {},
}

// imageFilename validates the upload and returns a sanitized,
// collision-resistant storage name. The only part of the client-supplied
// filename that survives is its extension.
func imageFilename(upload *usecase.ImageUpload, ownerID int64) (string, error) {
	if upload == nil || upload.Content == nil {
		return "", domainerrors.ErrImageMissing
	}

	ext := strings.ToLower(filepath.Ext(upload.Filename))
	if _, ok := allowedImageExts[ext]; !ok {
		return "", domainerrors.ErrImageType
	}

	return fmt.Sprintf("pet_%d_%s%s", ownerID, uuid.New().String(), ext), nil
}
