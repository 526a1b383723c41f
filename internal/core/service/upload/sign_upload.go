package upload

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"family-timeline/internal/core/domain"
)

var folderPattern = regexp.MustCompile(`^[A-Za-z0-9_\-/]+$`)

// SignUpload issues a credential for a direct upload into folder
func (u *uploadService) SignUpload(ctx context.Context, folder string) (*domain.UploadCredential, error) {

	folder = strings.Trim(strings.TrimSpace(folder), "/")
	if folder == "" {
		folder = u.cfg.DefaultFolder
	}
	if !folderPattern.MatchString(folder) || strings.Contains(folder, "//") {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidFolder, folder)
	}

	return u.signer.Sign(ctx, folder)
}
