package cloudinary

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"sort"
	"strconv"
	"strings"
	"time"

	"family-timeline/internal/config"
	"family-timeline/internal/core/domain"
)

// Signer produces signed upload parameters for the Cloudinary upload API
type Signer struct {
	config config.CloudinaryConfig
	now    func() time.Time
}

// NewSigner returns Signer
func NewSigner(cfg config.CloudinaryConfig) *Signer {
	return &Signer{config: cfg, now: time.Now}
}

// Sign returns the parameters a browser posts along with the file
func (s *Signer) Sign(_ context.Context, folder string) (*domain.UploadCredential, error) {
	timestamp := s.now().Unix()

	params := map[string]string{
		"folder":    folder,
		"timestamp": strconv.FormatInt(timestamp, 10),
	}

	return &domain.UploadCredential{
		Provider:  config.UploadProviderCloudinary,
		Folder:    folder,
		Timestamp: timestamp,
		Signature: SignParams(params, s.config.APISecret),
		APIKey:    s.config.APIKey,
		CloudName: s.config.CloudName,
	}, nil
}

// SignParams computes the hex SHA-1 of the sorted "key=value" pairs joined by "&", followed by the secret.
// Empty values are left out.
func SignParams(params map[string]string, secret string) string {
	keys := make([]string, 0, len(params))
	for k, v := range params {
		if v == "" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+params[k])
	}

	sum := sha1.Sum([]byte(strings.Join(pairs, "&") + secret))
	return hex.EncodeToString(sum[:])
}
