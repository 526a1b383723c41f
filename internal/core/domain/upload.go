package domain

import "time"

// UploadCredential is what a client needs to upload straight to the media host.
// Fields are filled depending on the provider.
type UploadCredential struct {
	Provider string `json:"provider"`
	Folder   string `json:"folder"`

	// presigned PUT (minio)
	Method    string            `json:"method,omitempty"`
	UploadURL string            `json:"uploadUrl,omitempty"`
	Headers   map[string]string `json:"headers,omitempty"`
	PublicID  string            `json:"publicId,omitempty"`
	PublicURL string            `json:"publicUrl,omitempty"`
	ExpiresAt *time.Time        `json:"expiresAt,omitempty"`

	// signed form upload (cloudinary)
	Timestamp int64  `json:"timestamp,omitempty"`
	Signature string `json:"signature,omitempty"`
	APIKey    string `json:"apiKey,omitempty"`
	CloudName string `json:"cloudName,omitempty"`
}
