package photo

import (
	"context"

	"github.com/google/uuid"
)

// DeletePhoto removes the photo row; the media object is left on the host
func (p *photoService) DeletePhoto(ctx context.Context, id uuid.UUID) error {
	return p.repo.Delete(ctx, id)
}
