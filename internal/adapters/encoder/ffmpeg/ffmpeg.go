package ffmpeg

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
	"time"

	"family-timeline/internal/config"
)

const defaultTailBytes = 8 << 10

// Encoder renders videos by running the ffmpeg binary
type Encoder struct {
	binary    string
	tailBytes int
	logger    *slog.Logger
}

// NewEncoder returns Encoder
func NewEncoder(cfg config.VideoConfig, logger *slog.Logger) *Encoder {
	tailBytes := cfg.StderrTailBytes
	if tailBytes <= 0 {
		tailBytes = defaultTailBytes
	}
	return &Encoder{binary: cfg.FFmpegPath, tailBytes: tailBytes, logger: logger}
}

// Args returns the command line producing the placeholder clip at outPath.
// The container is forced since outPath may not end in .mp4.
func Args(outPath string) []string {
	return []string{
		"-y",
		"-f", "lavfi", "-i", "color=c=black:s=1280x720:d=5:r=25",
		"-f", "lavfi", "-i", "anullsrc",
		"-shortest",
		"-c:v", "libx264",
		"-pix_fmt", "yuv420p",
		"-c:a", "aac",
		"-f", "mp4",
		outPath,
	}
}

// Render runs ffmpeg until it exits or ctx is done
func (e *Encoder) Render(ctx context.Context, outPath string) error {
	stderr := newTailBuffer(e.tailBytes)

	cmd := exec.CommandContext(ctx, e.binary, Args(outPath)...)
	cmd.Stderr = stderr
	cmd.WaitDelay = 5 * time.Second

	start := time.Now()
	err := cmd.Run()
	if err == nil {
		e.logger.Debug("ffmpeg finished", "out", outPath, "duration", time.Since(start))
		return nil
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		return fmt.Errorf("ffmpeg interrupted: %w", ctxErr)
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return fmt.Errorf("ffmpeg exited with code %d: %s", exitErr.ExitCode(), strings.TrimSpace(stderr.String()))
	}
	return fmt.Errorf("failed to launch ffmpeg: %w", err)
}
