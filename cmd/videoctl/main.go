package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"family-timeline/internal/adapters/handlers/http/httpjson"
	"family-timeline/internal/client/videojob"
	"family-timeline/internal/core/domain"

	"github.com/google/uuid"
	"github.com/kelseyhightower/envconfig"
	"golang.org/x/term"
)

type clientConfig struct {
	Server   string        `envconfig:"VIDEOCTL_SERVER" default:"http://localhost:8080"`
	Password string        `envconfig:"FAMILY_PASSWORD"`
	Timeout  time.Duration `envconfig:"VIDEOCTL_HTTP_TIMEOUT" default:"30s"`
}

func main() {
	var cfg clientConfig
	if err := envconfig.Process("", &cfg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	var (
		from, to, jobID, outDir string
	)
	flag.StringVar(&cfg.Server, "server", cfg.Server, "API base URL")
	flag.StringVar(&from, "from", "", "range start (YYYY-MM-DD or RFC 3339)")
	flag.StringVar(&to, "to", "", "range end (YYYY-MM-DD or RFC 3339)")
	flag.StringVar(&jobID, "job", "", "poll an existing job instead of creating one")
	flag.StringVar(&outDir, "out", ".", "directory the rendered video is written to")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, from, to, jobID, outDir, logger); err != nil {
		logger.Error("videoctl failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg clientConfig, from, to, jobID, outDir string, logger *slog.Logger) error {
	client, err := videojob.NewClient(cfg.Server, cfg.Timeout)
	if err != nil {
		return err
	}

	password := cfg.Password
	if password == "" {
		password, err = promptPassword()
		if err != nil {
			return fmt.Errorf("failed to read password: %w", err)
		}
	}
	if err := client.Login(ctx, password); err != nil {
		return fmt.Errorf("login: %w", err)
	}

	id, err := resolveJob(ctx, client, from, to, jobID)
	if err != nil {
		return err
	}
	logger.Info("tracking job", "job_id", id)

	tracker := videojob.NewTracker(videojob.NewPoller(client, logger), func(job *videojob.Job) {
		logger.Info("job status", "job_id", job.ID, "status", job.Status)
	})
	defer tracker.Stop()

	result := <-tracker.Start(ctx, id)
	if result.Err != nil {
		return result.Err
	}
	if result.Job.Status == domain.JobStatusFailed {
		return errors.New("render failed")
	}

	path := filepath.Join(outDir, id.String()+".mp4")
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	n, err := client.Download(ctx, id, f)
	if err != nil {
		return fmt.Errorf("download: %w", err)
	}
	logger.Info("video downloaded", "path", path, "bytes", n)
	return nil
}

func resolveJob(ctx context.Context, client *videojob.Client, from, to, jobID string) (uuid.UUID, error) {
	if jobID != "" {
		return uuid.Parse(jobID)
	}
	if from == "" || to == "" {
		return uuid.Nil, errors.New("-from and -to are required unless -job is set")
	}

	start, err := httpjson.ParseTime(from)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid -from: %w", err)
	}
	end, err := httpjson.ParseTime(to)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid -to: %w", err)
	}

	return client.CreateJob(ctx, start, end)
}

func promptPassword() (string, error) {
	fmt.Fprint(os.Stderr, "Family password: ")
	pw, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", err
	}
	return string(pw), nil
}
