package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/spf13/cobra"

	"github.com/vellum-ui/vellum/internal/config"
	"github.com/vellum-ui/vellum/pkg/gallery"
	"github.com/vellum-ui/vellum/pkg/store"
	"github.com/vellum-ui/vellum/pkg/theme"
)

func galleryCmd() *cobra.Command {
	var (
		port  int
		host  string
		watch bool
	)

	cmd := &cobra.Command{
		Use:   "gallery",
		Short: "Start the document gallery server",
		Long: `Start the gallery server for browsing and previewing documents.

The gallery serves decoded documents over HTTP and, with the fs
backend, pushes live reload events to connected browsers when
document files change.

Examples:
  vellum gallery
  vellum gallery --port=8080
  vellum gallery --host=0.0.0.0`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGallery(cmd, port, host, watch)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to run on (default from vellum.yaml)")
	cmd.Flags().StringVarP(&host, "host", "H", "", "Host to bind to (default from vellum.yaml)")
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "Force live reload on")

	return cmd
}

func runGallery(cmd *cobra.Command, port int, host string, watch bool) error {
	cfg, err := config.Load(".")
	if err != nil {
		return err
	}
	if port > 0 {
		cfg.Gallery.Port = port
	}
	if host != "" {
		cfg.Gallery.Host = host
	}
	if watch {
		cfg.Gallery.Watch = true
	}

	engine, err := newEngine(cfg)
	if err != nil {
		return err
	}

	docStore, watchDir, err := newStore(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	galleryTheme := theme.DefaultLight()
	if cfg.Theme == "dark" {
		galleryTheme = theme.DefaultDark()
	}

	srv, err := gallery.New(gallery.Config{
		Addr:     cfg.Addr(),
		Store:    docStore,
		Engine:   engine,
		WatchDir: watchDir,
		Theme:    galleryTheme,
	})
	if err != nil {
		return err
	}

	printBanner()
	fmt.Println()
	info("gallery on http://%s", cfg.Addr())
	if watchDir != "" {
		info("watching %s", watchDir)
	}
	fmt.Println()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	return srv.Start(ctx)
}

// newStore builds the configured document store. The returned watchDir
// is empty when live reload does not apply to the backend.
func newStore(ctx context.Context, cfg *config.Config) (store.Store, string, error) {
	switch cfg.Store.Backend {
	case "", "fs":
		fsStore, err := store.NewFSStore(cfg.Documents)
		if err != nil {
			return nil, "", err
		}
		watchDir := ""
		if cfg.Gallery.Watch {
			watchDir = cfg.Documents
		}
		return fsStore, watchDir, nil
	case "s3":
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
		if err != nil {
			return nil, "", fmt.Errorf("loading AWS config: %w", err)
		}
		client := s3.NewFromConfig(awsCfg)
		return store.NewS3Store(client, cfg.Store.Bucket, cfg.Store.Prefix), "", nil
	default:
		return nil, "", fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
	}
}
