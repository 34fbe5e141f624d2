package config

import (
	"log/slog"

	controller "github.com/secmon-lab/pregtrack/pkg/controller/http"
	"github.com/secmon-lab/pregtrack/pkg/service/asset"
	"github.com/urfave/cli/v3"
)

// Server holds server configuration
type Server struct {
	Addr           string
	ImageDir       string
	ImageURLPrefix string
}

// Flags returns CLI flags for Server configuration
func (s *Server) Flags() []cli.Flag {
	return append([]cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "Server address",
			Value:       "localhost:8080",
			Sources:     cli.EnvVars("PREGTRACK_ADDR"),
			Destination: &s.Addr,
		},
	}, s.ImageFlags()...)
}

// ImageFlags returns CLI flags for the image directory only
func (s *Server) ImageFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "image-dir",
			Usage:       "Directory containing week{N}.png fetus images",
			Value:       "images",
			Sources:     cli.EnvVars("PREGTRACK_IMAGE_DIR"),
			Destination: &s.ImageDir,
		},
		&cli.StringFlag{
			Name:        "image-url-prefix",
			Usage:       "URL path the images are served under",
			Value:       asset.DefaultURLPrefix,
			Sources:     cli.EnvVars("PREGTRACK_IMAGE_URL_PREFIX"),
			Destination: &s.ImageURLPrefix,
		},
	}
}

// Assets returns the image store backing week content
func (s *Server) Assets() *asset.Dir {
	return asset.NewDir(s.ImageDir, s.ImageURLPrefix)
}

// HTTP returns configuration for the HTTP controller
func (s *Server) HTTP() controller.Config {
	return controller.Config{
		Addr:           s.Addr,
		ImageDir:       s.ImageDir,
		ImageURLPrefix: asset.NormalizePrefix(s.ImageURLPrefix),
	}
}

// LogValue returns structured log value
func (s Server) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("addr", s.Addr),
		slog.String("image_dir", s.ImageDir),
		slog.String("image_url_prefix", s.ImageURLPrefix),
	)
}
