package config

import (
	"log/slog"
	"os"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/pregtrack/pkg/domain/model"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

// DefaultRefreshInterval is how often the status card is recomputed
const DefaultRefreshInterval = 24 * time.Hour

// Tracker holds pregnancy and display configuration
type Tracker struct {
	ConfigFile         string
	ConceptionDate     string
	LMPDate            string
	RefreshInterval    time.Duration
	Header             string
	ShowHeader         bool
	ShowDaysRemaining  bool
	ShowSizeComparison bool
	ShowMilestones     bool
}

// TrackerFile is the YAML representation of tracker settings. Absent keys
// leave the flag value untouched.
type TrackerFile struct {
	ConceptionDate     *string `yaml:"conception_date"`
	LMPDate            *string `yaml:"lmp_date"`
	RefreshIntervalMS  *int64  `yaml:"refresh_interval_ms"`
	Header             *string `yaml:"header"`
	ShowHeader         *bool   `yaml:"show_header"`
	ShowDaysRemaining  *bool   `yaml:"show_days_remaining"`
	ShowSizeComparison *bool   `yaml:"show_size_comparison"`
	ShowMilestones     *bool   `yaml:"show_milestones"`
}

// TrackerSettings is the resolved tracker configuration
type TrackerSettings struct {
	Pregnancy       *model.PregnancyConfig
	Display         model.DisplayOptions
	RefreshInterval time.Duration
}

// Flags returns CLI flags for Tracker configuration
func (t *Tracker) Flags() []cli.Flag {
	defaults := model.DefaultDisplayOptions()

	return []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Aliases:     []string{"c"},
			Usage:       "YAML file with tracker settings. Explicit flags take precedence",
			Category:    "Tracker",
			Sources:     cli.EnvVars("PREGTRACK_CONFIG"),
			Destination: &t.ConfigFile,
		},
		&cli.StringFlag{
			Name:        "conception-date",
			Usage:       "Conception date (YYYY-MM-DD)",
			Category:    "Tracker",
			Sources:     cli.EnvVars("PREGTRACK_CONCEPTION_DATE"),
			Destination: &t.ConceptionDate,
		},
		&cli.StringFlag{
			Name:        "lmp-date",
			Usage:       "First day of the last menstrual period (YYYY-MM-DD)",
			Category:    "Tracker",
			Sources:     cli.EnvVars("PREGTRACK_LMP_DATE"),
			Destination: &t.LMPDate,
		},
		&cli.DurationFlag{
			Name:        "refresh-interval",
			Usage:       "Interval between status recomputations",
			Category:    "Tracker",
			Value:       DefaultRefreshInterval,
			Sources:     cli.EnvVars("PREGTRACK_REFRESH_INTERVAL"),
			Destination: &t.RefreshInterval,
		},
		&cli.StringFlag{
			Name:        "header",
			Usage:       "Header text of the status card",
			Category:    "Display",
			Value:       defaults.Header,
			Sources:     cli.EnvVars("PREGTRACK_HEADER"),
			Destination: &t.Header,
		},
		&cli.BoolFlag{
			Name:        "show-header",
			Usage:       "Show the header",
			Category:    "Display",
			Value:       defaults.ShowHeader,
			Sources:     cli.EnvVars("PREGTRACK_SHOW_HEADER"),
			Destination: &t.ShowHeader,
		},
		&cli.BoolFlag{
			Name:        "show-days-remaining",
			Usage:       "Show the number of days until the due date",
			Category:    "Display",
			Value:       defaults.ShowDaysRemaining,
			Sources:     cli.EnvVars("PREGTRACK_SHOW_DAYS_REMAINING"),
			Destination: &t.ShowDaysRemaining,
		},
		&cli.BoolFlag{
			Name:        "show-size-comparison",
			Usage:       "Show the size comparison of the current week",
			Category:    "Display",
			Value:       defaults.ShowSizeComparison,
			Sources:     cli.EnvVars("PREGTRACK_SHOW_SIZE_COMPARISON"),
			Destination: &t.ShowSizeComparison,
		},
		&cli.BoolFlag{
			Name:        "show-milestones",
			Usage:       "Show developmental milestones of the current week",
			Category:    "Display",
			Value:       defaults.ShowMilestones,
			Sources:     cli.EnvVars("PREGTRACK_SHOW_MILESTONES"),
			Destination: &t.ShowMilestones,
		},
	}
}

// Configure resolves the settings of the running command
func (t *Tracker) Configure(c *cli.Command) (*TrackerSettings, error) {
	return t.resolve(c.IsSet)
}

func (t *Tracker) resolve(isSet func(name string) bool) (*TrackerSettings, error) {
	merged := *t

	if t.ConfigFile != "" {
		file, err := LoadTrackerFile(t.ConfigFile)
		if err != nil {
			return nil, err
		}
		merged.apply(file, isSet)
	}

	pregnancy, err := model.NewPregnancyConfig(merged.ConceptionDate, merged.LMPDate)
	if err != nil {
		return nil, goerr.Wrap(err, "invalid tracker configuration")
	}

	if merged.RefreshInterval <= 0 {
		return nil, goerr.New("refresh interval must be positive",
			goerr.V("interval", merged.RefreshInterval))
	}

	header := merged.Header
	if header == "" {
		header = model.DefaultHeader
	}

	return &TrackerSettings{
		Pregnancy: pregnancy,
		Display: model.DisplayOptions{
			Header:             header,
			ShowHeader:         merged.ShowHeader,
			ShowDaysRemaining:  merged.ShowDaysRemaining,
			ShowSizeComparison: merged.ShowSizeComparison,
			ShowMilestones:     merged.ShowMilestones,
		},
		RefreshInterval: merged.RefreshInterval,
	}, nil
}

// apply copies file values into t for every option not set on the command line.
// The two reference dates are one option: setting either flag discards both file dates.
func (t *Tracker) apply(file *TrackerFile, isSet func(name string) bool) {
	if !isSet("conception-date") && !isSet("lmp-date") {
		if file.ConceptionDate != nil {
			t.ConceptionDate = *file.ConceptionDate
		}
		if file.LMPDate != nil {
			t.LMPDate = *file.LMPDate
		}
	}

	if file.RefreshIntervalMS != nil && !isSet("refresh-interval") {
		t.RefreshInterval = time.Duration(*file.RefreshIntervalMS) * time.Millisecond
	}
	if file.Header != nil && !isSet("header") {
		t.Header = *file.Header
	}

	applyBool := func(name string, v *bool, dst *bool) {
		if v != nil && !isSet(name) {
			*dst = *v
		}
	}
	applyBool("show-header", file.ShowHeader, &t.ShowHeader)
	applyBool("show-days-remaining", file.ShowDaysRemaining, &t.ShowDaysRemaining)
	applyBool("show-size-comparison", file.ShowSizeComparison, &t.ShowSizeComparison)
	applyBool("show-milestones", file.ShowMilestones, &t.ShowMilestones)
}

// LoadTrackerFile loads tracker settings from YAML file
func LoadTrackerFile(path string) (*TrackerFile, error) {
	if path == "" {
		return nil, goerr.New("configuration file path is required")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, goerr.Wrap(err, "configuration file not found",
				goerr.V("path", path))
		}
		return nil, goerr.Wrap(err, "failed to read configuration file",
			goerr.V("path", path))
	}

	var file TrackerFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, goerr.Wrap(err, "failed to parse YAML configuration",
			goerr.V("path", path))
	}

	return &file, nil
}

// LogValue returns structured log value
func (t Tracker) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("config_file", t.ConfigFile),
		slog.String("conception_date", t.ConceptionDate),
		slog.String("lmp_date", t.LMPDate),
		slog.Duration("refresh_interval", t.RefreshInterval),
		slog.String("header", t.Header),
		slog.Bool("show_header", t.ShowHeader),
		slog.Bool("show_days_remaining", t.ShowDaysRemaining),
		slog.Bool("show_size_comparison", t.ShowSizeComparison),
		slog.Bool("show_milestones", t.ShowMilestones),
	)
}
