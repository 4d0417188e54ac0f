package config_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/quantfold/fedgauge/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

var configEnvVars = []string{
	"FEDGAUGE_CONFIG",
	"FEDGAUGE_ADDR",
	"FEDGAUGE_LOG_LEVEL",
	"FEDGAUGE_STORE_PATH",
	"FEDGAUGE_QUEUE_SIZE",
	"FEDGAUGE_WORKER_COUNT",
	"FEDGAUGE_MAX_NEWS_RESULTS",
	"FEDGAUGE_MAX_EVIDENCE",
	"FEDGAUGE_NEWS_BLEND_WEIGHT",
	"FEDGAUGE_BACKTEST_MEETINGS",
}

func clearConfigEnvVars() {
	for _, key := range configEnvVars {
		_ = os.Unsetenv(key)
	}
}

func createTempConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config file: %v", err)
	}
	return path
}

func TestConfigLoader(t *testing.T) {
	convey.Convey("Given a config loader", t, func() {
		ctx := context.Background()

		convey.Convey("When loading config with defaults only", func() {
			clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load successfully with defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":9090")
				convey.So(cfg.RefreshQueueSize, convey.ShouldEqual, 1024)
				convey.So(cfg.NewsBlendWeight, convey.ShouldEqual, 0.7)
			})
		})

		convey.Convey("When loading config with environment variables", func() {
			_ = os.Setenv("FEDGAUGE_ADDR", ":8080")
			_ = os.Setenv("FEDGAUGE_QUEUE_SIZE", "2048")
			_ = os.Setenv("FEDGAUGE_WORKER_COUNT", "8")
			_ = os.Setenv("FEDGAUGE_NEWS_BLEND_WEIGHT", "0.5")
			_ = os.Setenv("FEDGAUGE_BACKTEST_MEETINGS", "4")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should override defaults with env vars", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8080")
				convey.So(cfg.RefreshQueueSize, convey.ShouldEqual, 2048)
				convey.So(cfg.WorkerCount, convey.ShouldEqual, 8)
				convey.So(cfg.NewsBlendWeight, convey.ShouldEqual, 0.5)
				convey.So(cfg.BacktestMeetings, convey.ShouldEqual, 4)
			})
		})

		convey.Convey("When loading config from a YAML file", func() {
			yamlContent := `
addr: ":7070"
queue_size: 512
max_news_results: 10
hawkish_threshold: 2.0
dovish_threshold: -2.0
`
			tmpFile := createTempConfigFile(t, yamlContent)
			_ = os.Setenv("FEDGAUGE_CONFIG", tmpFile)
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then file values should override defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":7070")
				convey.So(cfg.RefreshQueueSize, convey.ShouldEqual, 512)
				convey.So(cfg.MaxNewsResults, convey.ShouldEqual, 10)
				convey.So(cfg.HawkishThreshold, convey.ShouldEqual, 2.0)
				convey.So(cfg.DovishThreshold, convey.ShouldEqual, -2.0)
				convey.So(cfg.MaxEvidence, convey.ShouldEqual, 8) // default kept
			})
		})

		convey.Convey("When loading config with both file and environment variables", func() {
			yamlContent := `
addr: ":7070"
queue_size: 512
`
			tmpFile := createTempConfigFile(t, yamlContent)
			_ = os.Setenv("FEDGAUGE_CONFIG", tmpFile)
			_ = os.Setenv("FEDGAUGE_ADDR", ":8080")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then environment variables should override file values", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8080")         // Overridden by env
				convey.So(cfg.RefreshQueueSize, convey.ShouldEqual, 512) // From file
			})
		})

		convey.Convey("When loading config with a non-existent file", func() {
			_ = os.Setenv("FEDGAUGE_CONFIG", "/non/existent/file.yaml")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return an error", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When loading config with empty addr", func() {
			_ = os.Setenv("FEDGAUGE_ADDR", "")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return a validation error", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(err.Error(), convey.ShouldContainSubstring, "addr must not be empty")
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When loading config with an invalid numeric value", func() {
			_ = os.Setenv("FEDGAUGE_QUEUE_SIZE", "not_a_number")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return an error", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When the file defines a broken action table", func() {
			yamlContent := `
action_bands:
  - min: -5.0
    max: 0.0
    action: "Cut"
    direction: "easing"
    magnitude_bp: 25
  - min: 1.0
    max: 5.0
    action: "Hike"
    direction: "tightening"
    magnitude_bp: 25
`
			tmpFile := createTempConfigFile(t, yamlContent)
			_ = os.Setenv("FEDGAUGE_CONFIG", tmpFile)
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return a validation error", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(err.Error(), convey.ShouldContainSubstring, "action_bands")
				convey.So(cfg, convey.ShouldBeNil)
			})
		})
	})
}
