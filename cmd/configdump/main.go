package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/crawlkit/crawlkit/internal/config"
	"github.com/crawlkit/crawlkit/internal/logging"
)

func main() {
	app := kingpin.New("configdump", "Prints the effective crawler configuration resolved from the environment")
	format := app.Flag("format", "Output format").Default("yaml").Enum("yaml", "json")
	strict := app.Flag("strict", "Warn about actor_/apify_/crawlee_ variables that match no known setting").Bool()

	kingpin.MustParse(app.Parse(os.Args[1:]))

	cfg, err := config.GetGlobal()
	if err != nil {
		fmt.Fprintf(os.Stderr, "configdump: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.New(*cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "configdump: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync()
	}()

	if *strict {
		for _, name := range config.UnknownSettingVars(os.Environ()) {
			logger.Warn("environment variable matches no known setting", zap.String("name", name))
		}
	}

	out, err := encodeConfig(*cfg, *format)
	if err != nil {
		logger.Fatal("failed to encode configuration", zap.Error(err))
	}
	_, _ = os.Stdout.Write(out)
}

// encodeConfig renders cfg in the requested output format.
func encodeConfig(cfg config.Config, format string) ([]byte, error) {
	switch format {
	case "json":
		out, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(out, '\n'), nil
	default:
		return yaml.Marshal(cfg)
	}
}
