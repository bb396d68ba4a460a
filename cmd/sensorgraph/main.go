package main

import (
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/rowan-sl/hayselnut/src/logging"
	"github.com/rowan-sl/hayselnut/src/readings"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "sensorgraph [file]",
	Short: "Plot weather station readings",
	Long: `sensorgraph loads a CSV of station readings (time, temperature, humidity,
pressure, battery) and shows them as one chart with an independent y axis per metric.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func main() {
	Execute()
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logging.Errorf("%v", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	f := rootCmd.PersistentFlags()
	f.StringVar(&cfgFile, "config", "", "config file (default is sensorgraph.yaml)")
	f.StringP("file", "f", readings.DefaultFile, "CSV file to plot")
	f.String("location", "Local", "time zone readings are normalized to")
	f.String("tick-zone", "EST", "time zone the time axis is labeled in")
	f.String("temperature-unit", "F", "temperature unit: C, F or K")
	f.Int("width", 1100, "initial window width")
	f.Int("height", 600, "initial window height")
	f.String("title", "", "chart title")
	f.String("log-level", "info", "debug, info, warn or error")

	setDefaults(viper.GetViper())
	viper.BindPFlags(f)
	viper.SetEnvPrefix("SENSORGRAPH")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("sensorgraph")
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME/.sensorgraph/")
		viper.AddConfigPath("/etc/sensorgraph/")
	}

	if err := viper.ReadInConfig(); err == nil {
		logging.Debugf("using config file: %s", viper.ConfigFileUsed())
	} else if cfgFile != "" {
		logging.Warnf("config file %s: %v", cfgFile, err)
	}
}

func run(cmd *cobra.Command, args []string) error {
	if len(args) == 1 {
		viper.Set("file", args[0])
	}
	cfg, err := configFromViper(viper.GetViper())
	if err != nil {
		return err
	}
	logging.SetLogLevel(cfg.LogLevel)

	rs, err := loadReadings(cfg)
	if err != nil {
		return err
	}
	return runViewer(cfg, rs)
}

// loadReadings reads cfg.File and reports what was found.
func loadReadings(cfg Config) ([]readings.Reading, error) {
	defer logging.TimeTrack(time.Now(), "load "+cfg.File)
	if !sameZone(cfg.Location, cfg.TickZone, time.Now()) {
		logging.Warnf("readings are normalized to %s but the time axis is labeled in %s", cfg.Location, cfg.TickZone)
	}
	rs, err := readings.Load(cfg.File, cfg.Location)
	if err != nil {
		return nil, err
	}
	logging.Infof("%s: %s", cfg.File, readings.Summarize(rs))
	return rs, nil
}
