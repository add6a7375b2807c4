package cmd

import (
	"fmt"
	"os"

	"VDOStats/internal/devices"
	"VDOStats/internal/format"
	"VDOStats/internal/pkg/config"
	"VDOStats/internal/pkg/logger"
	"VDOStats/internal/report"
	"VDOStats/internal/stats"

	"github.com/spf13/cobra"
)

var (
	configPath    string
	humanReadable bool
	useSI         bool
	verbose       bool
	all           bool
	showVersion   bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "vdostats [device ...]",
	Short: "Report statistics for deduplication volumes",
	Long: `vdostats reports runtime statistics for the deduplication block
devices active on this host. Without arguments every active volume is
reported; naming devices restricts the report to those volumes and
requires each of them to be a genuine dedup volume.`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

// Execute runs the root command and sets the process exit status.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "vdostats: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "/etc/vdostats/config.yaml", "Path to configuration file")
	rootCmd.Flags().BoolVar(&humanReadable, "human-readable", false, "Display sizes in scaled units rather than 1K blocks")
	rootCmd.Flags().BoolVar(&useSI, "si", false, "Use SI units (powers of 1000); implies --human-readable")
	rootCmd.Flags().BoolVar(&verbose, "verbose", false, "Dump every statistic for each volume")
	rootCmd.Flags().BoolVar(&all, "all", false, "Alias for --verbose")
	rootCmd.Flags().BoolVar(&showVersion, "version", false, "Print version information and exit")
}

func run(cmd *cobra.Command, args []string) error {
	if showVersion {
		report.PrintVersion(cmd.OutOrStdout())
		return nil
	}

	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		return err
	}
	if err := logger.Init(cfg); err != nil {
		return err
	}
	defer logger.Sync()

	opts := format.Options{
		HumanReadable: humanReadable || useSI,
		SI:            useSI,
		Verbose:       verbose || all,
	}

	enum := devices.NewEnumerator(cfg.Devices.Enumerator, cfg.Devices.DeviceDir)
	fetcher := stats.NewSysfsFetcher(cfg.Devices.SysfsBase)

	return report.Run(enum, fetcher, args, opts, cmd.OutOrStdout())
}
