package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/san-kum/fieldview/internal/config"
	"github.com/san-kum/fieldview/internal/viz"
)

var (
	log = logrus.New()

	verbose bool
	// Field file flags
	kindName  string
	gridSize  int
	precision int
	derive    bool
	dtFlag    float64
	// Run flags
	configFile  string
	preset      string
	orientation string
	theme       string
	noLoop      bool
	frameIndex  int
	// Render flags
	outDir  string
	every   int
	asSVG   bool
	pngPath string
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "fieldview",
		Short:         "decode and play back fluid simulation field dumps",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				log.SetLevel(logrus.DebugLevel)
			}
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	infoCmd := &cobra.Command{
		Use:   "info [file]",
		Short: "show the shape of a field dump",
		Args:  cobra.ExactArgs(1),
		RunE:  showInfo,
	}
	addFieldFlags(infoCmd)

	statsCmd := &cobra.Command{
		Use:   "stats [file]",
		Short: "per-frame statistics of a field dump",
		Args:  cobra.ExactArgs(1),
		RunE:  showStats,
	}
	addFieldFlags(statsCmd)
	statsCmd.Flags().BoolVar(&derive, "pct-density-error", false, "treat the file as divergence and report percent density error")
	statsCmd.Flags().Float64Var(&dtFlag, "dt", 0, "time step for --pct-density-error (default: from sim_params.json)")
	statsCmd.Flags().StringVar(&pngPath, "png", "", "also write the max-per-frame series as a PNG chart")

	convertCmd := &cobra.Command{
		Use:   "convert [in] [out]",
		Short: "convert between text, binary and zstd-compressed dumps",
		Args:  cobra.ExactArgs(2),
		RunE:  convertField,
	}
	addFieldFlags(convertCmd)
	convertCmd.Flags().IntVar(&precision, "precision", 2, "decimal places for text output (-1: shortest exact)")

	playCmd := &cobra.Command{
		Use:   "play [dir]",
		Short: "play a simulation run in the terminal",
		Args:  cobra.MaximumNArgs(1),
		RunE:  playRun,
	}
	addRunFlags(playCmd)
	playCmd.Flags().StringVar(&theme, "theme", "", "color theme ("+fmt.Sprint(viz.ThemeNames())+")")
	playCmd.Flags().BoolVar(&noLoop, "no-loop", false, "stop at the last frame")

	showCmd := &cobra.Command{
		Use:   "show [dir]",
		Short: "print a single frame of a run",
		Args:  cobra.MaximumNArgs(1),
		RunE:  showFrame,
	}
	addRunFlags(showCmd)
	showCmd.Flags().IntVar(&frameIndex, "frame", 0, "frame index")

	renderCmd := &cobra.Command{
		Use:   "render [dir]",
		Short: "export run frames as PNG images",
		Args:  cobra.MaximumNArgs(1),
		RunE:  renderRun,
	}
	addRunFlags(renderCmd)
	renderCmd.Flags().StringVar(&outDir, "out", "frames", "output directory")
	renderCmd.Flags().IntVar(&every, "every", 1, "render every nth frame")
	renderCmd.Flags().BoolVar(&asSVG, "svg", false, "also export the terminal quiver of each vector panel as SVG")

	paramsCmd := &cobra.Command{
		Use:   "params [file]",
		Short: "validate a simulation parameters file",
		Args:  cobra.ExactArgs(1),
		RunE:  showParams,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available run presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range config.ListPresets() {
				cfg := config.GetPreset(name)
				files := make([]string, len(cfg.Panels))
				for i, p := range cfg.Panels {
					files[i] = p.File
				}
				fmt.Printf("  %-10s %v\n", name, files)
			}
			return nil
		},
	}

	initCmd := &cobra.Command{
		Use:   "init-config [path]",
		Short: "write the default playback config as yaml",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.DefaultConfig()
			if preset != "" {
				if cfg = config.GetPreset(preset); cfg == nil {
					return fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
				}
			}
			return config.Save(args[0], cfg)
		},
	}
	initCmd.Flags().StringVar(&preset, "preset", "", "start from a preset")

	rootCmd.AddCommand(infoCmd, statsCmd, convertCmd, playCmd, showCmd, renderCmd, paramsCmd, presetsCmd, initCmd)

	if err := rootCmd.Execute(); err != nil {
		log.WithError(err).Error("fieldview failed")
		os.Exit(1)
	}
}

func addFieldFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&kindName, "kind", "scalar", "value kind: scalar or vector")
	cmd.Flags().IntVar(&gridSize, "n", 0, "grid size (default: N from sim_params.json next to the file)")
}

func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&configFile, "config", "", "playback config file (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	cmd.Flags().StringVar(&orientation, "orientation", "", "velocity orientation: cartesian or ij")
}
