package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/san-kum/fieldview/internal/config"
	"github.com/san-kum/fieldview/internal/export"
	"github.com/san-kum/fieldview/internal/storage"
	"github.com/san-kum/fieldview/internal/viz"
)

// loadRunConfig resolves the playback config: preset first, then the config
// file, then command line overrides.
func loadRunConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}
	if cmd.Flags().Changed("orientation") {
		cfg.Orientation = orientation
	}
	if f := cmd.Flags().Lookup("theme"); f != nil && f.Changed {
		cfg.Theme = theme
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func openRun(cmd *cobra.Command, args []string) (*storage.Run, *config.Config, []storage.Panel, error) {
	cfg, err := loadRunConfig(cmd)
	if err != nil {
		return nil, nil, nil, err
	}
	dir := cfg.RunDir
	if len(args) > 0 {
		dir = args[0]
	}
	run, err := storage.Open(dir, cfg, log)
	if err != nil {
		return nil, nil, nil, err
	}
	panels, err := run.LoadAll()
	if err != nil {
		return nil, nil, nil, err
	}
	return run, cfg, panels, nil
}

func newPlayer(run *storage.Run, cfg *config.Config, panels []storage.Panel) (viz.Player, error) {
	orient, err := viz.ParseOrientation(cfg.Orientation)
	if err != nil {
		return viz.Player{}, err
	}
	return viz.NewPlayer(panels, viz.PlayerOptions{
		Interval:    run.Params.FrameInterval(),
		Orientation: orient,
		Theme:       viz.GetTheme(cfg.Theme),
		Loop:        !noLoop,
		ChartPanel:  -1,
	})
}

func playRun(cmd *cobra.Command, args []string) error {
	run, cfg, panels, err := openRun(cmd, args)
	if err != nil {
		return err
	}
	player, err := newPlayer(run, cfg, panels)
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"frames": player.Frames(), "interval": run.Params.FrameInterval(),
	}).Debug("starting playback")
	return viz.Play(player)
}

func showFrame(cmd *cobra.Command, args []string) error {
	run, cfg, panels, err := openRun(cmd, args)
	if err != nil {
		return err
	}
	player, err := newPlayer(run, cfg, panels)
	if err != nil {
		return err
	}
	if frameIndex < 0 || frameIndex >= player.Frames() {
		return fmt.Errorf("frame %d out of range [0, %d)", frameIndex, player.Frames())
	}
	fmt.Println(player.RenderFrame(frameIndex))
	return nil
}

func renderRun(cmd *cobra.Command, args []string) error {
	_, cfg, panels, err := openRun(cmd, args)
	if err != nil {
		return err
	}
	orient, err := viz.ParseOrientation(cfg.Orientation)
	if err != nil {
		return err
	}
	opts := export.DefaultOptions()
	opts.Orientation = orient

	paths, err := export.RenderAll(outDir, panels, every, opts, log)
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{"frames": len(paths), "dir": outDir}).Info("rendered frames")

	if asSVG {
		return renderSVG(panels, orient, viz.GetTheme(cfg.Theme))
	}
	return nil
}

func renderSVG(panels []storage.Panel, orient viz.Orientation, th viz.Theme) error {
	paths, err := export.RenderQuiverSVGs(outDir, panels, every, orient, string(th.Arrow))
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{"files": len(paths), "dir": outDir}).Info("wrote quiver svgs")
	return nil
}
