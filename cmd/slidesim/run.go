// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"gioui.org/x/slide"
	"gioui.org/x/slide/internal/config"
)

type runFlags struct {
	verbose bool
	save    string
	restore string
	frame   time.Duration
}

func newRunCmd() *cobra.Command {
	var f runFlags
	cmd := &cobra.Command{
		Use:   "run <scenario.yaml>",
		Short: "Replay a scenario",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScenario(cmd.OutOrStdout(), args[0], f)
		},
	}
	fl := cmd.Flags()
	fl.BoolVarP(&f.verbose, "verbose", "v", false, "log gesture decisions and offsets")
	fl.StringVar(&f.save, "save", "", "write the final slider state to a TOML bundle")
	fl.StringVar(&f.restore, "restore", "", "restore slider parameters from a TOML bundle")
	fl.DurationVar(&f.frame, "frame", 16*time.Millisecond, "animation frame interval")
	return cmd
}

func runScenario(w io.Writer, path string, f runFlags) error {
	if f.frame <= 0 {
		return fmt.Errorf("invalid frame interval %v", f.frame)
	}
	sc, err := config.Load(path)
	if err != nil {
		return err
	}
	level := slog.LevelInfo
	if f.verbose || sc.Options.Debug {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			// Output only depends on the scenario.
			if a.Key == slog.TimeKey && len(groups) == 0 {
				return slog.Attr{}
			}
			return a
		},
	}))

	var saved slide.Bundle
	if f.restore != "" {
		saved, err = readBundle(f.restore)
		if err != nil {
			return err
		}
	}
	s, err := replay(sc, saved, log, f.frame)
	if err != nil {
		return err
	}
	log.Info("done", "state", s.State(), "offset", s.Offset())
	if f.save != "" {
		return writeBundle(f.save, s)
	}
	return nil
}

func readBundle(path string) (slide.Bundle, error) {
	r, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return slide.DecodeBundle(r)
}

func writeBundle(path string, s *slide.Slider) error {
	b := slide.Bundle{}
	s.Save(b)
	w, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := b.Encode(w); err != nil {
		w.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return w.Close()
}
