// SPDX-License-Identifier: Unlicense OR MIT

// Command slidesim replays pointer gestures against a slider and
// prints the resulting notifications.
//
// A scenario is a YAML file:
//
//	options:
//	  directions: down
//	  duration_ms: 200
//	geometry:
//	  bounds: [0, 100, 360, 300]
//	  container: [0, 0, 360, 640]
//	  px_per_dp: 2
//	steps:
//	  - {at: 0, kind: press, x: 180, y: 120}
//	  - {at: 16, kind: move, x: 180, y: 220}
//	  - {at: 32, kind: release, x: 180, y: 220}
//
// Run it with
//
//	slidesim run scenario.yaml
package main

import (
	"os"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "slidesim",
		Short:        "Replay slide gestures and print slider notifications",
		SilenceUsage: true,
	}
	root.AddCommand(newRunCmd())
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
