// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"
	"strconv"

	"github.com/cybrota/arbor/render"
	"github.com/cybrota/arbor/scenarios"
	"github.com/cybrota/arbor/ternary"
	"github.com/spf13/cobra"
)

var version = "dev"

// Commands carrying this annotation print the logo above its value in help.
const bannerAnnotation = "banner"

// app carries what every command needs once flags are parsed
type app struct {
	config   *Config
	logger   *slog.Logger
	manager  *scenarios.Manager
	annotate bool
	noColor  bool
}

func (a *app) options() scenarios.Options {
	style := render.Plain
	if a.config.Render.Color && !a.noColor && colorEnabled() {
		style = render.Colored()
	}
	return scenarios.Options{Style: style, Annotate: a.annotate, Logger: a.logger}
}

func (a *app) runScenario(cmd *cobra.Command, name string) (scenarios.Report, error) {
	return a.manager.Run(name, cmd.OutOrStdout(), a.options())
}

func newRootCmd() *cobra.Command {
	logo := `
 █████╗ ██████╗ ██████╗  ██████╗ ██████╗
██╔══██╗██╔══██╗██╔══██╗██╔═══██╗██╔══██╗
███████║██████╔╝██████╔╝██║   ██║██████╔╝
██╔══██║██╔══██╗██╔══██╗██║   ██║██╔══██╗
██║  ██║██║  ██║██████╔╝╚██████╔╝██║  ██║
╚═╝  ╚═╝╚═╝  ╚═╝╚═════╝  ╚═════╝ ╚═╝  ╚═╝
Self-balancing search trees, one rotation at a time [Version: %s%s%s]

Copyright @ Naren Yellavula

`
	a := &app{manager: scenarios.NewManager()}
	var logLevel string

	var rootCmd = &cobra.Command{
		Use:           "arbor",
		Version:       version,
		Annotations:   map[string]string{bannerAnnotation: ""},
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			a.logger = configLogger(logLevel, cmd.ErrOrStderr())

			config, err := LoadConfig()
			if err != nil {
				a.logger.Warn("failed to load configuration, using defaults", "error", err)
			}
			a.config = config
			InitializeColors(config.Render.Color && !a.noColor && colorEnabled())
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default to the explorer when no subcommand is provided
			return runExplorer(scenarios.KindAVL, a.config, a.logger)
		},
	}
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level (error|warn|info|debug)")
	rootCmd.PersistentFlags().BoolVar(&a.annotate, "annotate", false, "show heights and balance factors in outlines")
	rootCmd.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "disable coloured output")

	var cmdAVL = &cobra.Command{
		Use:   "avl",
		Short: "Run the AVL tree demonstration",
		Annotations: map[string]string{
			bannerAnnotation: "Builds an AVL tree, forces LR and RL rotations and deletes the root, printing the tree after each step",
		},
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := a.runScenario(cmd, "avl")
			if err != nil {
				return err
			}
			if !report.Passed() {
				return fmt.Errorf("%d step(s) did not match their expected outcome", report.Failures)
			}
			return nil
		},
	}

	var cmdBST = &cobra.Command{
		Use:   "bst",
		Short: "Run the unbalanced binary search tree demonstration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := a.runScenario(cmd, "bst")
			if err != nil {
				return err
			}
			if !report.Passed() {
				return fmt.Errorf("%d step(s) did not match their expected outcome", report.Failures)
			}
			return nil
		},
	}

	var cmdTernary = &cobra.Command{
		Use:   "ternary",
		Short: "Run the ternary search harness (exit code = failed cases)",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			report, err := a.runScenario(cmd, "ternary")
			if err != nil {
				log.Fatalf("Error running ternary harness: %v", err)
			}
			os.Exit(report.Failures)
		},
	}

	var haystack []int
	var cmdTernarySearch = &cobra.Command{
		Use:   "search <needle>",
		Short: "Look up one value in a haystack with ternary search",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			needle, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("needle %q is not an integer", args[0])
			}

			h := NewHaystack(haystack)
			index, skipped := h.Find(needle)
			a.logger.Debug("ternary search", "needle", needle, "size", len(h.Values()), "prefiltered", skipped)

			out := cmd.OutOrStdout()
			if index == ternary.NotFound {
				fmt.Fprintf(out, "%s%d not found%s in %v\n", Warning, needle, Reset, h.Values())
				return nil
			}
			fmt.Fprintf(out, "%s%d found%s at index %d of %v\n", Green, needle, Reset, index, h.Values())
			return nil
		},
	}
	cmdTernarySearch.Flags().IntSliceVar(&haystack, "values", []int{-28, -10, -4, 0, 5, 10, 20, 140, 1000}, "haystack values (sorted for you)")
	cmdTernary.AddCommand(cmdTernarySearch)

	var scriptFile string
	var cmdRun = &cobra.Command{
		Use:   "run",
		Short: "Play a YAML scenario script",
		Annotations: map[string]string{
			bannerAnnotation: "Run plays the steps of a YAML scenario against an AVL or unbalanced tree",
		},
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			script, err := scenarios.LoadScript(scriptFile)
			if err != nil {
				return err
			}
			a.manager.Register(script)
			report, err := a.runScenario(cmd, script.Name())
			if err != nil {
				return err
			}
			if !report.Passed() {
				return fmt.Errorf("%d of %d step(s) did not match their expected outcome", report.Failures, report.Steps)
			}
			return nil
		},
	}
	cmdRun.Flags().StringVarP(&scriptFile, "file", "f", "", "scenario script (YAML)")
	cmdRun.MarkFlagRequired("file")

	var cmdScenarios = &cobra.Command{
		Use:   "scenarios",
		Short: "List the built-in scenarios",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, s := range a.manager.List() {
				fmt.Fprintf(cmd.OutOrStdout(), "%s%-10s%s %s\n", Green, s.Name(), Reset, s.Description())
			}
		},
	}

	var exploreTree string
	var cmdExplore = &cobra.Command{
		Use:   "explore",
		Short: "Launch the interactive tree explorer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExplorer(exploreTree, a.config, a.logger)
		},
	}
	cmdExplore.Flags().StringVarP(&exploreTree, "tree", "t", scenarios.KindAVL, "tree kind (avl|bst)")

	var stressTree string
	var stressCfg StressConfig
	var cmdStress = &cobra.Command{
		Use:   "stress",
		Short: "Replay random inserts and deletes against a reference tree",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := a.config.Stress
			if cmd.Flags().Changed("iterations") {
				cfg.Iterations = stressCfg.Iterations
			}
			if cmd.Flags().Changed("max") {
				cfg.MaxValue = stressCfg.MaxValue
			}
			if cmd.Flags().Changed("seed") {
				cfg.Seed = stressCfg.Seed
			}

			report, err := runStress(cmd.ErrOrStderr(), stressTree, cfg, colorEnabled(), a.logger)
			if err != nil {
				return fmt.Errorf("stress run failed: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s%s%s: %d inserts, %d deletes, %d rotations, max height %d, %d values left\n",
				Green, report.Tree, Reset, report.Inserts, report.Deletes, report.Rotations, report.MaxHeight, report.FinalCount)
			return nil
		},
	}
	cmdStress.Flags().StringVarP(&stressTree, "tree", "t", scenarios.KindAVL, "tree kind (avl|bst)")
	cmdStress.Flags().IntVar(&stressCfg.Iterations, "iterations", defaultConfig.Stress.Iterations, "number of random operations")
	cmdStress.Flags().IntVar(&stressCfg.MaxValue, "max", defaultConfig.Stress.MaxValue, "largest random value")
	cmdStress.Flags().Int64Var(&stressCfg.Seed, "seed", defaultConfig.Stress.Seed, "random seed")

	var benchN int
	var benchSeed int64
	var benchSorted bool
	var cmdBench = &cobra.Command{
		Use:   "bench",
		Short: "Compare arbor's trees with gods and google/btree",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if benchN <= 0 {
				return fmt.Errorf("--n must be positive")
			}
			fmt.Fprintln(cmd.OutOrStdout(), benchTable(runBench(benchN, benchSeed, benchSorted), benchN))
			return nil
		},
	}
	cmdBench.Flags().IntVarP(&benchN, "n", "n", 100000, "number of values")
	cmdBench.Flags().Int64Var(&benchSeed, "seed", 1, "shuffle seed")
	cmdBench.Flags().BoolVar(&benchSorted, "sorted", false, "insert values in ascending order")

	var cmdSettings = &cobra.Command{
		Use:   "settings",
		Short: "Display current configuration settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return displaySettings(cmd.OutOrStdout())
		},
	}

	var cmdUsage = &cobra.Command{
		Use:   "usage",
		Short: "Print Arbor usage guide",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), getHelpMessage())
		},
	}

	var cmdVersion = &cobra.Command{
		Use:   "version",
		Short: "Print Arbor version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	}

	// The banner is coloured only once --no-color is parsed
	defaultHelp := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(c *cobra.Command, args []string) {
		config, _ := LoadConfig()
		InitializeColors(config.Render.Color && !a.noColor && colorEnabled())
		if about, ok := c.Annotations[bannerAnnotation]; ok {
			c.Long = fmt.Sprintf("%s\n%s", fmt.Sprintf(logo, Green, version, Reset), about)
		}
		defaultHelp(c, args)
	})

	rootCmd.AddCommand(cmdAVL, cmdBST, cmdTernary, cmdRun, cmdScenarios, cmdExplore, cmdStress, cmdBench, cmdSettings, cmdUsage, cmdVersion)
	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}
