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
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/cybrota/avlcore/avl"
	"github.com/spf13/cobra"
)

const renderTimeout = 30 * time.Second

func loadConfigOrDefault() *Config {
	config, err := LoadConfig()
	if err != nil {
		log.Printf("Failed to load configuration: %v. Using default settings.", err)
		return DefaultConfig()
	}
	return config
}

// openScript opens a script path, treating "-" as standard input.
func openScript(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("script file %s not found", path)
		}
		return nil, err
	}
	return file, nil
}

// sessionFrom builds a session from an optional script and a list of keys.
func sessionFrom(config *Config, scriptPath string, keys []int) (*Session, error) {
	session := NewSession(config)
	if scriptPath != "" {
		script, err := openScript(scriptPath)
		if err != nil {
			return nil, err
		}
		defer script.Close()
		if err := NewOperationRegistry().RunScript(session, script, io.Discard); err != nil {
			return nil, err
		}
	}
	for _, key := range keys {
		if err := session.Insert(key); err != nil {
			if errors.Is(err, avl.ErrDuplicateKey) {
				log.Printf("skipping %v", err)
				continue
			}
			return nil, err
		}
	}
	return session, nil
}

func main() {
	InitializeColors()

	asciiLogo := fmt.Sprintf(`
        ┌───┐
        │ 9 │       avlcore
      ┌─┴───┴─┐     Self-balancing AVL tree playground [Version: %s%s%s]
    ┌───┐   ┌───┐
    │ 5 │   │ 10│
    └───┘   └───┘
`, Green, version, Reset)

	var cmdDemo = &cobra.Command{
		Use:   "demo",
		Short: "Run the reference insert/delete/query scenario",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, "Demo inserts a fixed key set, deletes two keys and runs range and depth queries"),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			session := NewSession(loadConfigOrDefault())
			if err := runDemo(session, cmd.OutOrStdout()); err != nil {
				log.Fatalf("Demo failed: %v", err)
			}
		},
	}

	var cmdRun = &cobra.Command{
		Use:   "run <script>",
		Short: "Execute a tree script file (use - for stdin)",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, "Run executes one operation per line against a fresh tree"),
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			script, err := openScript(args[0])
			if err != nil {
				log.Fatalf("Error opening script: %v", err)
			}
			defer script.Close()

			session := NewSession(loadConfigOrDefault())
			if err := NewOperationRegistry().RunScript(session, script, cmd.OutOrStdout()); err != nil {
				log.Fatalf("Script failed: %v", err)
			}
		},
	}

	var cmdREPL = &cobra.Command{
		Use:   "repl",
		Short: "Launch the interactive tree playground",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			if err := runREPL(NewSession(loadConfigOrDefault())); err != nil {
				log.Fatalf("Error running playground: %v", err)
			}
		},
	}

	var cmdStress = &cobra.Command{
		Use:   "stress",
		Short: "Randomized insert/delete run validating every invariant",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			stressConfig := loadConfigOrDefault().Stress
			flags := cmd.Flags()
			if flags.Changed("ops") {
				stressConfig.Operations, _ = flags.GetInt("ops")
			}
			if flags.Changed("keys") {
				stressConfig.KeySpace, _ = flags.GetInt("keys")
			}
			if flags.Changed("seed") {
				stressConfig.Seed, _ = flags.GetUint64("seed")
			}
			if flags.Changed("check-every") {
				stressConfig.CheckEvery, _ = flags.GetInt("check-every")
			}
			if quiet, _ := flags.GetBool("quiet"); quiet {
				stressConfig.ShowProgress = false
			}
			if stressConfig.Operations <= 0 || stressConfig.KeySpace <= 0 {
				log.Fatalf("ops and keys must be positive")
			}

			report, err := RunStress(stressConfig)
			if err != nil {
				log.Fatalf("%sInvariant check failed%s: %v", Error, Reset, err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "operations: %d (seed %d)\n", report.Operations, stressConfig.Seed)
			fmt.Fprintf(out, "inserts:    %d (+%d duplicates rejected)\n", report.Inserts, report.Duplicates)
			fmt.Fprintf(out, "deletes:    %d (+%d missing keys ignored)\n", report.Deletes, report.Misses)
			fmt.Fprintf(out, "checks:     %d passed\n", report.Checks)
			fmt.Fprintf(out, "max height: %d, final size %d\n", report.MaxHeight, report.FinalSize)
		},
	}
	cmdStress.Flags().Int("ops", 0, "number of random operations (default from config)")
	cmdStress.Flags().Int("keys", 0, "keys are drawn from [0, keys) (default from config)")
	cmdStress.Flags().Uint64("seed", 0, "random seed (default from config)")
	cmdStress.Flags().Int("check-every", 0, "validate the tree every N operations (default from config)")
	cmdStress.Flags().Bool("quiet", false, "hide the progress bar")

	var (
		renderKeys   []int
		renderScript string
		renderOut    string
		renderImageF bool
		renderCopy   bool
	)
	var cmdRender = &cobra.Command{
		Use:   "render",
		Short: "Print the tree as Graphviz DOT or render it to an image",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, "Render builds a tree from --keys and/or --script and hands its edges to Graphviz"),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			config := loadConfigOrDefault()
			if format, _ := cmd.Flags().GetString("format"); format != "" {
				config.Render.Format = format
			}

			session, err := sessionFrom(config, renderScript, renderKeys)
			if err != nil {
				log.Fatalf("Error building tree: %v", err)
			}
			dot := session.DOT()

			if renderCopy {
				if err := copyToClipboard(dot); err != nil {
					log.Printf("Failed to copy to clipboard: %v", err)
				}
			}

			if renderOut == "" && !renderImageF {
				fmt.Fprint(cmd.OutOrStdout(), dot)
				return
			}
			if renderOut == "" {
				renderOut = defaultImagePath(config.Render, session.Revision())
			}

			ctx, cancel := context.WithTimeout(context.Background(), renderTimeout)
			defer cancel()
			if err := renderImage(ctx, config.Render, dot, renderOut); err != nil {
				log.Fatalf("Error rendering image: %v", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✅ Tree image written to %s%s%s\n", Green, renderOut, Reset)
		},
	}
	cmdRender.Flags().IntSliceVar(&renderKeys, "keys", nil, "comma separated keys to insert, e.g. 9,5,10")
	cmdRender.Flags().StringVar(&renderScript, "script", "", "script file to run before rendering")
	cmdRender.Flags().StringVarP(&renderOut, "out", "o", "", "image file to write (requires Graphviz)")
	cmdRender.Flags().BoolVar(&renderImageF, "image", false, "write an image named after the tree revision")
	cmdRender.Flags().String("format", "", "image format passed to dot -T (default from config)")
	cmdRender.Flags().BoolVar(&renderCopy, "copy", false, "copy the DOT source to the clipboard")

	var cmdUsage = &cobra.Command{
		Use:   "usage",
		Short: "Print avlcore usage guide",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(getHelpMessage())
		},
	}

	var cmdSettings = &cobra.Command{
		Use:   "settings",
		Short: "Show configuration, creating ~/.avlcore.yaml if missing",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			displaySettings()
		},
	}

	var cmdVersion = &cobra.Command{
		Use:   "version",
		Short: "Print avlcore version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}

	var rootCmd = &cobra.Command{
		Use:     "avlcore",
		Version: version,
		Long:    asciiLogo,
		Run: func(cmd *cobra.Command, args []string) {
			// Default to the playground when no subcommand is provided
			if err := runREPL(NewSession(loadConfigOrDefault())); err != nil {
				log.Fatalf("Error running playground: %v", err)
			}
		},
	}
	rootCmd.AddCommand(cmdDemo, cmdRun, cmdREPL, cmdStress, cmdRender, cmdUsage, cmdSettings, cmdVersion)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
