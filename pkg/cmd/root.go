// Copyright (c) 2026 Sebastian Mueller All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"os"

	"github.com/bborbe/errors"
	"github.com/spf13/cobra"

	"github.com/sbmueller/semver-taggr/pkg/factory"
	"github.com/sbmueller/semver-taggr/pkg/semver"
	"github.com/sbmueller/semver-taggr/pkg/tagger"
)

// NewRootCommand builds the taggr command tree.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "taggr [workDir]",
		Short: "Bump the latest semantic-version tag of a git repository",
		Long: `taggr finds the latest semantic-version tag reachable from the
checked-out commit, asks which component to bump, and creates the
next annotated tag.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runTag,
	}

	rootCmd.Flags().CountP("debug", "d", "Increase debugging output")
	rootCmd.Flags().BoolP("force", "f", false, "Allow tagging on branches outside allowedBranches")
	rootCmd.Flags().String("bump", "", "Select bump non-interactively: major | minor | patch")
	rootCmd.Flags().Bool("dry-run", false, "Print the new tag without creating it")
	rootCmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")
	rootCmd.PersistentFlags().String("config", ".taggr.yaml", "Path to config file")

	rootCmd.AddCommand(newStatusCommand())
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}

// runTag executes the tag workflow.
func runTag(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	workDir, err := resolveWorkDir(args)
	if err != nil {
		return err
	}
	configPath, _ := cmd.Flags().GetString("config")

	f := factory.New(workDir, configPath)
	cfg, err := f.Config(ctx)
	if err != nil {
		return err
	}

	opts := tagger.Options{}
	opts.Force, _ = cmd.Flags().GetBool("force")
	opts.DryRun, _ = cmd.Flags().GetBool("dry-run")
	opts.SkipConfirm, _ = cmd.Flags().GetBool("yes")
	debug, _ := cmd.Flags().GetCount("debug")
	opts.Debug = debug > 0

	if bump, _ := cmd.Flags().GetString("bump"); bump != "" {
		kind, err := semver.ParseBumpKind(ctx, bump)
		if err != nil {
			return errors.Wrap(ctx, err, "parse --bump")
		}
		opts.BumpKind = kind
	}

	return f.Tagger(cfg).Run(ctx, opts)
}

// resolveWorkDir returns the positional working directory or the current one.
func resolveWorkDir(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	workDir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return workDir, nil
}
