// Copyright (c) 2026 Sebastian Mueller All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sbmueller/semver-taggr/pkg/factory"
	"github.com/sbmueller/semver-taggr/pkg/status"
)

// newStatusCommand builds the status subcommand.
func newStatusCommand() *cobra.Command {
	statusCmd := &cobra.Command{
		Use:   "status [workDir]",
		Short: "Show the latest version tag and candidate next versions",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runStatus,
	}
	statusCmd.Flags().Bool("json", false, "Output status as JSON")
	return statusCmd
}

// runStatus executes the status subcommand.
func runStatus(cmd *cobra.Command, args []string) error {
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

	st, err := f.StatusChecker(cfg).GetStatus(ctx)
	if err != nil {
		return err
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(st)
	}

	fmt.Fprint(cmd.OutOrStdout(), status.NewFormatter().Format(st))
	return nil
}
