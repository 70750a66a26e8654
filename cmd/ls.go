// Copyright (c) 2022 EPAM Systems, Inc.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agilestacks/hub-utils/duo-status/internal/status"
)

var deploymentFilter []string

func init() {
	lsCmd.Flags().StringSliceVar(&deploymentFilter, "filter", []string{}, "Filter by id, name or status. Example: --filter \"status=operational\"")
	rootCmd.AddCommand(lsCmd)
}

var lsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List all deployments on the status page",
	Args:  cobra.NoArgs,
	RunE:  ls,
}

func ls(cmd *cobra.Command, args []string) error {
	components, err := newFetcher().Fetch(cmd.Context())
	if err != nil {
		return err
	}

	deployments := status.Match(status.Groups(components), status.FromAssignmentStrings(deploymentFilter))
	if len(deployments) == 0 && Out != JsonO {
		fmt.Fprintln(cmd.OutOrStdout(), "Nothing has been found")
		return nil
	}
	return printComponents(cmd.OutOrStdout(), deployments)
}
