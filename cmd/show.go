// Copyright (c) 2022 EPAM Systems, Inc.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package cmd

import (
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/agilestacks/hub-utils/duo-status/internal/status"
)

func showStatus(cmd *cobra.Command, args []string) error {
	deploymentID := strings.ToUpper(args[0])
	logrus.Infof("Duo Deployment ID: %s", deploymentID)

	components := newFetcher().FetchOrEmpty(cmd.Context(), cmd.OutOrStdout())
	if len(components) == 0 {
		return nil
	}

	matches, err := status.ExtractComponents(components, deploymentID)
	if err != nil {
		return err
	}
	return printComponents(cmd.OutOrStdout(), matches)
}
