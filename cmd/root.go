// Copyright (c) 2022 EPAM Systems, Inc.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package cmd

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var StatusURL string
var Timeout time.Duration
var LogFile string
var Out = TextO

var logOutput *os.File

type Output string

const (
	TextO  Output = "text"
	TableO Output = "table"
	JsonO  Output = "json"
)

func (e *Output) String() string {
	return string(*e)
}

func (e *Output) Set(v string) error {
	switch v {
	case "text", "table", "json":
		*e = Output(v)
		return nil
	default:
		return errors.New(`must be one of "text", "table" or "json"`)
	}
}

func (e *Output) Type() string {
	return "string"
}

var rootCmd = &cobra.Command{
	Use:   "duo-status <Deployment ID>",
	Short: "Get Duo deployment status",
	Long: `Get the current status of a Duo Security deployment and its components
from the public Duo status page.

Example: duo-status DUO63`,
	Args:               cobra.ExactValidArgs(1),
	RunE:               showStatus,
	PersistentPreRunE:  setupLogging,
	PersistentPostRunE: closeLogging,
	SilenceUsage:       true,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&StatusURL, "url", "u", defaultStatusURL(), "Status page components endpoint")
	rootCmd.PersistentFlags().DurationVarP(&Timeout, "timeout", "t", 10*time.Second, "HTTP request timeout")
	rootCmd.PersistentFlags().StringVar(&LogFile, "log-file", "duo_deployment_status.log", "Log file, truncated on every run")
	rootCmd.PersistentFlags().VarP(&Out, "output", "o", "Output format. Must be one of [text, table, json]")
}

func setupLogging(cmd *cobra.Command, args []string) error {
	if logOutput != nil {
		logOutput.Close()
	}
	f, err := os.Create(LogFile)
	if err != nil {
		return fmt.Errorf("unable to open log file: %w", err)
	}
	logOutput = f
	logrus.SetOutput(f)
	logrus.SetLevel(logrus.InfoLevel)
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
	return nil
}

func closeLogging(cmd *cobra.Command, args []string) error {
	if logOutput == nil {
		return nil
	}
	logrus.SetOutput(os.Stderr)
	err := logOutput.Close()
	logOutput = nil
	return err
}
