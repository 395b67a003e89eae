// Copyright 2026 The addrwords Authors. All rights reserved.
// Use of this source code is governed by a MIT-style license that can be
// found in the LICENSE file.
// SPDX-License-Identifier: MIT

// Command addrwords is the command-line front end for the addrwords
// codec. The codec itself (package github.com/addrwords/addrwords) has no
// notion of flags, subcommands, or output formatting; this binary is the
// external collaborator spec.md describes as out of the codec's core
// scope.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/addrwords/addrwords"
)

var log = logrus.New()

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:           "addrwords",
		Short:         "Encode and decode IP socket addresses as memorable word sequences",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				log.SetLevel(logrus.DebugLevel)
			}
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newEncodeCmd())
	root.AddCommand(newDecodeCmd())
	root.AddCommand(newAnalyzeCmd())
	root.AddCommand(newVersionCmd())
	return root
}

func newEncodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "encode <address>",
		Short: "Encode an IP socket address into words",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log.WithField("address", args[0]).Debug("encoding address")
			words, err := addrwords.Encode(args[0])
			if err != nil {
				return fail(cmd, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), words)
			return nil
		},
	}
}

func newDecodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode <words>",
		Short: "Decode a word sequence back into an IP socket address",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log.WithField("words", args[0]).Debug("decoding words")
			addr, err := addrwords.Decode(args[0])
			if err != nil {
				return fail(cmd, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), addr)
			return nil
		},
	}
}

func newAnalyzeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "analyze <address>",
		Short: "Report the family, word count, and category for an address",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			info, err := addrwords.Analyze(args[0])
			if err != nil {
				return fail(cmd, err)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "family: %s\n", info.Family)
			fmt.Fprintf(out, "words:  %d\n", info.WordCount)
			if info.Category != "" {
				fmt.Fprintf(out, "category: %s\n", info.Category)
			}
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the wire format version",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), addrwords.Version)
			return nil
		},
	}
}

func fail(cmd *cobra.Command, err error) error {
	log.WithError(err).Debug("command failed")
	fmt.Fprintf(cmd.ErrOrStderr(), "addrwords: %v\n", err)
	return err
}
