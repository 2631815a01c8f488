// Copyright (c) Robotica
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	cc "github.com/ivanpirog/coloredcobra"
	"github.com/spf13/cobra"

	"github.com/rdelfin/robotica"
	"github.com/rdelfin/robotica/cli"
)

func main() {
	conf := struct {
		logLevel        string
		fileDescriptors []string
	}{}

	rootCmd := &cobra.Command{
		Use:   "robotica-cli",
		Short: "Robotica fabric CLI",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			node, err := robotica.NewWithLogging("cli", conf.logLevel)
			if err != nil {
				return err
			}
			for _, path := range conf.fileDescriptors {
				blob, err := os.ReadFile(path)
				if err != nil {
					return err
				}
				if err := node.AddFileDescriptors(blob); err != nil {
					return err
				}
			}
			cli.SetNode(node)
			return nil
		},
	}

	cc.Init(&cc.Config{
		RootCmd:  rootCmd,
		Headings: cc.HiCyan + cc.Bold,
		Commands: cc.HiYellow + cc.Bold,
		Example:  cc.Italic,
		ExecName: cc.Bold,
		Flags:    cc.Bold,
	})

	rootCmd.AddCommand(cli.NewTopicsCmd())
	rootCmd.AddCommand(cli.NewNodesCmd())

	rootCmd.PersistentFlags().StringVarP(
		&conf.logLevel, "log-level", "l", "warn", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringSliceVarP(
		&conf.fileDescriptors, "file-descriptors", "d", nil, "paths of file-descriptor-set blobs to load")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		log.Fatal(err)
	}
}
