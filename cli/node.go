// Copyright (c) Robotica
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var cmdNodes = []cobra.Command{
	{
		Use:   "list",
		Short: "List all nodes currently on the fabric",
		Run: func(cmd *cobra.Command, args []string) {
			nodes, err := node.ListNodes(cmd.Context())
			if err != nil {
				logError(err)
				return
			}
			for _, name := range nodes {
				fmt.Println(name)
			}
		},
	},
}

// NewNodesCmd returns the node command tree.
func NewNodesCmd() *cobra.Command {
	cmd := cobra.Command{
		Use:   "node [list]",
		Short: "Inspect nodes on the fabric",
	}

	for i := range cmdNodes {
		cmd.AddCommand(&cmdNodes[i])
	}

	return &cmd
}
