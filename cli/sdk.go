// Copyright (c) Robotica
// SPDX-License-Identifier: Apache-2.0

package cli

import "github.com/rdelfin/robotica"

// node is the fabric node shared by all commands.
var node *robotica.Node

// SetNode sets the node used by CLI commands.
func SetNode(n *robotica.Node) {
	node = n
}
