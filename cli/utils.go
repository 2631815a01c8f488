// Copyright (c) Robotica
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"

	"github.com/fatih/color"
	prettyjson "github.com/hokaccha/go-prettyjson"
)

func logRawJSON(raw []byte) {
	pj, err := prettyjson.Format(raw)
	if err != nil {
		logError(err)
		return
	}
	fmt.Printf("%s\n", string(pj))
}

func logUsage(u string) {
	fmt.Printf(color.YellowString("\nusage: %s\n\n"), u)
}

func logError(err error) {
	fmt.Printf("\n%s\n\n", color.RedString(err.Error()))
}

func logOK() {
	fmt.Printf("\n%s\n\n", color.BlueString("ok"))
}
