// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"

	"qmlfmthook/cmd/qmlfmt-hook/commands"
	"qmlfmthook/cmd/qmlfmt-hook/internal/clierr"
)

func main() {
	if err := commands.NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(clierr.ExitCodeOf(err))
	}
}
