// SPDX-License-Identifier: MPL-2.0

package main

import (
	"os"

	cmd "github.com/vlp-tools/vlp/cmd/vlp"
)

func main() {
	os.Exit(cmd.Execute())
}
