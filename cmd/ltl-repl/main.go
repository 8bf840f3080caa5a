// SPDX-License-Identifier: Apache-2.0
package main

import (
	"os"

	"ltlsimplify/repl"
)

func main() {
	repl.Start(os.Stdin, os.Stdout)
}
