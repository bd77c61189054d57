/*
Copyright © 2025 the podbox authors
SPDX-License-Identifier: Apache-2.0
*/
package main

import (
	"github.com/clusterops/podbox/pkg/cli"
)

func main() {
	cli.Run()
}
