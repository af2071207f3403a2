//go:generate mockery
package main

import "github.com/dsh2dsh/edgar-links/cmd"

var version = "dev"

func main() {
	cmd.Execute(version)
}
