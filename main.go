// Package main provides the entry point for the echo CLI tool.
package main

import (
	"echo/cmd"
)

func main() {
	cmd.Execute()
}
