// Package main is the entry point for the nsshift CLI.
package main

import "nsshift.dev/pkg/nsshift/cmd"

func main() {
	cmd.Execute()
}
