// Package main is the entry point for the product-browser server and CLI.
package main

import (
	"github.com/Rohitwap/product-browser/cmd/product-browser/cmd"
)

func main() {
	cmd.Execute()
}
