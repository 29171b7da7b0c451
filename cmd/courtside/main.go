package main

import "github.com/naveenspark/courtside/internal/cli"

// version is set at build time via -ldflags "-X main.version=..."
var version = "dev"

func main() {
	cli.Execute(version)
}
