package main

import (
	"os"

	"greg-hacke/jpeg-forensics/cli"
)

func main() {
	os.Exit(cli.Execute(os.Args[1:], os.Stdout, os.Stderr))
}
