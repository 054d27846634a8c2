// cmd/thermosys/main.go
package main

import (
	"thermosys/internal/appshell"
	"thermosys/internal/cli"
)

func main() {
	appshell.Main(cli.RunContext)
}
