package main

import (
	"os"

	"github.com/ironlog-io/ironlog/internal/cmd"
)

func main() {
	os.Exit(cmd.Main(os.Args))
}
