package main

import (
	"os"

	"github.com/thenoetrevino/lista/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
