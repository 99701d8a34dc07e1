package main

import (
	"os"

	"github.com/flarebyte/nimi/cmd/nimi/root"
)

func main() {
	os.Exit(root.Main(os.Args[1:]))
}
