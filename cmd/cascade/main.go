package main

import (
	"fmt"
	"os"

	"github.com/skosovsky/cascade/internal/cli"
	"github.com/skosovsky/cascade/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cascade: %v\n", err)
		os.Exit(1)
	}

	o := cli.NewOptions(cfg, os.Stdout)
	err = cli.NewCascadeCmd(o).Execute()
	_ = o.Logger.Sync()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cascade: Error: %v\n", err)
		os.Exit(1)
	}
}
