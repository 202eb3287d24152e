package main

import (
	"fmt"
	"os"

	"github.com/ib-77/railway/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
