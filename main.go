package main

import (
	"fmt"
	"os"

	"gitlab.com/aoterocom/AOStockTrader/trader"
)

func main() {
	app := trader.NewApp(os.Stdin, os.Stdout, os.Stderr)
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
