// dashboard serves the SpaceX launch records dashboard and its CLI helpers.
//
// Usage:
//
//	dashboard [serve] [--config=<yaml>] [--data=<csv|url>] [--listen=<host:port>]
//	dashboard import [<csv>] [--db=<path>]
//	dashboard summary [--site=<site>] [--low=<kg>] [--high=<kg>] [--format=md]
//	dashboard render [--site=<site>] [--low=<kg>] [--high=<kg>] [--image=png] [--out=<dir>]
package main

import (
	"context"
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
