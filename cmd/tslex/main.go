// Command tslex tokenizes JavaScript/TypeScript source and prints the
// resulting token stream. It exists to debug and demonstrate the lexer, not
// as a frontend to a parser or compiler.
package main

import (
	"fmt"
	"os"

	"github.com/anvilware/tslex/cmd/tslex/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
