package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags).
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "tslex",
	Short: "JavaScript/TypeScript lexer",
	Long: `tslex tokenizes JavaScript and TypeScript source into a token stream.

It implements the lexical grammar only: keywords, identifiers, numbers,
strings, regexes, template literals, and operators, with the
division-vs-regex and generics-vs-comparison disambiguations a caller needs
to drive a parser. It does not parse, type-check, or execute anything.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
}
