package cmd

import (
	"fmt"
	"os"

	"github.com/anvilware/tslex/internal/lexer"
	"github.com/anvilware/tslex/internal/token"
	"github.com/spf13/cobra"
)

var (
	evalExpr   string
	showType   bool
	slashRegex bool
)

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Tokenize a JavaScript/TypeScript file or expression",
	Long: `Tokenize (lex) a JavaScript/TypeScript source file and print the
resulting tokens.

This command is useful for debugging the lexer and understanding how
source code is tokenized.

Examples:
  # Tokenize a source file
  tslex lex script.ts

  # Tokenize an inline expression
  tslex lex -e "const x = 42;"

  # Show token type names
  tslex lex --show-type script.ts

  # Lex every '/' as the start of a regex literal instead of division
  tslex lex --slash-is-regex script.ts`,
	Args: cobra.MaximumNArgs(1),
	RunE: lexSource,
}

func init() {
	rootCmd.AddCommand(lexCmd)

	lexCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "tokenize inline code instead of reading from file")
	lexCmd.Flags().BoolVar(&showType, "show-type", false, "show token type names")
	lexCmd.Flags().BoolVar(&slashRegex, "slash-is-regex", false, "lex every '/' as the start of a regex literal")
}

func lexSource(cmd *cobra.Command, args []string) error {
	var input []byte
	var filename string

	switch {
	case evalExpr != "":
		input = []byte(evalExpr)
		filename = "<eval>"
	case len(args) == 1:
		filename = args[0]
		content, err := os.ReadFile(filename)
		if err != nil {
			return fmt.Errorf("failed to read file %s: %w", filename, err)
		}
		input = content
	default:
		return fmt.Errorf("either provide a file path or use -e flag for inline code")
	}

	verbose, _ := cmd.Flags().GetBool("verbose")
	if verbose {
		fmt.Printf("Tokenizing: %s\n", filename)
		fmt.Printf("Input length: %d bytes\n", len(input))
		fmt.Println("---")
	}

	mode := lexer.Standard
	if slashRegex {
		mode = lexer.SlashIsRegex
	}

	l := lexer.New(input)
	tokenCount := 0
	for {
		tok, err := l.LexNext(mode)
		if err != nil {
			return fmt.Errorf("%s: %w", filename, err)
		}
		tokenCount++
		printToken(tok)
		if tok.Type == token.EOF {
			break
		}
	}

	if verbose {
		fmt.Println("---")
		fmt.Printf("Total tokens: %d\n", tokenCount)
	}

	return nil
}

func printToken(tok token.Token) {
	var output string
	if showType {
		output = fmt.Sprintf("[%-36s]", tok.Type)
	}
	if tok.Type == token.EOF {
		output += " EOF"
	} else {
		output += fmt.Sprintf(" %q", tok.Literal())
	}
	fmt.Println(output)
}
