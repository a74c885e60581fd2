package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"haags/internal/diagfmt"
	"haags/internal/driver"
	"haags/internal/lexer"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] [file]",
	Short: "Show how input text is split into segments",
	Long:  `Tokenize prints the words, whitespace, punctuation, numbers and verbatim runs the translator sees. Without a file it reads stdin.`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	tokenizeCmd.Flags().Bool("plain-words", false, "split URLs and e-mail addresses into words")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	plain, err := cmd.Flags().GetBool("plain-words")
	if err != nil {
		return fmt.Errorf("failed to get plain-words flag: %w", err)
	}
	opts := lexer.Options{PlainWords: plain}

	var result *driver.TokenizeResult
	if len(args) == 1 {
		result, err = driver.Tokenize(args[0], opts)
		if err != nil {
			return fmt.Errorf("tokenization failed: %w", err)
		}
	} else {
		text, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
		result = driver.TokenizeText("<stdin>", text, opts)
	}

	// Выводим токены в выбранном формате
	switch format {
	case "pretty":
		return diagfmt.FormatTokensPretty(cmd.OutOrStdout(), result.Tokens, result.FileSet)
	case "json":
		return diagfmt.FormatTokensJSON(cmd.OutOrStdout(), result.Tokens, result.FileSet)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
