package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dhamidi/funs/format"
	"github.com/dhamidi/funs/parser"
	"github.com/spf13/cobra"
)

func newLexCmd() *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "lex <file>",
		Short: "Tokenize a .fs file and dump the token stream",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := args[0]
			if ext := filepath.Ext(filename); ext != ".fs" {
				return fmt.Errorf("expected .fs file, got %s", ext)
			}
			data, err := os.ReadFile(filename)
			if err != nil {
				return fmt.Errorf("read file: %w", err)
			}

			tokens := parser.Tokenize(parser.NewSource(filename, string(data)))

			var encoder format.TokenEncoder
			switch outputFormat {
			case "json":
				encoder = format.NewTokensJSONEncoder(os.Stdout)
			case "text":
				encoder = format.NewTokensTextEncoder(os.Stdout)
			default:
				return fmt.Errorf("unknown format: %s (expected text or json)", outputFormat)
			}
			if err := encoder.Encode(tokens); err != nil {
				return fmt.Errorf("encode: %w", err)
			}
			if outputFormat == "json" {
				fmt.Println()
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "text", "output format (text, json)")

	return cmd
}
