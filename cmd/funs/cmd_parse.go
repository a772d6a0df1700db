package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/davecgh/go-spew/spew"
	"github.com/dhamidi/funs/format"
	"github.com/dhamidi/funs/parser"
	"github.com/spf13/cobra"
)

func newParseCmd() *cobra.Command {
	var outputFormat string
	var includePositions bool

	cmd := &cobra.Command{
		Use:   "parse <file>",
		Short: "Parse a .fs file and dump the tree",
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

			p := parser.ParseFile(parser.NewSource(filename, string(data)))
			tree, err := p.Finish()
			if err != nil {
				return fmt.Errorf("parse: %w", err)
			}

			switch outputFormat {
			case "json":
				enc := format.NewTreeJSONEncoder(os.Stdout)
				if err := enc.Encode(tree); err != nil {
					return fmt.Errorf("encode json: %w", err)
				}
				fmt.Println()
			case "text":
				enc := format.NewTreeTextEncoder(os.Stdout)
				enc.Positions = includePositions
				if err := enc.Encode(tree); err != nil {
					return fmt.Errorf("encode text: %w", err)
				}
			case "spew":
				spew.Fdump(os.Stdout, tree)
			default:
				return fmt.Errorf("unknown format: %s (expected text, json, or spew)", outputFormat)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "text", "output format (text, json, spew)")
	cmd.Flags().BoolVar(&includePositions, "positions", false, "include node spans in text output")

	return cmd
}
