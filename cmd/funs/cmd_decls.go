package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dhamidi/funs/ast"
	"github.com/dhamidi/funs/format"
	"github.com/dhamidi/funs/parser"
	"github.com/spf13/cobra"
)

func newDeclsCmd() *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "decls <file>",
		Short: "List the declarations of a .fs file",
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
			file := ast.FromTree(filename, tree)

			var encoder format.FileEncoder
			switch outputFormat {
			case "json":
				encoder = format.NewDeclsJSONEncoder(os.Stdout)
			case "line":
				encoder = format.NewDeclsLineEncoder(os.Stdout)
			default:
				return fmt.Errorf("unknown format: %s (expected line or json)", outputFormat)
			}
			if err := encoder.Encode(file); err != nil {
				return fmt.Errorf("encode: %w", err)
			}
			if outputFormat == "json" {
				fmt.Println()
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "line", "output format (line, json)")

	return cmd
}
