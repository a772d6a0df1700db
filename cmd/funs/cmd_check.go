package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/dhamidi/funs/codebase"
	"github.com/dhamidi/funs/config"
	"github.com/dhamidi/funs/diag"
	"github.com/spf13/cobra"
)

func newCheckCmd() *cobra.Command {
	var strict bool
	var noColor bool

	cmd := &cobra.Command{
		Use:   "check [path...]",
		Short: "Report diagnostics for .fs files",
		Long: `Parse and check .fs files, reporting every diagnostic.

Paths may be files or directories; directories are walked for .fs
files. Without arguments the source directories from the discovered
configuration are checked.

The exit status is 1 when errors were found, or when --strict is set
and anything was found at all.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, root, err := config.Discover(".")
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			c := codebase.New(root, cfg)
			if len(args) == 0 {
				if err := c.ScanAll(); err != nil {
					return fmt.Errorf("scan: %w", err)
				}
			} else {
				for _, arg := range args {
					if err := scanPath(c, cfg, arg); err != nil {
						return err
					}
				}
			}

			renderer := diag.NewRenderer(os.Stdout)
			renderer.Color = !noColor

			findings := 0
			errors := 0
			for _, path := range c.Files() {
				info := c.GetFile(path)
				if info == nil || len(info.Diags) == 0 {
					continue
				}
				findings += len(info.Diags)
				errors += info.Errors()
				if err := renderer.Render(info.Source, info.Diags); err != nil {
					return err
				}
			}

			if findings > 0 {
				fmt.Printf("%d problems (%d errors, %d warnings)\n", findings, errors, findings-errors)
			}
			if errors > 0 || (findings > 0 && (strict || cfg.Strict)) {
				return fmt.Errorf("%d problems", findings)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "exit non-zero on warnings too")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable colored output")

	return cmd
}

func scanPath(c *codebase.Codebase, cfg *config.Config, arg string) error {
	info, err := os.Stat(arg)
	if err != nil {
		return fmt.Errorf("stat: %w", err)
	}
	if !info.IsDir() {
		if err := c.ScanFile(arg); err != nil {
			return fmt.Errorf("read %s: %w", arg, err)
		}
		return nil
	}
	return filepath.WalkDir(arg, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			if path != arg && cfg.Excluded(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		if filepath.Ext(path) == ".fs" {
			c.ScanFile(path)
		}
		return nil
	})
}
