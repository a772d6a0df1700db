package main

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/dhamidi/funs/codebase"
	"github.com/dhamidi/funs/config"
	"github.com/dhamidi/funs/ui"
	"github.com/spf13/cobra"
)

func newUICmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "ui [dir]",
		Short: "Start the JSON inspection API server",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			cfg, root, err := config.Discover(dir)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			c := codebase.New(root, cfg)
			if err := c.ScanAll(); err != nil {
				return fmt.Errorf("scan: %w", err)
			}
			watcher := codebase.NewFileWatcher(c)
			watcher.Start()
			defer watcher.Stop()

			if addr == "" {
				addr = cfg.UI.Addr
			}
			displayAddr := addr
			if strings.HasPrefix(addr, ":") {
				displayAddr = "localhost" + addr
			}
			fmt.Printf("Serving %d files at http://%s\n", c.Len(), displayAddr)
			return http.ListenAndServe(addr, ui.NewServer(c))
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", "", "address to listen on (default from config)")

	return cmd
}
