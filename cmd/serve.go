package cmd

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/NoonWatt/solarscan-cli/internal/logging"
	"github.com/NoonWatt/solarscan-cli/internal/server"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve a read-only JSON dashboard over the registered datasets",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := ensureConfig()
		if err != nil {
			return err
		}
		cat, err := loadCatalog()
		if err != nil {
			return err
		}
		addr := c.ServerAddr
		if cmd.Flags().Changed("addr") {
			addr = serveAddr
		}
		logger := logging.New(c.LogLevel)
		srv := server.New(cat, server.Options{
			KeyColumns:       c.Keys(),
			MissingWarnPct:   c.MissingWarnPct,
			OutlierThreshold: c.OutlierThreshold,
		}, logger)

		fmt.Printf("✓ Serving dashboard on %s (%d dataset(s))\n", addr, len(cat.Datasets))
		logger.Info("listening", slog.String("addr", addr))
		return http.ListenAndServe(addr, srv.Routes())
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "listen address (overrides config server_addr)")
}
