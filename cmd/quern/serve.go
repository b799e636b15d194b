package main

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/quernlab/quern"
	httpadapter "github.com/quernlab/quern/internal/adapters/http"
	"github.com/quernlab/quern/internal/metrics"
)

// serveCmd runs the HTTP API.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the engine over HTTP",
	Long:  `Starts a JSON API: POST /v1/run, POST /v1/validate, GET /v1/operations, plus /healthz and /metrics.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, closeLog, err := buildLogger(cmd)
		if err != nil {
			return err
		}
		defer closeLog()

		reg := prometheus.NewRegistry()
		eng := quern.New(
			quern.WithLogger(logger),
			quern.WithMetrics(metrics.New(reg)),
		)

		addr, _ := cmd.Flags().GetString("addr")
		handler := httpadapter.NewHandler(eng, logger, reg)

		logger.Info("serving", "addr", addr)
		fmt.Fprintf(cmd.OutOrStdout(), "listening on %s\n", addr)
		return http.ListenAndServe(addr, handler)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().String("addr", ":8085", "Listen address")
}
