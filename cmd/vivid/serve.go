package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/artgrid/vivid"
	"github.com/artgrid/vivid/gallery"
	"github.com/artgrid/vivid/httpapi"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the artwork HTTP API",
	Long:  `Starts the HTTP API. Flags can also be set through the environment with a VIVID_ prefix, e.g. VIVID_ADDR=:9000.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		v := viper.New()
		v.SetEnvPrefix("VIVID")
		v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
		v.AutomaticEnv()
		if err := v.BindPFlags(cmd.Flags()); err != nil {
			return err
		}

		addr := v.GetString("addr")
		gallerySize := v.GetInt("gallery-size")

		log := newLogger()
		api := httpapi.NewServer(vivid.NewGenerator(), gallery.NewStore(gallerySize), log)

		srv := &http.Server{
			Addr:              addr,
			Handler:           api.Handler(),
			ReadHeaderTimeout: 5 * time.Second,
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		errCh := make(chan error, 1)
		go func() {
			log.Info("serving artwork API", "addr", addr, "gallery_size", gallerySize)
			errCh <- srv.ListenAndServe()
		}()

		select {
		case err := <-errCh:
			if !errors.Is(err, http.ErrServerClosed) {
				return err
			}
		case <-ctx.Done():
			log.Info("shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().String("addr", ":8080", "listen address")
	serveCmd.Flags().Int("gallery-size", gallery.DefaultLimit, "maximum artworks kept in the in-memory gallery")
}
