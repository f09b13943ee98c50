package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/shandysiswandi/xlplot/internal/app"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the upload page and POST /upload",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func runServe(_ *cobra.Command, _ []string) error {
	application := app.New(app.Options{ConfigPath: configPath})
	wait := application.Start()
	<-wait

	ctx, cancel := context.WithTimeout(context.Background(), application.ShutdownTimeout())
	defer cancel()

	application.Stop(ctx)
	return application.Err()
}
