package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/shandysiswandi/xlplot/internal/pkg/pkgerror"
	"github.com/shandysiswandi/xlplot/internal/pkg/pkglog"
	"github.com/shandysiswandi/xlplot/internal/pkg/pkgroutine"
	"github.com/shandysiswandi/xlplot/internal/plot"
	"github.com/shandysiswandi/xlplot/internal/plot/entity"
	"github.com/shandysiswandi/xlplot/internal/plot/inbound"
	"github.com/shandysiswandi/xlplot/internal/plot/usecase"
)

var extractConcurrency int

var extractCmd = &cobra.Command{
	Use:   "extract FILE...",
	Short: "Print the plot payload of each workbook as one JSON line",
	Long: "Parse every FILE concurrently and print one JSON line per file, in argument\n" +
		"order. Failed files get an \"error\" field; the command exits non-zero when\n" +
		"any file fails.",
	Args: cobra.MinimumNArgs(1),
	RunE: runExtract,
}

func init() {
	extractCmd.Flags().IntVarP(&extractConcurrency, "concurrency", "c", 4, "files parsed at the same time")
}

type extractLine struct {
	File string `json:"file"`
	*inbound.PlotResponse
	Error string `json:"error,omitempty"`
}

func runExtract(cmd *cobra.Command, args []string) error {
	useStderrLogs(cmd)

	uc := plot.NewUsecase()
	lines := make([]extractLine, len(args))
	runner := pkgroutine.NewManager(extractConcurrency)

	for i, name := range args {
		runner.Go(cmd.Context(), name, func(ctx context.Context) error {
			lines[i].File = name

			result, err := plotFile(ctx, uc, name)
			if err != nil {
				lines[i].Error = errorMessage(err)
				return err
			}

			resp := inbound.PlotResponse{
				X:      result.X,
				Y:      result.Y,
				XLabel: result.XLabel,
				YLabel: result.YLabel,
				Title:  result.Title,
			}
			lines[i].PlotResponse = &resp
			return nil
		})
	}
	runErr := runner.Wait()

	enc := json.NewEncoder(cmd.OutOrStdout())
	failed := 0
	for _, line := range lines {
		if line.Error != "" {
			failed++
		}
		if err := enc.Encode(line); err != nil {
			return err
		}
	}

	if runErr != nil {
		return fmt.Errorf("%d of %d files failed", failed, len(args))
	}
	return nil
}

// plotFile runs one workbook on disk through the same checks as an upload.
func plotFile(ctx context.Context, uc *usecase.Usecase, name string) (usecase.PlotResult, error) {
	content, err := os.ReadFile(name)
	if err != nil {
		return usecase.PlotResult{}, err
	}

	return uc.Plot(ctx, usecase.PlotInput{
		File: &entity.Upload{Filename: filepath.Base(name), Content: content},
	})
}

// errorMessage prefers the client-facing message of application errors.
func errorMessage(err error) string {
	var gerr *pkgerror.Error
	if errors.As(err, &gerr) && gerr.Msg() != "" {
		return gerr.Msg()
	}
	return err.Error()
}

// useStderrLogs keeps stdout for command output.
func useStderrLogs(cmd *cobra.Command) {
	slog.SetDefault(pkglog.NewLogger(cmd.ErrOrStderr(), "warn"))
}
