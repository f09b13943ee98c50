package cmd

import (
	"errors"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/shandysiswandi/xlplot/internal/plot"
	"github.com/shandysiswandi/xlplot/internal/plot/chart"
)

var renderOutput string

var renderCmd = &cobra.Command{
	Use:   "render FILE",
	Short: "Write an HTML line chart of a workbook",
	Args:  cobra.ExactArgs(1),
	RunE:  runRender,
}

func init() {
	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "", "output file (default stdout)")
}

func runRender(cmd *cobra.Command, args []string) (err error) {
	useStderrLogs(cmd)

	result, err := plotFile(cmd.Context(), plot.NewUsecase(), args[0])
	if err != nil {
		return errors.New(errorMessage(err))
	}

	var w io.Writer = cmd.OutOrStdout()
	if renderOutput != "" && renderOutput != "-" {
		f, createErr := os.Create(renderOutput)
		if createErr != nil {
			return createErr
		}
		defer func() {
			if cerr := f.Close(); err == nil {
				err = cerr
			}
		}()
		w = f
	}

	return chart.Render(w, result)
}
