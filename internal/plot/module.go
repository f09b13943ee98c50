package plot

import (
	"context"
	"errors"

	"github.com/shandysiswandi/xlplot/internal/pkg/pkgconfig"
	"github.com/shandysiswandi/xlplot/internal/pkg/pkgrouter"
	"github.com/shandysiswandi/xlplot/internal/plot/inbound"
	"github.com/shandysiswandi/xlplot/internal/plot/sheet"
	"github.com/shandysiswandi/xlplot/internal/plot/usecase"
)

type Dependency struct {
	Config pkgconfig.Config
	Router *pkgrouter.Router
}

// New wires the plot module onto the router. The module holds no resources,
// so the returned closer is a no-op.
func New(dep Dependency) (func(context.Context) error, error) {
	if dep.Config == nil || dep.Router == nil {
		return nil, errors.New("plot: config and router are required")
	}

	uc := NewUsecase()
	inbound.RegisterHTTPEndpoint(dep.Router, uc, dep.Config.GetInt("modules.plot.max_upload_bytes"))

	return func(context.Context) error { return nil }, nil
}

// NewUsecase returns the plot usecase backed by the spreadsheet reader.
func NewUsecase() *usecase.Usecase {
	return usecase.New(usecase.Dependency{Parser: sheet.NewReader()})
}
