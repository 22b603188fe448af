package sources

import (
	"context"
	"os"

	"github.com/i474232898/temperature-heatmap/internal/heatmap"
)

// FileSource reads the dataset document from local disk.
type FileSource struct {
	path string
}

func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

func (s *FileSource) Name() string {
	return "file"
}

func (s *FileSource) Fetch(ctx context.Context) (heatmap.Dataset, error) {
	if err := ctx.Err(); err != nil {
		return heatmap.Dataset{}, err
	}
	f, err := os.Open(s.path)
	if err != nil {
		return heatmap.Dataset{}, err
	}
	defer f.Close()

	return Decode(f)
}
