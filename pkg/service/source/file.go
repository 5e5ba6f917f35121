package source

import (
	"context"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/refinery-lab/groomctl/pkg/domain/interfaces"
	"github.com/refinery-lab/groomctl/pkg/domain/model"
	"gopkg.in/yaml.v3"
)

// itemsFile is the on-disk layout of a backlog items file
type itemsFile struct {
	Items []*model.BacklogItem `yaml:"items"`
}

// File is an item source backed by a YAML file
type File struct {
	path string
}

// NewFile creates a new file-backed item source
func NewFile(path string) (interfaces.ItemSource, error) {
	if path == "" {
		return nil, goerr.New("items file path is required")
	}
	return &File{path: path}, nil
}

// FetchItems reads and validates the backlog items from the file
func (f *File) FetchItems(ctx context.Context, projectKey string, maxResults int) ([]*model.BacklogItem, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, goerr.Wrap(err, "items file not found",
				goerr.V("path", f.path))
		}
		return nil, goerr.Wrap(err, "failed to read items file",
			goerr.V("path", f.path))
	}

	var parsed itemsFile
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return nil, goerr.Wrap(err, "failed to parse items file",
			goerr.V("path", f.path))
	}

	items := make([]*model.BacklogItem, 0, len(parsed.Items))
	for i, item := range parsed.Items {
		if err := item.Validate(); err != nil {
			return nil, goerr.Wrap(err, "invalid item at index",
				goerr.V("path", f.path),
				goerr.V("index", i))
		}
		if projectKey != "" && item.Key.ProjectKey() != projectKey {
			continue
		}
		items = append(items, item)
		if maxResults > 0 && len(items) >= maxResults {
			break
		}
	}

	return items, nil
}
