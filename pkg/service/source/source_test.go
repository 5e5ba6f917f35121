package source_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/refinery-lab/groomctl/pkg/service/source"
)

func TestMockSource(t *testing.T) {
	ctx := context.Background()
	src := source.NewMock()

	t.Run("returns fixture items", func(t *testing.T) {
		items, err := src.FetchItems(ctx, "PROJ", 0)
		gt.NoError(t, err)
		gt.A(t, items).Length(3)
		gt.Equal(t, items[0].Key.String(), "PROJ-101")
		gt.S(t, items[0].Title).Contains("authentication")
		for _, item := range items {
			gt.NoError(t, item.Validate())
		}
	})

	t.Run("filters by project key", func(t *testing.T) {
		items, err := src.FetchItems(ctx, "OTHER", 0)
		gt.NoError(t, err)
		gt.A(t, items).Length(0)
	})

	t.Run("respects max results", func(t *testing.T) {
		items, err := src.FetchItems(ctx, "PROJ", 2)
		gt.NoError(t, err)
		gt.A(t, items).Length(2)
	})
}

func TestFileSource(t *testing.T) {
	ctx := context.Background()

	writeItems := func(t *testing.T, content string) string {
		t.Helper()
		path := filepath.Join(t.TempDir(), "items.yml")
		gt.NoError(t, os.WriteFile(path, []byte(content), 0600))
		return path
	}

	t.Run("loads items from file", func(t *testing.T) {
		path := writeItems(t, `items:
  - key: APP-1
    type: Story
    priority: High
    status: To Do
    title: Add login page
    description: Basic login form
    assignee: Jane Smith
  - key: APP-2
    type: Bug
    priority: Low
    status: To Do
    title: Fix footer layout
    description: Footer overlaps content on mobile
    assignee: Unassigned
`)

		src, err := source.NewFile(path)
		gt.NoError(t, err)

		items, err := src.FetchItems(ctx, "APP", 0)
		gt.NoError(t, err)
		gt.A(t, items).Length(2)
		gt.Equal(t, items[0].Key.String(), "APP-1")
		gt.Equal(t, items[1].Title, "Fix footer layout")
	})

	t.Run("rejects invalid items", func(t *testing.T) {
		path := writeItems(t, `items:
  - key: APP-1
    type: Story
`)
		src, err := source.NewFile(path)
		gt.NoError(t, err)

		_, err = src.FetchItems(ctx, "", 0)
		gt.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		src, err := source.NewFile(filepath.Join(t.TempDir(), "nope.yml"))
		gt.NoError(t, err)

		_, err = src.FetchItems(ctx, "", 0)
		gt.Error(t, err)
	})

	t.Run("empty path", func(t *testing.T) {
		_, err := source.NewFile("")
		gt.Error(t, err)
	})
}
