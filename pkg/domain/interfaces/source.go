package interfaces

import (
	"context"

	"github.com/refinery-lab/groomctl/pkg/domain/model"
)

// ItemSource supplies backlog items for review. Implementations decide
// where items come from (built-in fixtures, a file, a ticket tracker).
type ItemSource interface {
	// FetchItems returns up to maxResults items for the project.
	// maxResults <= 0 means no limit.
	FetchItems(ctx context.Context, projectKey string, maxResults int) ([]*model.BacklogItem, error)
}
