package source

import (
	"context"
	"strings"

	"github.com/refinery-lab/groomctl/pkg/domain/interfaces"
	"github.com/refinery-lab/groomctl/pkg/domain/model"
)

// Mock is a built-in item source for trying the tool without access to a
// real ticket tracker
type Mock struct{}

// NewMock creates a new mock item source
func NewMock() interfaces.ItemSource {
	return &Mock{}
}

// FetchItems returns the built-in fixture items
func (m *Mock) FetchItems(ctx context.Context, projectKey string, maxResults int) ([]*model.BacklogItem, error) {
	items := mockItems()
	filtered := make([]*model.BacklogItem, 0, len(items))
	for _, item := range items {
		if projectKey != "" && item.Key.ProjectKey() != projectKey {
			continue
		}
		filtered = append(filtered, item)
		if maxResults > 0 && len(filtered) >= maxResults {
			break
		}
	}
	return filtered, nil
}

func mockItems() []*model.BacklogItem {
	return []*model.BacklogItem{
		{
			Key:      "PROJ-101",
			Type:     "Story",
			Priority: "High",
			Status:   "To Do",
			Title:    "Implement user authentication system",
			Description: strings.Join([]string{
				"As a user, I want to securely log into the application using my email and password.",
				"",
				"Acceptance Criteria:",
				"- Users can sign up with email and password",
				"- Password requirements enforced (min 8 chars, special chars, numbers)",
				"- Email verification required",
				"- Password reset functionality",
				"- Login with email/password",
				"- Session management",
				"- Account lockout after failed attempts",
				"",
				"Technical Notes:",
				"- Consider using OAuth 2.0",
				"- Need to integrate with existing user database",
				"- Rate limiting required for security",
			}, "\n"),
			Assignee:    "Jane Smith",
			Created:     "2024-03-15 10:30",
			Updated:     "2024-03-16 14:20",
			LastComment: "Security team needs to review the implementation plan.",
		},
		{
			Key:      "PROJ-102",
			Type:     "Story",
			Priority: "Medium",
			Status:   "To Do",
			Title:    "Design and implement product search functionality",
			Description: strings.Join([]string{
				"Need to add search capability to the product catalog.",
				"",
				"- Search by name",
				"- Filter by category",
				"- Sort results",
				"- Price range filter",
			}, "\n"),
			Assignee:    "Unassigned",
			Created:     "2024-03-14 09:15",
			Updated:     "2024-03-14 09:15",
			LastComment: "No comments",
		},
		{
			Key:      "PROJ-103",
			Type:     "Bug",
			Priority: "High",
			Status:   "To Do",
			Title:    "Fix memory leak in data processing service",
			Description: strings.Join([]string{
				"Memory usage gradually increases over time in the data processing service, requiring regular restarts.",
				"",
				"Impact:",
				"- Service requires restart every 48 hours",
				"- Processing speed degradation",
				"- Increased cloud costs",
				"",
				"Steps to reproduce:",
				"1. Run service under normal load",
				"2. Monitor memory usage over 24 hours",
				"3. Observe steady increase in memory consumption",
				"",
				"Current findings:",
				"- Happens most notably during batch processing",
				"- Memory not properly released after large file processing",
				"- Garbage collection logs show potential circular references",
			}, "\n"),
			Assignee:    "Bob Johnson",
			Created:     "2024-03-16 16:45",
			Updated:     "2024-03-17 11:30",
			LastComment: "Profiling tools have been set up to track memory allocation patterns.",
		},
	}
}
