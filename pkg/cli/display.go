package cli

import (
	"fmt"
	"strings"

	"github.com/refinery-lab/groomctl/pkg/domain/model"
)

// itemBanner formats the metadata block shown before reviewing an item
func itemBanner(item *model.BacklogItem, position, total int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n", strings.Repeat("=", 60))
	fmt.Fprintf(&b, "Item %d of %d: [%s] %s\n", position, total, item.Key, item.Title)
	fmt.Fprintf(&b, "%s\n", strings.Repeat("=", 60))

	if item.Type != "" {
		fmt.Fprintf(&b, "Type:        %s\n", item.Type)
	}
	if item.Priority != "" {
		fmt.Fprintf(&b, "Priority:    %s\n", item.Priority)
	}
	if item.Status != "" {
		fmt.Fprintf(&b, "Status:      %s\n", item.Status)
	}
	if item.Assignee != "" {
		fmt.Fprintf(&b, "Assignee:    %s\n", item.Assignee)
	}
	if item.Description != "" {
		fmt.Fprintf(&b, "\nDescription:\n%s\n", item.Description)
	}
	if item.LastComment != "" {
		fmt.Fprintf(&b, "\nLast comment:\n%s\n", item.LastComment)
	}

	return b.String()
}
