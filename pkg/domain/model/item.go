package model

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/refinery-lab/groomctl/pkg/domain/types"
)

// BacklogItem represents a backlog item supplied by an item source.
// Created/Updated are kept as the tracker formatted them; they are
// display-only metadata and never parsed.
type BacklogItem struct {
	Key         types.ItemKey `yaml:"key"`
	Type        string        `yaml:"type"`
	Priority    string        `yaml:"priority"`
	Status      string        `yaml:"status"`
	Title       string        `yaml:"title"`
	Description string        `yaml:"description"`
	Assignee    string        `yaml:"assignee"`
	Created     string        `yaml:"created,omitempty"`
	Updated     string        `yaml:"updated,omitempty"`
	LastComment string        `yaml:"last_comment,omitempty"`
}

// Validate validates the backlog item
func (i *BacklogItem) Validate() error {
	if i.Key == "" {
		return goerr.New("item key is required")
	}
	if i.Title == "" {
		return goerr.New("item title is required", goerr.V("key", i.Key))
	}
	return nil
}
