package types

import (
	"fmt"

	"github.com/google/uuid"
)

// ItemKey represents a backlog item key (e.g. PROJ-101)
type ItemKey string

// String returns the string representation
func (k ItemKey) String() string {
	return string(k)
}

// ProjectKey extracts the project portion of the item key (the part
// before the first hyphen). Returns the whole key if there is no hyphen.
func (k ItemKey) ProjectKey() string {
	for i := 0; i < len(k); i++ {
		if k[i] == '-' {
			return string(k[:i])
		}
	}
	return string(k)
}

// CriterionID represents the ordinal position of a rubric criterion
type CriterionID int

// Int returns the int representation
func (id CriterionID) Int() int {
	return int(id)
}

// String returns the string representation
func (id CriterionID) String() string {
	return fmt.Sprintf("%d", id)
}

// SessionID represents a grooming session identifier
type SessionID string

// String returns the string representation
func (id SessionID) String() string {
	return string(id)
}

// NewSessionID creates a new SessionID using UUID v7
func NewSessionID() (SessionID, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", err
	}
	return SessionID(id.String()), nil
}
