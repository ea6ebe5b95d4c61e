package valueobjects

import (
	"errors"
	"strconv"
	"strings"
)

// nodeIDPrefix ties node identity to the day label of the source record.
const nodeIDPrefix = "day-"

// NodeID is a value object identifying a feature node.
// Value objects are immutable and have no identity beyond their value.
type NodeID struct {
	value string
}

// NewNodeID derives a NodeID from a record's day label.
// Day labels are opaque strings supplied by the upstream parser and are
// not validated here; duplicate days therefore produce colliding IDs.
func NewNodeID(day string) NodeID {
	return NodeID{value: nodeIDPrefix + day}
}

// NodeIDFromString wraps an existing node id string
func NodeIDFromString(id string) (NodeID, error) {
	if id == "" {
		return NodeID{}, errors.New("node ID cannot be empty")
	}
	return NodeID{value: id}, nil
}

// Day returns the day label the ID was derived from
func (id NodeID) Day() string {
	return strings.TrimPrefix(id.value, nodeIDPrefix)
}

func (id NodeID) String() string { return id.value }

func (id NodeID) Equals(other NodeID) bool { return id.value == other.value }

func (id NodeID) IsZero() bool { return id.value == "" }

// MarshalJSON renders the ID as a bare JSON string
func (id NodeID) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(id.value)), nil
}

// UnmarshalJSON accepts a JSON string or null; null leaves the zero value
func (id *NodeID) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	value, err := strconv.Unquote(string(data))
	if err != nil {
		return errors.New("NodeID must be a string")
	}
	id.value = value
	return nil
}
