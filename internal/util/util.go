package util

import (
	"github.com/google/uuid"
)

// NewRunID returns a unique id for tagging the logs of one run
func NewRunID() string {
	return uuid.New().String()
}
