package inputs

import (
	"io"

	"github.com/sirupsen/logrus"
)

// This file exports dummy constructors for use by tests in other packages

// NewDummyLog creates a new dummy Log for testing
func NewDummyLog() *logrus.Entry {
	log := logrus.New()
	log.Out = io.Discard
	return log.WithField("test", "test")
}

// NewDummyValidator creates a validator rooted at base for testing
func NewDummyValidator(base string) *Validator {
	return NewValidator(NewDummyLog(), base)
}
