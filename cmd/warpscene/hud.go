package main

import (
	"fmt"
	"strings"
)

// statusLine collects title-bar fields for the current second.
type statusLine struct {
	parts []string
}

func (s *statusLine) Add(format string, args ...interface{}) {
	s.parts = append(s.parts, fmt.Sprintf(format, args...))
}

func (s *statusLine) Clear() {
	s.parts = s.parts[:0]
}

func (s *statusLine) String() string {
	return strings.Join(s.parts, " | ")
}
