// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package consultor

import (
	"github.com/google/uuid"

	"github.com/MuhammadDevX/ngen-consultor/pkg/types"
)

// Session holds one interview's accumulated state: the project data and the
// conversation transcript. It is an explicit handle passed into every
// Consultor method rather than ambient state; create it at session start,
// discard it at session end. Sessions are not safe for concurrent use and
// are never persisted.
type Session struct {
	// ID uniquely identifies the session, for run-ledger correlation.
	ID string

	// Project is the accumulated project record, mutated only through
	// Consultor methods.
	Project types.ProjectData

	// Messages is the conversation transcript in turn order.
	Messages []types.Message
}

// NewSession creates an empty session with a fresh identifier.
func NewSession() *Session {
	return &Session{ID: uuid.NewString()}
}

// append adds one turn to the transcript.
func (s *Session) append(role, content string) {
	s.Messages = append(s.Messages, types.Message{Role: role, Content: content})
}

// RecordResponse stores a question/answer pair in insertion order.
func (s *Session) RecordResponse(question, answer string) {
	s.Project.UserResponses = append(s.Project.UserResponses, types.Response{
		Question: question,
		Answer:   answer,
	})
}
