// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package questioner

import (
	"os"
	"strings"
)

// personaPlaceholder stands in when the persona file is absent so the chat
// system prompt still reads sensibly.
const personaPlaceholder = "[consultor persona not found]"

// LoadPersona reads the consultor persona text used in the chat agent's
// system prompt. A missing or unreadable file degrades to a placeholder;
// LoadPersona never fails.
func LoadPersona(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return personaPlaceholder
	}
	return strings.TrimSpace(string(data))
}
