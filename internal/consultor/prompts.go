// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package consultor

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/MuhammadDevX/ngen-consultor/pkg/types"
)

// chatSystemTmpl is the system prompt for the interview conversation. The
// persona text is loaded from the persona file at startup.
var chatSystemTmpl = template.Must(template.New("chat-system").Parse(`You are a professional project consultor. {{.Persona}}

Your role is to:
1. Ask all questions from the interview script systematically, section by section
2. Collect all necessary information from the user
3. Ensure all sections are covered before proceeding to report generation
4. Be friendly and professional in your communication
5. Provide the user with examples with each question to get a richer response
6. Do not go to the next section until all questions from the current section are answered
7. Mention the section number with your questions

Ask one question at a time and wait for the user's response before moving on.`))

// chatContextTmpl frames one interview turn: the numbered section list plus
// the user's message.
var chatContextTmpl = template.Must(template.New("chat-context").Funcs(template.FuncMap{
	"inc": func(i int) int { return i + 1 },
}).Parse(`Interview Script Sections:
{{range $i, $title := .Titles}}{{inc $i}}. {{$title}}
{{end}}
User Message: {{.UserMessage}}

Please start asking questions from the interview script systematically, one section at a time.`))

// analystSystemPrompt is the system message for every analyst delegate.
const analystSystemPrompt = `You are a technical and financial analyst. Generate comprehensive technical and financial reports based on project requirements.`

// reportInstructions is the fixed report-format block appended to the
// conversation context for every analyst. It asks the delegate to honor the
// tagged two-part response contract the parser splits on.
const reportInstructions = `
You have to generate technical and financial reports based on the given context.
1. You must always respond in markdown.
2. Begin the technical report with the line "TECHNICAL ANALYSIS:" and the financial report with the line "FINANCIAL ANALYSIS:".
3. The technical report must include the following headings:
   - Introduction
   - Core Features and Functionality, with subheadings grouping features together, along with functional and non-functional requirements
   - Technical Architecture, describing the tech stack
   - Development Process, describing the development method such as Agile
   - Security Considerations
   - Scalability and Performance
   - Future Enhancements
4. Include subheadings wherever necessary to give it an SRS format.
5. The financial report must include the following headings:
   - Executive Summary
   - Cost Estimation Methodology
   - Cost Breakdown, with subheadings per development phase explaining the cost of each phase
   - Optimal Costs and Breakdown
   - Payment Schedule
   - Conclusion
   - References
`

// renderChatSystem builds the chat system prompt around the persona text.
func renderChatSystem(persona string) (string, error) {
	var buf bytes.Buffer
	if err := chatSystemTmpl.Execute(&buf, struct{ Persona string }{Persona: persona}); err != nil {
		return "", fmt.Errorf("rendering chat system prompt: %w", err)
	}
	return buf.String(), nil
}

// renderChatContext builds the turn context from section titles and the
// user's message.
func renderChatContext(titles []string, userMessage string) (string, error) {
	var buf bytes.Buffer
	err := chatContextTmpl.Execute(&buf, struct {
		Titles      []string
		UserMessage string
	}{Titles: titles, UserMessage: userMessage})
	if err != nil {
		return "", fmt.Errorf("rendering chat context: %w", err)
	}
	return buf.String(), nil
}

// transcriptBlock concatenates the conversation into one context block tagged
// per speaker.
func transcriptBlock(messages []types.Message) string {
	var buf bytes.Buffer
	for _, m := range messages {
		fmt.Fprintf(&buf, "<%s said> :\n%s\n\n", m.Role, m.Content)
	}
	return buf.String()
}
