// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MuhammadDevX/ngen-consultor/internal/agent"
	"github.com/MuhammadDevX/ngen-consultor/internal/consultor"
	"github.com/MuhammadDevX/ngen-consultor/internal/questioner"
)

var interviewCmd = &cobra.Command{
	Use:   "interview [message]",
	Short: "Run one interview turn against the chat model",
	Long: `Interview sends your message to the conversational delegate together with
the numbered section list of the interview script. The reply is printed
verbatim. A missing script degrades to a readable error line, not a failure.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runInterview,
}

func runInterview(cmd *cobra.Command, args []string) error {
	cfg := consultorConfig()

	chat, err := agent.New(cfg.Agent.ChatModel, backendOptions(cfg))
	if err != nil {
		return err
	}

	c := &consultor.Consultor{
		QuestionerPath: cfg.Questioner.QuestionerPath,
		Persona:        questioner.LoadPersona(cfg.Questioner.PersonaPath),
		Chat:           chat,
	}

	sess := consultor.NewSession()
	reply, err := c.StartConversation(context.Background(), sess, strings.Join(args, " "))
	if err != nil {
		return err
	}

	fmt.Println(reply)
	return nil
}

func init() {
	rootCmd.AddCommand(interviewCmd)
}
