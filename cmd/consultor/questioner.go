// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MuhammadDevX/ngen-consultor/internal/questioner"
)

var questionerCmd = &cobra.Command{
	Use:   "questioner",
	Short: "Inspect the interview script",
}

var questionerSectionsCmd = &cobra.Command{
	Use:   "sections",
	Short: "List section titles in document order",
	RunE: func(cmd *cobra.Command, args []string) error {
		content, err := questioner.ExtractContent(consultorConfig().Questioner.QuestionerPath)
		if err != nil {
			return err
		}
		for i, title := range questioner.SectionTitles(content) {
			fmt.Printf("%d. %s\n", i+1, title)
		}
		return nil
	},
}

var questionerSummaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Print the document structure with question counts",
	RunE: func(cmd *cobra.Command, args []string) error {
		content, err := questioner.ExtractContent(consultorConfig().Questioner.QuestionerPath)
		if err != nil {
			return err
		}
		fmt.Print(questioner.Summary(content))
		return nil
	},
}

var questionerRequirementsCmd = &cobra.Command{
	Use:   "requirements",
	Short: "Show the classified requirement buckets",
	RunE: func(cmd *cobra.Command, args []string) error {
		content, err := questioner.ExtractContent(consultorConfig().Questioner.QuestionerPath)
		if err != nil {
			return err
		}

		reqs := questioner.Classify(content.Sections)
		fmt.Printf("Overview:\n%s\n\n", reqs.Overview)
		printBucket("Technical", reqs.Technical)
		printBucket("Financial", reqs.Financial)
		printBucket("Timeline", reqs.Timeline)
		printBucket("Resource", reqs.Resource)
		return nil
	},
}

func printBucket(name string, items []string) {
	fmt.Printf("%s:\n", name)
	for _, item := range items {
		fmt.Printf("  - %s\n", item)
	}
	fmt.Println()
}

func init() {
	questionerCmd.AddCommand(questionerSectionsCmd)
	questionerCmd.AddCommand(questionerSummaryCmd)
	questionerCmd.AddCommand(questionerRequirementsCmd)

	rootCmd.AddCommand(questionerCmd)
}
