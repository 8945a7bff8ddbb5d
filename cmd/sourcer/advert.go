package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/lsrecruit/sourcer/internal/advert"
)

var (
	advertPost     bool
	advertPipeline string
	advertStageKey string
)

var advertCmd = &cobra.Command{
	Use:   "advert",
	Short: "Process job adverts",
}

var advertProcessCmd = &cobra.Command{
	Use:   "process <advert.pdf>",
	Short: "Summarize a job-advert PDF, optionally posting it to the CRM pipeline",
	Args:  cobra.ExactArgs(1),
	RunE:  runAdvertProcess,
}

func init() {
	advertProcessCmd.Flags().BoolVar(&advertPost, "post", false, "Create a CRM box from the processed advert")
	advertProcessCmd.Flags().StringVar(&advertPipeline, "pipeline", "", "CRM pipeline key (default: config pipeline_key)")
	advertProcessCmd.Flags().StringVar(&advertStageKey, "stage", "", "CRM stage key (default: config box_stage_key)")
	advertCmd.AddCommand(advertProcessCmd)
	rootCmd.AddCommand(advertCmd)
}

func runAdvertProcess(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	file, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("failed to open advert file: %w", err)
	}
	defer func() { _ = file.Close() }()

	raw, fields, err := a.client.ProcessAdvert(cmd.Context(), filepath.Base(args[0]), file)
	if err != nil {
		return a.surface(err)
	}
	if err := advert.ValidatePayload(raw); err != nil {
		return err
	}

	fmt.Printf("Role:             %s\n", fields.RoleTitle)
	fmt.Printf("Description:      %s\n", fields.Description)
	fmt.Printf("Requirements:     %s\n", fields.Requirements)
	fmt.Printf("Responsibilities: %s\n", fields.Responsibilities)
	if fields.Salary != "" {
		fmt.Printf("Salary:           %s\n", fields.Salary)
	}
	if fields.Location != "" {
		fmt.Printf("Location:         %s\n", fields.Location)
	}

	if !advertPost {
		return nil
	}

	pipeline := advertPipeline
	if pipeline == "" {
		pipeline = a.cfg.PipelineKey
	}
	if pipeline == "" {
		return fmt.Errorf("a pipeline key is required to post; set --pipeline or pipeline_key in config")
	}
	stage := advertStageKey
	if stage == "" {
		stage = a.cfg.BoxStageKey
	}

	req, err := advert.BuildBoxRequest(fields, stage, a.cfg.Environment)
	if err != nil {
		return err
	}
	message, err := a.client.CreateBox(cmd.Context(), pipeline, req)
	if err != nil {
		return a.surface(err)
	}
	fmt.Println(message)
	return nil
}
