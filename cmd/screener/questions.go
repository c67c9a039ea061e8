package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-screener/internal/ingestion"
	"github.com/jonathan/resume-screener/internal/observability"
	"github.com/jonathan/resume-screener/internal/types"
)

func newQuestionsCmd(c *cli) *cobra.Command {
	var (
		profileFile string
		jobFile     string
		focusAreas  []string
	)

	cmd := &cobra.Command{
		Use:   "questions",
		Short: "Generate interview questions for a candidate profile",
		Long:  "Generate categorized interview questions from a candidate profile JSON file. The file may hold a bare profile or the output of the parse command.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			profile, err := readProfile(profileFile)
			if err != nil {
				return err
			}

			var job string
			if jobFile != "" {
				if job, _, err = ingestion.FromFile(jobFile); err != nil {
					return err
				}
			}

			req := types.GenerateQuestionsRequest{CandidateProfile: profile, JobDescription: job, FocusAreas: focusAreas}
			if err := req.Validate(); err != nil {
				return err
			}

			set, err := c.svc.GenerateQuestions(req.CandidateProfile, req.JobDescription, req.FocusAreas)
			if err != nil {
				return fmt.Errorf("question generation failed: %w", err)
			}
			return c.write(cmd, set, func(p *observability.Printer) { p.PrintQuestions(set) })
		},
	}

	cmd.Flags().StringVarP(&profileFile, "profile", "p", "", "Path to the candidate profile JSON file")
	cmd.Flags().StringVar(&jobFile, "job", "", "Path to the job description file")
	cmd.Flags().StringSliceVar(&focusAreas, "focus", nil, "Focus area (repeatable or comma-separated)")
	_ = cmd.MarkFlagRequired("profile")

	return cmd
}

// readProfile loads a profile object, unwrapping the "profile" field of a saved parse result.
func readProfile(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile file: %w", err)
	}

	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse profile file %s: %w", path, err)
	}

	if inner, ok := doc["profile"].(map[string]any); ok {
		return inner, nil
	}
	return doc, nil
}
