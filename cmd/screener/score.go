package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/resume-screener/internal/ingestion"
	"github.com/jonathan/resume-screener/internal/observability"
	"github.com/jonathan/resume-screener/internal/types"
)

func newScoreCmd(c *cli) *cobra.Command {
	var (
		resumeFile   string
		jobFile      string
		requirements []string
	)

	cmd := &cobra.Command{
		Use:   "score",
		Short: "Score a resume against a job description",
		Long:  "Score a resume against a job description and optional explicit requirements, producing a 0-10 match score and a recommendation.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			resume, _, err := ingestion.FromFile(resumeFile)
			if err != nil {
				return err
			}
			job, _, err := ingestion.FromFile(jobFile)
			if err != nil {
				return err
			}

			req := types.ScoreRequest{ResumeText: resume, JobDescription: job, JobRequirements: requirements}
			if err := req.Validate(); err != nil {
				return err
			}

			result, err := c.svc.Score(req.ResumeText, req.JobDescription, req.JobRequirements)
			if err != nil {
				return fmt.Errorf("resume scoring failed: %w", err)
			}
			c.logger.Debug("resume scored",
				zap.String("candidate_id", result.CandidateID),
				zap.Float64("score", result.OverallScore),
				zap.String("recommendation", string(result.Recommendation)))

			return c.write(cmd, result, func(p *observability.Printer) { p.PrintScore(result) })
		},
	}

	cmd.Flags().StringVarP(&resumeFile, "resume", "r", "", "Path to the resume file")
	cmd.Flags().StringVar(&jobFile, "job", "", "Path to the job description file")
	cmd.Flags().StringSliceVar(&requirements, "require", nil, "Required skill (repeatable or comma-separated)")
	_ = cmd.MarkFlagRequired("resume")
	_ = cmd.MarkFlagRequired("job")

	return cmd
}
