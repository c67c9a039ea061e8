package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/resume-screener/internal/ingestion"
	"github.com/jonathan/resume-screener/internal/observability"
)

func newParseCmd(c *cli) *cobra.Command {
	var resumeFile string

	cmd := &cobra.Command{
		Use:   "parse",
		Short: "Extract a candidate profile and sections from a resume file",
		Long:  "Parse a resume (text, markdown, HTML, PDF or DOCX) into an extracted profile and its raw sections.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			text, meta, err := ingestion.FromFile(resumeFile)
			if err != nil {
				return err
			}
			c.logger.Debug("resume loaded",
				zap.String("source", meta.Source),
				zap.String("media_type", meta.MediaType),
				zap.Int("chars", meta.Chars))

			result, err := c.svc.Parse(text)
			if err != nil {
				return fmt.Errorf("resume parsing failed: %w", err)
			}
			return c.write(cmd, result, func(p *observability.Printer) { p.PrintProfile(result) })
		},
	}

	cmd.Flags().StringVarP(&resumeFile, "resume", "r", "", "Path to the resume file")
	_ = cmd.MarkFlagRequired("resume")

	return cmd
}
