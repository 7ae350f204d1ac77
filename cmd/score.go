package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/spigell/hh-assessor/internal/ai"
	"github.com/spigell/hh-assessor/internal/assessment"
	"github.com/spigell/hh-assessor/internal/catalog"
	"github.com/spigell/hh-assessor/internal/recommend"
	"github.com/spigell/hh-assessor/internal/scoring"
)

const (
	OutputTable = "table"
	OutputJSON  = "json"
)

// AnswersFile is a completed assessment recorded outside the interactive flow.
type AnswersFile struct {
	Role         string                      `mapstructure:"role"`
	Language     string                      `mapstructure:"language"`
	Answers      map[string]string           `mapstructure:"answers"`
	Profile      *recommend.CandidateProfile `mapstructure:"profile"`
	Organization string                      `mapstructure:"organization"`
	Contact      *assessment.Contact         `mapstructure:"contact"`
}

type scoreOutput struct {
	Result    *assessment.Result `json:"result"`
	Narrative *ai.Narrative      `json:"narrative,omitempty"`
}

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a completed answers file",
	Run: func(cmd *cobra.Command, _ []string) {
		score(cmd)
	},
}

func init() {
	rootCmd.AddCommand(scoreCmd)

	scoreCmd.Flags().StringP("answers", "a", "", "yaml file with role, language, answers and an optional profile")
	scoreCmd.Flags().StringP("output", "o", OutputTable, "output format: table or json")
	scoreCmd.Flags().Bool("submission", false, "dump a waitlist submission to a temporary file (requires contact in the answers file)")
	scoreCmd.MarkFlagRequired("answers")
}

func score(cmd *cobra.Command) {
	ctx := context.Background()
	logger, config, engine := bootstrap()

	path, _ := cmd.Flags().GetString("answers")
	output, _ := cmd.Flags().GetString("output")
	dumpSubmission, _ := cmd.Flags().GetBool("submission")

	if output != OutputTable && output != OutputJSON {
		logger.Fatal("unsupported output format", zap.String("output", output))
	}

	file, err := ReadAnswersFile(path)
	if err != nil {
		logger.Fatal("reading answers file", zap.String("filename", path), zap.Error(err))
	}

	language := file.Language
	if language == "" {
		language = config.Language
	}
	organization := file.Organization
	if organization == "" {
		organization = config.Organization
	}

	result, err := engine.Assess(file.Role, scoring.AnswerSet(file.Answers), assessment.Options{
		Language:     catalog.ParseLanguage(language),
		Profile:      file.Profile,
		Organization: organization,
	})
	if err != nil {
		var incomplete *scoring.IncompleteAssessmentError
		if errors.As(err, &incomplete) {
			logger.Fatal("answers file is incomplete", zap.Strings("missing", incomplete.Missing))
		}
		logger.Fatal("scoring answers", zap.Error(err))
	}

	narrator, err := newNarrator(ctx, config.AI, logger)
	if err != nil {
		logger.Warn("skipping ai narrative", zap.Error(err))
	}
	narrative := narrate(ctx, narrator, result, logger)

	switch output {
	case OutputJSON:
		pretty, err := json.MarshalIndent(scoreOutput{Result: result, Narrative: narrative}, "", "  ")
		if err != nil {
			logger.Fatal("encoding result", zap.Error(err))
		}
		fmt.Println(string(pretty))
	default:
		renderResult(os.Stdout, result, narrative)
	}

	if dumpSubmission {
		if file.Contact == nil {
			logger.Fatal("contact is required in the answers file to dump a submission")
		}
		if err := saveSubmission(result, *file.Contact, logger); err != nil {
			logger.Fatal("dumping submission", zap.Error(err))
		}
	}
}

// ReadAnswersFile decodes a yaml answers document. Unknown keys are rejected.
func ReadAnswersFile(path string) (*AnswersFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}

	var file AnswersFile
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &file,
		ErrorUnused:      true,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(raw); err != nil {
		return nil, fmt.Errorf("decode answers: %w", err)
	}

	if file.Role == "" {
		return nil, errors.New("role is required")
	}
	if file.Profile != nil {
		if err := file.Profile.Normalize(); err != nil {
			return nil, fmt.Errorf("profile: %w", err)
		}
	}

	return &file, nil
}

func saveSubmission(result *assessment.Result, contact assessment.Contact, logger *zap.Logger) error {
	submission := assessment.NewSubmission(result, contact)
	if err := submission.Validate(); err != nil {
		return err
	}

	filename, err := submission.DumpToTmpFile()
	if err != nil {
		return fmt.Errorf("dump submission to file: %w", err)
	}

	logger.Info("dumping submission to file", zap.String("filename", filename), zap.String("result_id", result.ID))
	return nil
}
