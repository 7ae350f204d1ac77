// Package assessment wires question selection, scoring, diagnostics and
// recommendations into a single result per respondent.
package assessment

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spigell/hh-assessor/internal/catalog"
	"github.com/spigell/hh-assessor/internal/diagnostics"
	"github.com/spigell/hh-assessor/internal/logger"
	"github.com/spigell/hh-assessor/internal/recommend"
	"github.com/spigell/hh-assessor/internal/scoring"
	"github.com/spigell/hh-assessor/internal/shuffle"
)

var ErrNoCatalog = errors.New("catalog is required")

const (
	DefaultActionLimit    = 5
	DefaultStructureLimit = 3
)

type Limits struct {
	Actions    int `mapstructure:"actions"`
	Structures int `mapstructure:"structures"`
}

type Config struct {
	Thresholds scoring.Thresholds
	Limits     Limits
}

// Options carries the per-session inputs that are not answers.
type Options struct {
	Language catalog.Language
	// Profile and Organization feed the candidate match score. Both are
	// optional; the score is omitted when either is missing.
	Profile      *recommend.CandidateProfile
	Organization string
}

// Engine is built once per catalog and shared by every session. It keeps no
// per-session state.
type Engine struct {
	catalog    *catalog.Catalog
	scorer     *scoring.Scorer
	classifier *diagnostics.Classifier
	limits     Limits
	logger     *zap.Logger
	now        func() time.Time
}

func New(c *catalog.Catalog, cfg Config, logger *zap.Logger) (*Engine, error) {
	if c == nil {
		return nil, ErrNoCatalog
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	if cfg.Thresholds == (scoring.Thresholds{}) {
		cfg.Thresholds = scoring.DefaultThresholds()
	}
	if err := cfg.Thresholds.Validate(); err != nil {
		return nil, err
	}
	if cfg.Limits.Actions <= 0 {
		cfg.Limits.Actions = DefaultActionLimit
	}
	if cfg.Limits.Structures <= 0 {
		cfg.Limits.Structures = DefaultStructureLimit
	}

	classifier, err := diagnostics.NewClassifier(c)
	if err != nil {
		return nil, err
	}

	return &Engine{
		catalog:    c,
		scorer:     scoring.NewScorer(c, cfg.Thresholds),
		classifier: classifier,
		limits:     cfg.Limits,
		logger:     logger,
		now:        time.Now,
	}, nil
}

func (e *Engine) Catalog() *catalog.Catalog {
	return e.catalog
}

// Questions returns the questions for a role with options in display order.
func (e *Engine) Questions(roleID string) ([]catalog.Question, error) {
	selected, err := scoring.SelectQuestions(e.catalog, roleID)
	if err != nil {
		return nil, err
	}

	out := make([]catalog.Question, len(selected))
	for i, q := range selected {
		q.Options = shuffle.Options(q)
		out[i] = q
	}
	return out, nil
}

// Assess scores a completed answer set and builds the full result. Either
// every part of the result is computed or an error is returned.
func (e *Engine) Assess(roleID string, answers scoring.AnswerSet, opts Options) (*Result, error) {
	role, err := e.catalog.Role(roleID)
	if err != nil {
		return nil, err
	}

	questions, err := scoring.SelectQuestions(e.catalog, roleID)
	if err != nil {
		return nil, err
	}

	scores, err := e.scorer.Score(answers, questions)
	if err != nil {
		return nil, err
	}

	lang := opts.Language
	if lang == "" {
		lang = catalog.English
	}

	log := logger.WithCommonFields(e.logger, role.ID, string(lang))

	diag := e.classifier.Classify(scores, role.Variant)

	actions, actionSteps := recommend.MatchActionsWithSteps(scores, e.catalog.Actions, e.limits.Actions)
	structures, structureSteps := recommend.MatchStructuresWithSteps(scores, e.catalog.Structures, e.limits.Structures)
	for _, s := range actionSteps {
		log.Debug("action stage", zap.String("stage", s.Stage), zap.Int("candidates", s.Candidates), zap.Int("picked", s.Picked))
	}
	for _, s := range structureSteps {
		log.Debug("structure stage", zap.String("stage", s.Stage), zap.Int("candidates", s.Candidates), zap.Int("picked", s.Picked))
	}

	overall := scoring.Overall(scores)
	result := &Result{
		ID:             uuid.NewString(),
		RoleID:         role.ID,
		RoleLabel:      role.Label.Pick(lang),
		Variant:        role.Variant,
		Language:       lang,
		CreatedAt:      e.now().UTC(),
		Overall:        overall,
		OverallPercent: scoring.RoundPercent(overall),
		TopStrength:    diag.TopStrength,
		TopGrowthArea:  diag.TopGrowthArea,
		Situation:      diag.Situation,
		SituationText:  diag.SituationText.Pick(lang),
		Insights:       e.classifier.Insights(scores, lang),
		RoleInsight:    role.Insight.Pick(lang),
		Answers:        make(scoring.AnswerSet, len(questions)),
		Scores:         scores,
	}

	for _, q := range questions {
		result.Answers[q.ID] = answers[q.ID]
	}
	for _, s := range scores {
		result.Domains = append(result.Domains, e.domainResult(s, lang))
	}
	for _, f := range diag.Factors {
		result.FailureFactors = append(result.FailureFactors, FailureFactor{Factor: f.ID, Coaching: f.Coaching.Pick(lang)})
	}
	for _, a := range actions {
		result.Actions = append(result.Actions, actionRecommendation(a, lang))
	}
	for _, s := range structures {
		result.Structures = append(result.Structures, structureRecommendation(s, lang))
	}

	if role.Variant == catalog.VariantCandidate && opts.Profile != nil && strings.TrimSpace(opts.Organization) != "" {
		org, ok := e.catalog.Organization(opts.Organization)
		if !ok {
			return nil, fmt.Errorf("unknown organization %q", opts.Organization)
		}
		profile := *opts.Profile
		if err := profile.Normalize(); err != nil {
			return nil, fmt.Errorf("candidate profile: %w", err)
		}
		if score, ok := recommend.MatchScore(profile, org); ok {
			result.MatchScore = &score
			result.Organization = org.Name
		}
	}

	log.Info("assessment scored",
		zap.String("result_id", result.ID),
		zap.Int("overall", result.OverallPercent),
		zap.String("top_strength", result.TopStrength),
		zap.String("top_growth_area", result.TopGrowthArea),
		zap.Int("failure_factors", len(result.FailureFactors)),
		zap.Int("actions", len(result.Actions)),
		zap.Int("structures", len(result.Structures)),
	)

	return result, nil
}

func (e *Engine) domainResult(s scoring.DomainScore, lang catalog.Language) DomainResult {
	name := s.Domain
	if d, ok := e.catalog.Domain(s.Domain); ok && !d.Name.IsZero() {
		name = d.Name.Pick(lang)
	}
	return DomainResult{
		Domain:     s.Domain,
		Name:       name,
		Raw:        s.Raw,
		Max:        s.MaxPossible,
		Percentage: s.Percentage,
		Percent:    s.Percent(),
		Level:      s.Level,
	}
}
