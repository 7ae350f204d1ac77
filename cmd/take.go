package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spigell/hh-assessor/internal/assessment"
	"github.com/spigell/hh-assessor/internal/catalog"
	"github.com/spigell/hh-assessor/internal/recommend"
)

const (
	PromptYes            = "Yes"
	PromptNo             = "No"
	PromptBack           = "back"
	PromptDumpSubmission = "Join the waitlist (dump submission to file)"
	PromptShowAgain      = "Show the results again"
	PromptExit           = "Exit"
	PromptSkip           = "Skip this question"
	PromptNone           = "None"
	PromptEnterList      = "Enter them"
)

var takeCmd = &cobra.Command{
	Use:   "take",
	Short: "Take the assessment interactively",
	Run: func(_ *cobra.Command, _ []string) {
		take()
	},
}

func init() {
	rootCmd.AddCommand(takeCmd)
}

func take() {
	ctx := context.Background()
	logger, config, engine := bootstrap()
	c := engine.Catalog()

	lang, err := chooseLanguage(config.Language)
	if err != nil {
		logger.Fatal("exiting", zap.Error(err))
	}

	role, err := chooseRole(c, lang)
	if err != nil {
		logger.Fatal("exiting", zap.Error(err))
	}

	session, err := engine.NewSession(role.ID)
	if err != nil {
		logger.Fatal("starting a session", zap.Error(err))
	}

	if err := answerAll(c, session, lang); err != nil {
		logger.Fatal("exiting", zap.Error(err))
	}

	opts := assessment.Options{Language: lang}
	if role.Variant == catalog.VariantCandidate && config.Organization != "" {
		profile, err := askProfile(c, config.Organization)
		if err != nil {
			logger.Fatal("exiting", zap.Error(err))
		}
		opts.Profile = profile
		opts.Organization = config.Organization
	}

	result, err := engine.Assess(session.RoleID, session.Answers(), opts)
	if err != nil {
		logger.Fatal("scoring answers", zap.Error(err))
	}

	narrator, err := newNarrator(ctx, config.AI, logger)
	if err != nil {
		logger.Warn("skipping ai narrative", zap.Error(err))
	}
	narrative := narrate(ctx, narrator, result, logger)

	renderResult(os.Stdout, result, narrative)

	for {
		menu := promptui.Select{
			Label: "What next?",
			Items: []string{PromptDumpSubmission, PromptShowAgain, PromptExit},
		}
		_, action, err := menu.Run()
		if err != nil {
			logger.Fatal("exiting", zap.Error(err))
		}

		switch action {
		case PromptDumpSubmission:
			contact, err := askContact()
			if err != nil {
				logger.Fatal("exiting", zap.Error(err))
			}
			if err := saveSubmission(result, contact, logger); err != nil {
				logger.Error("dumping submission", zap.Error(err))
			}
		case PromptShowAgain:
			renderResult(os.Stdout, result, narrative)
		case PromptExit:
			logger.Info("exiting", zap.String("result_id", result.ID))
			return
		}
	}
}

func chooseLanguage(configured string) (catalog.Language, error) {
	if strings.TrimSpace(configured) != "" {
		return catalog.ParseLanguage(configured), nil
	}

	prompt := promptui.Select{
		Label: "Language / Idioma",
		Items: []string{"English", "Español"},
	}
	idx, _, err := prompt.Run()
	if err != nil {
		return "", err
	}
	if idx == 1 {
		return catalog.Spanish, nil
	}
	return catalog.English, nil
}

func chooseRole(c *catalog.Catalog, lang catalog.Language) (catalog.Role, error) {
	items := make([]string, 0, len(c.Roles))
	for _, r := range c.Roles {
		items = append(items, fmt.Sprintf("%s / %s", r.Label.Pick(lang), r.Description.Pick(lang)))
	}

	prompt := promptui.Select{
		Label: "Choose the role you are preparing for",
		Items: items,
	}
	idx, _, err := prompt.Run()
	if err != nil {
		return catalog.Role{}, err
	}
	return c.Roles[idx], nil
}

// answerAll walks the session until every question has an answer. Choosing
// back returns to the previous question with its answer preselected.
func answerAll(c *catalog.Catalog, session *assessment.Session, lang catalog.Language) error {
	for !session.Complete() {
		q, ok := session.Current()
		if !ok {
			return fmt.Errorf("unanswered questions left: %s", strings.Join(session.Missing(), ", "))
		}

		pos, total := session.Position()
		domain := q.Domain
		if d, ok := c.Domain(q.Domain); ok {
			domain = d.Name.Pick(lang)
		}
		fmt.Printf("\n[%d/%d] %s\n%s\n", pos, total, domain, q.Scenario.Pick(lang))

		items := make([]string, 0, len(q.Options)+1)
		cursor := 0
		chosen, answered := session.Chosen(q.ID)
		for i, o := range q.Options {
			items = append(items, o.Text.Pick(lang))
			if answered && o.ID == chosen {
				cursor = i
			}
		}
		if pos > 1 {
			items = append(items, PromptBack)
		}

		prompt := promptui.Select{
			Label:     q.Prompt.Pick(lang),
			Items:     items,
			CursorPos: cursor,
			Size:      len(items),
		}
		idx, _, err := prompt.Run()
		if err != nil {
			return err
		}

		if idx == len(q.Options) {
			session.Back()
			continue
		}
		if err := session.Answer(q.ID, q.Options[idx].ID); err != nil {
			return err
		}
	}
	return nil
}

func askProfile(c *catalog.Catalog, orgID string) (*recommend.CandidateProfile, error) {
	org, ok := c.Organization(orgID)
	if !ok {
		return nil, fmt.Errorf("unknown organization %q", orgID)
	}

	confirm := promptui.Select{
		Label: fmt.Sprintf("Compare your background with %s?", org.Name),
		Items: []string{PromptYes, PromptNo},
	}
	_, answer, err := confirm.Run()
	if err != nil {
		return nil, err
	}
	if answer == PromptNo {
		return nil, nil
	}

	ehr, err := askList("EHR systems you have used")
	if err != nil {
		return nil, err
	}
	programs, err := askList("Programs you have worked in")
	if err != nil {
		return nil, err
	}
	language, err := askChoice("Languages you work in besides English", recommend.LanguageChoices)
	if err != nil {
		return nil, err
	}
	experience, err := askChoice("Years of experience", recommend.ExperienceChoices)
	if err != nil {
		return nil, err
	}

	return &recommend.CandidateProfile{
		EHRSystems: ehr,
		Programs:   programs,
		Language:   language,
		Experience: experience,
	}, nil
}

// askList tells a skipped question (nil) apart from an answered "none"
// (empty list).
func askList(label string) ([]string, error) {
	prompt := promptui.Select{
		Label: label,
		Items: []string{PromptEnterList, PromptNone, PromptSkip},
	}
	_, action, err := prompt.Run()
	if err != nil {
		return nil, err
	}

	var input string
	if action == PromptEnterList {
		input, err = ask(label+" (comma separated)", func(s string) error {
			if len(splitList(s)) == 0 {
				return errors.New("enter at least one name")
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return listAnswer(action, input), nil
}

func listAnswer(action, input string) []string {
	switch action {
	case PromptNone:
		return []string{}
	case PromptEnterList:
		return splitList(input)
	default:
		return nil
	}
}

// askChoice offers a closed list of answers plus skip. Skipping returns "".
func askChoice(label string, choices []string) (string, error) {
	prompt := promptui.Select{
		Label: label,
		Items: append(slices.Clone(choices), PromptSkip),
		Size:  len(choices) + 1,
	}
	idx, _, err := prompt.Run()
	if err != nil {
		return "", err
	}
	if idx == len(choices) {
		return "", nil
	}
	return choices[idx], nil
}

func askContact() (assessment.Contact, error) {
	name, err := ask("Name", nil)
	if err != nil {
		return assessment.Contact{}, err
	}
	email, err := ask("Email", func(input string) error {
		return (&assessment.Submission{Contact: assessment.Contact{Email: input}}).Validate()
	})
	if err != nil {
		return assessment.Contact{}, err
	}
	return assessment.Contact{Name: name, Email: email}, nil
}

func ask(label string, validate promptui.ValidateFunc) (string, error) {
	prompt := promptui.Prompt{Label: label, Validate: validate}
	value, err := prompt.Run()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(value), nil
}

// splitList returns nil for blank input so the category is skipped.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
