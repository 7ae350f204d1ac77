package recommend

import (
	"fmt"
	"strings"
)

// None answers the EHR or program question with "nothing yet". It differs
// from a skipped question, which is a nil list.
const None = "none"

// LanguageChoices are the accepted answers to the bilingual question.
var LanguageChoices = []string{EnglishOnly, "spanish", "vietnamese", "tagalog", "chinese", "other"}

// ExperienceChoices are the accepted answers to the experience question.
var ExperienceChoices = []string{EntryLevel, "1-2 years", "3-5 years", "6-10 years", "10+ years"}

var languageAliases = map[string]string{
	"english":      EnglishOnly,
	"english only": EnglishOnly,
	"monolingual":  EnglishOnly,
	"none":         EnglishOnly,
	"español":      "spanish",
	"espanol":      "spanish",
}

var experienceAliases = map[string]string{
	"entry level":   EntryLevel,
	"none":          EntryLevel,
	"no experience": EntryLevel,
	"0 years":       EntryLevel,
	"less than 1":   EntryLevel,
	"10 years":      "10+ years",
}

// CanonicalLanguage maps an answer to one of LanguageChoices. ok is false for
// answers outside the list.
func CanonicalLanguage(s string) (string, bool) {
	return canonical(s, LanguageChoices, languageAliases)
}

// CanonicalExperience maps an answer to one of ExperienceChoices.
func CanonicalExperience(s string) (string, bool) {
	return canonical(s, ExperienceChoices, experienceAliases)
}

func canonical(s string, choices []string, aliases map[string]string) (string, bool) {
	v := normalize(s)
	for _, c := range choices {
		if v == c {
			return c, true
		}
	}
	if c, ok := aliases[v]; ok {
		return c, true
	}
	if c, ok := aliases[strings.ReplaceAll(v, "-", " ")]; ok {
		return c, true
	}
	return "", false
}

// Normalize rewrites the single-choice answers to their canonical form and
// rejects anything outside the accepted lists. Empty answers stay skipped.
func (p *CandidateProfile) Normalize() error {
	if p.Language = strings.TrimSpace(p.Language); p.Language != "" {
		c, ok := CanonicalLanguage(p.Language)
		if !ok {
			return fmt.Errorf("language %q is not one of %s", p.Language, strings.Join(LanguageChoices, ", "))
		}
		p.Language = c
	}

	if p.Experience = strings.TrimSpace(p.Experience); p.Experience != "" {
		c, ok := CanonicalExperience(p.Experience)
		if !ok {
			return fmt.Errorf("experience %q is not one of %s", p.Experience, strings.Join(ExperienceChoices, ", "))
		}
		p.Experience = c
	}

	return nil
}
