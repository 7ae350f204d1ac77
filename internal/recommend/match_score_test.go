package recommend

import (
	"strings"
	"testing"

	"github.com/spigell/hh-assessor/internal/catalog"
)

func TestMatchScore(t *testing.T) {
	t.Parallel()

	org := catalog.Organization{
		ID:        "northside",
		EHRSystem: "Epic",
		Programs:  []string{"Medicaid", "Behavioral health"},
	}

	tests := []struct {
		name    string
		profile CandidateProfile
		score   int
		ok      bool
	}{
		{
			name: "perfect match",
			profile: CandidateProfile{
				EHRSystems: []string{"Cerner", "epic"},
				Programs:   []string{"Medicaid", " behavioral health "},
				Language:   "spanish",
				Experience: "3-5 years",
			},
			score: 100,
			ok:    true,
		},
		{
			name: "partial ehr credit",
			profile: CandidateProfile{
				EHRSystems: []string{"Cerner"},
				Programs:   []string{"Medicaid", "Medicare"},
				Language:   EnglishOnly,
				Experience: EntryLevel,
			},
			// 15 + 20 of 100
			score: 35,
			ok:    true,
		},
		{
			name: "no ehr listed",
			profile: CandidateProfile{
				EHRSystems: []string{},
				Language:   "vietnamese",
			},
			// 0 + 20 of 50
			score: 40,
			ok:    true,
		},
		{
			name: "skipped categories excluded",
			profile: CandidateProfile{
				Programs: []string{"Medicaid", "Medicare", "Behavioral health"},
			},
			// 40 * 2/3 of 40
			score: 67,
			ok:    true,
		},
		{
			name:    "experience only",
			profile: CandidateProfile{Experience: "10+ years"},
			score:   100,
			ok:      true,
		},
		{
			name: "monolingual entry level",
			profile: CandidateProfile{
				EHRSystems: []string{},
				Programs:   []string{None},
				Language:   "English only",
				Experience: "none",
			},
			score: 0,
			ok:    true,
		},
		{
			name:    "free text outside the choices earns nothing",
			profile: CandidateProfile{Language: "monolingual-ish", Experience: "senior"},
			score:   0,
			ok:      true,
		},
		{
			name:    "monolingual",
			profile: CandidateProfile{Language: "monolingual"},
			score:   0,
			ok:      true,
		},
		{
			name:    "everything skipped",
			profile: CandidateProfile{},
			score:   0,
			ok:      false,
		},
		{
			name:    "empty program selection",
			profile: CandidateProfile{Programs: []string{}},
			score:   0,
			ok:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			score, ok := MatchScore(tt.profile, org)
			if score != tt.score || ok != tt.ok {
				t.Fatalf("expected (%d, %v), got (%d, %v)", tt.score, tt.ok, score, ok)
			}
			if score < 0 || score > 100 {
				t.Fatalf("score out of range: %d", score)
			}
		})
	}
}

func TestMatchScoreOrganizationWithoutEHR(t *testing.T) {
	score, ok := MatchScore(CandidateProfile{EHRSystems: []string{"Epic"}}, catalog.Organization{ID: "x"})
	if !ok || score != 50 {
		t.Fatalf("expected partial credit when organization has no EHR, got (%d, %v)", score, ok)
	}
}

func TestWeightsAddUpToHundred(t *testing.T) {
	if EHRWeight+ProgramsWeight+BilingualWeight+ExperienceWeight != 100 {
		t.Fatalf("weights must add up to 100")
	}
}

func TestCandidateProfileNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		profile    CandidateProfile
		language   string
		experience string
		wantErr    string
	}{
		{name: "canonical", profile: CandidateProfile{Language: "Spanish", Experience: "3-5 years"}, language: "spanish", experience: "3-5 years"},
		{name: "aliases", profile: CandidateProfile{Language: " English only ", Experience: "Entry level"}, language: EnglishOnly, experience: EntryLevel},
		{name: "skipped stays skipped", profile: CandidateProfile{}, language: "", experience: ""},
		{name: "unknown language", profile: CandidateProfile{Language: "klingon"}, wantErr: `language "klingon"`},
		{name: "unknown experience", profile: CandidateProfile{Experience: "senior"}, wantErr: `experience "senior"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p := tt.profile
			err := p.Normalize()
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("expected error containing %q, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if p.Language != tt.language || p.Experience != tt.experience {
				t.Fatalf("unexpected normalized profile %+v", p)
			}
		})
	}
}
