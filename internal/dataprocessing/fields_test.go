package dataprocessing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "bullet separator replaced",
			input:    "Usain•Bolt",
			expected: "Usain Bolt",
		},
		{
			name:     "multiple bullets replaced",
			input:    "Jean•Claude•Killy",
			expected: "Jean Claude Killy",
		},
		{
			name:     "no bullet passes through",
			input:    "Simone Biles",
			expected: "Simone Biles",
		},
		{
			name:     "empty value passes through",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CleanName(tt.input))
		})
	}
}

func TestCleanNameIdempotent(t *testing.T) {
	once := CleanName("Usain•Bolt")
	twice := CleanName(once)
	assert.Equal(t, once, twice)
}

func TestExtractDate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "date keeps trailing space",
			input:    "5 May 1981 in Paris, Ile-de-France (FRA)",
			expected: "5 May 1981 ",
		},
		{
			name:     "year only",
			input:    "1929 in Oslo, Oslo (NOR)",
			expected: "1929 ",
		},
		{
			name:     "approximate date",
			input:    "c. 1929 in London, England (GBR)",
			expected: "c. 1929 ",
		},
		{
			name:     "no location token passes through whole",
			input:    "12 August 1902",
			expected: "12 August 1902",
		},
		{
			name:     "empty value",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExtractDate(tt.input))
		})
	}
}

func TestExtractBirthFields(t *testing.T) {
	born := "5 May 1981 in Paris, Ile-de-France (FRA)"

	assert.Equal(t, "5 May 1981 ", ExtractDate(born))
	assert.Equal(t, "Paris", ExtractCity(born))
	assert.Equal(t, "Ile-de-France ", ExtractRegion(born))
	assert.Equal(t, "FRA", ExtractCountry(born))
}

func TestExtractCountry(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "single group",
			input:    "5 May 1981 in Paris, Ile-de-France (FRA)",
			expected: "FRA",
		},
		{
			name:     "last group wins",
			input:    "1900 in Brno (Brünn), Morava (CZE)",
			expected: "CZE",
		},
		{
			name:     "no group is missing",
			input:    "12 August 1902",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExtractCountry(tt.input))
		})
	}
}

func TestExtractCity(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "city before first comma",
			input:    "5 May 1981 in Paris, Ile-de-France (FRA)",
			expected: "Paris",
		},
		{
			name:     "placeholder city preserved",
			input:    "7 May 1983 in ?, Seoul (KOR)",
			expected: "?",
		},
		{
			name:     "no comma after city is missing",
			input:    "7 May 1983 in ? (KOR)",
			expected: "",
		},
		{
			name:     "no location is missing",
			input:    "12 August 1902",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExtractCity(tt.input))
		})
	}
}

func TestExtractRegion(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "region between comma and parenthesis",
			input:    "5 May 1981 in Paris, Ile-de-France (FRA)",
			expected: "Ile-de-France ",
		},
		{
			name:     "no comma is missing",
			input:    "7 May 1983 in ? (KOR)",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExtractRegion(tt.input))
		})
	}
}

func TestSplitMeasurements(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantHeight string
		wantWeight string
	}{
		{
			name:       "height and weight",
			input:      "182 cm / 75 kg",
			wantHeight: "182",
			wantWeight: "75",
		},
		{
			name:       "height only",
			input:      "182 cm",
			wantHeight: "182",
			wantWeight: "",
		},
		{
			name:       "malformed token survives split",
			input:      "74, cm / 70 kg",
			wantHeight: "74,",
			wantWeight: "70",
		},
		{
			name:       "empty value",
			input:      "",
			wantHeight: "",
			wantWeight: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, w := SplitMeasurements(tt.input)
			assert.Equal(t, tt.wantHeight, h)
			assert.Equal(t, tt.wantWeight, w)
		})
	}
}

func TestCoerceFloat(t *testing.T) {
	tests := []struct {
		name        string
		token       string
		wantValue   float64
		wantOutcome FieldOutcome
	}{
		{
			name:        "numeric token",
			token:       "182",
			wantValue:   182,
			wantOutcome: OutcomeOK,
		},
		{
			name:        "decimal token",
			token:       "182.5",
			wantValue:   182.5,
			wantOutcome: OutcomeOK,
		},
		{
			name:        "empty token is missing",
			token:       "",
			wantOutcome: OutcomeMissing,
		},
		{
			name:        "trailing comma is malformed",
			token:       "74,",
			wantOutcome: OutcomeMalformed,
		},
		{
			name:        "unit text is malformed",
			token:       "tall",
			wantOutcome: OutcomeMalformed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, outcome := CoerceFloat(tt.token)
			assert.Equal(t, tt.wantOutcome, outcome)
			if tt.wantOutcome == OutcomeOK {
				require.NotNil(t, v)
				assert.Equal(t, tt.wantValue, *v)
			} else {
				assert.Nil(t, v)
			}
		})
	}
}

func TestAdditionalRoles(t *testing.T) {
	tests := []struct {
		name     string
		roles    string
		expected string
	}{
		{
			name:     "competed only becomes empty",
			roles:    "Competed in Olympic Games",
			expected: "",
		},
		{
			name:     "extra role survives with bullet stripped",
			roles:    "Competed in Olympic Games • Administrator",
			expected: "Administrator",
		},
		{
			name:     "only leading bullet is stripped",
			roles:    "Competed in Olympic Games • Coach • Referee",
			expected: "Coach • Referee",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, AdditionalRoles(tt.roles))
		})
	}
}

func TestRolePredicates(t *testing.T) {
	assert.True(t, HasCompetedRole("Competed in Olympic Games • Coach"))
	assert.False(t, HasCompetedRole("Non-starter"))

	assert.False(t, IsStructuralAnomaly("Competed in Olympic Games"))
	assert.False(t, IsStructuralAnomaly("Non-starter"))
	assert.False(t, IsStructuralAnomaly("Intercalated Games"))
	assert.False(t, IsStructuralAnomaly("Youth Olympic Games"))
	assert.True(t, IsStructuralAnomaly("Administrator"))
	assert.True(t, IsStructuralAnomaly(""))
}
