package pdf

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cartable/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleCV() domain.CV {
	return domain.CV{
		Header: domain.CVHeader{
			FullName: "Jane Doe",
			Title:    "Backend Engineer",
			Contact:  "jane@example.com",
		},
		Profile:   "Pragmatic engineer.",
		Education: []string{"BSc Computer Science"},
		Skills:    []string{"Go", "SQL"},
		Experience: []domain.CVExperience{
			{Title: "Developer", Company: "Acme", Dates: "2022-2024", Bullets: []string{"built the thing"}},
		},
		Languages: []string{"French", "English"},
	}
}

func TestExport_BothTemplates(t *testing.T) {
	for _, template := range []string{"classic", "sidebar"} {
		t.Run(template, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "cv.pdf")
			err := Export(path, sampleCV(), Options{Template: template, Accent: "#1A5276"})
			require.NoError(t, err)

			info, err := os.Stat(path)
			require.NoError(t, err)
			assert.Greater(t, info.Size(), int64(500), "exported PDF should not be empty")

			data, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.True(t, strings.HasPrefix(string(data), "%PDF"))
		})
	}
}

func TestExport_BadAccentFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cv.pdf")
	err := Export(path, sampleCV(), Options{Template: "classic", Accent: "not-a-color"})
	require.NoError(t, err)
}

func TestExport_ManySectionsPaginate(t *testing.T) {
	cv := sampleCV()
	for i := 0; i < 120; i++ {
		cv.Skills = append(cv.Skills, "skill line to force pagination")
	}
	path := filepath.Join(t.TempDir(), "cv.pdf")
	require.NoError(t, Export(path, cv, Options{Template: "sidebar", Accent: "#2C3E50"}))
}

func TestSections(t *testing.T) {
	sections := Sections(sampleCV())
	var titles []string
	for _, s := range sections {
		titles = append(titles, s.Title)
	}
	assert.Equal(t, []string{"Profile", "Education", "Skills", "Experience", "Languages"}, titles,
		"empty sections are omitted, order is fixed")

	for _, s := range sections {
		if s.Title == "Experience" {
			assert.Equal(t, []string{"Developer - Acme - 2022-2024", "  - built the thing"}, s.Lines)
		}
	}
}

func TestAccentRGB(t *testing.T) {
	r, g, b := accentRGB("#FF8000")
	assert.Equal(t, []int{255, 128, 0}, []int{r, g, b})

	r, g, b = accentRGB("garbage")
	assert.Equal(t, []int{44, 62, 80}, []int{r, g, b})
}
