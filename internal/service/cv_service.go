package service

import (
	"context"
	"encoding/json"
	"regexp"
	"strings"

	"cartable/internal/domain"

	"go.uber.org/zap"
)

// CVService defines the structured CV pipeline.
type CVService interface {
	// Generate asks the model for a structured CV and projects the reply
	// into the guaranteed domain.CV shape. Header fields fall back to the
	// user input when the model omitted them.
	Generate(ctx context.Context, input domain.CVInput) (*domain.CV, error)
}

type cvService struct {
	generator domain.CVGenerator
	diag      DiagnosticSink
	logger    *zap.Logger
}

// NewCVService creates a new instance of cvService.
func NewCVService(generator domain.CVGenerator, diag DiagnosticSink, logger *zap.Logger) CVService {
	return &cvService{
		generator: generator,
		diag:      diag,
		logger:    logger,
	}
}

// Generate implements CVService
func (s *cvService) Generate(ctx context.Context, input domain.CVInput) (*domain.CV, error) {
	raw, err := s.generator.GenerateCV(ctx, input)
	if err != nil {
		return nil, err
	}
	if s.diag != nil {
		s.diag("cv_raw", raw)
	}

	jsonText, ok := extractCVJSON(raw)
	if !ok {
		return nil, domain.NewModelError("No JSON found in the model reply", nil)
	}

	var parsed any
	if err := json.Unmarshal([]byte(jsonText), &parsed); err != nil {
		if s.diag != nil {
			s.diag("cv_bad_json", jsonText)
		}
		return nil, domain.NewModelError("Model returned invalid JSON", err)
	}

	cv := projectCV(cleanKeys(parsed), input)
	s.logger.Info("Structured CV generated",
		zap.Int("experience_entries", len(cv.Experience)),
		zap.Int("skills", len(cv.Skills)))
	return cv, nil
}

var (
	fencedJSONBlock  = regexp.MustCompile("(?si)```json\\s*(\\{.*?\\})\\s*```")
	fencedBlock      = regexp.MustCompile("(?s)```\\s*(\\{.*?\\})\\s*```")
	keyJunkReplacer  = strings.NewReplacer("\n", "", "\r", "", "\t", "")
	keySpaceReplacer = strings.NewReplacer("\"", "", "'", "", " ", "")
)

// extractCVJSON pulls the most plausible JSON object out of the reply:
// a ```json fence first, then a bare fence, then the largest balanced
// brace block.
func extractCVJSON(text string) (string, bool) {
	if m := fencedJSONBlock.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1]), true
	}
	if m := fencedBlock.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1]), true
	}
	largest := ""
	for _, block := range braceBlocks(text) {
		if len(block) > len(largest) {
			largest = block
		}
	}
	if largest == "" {
		return "", false
	}
	return largest, true
}

// braceBlocks returns every balanced top-level {...} run in the text.
// Braces inside string literals do not count toward the balance, so nested
// objects come back whole instead of truncated at the first closing brace.
func braceBlocks(text string) []string {
	var blocks []string
	depth := 0
	start := -1
	inString := false
	escaped := false
	for i := 0; i < len(text); i++ {
		c := text[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			if depth > 0 {
				inString = true
			}
		case '{':
			if depth == 0 {
				start = i
			}
			depth++
		case '}':
			if depth > 0 {
				depth--
				if depth == 0 {
					blocks = append(blocks, text[start:i+1])
				}
			}
		}
	}
	return blocks
}

// cleanKeys recursively trims whitespace, line breaks and stray quotes off
// mapping keys. Models regularly emit keys like `" profile\n"`.
func cleanKeys(value any) any {
	switch v := value.(type) {
	case map[string]any:
		clean := make(map[string]any, len(v))
		for k, inner := range v {
			kk := strings.TrimSpace(keyJunkReplacer.Replace(k))
			kk = strings.Trim(kk, `"'`)
			clean[kk] = cleanKeys(inner)
		}
		return clean
	case []any:
		for i := range v {
			v[i] = cleanKeys(v[i])
		}
		return v
	default:
		return value
	}
}

// normalizeKey reduces a key for tolerant comparison.
func normalizeKey(k string) string {
	k = keyJunkReplacer.Replace(strings.TrimSpace(k))
	return strings.ToLower(keySpaceReplacer.Replace(k))
}

// pick retrieves a field even when its key is mangled.
func pick(m map[string]any, wanted string) any {
	if v, ok := m[wanted]; ok {
		return v
	}
	wantedNorm := normalizeKey(wanted)
	for k, v := range m {
		if normalizeKey(k) == wantedNorm {
			return v
		}
	}
	return nil
}

// ensureStringList coerces a value into a clean list of strings. A single
// string is split into its non-empty lines with bullet markers stripped.
func ensureStringList(value any) []string {
	switch v := value.(type) {
	case nil:
		return nil
	case []any:
		var out []string
		for _, item := range v {
			if s := strings.TrimSpace(itemString(item)); s != "" {
				out = append(out, s)
			}
		}
		return out
	case string:
		var lines []string
		for _, line := range strings.Split(v, "\n") {
			line = strings.Trim(line, "-• \t\r")
			if line != "" {
				lines = append(lines, line)
			}
		}
		if len(lines) == 0 && strings.TrimSpace(v) != "" {
			return []string{v}
		}
		return lines
	default:
		return []string{itemString(v)}
	}
}

func itemString(v any) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	data, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return strings.Trim(string(data), `"`)
}

// projectCV maps the loosely shaped parse result into the guaranteed CV
// structure, defaulting header fields from the user input.
func projectCV(parsed any, input domain.CVInput) *domain.CV {
	m, ok := parsed.(map[string]any)
	if !ok {
		m = map[string]any{}
	}

	header := domain.CVHeader{
		FullName: input.Name,
		Title:    input.TargetTitle,
		Contact:  input.Contact,
	}
	if h, ok := pick(m, "header").(map[string]any); ok {
		if v := strings.TrimSpace(itemString(pick(h, "full_name"))); v != "" {
			header.FullName = v
		}
		if v := strings.TrimSpace(itemString(pick(h, "title"))); v != "" {
			header.Title = v
		}
		if v := strings.TrimSpace(itemString(pick(h, "contact"))); v != "" {
			header.Contact = v
		}
	}

	profile := ""
	if p, ok := pick(m, "profile").(string); ok {
		profile = strings.TrimSpace(p)
	}

	var experience []domain.CVExperience
	if list, ok := pick(m, "experience").([]any); ok {
		for _, item := range list {
			e, ok := item.(map[string]any)
			if !ok {
				continue
			}
			experience = append(experience, domain.CVExperience{
				Title:   strings.TrimSpace(itemString(pick(e, "title"))),
				Company: strings.TrimSpace(itemString(pick(e, "company"))),
				Dates:   strings.TrimSpace(itemString(pick(e, "dates"))),
				Bullets: ensureStringList(pick(e, "bullets")),
			})
		}
	}

	return &domain.CV{
		Header:     header,
		Profile:    profile,
		Education:  ensureStringList(pick(m, "education")),
		Skills:     ensureStringList(pick(m, "skills")),
		Experience: experience,
		Projects:   ensureStringList(pick(m, "projects")),
		Languages:  ensureStringList(pick(m, "languages")),
		Interests:  ensureStringList(pick(m, "interests")),
	}
}
