package main

import (
	"fmt"

	"cartable/internal/adapter/ollama"
	"cartable/internal/domain"
	"cartable/internal/logger"
	"cartable/internal/pdf"
	"cartable/internal/service"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newCVCommand() *cobra.Command {
	command := cobra.Command{
		Use:   "cv",
		Short: "Generate a CV with the local model",
	}

	var (
		inputFile string
		template  string
		accent    string
		outFile   string
		input     domain.CVInput
	)
	generateCommand := cobra.Command{
		Use:   "generate",
		Short: "Rewrite your raw material into a structured CV and export it as PDF",
		Long: `Generate a CV from raw material given as a YAML file (--input) or as
flags. The model rewrites the material into a structured CV, which is
rendered to PDF with the chosen template.

The YAML file uses the keys name, target_title, contact, profile,
education, skills, experience, projects, languages and interests. Flags
override file values.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if inputFile != "" {
				fileInput, err := loadCVInputFile(inputFile)
				if err != nil {
					return err
				}
				input = mergeCVInput(fileInput, input)
			}
			if input.Name == "" {
				return domain.NewInvalidInputError("A name is required (--name or the input file)")
			}

			log := logger.Get()
			client := ollama.NewClient(cfg.Ollama.Server, cfg.Ollama.Model, cfg.Ollama.Timeout, log)
			cvService := service.NewCVService(client, service.ZapDiagnosticSink(log), log)

			cv, err := cvService.Generate(cmd.Context(), input)
			if err != nil {
				return err
			}

			if template == "" {
				template = cfg.CV.Template
			}
			if accent == "" {
				accent = cfg.CV.Accent
			}
			if err := pdf.Export(outFile, *cv, pdf.Options{Template: template, Accent: accent}); err != nil {
				return err
			}
			fmt.Printf("Wrote %s\n", outFile)
			return nil
		},
	}

	flags := generateCommand.Flags()
	flags.StringVar(&inputFile, "input", "", "YAML file with the raw CV material")
	flags.StringVar(&template, "template", "", "classic or sidebar (default from config)")
	flags.StringVar(&accent, "accent", "", "accent color as #RRGGBB (default from config)")
	flags.StringVar(&outFile, "out", "cv.pdf", "output PDF path")
	flags.StringVar(&input.Name, "name", "", "full name")
	flags.StringVar(&input.TargetTitle, "title", "", "target job title")
	flags.StringVar(&input.Contact, "contact", "", "contact line (email, phone, city)")
	flags.StringVar(&input.Profile, "profile", "", "profile summary material")
	flags.StringVar(&input.Education, "education", "", "education material")
	flags.StringVar(&input.Skills, "skills", "", "skills material")
	flags.StringVar(&input.Experience, "experience", "", "experience material")
	flags.StringVar(&input.Projects, "projects", "", "projects material")
	flags.StringVar(&input.Languages, "languages", "", "languages material")
	flags.StringVar(&input.Interests, "interests", "", "interests material")

	command.AddCommand(&generateCommand)
	return &command
}

func loadCVInputFile(path string) (domain.CVInput, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return domain.CVInput{}, fmt.Errorf("failed to read input file: %w", err)
	}
	return domain.CVInput{
		Name:        v.GetString("name"),
		TargetTitle: v.GetString("target_title"),
		Contact:     v.GetString("contact"),
		Profile:     v.GetString("profile"),
		Education:   v.GetString("education"),
		Skills:      v.GetString("skills"),
		Experience:  v.GetString("experience"),
		Projects:    v.GetString("projects"),
		Languages:   v.GetString("languages"),
		Interests:   v.GetString("interests"),
	}, nil
}

// mergeCVInput overlays non-empty flag values on top of the file values.
func mergeCVInput(base, override domain.CVInput) domain.CVInput {
	if override.Name != "" {
		base.Name = override.Name
	}
	if override.TargetTitle != "" {
		base.TargetTitle = override.TargetTitle
	}
	if override.Contact != "" {
		base.Contact = override.Contact
	}
	if override.Profile != "" {
		base.Profile = override.Profile
	}
	if override.Education != "" {
		base.Education = override.Education
	}
	if override.Skills != "" {
		base.Skills = override.Skills
	}
	if override.Experience != "" {
		base.Experience = override.Experience
	}
	if override.Projects != "" {
		base.Projects = override.Projects
	}
	if override.Languages != "" {
		base.Languages = override.Languages
	}
	if override.Interests != "" {
		base.Interests = override.Interests
	}
	return base
}
