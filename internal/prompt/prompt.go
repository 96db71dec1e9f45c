// Package prompt holds the templates sent to the local model. The quiz
// template asks for the readable text layout the qcm package parses; models
// that answer in JSON anyway are handled by the JSON extractor first.
package prompt

import (
	"fmt"

	"cartable/internal/domain"
)

const quizTemplate = `You are a multiple-choice quiz generator.
From the following text, create %d questions of %s difficulty.
Expected format (readable text):
- Q1: ...
  A) ...
  B) ...
  C) ...
  D) ...
  ANSWER: A
  EXPLANATION: ...

Text:
%s
`

// Quiz builds the quiz generation prompt.
func Quiz(sourceText string, numQuestions int, difficulty string) string {
	return fmt.Sprintf(quizTemplate, numQuestions, difficulty, sourceText)
}

const cvStructuredTemplate = `You are an expert HR assistant.
From the raw information below, generate a structured CV as JSON.
The JSON must be the ONLY content of your reply (no text before or after).

Rules:
- Be professional; rephrase and improve the text where needed.
- Return EXACTLY this JSON schema:

{
  "header": {
    "full_name": "string",
    "title": "string",
    "contact": "string"
  },
  "profile": "string",
  "education": ["string", "..."],
  "skills": ["string", "..."],
  "experience": [
    {
      "title": "string",
      "company": "string",
      "dates": "string",
      "bullets": ["string", "..."]
    }
  ],
  "projects": ["string", "..."],
  "languages": ["string", "..."],
  "interests": ["string", "..."]
}

User data:
- Name: %s
- Target title: %s
- Contact: %s

Raw material to improve:
- Profile: %s
- Education: %s
- Skills: %s
- Experience: %s
- Projects: %s
- Languages: %s
- Interests: %s
`

// CVStructured builds the structured CV prompt.
func CVStructured(input domain.CVInput) string {
	return fmt.Sprintf(cvStructuredTemplate,
		input.Name,
		input.TargetTitle,
		input.Contact,
		input.Profile,
		input.Education,
		input.Skills,
		input.Experience,
		input.Projects,
		input.Languages,
		input.Interests,
	)
}

const interviewQuestionTemplate = `You are an interview coach.
Generate ONE relevant interview question for the following position: %s
Give only the question, without any explanation.
`

// InterviewQuestion builds the prompt asking for one practice question.
func InterviewQuestion(job string) string {
	return fmt.Sprintf(interviewQuestionTemplate, job)
}

const interviewFeedbackTemplate = `You are an interview coach.
Target position: %s

Candidate's answer:
%s

Give structured feedback:
1) Strengths
2) Areas to improve
3) A proposed better answer (more concise and impactful)
`

// InterviewFeedback builds the prompt reviewing a candidate answer.
func InterviewFeedback(job string, answer string) string {
	return fmt.Sprintf(interviewFeedbackTemplate, job, answer)
}
