package domain

import (
	"fmt"
	"strings"
)

// NamePlaceholder marks where the validated name goes in templates.
const NamePlaceholder = "{name}"

// Phrasebook holds every user-facing string of one target language.
type Phrasebook struct {
	Lang         string           `json:"lang"`
	Disclaimer   string           `json:"disclaimer"`
	MockTemplate string           `json:"mock_template"`
	SystemPrompt []string         `json:"system_prompt"`
	UserPrompt   string           `json:"user_prompt"`
	Errors       PhrasebookErrors `json:"errors"`
}

// PhrasebookErrors are the generic messages shown to clients when generation fails.
type PhrasebookErrors struct {
	Upstream   string `json:"upstream"`
	Generation string `json:"generation"`
}

func (p Phrasebook) Validate() error {
	switch {
	case p.Lang == "":
		return fmt.Errorf("%w: missing lang", ErrInvalidPhrasebook)
	case strings.TrimSpace(p.Disclaimer) == "":
		return fmt.Errorf("%w: %s: missing disclaimer", ErrInvalidPhrasebook, p.Lang)
	case !strings.Contains(p.MockTemplate, NamePlaceholder):
		return fmt.Errorf("%w: %s: mock_template lacks %s", ErrInvalidPhrasebook, p.Lang, NamePlaceholder)
	case !strings.Contains(p.UserPrompt, NamePlaceholder):
		return fmt.Errorf("%w: %s: user_prompt lacks %s", ErrInvalidPhrasebook, p.Lang, NamePlaceholder)
	case len(p.SystemPrompt) == 0:
		return fmt.Errorf("%w: %s: missing system_prompt", ErrInvalidPhrasebook, p.Lang)
	case p.Errors.Upstream == "" || p.Errors.Generation == "":
		return fmt.Errorf("%w: %s: missing error messages", ErrInvalidPhrasebook, p.Lang)
	}
	return nil
}

// MockText renders the canned fortune for name.
func (p Phrasebook) MockText(name string) string {
	return strings.ReplaceAll(p.MockTemplate, NamePlaceholder, name)
}

func (p Phrasebook) SystemInstruction() string {
	return strings.Join(p.SystemPrompt, "\n")
}

func (p Phrasebook) UserInstruction(name string) string {
	return strings.ReplaceAll(p.UserPrompt, NamePlaceholder, name)
}

// Finalize applies FinalizeText with this phrasebook's disclaimer.
func (p Phrasebook) Finalize(raw string) string {
	return FinalizeText(raw, p.Disclaimer)
}

// FinalizeText trims raw and makes sure it carries the disclaimer,
// appending it (after a period) when no case-insensitive match exists.
// FinalizeText(FinalizeText(x, d), d) == FinalizeText(x, d).
func FinalizeText(raw, disclaimer string) string {
	text := strings.TrimSpace(raw)
	if strings.Contains(strings.ToLower(text), strings.ToLower(disclaimer)) {
		return text
	}
	suffix := "."
	if strings.HasSuffix(text, ".") {
		suffix = ""
	}
	return strings.TrimSpace(text + suffix + " " + disclaimer)
}
