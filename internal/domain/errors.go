package domain

import "errors"

var (
	ErrInvalidBody       = errors.New("invalid JSON body")
	ErrInvalidName       = errors.New("name must be 2-40 letters, optionally joined by single spaces, apostrophes or hyphens")
	ErrUpstreamLLM       = errors.New("upstream LLM failure")
	ErrGenerationFailed  = errors.New("fortune generation failed")
	ErrLanguageNotFound  = errors.New("phrasebook language not found")
	ErrInvalidPhrasebook = errors.New("invalid phrasebook")
)
