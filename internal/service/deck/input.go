package deck

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/studydeck-backend/internal/domain"
)

const (
	maxNameLen        = 100
	maxDescriptionLen = 500
	maxCategoryLen    = 50
	maxTextLen        = 2000
	maxTags           = 20
	maxTagLen         = 50
)

var colorRe = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// CreateDeckInput holds the parameters for creating a deck.
type CreateDeckInput struct {
	Name        string
	Description string
	Category    string
	Color       string
	IsPublic    bool
	RandomOrder bool
}

// Validate checks all fields and collects all errors.
func (i *CreateDeckInput) Validate() error {
	var errs []domain.FieldError

	name := strings.TrimSpace(i.Name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	} else if len(name) > maxNameLen {
		errs = append(errs, domain.FieldError{Field: "name", Message: "too long (max 100)"})
	}
	if len(i.Description) > maxDescriptionLen {
		errs = append(errs, domain.FieldError{Field: "description", Message: "too long (max 500)"})
	}
	if len(i.Category) > maxCategoryLen {
		errs = append(errs, domain.FieldError{Field: "category", Message: "too long (max 50)"})
	}
	if i.Color != "" && !colorRe.MatchString(i.Color) {
		errs = append(errs, domain.FieldError{Field: "color", Message: "must be #RRGGBB"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// AddFlashcardInput holds the parameters for adding a flashcard to an owned deck.
// An empty Difficulty defaults to MEDIUM.
type AddFlashcardInput struct {
	DeckID     uuid.UUID
	Question   string
	Answer     string
	Category   string
	Difficulty domain.Difficulty
	Tags       []string
}

// Validate checks all fields and collects all errors.
func (i *AddFlashcardInput) Validate() error {
	var errs []domain.FieldError

	if i.DeckID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "deck_id", Message: "required"})
	}
	errs = appendText(errs, "question", i.Question)
	errs = appendText(errs, "answer", i.Answer)
	if len(i.Category) > maxCategoryLen {
		errs = append(errs, domain.FieldError{Field: "category", Message: "too long (max 50)"})
	}
	if i.Difficulty != "" && !i.Difficulty.IsValid() {
		errs = append(errs, domain.FieldError{Field: "difficulty", Message: "must be EASY, MEDIUM or HARD"})
	}
	if len(i.Tags) > maxTags {
		errs = append(errs, domain.FieldError{Field: "tags", Message: "too many (max 20)"})
	}
	for ti, tag := range i.Tags {
		if strings.TrimSpace(tag) == "" {
			errs = append(errs, domain.FieldError{Field: fieldIdx("tags", ti), Message: "must not be empty"})
		} else if len(tag) > maxTagLen {
			errs = append(errs, domain.FieldError{Field: fieldIdx("tags", ti), Message: "too long (max 50)"})
		}
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func (i *AddFlashcardInput) difficulty() domain.Difficulty {
	if i.Difficulty == "" {
		return domain.DifficultyMedium
	}
	return i.Difficulty
}

// RemoveFlashcardInput identifies a flashcard within an owned deck.
type RemoveFlashcardInput struct {
	DeckID      uuid.UUID
	FlashcardID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i *RemoveFlashcardInput) Validate() error {
	var errs []domain.FieldError

	if i.DeckID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "deck_id", Message: "required"})
	}
	if i.FlashcardID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "flashcard_id", Message: "required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// DeleteDeckInput identifies the deck to delete.
type DeleteDeckInput struct {
	DeckID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i *DeleteDeckInput) Validate() error {
	if i.DeckID == uuid.Nil {
		return domain.NewValidationError("deck_id", "required")
	}
	return nil
}

func appendText(errs []domain.FieldError, field, value string) []domain.FieldError {
	if strings.TrimSpace(value) == "" {
		return append(errs, domain.FieldError{Field: field, Message: "required"})
	}
	if len(value) > maxTextLen {
		return append(errs, domain.FieldError{Field: field, Message: "too long (max 2000)"})
	}
	return errs
}

// fieldIdx formats an indexed field path like "tags[2]".
func fieldIdx(field string, idx int) string {
	return field + "[" + strconv.Itoa(idx) + "]"
}
