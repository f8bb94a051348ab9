package task

import (
	"strings"

	"github.com/taskboard/taskboard/internal/domain"
)

// MaxTitleLength is the upper bound on task titles.
const MaxTitleLength = 255

// Typed construction failures for Title. Both unwrap to domain.ErrValidation.
var (
	ErrTitleEmpty   = domain.NewFieldError("title", domain.MsgMustNotEmpty)
	ErrTitleTooLong = domain.NewFieldError("title", domain.MsgTooLong(MaxTitleLength))
)

// Title is the task title value object: non-blank, at most MaxTitleLength
// characters. The zero value is invalid; construct via NewTitle.
type Title string

// NewTitle validates raw and returns it as a Title. The input is stored
// as-is; only the blank check trims whitespace.
func NewTitle(raw string) (Title, error) {
	if strings.TrimSpace(raw) == "" {
		return "", ErrTitleEmpty
	}
	if len([]rune(raw)) > MaxTitleLength {
		return "", ErrTitleTooLong
	}
	return Title(raw), nil
}

// String implements fmt.Stringer.
func (t Title) String() string {
	return string(t)
}
