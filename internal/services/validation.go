package services

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/monocle-dev/taskboard/internal/types"
)

func checkTitle(v *types.ValidationError, title string) {
	v.Check(title != "", "title", "is required")
	v.Check(utf8.RuneCountInString(title) <= types.MaxTitleLength, "title", fmt.Sprintf("must be at most %d characters", types.MaxTitleLength))
}

func checkDescription(v *types.ValidationError, description string) {
	v.Check(utf8.RuneCountInString(description) <= types.MaxDescriptionLength, "description", fmt.Sprintf("must be at most %d characters", types.MaxDescriptionLength))
}

func checkStatus(v *types.ValidationError, status string) {
	v.Check(types.IsValidStatus(status), "status", "must be one of: "+strings.Join(types.Statuses, ", "))
}
