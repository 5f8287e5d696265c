// Package intent turns free text into a ParsedQuery using the language model.
package intent

import (
	"context"
	"fmt"
	"time"

	"cryptochat/internal/model"
	"cryptochat/pkg/llm"
)

type Extractor struct {
	llm llm.Completer
	now func() time.Time
}

func NewExtractor(completer llm.Completer) *Extractor {
	return &Extractor{llm: completer, now: time.Now}
}

// Extract asks the model to classify text. On a transport failure or a reply
// that cannot be parsed it returns an unknown query alongside the error.
func (e *Extractor) Extract(ctx context.Context, text string) (model.ParsedQuery, error) {
	resp, err := e.llm.Complete(ctx, BuildPrompt(text, e.now()))
	if err != nil {
		return model.UnknownQuery(), fmt.Errorf("intent extraction: %w", err)
	}

	return Parse(resp)
}
