package llm

import (
	"context"
	"testing"

	"github.com/go-playground/assert/v2"
)

func TestCleanJSONResponse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "plain JSON unchanged",
			input: `{"intent":"price"}`,
			want:  `{"intent":"price"}`,
		},
		{
			name:  "strips json fenced block",
			input: "```json\n{\"intent\":\"price\"}\n```",
			want:  `{"intent":"price"}`,
		},
		{
			name:  "strips plain fenced block",
			input: "```\n{\"intent\":\"price\"}\n```",
			want:  `{"intent":"price"}`,
		},
		{
			name:  "drops prose around the object",
			input: "Sure! Here it is: {\"intent\":\"price\"} Hope that helps.",
			want:  `{"intent":"price"}`,
		},
		{
			name:  "no object leaves text as is",
			input: "Intent: price",
			want:  "Intent: price",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CleanJSONResponse(tt.input)
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNewRejectsMissingKey(t *testing.T) {
	_, err := New(context.Background(), "openai", "", "")
	assert.NotEqual(t, nil, err)
}

func TestNewRejectsUnknownProvider(t *testing.T) {
	_, err := New(context.Background(), "llama", "key", "")
	assert.NotEqual(t, nil, err)
}

func TestNewOpenAI(t *testing.T) {
	c, err := New(context.Background(), "OpenAI", "key", "")
	assert.Equal(t, nil, err)
	assert.Equal(t, "gpt-4o-mini", c.Name())
}

func TestNewAnthropic(t *testing.T) {
	c, err := New(context.Background(), "anthropic", "key", "")
	assert.Equal(t, nil, err)
	assert.Equal(t, "claude-4.5-haiku", c.Name())
}
