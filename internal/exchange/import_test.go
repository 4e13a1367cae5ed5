package exchange_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sulta24/feedback-app/internal/board"
	"github.com/sulta24/feedback-app/internal/exchange"
)

func TestImport_Valid(t *testing.T) {
	input := `[
		{"id": "a", "text": "one", "votes": 3, "category": "Feature", "createdAt": 1000},
		{"id": "b", "text": "two", "votes": -2, "category": "Other", "createdAt": 2000}
	]`

	got, err := exchange.Import(strings.NewReader(input))
	require.NoError(t, err)

	want := []board.Record{
		{ID: "a", Text: "one", Votes: 3, Category: board.CategoryFeature, CreatedAt: 1000},
		{ID: "b", Text: "two", Votes: -2, Category: board.CategoryOther, CreatedAt: 2000},
	}
	assert.Equal(t, want, got)
}

func TestImport_EmptyArray(t *testing.T) {
	got, err := exchange.Import(strings.NewReader("[]"))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestImport_Invalid(t *testing.T) {
	valid := `{"id": "a", "text": "one", "votes": 1, "category": "UI", "createdAt": 1000}`

	tests := []struct {
		name  string
		input string
	}{
		{name: "not json", input: "{not json"},
		{name: "top level object", input: `{"records": []}`},
		{name: "top level string", input: `"feedback"`},
		{name: "missing id", input: `[{"text": "x", "votes": 0, "category": "UI", "createdAt": 1}]`},
		{name: "missing text", input: `[{"id": "a", "votes": 0, "category": "UI", "createdAt": 1}]`},
		{name: "missing votes", input: `[{"id": "a", "text": "x", "category": "UI", "createdAt": 1}]`},
		{name: "missing category", input: `[{"id": "a", "text": "x", "votes": 0, "createdAt": 1}]`},
		{name: "missing createdAt", input: `[{"id": "a", "text": "x", "votes": 0, "category": "UI"}]`},
		{name: "id not a string", input: `[{"id": 7, "text": "x", "votes": 0, "category": "UI", "createdAt": 1}]`},
		{name: "votes not a number", input: `[{"id": "a", "text": "x", "votes": "many", "category": "UI", "createdAt": 1}]`},
		{name: "createdAt not a number", input: `[{"id": "a", "text": "x", "votes": 0, "category": "UI", "createdAt": "yesterday"}]`},
		{name: "category outside the closed set", input: `[{"id": "a", "text": "x", "votes": 0, "category": "Bugs", "createdAt": 1}]`},
		{name: "one bad element rejects the whole file", input: "[" + valid + `, {"id": "b"}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := exchange.Import(strings.NewReader(tt.input))
			require.Error(t, err)
			assert.Nil(t, got, "a rejected import must not return partial records")
		})
	}
}
