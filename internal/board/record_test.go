package board_test

import (
	"testing"

	"github.com/sulta24/feedback-app/internal/board"
)

func TestParseCategory(t *testing.T) {
	tests := []struct {
		input   string
		want    board.Category
		wantErr bool
	}{
		{input: "UI", want: board.CategoryUI},
		{input: "Performance", want: board.CategoryPerformance},
		{input: "Feature", want: board.CategoryFeature},
		{input: "Other", want: board.CategoryOther},
		{input: "ui", wantErr: true}, // case sensitive
		{input: "Bugs", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := board.ParseCategory(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseCategory(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseCategory(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseSortMode(t *testing.T) {
	tests := []struct {
		input   string
		want    board.SortMode
		wantErr bool
	}{
		{input: "votes", want: board.SortByVotes},
		{input: "created", want: board.SortByCreated},
		{input: "newest", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := board.ParseSortMode(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseSortMode(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseSortMode(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseDirection(t *testing.T) {
	if _, err := board.ParseDirection("sideways"); err == nil {
		t.Error("ParseDirection() expected error for unknown direction")
	}
	for input, want := range map[string]board.Direction{"up": board.VoteUp, "down": board.VoteDown} {
		got, err := board.ParseDirection(input)
		if err != nil {
			t.Fatalf("ParseDirection(%q) error = %v", input, err)
		}
		if got != want {
			t.Errorf("ParseDirection(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestCategories_ReturnsACopy(t *testing.T) {
	first := board.Categories()
	first[0] = board.Category("Mutated")

	if board.Categories()[0] != board.CategoryUI {
		t.Error("Categories() shares its backing array with callers")
	}
}
