package processor

import (
	"fmt"
	"io"
	"time"

	"codeberg.org/snonux/dailyread/internal/render"
)

// Summary reports what one run produced
type Summary struct {
	Papers       int
	Repositories int
	MentalModels int
	Quotes       int
	Lyrics       int
	Words        int
	Documents    []string
	Expected     int
	Duration     time.Duration
}

func newSummary(c render.Collected, documents []string, expected int, took time.Duration) Summary {
	return Summary{
		Papers:       len(c.Papers),
		Repositories: len(c.Repositories),
		MentalModels: len(c.MentalModels),
		Quotes:       len(c.Quotes),
		Lyrics:       len(c.Lyrics),
		Words:        len(c.Words),
		Documents:    documents,
		Expected:     expected,
		Duration:     took,
	}
}

// Complete reports whether every document was written
func (s Summary) Complete() bool {
	return len(s.Documents) == s.Expected
}

// Print writes the summary in the format shown after every run
func (s Summary) Print(w io.Writer) {
	fmt.Fprintf(w, "\nCollected:\n")
	fmt.Fprintf(w, "  Papers:        %d\n", s.Papers)
	fmt.Fprintf(w, "  Repositories:  %d\n", s.Repositories)
	fmt.Fprintf(w, "  Mental models: %d\n", s.MentalModels)
	fmt.Fprintf(w, "  Quotes:        %d\n", s.Quotes)
	fmt.Fprintf(w, "  Lyrics:        %d\n", s.Lyrics)
	fmt.Fprintf(w, "  Words:         %d\n", s.Words)

	if len(s.Documents) == 0 {
		fmt.Fprintf(w, "\nNo documents were written\n")
		return
	}

	fmt.Fprintf(w, "\nWrote:\n")
	for _, doc := range s.Documents {
		fmt.Fprintf(w, "  %s\n", doc)
	}
	fmt.Fprintf(w, "Done in %s\n", s.Duration.Round(time.Millisecond))
}
