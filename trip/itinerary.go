package trip

import (
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"

	"github.com/voyago/tripagent/errors"
)

type (
	// Section is one labeled block of the generated itinerary.
	Section struct {
		Label     string
		Fragments []string
	}

	// Itinerary is the parsed form of the generated text: ordered sections
	// plus the text preceding the first recognized label, surfaced instead
	// of silently dropped.
	Itinerary struct {
		Leading  string
		Sections []Section
	}
)

// sectionMarker matches the fixed labels the generation prompt asks for.
var sectionMarker = regexp.MustCompile(`Transportation:|Accommodation:|Day\s+\d+:`)

const dateLayout = "2006-01-02"

// ParseItinerary splits generated text on the section markers. Parsing is
// tolerant: no marker has to be present, and text that follows a marker
// accumulates into that marker's section until the next marker or the end of
// the text.
func ParseItinerary(text string) Itinerary {
	locs := sectionMarker.FindAllStringIndex(text, -1)
	if len(locs) == 0 {
		return Itinerary{Leading: strings.TrimSpace(text)}
	}

	it := Itinerary{
		Leading: strings.TrimSpace(text[:locs[0][0]]),
	}

	for i, loc := range locs {
		end := len(text)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}

		section := Section{Label: text[loc[0]:loc[1]]}
		if body := strings.TrimSpace(text[loc[1]:end]); body != "" {
			section.Fragments = append(section.Fragments, body)
		}
		it.Sections = append(it.Sections, section)
	}

	return it
}

// Section returns the first section with the given label, or nil.
func (it *Itinerary) Section(label string) *Section {
	for i := range it.Sections {
		if it.Sections[i].Label == label {
			return &it.Sections[i]
		}
	}
	return nil
}

// Days computes the trip length as elapsed days, end minus start. Dates use
// the YYYY-MM-DD layout.
func Days(startDate, endDate string) (int, error) {
	start, err := time.Parse(dateLayout, startDate)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid start date %q", startDate)
	}
	end, err := time.Parse(dateLayout, endDate)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid end date %q", endDate)
	}

	days := int(end.Sub(start).Hours() / 24)
	if days < 0 {
		return 0, errors.Wrapf(errors.ErrInvalidParams, "end date %q precedes start date %q", endDate, startDate)
	}
	return days, nil
}

// Present writes the parsed itinerary to w as labeled console sections.
func (it *Itinerary) Present(w io.Writer, budget, startDate, endDate string) error {
	days, err := Days(startDate, endDate)
	if err != nil {
		return err
	}

	fmt.Fprintln(w, strings.Repeat("=", 50))
	fmt.Fprintln(w, "Your detailed itinerary")
	fmt.Fprintln(w, strings.Repeat("=", 50))
	fmt.Fprintf(w, "Trip length: %d days | Budget: %s\n", days, budget)

	if it.Leading != "" {
		fmt.Fprintf(w, "\n%s\n", it.Leading)
	}

	for _, section := range it.Sections {
		fmt.Fprintf(w, "\n%s\n", section.Label)
		fmt.Fprintln(w, strings.Repeat("-", 30))
		for _, fragment := range section.Fragments {
			fmt.Fprintln(w, fragment)
		}
		fmt.Fprintln(w, strings.Repeat("-", 20))
	}

	return nil
}
