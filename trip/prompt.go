package trip

import (
	"fmt"
	"strings"

	"github.com/voyago/tripagent/knowledge"
)

// Digest renders retrieved records into the textual knowledge digest that is
// interpolated into the generation prompt. An empty record list renders to an
// empty string with no header or footer.
func Digest(results []knowledge.SearchResult) string {
	if len(results) == 0 {
		return ""
	}

	var sb strings.Builder
	for _, result := range results {
		record := result.Record
		sb.WriteString(fmt.Sprintf("**%s**\n", record.Title))
		sb.WriteString(fmt.Sprintf("Description: %s\n", record.Description()))
		if address := record.StringAttr("address"); address != "" {
			sb.WriteString(fmt.Sprintf("Address: %s\n", address))
		}
		if website := record.StringAttr("website"); website != "" {
			sb.WriteString(fmt.Sprintf("Website: %s\n", website))
		}
		if tips := record.Tips(); len(tips) > 0 {
			sb.WriteString("Tips:\n")
			sb.WriteString(strings.Join(tips, "\n"))
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func systemPrompt(req *PlanRequest) string {
	return fmt.Sprintf(`You are an expert travel agent specializing in NYC.
Create a detailed itinerary that includes transportation
from Montreal to NYC and accommodation in NYC.
The preferred mode of transport is %s and
the preferred accommodation type is %s.

The user wants to visit Yankee Stadium and prefers upscale
hotels and dining experiences.

For the Yankee Stadium visit, suggest one of the following
premium seating options: the Legends Suite Club, the Ford Field
MVP Club, or the Champion Suite. Do NOT suggest just a basic tour.

On the day of the Yankee Stadium visit, the dinner will be
INSIDE the stadium, either at the Legends Suite Club,
the Ford Field MVP Club, or the Champion Suite.

The Yankee Stadium visit should be scheduled in the AFTERNOON
or EVENING, as baseball games are not typically played in
the morning.

Use the following format:

**Transportation:**
* [Flight/Train details] ([Estimated Cost: $xxx])

**Accommodation:**
* [Hotel details] ([Estimated Cost per night: $xxx])

**Day 1:**
* **Morning:** [Activity 1] ([Estimated Cost: $xx]) - [Brief Description]
* **Afternoon:** [Activity 2] ([Estimated Cost: $xx]) - [Brief Description]
* **Evening:** [Activity 3] ([Estimated Cost: $xx]) - [Brief Description]
* **Dinner:** [Restaurant Suggestion] ([Estimated Cost per person: $xx])

**Day 2:**
* ... and so on ...

Include transportation suggestions, estimated costs, and practical tips.
Consider the user's budget: %s

It's crucial that you provide specific cost estimations for EACH
item in the itinerary, including transportation, accommodation,
activities, meals, and shows.  Do NOT use general price ranges
like "expensive" or "$$$" as these are not helpful for budget
planning.  Instead, provide numerical estimates like "$25", "$150",
or "$40-$60".

At the end of the itinerary, please provide the following:
* **Total Estimated Cost:** $[total cost]
* **Remaining Budget:** $[remaining budget]
* **Budget Utilization:** [total cost]/[budget]
`, req.TransportMode, req.AccommodationType, req.Budget)
}

func userPrompt(req *PlanRequest, digest string) string {
	return fmt.Sprintf(`Plan a NYC trip from %s to %s.
The traveler's preferences are: %s and their interests include: %s.

Here's some relevant information about NYC: %s
`, req.StartDate, req.EndDate, req.Preferences, strings.Join(req.Interests, ", "), digest)
}
