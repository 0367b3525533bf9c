package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	tripagent "github.com/voyago/tripagent"
	"github.com/voyago/tripagent/config"
	"github.com/voyago/tripagent/internal/mylog"
	"github.com/voyago/tripagent/trip"
)

const (
	defaultStartDate     = "2024-04-10"
	defaultEndDate       = "2024-04-15"
	defaultBudget        = "$10000"
	defaultPreferences   = "I prefer a mix of sightseeing, cultural experiences, and trying local food. I like to walk a lot but also want to use public transport."
	defaultTransport     = "airplane"
	defaultAccommodation = "hotel"
)

var defaultInterests = []string{"museums", "Broadway shows", "Central Park"}

func newCmd() *cobra.Command {
	var (
		startDate     string
		endDate       string
		budget        string
		preferences   string
		interests     []string
		transport     string
		accommodation string
		knowledgeFile string
		sqlitePath    string
		model         string
		topK          int
		cacheSize     int
		interactive   bool
		timeout       time.Duration
	)

	cmd := &cobra.Command{
		Use:   "tripagent",
		Short: "Plan a personalized NYC trip with retrieval-augmented generation",
		RunE: func(cmd *cobra.Command, args []string) error {
			logConf, err := config.NewLogConfig()
			if err != nil {
				return err
			}
			logger := mylog.NewLogger(logConf.LogLevel, logConf.LogHandler)

			out := cmd.OutOrStdout()
			reader := bufio.NewReader(cmd.InOrStdin())

			if interactive {
				fmt.Fprintln(out, "Collecting your travel preferences...")
				startDate = promptLine(reader, out, "Start date (YYYY-MM-DD)", startDate)
				endDate = promptLine(reader, out, "End date (YYYY-MM-DD)", endDate)
				budget = promptLine(reader, out, "Budget", budget)
				preferences = promptLine(reader, out, "Preferences", preferences)
				if raw := promptLine(reader, out, "Interests (comma-separated)", strings.Join(interests, ", ")); raw != "" {
					interests = lo.FilterMap(strings.Split(raw, ","), func(s string, _ int) (string, bool) {
						s = strings.TrimSpace(s)
						return s, s != ""
					})
				}
			}
			transport = promptLine(reader, out, "Preferred mode of transport (airplane, train, bus, car)", transport)
			accommodation = promptLine(reader, out, "Preferred accommodation type (hotel, Airbnb)", accommodation)

			opts := []tripagent.Option{
				tripagent.WithLogger(logger),
				tripagent.WithTopK(topK),
				tripagent.WithCacheSize(cacheSize),
			}
			if model != "" {
				opts = append(opts, tripagent.WithGenerationModel(model))
			}
			if sqlitePath != "" {
				opts = append(opts, tripagent.WithSqlitePath(sqlitePath))
			}

			// New fails fast on a missing credential, before any network call.
			agent, err := tripagent.New(cmd.Context(), opts...)
			if err != nil {
				return err
			}
			defer agent.Close()

			ctx := cmd.Context()
			if timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, timeout)
				defer cancel()
			}

			fmt.Fprintln(out, "Loading travel knowledge base...")
			if knowledgeFile != "" {
				err = agent.LoadKnowledgeFile(ctx, knowledgeFile)
			} else {
				err = agent.LoadKnowledgeBase(ctx, trip.DefaultKnowledgeBase())
			}
			if err != nil {
				return err
			}

			fmt.Fprintf(out, "Trip: %s to %s | Budget: %s\n", startDate, endDate, budget)
			fmt.Fprintf(out, "Interests: %s\n", strings.Join(interests, ", "))
			fmt.Fprintln(out, "Generating your personalized itinerary...")

			raw, err := agent.Plan(ctx, &trip.PlanRequest{
				StartDate:         startDate,
				EndDate:           endDate,
				Budget:            budget,
				Preferences:       preferences,
				Interests:         interests,
				TransportMode:     transport,
				AccommodationType: accommodation,
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(out, "\nYour personalized itinerary:\n\n%s\n", raw)

			itinerary := trip.ParseItinerary(raw)
			return itinerary.Present(out, budget, startDate, endDate)
		},
	}

	cmd.Flags().StringVar(&startDate, "start", defaultStartDate, "trip start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&endDate, "end", defaultEndDate, "trip end date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&budget, "budget", defaultBudget, "trip budget")
	cmd.Flags().StringVar(&preferences, "preferences", defaultPreferences, "traveler preference text")
	cmd.Flags().StringArrayVar(&interests, "interest", defaultInterests, "traveler interest (repeatable)")
	cmd.Flags().StringVar(&transport, "transport", defaultTransport, "preferred mode of transport")
	cmd.Flags().StringVar(&accommodation, "accommodation", defaultAccommodation, "preferred accommodation type")
	cmd.Flags().StringVar(&knowledgeFile, "knowledge", "", "YAML knowledge base file (defaults to the built-in NYC base)")
	cmd.Flags().StringVar(&sqlitePath, "db", "", "sqlite-vec database path (defaults to an in-memory index)")
	cmd.Flags().StringVar(&model, "model", "", "generation model, e.g. openai/gpt-4 or anthropic/claude-sonnet-4-0")
	cmd.Flags().IntVar(&topK, "top-k", 5, "neighbors retrieved per query")
	cmd.Flags().IntVar(&cacheSize, "cache-size", 1000, "embedding cache capacity")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "prompt for trip parameters")
	cmd.Flags().DurationVar(&timeout, "timeout", 5*time.Minute, "overall plan timeout (0 disables)")

	return cmd
}

// promptLine reads one input line, falling back to the literal default when
// the input is empty.
func promptLine(reader *bufio.Reader, out io.Writer, label, fallback string) string {
	fmt.Fprintf(out, "%s [%s]: ", label, fallback)
	line, err := reader.ReadString('\n')
	if err != nil {
		return fallback
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return fallback
	}
	return line
}
