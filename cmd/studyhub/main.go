package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"studyhub/internal/bootstrap"
	plandto "studyhub/internal/modules/plan/dto"
	progressdto "studyhub/internal/modules/progress/dto"
	"studyhub/internal/platform/config"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		dataDir string
		verbose bool
	)

	root := &cobra.Command{
		Use:           "studyhub",
		Short:         "StudyHub is a command-line client for AI-assisted study planning",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&dataDir, "data-dir", "", "data directory (default $STUDYHUB_DATA_DIR or ~/.studyhub)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		newLoginCmd(&dataDir, &verbose),
		newRegisterCmd(&dataDir, &verbose),
		newWhoAmICmd(&dataDir, &verbose),
		newLogoutCmd(&dataDir, &verbose),
		newPlanCmd(&dataDir, &verbose),
		newResourcesCmd(&dataDir, &verbose),
		newMotivationCmd(&dataDir, &verbose),
		newSummarizeCmd(&dataDir, &verbose),
		newProgressCmd(&dataDir, &verbose),
		newFilterCmd(&dataDir, &verbose),
		newTUICmd(&dataDir, &verbose),
	)
	return root
}

func loadApp(dataDir string, verbose bool) (*bootstrap.App, error) {
	cfg, err := config.Load(dataDir)
	if err != nil {
		return nil, err
	}
	level := zerolog.ErrorLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()
	return bootstrap.New(cfg, log)
}

func newLoginCmd(dataDir *string, verbose *bool) *cobra.Command {
	var (
		username string
		password string
	)
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate against the backend and store the session token",
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(username) == "" {
				return fmt.Errorf("--username is required")
			}
			if password == "" {
				return fmt.Errorf("--password is required")
			}
			app, err := loadApp(*dataDir, *verbose)
			if err != nil {
				return err
			}
			session, err := app.AuthCLI.Login(cmd.Context(), username, password)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s\n", session.DisplayName)
			return nil
		},
	}
	cmd.Flags().StringVarP(&username, "username", "u", "", "account username")
	cmd.Flags().StringVarP(&password, "password", "p", "", "account password")
	return cmd
}

func newRegisterCmd(dataDir *string, verbose *bool) *cobra.Command {
	var (
		username string
		email    string
		password string
	)
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a new account and log in",
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(username) == "" {
				return fmt.Errorf("--username is required")
			}
			if strings.TrimSpace(email) == "" {
				return fmt.Errorf("--email is required")
			}
			if password == "" {
				return fmt.Errorf("--password is required")
			}
			app, err := loadApp(*dataDir, *verbose)
			if err != nil {
				return err
			}
			session, err := app.AuthCLI.Register(cmd.Context(), username, email, password)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Registered and logged in as %s\n", session.DisplayName)
			return nil
		},
	}
	cmd.Flags().StringVarP(&username, "username", "u", "", "account username")
	cmd.Flags().StringVarP(&email, "email", "e", "", "account email")
	cmd.Flags().StringVarP(&password, "password", "p", "", "account password")
	return cmd
}

func newWhoAmICmd(dataDir *string, verbose *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the currently logged-in user",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*dataDir, *verbose)
			if err != nil {
				return err
			}
			session, err := app.AuthCLI.WhoAmI(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Username:  %s\n", session.Username)
			if session.Email != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "Email:     %s\n", session.Email)
			}
			return nil
		},
	}
}

func newLogoutCmd(dataDir *string, verbose *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Discard the stored session token",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*dataDir, *verbose)
			if err != nil {
				return err
			}
			if err := app.AuthCLI.Logout(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Logged out")
			return nil
		},
	}
}

func newPlanCmd(dataDir *string, verbose *bool) *cobra.Command {
	plan := &cobra.Command{
		Use:   "plan",
		Short: "Generate study plans",
	}
	plan.AddCommand(
		newPlanSimpleCmd(dataDir, verbose),
		newPlanAdvancedCmd(dataDir, verbose),
		newPlanSubjectsCmd(dataDir, verbose),
	)
	return plan
}

func newPlanSimpleCmd(dataDir *string, verbose *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "simple <goal>",
		Short: "Generate a quick plan from a free-form goal",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			goal := strings.TrimSpace(strings.Join(args, " "))
			if goal == "" {
				return fmt.Errorf("goal must not be empty")
			}
			app, err := loadApp(*dataDir, *verbose)
			if err != nil {
				return err
			}
			plan, err := app.PlanCLI.Simple(cmd.Context(), goal)
			if err != nil {
				return err
			}
			for i, step := range plan.Schedule {
				fmt.Fprintf(cmd.OutOrStdout(), "%d. %s\n", i+1, step)
			}
			if plan.ResourceTopic != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "\nResource: %s\n  %s\n", plan.ResourceTopic, plan.ResourceLink)
			}
			return nil
		},
	}
}

func newPlanAdvancedCmd(dataDir *string, verbose *bool) *cobra.Command {
	var input plandto.AdvancedPlanInput
	cmd := &cobra.Command{
		Use:   "advanced",
		Short: "Generate a day-by-day plan and start tracking it",
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(input.Subject) == "" {
				return fmt.Errorf("--subject is required")
			}
			app, err := loadApp(*dataDir, *verbose)
			if err != nil {
				return err
			}
			plan, err := app.PlanCLI.Advanced(cmd.Context(), input)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Plan for %s (%s, %.1f h/day, %.0f h total)\n\n", plan.Subject, plan.Difficulty, plan.DailyHours, plan.TotalHours)
			for _, day := range plan.Schedule {
				fmt.Fprintf(out, "Day %d  %s  (%.1f h)\n", day.Day, day.Date, day.Hours)
				for _, topic := range day.Topics {
					fmt.Fprintf(out, "  - %s (%.1f h)\n", topic.Topic, topic.Hours)
				}
				for _, goal := range day.Goals {
					fmt.Fprintf(out, "  * %s\n", goal)
				}
			}
			if len(plan.Resources) > 0 {
				fmt.Fprintln(out, "\nResources:")
				for _, r := range plan.Resources {
					fmt.Fprintf(out, "  %s [%s] %s\n", r.Title, r.ResourceType, r.URL)
				}
			}
			if plan.Motivation != "" {
				fmt.Fprintf(out, "\n%s\n", plan.Motivation)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&input.Subject, "subject", "", "subject to study")
	cmd.Flags().Float64Var(&input.HoursPerDay, "hours-per-day", 2, "available study hours per day")
	cmd.Flags().IntVar(&input.TotalDays, "days", 7, "number of days the plan covers")
	cmd.Flags().StringVar(&input.KnowledgeLevel, "level", "beginner", "knowledge level (beginner, intermediate, advanced)")
	cmd.Flags().StringVar(&input.LearningStyle, "style", "visual", "preferred learning style")
	cmd.Flags().StringVar(&input.Mood, "mood", "", "current mood, used to tune the plan")
	return cmd
}

func newPlanSubjectsCmd(dataDir *string, verbose *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "subjects",
		Short: "List subjects the backend knows about",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*dataDir, *verbose)
			if err != nil {
				return err
			}
			subjects, err := app.PlanCLI.Subjects(cmd.Context())
			if err != nil {
				return err
			}
			for _, s := range subjects {
				fmt.Fprintln(cmd.OutOrStdout(), s)
			}
			return nil
		},
	}
}

func newResourcesCmd(dataDir *string, verbose *bool) *cobra.Command {
	resources := &cobra.Command{
		Use:   "resources",
		Short: "Find learning resources",
	}
	resources.AddCommand(newResourcesFindCmd(dataDir, verbose))
	return resources
}

func newResourcesFindCmd(dataDir *string, verbose *bool) *cobra.Command {
	var (
		subject      string
		resourceType string
		limit        int
	)
	cmd := &cobra.Command{
		Use:   "find",
		Short: "Search learning resources by subject",
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(subject) == "" {
				return fmt.Errorf("--subject is required")
			}
			app, err := loadApp(*dataDir, *verbose)
			if err != nil {
				return err
			}
			result, err := app.ResourceCLI.Find(cmd.Context(), subject, resourceType, limit)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, r := range result.Resources {
				fmt.Fprintf(out, "%s [%s, %s]\n", r.Title, r.ResourceType, r.Difficulty)
				if r.Description != "" {
					fmt.Fprintf(out, "  %s\n", r.Description)
				}
				fmt.Fprintf(out, "  %s\n", r.URL)
			}
			if result.Feedback != "" {
				fmt.Fprintf(out, "\n%s\n", result.Feedback)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&subject, "subject", "", "subject to search resources for")
	cmd.Flags().StringVar(&resourceType, "type", "", "restrict to a resource type (video, article, course, book)")
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum number of results")
	return cmd
}

func newMotivationCmd(dataDir *string, verbose *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "motivation <how you feel>",
		Short: "Get a quote, tip and encouragement tuned to your mood",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mood := strings.TrimSpace(strings.Join(args, " "))
			app, err := loadApp(*dataDir, *verbose)
			if err != nil {
				return err
			}
			m, err := app.MotivationCLI.Enhanced(cmd.Context(), mood)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if m.QuoteText != "" {
				fmt.Fprintf(out, "%q", m.QuoteText)
				if m.QuoteAuthor != "" {
					fmt.Fprintf(out, " - %s", m.QuoteAuthor)
				}
				fmt.Fprintln(out)
			}
			if m.Tip != "" {
				fmt.Fprintf(out, "\nTip: %s\n", m.Tip)
			}
			if m.Encouragement != "" {
				fmt.Fprintf(out, "\n%s\n", m.Encouragement)
			}
			if m.Analysis != nil {
				fmt.Fprintf(out, "\nMood: %s (energy %s, confidence %s)\n", m.Analysis.DetectedMood, m.Analysis.EnergyLevel, m.Analysis.ConfidenceLevel)
				for _, s := range m.Analysis.Suggestions {
					fmt.Fprintf(out, "  - %s\n", s)
				}
			}
			return nil
		},
	}
}

func newSummarizeCmd(dataDir *string, verbose *bool) *cobra.Command {
	var question string
	cmd := &cobra.Command{
		Use:   "summarize <path>",
		Short: "Upload a document for summarization or question answering",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*dataDir, *verbose)
			if err != nil {
				return err
			}
			result, err := app.SummarizeCLI.Upload(cmd.Context(), args[0], question)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			switch result.Type {
			case "qa":
				fmt.Fprintf(out, "Q: %s\nA: %s\n", result.Question, result.Answer)
			default:
				fmt.Fprintf(out, "%s\n", result.Summary)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&question, "question", "q", "", "ask a question about the document instead of summarizing")
	return cmd
}

func newProgressCmd(dataDir *string, verbose *bool) *cobra.Command {
	progress := &cobra.Command{
		Use:   "progress",
		Short: "Track daily study progress",
	}
	progress.AddCommand(
		newProgressShowCmd(dataDir, verbose),
		newProgressTodayCmd(dataDir, verbose),
		newProgressMarkCmd(dataDir, verbose),
		newProgressHistoryCmd(dataDir, verbose),
		newProgressResetCmd(dataDir, verbose),
	)
	return progress
}

func printMark(cmd *cobra.Command, mark progressdto.MarkOutput) {
	out := cmd.OutOrStdout()
	state := "not completed"
	if mark.Completed {
		state = "completed"
	}
	fmt.Fprintf(out, "%s marked %s\n", mark.Date, state)
	fmt.Fprintf(out, "Streak: %d day(s)   Completion: %d%%\n", mark.Streak, mark.CompletionPercent)
	for _, a := range mark.NewAchievements {
		fmt.Fprintf(out, "Achievement unlocked: %s (%s)\n", a.Title, a.Description)
	}
}

func newProgressShowCmd(dataDir *string, verbose *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the current plan, streak and achievements",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*dataDir, *verbose)
			if err != nil {
				return err
			}
			ledger, err := app.ProgressCLI.Show(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if ledger.Plan != nil {
				fmt.Fprintf(out, "Plan:       %s (%s, %.1f h/day, %d days)\n", ledger.Plan.Subject, ledger.Plan.Difficulty, ledger.Plan.DailyHours, ledger.Plan.PlannedDays)
			} else {
				fmt.Fprintln(out, "Plan:       none")
			}
			fmt.Fprintf(out, "Completed:  %d day(s)\n", ledger.CompletedDays)
			fmt.Fprintf(out, "Streak:     %d day(s)\n", ledger.Streak)
			fmt.Fprintf(out, "Completion: %d%%\n", ledger.CompletionPercent)
			if len(ledger.Achievements) > 0 {
				fmt.Fprintln(out, "Achievements:")
				for _, a := range ledger.Achievements {
					fmt.Fprintf(out, "  %s (%s)\n", a.Title, a.Description)
				}
			}
			return nil
		},
	}
}

func newProgressTodayCmd(dataDir *string, verbose *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "today",
		Short: "Mark today's study session as completed",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*dataDir, *verbose)
			if err != nil {
				return err
			}
			mark, err := app.ProgressCLI.MarkToday(cmd.Context())
			if err != nil {
				return err
			}
			printMark(cmd, mark)
			return nil
		},
	}
}

func newProgressMarkCmd(dataDir *string, verbose *bool) *cobra.Command {
	var (
		date string
		undo bool
	)
	cmd := &cobra.Command{
		Use:   "mark",
		Short: "Mark or unmark a specific date",
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(date) == "" {
				return fmt.Errorf("--date is required")
			}
			app, err := loadApp(*dataDir, *verbose)
			if err != nil {
				return err
			}
			mark, err := app.ProgressCLI.MarkDate(cmd.Context(), date, !undo)
			if err != nil {
				return err
			}
			printMark(cmd, mark)
			return nil
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "date to mark, YYYY-MM-DD")
	cmd.Flags().BoolVar(&undo, "undo", false, "mark the date as not completed")
	return cmd
}

func newProgressHistoryCmd(dataDir *string, verbose *bool) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recent daily progress entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*dataDir, *verbose)
			if err != nil {
				return err
			}
			days, err := app.ProgressCLI.History(cmd.Context(), limit)
			if err != nil {
				return err
			}
			for _, d := range days {
				state := " "
				if d.Completed {
					state = "x"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "[%s] %s\n", state, d.Date)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 30, "maximum number of days to list")
	return cmd
}

func newProgressResetCmd(dataDir *string, verbose *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Discard the plan and all recorded progress",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*dataDir, *verbose)
			if err != nil {
				return err
			}
			if err := app.ProgressCLI.Reset(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Progress reset")
			return nil
		},
	}
}

func newFilterCmd(dataDir *string, verbose *bool) *cobra.Command {
	filter := &cobra.Command{
		Use:   "filter",
		Short: "Inspect the content filter",
	}
	filter.AddCommand(
		newFilterCheckCmd(dataDir, verbose),
		newFilterDoctorCmd(dataDir, verbose),
	)
	return filter
}

func newFilterCheckCmd(dataDir *string, verbose *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "check <text>",
		Short: "Run the content filter against a piece of text",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*dataDir, *verbose)
			if err != nil {
				return err
			}
			decision, err := app.FilterCLI.Check(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if decision.Allowed {
				fmt.Fprintln(out, "allowed")
				return nil
			}
			fmt.Fprintf(out, "blocked: %s\n", decision.Category)
			if decision.Suggestion != "" {
				fmt.Fprintf(out, "%s\n", decision.Suggestion)
			}
			return nil
		},
	}
}

func newFilterDoctorCmd(dataDir *string, verbose *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Diagnose configured moderation plugins",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*dataDir, *verbose)
			if err != nil {
				return err
			}
			results, err := app.FilterCLI.Doctor(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(results) == 0 {
				fmt.Fprintln(out, "keyword mode, no plugins configured")
				return nil
			}
			for _, r := range results {
				status := "ok"
				if r.Error != "" {
					status = r.Error
				}
				fmt.Fprintf(out, "%s %s\n", r.Name, r.Version)
				fmt.Fprintf(out, "  binary:    %v\n", r.BinaryReachable)
				fmt.Fprintf(out, "  checksum:  %v\n", r.ChecksumValid)
				fmt.Fprintf(out, "  lifecycle: %v\n", r.LifecycleOK)
				fmt.Fprintf(out, "  status:    %s\n", status)
			}
			return nil
		},
	}
}

func newTUICmd(dataDir *string, verbose *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive terminal interface",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*dataDir, *verbose)
			if err != nil {
				return err
			}
			return bootstrap.RunTUI(app)
		},
	}
}
