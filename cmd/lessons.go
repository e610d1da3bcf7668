package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/fatih/color"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/abhisek/academy/internal/catalog"
)

var lessonsCmd = &cobra.Command{
	Use:   "lessons",
	Short: "List lessons (optionally filtered by category, difficulty or search text)",
	RunE: func(cmd *cobra.Command, args []string) error {
		categoryID, _ := cmd.Flags().GetString("category")
		difficulty, _ := cmd.Flags().GetString("difficulty")
		query, _ := cmd.Flags().GetString("search")

		st, log, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer log.Sync()

		cat := st.Catalog()
		lessons := cat.Search(query)

		if categoryID != "" {
			if _, ok := cat.Category(categoryID); !ok {
				return fmt.Errorf("unknown category %q", categoryID)
			}
			lessons = lo.Filter(lessons, func(l catalog.Lesson, _ int) bool {
				return l.Category == categoryID
			})
		}
		if difficulty != "" {
			d, err := catalog.ParseDifficulty(difficulty)
			if err != nil {
				return err
			}
			lessons = lo.Filter(lessons, func(l catalog.Lesson, _ int) bool {
				return l.Difficulty == d
			})
		}

		printLessons(cmd.OutOrStdout(), lessons)
		return nil
	},
}

func printLessons(w io.Writer, lessons []catalog.Lesson) {
	header := color.New(color.Bold)
	header.Fprintf(w, "%-22s  %-40s  %-14s  %s\n", "ID", "Title", "Difficulty", "Category")
	fmt.Fprintln(w, strings.Repeat("─", 96))

	for _, l := range lessons {
		title := ansi.Truncate(l.Title, 40, "...")
		fmt.Fprintf(w, "%-22s  %-40s  ", l.ID, title)
		difficultyColor(l.Difficulty).Fprintf(w, "%-14s", l.Difficulty.Label())
		fmt.Fprintf(w, "  %s\n", l.Category)
	}

	fmt.Fprintf(w, "\n%d lessons\n", len(lessons))
}

func difficultyColor(d catalog.Difficulty) *color.Color {
	switch d {
	case catalog.DifficultyBeginner:
		return color.New(color.FgGreen)
	case catalog.DifficultyIntermediate:
		return color.New(color.FgYellow)
	default:
		return color.New(color.FgRed)
	}
}

func init() {
	lessonsCmd.Flags().String("category", "", "Filter by category id (e.g. basics)")
	lessonsCmd.Flags().String("difficulty", "", "Filter by difficulty (beginner, intermediate or advanced)")
	lessonsCmd.Flags().String("search", "", "Only lessons whose title or description contains this text")
}
