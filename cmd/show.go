package cmd

import (
	"fmt"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/abhisek/academy/internal/content"
	"github.com/abhisek/academy/internal/ui/theme"
)

var titleStyle = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)

var showCmd = &cobra.Command{
	Use:   "show <lesson-id>",
	Short: "Print a lesson, formatted for the terminal or as HTML",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		asHTML, _ := cmd.Flags().GetBool("html")
		width, _ := cmd.Flags().GetInt("width")

		st, log, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer log.Sync()

		l, ok := st.LessonByID(args[0])
		if !ok {
			log.Warn("lesson not found", "lesson_id", args[0])
			return fmt.Errorf("lesson %q not found", args[0])
		}

		out := cmd.OutOrStdout()
		if asHTML {
			fmt.Fprintln(out, content.Format(l.Content))
			return nil
		}

		// lipgloss writers downsample colours to the output and drop them
		// entirely when it is not a terminal.
		lipgloss.Fprintf(out, "%s  (%s)\n\n", titleStyle.Render(l.Title), l.Difficulty.Label())
		lipgloss.Fprintln(out, content.RenderTerminal(content.Parse(l.Content), width))
		if l.HasCodeExample() {
			lipgloss.Fprintln(out, "\n"+theme.SectionHeader.Render("Code Example"))
			fmt.Fprintln(out, l.CodeExample)
		}
		return nil
	},
}

func init() {
	showCmd.Flags().Bool("html", false, "Print the HTML fragment instead of terminal text")
	showCmd.Flags().Int("width", 80, "Wrap terminal output at this many columns (0 disables wrapping)")
}
