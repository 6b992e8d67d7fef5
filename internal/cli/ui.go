package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mihikajadhav02/NiraCare/internal/session"
)

// UI styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7C3AED")).
			Padding(0, 1).
			MarginBottom(1)

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#3B82F6"))

	noteStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#10B981")).
			Padding(1, 2).
			Width(80)

	routingBoxStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#F59E0B")).
			Padding(1, 2).
			Width(80)

	stepStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F59E0B")).
			Bold(true)

	okStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#10B981")).
			Bold(true)

	errStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#EF4444")).
			Bold(true)

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6B7280"))
)

// sessionResult wraps a pipeline record for rendering.
type sessionResult struct {
	Session *session.Session
}

// DisplayWelcomeBanner shows the welcome banner
func DisplayWelcomeBanner() {
	banner := `
███╗   ██╗██╗██████╗  █████╗  ██████╗ █████╗ ██████╗ ███████╗
████╗  ██║██║██╔══██╗██╔══██╗██╔════╝██╔══██╗██╔══██╗██╔════╝
██╔██╗ ██║██║██████╔╝███████║██║     ███████║██████╔╝█████╗
██║╚██╗██║██║██╔══██╗██╔══██║██║     ██╔══██║██╔══██╗██╔══╝
██║ ╚████║██║██║  ██║██║  ██║╚██████╗██║  ██║██║  ██║███████╗
╚═╝  ╚═══╝╚═╝╚═╝  ╚═╝╚═╝  ╚═╝ ╚═════╝╚═╝  ╚═╝╚═╝  ╚═╝╚══════╝

          From "something feels off" to a doctor-ready note
`

	welcomeStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#7C3AED")).
		Bold(true).
		Align(lipgloss.Center).
		Width(80).
		MarginBottom(1)

	disclaimerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#6B7280")).
		Italic(true).
		Align(lipgloss.Center).
		Width(80).
		MarginBottom(1)

	fmt.Print(welcomeStyle.Render(banner))
	fmt.Println()
	fmt.Println(disclaimerStyle.Render("NiraCare documents what you report. It does not diagnose or suggest treatment."))
	fmt.Println()
}

// RenderSession prints the full result of a completed session.
func RenderSession(res *sessionResult) {
	if res == nil || res.Session == nil {
		return
	}
	sess := res.Session

	fmt.Println()
	fmt.Println(titleStyle.Render("Your Visit Note"))

	if len(sess.Symptoms) > 0 {
		fmt.Println(sectionStyle.Render("Symptoms captured:"))
		for _, s := range sess.Symptoms {
			fmt.Println("  • " + formatSymptomLine(s))
		}
		fmt.Println()
	}

	if sess.DoctorNote != "" {
		fmt.Println(noteStyle.Render(sess.DoctorNote))
		fmt.Println()
	}

	if sess.Routing != nil {
		fmt.Println(routingBoxStyle.Render(formatRouting(sess.Routing)))
		fmt.Println()
	}

	if sess.Eval != nil {
		renderEval(sess.Eval)
	}
}

func formatSymptomLine(s session.Symptom) string {
	parts := []string{s.Name}
	if s.Severity != "" {
		parts = append(parts, s.Severity)
	}
	if s.Frequency != "" {
		parts = append(parts, s.Frequency)
	}
	if s.SinceWhen != "" {
		parts = append(parts, "since "+s.SinceWhen)
	}
	line := strings.Join(parts, " · ")
	if s.Notes != "" {
		line += dimStyle.Render(" (" + s.Notes + ")")
	}
	return line
}

func formatRouting(g *session.RoutingGuidance) string {
	var content strings.Builder

	content.WriteString("Who to see\n\n")
	if len(g.RecommendedDoctors) == 0 {
		content.WriteString("No specific recommendation.\n")
	}
	for _, d := range g.RecommendedDoctors {
		content.WriteString(fmt.Sprintf("  • %s — %s\n", d.Type, d.Reason))
	}

	if len(g.PossibleTestCategories) > 0 {
		content.WriteString("\nTests your doctor might consider\n\n")
		for _, tc := range g.PossibleTestCategories {
			content.WriteString(fmt.Sprintf("  • %s — %s\n", tc.Category, tc.Purpose))
		}
	}

	if g.UrgencyNote != "" {
		content.WriteString("\n" + g.UrgencyNote)
	}

	return content.String()
}

func renderEval(e *session.Evaluation) {
	label := fmt.Sprintf("Note completeness: %.1f/10", e.Score)
	if e.Score >= 7 {
		fmt.Println(okStyle.Render("✓ " + label))
	} else {
		fmt.Println(stepStyle.Render("△ " + label))
	}
	if len(e.MissingFields) > 0 {
		fmt.Println(dimStyle.Render("  Could be stronger with: " + strings.Join(e.MissingFields, ", ")))
	}
	if e.SuggestedImprovement != "" {
		fmt.Println(dimStyle.Render("  Tip: " + e.SuggestedImprovement))
	}
	fmt.Println()
}
