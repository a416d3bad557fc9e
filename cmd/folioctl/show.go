package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/opsfolio/internal/content"
	"github.com/opsfolio/internal/markup"
	"github.com/opsfolio/internal/service"
	"github.com/spf13/cobra"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("86")).
			Background(lipgloss.Color("235")).
			Padding(0, 1)

	headingStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("214"))

	codeStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	languageStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("33"))

	metaStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true)

	noDataStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true)
)

func newShowCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "show <slug>",
		Short: "Render a post body in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := opts.loadRepository(cmd.Context())
			if err != nil {
				return err
			}
			post, ok := repo.Get(args[0])
			if !ok {
				return fmt.Errorf("%w: %s", service.ErrPostNotFound, args[0])
			}
			fmt.Fprint(cmd.OutOrStdout(), renderPost(post))
			return nil
		},
	}
}

func renderPost(post content.Post) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(post.Title))
	b.WriteString("\n")

	meta := []string{post.Category, post.Date, post.ReadTime, post.Views, post.Author}
	b.WriteString(metaStyle.Render(strings.Join(nonEmpty(meta), " · ")))
	b.WriteString("\n\n")

	for _, node := range markup.Group(markup.Render(post.Content)) {
		b.WriteString(renderNode(node))
		b.WriteString("\n")
	}
	return b.String()
}

func renderNode(node markup.Node) string {
	if node.List != nil {
		lines := make([]string, 0, len(node.List.Items))
		for i, item := range node.List.Items {
			marker := "•"
			if node.List.Ordered {
				marker = fmt.Sprintf("%d.", i+1)
			}
			lines = append(lines, "  "+marker+" "+item)
		}
		return strings.Join(lines, "\n")
	}

	block := node.Block
	switch block.Kind {
	case markup.KindHeading:
		return headingStyle.Render(strings.Repeat("#", block.Level) + " " + block.Text)
	case markup.KindCode:
		label := languageStyle.Render(block.LanguageOr("text"))
		return label + "\n" + codeStyle.Render(strings.TrimSuffix(block.Text, "\n"))
	case markup.KindBlank:
		return ""
	default:
		return block.Text
	}
}

func nonEmpty(values []string) []string {
	out := values[:0:0]
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			out = append(out, v)
		}
	}
	return out
}
