package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/go-drift/decl/pkg/engine"
	"github.com/go-drift/decl/pkg/loader"
	"github.com/go-drift/decl/pkg/node"
)

var (
	kindStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#89b4fa"))
	idStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#a6e3a1"))
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#f9e2af"))
	capsStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#7f849c"))
	droppedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#f38ba8"))
)

func init() {
	RegisterCommand(&Command{
		Name:  "tree",
		Short: "Print a description tree with capabilities",
		Long: `Print the widget tree of a description file. Each widget is shown with
its id, label and the capability set of its kind, which decides the
attributes that are applied. Widgets of unknown kinds are marked; they and
their subtrees are dropped when the tree is built.`,
		Usage: "decl tree <file>",
		Run:   runTree,
	})
}

func runTree(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("tree requires a description file")
	}
	root, err := loader.Auto().Load(args[0])
	if err != nil {
		return err
	}
	return printTree(os.Stdout, root, engine.DefaultRegistry())
}

func printTree(w io.Writer, root *node.Node, reg *engine.Registry) error {
	var b strings.Builder
	dropped := 0
	root.Walk(func(n *node.Node, depth int) bool {
		b.WriteString(strings.Repeat("  ", depth))
		b.WriteString(kindStyle.Render(n.Kind))
		if n.ID != nil {
			b.WriteString(" " + idStyle.Render("#"+*n.ID))
		}
		if n.Label != nil {
			b.WriteString(" " + labelStyle.Render(fmt.Sprintf("%q", *n.Label)))
		}
		caps, ok := reg.Caps(n.Kind)
		if !ok {
			b.WriteString(" " + droppedStyle.Render(fmt.Sprintf("unknown kind, %d widget(s) dropped", n.Count())))
			b.WriteByte('\n')
			dropped += n.Count()
			return false
		}
		b.WriteString(" " + capsStyle.Render("["+caps.String()+"]"))
		b.WriteByte('\n')
		return true
	})
	fmt.Fprintf(&b, "%d widgets", root.Count()-dropped)
	if dropped > 0 {
		b.WriteString(", " + droppedStyle.Render(fmt.Sprintf("%d dropped", dropped)))
	}
	b.WriteByte('\n')
	_, err := io.WriteString(w, b.String())
	return err
}
