package cmd

import (
	"fmt"
	"io"
	"os"
	"reflect"
	"strings"

	"github.com/go-owo/owo/cmd/owolayout/internal/config"
	"github.com/go-owo/owo/pkg/adapter"
	"github.com/go-owo/owo/pkg/containers"
	"github.com/go-owo/owo/pkg/core"
	"github.com/go-owo/owo/pkg/graphics"
	"github.com/go-owo/owo/pkg/layout"
	"github.com/go-owo/owo/pkg/parsing"
)

func init() {
	RegisterCommand(&Command{
		Name:  "tree",
		Short: "Print the arranged component tree",
		Long: `Load a markup document, lay it out in the configured viewport and print
every component with the rectangle it was arranged in.

With --render the tree is also drawn and the resulting draw calls are
printed in order.`,
		Usage: "owolayout tree [--size WxH] [--render] <file>",
		Run:   runTree,
	})
}

type treeOptions struct {
	file     string
	viewport config.ViewportConfig
	render   bool
}

func parseTreeArgs(cfg *config.Resolved, args []string) (treeOptions, error) {
	opts := treeOptions{viewport: cfg.Viewport}
	for i := 0; i < len(args); i++ {
		switch arg := args[i]; {
		case arg == "--render":
			opts.render = true
		case arg == "--size":
			if i+1 >= len(args) {
				return opts, fmt.Errorf("--size requires WIDTHxHEIGHT")
			}
			size, err := config.ParseSize(args[i+1])
			if err != nil {
				return opts, err
			}
			opts.viewport = size
			i++
		case strings.HasPrefix(arg, "--size="):
			size, err := config.ParseSize(strings.TrimPrefix(arg, "--size="))
			if err != nil {
				return opts, err
			}
			opts.viewport = size
		case strings.HasPrefix(arg, "-"):
			return opts, fmt.Errorf("unknown flag %q", arg)
		default:
			if opts.file != "" {
				return opts, fmt.Errorf("only one file may be given")
			}
			opts.file = arg
		}
	}
	if opts.file == "" {
		return opts, fmt.Errorf("a markup file is required\n\nUsage: owolayout tree [--size WxH] [--render] <file>")
	}
	return opts, nil
}

func runTree(cfg *config.Resolved, args []string) error {
	opts, err := parseTreeArgs(cfg, args)
	if err != nil {
		return err
	}
	a, err := layoutFile(opts.file, opts.viewport)
	if err != nil {
		return err
	}
	defer a.Dispose()

	fmt.Println(titleStyle.Render(fmt.Sprintf("%s @ %dx%d", opts.file, opts.viewport.Width, opts.viewport.Height)))
	printTree(os.Stdout, a.Root().Children()[0], "", true)

	if opts.render {
		fmt.Println()
		canvas := &printCanvas{w: os.Stdout}
		a.Render(graphics.NewDrawContext(canvas), -1, -1, 0, 0)
	}
	return nil
}

// layoutFile expands the document and lays it out inside a stack root
// covering the viewport.
func layoutFile(path string, viewport config.ViewportConfig) (*adapter.Adapter[*containers.StackLayout], error) {
	model, err := parsing.LoadFile(path)
	if err != nil {
		return nil, err
	}
	content, err := model.Expand()
	if err != nil {
		return nil, err
	}
	return adapter.Create(0, 0, viewport.Width, viewport.Height, func(h, v layout.Sizing) *containers.StackLayout {
		root := containers.NewStackLayout(h, v)
		root.AddChild(content)
		return root
	})
}

func printTree(w io.Writer, c core.Component, prefix string, last bool) {
	branch, indent := "├─ ", "│  "
	if last {
		branch, indent = "└─ ", "   "
	}
	line := typeStyle.Render(typeName(c))
	if id := c.ID(); id != "" {
		line += " " + idStyle.Render("#"+id)
	}
	b := c.Bounds()
	line += " " + rectStyle.Render(fmt.Sprintf("(%d, %d) %dx%d", b.X, b.Y, b.Width, b.Height))
	fmt.Fprintln(w, guideStyle.Render(prefix+branch)+line)

	parent, ok := c.(core.ParentComponent)
	if !ok {
		return
	}
	children := parent.Children()
	for i, child := range children {
		printTree(w, child, prefix+indent, i == len(children)-1)
	}
}

func typeName(c core.Component) string {
	t := reflect.TypeOf(c)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}
