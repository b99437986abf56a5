package cmd

import (
	"fmt"

	"github.com/go-owo/owo/cmd/owolayout/internal/config"
	"github.com/go-owo/owo/pkg/components"
	"github.com/go-owo/owo/pkg/parsing"
)

func init() {
	RegisterCommand(&Command{
		Name:  "types",
		Short: "List markup elements and entity types",
		Long: `List the element names the markup parser knows and the entity types
the demo host offers to entity previews.`,
		Usage: "owolayout types",
		Run:   runTypes,
	})
}

func runTypes(cfg *config.Resolved, args []string) error {
	fmt.Println(titleStyle.Render("elements"))
	for _, name := range parsing.DefaultRegistry().Names() {
		fmt.Println("  " + typeStyle.Render(name))
	}
	fmt.Println()
	fmt.Println(titleStyle.Render("entity types"))
	if types := components.CurrentHost().EntityTypes; types != nil {
		for _, id := range types.IDs() {
			fmt.Println("  " + idStyle.Render(id.String()))
		}
	}
	return nil
}
