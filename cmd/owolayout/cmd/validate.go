package cmd

import (
	"fmt"

	"github.com/go-owo/owo/cmd/owolayout/internal/config"
)

func init() {
	RegisterCommand(&Command{
		Name:  "validate",
		Short: "Check that markup documents build",
		Long: `Load, expand and lay out each document, reporting the first error of
every file. Exits non-zero when any file fails.`,
		Usage: "owolayout validate <file>...",
		Run:   runValidate,
	})
}

func runValidate(cfg *config.Resolved, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("at least one file is required\n\nUsage: owolayout validate <file>...")
	}
	failed := 0
	for _, file := range args {
		a, err := layoutFile(file, cfg.Viewport)
		if err != nil {
			failed++
			fmt.Printf("%s %s\n    %v\n", failStyle.Render("FAIL"), file, err)
			continue
		}
		a.Dispose()
		fmt.Printf("%s   %s\n", okStyle.Render("ok"), file)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(args))
	}
	return nil
}
