package handlers

import (
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"

	"github.com/jbx-labs/emr-stepcon/internal/config"
)

// commonRegions are the choices offered by the wizard; any region can
// still be set by editing the file afterwards.
var commonRegions = []string{
	"us-east-1",
	"us-east-2",
	"us-west-2",
	"eu-west-1",
	"eu-central-1",
	"ap-southeast-1",
	"ap-northeast-1",
}

// Init interactively writes a configuration file.
func Init(outputPath string) error {
	if !isatty.IsTerminal(os.Stdin.Fd()) && !isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		return fmt.Errorf("init requires an interactive terminal; write %s by hand instead", config.DefaultPath)
	}

	cfg := &config.Config{Region: "us-east-1"}

	regionOpts := make([]huh.Option[string], 0, len(commonRegions))
	for _, r := range commonRegions {
		regionOpts = append(regionOpts, huh.NewOption(r, r))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("AWS region").
				Description("Region hosting your EMR clusters").
				Options(regionOpts...).
				Value(&cfg.Region),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Default cluster id (optional)").
				Description("Lets you omit --cluster-id on every command. Leave empty to skip.").
				Placeholder("j-1K48XXXXXXHCB").
				Value(&cfg.ClusterID),
		),
	)
	if err := form.Run(); err != nil {
		return fmt.Errorf("wizard aborted: %w", err)
	}

	if err := config.WriteFile(outputPath, cfg); err != nil {
		return err
	}
	fmt.Printf("Wrote %s\n", outputPath)
	return nil
}
