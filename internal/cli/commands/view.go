package commands

import (
	"errors"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"pytui/internal/config"
	"pytui/internal/storage"
	"pytui/internal/ui"
)

// ViewCommand handles the view command
type ViewCommand struct {
	config  *config.Config
	storage storage.Storage
	viewer  *ui.Viewer
}

// NewViewCommand creates a new ViewCommand
func NewViewCommand(cfg *config.Config, st storage.Storage, viewer *ui.Viewer) *ViewCommand {
	return &ViewCommand{
		config:  cfg,
		storage: st,
		viewer:  viewer,
	}
}

// Execute runs the command
func (vc *ViewCommand) Execute(cmd *cobra.Command, args []string) error {
	record, err := vc.storage.Load()
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			color.Yellow("No run recorded yet - use 'pytui run' first")
			return nil
		}
		return err
	}

	return vc.viewer.View(record)
}
