// Package app wires the cluster client and the browser model into a running
// Bubble Tea program.
package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ktreeapp/ktree/internal/kube"
	"github.com/ktreeapp/ktree/internal/logging/events"
	"github.com/ktreeapp/ktree/internal/ui"
)

// Config describes user-provided application options.
type Config struct {
	Kubeconfig string
	Context    string
	Namespace  string
	Kind       string
	Width      int
	Height     int
}

const connectTimeout = 10 * time.Second

// Run bootstraps and executes the Bubble Tea program. A cluster that cannot
// be reached at startup is the one fatal condition; everything after that
// surfaces inside the UI.
func Run(cfg Config) error {
	client, err := kube.New(kube.Options{Kubeconfig: cfg.Kubeconfig, Context: cfg.Context})
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()
	if err := client.Ping(ctx); err != nil {
		return fmt.Errorf("cluster unreachable: %w", err)
	}
	events.App.ConnectionReady(client.CurrentContext())

	model := ui.NewModel(client, ui.Options{
		KubeContext:    client.CurrentContext(),
		Width:          cfg.Width,
		Height:         cfg.Height,
		StartNamespace: cfg.Namespace,
		StartKind:      cfg.Kind,
	})
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
