// Package handlers implements the execution logic behind the CLI
// commands: configuration loading, client construction, and invoking the
// lifecycle handler.
package handlers

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/jbx-labs/emr-stepcon/internal/binding"
	"github.com/jbx-labs/emr-stepcon/internal/config"
	"github.com/jbx-labs/emr-stepcon/internal/emr"
	"github.com/jbx-labs/emr-stepcon/internal/lifecycle"
	"github.com/jbx-labs/emr-stepcon/internal/logging"
)

// setup loads configuration and builds a lifecycle handler against the
// real cluster API.
func setup(ctx context.Context, configPath string, verbosity int) (*lifecycle.Handler, *config.Config, error) {
	if configPath == "" {
		configPath = config.DefaultPath
	}
	cfg, err := config.LoadFile(configPath)
	if err != nil {
		return nil, nil, err
	}

	log := logging.New(verbosity)
	client, err := emr.NewRealClientFromEnv(ctx, cfg.Region, cfg.Credentials, log.WithName("emr"))
	if err != nil {
		return nil, nil, err
	}

	h := lifecycle.New(client,
		lifecycle.WithLogger(log.WithName("lifecycle")),
		lifecycle.WithTimeouts(config.LoadTimeouts()),
	)
	return h, cfg, nil
}

// resolveCluster prefers the flag over the configured default.
func resolveCluster(flagValue string, cfg *config.Config) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if cfg.ClusterID != "" {
		return cfg.ClusterID, nil
	}
	return "", fmt.Errorf("no cluster id: pass --cluster-id or set cluster_id in the config file")
}

func printBinding(b *binding.Binding) error {
	out, err := yaml.Marshal(b)
	if err != nil {
		return fmt.Errorf("failed to marshal binding: %w", err)
	}
	fmt.Print(string(out))
	return nil
}

// Create raises the cluster's step concurrency level and claims it with a
// fresh binding. The level arrives as a string per the inbound contract
// and is parsed strictly before anything else happens.
func Create(ctx context.Context, configPath, clusterID, levelStr string, verbosity int) error {
	level, err := binding.ParseLevel(levelStr)
	if err != nil {
		return err
	}

	h, cfg, err := setup(ctx, configPath, verbosity)
	if err != nil {
		return err
	}
	target, err := resolveCluster(clusterID, cfg)
	if err != nil {
		return err
	}

	b, err := h.Create(ctx, target, level)
	if err != nil {
		return err
	}
	return printBinding(b)
}

// Read fetches the live state of an existing binding.
func Read(ctx context.Context, configPath, uid, clusterID string, verbosity int) error {
	h, cfg, err := setup(ctx, configPath, verbosity)
	if err != nil {
		return err
	}
	target, err := resolveCluster(clusterID, cfg)
	if err != nil {
		return err
	}

	b, err := h.Read(ctx, uid, target)
	if err != nil {
		return err
	}
	return printBinding(b)
}

// Update moves an existing binding to a new level.
func Update(ctx context.Context, configPath, uid, clusterID, levelStr string, verbosity int) error {
	level, err := binding.ParseLevel(levelStr)
	if err != nil {
		return err
	}

	h, cfg, err := setup(ctx, configPath, verbosity)
	if err != nil {
		return err
	}
	target, err := resolveCluster(clusterID, cfg)
	if err != nil {
		return err
	}

	b, err := h.Update(ctx, uid, target, level)
	if err != nil {
		return err
	}
	return printBinding(b)
}

// Delete tears a binding down, restoring the cluster's default level.
func Delete(ctx context.Context, configPath, uid, clusterID string, verbosity int) error {
	h, cfg, err := setup(ctx, configPath, verbosity)
	if err != nil {
		return err
	}
	target, err := resolveCluster(clusterID, cfg)
	if err != nil {
		return err
	}

	if err := h.Delete(ctx, uid, target); err != nil {
		return err
	}
	fmt.Printf("binding %s deleted\n", uid)
	return nil
}

// refsFile is the on-disk shape of the known-bindings list consumed by
// the list command.
type refsFile struct {
	Bindings []binding.Ref `yaml:"bindings"`
}

// List reads every known binding. One binding failing does not abort the
// rest; failures are reported per entry on stderr.
func List(ctx context.Context, configPath, refsPath string, verbosity int) error {
	h, _, err := setup(ctx, configPath, verbosity)
	if err != nil {
		return err
	}

	// #nosec G304
	data, err := os.ReadFile(refsPath)
	if err != nil {
		return fmt.Errorf("failed to read refs file: %w", err)
	}
	var refs refsFile
	if err := yaml.Unmarshal(data, &refs); err != nil {
		return fmt.Errorf("failed to parse refs file: %w", err)
	}

	failures := 0
	for b, err := range h.List(ctx, refs.Bindings) {
		if err != nil {
			failures++
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			continue
		}
		fmt.Printf("%s\t%s\tlevel=%d\n", b.UID, b.ClusterID, b.ObservedLevel)
	}
	if failures > 0 {
		fmt.Fprintf(os.Stderr, "%d of %d bindings could not be read\n", failures, len(refs.Bindings))
	}
	return nil
}
