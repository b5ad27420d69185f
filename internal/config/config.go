// Package config loads the emr-stepcon configuration file and the
// environment-driven timeout budgets.
package config

import (
	"fmt"
)

// Config is the persistent configuration for the CLI.
type Config struct {
	// Region is the AWS region hosting the target clusters.
	Region string `mapstructure:"region" yaml:"region"`

	// ClusterID optionally pins a default target cluster so commands can
	// omit --cluster-id.
	ClusterID string `mapstructure:"cluster_id" yaml:"cluster_id,omitempty"`

	// Credentials optionally carries static AWS credentials
	// (accessKeyId, secretAccessKey, sessionToken). When empty the
	// default credential chain is used.
	Credentials map[string]string `mapstructure:"credentials" yaml:"credentials,omitempty"`
}

// Validate checks the loaded configuration for usability.
func (c *Config) Validate() error {
	if c.Region == "" {
		return fmt.Errorf("region must be set")
	}
	if len(c.Credentials) > 0 {
		if c.Credentials["accessKeyId"] == "" || c.Credentials["secretAccessKey"] == "" {
			return fmt.Errorf("credentials must include accessKeyId and secretAccessKey")
		}
	}
	return nil
}
