package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/anbessa/iam-backend/internal/di"
)

type options struct {
	envFile string
	ci      bool
}

type ciResult struct {
	OK      bool     `json:"ok"`
	Title   string   `json:"title"`
	Details []string `json:"details,omitempty"`
	Error   string   `json:"error,omitempty"`
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		log.Fatal(err)
	}
}

func newRootCommand() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "iamctl",
		Short: "Operational tooling for the IAM backend",
	}
	cmd.PersistentFlags().StringVar(&opts.envFile, "env-file", ".env", "path to env file")
	cmd.PersistentFlags().BoolVar(&opts.ci, "ci", false, "non-interactive machine-readable output")
	cmd.AddCommand(newMigrateCommand(opts), newSeedCommand(opts), newStatusCommand(opts))
	return cmd
}

func newMigrateCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply schema migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return report(opts, "migrate", func() ([]string, error) {
				runner, err := newRunner(opts.envFile)
				if err != nil {
					return nil, err
				}
				defer runner.Close()
				if err := runner.Migrate(); err != nil {
					return nil, err
				}
				return []string{"schema migration applied"}, nil
			})
		},
	}
}

func newSeedCommand(opts *options) *cobra.Command {
	var adminUsername, adminPassword string
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Seed user types, permissions, and the administrator role",
		RunE: func(cmd *cobra.Command, args []string) error {
			return report(opts, "seed", func() ([]string, error) {
				runner, err := newRunner(opts.envFile)
				if err != nil {
					return nil, err
				}
				defer runner.Close()
				rep, err := runner.Seed(adminUsername, adminPassword)
				if err != nil {
					return nil, err
				}
				details := []string{
					fmt.Sprintf("user types created: %d", rep.CreatedUserTypes),
					fmt.Sprintf("permissions created: %d", rep.CreatedPermissions),
					fmt.Sprintf("roles created: %d", rep.CreatedRoles),
					fmt.Sprintf("permissions bound: %d", rep.BoundPermissions),
				}
				if rep.CreatedAdmin {
					details = append(details, "bootstrap admin created")
				}
				if rep.Noop {
					details = append(details, "catalog already up to date")
				}
				return details, nil
			})
		},
	}
	cmd.Flags().StringVar(&adminUsername, "admin-username", "", "override bootstrap admin username")
	cmd.Flags().StringVar(&adminPassword, "admin-password", "", "override bootstrap admin password")
	return cmd
}

func newStatusCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Check database connectivity",
		RunE: func(cmd *cobra.Command, args []string) error {
			return report(opts, "status", func() ([]string, error) {
				runner, err := newRunner(opts.envFile)
				if err != nil {
					return nil, err
				}
				defer runner.Close()
				if err := runner.Ping(); err != nil {
					return nil, fmt.Errorf("db ping: %w", err)
				}
				return []string{
					"database reachable",
					"service: " + runner.Config.OTELServiceName,
				}, nil
			})
		},
	}
}

func newRunner(envFile string) (*di.MigrationRunner, error) {
	if err := loadEnvFile(envFile); err != nil {
		return nil, err
	}
	return di.InitializeMigrationRunner()
}

func report(opts *options, title string, fn func() ([]string, error)) error {
	details, err := fn()
	if opts.ci {
		result := ciResult{OK: err == nil, Title: title, Details: details}
		if err != nil {
			result.Error = err.Error()
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(result)
		if err != nil {
			os.Exit(3)
		}
		return nil
	}
	if err != nil {
		return err
	}
	for _, d := range details {
		fmt.Println(d)
	}
	return nil
}

// loadEnvFile loads KEY=VALUE pairs, never overriding variables already set
// in the environment.
func loadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("open env file: %w", err)
	}
	defer f.Close()

	s := bufio.NewScanner(f)
	for s.Scan() {
		line := strings.TrimSpace(s.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, found := strings.Cut(line, "=")
		if !found {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.Trim(strings.TrimSpace(value), "\"")
		if _, exists := os.LookupEnv(key); !exists {
			_ = os.Setenv(key, value)
		}
	}
	return s.Err()
}
