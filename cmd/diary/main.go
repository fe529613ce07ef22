// Package main provides the diary CLI, a terminal client for the
// diary server.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/leondli/diary/internal/client"
	"github.com/leondli/diary/internal/client/store"
)

// Global flag values
var (
	flagAPIURL string
	flagJSON   bool
)

// apiClient and entryStore are initialized on startup and shared by
// all subcommands
var (
	apiClient  *client.Client
	entryStore *store.Store
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "diary",
	Short: "Diary is a personal journal client",
	Long: `Diary is a terminal client for a personal journal server.
It creates, lists, filters, edits and deletes journal entries backed
by the diary REST API.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		apiClient = client.New(resolveAPIURL())
		entryStore = store.NewStore()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagAPIURL, "api-url", "", "diary server base URL (default: $DIARY_API_URL or http://localhost:8080)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(tagsCmd)
}

// resolveAPIURL returns the server base URL with precedence:
// --api-url flag > DIARY_API_URL env > config client.api_url > default.
func resolveAPIURL() string {
	if flagAPIURL != "" {
		return flagAPIURL
	}

	v := viper.New()
	v.SetEnvPrefix("diary")
	v.AutomaticEnv()
	if url := v.GetString("api_url"); url != "" {
		return url
	}

	if configPath := os.Getenv("CONFIG_PATH"); configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err == nil {
			if url := v.GetString("client.api_url"); url != "" {
				return url
			}
		}
	}

	return "http://localhost:8080"
}
