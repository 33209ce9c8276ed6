package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/taskdesk/core/cmd/api/commands"
)

// @title TaskDesk API
// @version 1.0
// @description Multi-user task tracking with boss and clerk roles

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	rootCmd := &cobra.Command{
		Use:   "taskdesk",
		Short: "TaskDesk API Server",
		Long:  `TaskDesk is a multi-user task tracking service. Users see tasks grouped by due date; a boss account manages the other accounts.`,
	}

	// Add commands
	rootCmd.AddCommand(commands.NewServeCommand())
	rootCmd.AddCommand(commands.NewMigrateCommand())
	rootCmd.AddCommand(commands.NewUserCommand())

	// Execute root command
	if err := rootCmd.Execute(); err != nil {
		log.Printf("Command execution failed: %v", err)
		os.Exit(1)
	}
}
