// Command loadtest нагружает сервис конкурирующими записями одних и тех же
// пользователей и проверяет согласованность счётчиков после атаки.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "loadtest",
	Short: "Concurrent contribution and project status load against the tracker API",
	Long: `Seeds projects for a small pool of users, attacks the API with concurrent
contributions, status changes and reads for the same users, then checks that every
user's project counters still add up.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		host, _ := cmd.Flags().GetString("target")
		rate, _ := cmd.Flags().GetInt("rate")
		duration, _ := cmd.Flags().GetDuration("duration")
		users, _ := cmd.Flags().GetInt("users")
		projects, _ := cmd.Flags().GetInt("projects")
		adminID, _ := cmd.Flags().GetString("admin")

		s := newScenario(host, adminID, users, projects, time.Now().UnixNano())
		if err := s.seed(); err != nil {
			return fmt.Errorf("seed failed: %w", err)
		}

		report := s.attack(rate, duration)
		report.print(cmd.OutOrStdout())

		violations, err := s.verify()
		if err != nil {
			return fmt.Errorf("verification failed: %w", err)
		}
		for _, v := range violations {
			fmt.Fprintln(cmd.OutOrStdout(), "VIOLATION:", v)
		}
		if len(violations) > 0 {
			return fmt.Errorf("%d users have inconsistent counters", len(violations))
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Counters consistent for all users")
		return nil
	},
}

func init() {
	rootCmd.Flags().StringP("target", "t", "http://localhost:8080", "Base URL of the running service")
	rootCmd.Flags().IntP("rate", "r", 50, "Requests per second")
	rootCmd.Flags().DurationP("duration", "d", 30*time.Second, "Attack duration")
	rootCmd.Flags().IntP("users", "u", 5, "Size of the user pool; small pools maximise write contention")
	rootCmd.Flags().IntP("projects", "p", 4, "Projects seeded per user")
	rootCmd.Flags().String("admin", "loadtest-admin", "User id sent with the admin role")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
