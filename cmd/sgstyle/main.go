package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"sgstyle/internal/version"

	_ "sgstyle/internal/lint/rules"
)

var rootCmd = &cobra.Command{
	Use:   "sgstyle",
	Short: "Formatter and style linter for surge sources",
	Long:  `sgstyle formats surge source files and reports style findings`,
}

func main() {
	// Версия для автоматического флага --version
	rootCmd.Version = version.Version

	rootCmd.AddCommand(lintCmd)
	rootCmd.AddCommand(fmtCmd)
	rootCmd.AddCommand(fixCmd)
	rootCmd.AddCommand(rulesCmd)
	rootCmd.AddCommand(versionCmd)

	// Глобальные флаги
	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().Bool("timings", false, "show timing information")
	rootCmd.PersistentFlags().Int("max-findings", 256, "maximum number of findings to keep per file")
	rootCmd.PersistentFlags().String("config", "", "path to sgstyle.toml (default: discovered upward from the target)")
	rootCmd.PersistentFlags().String("cpu-profile", "", "write a CPU profile to the given file")
	rootCmd.PersistentFlags().String("mem-profile", "", "write a heap profile to the given file on exit")
	rootCmd.PersistentFlags().String("runtime-trace", "", "write a runtime execution trace to the given file")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
