// Package cli builds the dailyread root command. Flags are bound to viper so
// the same keys can come from the command line, DAILYREAD_* environment
// variables or .dailyread.yaml, and BuildConfig turns the result into a
// config.Config.
package cli
