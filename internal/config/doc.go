// Package config defines the immutable run configuration for dailyread.
// A Config is assembled once from flags, the config file and the environment
// and then handed to every component by value.
package config
