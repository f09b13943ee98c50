// Package pkgconfig reads application settings.
//
// Callers hold the Config interface. The Viper implementation resolves each
// key from the environment first, then the YAML file, then registered
// defaults.
package pkgconfig
