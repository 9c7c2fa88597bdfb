// Package config manages user-level settings stored at ~/.schematic/config.yaml.
// It provides functions to load, read, and write configuration keys such as
// the plugins_dir override used by the create, list, and doctor commands.
package config
