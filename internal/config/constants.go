package config

const (
	// DefaultSiteURL is the public origin of the static site.
	DefaultSiteURL = "https://1129kyoto.jp"

	// DefaultImagesDir holds the source images uploaded by the migration.
	DefaultImagesDir = "./images"

	// DefaultEnvFile is loaded before reading the environment, if present.
	DefaultEnvFile = ".env"
)
