package instance

import "os"

// GetID returns the importer instance identifier or a default value.
func GetID() string {
	if id := os.Getenv("IMPORTER_ID"); id != "" {
		return id
	}
	return "importer-0"
}
