// Command crosslight runs a two-direction traffic signal controller and
// inspects the traces it records.
package main

import (
	"github.com/joho/godotenv"
)

func init() {
	// Load CROSSLIGHT_* defaults from a .env file, if one is present.
	_ = godotenv.Load()
}

func main() {
	Execute()
}
