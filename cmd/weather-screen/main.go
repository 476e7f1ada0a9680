package main

import (
	"os"

	"weather-screen/internal/cli"
)

// @title Weather Screen API
// @version 1.0.0
// @description Location search and forecast lookup behind the weather screen.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

// @tag.name Locations
// @tag.description City-name search
// @tag.name Weather
// @tag.description Weather forecast operations
func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
