package main

import (
	"exusiai.dev/roadmap-tracker/cmd/app"
)

func main() {
	app.Run()
}
