package main

import "healthreach_backend/internal/app"

func main() {
	app.Run()
}
