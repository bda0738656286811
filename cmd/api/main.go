package main

import (
	"log"
	"os"

	"AdoptionTutorial_API/internal/cli"
)

// @title						Galaxy API Adoption
// @version					1.0
// @description				Demo API used with the API Adoption collection to teach documentation, mocking, and publishing in Postman.
// @BasePath					/
// @securityDefinitions.apikey	ApiKeyAuth
// @in							header
// @name						api_key
// @securityDefinitions.apikey	AdminKeyAuth
// @in							header
// @name						admin_key
func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		log.Printf("main(): %v", err)
		os.Exit(1)
	}
}
