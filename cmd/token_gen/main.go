package main

import (
	"flag"
	"fmt"
	"log"

	"pairplay/internal/service"
)

// Prints a dev JWT for the given user id. Needs JWT_SECRET in the env.
func main() {
	userID := flag.Int64("user", 0, "user id to mint a token for")
	flag.Parse()

	if *userID == 0 {
		log.Fatal("-user is required")
	}

	service.InitJWT()
	token, err := service.GenerateJWT(*userID)
	if err != nil {
		log.Fatalf("generate token: %v", err)
	}

	fmt.Println(token)
}
