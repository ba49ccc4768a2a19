// seed fills the database with generated grocery purchases for a handful of
// demo users and prints an access token for each of them.
//
// Usage:
//
//	go run ./cmd/seed -users 3 -months 9 -seed 42
//
// Tokens are only accepted by a server that shares JWT_PRIVATE_KEY and
// JWT_PUBLIC_KEY with this process.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"frugalfolio/internal/config"
	"frugalfolio/internal/database"
	"frugalfolio/internal/models"
	"frugalfolio/internal/services"

	"github.com/joho/godotenv"
)

func main() {
	users := flag.Int("users", 3, "number of regular users to create")
	months := flag.Int("months", 9, "months of purchase history per user")
	seed := flag.Uint64("seed", 0, "generator seed, 0 picks a random one")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	if *users < 1 || *months < 1 {
		log.Fatal("-users and -months must be positive")
	}

	cfg := config.Load()
	if os.Getenv("JWT_PRIVATE_KEY") == "" {
		log.Println("Warning: JWT keys are ephemeral, printed tokens will not work against a running server")
	}

	db, err := database.Initialize(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	generator := services.NewPurchaseGenerator(*seed)
	tokens := services.NewTokenService(&cfg.JWT)

	to := models.DateOf(time.Now())
	from := to.AddMonths(-*months)

	admin, err := db.SeedUser("admin", models.RoleAdmin)
	if err != nil {
		log.Fatalf("Failed to seed admin: %v", err)
	}
	printToken(tokens, admin, 0)

	for i := 1; i <= *users; i++ {
		user, err := db.SeedUser(fmt.Sprintf("shopper%02d", i), models.RoleUser)
		if err != nil {
			log.Fatalf("Failed to seed user: %v", err)
		}

		purchases, err := generator.Generate(user.ID, from, to)
		if err != nil {
			log.Fatalf("Failed to generate purchases for %s: %v", user.Username, err)
		}
		if err := db.InsertPurchases(purchases); err != nil {
			log.Fatalf("Failed to insert purchases for %s: %v", user.Username, err)
		}
		printToken(tokens, user, len(purchases))
	}
}

func printToken(tokens services.TokenServiceInterface, user *models.User, purchases int) {
	token, expiresAt, err := tokens.GenerateAccessToken(user)
	if err != nil {
		log.Fatalf("Failed to generate token for %s: %v", user.Username, err)
	}
	fmt.Printf("%-12s role=%-5s id=%s purchases=%d expires=%s\n  %s\n",
		user.Username, user.Role, user.ID, purchases, expiresAt.Format(time.RFC3339), token)
}
