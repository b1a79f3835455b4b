package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/shopspring/decimal"

	"gmumarket/internal/adapter/repository"
	"gmumarket/internal/domain/entity"
	domainrepo "gmumarket/internal/domain/repository"
	"gmumarket/internal/infrastructure/rest"
	"gmumarket/internal/usecase"
	"gmumarket/pkg/config"
	"gmumarket/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger.Init(cfg.Environment)

	sessionRepo, err := repository.NewSQLiteSessionRepository(cfg.SessionDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open session store: %v\n", err)
		os.Exit(1)
	}

	client := rest.NewClient(cfg.APIBaseURL, sessionRepo, nil)
	productRepo := repository.NewRESTProductRepository(client)
	userRepo := repository.NewRESTUserRepository(client, sessionRepo)

	authUC := usecase.NewAuthUseCase(userRepo, sessionRepo)
	dashboardUC := usecase.NewDashboardUseCase(productRepo, userRepo, sessionRepo, stdinConfirmer())

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	ctx := context.Background()
	if err := run(ctx, os.Args[1], os.Args[2:], authUC, dashboardUC); err != nil {
		// Every failure is surfaced to the user; nothing is retried.
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, command string, args []string, authUC *usecase.AuthUseCase, dashboardUC *usecase.DashboardUseCase) error {
	switch command {
	case "login":
		fs := flag.NewFlagSet("login", flag.ExitOnError)
		username := fs.String("username", "", "account username")
		password := fs.String("password", "", "account password")
		fs.Parse(args)

		if _, err := authUC.Login(ctx, *username, *password); err != nil {
			return err
		}
		fmt.Println("logged in")
		return nil

	case "logout":
		if err := authUC.Logout(ctx); err != nil {
			return err
		}
		fmt.Println("logged out")
		return nil

	case "register":
		fs := flag.NewFlagSet("register", flag.ExitOnError)
		username := fs.String("username", "", "account username")
		email := fs.String("email", "", "account email")
		password := fs.String("password", "", "account password")
		fullName := fs.String("full-name", "", "display name")
		fs.Parse(args)

		user, err := authUC.Register(ctx, usecase.RegisterInput{
			Username: *username,
			Email:    *email,
			Password: *password,
			FullName: *fullName,
		})
		if err != nil {
			return err
		}
		fmt.Printf("registered %s (id %s)\n", user.Username, user.ID)
		return nil

	case "list", "mine":
		if err := dashboardUC.Load(ctx); err != nil {
			return err
		}
		printDashboard(dashboardUC)
		return nil

	case "create":
		fs := flag.NewFlagSet("create", flag.ExitOnError)
		name := fs.String("name", "", "listing name")
		description := fs.String("description", "", "listing description")
		price := fs.String("price", "0", "price, e.g. 19.99")
		category := fs.String("category", "", "category")
		condition := fs.String("condition", "", "condition")
		status := fs.String("status", "active", "listing status")
		image := fs.String("image", "", "image URL")
		fs.Parse(args)

		parsed, err := decimal.NewFromString(*price)
		if err != nil {
			return fmt.Errorf("invalid price %q: %w", *price, err)
		}

		if err := dashboardUC.Load(ctx); err != nil {
			return err
		}
		created, err := dashboardUC.Create(ctx, usecase.CreateProductInput{
			Name:        *name,
			Description: *description,
			Price:       parsed,
			Category:    *category,
			Condition:   *condition,
			Status:      *status,
			Image:       *image,
		})
		if err != nil {
			return err
		}
		fmt.Printf("created %s (id %s) at %s\n", created.Name, created.ID, created.DisplayPrice())
		return nil

	case "update":
		fs := flag.NewFlagSet("update", flag.ExitOnError)
		id := fs.String("id", "", "listing id")
		name := fs.String("name", "", "new name")
		description := fs.String("description", "", "new description")
		price := fs.String("price", "", "new price")
		status := fs.String("status", "", "new status")
		fs.Parse(args)

		patch := domainrepo.ProductUpdate{}
		if *name != "" {
			patch.Name = name
		}
		if *description != "" {
			patch.Description = description
		}
		if *price != "" {
			parsed, err := decimal.NewFromString(*price)
			if err != nil {
				return fmt.Errorf("invalid price %q: %w", *price, err)
			}
			patch.Price = &parsed
		}
		if *status != "" {
			patch.Status = status
		}

		if err := dashboardUC.Load(ctx); err != nil {
			return err
		}
		updated, err := dashboardUC.Update(ctx, *id, patch)
		if err != nil {
			return err
		}
		fmt.Printf("updated %s (id %s)\n", updated.Name, updated.ID)
		return nil

	case "delete":
		fs := flag.NewFlagSet("delete", flag.ExitOnError)
		id := fs.String("id", "", "listing id")
		fs.Parse(args)

		deleted, err := dashboardUC.Delete(ctx, *id)
		if err != nil {
			return err
		}
		if !deleted {
			fmt.Println("delete cancelled")
			return nil
		}
		fmt.Println("deleted")
		return nil

	case "view":
		fs := flag.NewFlagSet("view", flag.ExitOnError)
		id := fs.String("id", "", "listing id")
		fs.Parse(args)

		dashboardUC.RecordView(ctx, *id)
		return nil

	case "profile":
		profile, err := authUC.Profile(ctx)
		if err != nil {
			return err
		}
		printProfile(profile)
		return nil

	case "set-profile":
		fs := flag.NewFlagSet("set-profile", flag.ExitOnError)
		fullName := fs.String("full-name", "", "display name")
		email := fs.String("email", "", "email address")
		bio := fs.String("bio", "", "bio")
		location := fs.String("location", "", "location")
		phone := fs.String("phone", "", "phone number")
		fs.Parse(args)

		patch := domainrepo.ProfileUpdate{}
		if *fullName != "" {
			patch.FullName = fullName
		}
		if *email != "" {
			patch.Email = email
		}
		if *bio != "" {
			patch.Bio = bio
		}
		if *location != "" {
			patch.Location = location
		}
		if *phone != "" {
			patch.Phone = phone
		}

		profile, err := authUC.UpdateProfile(ctx, patch)
		if err != nil {
			return err
		}
		printProfile(profile)
		return nil

	default:
		usage()
		return fmt.Errorf("unknown command %q", command)
	}
}

func printDashboard(dashboardUC *usecase.DashboardUseCase) {
	if profile := dashboardUC.Profile(); profile != nil {
		fmt.Printf("Seller: %s (%d active listings, %d sales)\n\n", profile.Username, profile.ActiveListings, profile.TotalSales)
	}
	for _, product := range dashboardUC.Products() {
		fmt.Printf("%-36s  %-10s  %-24s  %s\n", product.ID, product.Status, product.Name, product.DisplayPrice())
	}
}

func printProfile(profile *entity.User) {
	fmt.Printf("Username: %s\n", profile.Username)
	fmt.Printf("Name:     %s\n", profile.FullName)
	fmt.Printf("Email:    %s\n", profile.Email)
	if profile.Bio != "" {
		fmt.Printf("Bio:      %s\n", profile.Bio)
	}
	if profile.Location != "" {
		fmt.Printf("Location: %s\n", profile.Location)
	}
	if profile.SellerRating != nil {
		fmt.Printf("Rating:   %s\n", profile.SellerRating.StringFixed(1))
	} else {
		fmt.Println("Rating:   no rating yet")
	}
}

func stdinConfirmer() usecase.Confirmer {
	return usecase.ConfirmerFunc(func(prompt string) bool {
		fmt.Printf("%s [y/N]: ", prompt)
		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil {
			return false
		}
		answer := strings.ToLower(strings.TrimSpace(line))
		return answer == "y" || answer == "yes"
	})
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: dashboard <command> [flags]

commands:
  login        -username -password
  logout
  register     -username -email -password [-full-name]
  list         show the dashboard (own listings when logged in)
  create       -name -price -category -condition [-description -status -image]
  update       -id [-name -description -price -status]
  delete       -id
  view         -id
  profile
  set-profile  [-full-name -email -bio -location -phone]`)
}
