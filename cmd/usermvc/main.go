package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/toyz/usermvc/internal/app"
	"github.com/toyz/usermvc/internal/config"
	"go.uber.org/fx"
)

func main() {
	adapter := flag.String("adapter", "", "Web server adapter to use (echo, gin, or fiber); overrides HTTP_ADAPTER")
	port := flag.Int("port", 0, "Port to run the server on; overrides HTTP_PORT")
	envFile := flag.String("env", ".env", "Optional .env file to load")
	flag.Parse()

	cfg, err := config.LoadConfig(*envFile)
	if err != nil {
		color.Red("❌ %v", err)
		os.Exit(1)
	}
	if *adapter != "" {
		cfg.HTTP.Adapter = *adapter
	}
	if *port != 0 {
		cfg.HTTP.Port = *port
	}
	if err := cfg.Validate(); err != nil {
		color.Red("❌ %v", err)
		os.Exit(1)
	}

	printBanner(cfg)

	fx.New(
		fx.Supply(cfg),
		fx.StopTimeout(cfg.HTTP.ShutdownTimeout),
		app.Module,
	).Run()
}

func printBanner(cfg *config.Config) {
	title := color.New(color.FgCyan, color.Bold)
	title.Println("👥 usermvc")
	fmt.Printf("   adapter: %s\n", color.GreenString(cfg.HTTP.Adapter))
	fmt.Printf("   listen:  %s\n", color.GreenString(cfg.HTTP.Addr()))
	if cfg.SeedDemoUsers {
		fmt.Printf("   seed:    %s\n", color.YellowString("demo users"))
	}
}
