package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"github.com/randomtoy/namefortune-go/internal/adapters/fortuneapi"
	"github.com/randomtoy/namefortune-go/internal/tui"
)

func main() {
	// Optional; the environment still wins over .env.
	_ = godotenv.Load()

	baseURL := os.Getenv("FORTUNE_API_BASE_URL")
	if baseURL == "" {
		baseURL = fortuneapi.DefaultBaseURL
	}

	apiURL := flag.String("api", baseURL, "base URL of the fortune service")
	timeout := flag.Duration("timeout", 30*time.Second, "request timeout")
	flag.Parse()

	client := fortuneapi.NewClient(&http.Client{}, *apiURL)

	p := tea.NewProgram(tui.New(client, *timeout), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
