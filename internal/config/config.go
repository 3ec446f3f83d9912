package config

import (
	"os"
	"strconv"
)

type Config struct {
	Port          string
	GitHubToken   string
	GitHubAPIURL  string
	OpenAIAPIKey  string
	OpenAIAPIURL  string
	OpenAIModel   string
	DefaultWindow int
}

func Load() (*Config, error) {
	port := getEnv("PORT", "8080")
	githubToken := getEnv("GITHUB_TOKEN", "")
	githubAPIURL := getEnv("GITHUB_API_URL", "https://api.github.com")
	openAIKey := getEnv("OPENAI_API_KEY", "")
	openAIURL := getEnv("OPENAI_API_URL", "https://api.openai.com/v1/chat/completions")
	openAIModel := getEnv("OPENAI_MODEL", "gpt-3.5-turbo")

	defaultWindow, err := strconv.Atoi(getEnv("DEFAULT_WINDOW_DAYS", "7"))
	if err != nil {
		return nil, err
	}

	return &Config{
		Port:          port,
		GitHubToken:   githubToken,
		GitHubAPIURL:  githubAPIURL,
		OpenAIAPIKey:  openAIKey,
		OpenAIAPIURL:  openAIURL,
		OpenAIModel:   openAIModel,
		DefaultWindow: defaultWindow,
	}, nil
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
