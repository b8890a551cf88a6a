package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const defaultConfig = `version: 1
content_dir: content

site:
  addr: "127.0.0.1:8080"
  cors_origins: []
  request_timeout_seconds: 30

results:
  driver: ""
  dsn: ""

log:
  level: info
  format: text
`

const samplePage = `version: 1
slug: getting-started
title: Getting Started
category: general
summary: A short page showing how checks and quizzes are written.
sections:
  - id: basics
    title: The basics
    body:
      - "Each page is made of sections. A section may end with an inline check."
    checks:
      - id: basics-check
        question: "What does an inline check do?"
        options:
          - "Stores your answer on the server"
          - "Gives instant feedback on one question"
        correct_index: 1
        explanation: "Inline checks mark your answer straight away and reset when the page reloads."
faq:
  - question: "Are my answers saved?"
    answer: "No. Reloading the page starts again."
quiz:
  title: Getting Started Quiz
  questions:
    - id: gs-1
      question: "Which file format can pages use?"
      options: ["YAML or JSON", "XML only"]
      correct_index: 0
      explanation: "Pages are YAML or JSON documents."
`

// Scaffold writes a starter config and sample page under root. Existing files
// are never overwritten.
func Scaffold(root string) (string, error) {
	if root == "" {
		return "", fmt.Errorf("root is required")
	}
	configPath := ConfigPath(root)
	if info, err := os.Stat(configPath); err == nil {
		if info.IsDir() {
			return "", fmt.Errorf("config path %q is a directory", configPath)
		}
		return "", fmt.Errorf("config already exists at %q", configPath)
	} else if !os.IsNotExist(err) {
		return "", fmt.Errorf("stat config path %q: %w", configPath, err)
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return "", fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(configPath, []byte(defaultConfig), 0o644); err != nil {
		return "", fmt.Errorf("write config: %w", err)
	}

	contentDir := filepath.Join(root, DefaultContentDir)
	if err := os.MkdirAll(contentDir, 0o755); err != nil {
		return "", fmt.Errorf("create content dir: %w", err)
	}
	entries, err := os.ReadDir(contentDir)
	if err != nil {
		return "", fmt.Errorf("read content dir: %w", err)
	}
	if len(entries) == 0 {
		pagePath := filepath.Join(contentDir, "getting-started.yml")
		if err := os.WriteFile(pagePath, []byte(samplePage), 0o644); err != nil {
			return "", fmt.Errorf("write sample page: %w", err)
		}
	}
	return configPath, nil
}
