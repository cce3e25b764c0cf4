package seed

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/retodia/retodia-backend/internal/types"
)

// WelcomeSeed is one welcome-content entry of the YAML seed file loaded on
// first boot against an empty table.
type WelcomeSeed struct {
	Active              bool   `yaml:"active"`
	Title               string `yaml:"title"`
	Subtitle            string `yaml:"subtitle"`
	ImageURL            string `yaml:"image_url"`
	ChallengeTitle      string `yaml:"challenge_title"`
	ChallengeText       string `yaml:"challenge_text"`
	PodcastTitle        string `yaml:"podcast_title"`
	PodcastURL          string `yaml:"podcast_url"`
	AIInitialMessage    string `yaml:"ai_initial_message"`
	AISystemInstruction string `yaml:"ai_system_instruction"`
}

type welcomeSeedFile struct {
	Contents []WelcomeSeed `yaml:"contents"`
}

// LoadWelcomeContent parses the seed file into rows ready for insertion.
func LoadWelcomeContent(path string) ([]*types.WelcomeContent, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	var file welcomeSeedFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}
	out := make([]*types.WelcomeContent, 0, len(file.Contents))
	for i, entry := range file.Contents {
		if entry.Title == "" {
			return nil, fmt.Errorf("seed entry %d: title is required", i)
		}
		out = append(out, &types.WelcomeContent{
			IsActive:            entry.Active,
			Title:               entry.Title,
			Subtitle:            entry.Subtitle,
			ImageURL:            entry.ImageURL,
			ChallengeTitle:      entry.ChallengeTitle,
			ChallengeText:       entry.ChallengeText,
			PodcastTitle:        entry.PodcastTitle,
			PodcastURL:          entry.PodcastURL,
			AIInitialMessage:    entry.AIInitialMessage,
			AISystemInstruction: entry.AISystemInstruction,
		})
	}
	return out, nil
}
