package summarize

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"

	"golang.org/x/exp/slog"

	"github.com/snipfeed/snipfeed/errors"
	"github.com/snipfeed/snipfeed/model"
	"github.com/snipfeed/snipfeed/textgen"
)

const interestsPromptFmt = `
Given this user email: %s
Based on the email domain and username, suggest 5 YouTube video topics or categories this person might be interested in.
Return the result as a JSON array of strings.
Example of expected response format:
["technology", "programming", "data science", "machine learning", "web development"]
`

var stringArrayPattern = regexp.MustCompile(`(?s)\[\s*".*"\s*\]`)

// Personalization is a quality-of-life enhancement, never a hard dependency;
// every failure mode falls back to this.
var defaultInterests = model.InterestProfile{"shorts"}

// InterestInferer derives topical interest tags for a user identifier to
// bias the discovery query.
type InterestInferer struct {
	gen    textgen.Generator
	logger *slog.Logger
}

func NewInterestInferer(gen textgen.Generator, logger *slog.Logger) *InterestInferer {
	return &InterestInferer{
		gen:    gen,
		logger: logger,
	}
}

// Infer never fails: the result always has at least one entry.
func (i *InterestInferer) Infer(ctx context.Context, userEmail string) model.InterestProfile {
	reply, err := i.gen.Generate(ctx, textgen.Request{
		Prompt:      fmt.Sprintf(interestsPromptFmt, userEmail),
		Temperature: 0.2,
		MaxTokens:   200,
	})
	if err != nil {
		i.logger.Error("interest inference failed, using default", err)
		return defaultInterests
	}

	interests, err := parseInterests(reply)
	if err != nil {
		i.logger.Error("could not parse interests, using default", err)
		return defaultInterests
	}
	if len(interests) == 0 {
		return defaultInterests
	}

	return interests
}

func parseInterests(text string) (model.InterestProfile, error) {
	raw := stringArrayPattern.FindString(text)
	if raw == "" {
		return nil, errors.New(errors.CodeGenerationParse, "no json string array in generation output")
	}

	var interests model.InterestProfile
	if err := json.Unmarshal([]byte(raw), &interests); err != nil {
		return nil, errors.Wrap(err, errors.CodeGenerationParse, "invalid interest json")
	}

	return interests, nil
}
