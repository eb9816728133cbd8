package summarize

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snipfeed/snipfeed/errors"
	"github.com/snipfeed/snipfeed/model"
	"github.com/snipfeed/snipfeed/textgen"
)

func TestInfer(t *testing.T) {
	t.Run("parses interests in order", func(t *testing.T) {
		reply := `Based on the email, likely interests are:
["technology", "programming", "data science", "machine learning", "web development"]`
		inferer := NewInterestInferer(fixedReply(reply), testLogger())

		interests := inferer.Infer(context.Background(), "dev@example.com")
		require.Len(t, interests, 5)
		assert.Equal(t, "technology", interests[0])
		assert.Equal(t, "web development", interests[4])
	})

	t.Run("reply without an array falls back to default", func(t *testing.T) {
		inferer := NewInterestInferer(fixedReply("no idea, sorry"), testLogger())

		interests := inferer.Infer(context.Background(), "dev@example.com")
		assert.Equal(t, model.InterestProfile{"shorts"}, interests)
	})

	t.Run("upstream failure falls back to default", func(t *testing.T) {
		gen := &stubGenerator{fn: func(textgen.Request) (string, error) {
			return "", errors.New(errors.CodeUpstream, "boom")
		}}
		inferer := NewInterestInferer(gen, testLogger())

		interests := inferer.Infer(context.Background(), "dev@example.com")
		assert.Equal(t, model.InterestProfile{"shorts"}, interests)
	})
}
