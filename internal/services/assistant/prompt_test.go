package assistant

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPromptEmbedsIdentityAndCommand(t *testing.T) {
	prompt := BuildPrompt("Nova", "Alice", "what time is it")

	assert.Contains(t, prompt, "Nova")
	assert.Contains(t, prompt, "Alice")
	assert.Contains(t, prompt, "what time is it")
}

func TestPromptDeclaresEveryKnownIntent(t *testing.T) {
	// Drift guard: a tag added to the dispatcher but missing from the prompt
	// (or vice versa) is a silent correctness bug.
	prompt := BuildPrompt("Nova", "Alice", "anything")

	for _, intent := range AllIntents {
		assert.Contains(t, prompt, `"`+string(intent)+`"`, "prompt must declare intent %s", intent)
	}
}

func TestPromptDeclaresNoExtraIntents(t *testing.T) {
	prompt := BuildPrompt("Nova", "Alice", "anything")

	known := make(map[string]bool, len(AllIntents))
	for _, intent := range AllIntents {
		known[string(intent)] = true
	}

	// Every quoted snake_case word in the template's type line must be a
	// known intent.
	typeLine := ""
	for _, line := range strings.Split(prompt, "\n") {
		if strings.Contains(line, `"type":`) && strings.Contains(line, "|") {
			typeLine = line
			break
		}
	}
	assert.NotEmpty(t, typeLine, "prompt must declare the type alternatives")

	tagPattern := regexp.MustCompile(`"([a-z]+(?:_[a-z]+)+|general)"`)
	for _, match := range tagPattern.FindAllStringSubmatch(typeLine, -1) {
		assert.True(t, known[match[1]], "prompt declares unknown intent %q", match[1])
	}
}
