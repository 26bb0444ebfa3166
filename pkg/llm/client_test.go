package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripFences(t *testing.T) {
	t.Run("Removes a fence with a language tag", func(t *testing.T) {
		in := "```json\n{\"a\":1}\n```"
		assert.Equal(t, `{"a":1}`, StripFences(in))
	})

	t.Run("Removes a bare fence", func(t *testing.T) {
		in := "```\nhello\n```"
		assert.Equal(t, "hello", StripFences(in))
	})

	t.Run("Leaves unfenced text alone", func(t *testing.T) {
		assert.Equal(t, `{"a":1}`, StripFences(` {"a":1} `))
	})

	t.Run("Keeps a first line that is content, not a tag", func(t *testing.T) {
		in := "```{\"a\":1}\n```"
		assert.Equal(t, `{"a":1}`, StripFences(in))
	})
}
