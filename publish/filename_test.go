package publish_test

import (
	"testing"

	"github.com/nicolagi/metapub/publish"
	"github.com/stretchr/testify/assert"
)

func TestResolveFileName(t *testing.T) {
	testCases := []struct {
		actor string
		want  string
	}{
		{actor: "pandanotabear", want: publish.UnstableFileName},
		{actor: "", want: publish.StableFileName},
		{actor: "octocat", want: publish.StableFileName},
		{actor: "PandaNotABear", want: publish.StableFileName},
		{actor: "pandanotabear ", want: publish.StableFileName},
		{actor: " pandanotabear", want: publish.StableFileName},
		{actor: "dependabot[bot]", want: publish.StableFileName},
	}
	for _, tc := range testCases {
		t.Run(tc.actor, func(t *testing.T) {
			assert.Equal(t, tc.want, publish.ResolveFileName(tc.actor))
		})
	}
	assert.Equal(t, "release_metadata.json", publish.StableFileName)
	assert.Equal(t, "unstable_release_metadata.json", publish.UnstableFileName)
}
