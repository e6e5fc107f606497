// 指示: miu200521358
package io_scene

import (
	"path/filepath"
	"testing"

	"github.com/miu200521358/mu_daz2arp/pkg/domain/mapping"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCorrespondenceKeepsFileOrder(t *testing.T) {
	path := writeFileForTest(t, "bones.yaml", "lThighBend: thigh_stretch.l\nhip: root.x\nlFoot: foot.l\n")

	correspondence, err := LoadCorrespondence(path)
	require.NoError(t, err)
	assert.Equal(t, []mapping.CorrespondenceEntry{
		{Source: "lThighBend", Target: "thigh_stretch.l"},
		{Source: "hip", Target: "root.x"},
		{Source: "lFoot", Target: "foot.l"},
	}, correspondence.Entries())
}

func TestLoadCorrespondenceAcceptsJsonWithBonesKey(t *testing.T) {
	path := writeFileForTest(t, "bones.json", `{"bones": {"head": "head.x", "neckLower": "neck.x"}}`)

	correspondence, err := LoadCorrespondence(path)
	require.NoError(t, err)
	target, ok := correspondence.Target("neckLower")
	require.True(t, ok)
	assert.Equal(t, "neck.x", target)
	assert.Equal(t, 2, correspondence.Len())
}

func TestLoadCorrespondenceRejectsInvalidFiles(t *testing.T) {
	_, err := LoadCorrespondence("bones.txt")
	assert.ErrorIs(t, err, ErrExtInvalid)

	_, err = LoadCorrespondence(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, ErrFileNotFound)

	_, err = LoadCorrespondence(writeFileForTest(t, "dup.yaml", "lHand: hand.l\nrHand: hand.l\n"))
	assert.ErrorIs(t, err, ErrParseFailed)
	assert.ErrorIs(t, err, mapping.ErrDuplicateTarget)

	_, err = LoadCorrespondence(writeFileForTest(t, "list.yaml", "- lHand\n- hand.l\n"))
	assert.ErrorIs(t, err, ErrParseFailed)

	_, err = LoadCorrespondence(writeFileForTest(t, "nested.yaml", "lHand: [hand.l]\n"))
	assert.ErrorIs(t, err, ErrParseFailed)
}
