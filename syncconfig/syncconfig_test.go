package syncconfig_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/kb2gnd/syncframe/syncconfig"
)

func TestBuildSingle32Exact(t *testing.T) {
	scanner, err := syncconfig.Build(syncconfig.Spec{
		Width:      syncconfig.Width32,
		Mode:       syncconfig.ModeSingle,
		Comparator: syncconfig.KindExact,
		Syncword:   "0xFFFFFFFF",
	})
	require.NoError(t, err)

	scanner.Extend([]byte{0x00, 0xff, 0xff, 0xff, 0xff, 0x00, 0x00, 0x00})
	matches := scanner.Detect()
	require.Len(t, matches, 1)
	assert.Equal(t, uint8(0), matches[0].Shift)
}

func TestBuildDouble16TwosComplement(t *testing.T) {
	scanner, err := syncconfig.Build(syncconfig.Spec{
		Width:      syncconfig.Width16,
		Mode:       syncconfig.ModeDouble,
		Comparator: syncconfig.KindTwosComplement,
		Tolerance:  1,
		Syncword:   "ABCD", // no 0x prefix is also accepted
	})
	require.NoError(t, err)
	assert.NotNil(t, scanner)
}

func TestBuildRejectsBadWidth(t *testing.T) {
	_, err := syncconfig.Build(syncconfig.Spec{Width: 24, Mode: syncconfig.ModeSingle, Syncword: "FF"})
	require.Error(t, err)
	var cfgErr *syncconfig.ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "width", cfgErr.Field)
}

func TestBuildRejectsBadSyncword(t *testing.T) {
	_, err := syncconfig.Build(syncconfig.Spec{
		Width:    syncconfig.Width16,
		Mode:     syncconfig.ModeSingle,
		Syncword: "not-hex",
	})
	require.Error(t, err)
	var cfgErr *syncconfig.ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "syncword", cfgErr.Field)
}

func TestBuildRejectsBadComparatorKind(t *testing.T) {
	_, err := syncconfig.Build(syncconfig.Spec{
		Width:      syncconfig.Width32,
		Mode:       syncconfig.ModeSingle,
		Comparator: "nonsense",
		Syncword:   "FFFFFFFF",
	})
	require.Error(t, err)
	var cfgErr *syncconfig.ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "comparator", cfgErr.Field)
}

func TestSpecRoundTripsThroughYAML(t *testing.T) {
	original := syncconfig.Spec{
		Width:      syncconfig.Width32,
		Mode:       syncconfig.ModeSingle,
		Comparator: syncconfig.KindPopCount,
		Tolerance:  6,
		Syncword:   "1ACFFC1D",
	}

	out, err := yaml.Marshal(original)
	require.NoError(t, err)

	var decoded syncconfig.Spec
	require.NoError(t, yaml.Unmarshal(out, &decoded))
	assert.Equal(t, original, decoded)
}
