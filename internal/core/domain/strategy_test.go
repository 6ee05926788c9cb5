package domain_test

import (
	"testing"

	"github.com/hotpatchkit/dexopt/internal/core/domain"
	"github.com/stretchr/testify/require"
)

func TestSelectStrategy_AlternateEngineSkipsEverything(t *testing.T) {
	profile := domain.PlatformProfile{APILevel: 29}

	tiers := domain.SelectStrategy(profile, false, true)

	require.Empty(t, tiers)
}

func TestSelectStrategy_InterpretModeWinsOverPlatformVersion(t *testing.T) {
	for _, api := range []int{21, 25, 26, 29, 33} {
		profile := domain.PlatformProfile{APILevel: api}

		tiers := domain.SelectStrategy(profile, true, false)

		require.Len(t, tiers, 1)
		require.Equal(t, domain.TierInterpret, tiers[0].Kind)
		require.False(t, tiers[0].BestEffort)
	}
}

func TestSelectStrategy_ModernPlatform(t *testing.T) {
	profile := domain.PlatformProfile{APILevel: 26}

	tiers := domain.SelectStrategy(profile, false, false)

	require.Len(t, tiers, 2)
	require.Equal(t, domain.TierClassLoader, tiers[0].Kind)
	require.False(t, tiers[0].BestEffort)
	require.Equal(t, domain.TierServiceTrigger, tiers[1].Kind)
	require.True(t, tiers[1].BestEffort)
}

func TestSelectStrategy_PreviewOnNougatMR1CountsAsModern(t *testing.T) {
	profile := domain.PlatformProfile{APILevel: 25, PreviewAPI: true}

	tiers := domain.SelectStrategy(profile, false, false)

	require.Len(t, tiers, 2)
	require.Equal(t, domain.TierClassLoader, tiers[0].Kind)
}

func TestSelectStrategy_NonPreviewNougatMR1IsLegacy(t *testing.T) {
	profile := domain.PlatformProfile{APILevel: 25}

	tiers := domain.SelectStrategy(profile, false, false)

	require.Len(t, tiers, 1)
	require.Equal(t, domain.TierLegacy, tiers[0].Kind)
}

func TestSelectStrategy_OldPlatformIsLegacy(t *testing.T) {
	profile := domain.PlatformProfile{APILevel: 21}

	tiers := domain.SelectStrategy(profile, false, false)

	require.Len(t, tiers, 1)
	require.Equal(t, domain.TierLegacy, tiers[0].Kind)
	require.False(t, tiers[0].BestEffort)
}
