package domain

// TierKind identifies one compilation strategy tier.
type TierKind int

const (
	// TierInterpret runs the external AOT compiler manually under a
	// cross-process lock.
	TierInterpret TierKind = iota + 1
	// TierClassLoader triggers compilation by loading the module through a
	// fresh class loader.
	TierClassLoader
	// TierServiceTrigger coaxes the platform package service into background
	// compilation through a privileged call.
	TierServiceTrigger
	// TierLegacy performs the direct load-and-optimize call used before the
	// class-loader path existed.
	TierLegacy
)

func (k TierKind) String() string {
	switch k {
	case TierInterpret:
		return "interpret"
	case TierClassLoader:
		return "classloader"
	case TierServiceTrigger:
		return "service-trigger"
	case TierLegacy:
		return "legacy"
	default:
		return "unknown"
	}
}

// Tier is one step of a module's compilation strategy. A best-effort tier is
// purely supplemental: its failure is logged and swallowed instead of failing
// the module.
type Tier struct {
	Kind       TierKind
	BestEffort bool
}

// SelectStrategy decides, from platform facts alone, which tiers to attempt
// for a module and in what order. Tiers run strictly sequentially; later
// tiers assume earlier ones either completed or left no partial artifact.
//
// An empty result means compilation is skipped entirely and the module is
// treated as success: when the alternate execution engine is active,
// compiling would be redundant and potentially unsafe.
func SelectStrategy(profile PlatformProfile, useInterpretMode, alternateEngineActive bool) []Tier {
	if alternateEngineActive {
		return nil
	}
	if useInterpretMode {
		return []Tier{{Kind: TierInterpret}}
	}
	if profile.APILevel >= APIOreo ||
		(profile.APILevel >= APINougatMR1 && profile.PreviewAPI) {
		// The class-loader path silently fails to emit an artifact on certain
		// builds; the privileged trigger runs afterwards as a best-effort
		// workaround and its failure does not fail the module.
		return []Tier{
			{Kind: TierClassLoader},
			{Kind: TierServiceTrigger, BestEffort: true},
		}
	}
	return []Tier{{Kind: TierLegacy}}
}
