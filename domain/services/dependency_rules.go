package services

import (
	"regexp"

	"evograph/domain/core/entities"
)

// DependencyRule describes one way a feature can depend on earlier work.
// The pattern runs against the original-case title or description; the
// dependsOn keywords then locate the earliest record supplying that
// capability.
type DependencyRule struct {
	Pattern   *regexp.Regexp
	DependsOn []string
	Type      entities.DependencyType
	Strength  float64
}

// triggerRules pairs a lowercase trigger keyword with the rules it
// activates.
type triggerRules struct {
	trigger string
	rules   []DependencyRule
}

// dependencyRuleTable is the fixed, ordered rule set of the inference
// engine. A slice keeps evaluation order deterministic; a map would not.
var dependencyRuleTable = []triggerRules{
	{
		trigger: "statistics",
		rules: []DependencyRule{{
			Pattern:   regexp.MustCompile(`(?i)timeline|evolution|history`),
			DependsOn: []string{"timeline", "changelog"},
			Type:      entities.DependencyBuildsOn,
			Strength:  0.9,
		}},
	},
	{
		trigger: "search",
		rules: []DependencyRule{{
			Pattern:   regexp.MustCompile(`(?i)feature|timeline|record`),
			DependsOn: []string{"timeline", "display"},
			Type:      entities.DependencyEnhances,
			Strength:  0.7,
		}},
	},
	{
		trigger: "impact",
		rules: []DependencyRule{{
			Pattern:   regexp.MustCompile(`(?i)graph|network|visual`),
			DependsOn: []string{"graph", "dependency"},
			Type:      entities.DependencyBuildsOn,
			Strength:  0.85,
		}},
	},
	{
		trigger: "prediction",
		rules: []DependencyRule{{
			Pattern:   regexp.MustCompile(`(?i)trend|future|evolution`),
			DependsOn: []string{"statistics", "analytics"},
			Type:      entities.DependencyUses,
			Strength:  0.8,
		}},
	},
	{
		trigger: "export",
		rules: []DependencyRule{{
			Pattern:   regexp.MustCompile(`(?i)data|report|json`),
			DependsOn: []string{"statistics", "timeline"},
			Type:      entities.DependencyUses,
			Strength:  0.6,
		}},
	},
	{
		trigger: "achievement",
		rules: []DependencyRule{{
			Pattern:   regexp.MustCompile(`(?i)milestone|progress|unlock`),
			DependsOn: []string{"timeline", "statistics"},
			Type:      entities.DependencyUses,
			Strength:  0.65,
		}},
	},
	{
		trigger: "metrics",
		rules: []DependencyRule{{
			Pattern:   regexp.MustCompile(`(?i)dashboard|quality|velocity`),
			DependsOn: []string{"statistics", "dashboard"},
			Type:      entities.DependencyEnhances,
			Strength:  0.75,
		}},
	},
	{
		trigger: "theme",
		rules: []DependencyRule{{
			Pattern:   regexp.MustCompile(`(?i)dark|light|toggle|ui`),
			DependsOn: []string{"ui", "interface"},
			Type:      entities.DependencyEnhances,
			Strength:  0.5,
		}},
	},
}
