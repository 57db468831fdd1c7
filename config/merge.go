package config

// mergeConfigs returns base with every field set in override applied on top.
// Extension sections that are maps on both sides are merged one level deep.
func mergeConfigs(base, override *Config) *Config {
	result := *base

	if override.RefreshInterval != 0 {
		result.RefreshInterval = override.RefreshInterval
	}
	if override.StateFile != "" {
		result.StateFile = override.StateFile
	}
	if override.ContextDir != "" {
		result.ContextDir = override.ContextDir
	}
	if override.ClaudeMd != "" {
		result.ClaudeMd = override.ClaudeMd
	}
	if override.ProtectedBranches != nil {
		result.ProtectedBranches = append([]string(nil), override.ProtectedBranches...)
	}
	if override.ParentBranch != "" {
		result.ParentBranch = override.ParentBranch
	}

	if override.Extensions != nil {
		merged := make(map[string]interface{}, len(base.Extensions)+len(override.Extensions))
		for key, value := range base.Extensions {
			merged[key] = value
		}
		for key, value := range override.Extensions {
			if baseMap, ok := merged[key].(map[string]interface{}); ok {
				if overrideMap, ok := value.(map[string]interface{}); ok {
					mergedMap := make(map[string]interface{}, len(baseMap)+len(overrideMap))
					for k, v := range baseMap {
						mergedMap[k] = v
					}
					for k, v := range overrideMap {
						mergedMap[k] = v
					}
					merged[key] = mergedMap
					continue
				}
			}
			merged[key] = value
		}
		result.Extensions = merged
	}

	return &result
}
