package cliconfig

// MergeConfig merges source config into target, updating sources tracking.
// Keys recorded in source.SetFields are applied even when zero, so Validate
// sees an explicit "count: 0". Without SetFields only non-zero values apply.
func MergeConfig(target, source *Config, sourceType string) {
	if source == nil {
		return
	}

	if fieldIsSet(source, "count", source.Count != 0) {
		target.Count = source.Count
		target.SetSource("count", sourceType)
	}
	if source.LogLevel != "" {
		target.LogLevel = source.LogLevel
		target.SetSource("logLevel", sourceType)
	}
	if source.LogFormat != "" {
		target.LogFormat = source.LogFormat
		target.SetSource("logFormat", sourceType)
	}
	if source.LogFile != "" {
		target.LogFile = source.LogFile
		target.SetSource("logFile", sourceType)
	}
	// For booleans, checking `if source.X` cannot detect an explicit false.
	// SetFields (populated during file loading) says whether the key was
	// present. Without it only true values are merged.
	if boolIsSet(source, "lowercase") {
		target.Lowercase = source.Lowercase
		target.SetSource("lowercase", sourceType)
	}
	if boolIsSet(source, "monotonic") {
		target.Monotonic = source.Monotonic
		target.SetSource("monotonic", sourceType)
	}
	if boolIsSet(source, "strict") {
		target.Strict = source.Strict
		target.SetSource("strict", sourceType)
	}
	if boolIsSet(source, "json") {
		target.JSON = source.JSON
		target.SetSource("json", sourceType)
	}
}

// boolIsSet reports whether a boolean field identified by its YAML key was
// explicitly set in the source config.
func boolIsSet(cfg *Config, yamlKey string) bool {
	var v bool
	switch yamlKey {
	case "lowercase":
		v = cfg.Lowercase
	case "monotonic":
		v = cfg.Monotonic
	case "strict":
		v = cfg.Strict
	case "json":
		v = cfg.JSON
	}
	return fieldIsSet(cfg, yamlKey, v)
}

// fieldIsSet reports whether yamlKey was present in the loaded file. Configs
// built in code have no SetFields; for them nonZero decides.
func fieldIsSet(cfg *Config, yamlKey string, nonZero bool) bool {
	if cfg.SetFields != nil {
		return cfg.SetFields[yamlKey]
	}
	return nonZero
}
