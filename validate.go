package notus

// Validate checks cfg and returns the first violated rule as a *ConfigError.
func Validate(cfg Config) error {
	if !cfg.Kind.Valid() {
		return newConfigError(RuleKind, "kind", string(cfg.Kind), "unknown kind")
	}
	pos, ok := cfg.Position.Canonical()
	if !ok {
		return newConfigError(RulePosition, "position", string(cfg.Position), "unknown position")
	}
	if !cfg.Severity.Valid() {
		return newConfigError(RuleSeverity, "severity", string(cfg.Severity), "unknown severity")
	}
	if !cfg.AnimationStyle.Valid() {
		return newConfigError(RuleAnimationStyle, "animation style", string(cfg.AnimationStyle), "unknown animation style")
	}
	if !cfg.hasMessage {
		return newConfigError(RuleMessage, "message", "", "message is required")
	}
	if !pos.LegalFor(cfg.Kind) {
		return newConfigError(RulePositionForKind, "position", string(cfg.Position), "not available for "+string(cfg.Kind))
	}
	if cfg.CloseHandler != nil && !callable(cfg.CloseHandler) {
		return newConfigError(RuleCloseHandler, "close handler", "", "handler is not callable")
	}
	if cfg.Actionable && !cfg.PrimaryAction.wellFormed() && !cfg.SecondaryAction.wellFormed() {
		return newConfigError(RuleActions, "actions", "", "actionable requires a primary or secondary action with text")
	}
	if cfg.AutoCloseDelay < 0 {
		return newConfigError(RuleAutoCloseDelay, "auto close delay", cfg.AutoCloseDelay.String(), "must not be negative")
	}
	if cfg.AnimationDuration < 0 {
		return newConfigError(RuleAnimationDuration, "animation duration", cfg.AnimationDuration.String(), "must not be negative")
	}
	if cfg.Animated && cfg.AnimationStyle == AnimationCustom &&
		(cfg.AnimationClasses.Entry == "" || cfg.AnimationClasses.Exit == "") {
		return newConfigError(RuleAnimationClasses, "animation classes", "", "custom animation requires entry and exit classes")
	}
	return nil
}
