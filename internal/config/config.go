package config

import "github.com/driftcheck/driftcheck/internal/domain"

// Config represents the full application configuration.
type Config struct {
	Templates []TemplateConfig `yaml:"templates"`
	Variables map[string]any   `yaml:"variables"`
	Diff      DiffConfig       `yaml:"diff"`
	Output    OutputConfig     `yaml:"output"`
	Store     StoreConfig      `yaml:"store"`
	Logging   LoggingConfig    `yaml:"logging"`
}

// TemplateConfig declares one managed template.
type TemplateConfig struct {
	Source  string         `yaml:"source"`
	Target  string         `yaml:"target"`
	Actions []ActionConfig `yaml:"actions"`
}

// ActionConfig is one text transform applied before rendering. Type is
// "replace" (uses Find/Replace), "prepend", or "append" (use Text).
type ActionConfig struct {
	Type    string `yaml:"type"`
	Find    string `yaml:"find"`
	Replace string `yaml:"replace"`
	Text    string `yaml:"text"`
}

// DiffConfig holds hunk extraction settings.
type DiffConfig struct {
	// Context is the number of unchanged lines kept around each change.
	Context int `yaml:"context"`
}

// OutputConfig holds presentation settings.
type OutputConfig struct {
	Color     string `yaml:"color"` // auto, always, never
	ReportDir string `yaml:"reportDir"`
}

// StoreConfig configures the run-history persistence layer.
type StoreConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// LoggingConfig configures diagnostic logging.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, error
	Format string `yaml:"format"` // development, production
}

// Description converts the template config into its domain form.
func (t TemplateConfig) Description() domain.TemplateDescription {
	actions := make([]domain.Action, 0, len(t.Actions))
	for _, a := range t.Actions {
		actions = append(actions, domain.Action{
			Kind:    a.Type,
			Find:    a.Find,
			Replace: a.Replace,
			Text:    a.Text,
		})
	}
	return domain.TemplateDescription{
		Source:  t.Source,
		Target:  domain.TargetSpec{Target: t.Target},
		Actions: actions,
	}
}

// Descriptions converts every configured template into its domain form.
func (c Config) Descriptions() []domain.TemplateDescription {
	descriptions := make([]domain.TemplateDescription, 0, len(c.Templates))
	for _, t := range c.Templates {
		descriptions = append(descriptions, t.Description())
	}
	return descriptions
}
