package formatter

import "fmt"

// Preset represents a template preset with name, template string, and description.
type Preset struct {
	Name        string
	Template    string
	Description string
}

// PresetRegistry manages template presets.
type PresetRegistry interface {
	// Get returns a preset by name.
	Get(name string) (*Preset, error)

	// List returns all available presets.
	List() []Preset

	// Register adds a new preset.
	Register(preset Preset) error
}

// presetRegistry implements PresetRegistry interface.
type presetRegistry struct {
	presets map[string]Preset
	order   []string // To maintain order
}

// NewPresetRegistry creates a new preset registry with all default presets.
func NewPresetRegistry() PresetRegistry {
	registry := &presetRegistry{
		presets: make(map[string]Preset),
		order:   []string{},
	}
	registry.registerDefaults()
	return registry
}

// registerDefaults registers the default presets.
func (pr *presetRegistry) registerDefaults() {
	presets := []Preset{
		{
			Name:        "compact",
			Template:    "[{{unread-count}}] {{latest-title}}",
			Description: "Compact format showing unread count and latest title",
		},
		{
			Name:        "detailed",
			Template:    "{{unread-count}} unread, {{read-count}} read | Latest: {{latest-title}}",
			Description: "Detailed format with counts and latest title",
		},
		{
			Name:        "count-only",
			Template:    "{{unread-count}}",
			Description: "Only unread count",
		},
		{
			Name:        "json",
			Template:    `{"unread":{{unread-count}},"total":{{total-count}},"title":"{{latest-title}}"}`,
			Description: "JSON format for programmatic consumption",
		},
	}

	for _, preset := range presets {
		pr.presets[preset.Name] = preset
		pr.order = append(pr.order, preset.Name)
	}
}

// Get returns a preset by name, or an error if not found.
func (pr *presetRegistry) Get(name string) (*Preset, error) {
	preset, ok := pr.presets[name]
	if !ok {
		return nil, fmt.Errorf("preset not found: %s", name)
	}
	return &preset, nil
}

// List returns all presets in registration order.
func (pr *presetRegistry) List() []Preset {
	presets := make([]Preset, 0, len(pr.order))
	for _, name := range pr.order {
		presets = append(presets, pr.presets[name])
	}
	return presets
}

// Register adds a new preset. Returns an error if the name is taken.
func (pr *presetRegistry) Register(preset Preset) error {
	if preset.Name == "" {
		return fmt.Errorf("preset name cannot be empty")
	}
	if _, exists := pr.presets[preset.Name]; exists {
		return fmt.Errorf("preset already registered: %s", preset.Name)
	}
	if err := ValidateTemplate(preset.Template); err != nil {
		return fmt.Errorf("invalid preset template: %w", err)
	}
	pr.presets[preset.Name] = preset
	pr.order = append(pr.order, preset.Name)
	return nil
}
