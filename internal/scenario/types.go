package scenario

// Scenario is a set of named combatants and the matchups to calculate.
type Scenario struct {
	Title    string            `yaml:"title"`
	Options  Options           `yaml:"options"`
	Models   map[string]*Model `yaml:"models"`
	Matchups []Matchup         `yaml:"matchups"`
}

// Options are scenario-wide defaults; zero values fall back to the caller's
// defaults.
type Options struct {
	Simulations          int    `yaml:"simulations"`
	Rounds               int    `yaml:"rounds"`
	AttackerCanBeDamaged *bool  `yaml:"attackerCanBeDamaged"`
	Seed                 uint64 `yaml:"seed"`
}

// Model is a combatant as written in YAML.
type Model struct {
	Dice       int `yaml:"dice"`
	Stat       int `yaml:"stat"`
	Rerolls    int `yaml:"rerolls"`
	Armor      int `yaml:"armor"`
	AP         int `yaml:"ap"`
	ShieldDice int `yaml:"shieldDice"`
	Toxic      int `yaml:"toxic"`
}

// Matchup pits an attacker against a defender. Each side is either the name
// of an entry in Scenario.Models or an inline model.
type Matchup struct {
	Name     string `yaml:"name"`
	Attacker Side   `yaml:"attacker"`
	Defender Side   `yaml:"defender"`

	// Per-matchup overrides
	Rounds               int   `yaml:"rounds"`
	Simulations          int   `yaml:"simulations"`
	AttackerCanBeDamaged *bool `yaml:"attackerCanBeDamaged"`
}
