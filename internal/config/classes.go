package config

type ClassesConfig struct {
	Classes []ClassDef `yaml:"classes"`
}

// ClassDef describes the stat rolls for one character class. Strength,
// Dexterity and Intellect are in twentieths (20 == 1.0).
type ClassDef struct {
	ID        string    `yaml:"id"`
	Health    StatRange `yaml:"health"`
	Stamina   StatRange `yaml:"stamina"`
	Armor     StatRange `yaml:"armor"`
	Strength  StatRange `yaml:"strength"`
	Dexterity StatRange `yaml:"dexterity"`
	Intellect StatRange `yaml:"intellect"`
	Note      string    `yaml:"note"`
}

// StatRange is an inclusive [Min, Max] roll.
type StatRange struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

func (r StatRange) valid() bool { return r.Min >= 0 && r.Max >= r.Min }

func defaultClasses() []ClassDef {
	base := ClassDef{
		Health:  StatRange{80, 100},
		Stamina: StatRange{50, 70},
		Armor:   StatRange{0, 20},
	}
	knight, archer, wizard := base, base, base

	knight.ID = "Knight"
	knight.Strength, knight.Dexterity, knight.Intellect = StatRange{15, 20}, StatRange{10, 15}, StatRange{5, 10}

	archer.ID = "Archer"
	archer.Strength, archer.Dexterity, archer.Intellect = StatRange{5, 10}, StatRange{15, 20}, StatRange{10, 15}

	wizard.ID = "Wizard"
	wizard.Strength, wizard.Dexterity, wizard.Intellect = StatRange{10, 15}, StatRange{5, 10}, StatRange{15, 20}

	return []ClassDef{knight, archer, wizard}
}
