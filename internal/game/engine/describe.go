package engine

import (
	"github.com/cory-johannsen/labyrinth/internal/content"
	"github.com/cory-johannsen/labyrinth/internal/game/rng"
)

// descriptionBank holds the three-part sentence fragments for one theme.
// A room description is one start, one middle, and one end, drawn uniformly.
type descriptionBank struct {
	starts  []string
	middles []string
	ends    []string
}

var castleBank = descriptionBank{
	starts: []string{
		"You step into a stately hall",
		"A vaulted ceiling soars above you",
		"The walls here bear the fingerprints of centuries",
		"Stone columns shoulder the weight of the roof",
		"You descend a narrow castle corridor",
		"Ancient tapestries drape the walls",
		"Torches light the way ahead",
	},
	middles: []string{
		". The stonework is cold to the touch",
		". Your footsteps echo through the halls",
		". The smell of damp and mould fills the air",
		". Somewhere far off, strange sounds carry",
		". Traces of old grandeur linger on the floor",
		". The dust of ages settles on your shoulders",
		". A frosty draft cuts to the bone",
	},
	ends: []string{
		". A wooden door stands ahead.",
		". The path leads into the unknown.",
		". You brace for whatever comes next.",
		". A sense of danger grows with every step.",
		". A choice waits before you.",
		". The air turns more ominous by the moment.",
		". You feel you are not alone here.",
	},
}

var dungeonBank = descriptionBank{
	starts: []string{
		"You descend into darkness",
		"Moisture drips from the walls to the floor",
		"Winding corridors lead ever deeper",
		"The dungeon raises gooseflesh on your arms",
		"You hear rustling all around",
		"Stone passages slope downward",
	},
	middles: []string{
		". A dull echo rebounds twice from the walls",
		". The air grows heavier with each breath",
		". Strange markings score the walls",
		". The pressure of the deep mounts",
		". Odd glyphs adorn the vaulted ceiling",
		". The air is thick with damp and cold",
	},
	ends: []string{
		". A door looms at the corridor's end.",
		". No way out of the dungeon is in sight.",
		". You must choose the right path.",
		". Instinct whispers a new answer.",
		". The dungeon's riddle awaits a reply.",
		". The secret of this place is still unspoken.",
	},
}

var cityBank = descriptionBank{
	starts: []string{
		"The ruins of a city rise before you",
		"Broken buildings claw at the sky",
		"The silence of the city presses on your mind",
		"You walk along shattered streets",
		"The emptiness of the city surrounds you",
		"Collapsed buildings form a maze",
	},
	middles: []string{
		". Brick dust rises with every step",
		". Empty windows stare with hollow eyes",
		". Heaps of rubble bar the way",
		". Nature is reclaiming the city",
		". Creeping vines wind through the wreckage",
		". The creak of metal breaks the quiet",
	},
	ends: []string{
		". A better-preserved building stands ahead.",
		". The path leads deeper into the ruins.",
		". A tense premonition grips you.",
		". Something draws you onward.",
		". The past of this place demands answers.",
		". The city's mystery calls you forward.",
	},
}

var forestBank = descriptionBank{
	starts: []string{
		"You enter a dense forest",
		"Branches interlace above your head",
		"Half-light reigns in the thicket",
		"You push through the undergrowth",
		"The forest feels like a living thing",
		"The trees form a natural labyrinth",
	},
	middles: []string{
		". The scent of pine and rotting wood fills your nose",
		". Leaves rustle underfoot",
		". Bird cries sound somewhere in the distance",
		". The feeling of being watched never leaves you",
		". The forest breathes along with you",
		". Nature here is wild and untamed",
	},
	ends: []string{
		". A forest trail leads onward.",
		". Light ahead marks a way through.",
		". You steel yourself for the unknown.",
		". The forest yields its secrets slowly.",
		". The weather could turn at any moment.",
		". Trust your instincts in these deep woods.",
	},
}

var palaceBank = descriptionBank{
	starts: []string{
		"You enter a radiant palace",
		"Crystals glow from every corner",
		"Light refracts through countless facets",
		"The palace glitters like a star",
		"You stand in a labyrinth of crystal",
		"The shine of the crystals stings your eyes",
	},
	middles: []string{
		". The chime of crystal fills the air",
		". Reflections conjure optical illusions",
		". Every facet of the palace glows from within",
		". Crystal music plays at the edge of hearing",
		". Rainbow colors dance across the walls",
		". The palace seems a living being",
	},
	ends: []string{
		". Another crystal door appears before you.",
		". The glitter marks the proper path.",
		". You feel the magic of this place.",
		". The palace is testing your worth.",
		". Each step brings new revelations.",
		". The palace's secrets wait to be opened.",
	},
}

// bankForTheme returns the description bank for a theme. Unknown themes fall
// back to the castle bank.
func bankForTheme(t content.Theme) descriptionBank {
	switch t {
	case content.ThemeDungeon:
		return dungeonBank
	case content.ThemeCity:
		return cityBank
	case content.ThemeForest:
		return forestBank
	case content.ThemePalace:
		return palaceBank
	default:
		return castleBank
	}
}

func pick(src rng.Source, options []string) string {
	return options[src.Intn(len(options))]
}

// DescribeRoom generates a three-part room description for the theme.
//
// Precondition: src must be non-nil.
// Postcondition: Returns a non-empty description string.
func DescribeRoom(src rng.Source, theme content.Theme) string {
	bank := bankForTheme(theme)
	return pick(src, bank.starts) + pick(src, bank.middles) + pick(src, bank.ends)
}
