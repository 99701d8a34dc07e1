package syllable

// Nasal is the coda consonant that may sit between two syllables.
const Nasal = "n"

// General holds the syllables usable anywhere after the first position.
var General = newTable("general",
	"ka", "ke", "ki", "ko", "ku",
	"sa", "se", "si", "so", "su",
	"ta", "te", "to", "tu",
	"na", "ne", "ni", "no", "nu",
	"pa", "pe", "pi", "po", "pu",
	"ma", "me", "mi", "mo", "mu",
	"ja", "je", "jo", "ju",
	"la", "le", "li", "lo", "lu",
	"wa", "we", "wi",
)

// PostNasal holds the syllables allowed right after a nasal coda. It is
// General without the n-initial syllables.
var PostNasal = newTable("postNasal",
	"ka", "ke", "ki", "ko", "ku",
	"sa", "se", "si", "so", "su",
	"ta", "te", "to", "tu",
	"pa", "pe", "pi", "po", "pu",
	"ma", "me", "mi", "mo", "mu",
	"ja", "je", "jo", "ju",
	"la", "le", "li", "lo", "lu",
	"wa", "we", "wi",
)

// WordInitial holds the syllables allowed at the start of a word: the bare
// vowels followed by everything in General.
var WordInitial = newTable("wordInitial",
	"a", "e", "i", "o", "u",
	"ka", "ke", "ki", "ko", "ku",
	"sa", "se", "si", "so", "su",
	"ta", "te", "to", "tu",
	"na", "ne", "ni", "no", "nu",
	"pa", "pe", "pi", "po", "pu",
	"ma", "me", "mi", "mo", "mu",
	"ja", "je", "jo", "ju",
	"la", "le", "li", "lo", "lu",
	"wa", "we", "wi",
)

// All lists the tables in a stable order for diagnostics.
func All() []Table {
	return []Table{General, PostNasal, WordInitial}
}
