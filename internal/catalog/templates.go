package catalog

import "strings"

// Template is a predefined station definition for common consoles. The
// rom path is relative to the games directory.
type Template struct {
	Name       string
	ShortName  string
	RomPath    string
	Launcher   string
	Extensions string
}

// Templates lists the built-in station definitions.
var Templates = []Template{
	{"Nintendo Entertainment System", "NES", "NES", "NES", "nes"},
	{"Super Nintendo", "SNES", "SNES", "SNES", "sfc smc bin"},
	{"Sega Genesis / Mega Drive", "Genesis", "Genesis", "Genesis", "bin gen md smd"},
	{"Sega Master System", "SMS", "SMS", "SMS", "sms sg"},
	{"Game Boy", "GB", "GameBoy", "GAMEBOY", "gb gbc"},
	{"Game Boy Color", "GBC", "GameBoy", "GAMEBOY", "gbc gb"},
	{"Game Boy Advance", "GBA", "GBA", "GBA", "gba"},
	{"Nintendo 64", "N64", "N64", "N64", "n64 z64 v64"},
	{"Atari 2600", "A2600", "Atari2600", "ATARI2600", "a26 bin"},
	{"Atari 7800", "A7800", "Atari7800", "ATARI7800", "a78 bin"},
	{"Atari 5200", "A5200", "Atari5200", "ATARI5200", "a52 bin car"},
	{"ColecoVision", "Coleco", "Coleco", "Coleco", "col bin rom"},
	{"TurboGrafx-16 / PC Engine", "TG16", "TGFX16", "TGFX16", "pce bin sgx"},
	{"Neo Geo", "NeoGeo", "NEOGEO", "NEOGEO", "neo"},
	{"Arcade", "Arcade", "_Arcade", "", "mra"},
	{"PlayStation 1", "PS1", "PSX", "PSX", "cue chd bin iso img pbp"},
	{"Sega CD / Mega CD", "SegaCD", "MegaCD", "MegaCD", "cue chd iso"},
	{"Sega Saturn", "Saturn", "Saturn", "Saturn", "cue chd"},
	{"Sega 32X", "S32X", "S32X", "S32X", "32x bin"},
	{"Commodore 64", "C64", "C64", "C64", "prg crt t64 d64"},
	{"Amiga", "Amiga", "Amiga", "Minimig", "adf hdf"},
	{"Atari ST", "AtariST", "AtariST", "AtariST", "st stx"},
	{"MSX", "MSX", "MSX", "MSX", "rom dsk cas mx1 mx2"},
	{"ZX Spectrum", "Spectrum", "Spectrum", "Spectrum", "tap tzx z80 dsk trd"},
	{"Amstrad CPC", "CPC", "Amstrad", "Amstrad", "dsk cdt cpr"},
	{"Intellivision", "Intv", "Intellivision", "Intellivision", "int bin rom"},
	{"Vectrex", "Vectrex", "Vectrex", "Vectrex", "vec bin rom"},
	{"WonderSwan", "WS", "WonderSwan", "WonderSwan", "ws wsc"},
	{"Neo Geo Pocket", "NGP", "NeoGeo", "NeoGeo", "ngp ngc"},
}

// FindTemplate looks a template up by short name, case-insensitively.
func FindTemplate(shortName string) (Template, bool) {
	for _, t := range Templates {
		if strings.EqualFold(t.ShortName, shortName) {
			return t, true
		}
	}
	return Template{}, false
}
