package sprite

// Art tables are decorative; only their dimensions matter to the game

var heroPalette = Palette{
	'K': Hex("#1A1A1A"),
	'R': Hex("#E52521"),
	'r': Hex("#A01010"),
	'S': Hex("#FFB884"),
	's': Hex("#D4956B"),
	'H': Hex("#6B3A11"),
	'E': Hex("#1A1A1A"),
	'W': Hex("#FFFFFF"),
	'B': Hex("#1565C0"),
	'b': Hex("#0D47A1"),
	'Y': Hex("#FFD600"),
	'G': Hex("#795548"),
}

var heroIdle = PixelMap{
	".....KKKKK......",
	"....KRRRRRK.....",
	"...KRRRRRRRRK...",
	"...KHHHSSEK.....",
	"..KHSHSSSESSK...",
	"..KHSHHSSSESSK..",
	"..KHHSSSSEEEEK..",
	"....KSSSSSSSK...",
	"...KRRBRRRK.....",
	"..KRRRBRRBRRK...",
	".KRRRRBBBBRRRRK.",
	".KSSRBYBBYBRSSK.",
	".KSSSBBBBBBSSSK.",
	".KSSBBBBBBBBSSK.",
	"...KBBBKKBBBK...",
	"..KBBBK..KBBBK..",
	"..KBBBK..KBBBK..",
	"..KbbbK..KbbbK..",
	"..KbbbK..KbbbK..",
	"..KbbK....KbbK..",
	".KGGGK....KGGGK.",
	"KGGGGK....KGGGGK",
	"KGGGGK....KGGGGK",
	"KKKKKK....KKKKKK",
	"................",
}

var heroRun = PixelMap{
	".....KKKKK......",
	"....KRRRRRK.....",
	"...KRRRRRRRRK...",
	"...KHHHSSEK.....",
	"..KHSHSSSESSK...",
	"..KHSHHSSSESSK..",
	"..KHHSSSSEEEEK..",
	"....KSSSSSSSK...",
	"..KKRRRBRRK.....",
	".KSSRRRRBRRRK...",
	".KSSRRRBBBBRRK..",
	"..KKRRRBYBBYBKSK",
	"....KBBBBBBBBKSK",
	"...KBBBBBBBBBKK.",
	"..KBBBBKKKBBBK..",
	".KBBBBK...KBBBK.",
	"KbbbbK.....KbbbK",
	"KbbbK......KbbbK",
	"KbbK........KGGK",
	"KGGK.......KGGGK",
	"KGGGK......KGGGK",
	"KGGGGK......KKKK",
	"KKKKKK..........",
	"................",
	"................",
}

var boxPalette = Palette{
	'K': Hex("#1A1A1A"),
	'O': Hex("#E68A00"),
	'o': Hex("#B36B00"),
	'Y': Hex("#FFB800"),
	'y': Hex("#FFDD44"),
	'W': Hex("#FFFFFF"),
	'D': Hex("#996600"),
	'd': Hex("#CC8800"),
}

var box = PixelMap{
	"KKKKKKKKKKKKKKKK",
	"KyyYYYYYYYYYYYDK",
	"KyYYYYYYYYYYYYDK",
	"KyYYYWWWWYYYYYDK",
	"KyYYWWYYWWYYYYDK",
	"KyYYYYYYWWYYYYDK",
	"KyYYYYYWWYYYYYDK",
	"KyYYYYWWYYYYYYDK",
	"KyYYYYWWYYYYYYDK",
	"KyYYYYYYYYYYYYDK",
	"KyYYYYWWYYYYYYDK",
	"KyYYYYWWYYYYYYDK",
	"KyYYYYYYYYYYYYDK",
	"KYYYYYYYYYYYYYdK",
	"KYDDDDDDDDDDDDdK",
	"KKKKKKKKKKKKKKKK",
}

var boxUsed = PixelMap{
	"KKKKKKKKKKKKKKKK",
	"KDDDDDDDDDDDDDDK",
	"KDooooooooooooDK",
	"KDoKooooooooKoDK",
	"KDooooooooooooDK",
	"KDooooooooooooDK",
	"KDooooooooooooDK",
	"KDooooooooooooDK",
	"KDooooooooooooDK",
	"KDooooooooooooDK",
	"KDooooooooooooDK",
	"KDooooooooooooDK",
	"KDoKooooooooKoDK",
	"KDooooooooooooDK",
	"KDDDDDDDDDDDDDDK",
	"KKKKKKKKKKKKKKKK",
}

var coinPalette = Palette{
	'K': Hex("#1A1A1A"),
	'Y': Hex("#FFD600"),
	'y': Hex("#FFEE58"),
	'G': Hex("#FFB800"),
	'W': Hex("#FFFFFF"),
}

var coinWide = PixelMap{
	"...KKKK...",
	"..KyyyYK..",
	".KyyyYYYK.",
	"KyyWyYYYGK",
	"KyyWyYYYGK",
	"KyyyYYYYGK",
	"KyyyYYYGGK",
	".KYYYYGGK.",
	"..KYYYYK..",
	"...KKKK...",
}

var coinHalf = PixelMap{
	"....KK....",
	"...KyYK...",
	"..KyYYK...",
	".KyWYYGK..",
	".KyWYYGK..",
	".KyYYYGK..",
	".KyYYGGK..",
	"..KYYGGK..",
	"...KYYK...",
	"....KK....",
}

var coinEdge = PixelMap{
	".....K....",
	"....KYK...",
	"....KYK...",
	"...KYYGK..",
	"...KYYGK..",
	"...KYYGK..",
	"...KYYGK..",
	"....KGK...",
	"....KGK...",
	".....K....",
}

var cloudPalette = Palette{
	'W': Hex("#FFFFFF"),
	'w': Hex("#E8F4FD"),
	'K': Hex("#D0E8F5"),
}

var cloud = PixelMap{
	"......WWWW......",
	"....WWWWWWWW....",
	"..WWWWWWWWWWW...",
	".WWWWWWWWWWwwW..",
	"WWWWWWWWWWwwwWW.",
	"WwwWWWWWWWwwwWW.",
	"WwwwWWWWWWwwwWWW",
	"WwwwwwwwwwwwwwwW",
	".WKKKKKKKKKKKw..",
	"..KKKKKKKKKK....",
}

var bushPalette = Palette{
	'G': Hex("#4CAF50"),
	'g': Hex("#388E3C"),
	'd': Hex("#2E7D32"),
	'K': Hex("#1B5E20"),
}

var bush = PixelMap{
	"........GGGG........",
	"......GGGGGgGG......",
	"....GGGGGGGGggGG....",
	"..GGGGGGGGGGGgggG...",
	".GGGGGGGGGGGGgggGG..",
	"GGGgGGGGGGGGGGgggGGG",
	"GGggGGGGGGGGGGggggGG",
	"KKKKKKKKKKKKKKKKKKKd",
}

var pipePalette = Palette{
	'K': Hex("#1A1A1A"),
	'G': Hex("#4CAF50"),
	'g': Hex("#388E3C"),
	'd': Hex("#2E7D32"),
}

var pipe = PixelMap{
	"KKKKKKKKKKKK",
	"KGGGGggggddK",
	"KGGGGggggddK",
	"KKKKKKKKKKKK",
	".KGGGgggddK.",
	".KGGGgggddK.",
	".KGGGgggddK.",
	".KGGGgggddK.",
	".KGGGgggddK.",
	".KGGGgggddK.",
	".KGGGgggddK.",
	".KGGGgggddK.",
	".KGGGgggddK.",
	".KGGGgggddK.",
	".KGGGgggddK.",
	".KKKKKKKKKK.",
}

var tilePalette = Palette{
	'B': Hex("#C84C09"),
	'M': Hex("#A03000"),
	'H': Hex("#E06010"),
}

var groundTile = PixelMap{
	"MHHHHHHMHHHHHHHM",
	"BBBBBBBMBBBBBBBB",
	"BBBBBBBMBBBBBBBB",
	"BBBBBBBMBBBBBBBB",
	"BBBBBBBMBBBBBBBB",
	"BBBBBBBMBBBBBBBB",
	"BBBBBBBMBBBBBBBB",
	"MMMMMMMMMMMMMMMM",
	"HHHMHHHHHHHHMHHH",
	"BBBMBBBBBBBBMBBB",
	"BBBMBBBBBBBBMBBB",
	"BBBMBBBBBBBBMBBB",
	"BBBMBBBBBBBBMBBB",
	"BBBMBBBBBBBBMBBB",
	"BBBMBBBBBBBBMBBB",
	"MMMMMMMMMMMMMMMM",
}
