package canon

// Canonical book identifiers in reading order.
const (
	Gen    BookID = "Gen"
	Exod   BookID = "Exod"
	Lev    BookID = "Lev"
	Num    BookID = "Num"
	Deut   BookID = "Deut"
	Josh   BookID = "Josh"
	Judg   BookID = "Judg"
	Ruth   BookID = "Ruth"
	Sam1   BookID = "1Sam"
	Sam2   BookID = "2Sam"
	Kgs1   BookID = "1Kgs"
	Kgs2   BookID = "2Kgs"
	Chr1   BookID = "1Chr"
	Chr2   BookID = "2Chr"
	Ezra   BookID = "Ezra"
	Neh    BookID = "Neh"
	Esth   BookID = "Esth"
	Job    BookID = "Job"
	Ps     BookID = "Ps"
	Prov   BookID = "Prov"
	Eccl   BookID = "Eccl"
	Song   BookID = "Song"
	Isa    BookID = "Isa"
	Jer    BookID = "Jer"
	Lam    BookID = "Lam"
	Ezek   BookID = "Ezek"
	Dan    BookID = "Dan"
	Hos    BookID = "Hos"
	Joel   BookID = "Joel"
	Amos   BookID = "Amos"
	Obad   BookID = "Obad"
	Jonah  BookID = "Jonah"
	Mic    BookID = "Mic"
	Nah    BookID = "Nah"
	Hab    BookID = "Hab"
	Zeph   BookID = "Zeph"
	Hag    BookID = "Hag"
	Zech   BookID = "Zech"
	Mal    BookID = "Mal"
	Matt   BookID = "Matt"
	Mark   BookID = "Mark"
	Luke   BookID = "Luke"
	John   BookID = "John"
	Acts   BookID = "Acts"
	Rom    BookID = "Rom"
	Cor1   BookID = "1Cor"
	Cor2   BookID = "2Cor"
	Gal    BookID = "Gal"
	Eph    BookID = "Eph"
	Phil   BookID = "Phil"
	Col    BookID = "Col"
	Thess1 BookID = "1Thess"
	Thess2 BookID = "2Thess"
	Tim1   BookID = "1Tim"
	Tim2   BookID = "2Tim"
	Titus  BookID = "Titus"
	Phlm   BookID = "Phlm"
	Heb    BookID = "Heb"
	Jas    BookID = "Jas"
	Pet1   BookID = "1Pet"
	Pet2   BookID = "2Pet"
	John1  BookID = "1John"
	John2  BookID = "2John"
	John3  BookID = "3John"
	Jude   BookID = "Jude"
	Rev    BookID = "Rev"
)

// bookEntry is one row of the catalog: identifier, canonical English name,
// and the accepted alternate spellings (already lowercase; the identifier
// and name themselves are matched automatically).
type bookEntry struct {
	id      BookID
	name    string
	aliases []string
}

// books is the fixed catalog table in reading order.
var books = []bookEntry{
	// Old Testament
	{Gen, "Genesis", []string{"gn"}},
	{Exod, "Exodus", []string{"ex", "exo"}},
	{Lev, "Leviticus", []string{"lv"}},
	{Num, "Numbers", []string{"nm", "nmb"}},
	{Deut, "Deuteronomy", []string{"dt", "deu"}},
	{Josh, "Joshua", []string{"jos"}},
	{Judg, "Judges", []string{"jdg"}},
	{Ruth, "Ruth", []string{"ru", "rth"}},
	{Sam1, "1 Samuel", []string{"1samuel", "i samuel", "isamuel", "first samuel", "firstsamuel", "1 sam", "1sm"}},
	{Sam2, "2 Samuel", []string{"2samuel", "ii samuel", "iisamuel", "second samuel", "secondsamuel", "2 sam", "2sm"}},
	{Kgs1, "1 Kings", []string{"1kings", "i kings", "ikings", "first kings", "firstkings", "1 kgs", "1kin"}},
	{Kgs2, "2 Kings", []string{"2kings", "ii kings", "iikings", "second kings", "secondkings", "2 kgs", "2kin"}},
	{Chr1, "1 Chronicles", []string{"1chronicles", "i chronicles", "ichronicles", "first chronicles", "firstchronicles", "1 chr", "1chron"}},
	{Chr2, "2 Chronicles", []string{"2chronicles", "ii chronicles", "iichronicles", "second chronicles", "secondchronicles", "2 chr", "2chron"}},
	{Ezra, "Ezra", []string{"ezr"}},
	{Neh, "Nehemiah", []string{"ne"}},
	{Esth, "Esther", []string{"est"}},
	{Job, "Job", []string{"jb"}},
	{Ps, "Psalms", []string{"psalm", "psa", "pss"}},
	{Prov, "Proverbs", []string{"prv", "pro"}},
	{Eccl, "Ecclesiastes", []string{"ecc", "qoheleth", "qoh"}},
	{Song, "Song of Solomon", []string{"song of songs", "songofsolomon", "songofsongs", "canticles", "sos"}},
	{Isa, "Isaiah", []string{"is"}},
	{Jer, "Jeremiah", []string{"jr"}},
	{Lam, "Lamentations", []string{"lm"}},
	{Ezek, "Ezekiel", []string{"eze", "ezk"}},
	{Dan, "Daniel", []string{"dn"}},
	{Hos, "Hosea", []string{"ho"}},
	{Joel, "Joel", []string{"jl"}},
	{Amos, "Amos", []string{"am"}},
	{Obad, "Obadiah", []string{"ob", "oba"}},
	{Jonah, "Jonah", []string{"jon", "jnh"}},
	{Mic, "Micah", []string{"mc"}},
	{Nah, "Nahum", []string{"na"}},
	{Hab, "Habakkuk", []string{"hb"}},
	{Zeph, "Zephaniah", []string{"zep", "zp"}},
	{Hag, "Haggai", []string{"hg"}},
	{Zech, "Zechariah", []string{"zec", "zc"}},
	{Mal, "Malachi", []string{"ml"}},
	// New Testament
	{Matt, "Matthew", []string{"mt", "mat"}},
	{Mark, "Mark", []string{"mk", "mrk"}},
	{Luke, "Luke", []string{"lk", "luk"}},
	{John, "John", []string{"jn", "jhn"}},
	{Acts, "Acts", []string{"act", "acts of the apostles"}},
	{Rom, "Romans", []string{"rm", "ro"}},
	{Cor1, "1 Corinthians", []string{"1corinthians", "i corinthians", "icorinthians", "first corinthians", "firstcorinthians", "1 cor", "1co"}},
	{Cor2, "2 Corinthians", []string{"2corinthians", "ii corinthians", "iicorinthians", "second corinthians", "secondcorinthians", "2 cor", "2co"}},
	{Gal, "Galatians", []string{"ga"}},
	{Eph, "Ephesians", []string{"ep"}},
	{Phil, "Philippians", []string{"php", "philp"}},
	{Col, "Colossians", []string{"co"}},
	{Thess1, "1 Thessalonians", []string{"1thessalonians", "i thessalonians", "ithessalonians", "first thessalonians", "firstthessalonians", "1 thess", "1th"}},
	{Thess2, "2 Thessalonians", []string{"2thessalonians", "ii thessalonians", "iithessalonians", "second thessalonians", "secondthessalonians", "2 thess", "2th"}},
	{Tim1, "1 Timothy", []string{"1timothy", "i timothy", "itimothy", "first timothy", "firsttimothy", "1 tim", "1ti"}},
	{Tim2, "2 Timothy", []string{"2timothy", "ii timothy", "iitimothy", "second timothy", "secondtimothy", "2 tim", "2ti"}},
	{Titus, "Titus", []string{"tit", "ti"}},
	{Phlm, "Philemon", []string{"phm", "phile"}},
	{Heb, "Hebrews", []string{"he"}},
	{Jas, "James", []string{"jm", "jms"}},
	{Pet1, "1 Peter", []string{"1peter", "i peter", "ipeter", "first peter", "firstpeter", "1 pet", "1pe"}},
	{Pet2, "2 Peter", []string{"2peter", "ii peter", "iipeter", "second peter", "secondpeter", "2 pet", "2pe"}},
	{John1, "1 John", []string{"1john", "i john", "ijohn", "first john", "firstjohn", "1 jn", "1jn"}},
	{John2, "2 John", []string{"2john", "ii john", "iijohn", "second john", "secondjohn", "2 jn", "2jn"}},
	{John3, "3 John", []string{"3john", "iii john", "iiijohn", "third john", "thirdjohn", "3 jn", "3jn"}},
	{Jude, "Jude", []string{"jud", "jde"}},
	{Rev, "Revelation", []string{"revelation of john", "apocalypse", "apoc", "re", "rv"}},
}

// Aliases returns the accepted alternate spellings for a book, not including
// the identifier or canonical name themselves. The returned slice is a copy.
func (id BookID) Aliases() []string {
	i, ok := bookIndex[id]
	if !ok {
		return nil
	}
	out := make([]string, len(books[i].aliases))
	copy(out, books[i].aliases)
	return out
}
