package ui

// Action and tool ids. Artist actions append the artist id, so a song
// with several artists yields one action per artist.
const (
	actionViewAlbum        = "song.view_album"
	actionCopyLink         = "song.copy_link"
	actionViewArtistPrefix = "song.view_artist_"

	toolSelectAll = "selection.select_all"
)

const (
	labelViewAlbum  = "View album"
	labelCopyLink   = "Copy link"
	labelSelectAll  = "Select all"
	labelViewArtist = "About "

	labelLoading   = "Loading…"
	labelEmptyList = "No saved tracks yet"
)
