package model

// TotalUnknown marks a Batch whose collection size was not reported by the
// API. Pagination then relies on the short-page signal alone.
const TotalUnknown = -1

// Batch is a pagination cursor describing one fetched page of a collection.
type Batch struct {
	Offset int
	Size   int // requested page size
	Total  int // reported collection size, TotalUnknown if absent
	Count  int // items actually returned for this page
}

// FirstBatch returns the cursor for the initial page request.
func FirstBatch(size int) Batch {
	return Batch{Size: size, Total: TotalUnknown}
}

// Next returns the cursor for the page after this one. It reports false when
// this page was the last: either the API returned fewer items than requested,
// or the known total has been reached.
func (b Batch) Next() (Batch, bool) {
	if b.Size <= 0 {
		return Batch{}, false
	}
	if b.Count < b.Size {
		return Batch{}, false
	}
	if b.Total != TotalUnknown && b.Offset+b.Size >= b.Total {
		return Batch{}, false
	}
	return Batch{Offset: b.Offset + b.Size, Size: b.Size, Total: b.Total}, true
}

// SongBatch is one page of songs together with the cursor that produced it.
// Invariant: len(Songs) <= Batch.Size and Batch.Count == len(Songs).
type SongBatch struct {
	Batch Batch
	Songs []SongDescription
}

// NewSongBatch pairs a page of songs with its request cursor, recording the
// actual item count on the cursor.
func NewSongBatch(b Batch, songs []SongDescription) SongBatch {
	b.Count = len(songs)
	return SongBatch{Batch: b, Songs: songs}
}
